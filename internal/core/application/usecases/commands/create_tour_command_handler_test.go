package commands_test

import (
	"errors"
	"testing"

	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func galleWalk() tour.Details {
	return tour.Details{
		Name:        "Galle Walk",
		Location:    "Galle",
		Price:       50,
		Duration:    "4 hours",
		Description: "d",
		Tagline:     "t",
	}
}

func TestCreateTourCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateTourCommand(id, galleWalk())
	require.NoError(t, err)

	repo := new(MockTourRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TourRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*tour.Tour")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTourUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTourCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, id.IsEqual(created.ID()))
	assert.Empty(t, created.ImageURL())
	assert.Equal(t, 1, created.Version())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateTourCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockTourUoWFactory)
	h := commands.NewCreateTourCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateTourCommand{})
	require.ErrorIs(t, err, commands.ErrCreateTourCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateTourCommandHandler_Handle_InvalidDetailsWriteNothing(t *testing.T) {
	details := galleWalk()
	details.Duration = "all day"
	details.Price = -1
	cmd, err := commands.NewCreateTourCommand(kernel.NewUUID(), details)
	require.NoError(t, err)

	factory := new(MockTourUoWFactory)
	h := commands.NewCreateTourCommandHandler(factory)

	_, err = h.Handle(t.Context(), cmd)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	factory.AssertNotCalled(t, "Create")
}

func TestCreateTourCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateTourCommand(kernel.NewUUID(), galleWalk())

	uow := new(MockUoW)
	factory := new(MockTourUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateTourCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateTourCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateTourCommand(kernel.NewUUID(), galleWalk())

	repo := new(MockTourRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TourRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*tour.Tour")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTourUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTourCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateTourCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateTourCommand(kernel.NewUUID(), galleWalk())

	repo := new(MockTourRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TourRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*tour.Tour")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTourUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTourCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
