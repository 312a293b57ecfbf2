package commands_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func addImageByRef(t *testing.T, f memoryFactories, tourID kernel.UUID, ref string) *tour.Image {
	t.Helper()
	cmd, err := commands.NewAddTourImageCommand(kernel.NewUUID(), tourID, nil, ref)
	require.NoError(t, err)
	h := commands.NewAddTourImageCommandHandler(f.uow(), new(MockMediaStore), commands.StrictParentCheck, discardLogger())
	img, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return img
}

func removeImage(t *testing.T, f memoryFactories, tourID, imageID kernel.UUID) error {
	t.Helper()
	cmd, err := commands.NewRemoveTourImageCommand(tourID, imageID)
	require.NoError(t, err)
	h := commands.NewRemoveTourImageCommandHandler(f.uow())
	return h.Handle(t.Context(), cmd)
}

func primaryImage(t *testing.T, f memoryFactories, tourID kernel.UUID) string {
	t.Helper()
	stored, err := f.repos().TourRepository().Get(t.Context(), tourID)
	require.NoError(t, err)
	return stored.ImageURL()
}

// assertPrimaryImageInvariant checks that the primary image is empty exactly
// when the tour owns no images and otherwise names one of them.
func assertPrimaryImageInvariant(t *testing.T, f memoryFactories, tourID kernel.UUID) {
	t.Helper()
	images, err := f.repos().TourImageRepository().ListByTour(t.Context(), tourID)
	require.NoError(t, err)

	primary := primaryImage(t, f, tourID)
	if len(images) == 0 {
		assert.Empty(t, primary)
		return
	}

	refs := make([]string, 0, len(images))
	for _, img := range images {
		refs = append(refs, img.ImageURL())
	}
	assert.Contains(t, refs, primary)
}

func TestNewAddTourImageCommand_Source(t *testing.T) {
	tourID := kernel.NewUUID()

	_, err := commands.NewAddTourImageCommand(kernel.NewUUID(), tourID, nil, "  ")
	require.ErrorIs(t, err, commands.ErrImageSourceIsRequired)
	assert.Equal(t, "Image file or imageUrl is required", commands.ErrImageSourceIsRequired.Message)
	assert.True(t, errs.IsValidation(err))

	upload := &commands.Upload{Filename: "x.jpg", Content: strings.NewReader("jpeg")}
	_, err = commands.NewAddTourImageCommand(kernel.NewUUID(), tourID, upload, "/uploads/x.jpg")
	require.ErrorIs(t, err, commands.ErrImageSourceIsAmbiguous)

	cmd, err := commands.NewAddTourImageCommand(kernel.NewUUID(), tourID, upload, "")
	require.NoError(t, err)
	assert.Same(t, upload, cmd.Upload())
}

func TestAddTourImageCommandHandler_FirstImageBecomesPrimary(t *testing.T) {
	f := newMemoryFactories()
	created := createTour(t, f)

	img := addImageByRef(t, f, created.ID(), "/uploads/a.jpg")

	assert.Equal(t, "/uploads/a.jpg", img.ImageURL())
	assert.Equal(t, "/uploads/a.jpg", primaryImage(t, f, created.ID()))
}

func TestAddTourImageCommandHandler_UploadIsResolvedThroughMediaStore(t *testing.T) {
	ctx := t.Context()
	f := newMemoryFactories()
	created := createTour(t, f)

	content := strings.NewReader("jpeg")
	media := new(MockMediaStore)
	media.On("Save", ctx, "photo.jpg", content).Return("/uploads/abc.jpg", nil).Once()

	cmd, err := commands.NewAddTourImageCommand(
		kernel.NewUUID(), created.ID(), &commands.Upload{Filename: "photo.jpg", Content: content}, "",
	)
	require.NoError(t, err)

	h := commands.NewAddTourImageCommandHandler(f.uow(), media, commands.StrictParentCheck, discardLogger())
	img, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "/uploads/abc.jpg", img.ImageURL())
	assert.Equal(t, "/uploads/abc.jpg", primaryImage(t, f, created.ID()))
	media.AssertExpectations(t)
}

func TestAddTourImageCommandHandler_MissingTour(t *testing.T) {
	f := newMemoryFactories()
	missing := kernel.NewUUID()

	cmd, err := commands.NewAddTourImageCommand(kernel.NewUUID(), missing, nil, "/uploads/a.jpg")
	require.NoError(t, err)

	t.Run("strict", func(t *testing.T) {
		h := commands.NewAddTourImageCommandHandler(f.uow(), new(MockMediaStore), commands.StrictParentCheck, discardLogger())
		_, err := h.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		images, err := f.repos().TourImageRepository().ListByTour(t.Context(), missing)
		require.NoError(t, err)
		assert.Empty(t, images)
	})

	t.Run("lenient", func(t *testing.T) {
		h := commands.NewAddTourImageCommandHandler(f.uow(), new(MockMediaStore), commands.LenientParentCheck, discardLogger())
		img, err := h.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.Equal(t, "/uploads/a.jpg", img.ImageURL())
	})
}

func TestRemoveTourImageCommandHandler_RederivesPrimary(t *testing.T) {
	f := newMemoryFactories()
	created := createTour(t, f)

	a := addImageByRef(t, f, created.ID(), "/uploads/a.jpg")
	b := addImageByRef(t, f, created.ID(), "/uploads/b.jpg")
	require.Equal(t, "/uploads/a.jpg", primaryImage(t, f, created.ID()))

	require.NoError(t, removeImage(t, f, created.ID(), a.ID()))
	assert.Equal(t, "/uploads/b.jpg", primaryImage(t, f, created.ID()))

	require.NoError(t, removeImage(t, f, created.ID(), b.ID()))
	assert.Empty(t, primaryImage(t, f, created.ID()))
}

func TestRemoveTourImageCommandHandler_NonPrimaryLeavesTourUntouched(t *testing.T) {
	f := newMemoryFactories()
	created := createTour(t, f)

	addImageByRef(t, f, created.ID(), "/uploads/a.jpg")
	b := addImageByRef(t, f, created.ID(), "/uploads/b.jpg")
	before, err := f.repos().TourRepository().Get(t.Context(), created.ID())
	require.NoError(t, err)

	require.NoError(t, removeImage(t, f, created.ID(), b.ID()))

	after, err := f.repos().TourRepository().Get(t.Context(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, before.ImageURL(), after.ImageURL())
	assert.Equal(t, before.Version(), after.Version())
	assert.Equal(t, before.UpdatedAt(), after.UpdatedAt())
}

func TestRemoveTourImageCommandHandler_ScopedToTour(t *testing.T) {
	f := newMemoryFactories()
	owner := createTour(t, f)
	other := createTour(t, f)

	img := addImageByRef(t, f, owner.ID(), "/uploads/a.jpg")

	err := removeImage(t, f, other.ID(), img.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, "/uploads/a.jpg", primaryImage(t, f, owner.ID()))
}

func TestPrimaryImageInvariant_HoldsAcrossAddRemoveSequences(t *testing.T) {
	f := newMemoryFactories()
	created := createTour(t, f)

	var owned []*tour.Image
	ops := []string{"add", "add", "remove-first", "add", "remove-last", "remove-first", "add", "remove-first", "add"}
	for step, op := range ops {
		switch op {
		case "add":
			owned = append(owned, addImageByRef(t, f, created.ID(), fmt.Sprintf("/uploads/%d.jpg", step)))
		case "remove-first":
			require.NoError(t, removeImage(t, f, created.ID(), owned[0].ID()), "step %d", step)
			owned = owned[1:]
		case "remove-last":
			require.NoError(t, removeImage(t, f, created.ID(), owned[len(owned)-1].ID()), "step %d", step)
			owned = owned[:len(owned)-1]
		}
		assertPrimaryImageInvariant(t, f, created.ID())
		if len(owned) == 0 {
			assert.Empty(t, primaryImage(t, f, created.ID()), "step %d", step)
		} else {
			assert.Equal(t, owned[0].ImageURL(), primaryImage(t, f, created.ID()), "step %d", step)
		}
	}
	assert.Len(t, owned, 1)
}

func TestReconcilePrimaryImageCommandHandler_RepairsAndIsIdempotent(t *testing.T) {
	ctx := t.Context()
	f := newMemoryFactories()
	created := createTour(t, f)

	// An image written without the follow-up primary image write.
	img, err := tour.NewImage(kernel.NewUUID(), created.ID(), "/uploads/a.jpg", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, f.repos().TourImageRepository().Add(ctx, img))
	require.Empty(t, primaryImage(t, f, created.ID()))

	cmd, err := commands.NewReconcilePrimaryImageCommand(created.ID())
	require.NoError(t, err)
	h := commands.NewReconcilePrimaryImageCommandHandler(f.uow())

	changed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "/uploads/a.jpg", primaryImage(t, f, created.ID()))

	changed, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestReconcilePrimaryImageCommandHandler_VersionConflictAfterRetries(t *testing.T) {
	ctx := t.Context()
	tourID := kernel.NewUUID()
	stored, err := tour.NewTour(tourID, galleWalk(), time.Now())
	require.NoError(t, err)
	img, err := tour.NewImage(kernel.NewUUID(), tourID, "/uploads/a.jpg", time.Now())
	require.NoError(t, err)

	tourRepo := new(MockTourRepository)
	imageRepo := new(MockTourImageRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("TourRepository").Return(tourRepo)
	uow.On("TourImageRepository").Return(imageRepo)

	tourRepo.On("Get", ctx, tourID).Return(func() *tour.Tour {
		restored, _ := tour.RestoreTour(tourID, stored.Details(), "", stored.Version(), stored.CreatedAt(), stored.UpdatedAt())
		return restored
	}, nil)
	imageRepo.On("ListByTour", ctx, tourID).Return([]*tour.Image{img}, nil)
	tourRepo.On("UpdatePrimaryImage", ctx, mock.AnythingOfType("*tour.Tour")).
		Return(errs.NewVersionIsInvalidError("tour", stored.Version()))

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewReconcilePrimaryImageCommand(tourID)
	require.NoError(t, err)
	h := commands.NewReconcilePrimaryImageCommandHandler(factory)

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	tourRepo.AssertNumberOfCalls(t, "UpdatePrimaryImage", commands.MaxReconcileAttempts)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAddTourImageCommandHandler_InsertErrorSkipsReconcile(t *testing.T) {
	ctx := t.Context()
	tourID := kernel.NewUUID()

	tourRepo := new(MockTourRepository)
	imageRepo := new(MockTourImageRepository)
	uow := new(MockUoW)
	uow.On("TourRepository").Return(tourRepo)
	uow.On("TourImageRepository").Return(imageRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	tourRepo.On("Exists", ctx, tourID).Return(true, nil).Once()
	imageRepo.On("Add", ctx, mock.AnythingOfType("*tour.Image")).Return(errors.New("insert failed")).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewAddTourImageCommand(kernel.NewUUID(), tourID, nil, "/uploads/a.jpg")
	require.NoError(t, err)
	h := commands.NewAddTourImageCommandHandler(factory, new(MockMediaStore), commands.StrictParentCheck, discardLogger())

	_, err = h.Handle(ctx, cmd)
	require.EqualError(t, err, "insert failed")
	tourRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAddTourImageCommandHandler_ReconcileConflictStillReturnsImage(t *testing.T) {
	ctx := t.Context()
	tourID := kernel.NewUUID()
	stored, err := tour.NewTour(tourID, galleWalk(), time.Now())
	require.NoError(t, err)

	tourRepo := new(MockTourRepository)
	imageRepo := new(MockTourImageRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("TourRepository").Return(tourRepo)
	uow.On("TourImageRepository").Return(imageRepo)

	var inserted *tour.Image
	tourRepo.On("Exists", ctx, tourID).Return(true, nil).Once()
	imageRepo.On("Add", ctx, mock.AnythingOfType("*tour.Image")).
		Run(func(args mock.Arguments) { inserted = args.Get(1).(*tour.Image) }).
		Return(nil).Once()
	tourRepo.On("Get", ctx, tourID).Return(func() *tour.Tour {
		restored, _ := tour.RestoreTour(tourID, stored.Details(), "", stored.Version(), stored.CreatedAt(), stored.UpdatedAt())
		return restored
	}, nil)
	imageRepo.On("ListByTour", ctx, tourID).Return(func() []*tour.Image {
		return []*tour.Image{inserted}
	}, nil)
	tourRepo.On("UpdatePrimaryImage", ctx, mock.AnythingOfType("*tour.Tour")).
		Return(errs.NewVersionIsInvalidError("tour", stored.Version()))

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	cmd, err := commands.NewAddTourImageCommand(kernel.NewUUID(), tourID, nil, "/uploads/a.jpg")
	require.NoError(t, err)
	h := commands.NewAddTourImageCommandHandler(factory, new(MockMediaStore), commands.StrictParentCheck, discardLogger())

	img, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Same(t, inserted, img)
	imageRepo.AssertNumberOfCalls(t, "Add", 1)
	tourRepo.AssertNumberOfCalls(t, "UpdatePrimaryImage", commands.MaxReconcileAttempts)
}

func TestAddTourImageCommandHandler_InsertErrorRemovesUpload(t *testing.T) {
	ctx := t.Context()
	tourID := kernel.NewUUID()

	tourRepo := new(MockTourRepository)
	imageRepo := new(MockTourImageRepository)
	uow := new(MockUoW)
	uow.On("TourRepository").Return(tourRepo)
	uow.On("TourImageRepository").Return(imageRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	tourRepo.On("Exists", ctx, tourID).Return(true, nil).Once()
	imageRepo.On("Add", ctx, mock.AnythingOfType("*tour.Image")).Return(errors.New("insert failed")).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	content := strings.NewReader("jpeg")
	media := new(MockMediaStore)
	mock.InOrder(
		media.On("Save", ctx, "photo.jpg", content).Return("/uploads/abc.jpg", nil).Once(),
		media.On("Delete", ctx, "/uploads/abc.jpg").Return(nil).Once(),
	)

	cmd, err := commands.NewAddTourImageCommand(
		kernel.NewUUID(), tourID, &commands.Upload{Filename: "photo.jpg", Content: content}, "",
	)
	require.NoError(t, err)
	h := commands.NewAddTourImageCommandHandler(factory, media, commands.StrictParentCheck, discardLogger())

	_, err = h.Handle(ctx, cmd)
	require.EqualError(t, err, "insert failed")
	media.AssertExpectations(t)
	uow.AssertExpectations(t)
}
