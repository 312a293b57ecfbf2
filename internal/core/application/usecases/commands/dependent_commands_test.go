package commands_test

import (
	"testing"

	"tours/internal/core/application/usecases/commands"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/domain/services"
	"tours/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPolicy() services.ItineraryPolicy {
	return services.NewItineraryPolicy(false)
}

func TestAddTourLineCommandHandler_ValidationBeforeWrite(t *testing.T) {
	f := newMemoryFactories()
	created := createTour(t, f)

	long := make([]rune, tour.MaxShortTextLength+1)
	for i := range long {
		long[i] = 'x'
	}
	cmd, err := commands.NewAddTourLineCommand(kernel.NewUUID(), created.ID(), tour.Included, string(long))
	require.NoError(t, err)

	h := commands.NewAddTourLineCommandHandler(f.uow(), commands.StrictParentCheck)
	_, err = h.Handle(t.Context(), cmd)
	require.True(t, errs.IsValidation(err))

	lines, err := f.repos().TourLineRepository().ListByTour(t.Context(), created.ID(), tour.Included)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestAddTourLineCommandHandler_ParentCheck(t *testing.T) {
	f := newMemoryFactories()
	missing := kernel.NewUUID()
	cmd, err := commands.NewAddTourLineCommand(kernel.NewUUID(), missing, tour.Excluded, "Tips")
	require.NoError(t, err)

	strict := commands.NewAddTourLineCommandHandler(f.uow(), commands.StrictParentCheck)
	_, err = strict.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	lenient := commands.NewAddTourLineCommandHandler(f.uow(), commands.LenientParentCheck)
	line, err := lenient.Handle(t.Context(), cmd)
	require.NoError(t, err)
	assert.Equal(t, tour.Excluded, line.Type())
}

func TestRemoveTourLineCommandHandler_ScopedByTourAndType(t *testing.T) {
	ctx := t.Context()
	f := newMemoryFactories()
	owner := createTour(t, f)
	other := createTour(t, f)
	inclusion := addLine(t, f, owner.ID(), tour.Included, "Hotel pickup")

	h := commands.NewRemoveTourLineCommandHandler(f.uow())

	viaExclusions, err := commands.NewRemoveTourLineCommand(owner.ID(), tour.Excluded, inclusion.ID())
	require.NoError(t, err)
	require.ErrorIs(t, h.Handle(ctx, viaExclusions), errs.ErrObjectNotFound)

	viaOtherTour, err := commands.NewRemoveTourLineCommand(other.ID(), tour.Included, inclusion.ID())
	require.NoError(t, err)
	require.ErrorIs(t, h.Handle(ctx, viaOtherTour), errs.ErrObjectNotFound)

	lines, err := f.repos().TourLineRepository().ListByTour(ctx, owner.ID(), tour.Included)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	scoped, err := commands.NewRemoveTourLineCommand(owner.ID(), tour.Included, inclusion.ID())
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, scoped))
}

func TestAddItineraryItemCommandHandler_DuplicateDays(t *testing.T) {
	ctx := t.Context()

	testCases := []struct {
		name       string
		uniqueDays bool
		wantErr    bool
	}{
		{name: "allowed by default", uniqueDays: false, wantErr: false},
		{name: "rejected when unique days are required", uniqueDays: true, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newMemoryFactories()
			created := createTour(t, f)
			h := commands.NewAddItineraryItemCommandHandler(
				f.uow(), commands.StrictParentCheck, services.NewItineraryPolicy(tc.uniqueDays),
			)

			first, err := commands.NewAddItineraryItemCommand(kernel.NewUUID(), created.ID(), 1, "Arrive")
			require.NoError(t, err)
			_, err = h.Handle(ctx, first)
			require.NoError(t, err)

			second, err := commands.NewAddItineraryItemCommand(kernel.NewUUID(), created.ID(), 1, "Dinner")
			require.NoError(t, err)
			_, err = h.Handle(ctx, second)

			if tc.wantErr {
				require.True(t, errs.IsValidation(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAddItineraryItemCommandHandler_RejectsDayZero(t *testing.T) {
	f := newMemoryFactories()
	created := createTour(t, f)
	cmd, err := commands.NewAddItineraryItemCommand(kernel.NewUUID(), created.ID(), 0, "Arrive")
	require.NoError(t, err)

	h := commands.NewAddItineraryItemCommandHandler(f.uow(), commands.StrictParentCheck, defaultPolicy())
	_, err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRemoveItineraryItemCommandHandler_ScopedByTour(t *testing.T) {
	ctx := t.Context()
	f := newMemoryFactories()
	owner := createTour(t, f)
	other := createTour(t, f)

	add := commands.NewAddItineraryItemCommandHandler(f.uow(), commands.StrictParentCheck, defaultPolicy())
	cmd, err := commands.NewAddItineraryItemCommand(kernel.NewUUID(), owner.ID(), 2, "Fort")
	require.NoError(t, err)
	item, err := add.Handle(ctx, cmd)
	require.NoError(t, err)

	h := commands.NewRemoveItineraryItemCommandHandler(f.uow())

	wrongTour, err := commands.NewRemoveItineraryItemCommand(other.ID(), item.ID())
	require.NoError(t, err)
	require.ErrorIs(t, h.Handle(ctx, wrongTour), errs.ErrObjectNotFound)

	scoped, err := commands.NewRemoveItineraryItemCommand(owner.ID(), item.ID())
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, scoped))
	require.ErrorIs(t, h.Handle(ctx, scoped), errs.ErrObjectNotFound)
}

func TestSweepOrphansCommandHandler_RemovesDependentsOfMissingTours(t *testing.T) {
	ctx := t.Context()
	f := newMemoryFactories()
	kept := createTour(t, f)
	addLine(t, f, kept.ID(), tour.Included, "Hotel pickup")
	addImageByRef(t, f, kept.ID(), "/uploads/kept.jpg")

	// Dependents left behind by a cascade that failed part way.
	ghost := kernel.NewUUID()
	lenientLines := commands.NewAddTourLineCommandHandler(f.uow(), commands.LenientParentCheck)
	for _, desc := range []string{"a", "b"} {
		cmd, err := commands.NewAddTourLineCommand(kernel.NewUUID(), ghost, tour.Excluded, desc)
		require.NoError(t, err)
		_, err = lenientLines.Handle(ctx, cmd)
		require.NoError(t, err)
	}

	h := commands.NewSweepOrphansCommandHandler(f.uow(), discardLogger())
	report, err := h.Handle(ctx, commands.NewSweepOrphansCommand())
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.Removed[commands.StepLines])
	assert.Equal(t, int64(2), report.Total())

	ghostLines, err := f.repos().TourLineRepository().ListByTour(ctx, ghost, tour.Excluded)
	require.NoError(t, err)
	assert.Empty(t, ghostLines)

	keptLines, err := f.repos().TourLineRepository().ListByTour(ctx, kept.ID(), tour.Included)
	require.NoError(t, err)
	assert.Len(t, keptLines, 1)

	report, err = h.Handle(ctx, commands.NewSweepOrphansCommand())
	require.NoError(t, err)
	assert.Zero(t, report.Total())
}
