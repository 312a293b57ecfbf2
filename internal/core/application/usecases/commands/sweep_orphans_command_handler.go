package commands

import (
	"context"
	"log/slog"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"
)

// SweepReport counts the rows removed per dependent collection.
type SweepReport struct {
	Removed map[string]int64
}

// Total is the number of rows removed across all collections.
func (r SweepReport) Total() int64 {
	var total int64
	for _, n := range r.Removed {
		total += n
	}
	return total
}

// SweepOrphansCommandHandler finds tour IDs referenced by a dependent
// collection that have no tour and deletes their rows by tourId.
type SweepOrphansCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewSweepOrphansCommandHandler(uowFactory UoWFactory, logger *slog.Logger) SweepOrphansCommandHandler {
	return SweepOrphansCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "SweepOrphansCommandHandler"),
	}
}

// Handle sweeps every collection even when one of them fails; failures are
// returned as a ConsistencyError naming the collections left unswept.
func (h *SweepOrphansCommandHandler) Handle(ctx context.Context, cmd SweepOrphansCommand) (SweepReport, error) {
	report := SweepReport{Removed: map[string]int64{}}
	if err := cmd.Validate(); err != nil {
		return report, err
	}

	steps := []struct {
		name       string
		collection func(UoW) ports.DependentCollection
	}{
		{StepImages, func(u UoW) ports.DependentCollection { return u.TourImageRepository() }},
		{StepLines, func(u UoW) ports.DependentCollection { return u.TourLineRepository() }},
		{StepItinerary, func(u UoW) ports.DependentCollection { return u.ItineraryRepository() }},
	}

	consistencyErr := errs.NewConsistencyError("sweep orphans", "")
	for _, step := range steps {
		removed, err := h.sweep(ctx, step.collection)
		report.Removed[step.name] = removed
		if err != nil {
			h.logger.ErrorContext(ctx, "sweep failed", "step", step.name, "error", err)
			consistencyErr.Add(step.name, err)
		}
	}

	return report, consistencyErr.ErrorOrNil()
}

func (h *SweepOrphansCommandHandler) sweep(
	ctx context.Context,
	collection func(UoW) ports.DependentCollection,
) (int64, error) {
	uow := h.uowFactory.Create()

	tourIDs, err := collection(uow).ListTourIDs(ctx)
	if err != nil {
		return 0, err
	}

	var removed int64
	for _, tourID := range tourIDs {
		orphaned, existsErr := h.isOrphaned(ctx, uow, tourID)
		if existsErr != nil {
			return removed, existsErr
		}
		if !orphaned {
			continue
		}

		n, deleteErr := deleteByTour(ctx, h.uowFactory.Create(), collection, tourID)
		if deleteErr != nil {
			return removed, deleteErr
		}
		if n > 0 {
			h.logger.InfoContext(ctx, "removed orphaned dependents", "tourId", tourID.String(), "removed", n)
		}
		removed += n
	}

	return removed, nil
}

func (h *SweepOrphansCommandHandler) isOrphaned(ctx context.Context, repos TourRepoFactory, tourID kernel.UUID) (bool, error) {
	exists, err := repos.TourRepository().Exists(ctx, tourID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
