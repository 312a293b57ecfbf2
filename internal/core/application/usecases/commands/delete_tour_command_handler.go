package commands

import (
	"context"
	"log/slog"
	"sync"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// Names of the dependent collections as they appear in ConsistencyError.
const (
	StepImages    = "images"
	StepLines     = "inclusions/exclusions"
	StepItinerary = "itinerary"
)

// DeleteTourCommandHandler runs the tour cascade as a saga:
//
//  1. delete the tour record; a missing tour fails with ObjectNotFoundError
//     and nothing else is touched
//  2. delete images, lines and itinerary items by tourId concurrently
//
// Every step of 2 is attempted even when another fails. Failures are logged
// and returned together as a ConsistencyError; the dependents left behind
// are removed by repeating the delete-by-tourId, which the orphan sweep does.
type DeleteTourCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewDeleteTourCommandHandler(uowFactory UoWFactory, logger *slog.Logger) DeleteTourCommandHandler {
	return DeleteTourCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "DeleteTourCommandHandler"),
	}
}

func (h *DeleteTourCommandHandler) Handle(ctx context.Context, cmd DeleteTourCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.deleteTour(ctx, cmd.TourID()); err != nil {
		return err
	}

	return h.deleteDependents(ctx, cmd.TourID())
}

func (h *DeleteTourCommandHandler) deleteTour(ctx context.Context, tourID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TourRepository().Delete(ctx, tourID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *DeleteTourCommandHandler) deleteDependents(ctx context.Context, tourID kernel.UUID) error {
	steps := map[string]func(UoW) ports.DependentCollection{
		StepImages:    func(u UoW) ports.DependentCollection { return u.TourImageRepository() },
		StepLines:     func(u UoW) ports.DependentCollection { return u.TourLineRepository() },
		StepItinerary: func(u UoW) ports.DependentCollection { return u.ItineraryRepository() },
	}

	consistencyErr := errs.NewConsistencyError("delete tour", tourID.String())

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	for step, collection := range steps {
		// Steps return nil; failures are collected in consistencyErr.
		g.Go(func() error {
			removed, err := deleteByTour(ctx, h.uowFactory.Create(), collection, tourID)
			if err != nil {
				h.logger.ErrorContext(ctx, "cascade step failed",
					"tourId", tourID.String(), "step", step, "error", err)

				mu.Lock()
				consistencyErr.Add(step, err)
				mu.Unlock()
				return nil
			}

			h.logger.DebugContext(ctx, "cascade step done",
				"tourId", tourID.String(), "step", step, "removed", removed)
			return nil
		})
	}
	_ = g.Wait()

	return consistencyErr.ErrorOrNil()
}

// deleteByTour runs one delete-by-tourId step in its own unit of work.
func deleteByTour(
	ctx context.Context,
	uow UoW,
	collection func(UoW) ports.DependentCollection,
	tourID kernel.UUID,
) (int64, error) {
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := collection(uow).DeleteByTour(ctx, tourID)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
