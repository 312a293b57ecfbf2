package commands

import (
	"context"
	"time"

	"tours/internal/core/domain/model/tour"
)

// UpdateTourCommandHandler applies a merge patch to a stored tour. An empty
// patch only moves updatedAt.
type UpdateTourCommandHandler struct {
	uowFactory TourUoWFactory
	now        func() time.Time
}

func NewUpdateTourCommandHandler(uowFactory TourUoWFactory) UpdateTourCommandHandler {
	return UpdateTourCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

// Handle returns ObjectNotFoundError when the tour does not exist and a
// validation error, with nothing written, when the patched tour is invalid.
func (h *UpdateTourCommandHandler) Handle(ctx context.Context, cmd UpdateTourCommand) (*tour.Tour, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tourRepo := uow.TourRepository()
	aggregate, err := tourRepo.Get(ctx, cmd.TourID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Apply(cmd.Patch(), h.now()); err != nil {
		return nil, err
	}

	if err = tourRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
