package commands

import (
	"context"
	"time"

	"tours/internal/core/domain/model/tour"
)

// CreateTourCommandHandler creates tours with no primary image and no
// dependents.
type CreateTourCommandHandler struct {
	uowFactory TourUoWFactory
	now        func() time.Time
}

func NewCreateTourCommandHandler(uowFactory TourUoWFactory) CreateTourCommandHandler {
	return CreateTourCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

// Handle validates the details and persists the new tour.
func (h *CreateTourCommandHandler) Handle(ctx context.Context, cmd CreateTourCommand) (*tour.Tour, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := tour.NewTour(cmd.TourID(), cmd.Details(), h.now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TourRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
