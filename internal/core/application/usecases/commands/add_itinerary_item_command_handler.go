package commands

import (
	"context"
	"time"

	"tours/internal/core/domain/model/tour"
	"tours/internal/core/domain/services"
)

// AddItineraryItemCommandHandler creates itinerary items. Duplicate day
// numbers are accepted unless the policy requires unique days.
type AddItineraryItemCommandHandler struct {
	uowFactory  UoWFactory
	parentCheck ParentCheck
	policy      services.ItineraryPolicy
	now         func() time.Time
}

func NewAddItineraryItemCommandHandler(
	uowFactory UoWFactory,
	parentCheck ParentCheck,
	policy services.ItineraryPolicy,
) AddItineraryItemCommandHandler {
	return AddItineraryItemCommandHandler{
		uowFactory:  uowFactory,
		parentCheck: parentCheck,
		policy:      policy,
		now:         utcNow,
	}
}

func (h *AddItineraryItemCommandHandler) Handle(
	ctx context.Context,
	cmd AddItineraryItemCommand,
) (*tour.ItineraryItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := tour.NewItineraryItem(cmd.ItemID(), cmd.TourID(), cmd.DayNumber(), cmd.Activity(), h.now())
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

	if err = h.parentCheck.ensureTourExists(ctx, uow, cmd.TourID()); err != nil {
		return nil, err
	}

	itineraryRepo := uow.ItineraryRepository()

	var existing []*tour.ItineraryItem
	if h.policy.RequiresUniqueDays() {
		if existing, err = itineraryRepo.ListByTour(ctx, cmd.TourID()); err != nil {
			return nil, err
		}
	}
	if err = h.policy.Check(item, existing); err != nil {
		return nil, err
	}

	if err = itineraryRepo.Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
