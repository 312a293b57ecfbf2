package commands

import (
	"context"
)

type RemoveItineraryItemCommandHandler struct {
	uowFactory UoWFactory
}

func NewRemoveItineraryItemCommandHandler(uowFactory UoWFactory) RemoveItineraryItemCommandHandler {
	return RemoveItineraryItemCommandHandler{uowFactory: uowFactory}
}

// Handle returns ObjectNotFoundError when the tour owns no item with that ID.
func (h *RemoveItineraryItemCommandHandler) Handle(ctx context.Context, cmd RemoveItineraryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ItineraryRepository().DeleteScoped(ctx, cmd.TourID(), cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
