package commands

import (
	"context"
)

type RemoveTourLineCommandHandler struct {
	uowFactory UoWFactory
}

func NewRemoveTourLineCommandHandler(uowFactory UoWFactory) RemoveTourLineCommandHandler {
	return RemoveTourLineCommandHandler{uowFactory: uowFactory}
}

// Handle returns ObjectNotFoundError when no line matches ID, tour and type.
func (h *RemoveTourLineCommandHandler) Handle(ctx context.Context, cmd RemoveTourLineCommand) error {
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

	if err := uow.TourLineRepository().DeleteScoped(ctx, cmd.TourID(), cmd.LineType(), cmd.LineID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
