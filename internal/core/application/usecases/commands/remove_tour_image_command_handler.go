package commands

import (
	"context"
	"errors"

	"tours/internal/pkg/errs"
)

// RemoveTourImageCommandHandler deletes an image and re-derives the tour's
// primary image. When the removed image was primary, the earliest created
// remaining image takes its place, or the primary is cleared when none
// remain. Removing a non-primary image leaves the tour untouched.
type RemoveTourImageCommandHandler struct {
	uowFactory UoWFactory
	reconciler primaryImageReconciler
}

func NewRemoveTourImageCommandHandler(uowFactory UoWFactory) RemoveTourImageCommandHandler {
	return RemoveTourImageCommandHandler{
		uowFactory: uowFactory,
		reconciler: newPrimaryImageReconciler(uowFactory),
	}
}

// Handle returns ObjectNotFoundError when the tour owns no image with that ID.
func (h *RemoveTourImageCommandHandler) Handle(ctx context.Context, cmd RemoveTourImageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.delete(ctx, cmd); err != nil {
		return err
	}

	// The image may have been an orphan of an already deleted tour.
	if _, err := h.reconciler.reconcile(ctx, cmd.TourID()); err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	return nil
}

func (h *RemoveTourImageCommandHandler) delete(ctx context.Context, cmd RemoveTourImageCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.TourImageRepository().DeleteScoped(ctx, cmd.TourID(), cmd.ImageID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
