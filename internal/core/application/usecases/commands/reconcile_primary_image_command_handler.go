package commands

import (
	"context"
)

// ReconcilePrimaryImageCommandHandler repairs a tour whose primary image
// drifted from its image collection, e.g. after a crash between the two
// writes of an image add.
//
// Example:
//
//	cmd, _ := NewReconcilePrimaryImageCommand(tourID)
//	changed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if changed {
//	    logger.Info("primary image repaired", "tourId", tourID.String())
//	}
type ReconcilePrimaryImageCommandHandler struct {
	reconciler primaryImageReconciler
}

func NewReconcilePrimaryImageCommandHandler(uowFactory UoWFactory) ReconcilePrimaryImageCommandHandler {
	return ReconcilePrimaryImageCommandHandler{
		reconciler: newPrimaryImageReconciler(uowFactory),
	}
}

// Handle reports whether the stored primary image was changed.
func (h *ReconcilePrimaryImageCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcilePrimaryImageCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	return h.reconciler.reconcile(ctx, cmd.TourID())
}
