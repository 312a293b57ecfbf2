package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"
)

// AddTourImageCommandHandler attaches an image to a tour and keeps the
// tour's primary image consistent with its image collection.
//
// The image insert and the primary image write are separate steps. Once the
// insert committed the image is returned even if the second step fails; the
// tour is then left without a matching primary image until the next add,
// remove or reconcile run repairs it.
type AddTourImageCommandHandler struct {
	uowFactory  UoWFactory
	media       ports.MediaStore
	parentCheck ParentCheck
	reconciler  primaryImageReconciler
	logger      *slog.Logger
	now         func() time.Time
}

func NewAddTourImageCommandHandler(
	uowFactory UoWFactory,
	media ports.MediaStore,
	parentCheck ParentCheck,
	logger *slog.Logger,
) AddTourImageCommandHandler {
	return AddTourImageCommandHandler{
		uowFactory:  uowFactory,
		media:       media,
		parentCheck: parentCheck,
		reconciler:  newPrimaryImageReconciler(uowFactory),
		logger:      logger.With("component", "AddTourImageCommandHandler"),
		now:         utcNow,
	}
}

// Handle returns the created image, not the tour.
func (h *AddTourImageCommandHandler) Handle(ctx context.Context, cmd AddTourImageCommand) (*tour.Image, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.parentCheck.ensureTourExists(ctx, h.uowFactory.Create(), cmd.TourID()); err != nil {
		return nil, err
	}

	ref, err := h.resolveReference(ctx, cmd)
	if err != nil {
		return nil, err
	}

	image, err := tour.NewImage(cmd.ImageID(), cmd.TourID(), ref, h.now())
	if err == nil {
		err = h.insert(ctx, image)
	}
	if err != nil {
		h.discardUpload(ctx, cmd, ref)
		return nil, err
	}

	if _, err = h.reconciler.reconcile(ctx, cmd.TourID()); err != nil {
		level := slog.LevelWarn
		if errors.Is(err, errs.ErrObjectNotFound) && h.parentCheck == LenientParentCheck {
			level = slog.LevelDebug
		}
		h.logger.Log(ctx, level, "primary image left for reconcile",
			"tourId", cmd.TourID().String(), "imageId", image.ID().String(), "error", err)
	}

	return image, nil
}

// discardUpload removes a file saved for an image that was never stored.
func (h *AddTourImageCommandHandler) discardUpload(ctx context.Context, cmd AddTourImageCommand, ref string) {
	if cmd.Upload() == nil {
		return
	}
	if err := h.media.Delete(ctx, ref); err != nil {
		h.logger.WarnContext(ctx, "failed to remove unused upload", "ref", ref, "error", err)
	}
}

func (h *AddTourImageCommandHandler) resolveReference(ctx context.Context, cmd AddTourImageCommand) (string, error) {
	upload := cmd.Upload()
	if upload == nil {
		return cmd.ImageURL(), nil
	}
	return h.media.Save(ctx, upload.Filename, upload.Content)
}

func (h *AddTourImageCommandHandler) insert(ctx context.Context, image *tour.Image) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TourImageRepository().Add(ctx, image); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
