package commands

import (
	"context"
	"errors"
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/services"
	"tours/internal/pkg/errs"
)

// MaxReconcileAttempts bounds how often a lost compare-and-swap on the tour
// version is retried before the conflict is reported.
const MaxReconcileAttempts = 3

// primaryImageReconciler re-derives a tour's primary image from the images it
// owns and persists the result with a compare-and-swap on the tour version.
// It writes only when the derived value differs from the stored one.
type primaryImageReconciler struct {
	uowFactory UoWFactory
	selector   services.PrimaryImageSelector
	now        func() time.Time
}

func newPrimaryImageReconciler(uowFactory UoWFactory) primaryImageReconciler {
	return primaryImageReconciler{
		uowFactory: uowFactory,
		selector:   services.NewPrimaryImageSelector(),
		now:        utcNow,
	}
}

// reconcile reports whether the primary image was changed. A tour that does
// not exist yields ObjectNotFoundError.
func (r primaryImageReconciler) reconcile(ctx context.Context, tourID kernel.UUID) (bool, error) {
	var expected int
	for range MaxReconcileAttempts {
		changed, version, err := r.attempt(ctx, tourID)
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			expected = version
			continue
		}
		return changed, err
	}

	return false, errs.NewVersionIsInvalidError("tour", expected)
}

func (r primaryImageReconciler) attempt(ctx context.Context, tourID kernel.UUID) (bool, int, error) {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tourRepo := uow.TourRepository()
	aggregate, err := tourRepo.Get(ctx, tourID)
	if err != nil {
		return false, 0, err
	}

	images, err := uow.TourImageRepository().ListByTour(ctx, tourID)
	if err != nil {
		return false, aggregate.Version(), err
	}

	ref, err := r.selector.Select(aggregate, images)
	if err != nil {
		return false, aggregate.Version(), err
	}

	if !aggregate.ChangePrimaryImage(ref, r.now()) {
		return false, aggregate.Version(), nil
	}

	if err = tourRepo.UpdatePrimaryImage(ctx, aggregate); err != nil {
		return false, aggregate.Version(), err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, aggregate.Version(), err
	}

	return true, aggregate.Version(), nil
}
