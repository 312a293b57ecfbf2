package commands

import (
	"context"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/errs"
)

// ParentCheck controls whether dependents may be created for a tour that
// does not exist.
type ParentCheck bool

const (
	// StrictParentCheck rejects dependents of a missing tour with
	// ObjectNotFoundError.
	StrictParentCheck ParentCheck = true

	// LenientParentCheck creates dependents without looking the tour up.
	LenientParentCheck ParentCheck = false
)

// ensureTourExists reads through repos without a transaction; the check is
// advisory since the tour can be deleted right after it.
func (c ParentCheck) ensureTourExists(ctx context.Context, repos TourRepoFactory, tourID kernel.UUID) error {
	if !c {
		return nil
	}

	exists, err := repos.TourRepository().Exists(ctx, tourID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("tourId", tourID)
	}
	return nil
}
