package commands

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/guard"
)

var (
	ErrReconcilePrimaryImageCommandIsNotConstructed = errors.New(
		"ReconcilePrimaryImageCommand must be created via NewReconcilePrimaryImageCommand constructor",
	)
)

// ReconcilePrimaryImageCommand brings a tour's primary image back in line
// with the images it owns. It is idempotent and safe to re-run.
type ReconcilePrimaryImageCommand struct { //nolint:recvcheck //using for validation
	tourID kernel.UUID

	guard guard.ConstructorGuard
}

func NewReconcilePrimaryImageCommand(tourID kernel.UUID) (ReconcilePrimaryImageCommand, error) {
	if err := tourID.Validate(); err != nil {
		return ReconcilePrimaryImageCommand{}, err
	}

	return ReconcilePrimaryImageCommand{
		tourID: tourID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcilePrimaryImageCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePrimaryImageCommandIsNotConstructed)
}

func (c ReconcilePrimaryImageCommand) TourID() kernel.UUID {
	return c.tourID
}
