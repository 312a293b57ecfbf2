package commands

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/guard"
)

var (
	ErrUpdateTourCommandIsNotConstructed = errors.New(
		"UpdateTourCommand must be created via NewUpdateTourCommand constructor",
	)
)

// UpdateTourCommand is a merge patch over a tour's mutable fields. The
// primary image cannot be changed through it.
type UpdateTourCommand struct { //nolint:recvcheck //using for validation
	tourID kernel.UUID
	patch  tour.Patch

	guard guard.ConstructorGuard
}

func NewUpdateTourCommand(tourID kernel.UUID, patch tour.Patch) (UpdateTourCommand, error) {
	if err := tourID.Validate(); err != nil {
		return UpdateTourCommand{}, err
	}

	return UpdateTourCommand{
		tourID: tourID,
		patch:  patch,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateTourCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTourCommandIsNotConstructed)
}

func (c UpdateTourCommand) TourID() kernel.UUID {
	return c.tourID
}

func (c UpdateTourCommand) Patch() tour.Patch {
	return c.patch
}
