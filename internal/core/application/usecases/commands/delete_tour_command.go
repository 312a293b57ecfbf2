package commands

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/guard"
)

var (
	ErrDeleteTourCommandIsNotConstructed = errors.New(
		"DeleteTourCommand must be created via NewDeleteTourCommand constructor",
	)
)

// DeleteTourCommand removes a tour together with its images, inclusion and
// exclusion lines, and itinerary.
type DeleteTourCommand struct { //nolint:recvcheck //using for validation
	tourID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteTourCommand(tourID kernel.UUID) (DeleteTourCommand, error) {
	if err := tourID.Validate(); err != nil {
		return DeleteTourCommand{}, err
	}

	return DeleteTourCommand{
		tourID: tourID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteTourCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTourCommandIsNotConstructed)
}

func (c DeleteTourCommand) TourID() kernel.UUID {
	return c.tourID
}
