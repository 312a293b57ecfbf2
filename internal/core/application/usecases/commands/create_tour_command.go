package commands

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/guard"
)

var (
	ErrCreateTourCommandIsNotConstructed = errors.New(
		"CreateTourCommand must be created via NewCreateTourCommand constructor",
	)
)

// CreateTourCommand represents a request to publish a new tour.
//
// Example:
//
//	cmd, err := NewCreateTourCommand(kernel.NewUUID(), tour.Details{
//	    Name:        "Galle Walk",
//	    Location:    "Galle",
//	    Price:       50,
//	    Duration:    "4 hours",
//	    Description: "d",
//	    Tagline:     "t",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid tour data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateTourCommand struct { //nolint:recvcheck //using for validation
	tourID  kernel.UUID
	details tour.Details

	guard guard.ConstructorGuard
}

// NewCreateTourCommand checks the identifier. Field-level validation of
// details is done by the tour aggregate before anything is written.
func NewCreateTourCommand(tourID kernel.UUID, details tour.Details) (CreateTourCommand, error) {
	if err := tourID.Validate(); err != nil {
		return CreateTourCommand{}, err
	}

	return CreateTourCommand{
		tourID:  tourID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTourCommand) Validate() error {
	return c.guard.Validate(ErrCreateTourCommandIsNotConstructed)
}

func (c CreateTourCommand) TourID() kernel.UUID {
	return c.tourID
}

func (c CreateTourCommand) Details() tour.Details {
	return c.details
}
