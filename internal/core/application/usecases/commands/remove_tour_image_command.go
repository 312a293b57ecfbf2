package commands

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/guard"
)

var (
	ErrRemoveTourImageCommandIsNotConstructed = errors.New(
		"RemoveTourImageCommand must be created via NewRemoveTourImageCommand constructor",
	)
)

// RemoveTourImageCommand removes an image only if it belongs to the tour.
type RemoveTourImageCommand struct { //nolint:recvcheck //using for validation
	tourID  kernel.UUID
	imageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveTourImageCommand(tourID kernel.UUID, imageID kernel.UUID) (RemoveTourImageCommand, error) {
	if err := errors.Join(tourID.Validate(), imageID.Validate()); err != nil {
		return RemoveTourImageCommand{}, err
	}

	return RemoveTourImageCommand{
		tourID:  tourID,
		imageID: imageID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveTourImageCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTourImageCommandIsNotConstructed)
}

func (c RemoveTourImageCommand) TourID() kernel.UUID {
	return c.tourID
}

func (c RemoveTourImageCommand) ImageID() kernel.UUID {
	return c.imageID
}
