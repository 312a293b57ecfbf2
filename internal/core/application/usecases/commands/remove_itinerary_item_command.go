package commands

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/guard"
)

var (
	ErrRemoveItineraryItemCommandIsNotConstructed = errors.New(
		"RemoveItineraryItemCommand must be created via NewRemoveItineraryItemCommand constructor",
	)
)

// RemoveItineraryItemCommand removes an item only if it belongs to the tour.
type RemoveItineraryItemCommand struct { //nolint:recvcheck //using for validation
	tourID kernel.UUID
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveItineraryItemCommand(tourID kernel.UUID, itemID kernel.UUID) (RemoveItineraryItemCommand, error) {
	if err := errors.Join(tourID.Validate(), itemID.Validate()); err != nil {
		return RemoveItineraryItemCommand{}, err
	}

	return RemoveItineraryItemCommand{
		tourID: tourID,
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveItineraryItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItineraryItemCommandIsNotConstructed)
}

func (c RemoveItineraryItemCommand) TourID() kernel.UUID {
	return c.tourID
}

func (c RemoveItineraryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
