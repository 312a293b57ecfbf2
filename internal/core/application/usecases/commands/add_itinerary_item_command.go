package commands

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/guard"
)

var (
	ErrAddItineraryItemCommandIsNotConstructed = errors.New(
		"AddItineraryItemCommand must be created via NewAddItineraryItemCommand constructor",
	)
)

// AddItineraryItemCommand adds one day's activity to a tour's itinerary.
type AddItineraryItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	tourID    kernel.UUID
	dayNumber int
	activity  string

	guard guard.ConstructorGuard
}

func NewAddItineraryItemCommand(
	itemID kernel.UUID,
	tourID kernel.UUID,
	dayNumber int,
	activity string,
) (AddItineraryItemCommand, error) {
	if err := errors.Join(itemID.Validate(), tourID.Validate()); err != nil {
		return AddItineraryItemCommand{}, err
	}

	return AddItineraryItemCommand{
		itemID:    itemID,
		tourID:    tourID,
		dayNumber: dayNumber,
		activity:  activity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddItineraryItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItineraryItemCommandIsNotConstructed)
}

func (c AddItineraryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AddItineraryItemCommand) TourID() kernel.UUID {
	return c.tourID
}

func (c AddItineraryItemCommand) DayNumber() int {
	return c.dayNumber
}

func (c AddItineraryItemCommand) Activity() string {
	return c.activity
}
