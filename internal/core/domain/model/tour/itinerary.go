package tour

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"
)

var ErrItineraryItemIsNotConstructed = errors.New(
	"ItineraryItem must be created via NewItineraryItem or RestoreItineraryItem constructor",
)

// ItineraryItem is one activity on a given day of a tour. Several items may
// share a day number unless the unique-days policy is enabled.
type ItineraryItem struct {
	id        kernel.UUID
	tourID    kernel.UUID
	dayNumber int
	activity  string
	createdAt time.Time

	guard guard.ConstructorGuard
}

func NewItineraryItem(
	id kernel.UUID,
	tourID kernel.UUID,
	dayNumber int,
	activity string,
	now time.Time,
) (*ItineraryItem, error) {
	return RestoreItineraryItem(id, tourID, dayNumber, activity, now)
}

func RestoreItineraryItem(
	id kernel.UUID,
	tourID kernel.UUID,
	dayNumber int,
	activity string,
	createdAt time.Time,
) (*ItineraryItem, error) {
	var dayErr error
	if dayNumber < 1 {
		dayErr = errs.NewValueIsInvalidErrorWithCause("dayNumber", fmt.Errorf("%d is not greater than 0", dayNumber))
	}

	if err := errors.Join(
		id.Validate(),
		tourID.Validate(),
		dayErr,
		validateRequired("activity", activity),
	); err != nil {
		return nil, err
	}

	return &ItineraryItem{
		id:        id,
		tourID:    tourID,
		dayNumber: dayNumber,
		activity:  activity,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (i *ItineraryItem) Validate() error {
	if i == nil {
		return ErrItineraryItemIsNotConstructed
	}
	return i.guard.Validate(ErrItineraryItemIsNotConstructed)
}

func (i *ItineraryItem) ID() kernel.UUID {
	return i.id
}

func (i *ItineraryItem) TourID() kernel.UUID {
	return i.tourID
}

func (i *ItineraryItem) DayNumber() int {
	return i.dayNumber
}

func (i *ItineraryItem) Activity() string {
	return i.activity
}

func (i *ItineraryItem) CreatedAt() time.Time {
	return i.createdAt
}

// SortItinerary orders items by day number ascending, keeping insertion order
// within a day.
func SortItinerary(items []*ItineraryItem) {
	sort.SliceStable(items, func(a, b int) bool {
		if items[a].dayNumber != items[b].dayNumber {
			return items[a].dayNumber < items[b].dayNumber
		}
		return items[a].createdAt.Before(items[b].createdAt)
	})
}
