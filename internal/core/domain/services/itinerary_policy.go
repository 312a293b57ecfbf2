package services

import (
	"fmt"

	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/errs"
)

// ItineraryPolicy decides whether a new itinerary item may join the items a
// tour already has. Duplicate day numbers are allowed unless UniqueDays is
// set.
type ItineraryPolicy struct {
	uniqueDays bool
}

func NewItineraryPolicy(uniqueDays bool) ItineraryPolicy {
	return ItineraryPolicy{uniqueDays: uniqueDays}
}

func (p ItineraryPolicy) RequiresUniqueDays() bool {
	return p.uniqueDays
}

// Check returns a validation error when the policy rejects item.
func (p ItineraryPolicy) Check(item *tour.ItineraryItem, existing []*tour.ItineraryItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !p.uniqueDays {
		return nil
	}

	for _, other := range existing {
		if other.TourID().IsEqual(item.TourID()) && other.DayNumber() == item.DayNumber() {
			return errs.NewValueIsInvalidErrorWithCause(
				"dayNumber",
				fmt.Errorf("day %d already has an activity", item.DayNumber()),
			)
		}
	}
	return nil
}
