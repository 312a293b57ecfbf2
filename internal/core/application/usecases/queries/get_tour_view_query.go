package queries

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/guard"
)

var (
	ErrGetTourViewQueryIsNotConstructed = errors.New(
		"GetTourViewQuery must be created via NewGetTourViewQuery constructor",
	)
)

// GetTourViewQuery fetches a tour with everything it owns.
type GetTourViewQuery struct {
	tourID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTourViewQuery(tourID kernel.UUID) (GetTourViewQuery, error) {
	if err := tourID.Validate(); err != nil {
		return GetTourViewQuery{}, err
	}
	return GetTourViewQuery{tourID: tourID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTourViewQuery) Validate() error {
	return q.guard.Validate(ErrGetTourViewQueryIsNotConstructed)
}

func (q GetTourViewQuery) TourID() kernel.UUID {
	return q.tourID
}

// GetTourViewQueryResponse is the composite view of a tour. Itinerary is
// ordered by day number ascending and images by creation time.
type GetTourViewQueryResponse struct {
	Tour       *tour.Tour
	Inclusions []*tour.Line
	Exclusions []*tour.Line
	Itinerary  []*tour.ItineraryItem
	Images     []*tour.Image
}
