package queries

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/guard"
)

var (
	ErrListTourDependentsQueryIsNotConstructed = errors.New(
		"ListTourDependentsQuery must be created via NewListTourDependentsQuery constructor",
	)
)

// Dependent names one collection owned by a tour.
type Dependent int

const (
	UnknownDependent Dependent = iota
	Inclusions
	Exclusions
	Itinerary
	Images
)

// ListTourDependentsQuery lists one dependent collection of a tour by
// tourId. The tour itself is not looked up, so the lists of a deleted tour
// are simply empty.
type ListTourDependentsQuery struct {
	tourID    kernel.UUID
	dependent Dependent

	guard guard.ConstructorGuard
}

func NewListTourDependentsQuery(tourID kernel.UUID, dependent Dependent) (ListTourDependentsQuery, error) {
	if err := tourID.Validate(); err != nil {
		return ListTourDependentsQuery{}, err
	}
	if dependent < Inclusions || dependent > Images {
		return ListTourDependentsQuery{}, errors.New("unknown tour dependent")
	}
	return ListTourDependentsQuery{tourID: tourID, dependent: dependent, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTourDependentsQuery) Validate() error {
	return q.guard.Validate(ErrListTourDependentsQueryIsNotConstructed)
}

func (q ListTourDependentsQuery) TourID() kernel.UUID {
	return q.tourID
}

func (q ListTourDependentsQuery) Dependent() Dependent {
	return q.dependent
}

// ListTourDependentsQueryResponse holds the one slice that was asked for.
type ListTourDependentsQueryResponse struct {
	Lines     []*tour.Line
	Itinerary []*tour.ItineraryItem
	Images    []*tour.Image
}
