package queries

import (
	"errors"

	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/pkg/guard"
	"tours/internal/pkg/pagination"
)

var (
	ErrListToursQueryIsNotConstructed = errors.New(
		"ListToursQuery must be created via NewListToursQuery constructor",
	)
)

// ListToursQuery pages through tours, optionally limited to hot deals or to
// tours whose name, location or tagline contains a search term.
type ListToursQuery struct {
	filter ports.TourFilter
	page   pagination.Page

	guard guard.ConstructorGuard
}

// NewListToursQuery validates the page request against the sortable tour
// fields.
func NewListToursQuery(filter ports.TourFilter, req pagination.Request) (ListToursQuery, error) {
	page, err := pagination.NewPage(req, ports.TourSortFields)
	if err != nil {
		return ListToursQuery{}, err
	}
	return ListToursQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListToursQuery) Validate() error {
	return q.guard.Validate(ErrListToursQueryIsNotConstructed)
}

func (q ListToursQuery) Filter() ports.TourFilter {
	return q.filter
}

func (q ListToursQuery) Page() pagination.Page {
	return q.page
}

type ListToursQueryResponse = pagination.Result[*tour.Tour]
