package queries

import (
	"errors"

	"tours/internal/pkg/guard"
)

var ErrListTourIDsQueryIsNotConstructed = errors.New(
	"ListTourIDsQuery must be created via NewListTourIDsQuery constructor",
)

// ListTourIDsQuery returns the ID of every stored tour. Background repair
// jobs walk tours with it.
type ListTourIDsQuery struct {
	guard guard.ConstructorGuard
}

func NewListTourIDsQuery() ListTourIDsQuery {
	return ListTourIDsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListTourIDsQuery) Validate() error {
	return q.guard.Validate(ErrListTourIDsQueryIsNotConstructed)
}
