package queries

import (
	"errors"

	"tours/internal/core/domain/model/inquiry"
	"tours/internal/pkg/guard"
	"tours/internal/pkg/pagination"
)

var (
	ErrListInquiriesQueryIsNotConstructed = errors.New(
		"ListInquiriesQuery must be created via NewListInquiriesQuery constructor",
	)

	inquirySortFields = []string{"createdAt"}
)

// ListInquiriesQuery pages through inquiries, newest first by default.
type ListInquiriesQuery struct {
	page pagination.Page

	guard guard.ConstructorGuard
}

func NewListInquiriesQuery(req pagination.Request) (ListInquiriesQuery, error) {
	page, err := pagination.NewPage(req, inquirySortFields)
	if err != nil {
		return ListInquiriesQuery{}, err
	}
	return ListInquiriesQuery{page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListInquiriesQuery) Validate() error {
	return q.guard.Validate(ErrListInquiriesQueryIsNotConstructed)
}

func (q ListInquiriesQuery) Page() pagination.Page {
	return q.page
}

type ListInquiriesQueryResponse = pagination.Result[*inquiry.Inquiry]
