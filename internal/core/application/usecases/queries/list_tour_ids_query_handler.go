package queries

import (
	"context"

	"tours/internal/core/domain/model/kernel"
)

type ListTourIDsQueryHandler struct {
	readers ReaderFactory
}

func NewListTourIDsQueryHandler(readers ReaderFactory) ListTourIDsQueryHandler {
	return ListTourIDsQueryHandler{readers: readers}
}

func (h ListTourIDsQueryHandler) Handle(ctx context.Context, query ListTourIDsQuery) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.readers.Create().TourRepository().ListIDs(ctx)
}
