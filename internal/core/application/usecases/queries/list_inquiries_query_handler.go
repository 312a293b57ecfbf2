package queries

import (
	"context"

	"tours/internal/core/domain/model/inquiry"
	"tours/internal/pkg/pagination"

	"golang.org/x/sync/errgroup"
)

type ListInquiriesQueryHandler struct {
	readers ReaderFactory
}

func NewListInquiriesQueryHandler(readers ReaderFactory) ListInquiriesQueryHandler {
	return ListInquiriesQueryHandler{readers: readers}
}

func (h ListInquiriesQueryHandler) Handle(
	ctx context.Context,
	query ListInquiriesQuery,
) (ListInquiriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListInquiriesQueryResponse{}, err
	}

	var (
		items []*inquiry.Inquiry
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = h.readers.Create().InquiryRepository().List(gctx, query.Page())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = h.readers.Create().InquiryRepository().Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return ListInquiriesQueryResponse{}, err
	}

	return pagination.NewResult(items, total, query.Page()), nil
}
