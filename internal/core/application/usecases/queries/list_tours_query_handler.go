package queries

import (
	"context"

	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/pagination"

	"golang.org/x/sync/errgroup"
)

// ListToursQueryHandler reads the page and the total match count
// concurrently.
type ListToursQueryHandler struct {
	readers ReaderFactory
}

func NewListToursQueryHandler(readers ReaderFactory) ListToursQueryHandler {
	return ListToursQueryHandler{readers: readers}
}

func (h ListToursQueryHandler) Handle(ctx context.Context, query ListToursQuery) (ListToursQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListToursQueryResponse{}, err
	}

	var (
		items []*tour.Tour
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = h.readers.Create().TourRepository().List(gctx, query.Filter(), query.Page())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = h.readers.Create().TourRepository().Count(gctx, query.Filter())
		return err
	})

	if err := g.Wait(); err != nil {
		return ListToursQueryResponse{}, err
	}

	return pagination.NewResult(items, total, query.Page()), nil
}
