package queries

import (
	"context"

	"tours/internal/core/domain/model/tour"

	"golang.org/x/sync/errgroup"
)

// GetTourViewQueryHandler loads the tour first; dependents are fetched only
// when it exists. The four dependent reads run concurrently.
//
// Example:
//
//	query, _ := NewGetTourViewQuery(tourID)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
//	fmt.Printf("%s has %d images\n", view.Tour.Name(), len(view.Images))
type GetTourViewQueryHandler struct {
	readers ReaderFactory
}

func NewGetTourViewQueryHandler(readers ReaderFactory) GetTourViewQueryHandler {
	return GetTourViewQueryHandler{readers: readers}
}

func (h GetTourViewQueryHandler) Handle(ctx context.Context, query GetTourViewQuery) (GetTourViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTourViewQueryResponse{}, err
	}

	aggregate, err := h.readers.Create().TourRepository().Get(ctx, query.TourID())
	if err != nil {
		return GetTourViewQueryResponse{}, err
	}

	view := GetTourViewQueryResponse{Tour: aggregate}
	tourID := query.TourID()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var listErr error
		view.Inclusions, listErr = h.readers.Create().TourLineRepository().ListByTour(gctx, tourID, tour.Included)
		return listErr
	})
	g.Go(func() error {
		var listErr error
		view.Exclusions, listErr = h.readers.Create().TourLineRepository().ListByTour(gctx, tourID, tour.Excluded)
		return listErr
	})
	g.Go(func() error {
		items, listErr := h.readers.Create().ItineraryRepository().ListByTour(gctx, tourID)
		if listErr != nil {
			return listErr
		}
		tour.SortItinerary(items)
		view.Itinerary = items
		return nil
	})
	g.Go(func() error {
		images, listErr := h.readers.Create().TourImageRepository().ListByTour(gctx, tourID)
		if listErr != nil {
			return listErr
		}
		tour.SortImages(images)
		view.Images = images
		return nil
	})

	if err = g.Wait(); err != nil {
		return GetTourViewQueryResponse{}, err
	}

	return view, nil
}
