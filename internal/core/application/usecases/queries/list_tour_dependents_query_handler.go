package queries

import (
	"context"

	"tours/internal/core/domain/model/tour"
)

type ListTourDependentsQueryHandler struct {
	readers ReaderFactory
}

func NewListTourDependentsQueryHandler(readers ReaderFactory) ListTourDependentsQueryHandler {
	return ListTourDependentsQueryHandler{readers: readers}
}

func (h ListTourDependentsQueryHandler) Handle(
	ctx context.Context,
	query ListTourDependentsQuery,
) (ListTourDependentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListTourDependentsQueryResponse{}, err
	}

	reader := h.readers.Create()
	tourID := query.TourID()
	var (
		resp ListTourDependentsQueryResponse
		err  error
	)

	switch query.Dependent() {
	case Inclusions:
		resp.Lines, err = reader.TourLineRepository().ListByTour(ctx, tourID, tour.Included)
	case Exclusions:
		resp.Lines, err = reader.TourLineRepository().ListByTour(ctx, tourID, tour.Excluded)
	case Itinerary:
		resp.Itinerary, err = reader.ItineraryRepository().ListByTour(ctx, tourID)
		tour.SortItinerary(resp.Itinerary)
	case Images:
		resp.Images, err = reader.TourImageRepository().ListByTour(ctx, tourID)
		tour.SortImages(resp.Images)
	}
	if err != nil {
		return ListTourDependentsQueryResponse{}, err
	}

	return resp, nil
}
