package ports

import (
	"context"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
)

// DependentCollection is implemented by every repository of a collection
// whose rows belong to a tour. The cascade and orphan sweep work through it.
type DependentCollection interface {
	// DeleteByTour removes every row owned by tourID and returns how many
	// were removed. It is idempotent.
	DeleteByTour(ctx context.Context, tourID kernel.UUID) (int64, error)

	// ListTourIDs returns the distinct owning tour IDs present in the collection.
	ListTourIDs(ctx context.Context) ([]kernel.UUID, error)
}

// TourImageRepository stores the images of tours.
type TourImageRepository interface {
	DependentCollection

	Add(ctx context.Context, image *tour.Image) error

	// ListByTour returns the tour's images ordered by creation time, then ID.
	ListByTour(ctx context.Context, tourID kernel.UUID) ([]*tour.Image, error)

	// DeleteScoped removes the image only if it belongs to tourID and returns
	// the removed image. Returns ObjectNotFoundError otherwise.
	DeleteScoped(ctx context.Context, tourID kernel.UUID, imageID kernel.UUID) (*tour.Image, error)
}

// TourLineRepository stores inclusion and exclusion lines in one collection.
type TourLineRepository interface {
	DependentCollection

	Add(ctx context.Context, line *tour.Line) error

	// ListByTour returns the tour's lines of the given type in creation order.
	ListByTour(ctx context.Context, tourID kernel.UUID, lineType tour.LineType) ([]*tour.Line, error)

	// DeleteScoped removes the line only when ID, owning tour and type all
	// match. Returns ObjectNotFoundError otherwise.
	DeleteScoped(ctx context.Context, tourID kernel.UUID, lineType tour.LineType, lineID kernel.UUID) error
}

// ItineraryRepository stores itinerary items.
type ItineraryRepository interface {
	DependentCollection

	Add(ctx context.Context, item *tour.ItineraryItem) error

	// ListByTour returns the tour's items ordered by day number ascending.
	ListByTour(ctx context.Context, tourID kernel.UUID) ([]*tour.ItineraryItem, error)

	// DeleteScoped removes the item only if it belongs to tourID. Returns
	// ObjectNotFoundError otherwise.
	DeleteScoped(ctx context.Context, tourID kernel.UUID, itemID kernel.UUID) error
}
