package ports

import (
	"context"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/pagination"
)

// TourFilter narrows a tour listing. Search matches name, location and
// tagline case-insensitively.
type TourFilter struct {
	HotOnly bool
	Search  string
}

// TourSortFields are the fields a tour listing may be sorted by.
var TourSortFields = []string{"createdAt", "price", "rating", "name", "reviewsCount"}

// TourRepository defines the persistence contract for tour aggregates.
type TourRepository interface {
	// Add persists a new tour.
	Add(ctx context.Context, aggregate *tour.Tour) error

	// Update persists the tour's details and updatedAt. The primary image and
	// version columns are not written. Returns an ObjectNotFoundError when
	// the tour does not exist.
	Update(ctx context.Context, aggregate *tour.Tour) error

	// UpdatePrimaryImage writes the tour's primary image with a
	// compare-and-swap on Version(): the write succeeds only if the stored
	// version still equals the version read, and bumps it by one.
	// Returns VersionIsInvalidError when the row moved on and
	// ObjectNotFoundError when it is gone.
	UpdatePrimaryImage(ctx context.Context, aggregate *tour.Tour) error

	// Get retrieves a tour. Returns ObjectNotFoundError when missing.
	Get(ctx context.Context, id kernel.UUID) (*tour.Tour, error)

	// Exists reports whether the tour is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes the tour record only. Returns ObjectNotFoundError when
	// nothing was deleted.
	Delete(ctx context.Context, id kernel.UUID) error

	// List returns one page of tours matching filter.
	List(ctx context.Context, filter TourFilter, page pagination.Page) ([]*tour.Tour, error)

	// Count returns the number of tours matching filter.
	Count(ctx context.Context, filter TourFilter) (int64, error)

	// ListIDs returns the IDs of every stored tour.
	ListIDs(ctx context.Context) ([]kernel.UUID, error)
}
