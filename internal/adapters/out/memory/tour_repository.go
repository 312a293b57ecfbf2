package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/pagination"
)

var _ ports.TourRepository = &TourRepository{}

type TourRepository struct {
	store *Store
}

func (r *TourRepository) Add(_ context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.tours[aggregate.ID().String()] = tourRecord{
		id:        aggregate.ID().String(),
		details:   aggregate.Details(),
		imageURL:  aggregate.ImageURL(),
		version:   aggregate.Version(),
		createdAt: aggregate.CreatedAt(),
		updatedAt: aggregate.UpdatedAt(),
	}
	return nil
}

func (r *TourRepository) Update(_ context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.tours[aggregate.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("tourId", aggregate.ID())
	}
	rec.details = aggregate.Details()
	rec.updatedAt = aggregate.UpdatedAt()
	r.store.tours[rec.id] = rec
	return nil
}

func (r *TourRepository) UpdatePrimaryImage(_ context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.tours[aggregate.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("tourId", aggregate.ID())
	}
	if rec.version != aggregate.Version() {
		return errs.NewVersionIsInvalidError("tour", aggregate.Version())
	}
	rec.imageURL = aggregate.ImageURL()
	rec.updatedAt = aggregate.UpdatedAt()
	rec.version++
	r.store.tours[rec.id] = rec
	return nil
}

func (r *TourRepository) Get(_ context.Context, id kernel.UUID) (*tour.Tour, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.tours[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("tourId", id)
	}
	return rec.toDomain()
}

func (r *TourRepository) Exists(_ context.Context, id kernel.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.tours[id.String()]
	return ok, nil
}

func (r *TourRepository) Delete(_ context.Context, id kernel.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tours[id.String()]; !ok {
		return errs.NewObjectNotFoundError("tourId", id)
	}
	delete(r.store.tours, id.String())
	return nil
}

func (r *TourRepository) List(_ context.Context, filter ports.TourFilter, page pagination.Page) ([]*tour.Tour, error) {
	r.store.mu.RLock()
	matched := r.match(filter)
	r.store.mu.RUnlock()

	slices.SortStableFunc(matched, tourComparator(page))

	start := min(page.Skip(), len(matched))
	end := min(start+page.Limit(), len(matched))

	result := make([]*tour.Tour, 0, end-start)
	for _, rec := range matched[start:end] {
		t, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

func (r *TourRepository) Count(_ context.Context, filter ports.TourFilter) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return int64(len(r.match(filter))), nil
}

func (r *TourRepository) ListIDs(_ context.Context) ([]kernel.UUID, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := make([]string, 0, len(r.store.tours))
	for id := range r.store.tours {
		ids = append(ids, id)
	}
	return parseIDs(ids)
}

// match must be called with the read lock held.
func (r *TourRepository) match(filter ports.TourFilter) []tourRecord {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	matched := make([]tourRecord, 0, len(r.store.tours))
	for _, rec := range r.store.tours {
		if filter.HotOnly && !rec.details.IsHotDeal {
			continue
		}
		if search != "" && !containsFold(search, rec.details.Name, rec.details.Location, rec.details.Tagline) {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}

func containsFold(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func tourComparator(page pagination.Page) func(a, b tourRecord) int {
	var byField func(a, b tourRecord) int
	switch page.SortBy() {
	case "price":
		byField = func(a, b tourRecord) int { return cmp.Compare(a.details.Price, b.details.Price) }
	case "rating":
		byField = func(a, b tourRecord) int { return cmp.Compare(a.details.Rating, b.details.Rating) }
	case "name":
		byField = func(a, b tourRecord) int { return strings.Compare(a.details.Name, b.details.Name) }
	case "reviewsCount":
		byField = func(a, b tourRecord) int { return cmp.Compare(a.details.ReviewsCount, b.details.ReviewsCount) }
	default:
		byField = func(a, b tourRecord) int { return a.createdAt.Compare(b.createdAt) }
	}

	return func(a, b tourRecord) int {
		c := byField(a, b)
		if c == 0 {
			c = strings.Compare(a.id, b.id)
		}
		if page.SortOrder() == pagination.Descending {
			return -c
		}
		return c
	}
}

func (rec tourRecord) toDomain() (*tour.Tour, error) {
	id, err := kernel.UUIDFromString(rec.id)
	if err != nil {
		return nil, err
	}
	return tour.RestoreTour(id, rec.details, rec.imageURL, rec.version, rec.createdAt, rec.updatedAt)
}

func parseIDs(raw []string) ([]kernel.UUID, error) {
	slices.Sort(raw)
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
