package memory

import (
	"context"
	"slices"
	"strings"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"
)

var (
	_ ports.TourImageRepository = &TourImageRepository{}
	_ ports.TourLineRepository  = &TourLineRepository{}
	_ ports.ItineraryRepository = &ItineraryRepository{}
)

type TourImageRepository struct {
	store *Store
}

func (r *TourImageRepository) Add(_ context.Context, image *tour.Image) error {
	if err := image.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.images[image.ID().String()] = imageRecord{
		id:        image.ID().String(),
		tourID:    image.TourID().String(),
		imageURL:  image.ImageURL(),
		createdAt: image.CreatedAt(),
		updatedAt: image.UpdatedAt(),
	}
	return nil
}

func (r *TourImageRepository) ListByTour(_ context.Context, tourID kernel.UUID) ([]*tour.Image, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	images := make([]*tour.Image, 0)
	for _, rec := range r.store.images {
		if rec.tourID != tourID.String() {
			continue
		}
		img, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	tour.SortImages(images)
	return images, nil
}

func (r *TourImageRepository) DeleteScoped(_ context.Context, tourID kernel.UUID, imageID kernel.UUID) (*tour.Image, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.images[imageID.String()]
	if !ok || rec.tourID != tourID.String() {
		return nil, errs.NewObjectNotFoundError("imageId", imageID)
	}
	delete(r.store.images, rec.id)
	return rec.toDomain()
}

func (r *TourImageRepository) DeleteByTour(_ context.Context, tourID kernel.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return deleteWhere(r.store.images, func(rec imageRecord) bool { return rec.tourID == tourID.String() }), nil
}

func (r *TourImageRepository) ListTourIDs(_ context.Context) ([]kernel.UUID, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return distinctTourIDs(r.store.images, func(rec imageRecord) string { return rec.tourID })
}

func (rec imageRecord) toDomain() (*tour.Image, error) {
	id, tourID, err := parsePair(rec.id, rec.tourID)
	if err != nil {
		return nil, err
	}
	return tour.RestoreImage(id, tourID, rec.imageURL, rec.createdAt, rec.updatedAt)
}

type TourLineRepository struct {
	store *Store
}

func (r *TourLineRepository) Add(_ context.Context, line *tour.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.lines[line.ID().String()] = lineRecord{
		id:          line.ID().String(),
		tourID:      line.TourID().String(),
		description: line.Description(),
		lineType:    line.Type(),
		createdAt:   line.CreatedAt(),
	}
	return nil
}

func (r *TourLineRepository) ListByTour(
	_ context.Context,
	tourID kernel.UUID,
	lineType tour.LineType,
) ([]*tour.Line, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	recs := make([]lineRecord, 0)
	for _, rec := range r.store.lines {
		if rec.tourID == tourID.String() && rec.lineType == lineType {
			recs = append(recs, rec)
		}
	}
	slices.SortFunc(recs, func(a, b lineRecord) int {
		if c := a.createdAt.Compare(b.createdAt); c != 0 {
			return c
		}
		return strings.Compare(a.id, b.id)
	})

	lines := make([]*tour.Line, 0, len(recs))
	for _, rec := range recs {
		l, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}

func (r *TourLineRepository) DeleteScoped(
	_ context.Context,
	tourID kernel.UUID,
	lineType tour.LineType,
	lineID kernel.UUID,
) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.lines[lineID.String()]
	if !ok || rec.tourID != tourID.String() || rec.lineType != lineType {
		return errs.NewObjectNotFoundError("lineId", lineID)
	}
	delete(r.store.lines, rec.id)
	return nil
}

func (r *TourLineRepository) DeleteByTour(_ context.Context, tourID kernel.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return deleteWhere(r.store.lines, func(rec lineRecord) bool { return rec.tourID == tourID.String() }), nil
}

func (r *TourLineRepository) ListTourIDs(_ context.Context) ([]kernel.UUID, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return distinctTourIDs(r.store.lines, func(rec lineRecord) string { return rec.tourID })
}

func (rec lineRecord) toDomain() (*tour.Line, error) {
	id, tourID, err := parsePair(rec.id, rec.tourID)
	if err != nil {
		return nil, err
	}
	return tour.RestoreLine(id, tourID, rec.description, rec.lineType, rec.createdAt)
}

type ItineraryRepository struct {
	store *Store
}

func (r *ItineraryRepository) Add(_ context.Context, item *tour.ItineraryItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.itinerary[item.ID().String()] = itineraryRecord{
		id:        item.ID().String(),
		tourID:    item.TourID().String(),
		dayNumber: item.DayNumber(),
		activity:  item.Activity(),
		createdAt: item.CreatedAt(),
	}
	return nil
}

func (r *ItineraryRepository) ListByTour(_ context.Context, tourID kernel.UUID) ([]*tour.ItineraryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]*tour.ItineraryItem, 0)
	for _, rec := range r.store.itinerary {
		if rec.tourID != tourID.String() {
			continue
		}
		item, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	tour.SortItinerary(items)
	return items, nil
}

func (r *ItineraryRepository) DeleteScoped(_ context.Context, tourID kernel.UUID, itemID kernel.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.itinerary[itemID.String()]
	if !ok || rec.tourID != tourID.String() {
		return errs.NewObjectNotFoundError("itemId", itemID)
	}
	delete(r.store.itinerary, rec.id)
	return nil
}

func (r *ItineraryRepository) DeleteByTour(_ context.Context, tourID kernel.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return deleteWhere(r.store.itinerary, func(rec itineraryRecord) bool { return rec.tourID == tourID.String() }), nil
}

func (r *ItineraryRepository) ListTourIDs(_ context.Context) ([]kernel.UUID, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return distinctTourIDs(r.store.itinerary, func(rec itineraryRecord) string { return rec.tourID })
}

func (rec itineraryRecord) toDomain() (*tour.ItineraryItem, error) {
	id, tourID, err := parsePair(rec.id, rec.tourID)
	if err != nil {
		return nil, err
	}
	return tour.RestoreItineraryItem(id, tourID, rec.dayNumber, rec.activity, rec.createdAt)
}

func deleteWhere[R any](records map[string]R, pred func(R) bool) int64 {
	var removed int64
	for id, rec := range records {
		if pred(rec) {
			delete(records, id)
			removed++
		}
	}
	return removed
}

func distinctTourIDs[R any](records map[string]R, tourID func(R) string) ([]kernel.UUID, error) {
	seen := map[string]struct{}{}
	for _, rec := range records {
		seen[tourID(rec)] = struct{}{}
	}

	raw := make([]string, 0, len(seen))
	for id := range seen {
		raw = append(raw, id)
	}
	return parseIDs(raw)
}

func parsePair(id, tourID string) (kernel.UUID, kernel.UUID, error) {
	parsedID, err := kernel.UUIDFromString(id)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	parsedTourID, err := kernel.UUIDFromString(tourID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return parsedID, parsedTourID, nil
}
