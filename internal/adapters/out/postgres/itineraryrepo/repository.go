// Package itineraryrepo persists tour itinerary items in PostgreSQL.
package itineraryrepo

import (
	"context"

	"tours/internal/adapters/out/postgres/dependents"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormItineraryRepository struct {
	db *gorm.DB
}

func NewGormItineraryRepository(db *gorm.DB) *GormItineraryRepository {
	return &GormItineraryRepository{db: db}
}

func (r *GormItineraryRepository) Add(ctx context.Context, item *tour.ItineraryItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByTour orders by day number; items of the same day keep insertion order.
func (r *GormItineraryRepository) ListByTour(ctx context.Context, tourID kernel.UUID) ([]*tour.ItineraryItem, error) {
	var dtos []ItineraryItemDTO
	err := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID.Bytes()).
		Order("day_number ASC, created_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*tour.ItineraryItem, 0, len(dtos))
	for _, dto := range dtos {
		item, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *GormItineraryRepository) DeleteScoped(ctx context.Context, tourID kernel.UUID, itemID kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tour_id = ?", itemID.Bytes(), tourID.Bytes()).
		Delete(&ItineraryItemDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("itemId", itemID)
	}
	return nil
}

func (r *GormItineraryRepository) DeleteByTour(ctx context.Context, tourID kernel.UUID) (int64, error) {
	return dependents.DeleteByTour(ctx, r.db, &ItineraryItemDTO{}, tourID)
}

func (r *GormItineraryRepository) ListTourIDs(ctx context.Context) ([]kernel.UUID, error) {
	return dependents.ListTourIDs(ctx, r.db, &ItineraryItemDTO{})
}
