// Package tourimagerepo persists tour images in PostgreSQL.
package tourimagerepo

import (
	"context"

	"tours/internal/adapters/out/postgres/dependents"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormTourImageRepository struct {
	db *gorm.DB
}

func NewGormTourImageRepository(db *gorm.DB) *GormTourImageRepository {
	return &GormTourImageRepository{db: db}
}

func (r *GormTourImageRepository) Add(ctx context.Context, image *tour.Image) error {
	if err := image.Validate(); err != nil {
		return err
	}

	dto := fromDomain(image)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTourImageRepository) ListByTour(ctx context.Context, tourID kernel.UUID) ([]*tour.Image, error) {
	var dtos []TourImageDTO
	err := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID.Bytes()).
		Order("created_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	images := make([]*tour.Image, 0, len(dtos))
	for _, dto := range dtos {
		image, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		images = append(images, image)
	}
	return images, nil
}

// DeleteScoped deletes by id and tour_id in one statement and returns the
// removed row.
func (r *GormTourImageRepository) DeleteScoped(
	ctx context.Context,
	tourID kernel.UUID,
	imageID kernel.UUID,
) (*tour.Image, error) {
	var deleted []TourImageDTO
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND tour_id = ?", imageID.Bytes(), tourID.Bytes()).
		Delete(&deleted)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 || len(deleted) == 0 {
		return nil, errs.NewObjectNotFoundError("imageId", imageID)
	}

	return toDomain(deleted[0])
}

func (r *GormTourImageRepository) DeleteByTour(ctx context.Context, tourID kernel.UUID) (int64, error) {
	return dependents.DeleteByTour(ctx, r.db, &TourImageDTO{}, tourID)
}

func (r *GormTourImageRepository) ListTourIDs(ctx context.Context) ([]kernel.UUID, error) {
	return dependents.ListTourIDs(ctx, r.db, &TourImageDTO{})
}

