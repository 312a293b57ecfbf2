// Package tourlinerepo persists tour inclusion and exclusion lines in
// PostgreSQL.
package tourlinerepo

import (
	"context"

	"tours/internal/adapters/out/postgres/dependents"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormTourLineRepository struct {
	db *gorm.DB
}

func NewGormTourLineRepository(db *gorm.DB) *GormTourLineRepository {
	return &GormTourLineRepository{db: db}
}

func (r *GormTourLineRepository) Add(ctx context.Context, line *tour.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := fromDomain(line)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTourLineRepository) ListByTour(
	ctx context.Context,
	tourID kernel.UUID,
	lineType tour.LineType,
) ([]*tour.Line, error) {
	var dtos []TourLineDTO
	err := r.db.WithContext(ctx).
		Where("tour_id = ? AND type = ?", tourID.Bytes(), lineType.String()).
		Order("created_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	lines := make([]*tour.Line, 0, len(dtos))
	for _, dto := range dtos {
		line, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *GormTourLineRepository) DeleteScoped(
	ctx context.Context,
	tourID kernel.UUID,
	lineType tour.LineType,
	lineID kernel.UUID,
) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tour_id = ? AND type = ?", lineID.Bytes(), tourID.Bytes(), lineType.String()).
		Delete(&TourLineDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("lineId", lineID)
	}
	return nil
}

func (r *GormTourLineRepository) DeleteByTour(ctx context.Context, tourID kernel.UUID) (int64, error) {
	return dependents.DeleteByTour(ctx, r.db, &TourLineDTO{}, tourID)
}

func (r *GormTourLineRepository) ListTourIDs(ctx context.Context) ([]kernel.UUID, error) {
	return dependents.ListTourIDs(ctx, r.db, &TourLineDTO{})
}
