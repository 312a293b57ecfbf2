// Package dependents holds the queries shared by every table whose rows
// belong to a tour through a tour_id column.
package dependents

import (
	"context"

	"tours/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteByTour removes every row of model's table owned by tourID.
func DeleteByTour(ctx context.Context, db *gorm.DB, model any, tourID kernel.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("tour_id = ?", tourID.Bytes()).Delete(model)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ListTourIDs returns the distinct tour_id values of model's table.
func ListTourIDs(ctx context.Context, db *gorm.DB, model any) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := db.WithContext(ctx).
		Model(model).
		Distinct("tour_id").
		Order("tour_id").
		Pluck("tour_id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		parsed, parseErr := kernel.UUIDFromBytes(id[:])
		if parseErr != nil {
			return nil, parseErr
		}
		ids = append(ids, parsed)
	}
	return ids, nil
}
