package tourlinerepo

import (
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"

	"github.com/google/uuid"
)

// TourLineDTO stores inclusions and exclusions in one table, told apart by
// Type.
type TourLineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TourID      uuid.UUID `gorm:"type:uuid;not null;index:idx_tour_lines_tour_type,priority:1"`
	Type        string    `gorm:"size:16;not null;index:idx_tour_lines_tour_type,priority:2"`
	Description string    `gorm:"size:80;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
}

func (TourLineDTO) TableName() string {
	return "tour_inclusion_exclusions"
}

func fromDomain(line *tour.Line) TourLineDTO {
	return TourLineDTO{
		ID:          line.ID().Bytes(),
		TourID:      line.TourID().Bytes(),
		Type:        line.Type().String(),
		Description: line.Description(),
		CreatedAt:   line.CreatedAt(),
	}
}

func toDomain(dto TourLineDTO) (*tour.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tourID, err := kernel.UUIDFromBytes(dto.TourID[:])
	if err != nil {
		return nil, err
	}
	lineType, err := tour.ParseLineType(dto.Type)
	if err != nil {
		return nil, err
	}

	return tour.RestoreLine(id, tourID, dto.Description, lineType, dto.CreatedAt)
}
