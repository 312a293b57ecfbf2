package itineraryrepo

import (
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"

	"github.com/google/uuid"
)

type ItineraryItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TourID    uuid.UUID `gorm:"type:uuid;not null;index:idx_itinerary_tour_day,priority:1"`
	DayNumber int       `gorm:"not null;check:day_number >= 1;index:idx_itinerary_tour_day,priority:2"`
	Activity  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

func (ItineraryItemDTO) TableName() string {
	return "tour_itinerary_items"
}

func fromDomain(item *tour.ItineraryItem) ItineraryItemDTO {
	return ItineraryItemDTO{
		ID:        item.ID().Bytes(),
		TourID:    item.TourID().Bytes(),
		DayNumber: item.DayNumber(),
		Activity:  item.Activity(),
		CreatedAt: item.CreatedAt(),
	}
}

func toDomain(dto ItineraryItemDTO) (*tour.ItineraryItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tourID, err := kernel.UUIDFromBytes(dto.TourID[:])
	if err != nil {
		return nil, err
	}

	return tour.RestoreItineraryItem(id, tourID, dto.DayNumber, dto.Activity, dto.CreatedAt)
}
