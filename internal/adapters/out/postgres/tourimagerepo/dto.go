package tourimagerepo

import (
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"

	"github.com/google/uuid"
)

type TourImageDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TourID    uuid.UUID `gorm:"type:uuid;not null;index:idx_tour_images_tour_created,priority:1"`
	ImageURL  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;index:idx_tour_images_tour_created,priority:2"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (TourImageDTO) TableName() string {
	return "tour_images"
}

func fromDomain(image *tour.Image) TourImageDTO {
	return TourImageDTO{
		ID:        image.ID().Bytes(),
		TourID:    image.TourID().Bytes(),
		ImageURL:  image.ImageURL(),
		CreatedAt: image.CreatedAt(),
		UpdatedAt: image.UpdatedAt(),
	}
}

func toDomain(dto TourImageDTO) (*tour.Image, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	tourID, err := kernel.UUIDFromBytes(dto.TourID[:])
	if err != nil {
		return nil, err
	}

	return tour.RestoreImage(id, tourID, dto.ImageURL, dto.CreatedAt, dto.UpdatedAt)
}
