// Package tourrepo persists tour aggregates in PostgreSQL. The primary image
// and version columns are written only through the compare-and-swap in
// UpdatePrimaryImage.
package tourrepo

import (
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"

	"github.com/google/uuid"
)

// TourDTO represents the database structure for persisting tour aggregates.
// Timestamps come from the domain, so gorm's automatic tracking is off.
type TourDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:80;not null"`
	Location     string    `gorm:"size:80;not null"`
	Price        float64   `gorm:"not null"`
	Duration     string    `gorm:"not null"`
	Rating       float64   `gorm:"not null;default:0"`
	ReviewsCount int       `gorm:"not null;default:0"`
	IsHotDeal    bool      `gorm:"not null;default:false;index"`
	Description  string    `gorm:"type:text;not null"`
	Tagline      string    `gorm:"size:80;not null"`
	ImageURL     string    `gorm:"not null;default:''"`
	Version      int       `gorm:"not null;default:1"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

func (TourDTO) TableName() string {
	return "tours"
}

// detailColumns are the columns Update may write.
var detailColumns = []string{
	"name",
	"location",
	"price",
	"duration",
	"rating",
	"reviews_count",
	"is_hot_deal",
	"description",
	"tagline",
	"updated_at",
}

// sortColumns maps the sortable field names to columns.
var sortColumns = map[string]string{
	"createdAt":    "created_at",
	"price":        "price",
	"rating":       "rating",
	"name":         "name",
	"reviewsCount": "reviews_count",
}

func fromDomain(aggregate *tour.Tour) TourDTO {
	d := aggregate.Details()
	return TourDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         d.Name,
		Location:     d.Location,
		Price:        d.Price,
		Duration:     d.Duration,
		Rating:       d.Rating,
		ReviewsCount: d.ReviewsCount,
		IsHotDeal:    d.IsHotDeal,
		Description:  d.Description,
		Tagline:      d.Tagline,
		ImageURL:     aggregate.ImageURL(),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func toDomain(dto TourDTO) (*tour.Tour, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return tour.RestoreTour(id, tour.Details{
		Name:         dto.Name,
		Location:     dto.Location,
		Price:        dto.Price,
		Duration:     dto.Duration,
		Rating:       dto.Rating,
		ReviewsCount: dto.ReviewsCount,
		IsHotDeal:    dto.IsHotDeal,
		Description:  dto.Description,
		Tagline:      dto.Tagline,
	}, dto.ImageURL, dto.Version, dto.CreatedAt, dto.UpdatedAt)
}
