package inquiryrepo

import (
	"time"

	"tours/internal/core/domain/model/inquiry"
	"tours/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type InquiryDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"size:80;not null"`
	Email     string     `gorm:"not null"`
	Phone     string     `gorm:"size:30;not null;default:''"`
	Message   string     `gorm:"type:text;not null"`
	TourID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime:false;index"`
}

func (InquiryDTO) TableName() string {
	return "inquiries"
}

func fromDomain(aggregate *inquiry.Inquiry) InquiryDTO {
	c := aggregate.Contact()
	dto := InquiryDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		CreatedAt: aggregate.CreatedAt(),
	}
	if tourID := aggregate.TourID(); tourID != nil {
		raw := tourID.Bytes()
		dto.TourID = &raw
	}
	return dto
}

func toDomain(dto InquiryDTO) (*inquiry.Inquiry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tourID *kernel.UUID
	if dto.TourID != nil {
		parsed, parseErr := kernel.UUIDFromBytes(dto.TourID[:])
		if parseErr != nil {
			return nil, parseErr
		}
		tourID = &parsed
	}

	return inquiry.RestoreInquiry(id, inquiry.Contact{
		Name:    dto.Name,
		Email:   dto.Email,
		Phone:   dto.Phone,
		Message: dto.Message,
	}, tourID, dto.CreatedAt)
}
