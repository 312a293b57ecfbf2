// Package inquiryrepo persists lead-capture inquiries in PostgreSQL.
package inquiryrepo

import (
	"context"

	"tours/internal/core/domain/model/inquiry"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/pagination"

	"gorm.io/gorm"
)

type GormInquiryRepository struct {
	db *gorm.DB
}

func NewGormInquiryRepository(db *gorm.DB) *GormInquiryRepository {
	return &GormInquiryRepository{db: db}
}

func (r *GormInquiryRepository) Add(ctx context.Context, aggregate *inquiry.Inquiry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// List returns inquiries newest first.
func (r *GormInquiryRepository) List(ctx context.Context, page pagination.Page) ([]*inquiry.Inquiry, error) {
	var dtos []InquiryDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Offset(page.Skip()).
		Limit(page.Limit()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	inquiries := make([]*inquiry.Inquiry, 0, len(dtos))
	for _, dto := range dtos {
		i, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		inquiries = append(inquiries, i)
	}
	return inquiries, nil
}

func (r *GormInquiryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&InquiryDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormInquiryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&InquiryDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inquiryId", id)
	}
	return nil
}
