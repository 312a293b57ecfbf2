package memory

import (
	"context"
	"slices"
	"strings"

	"tours/internal/core/domain/model/inquiry"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/ports"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/pagination"
)

var _ ports.InquiryRepository = &InquiryRepository{}

type InquiryRepository struct {
	store *Store
}

func (r *InquiryRepository) Add(_ context.Context, aggregate *inquiry.Inquiry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	contact := aggregate.Contact()
	rec := inquiryRecord{
		id:        aggregate.ID().String(),
		name:      contact.Name,
		email:     contact.Email,
		phone:     contact.Phone,
		message:   contact.Message,
		createdAt: aggregate.CreatedAt(),
	}
	if tourID := aggregate.TourID(); tourID != nil {
		rec.tourID = tourID.String()
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.inquiries[rec.id] = rec
	return nil
}

func (r *InquiryRepository) List(_ context.Context, page pagination.Page) ([]*inquiry.Inquiry, error) {
	r.store.mu.RLock()
	recs := make([]inquiryRecord, 0, len(r.store.inquiries))
	for _, rec := range r.store.inquiries {
		recs = append(recs, rec)
	}
	r.store.mu.RUnlock()

	slices.SortFunc(recs, func(a, b inquiryRecord) int {
		c := a.createdAt.Compare(b.createdAt)
		if c == 0 {
			c = strings.Compare(a.id, b.id)
		}
		if page.SortOrder() == pagination.Descending {
			return -c
		}
		return c
	})

	start := min(page.Skip(), len(recs))
	end := min(start+page.Limit(), len(recs))

	result := make([]*inquiry.Inquiry, 0, end-start)
	for _, rec := range recs[start:end] {
		i, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, i)
	}
	return result, nil
}

func (r *InquiryRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return int64(len(r.store.inquiries)), nil
}

func (r *InquiryRepository) Delete(_ context.Context, id kernel.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.inquiries[id.String()]; !ok {
		return errs.NewObjectNotFoundError("inquiryId", id)
	}
	delete(r.store.inquiries, id.String())
	return nil
}

func (rec inquiryRecord) toDomain() (*inquiry.Inquiry, error) {
	id, err := kernel.UUIDFromString(rec.id)
	if err != nil {
		return nil, err
	}

	var tourID *kernel.UUID
	if rec.tourID != "" {
		parsed, parseErr := kernel.UUIDFromString(rec.tourID)
		if parseErr != nil {
			return nil, parseErr
		}
		tourID = &parsed
	}

	return inquiry.RestoreInquiry(id, inquiry.Contact{
		Name:    rec.name,
		Email:   rec.email,
		Phone:   rec.phone,
		Message: rec.message,
	}, tourID, rec.createdAt)
}
