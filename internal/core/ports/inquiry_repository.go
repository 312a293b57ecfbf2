package ports

import (
	"context"

	"tours/internal/core/domain/model/inquiry"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/pagination"
)

// InquiryRepository stores lead-capture inquiries.
type InquiryRepository interface {
	Add(ctx context.Context, aggregate *inquiry.Inquiry) error

	// List returns one page of inquiries.
	List(ctx context.Context, page pagination.Page) ([]*inquiry.Inquiry, error)

	Count(ctx context.Context) (int64, error)

	// Delete returns ObjectNotFoundError when nothing was deleted.
	Delete(ctx context.Context, id kernel.UUID) error
}
