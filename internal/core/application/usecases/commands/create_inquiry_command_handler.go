package commands

import (
	"context"
	"time"

	"tours/internal/core/domain/model/inquiry"
)

// CreateInquiryCommandHandler stores inquiries. A tour reference, when
// given, is checked the same way dependents of a tour are.
type CreateInquiryCommandHandler struct {
	uowFactory  InquiryUoWFactory
	parentCheck ParentCheck
	now         func() time.Time
}

func NewCreateInquiryCommandHandler(
	uowFactory InquiryUoWFactory,
	parentCheck ParentCheck,
) CreateInquiryCommandHandler {
	return CreateInquiryCommandHandler{
		uowFactory:  uowFactory,
		parentCheck: parentCheck,
		now:         utcNow,
	}
}

func (h *CreateInquiryCommandHandler) Handle(ctx context.Context, cmd CreateInquiryCommand) (*inquiry.Inquiry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := inquiry.NewInquiry(cmd.InquiryID(), cmd.Contact(), cmd.TourID(), h.now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if tourID := cmd.TourID(); tourID != nil {
		if err = h.parentCheck.ensureTourExists(ctx, uow, *tourID); err != nil {
			return nil, err
		}
	}

	if err = uow.InquiryRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
