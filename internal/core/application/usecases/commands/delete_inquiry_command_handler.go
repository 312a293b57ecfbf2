package commands

import (
	"context"
)

type DeleteInquiryCommandHandler struct {
	uowFactory InquiryUoWFactory
}

func NewDeleteInquiryCommandHandler(uowFactory InquiryUoWFactory) DeleteInquiryCommandHandler {
	return DeleteInquiryCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteInquiryCommandHandler) Handle(ctx context.Context, cmd DeleteInquiryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.InquiryRepository().Delete(ctx, cmd.InquiryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
