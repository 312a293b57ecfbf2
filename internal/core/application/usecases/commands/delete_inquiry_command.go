package commands

import (
	"errors"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/guard"
)

var (
	ErrDeleteInquiryCommandIsNotConstructed = errors.New(
		"DeleteInquiryCommand must be created via NewDeleteInquiryCommand constructor",
	)
)

type DeleteInquiryCommand struct { //nolint:recvcheck //using for validation
	inquiryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteInquiryCommand(inquiryID kernel.UUID) (DeleteInquiryCommand, error) {
	if err := inquiryID.Validate(); err != nil {
		return DeleteInquiryCommand{}, err
	}

	return DeleteInquiryCommand{
		inquiryID: inquiryID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteInquiryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteInquiryCommandIsNotConstructed)
}

func (c DeleteInquiryCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}
