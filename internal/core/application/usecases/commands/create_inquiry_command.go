package commands

import (
	"errors"

	"tours/internal/core/domain/model/inquiry"
	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/guard"
)

var (
	ErrCreateInquiryCommandIsNotConstructed = errors.New(
		"CreateInquiryCommand must be created via NewCreateInquiryCommand constructor",
	)
)

// CreateInquiryCommand records a visitor's question, optionally about a tour.
type CreateInquiryCommand struct { //nolint:recvcheck //using for validation
	inquiryID kernel.UUID
	contact   inquiry.Contact
	tourID    *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateInquiryCommand(
	inquiryID kernel.UUID,
	contact inquiry.Contact,
	tourID *kernel.UUID,
) (CreateInquiryCommand, error) {
	if err := inquiryID.Validate(); err != nil {
		return CreateInquiryCommand{}, err
	}

	return CreateInquiryCommand{
		inquiryID: inquiryID,
		contact:   contact,
		tourID:    tourID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateInquiryCommand) Validate() error {
	return c.guard.Validate(ErrCreateInquiryCommandIsNotConstructed)
}

func (c CreateInquiryCommand) InquiryID() kernel.UUID {
	return c.inquiryID
}

func (c CreateInquiryCommand) Contact() inquiry.Contact {
	return c.contact
}

func (c CreateInquiryCommand) TourID() *kernel.UUID {
	return c.tourID
}
