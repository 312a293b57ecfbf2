// Package inquiry provides the lead-capture Inquiry entity: a visitor's
// question, optionally about a specific tour.
package inquiry

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/errs"
	"tours/internal/pkg/guard"
)

const (
	maxNameLength  = 80
	maxPhoneLength = 30
)

var ErrInquiryIsNotConstructed = errors.New("Inquiry must be created via NewInquiry or RestoreInquiry constructor")

// Contact is the sender-supplied part of an inquiry.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type Inquiry struct {
	id        kernel.UUID
	contact   Contact
	tourID    *kernel.UUID
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewInquiry validates the contact details. tourID is optional.
func NewInquiry(id kernel.UUID, contact Contact, tourID *kernel.UUID, now time.Time) (*Inquiry, error) {
	return RestoreInquiry(id, contact, tourID, now)
}

func RestoreInquiry(id kernel.UUID, contact Contact, tourID *kernel.UUID, createdAt time.Time) (*Inquiry, error) {
	var tourErr error
	if tourID != nil {
		tourErr = tourID.Validate()
	}

	if err := errors.Join(
		id.Validate(),
		tourErr,
		validateName(contact.Name),
		validateEmail(contact.Email),
		validatePhone(contact.Phone),
		validateMessage(contact.Message),
	); err != nil {
		return nil, err
	}

	return &Inquiry{
		id:        id,
		contact:   contact,
		tourID:    tourID,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (i *Inquiry) Validate() error {
	if i == nil {
		return ErrInquiryIsNotConstructed
	}
	return i.guard.Validate(ErrInquiryIsNotConstructed)
}

func (i *Inquiry) ID() kernel.UUID {
	return i.id
}

func (i *Inquiry) Contact() Contact {
	return i.contact
}

// TourID returns nil for general inquiries.
func (i *Inquiry) TourID() *kernel.UUID {
	return i.tourID
}

func (i *Inquiry) CreatedAt() time.Time {
	return i.createdAt
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%d characters exceeds the limit of %d", n, maxNameLength))
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a plain address", email))
	}
	return nil
}

func validatePhone(phone string) error {
	if n := utf8.RuneCountInString(phone); n > maxPhoneLength {
		return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%d characters exceeds the limit of %d", n, maxPhoneLength))
	}
	return nil
}

func validateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return errs.NewValueIsRequiredError("message")
	}
	return nil
}
