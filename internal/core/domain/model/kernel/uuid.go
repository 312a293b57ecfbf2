package kernel

import (
	"fmt"

	"tours/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies tours, their dependents and inquiries. It wraps
// github.com/google/uuid so the zero value can be rejected by Validate.
//
// Example usage:
//
//	id := kernel.NewUUID()
//
//	id, err := kernel.UUIDFromString(c.Param("id"))
//	if err != nil {
//	    return err
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the standard, braced, urn and unhyphenated forms.
// The nil UUID is rejected.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("invalid UUID format: %w", err))
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes creates a UUID from exactly 16 bytes. Persistence adapters
// use it when reading identifiers back from storage.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
