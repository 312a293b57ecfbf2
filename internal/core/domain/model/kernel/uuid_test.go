package kernel_test

import (
	"testing"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid unique UUID", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id1.String())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	testCases := []struct {
		name  string
		input string
	}{
		{name: "canonical", input: validUUID},
		{name: "braces", input: "{550e8400-e29b-41d4-a716-446655440000}"},
		{name: "urn prefix", input: "urn:uuid:550e8400-e29b-41d4-a716-446655440000"},
		{name: "no hyphens", input: "550e8400e29b41d4a716446655440000"},
	}
	for _, tc := range testCases {
		t.Run("should accept "+tc.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, validUUID, id.String())
		})
	}

	t.Run("should return validation error for garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round trip bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(id))
	})

	t.Run("should return error for invalid byte length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("should reject zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	require.Error(t, zero.Validate())
	assert.Equal(t, kernel.ErrUUIDIsNotConstructed, zero.Validate())
	assert.True(t, zero.IsEqual(kernel.UUID{}))
}
