package services_test

import (
	"testing"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/domain/services"
	"tours/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItineraryPolicy_Check(t *testing.T) {
	tourID := kernel.NewUUID()
	existing, err := tour.NewItineraryItem(kernel.NewUUID(), tourID, 1, "Fort walk", base)
	require.NoError(t, err)
	sameDay, err := tour.NewItineraryItem(kernel.NewUUID(), tourID, 1, "Lunch", base)
	require.NoError(t, err)
	otherDay, err := tour.NewItineraryItem(kernel.NewUUID(), tourID, 2, "Beach", base)
	require.NoError(t, err)

	t.Run("duplicates allowed by default", func(t *testing.T) {
		policy := services.NewItineraryPolicy(false)

		assert.False(t, policy.RequiresUniqueDays())
		require.NoError(t, policy.Check(sameDay, []*tour.ItineraryItem{existing}))
	})

	t.Run("unique days rejects duplicate", func(t *testing.T) {
		policy := services.NewItineraryPolicy(true)

		err := policy.Check(sameDay, []*tour.ItineraryItem{existing})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "day 1 already has an activity")
	})

	t.Run("unique days accepts new day", func(t *testing.T) {
		policy := services.NewItineraryPolicy(true)

		require.NoError(t, policy.Check(otherDay, []*tour.ItineraryItem{existing}))
	})

	t.Run("unconstructed item is rejected", func(t *testing.T) {
		policy := services.NewItineraryPolicy(false)

		require.ErrorIs(t, policy.Check(&tour.ItineraryItem{}, nil), tour.ErrItineraryItemIsNotConstructed)
	})
}
