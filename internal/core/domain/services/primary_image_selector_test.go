package services_test

import (
	"testing"
	"time"

	"tours/internal/core/domain/model/kernel"
	"tours/internal/core/domain/model/tour"
	"tours/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func newTour(t *testing.T, primary string) *tour.Tour {
	t.Helper()
	tr, err := tour.RestoreTour(kernel.NewUUID(), tour.Details{
		Name:        "Galle Walk",
		Location:    "Galle",
		Price:       50,
		Duration:    "4 hours",
		Description: "d",
		Tagline:     "t",
	}, primary, 1, base, base)
	require.NoError(t, err)
	return tr
}

func newImage(t *testing.T, tourID kernel.UUID, ref string, offset time.Duration) *tour.Image {
	t.Helper()
	img, err := tour.NewImage(kernel.NewUUID(), tourID, ref, base.Add(offset))
	require.NoError(t, err)
	return img
}

func TestPrimaryImageSelector_Select(t *testing.T) {
	selector := services.NewPrimaryImageSelector()

	t.Run("no images clears primary", func(t *testing.T) {
		tr := newTour(t, "/uploads/gone.jpg")

		ref, err := selector.Select(tr, nil)

		require.NoError(t, err)
		assert.Empty(t, ref)
	})

	t.Run("unset primary takes first image", func(t *testing.T) {
		tr := newTour(t, "")
		a := newImage(t, tr.ID(), "/uploads/a.jpg", 0)

		ref, err := selector.Select(tr, []*tour.Image{a})

		require.NoError(t, err)
		assert.Equal(t, "/uploads/a.jpg", ref)
	})

	t.Run("owned primary is kept", func(t *testing.T) {
		tr := newTour(t, "/uploads/b.jpg")
		a := newImage(t, tr.ID(), "/uploads/a.jpg", 0)
		b := newImage(t, tr.ID(), "/uploads/b.jpg", time.Minute)

		ref, err := selector.Select(tr, []*tour.Image{a, b})

		require.NoError(t, err)
		assert.Equal(t, "/uploads/b.jpg", ref)
	})

	t.Run("dangling primary moves to earliest image", func(t *testing.T) {
		tr := newTour(t, "/uploads/removed.jpg")
		c := newImage(t, tr.ID(), "/uploads/c.jpg", 2*time.Minute)
		b := newImage(t, tr.ID(), "/uploads/b.jpg", time.Minute)

		ref, err := selector.Select(tr, []*tour.Image{c, b})

		require.NoError(t, err)
		assert.Equal(t, "/uploads/b.jpg", ref)
	})

	t.Run("foreign image is rejected", func(t *testing.T) {
		tr := newTour(t, "")
		foreign := newImage(t, kernel.NewUUID(), "/uploads/other.jpg", 0)

		_, err := selector.Select(tr, []*tour.Image{foreign})

		require.ErrorIs(t, err, tour.ErrImageNotOwned)
	})

	t.Run("unconstructed tour is rejected", func(t *testing.T) {
		_, err := selector.Select(&tour.Tour{}, nil)

		require.ErrorIs(t, err, tour.ErrTourIsNotConstructed)
	})

	t.Run("selection is idempotent", func(t *testing.T) {
		tr := newTour(t, "")
		a := newImage(t, tr.ID(), "/uploads/a.jpg", 0)
		b := newImage(t, tr.ID(), "/uploads/b.jpg", time.Minute)
		images := []*tour.Image{b, a}

		first, err := selector.Select(tr, images)
		require.NoError(t, err)
		tr.ChangePrimaryImage(first, base)

		second, err := selector.Select(tr, images)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
