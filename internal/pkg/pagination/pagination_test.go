package pagination_test

import (
	"testing"

	"tours/internal/pkg/errs"
	"tours/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sortable = []string{"createdAt", "price"}

func TestNewPage(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := pagination.NewPage(pagination.Request{}, sortable)

		require.NoError(t, err)
		assert.Equal(t, pagination.Default(), p)
		assert.Equal(t, 1, p.Number())
		assert.Equal(t, 10, p.Limit())
		assert.Equal(t, 0, p.Skip())
		assert.Equal(t, "createdAt", p.SortBy())
		assert.Equal(t, pagination.Descending, p.SortOrder())
	})

	t.Run("skip from page and limit", func(t *testing.T) {
		p, err := pagination.NewPage(pagination.Request{Page: 3, Limit: 20, SortBy: "price", SortOrder: "ASC"}, sortable)

		require.NoError(t, err)
		assert.Equal(t, 40, p.Skip())
		assert.Equal(t, pagination.Ascending, p.SortOrder())
	})

	testCases := []struct {
		name     string
		req      pagination.Request
		sentinel error
	}{
		{name: "negative page", req: pagination.Request{Page: -1}, sentinel: errs.ErrValueIsOutOfRange},
		{name: "limit too large", req: pagination.Request{Limit: 101}, sentinel: errs.ErrValueIsOutOfRange},
		{name: "unknown sort field", req: pagination.Request{SortBy: "password"}, sentinel: errs.ErrValueIsInvalid},
		{name: "unknown order", req: pagination.Request{SortOrder: "sideways"}, sentinel: errs.ErrValueIsInvalid},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pagination.NewPage(tc.req, sortable)

			require.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestNewResult(t *testing.T) {
	p, err := pagination.NewPage(pagination.Request{Page: 2, Limit: 5}, sortable)
	require.NoError(t, err)

	r := pagination.NewResult[string](nil, 7, p)

	assert.NotNil(t, r.Items)
	assert.Empty(t, r.Items)
	assert.Equal(t, int64(7), r.Total)
	assert.Equal(t, 2, r.Page)
	assert.Equal(t, 5, r.Limit)
}
