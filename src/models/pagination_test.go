package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	p, err := ParsePagination("2", "10")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, int64(10), p.GetSkip())

	cases := []struct{ page, limit, field string }{
		{"", "10", "page"},
		{"abc", "10", "page"},
		{"1", "ten", "limit"},
		{"0", "10", "page"},
		{"1", "-3", "limit"},
	}
	for _, tc := range cases {
		_, err := ParsePagination(tc.page, tc.limit)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "page=%q limit=%q", tc.page, tc.limit)
		assert.Equal(t, tc.field, verr.Field)
	}
}

func TestParsePaginationSkipOverflow(t *testing.T) {
	_, err := ParsePagination("4611686018427387905", "4")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "page", verr.Field)

	err = PaginationParams{Page: math.MaxInt, Limit: 2}.Validate()
	require.ErrorAs(t, err, &verr)

	// largest page whose skip still fits
	last := PaginationParams{Page: int(math.MaxInt64/4) + 1, Limit: 4}
	require.NoError(t, last.Validate())
	assert.Positive(t, last.GetSkip())
}

func TestNewPaginatedResponse(t *testing.T) {
	res := NewPaginatedResponse([]int{}, 25, PaginationParams{Page: 2, Limit: 10})
	assert.Equal(t, 3, res.TotalPages)
	assert.True(t, res.HasNext)
	assert.True(t, res.HasPrevious)
}

func TestIsManagement(t *testing.T) {
	assert.True(t, IsManagement([]string{"wm", "datm"}))
	assert.False(t, IsManagement([]string{"ins", "mtr"}))
	assert.False(t, IsManagement(nil))
}
