package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 10, 10},
		{5, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, calculateTotalPages(tc.total, tc.pageSize),
			"total=%d pageSize=%d", tc.total, tc.pageSize)
	}
}

func TestNormalizePagination(t *testing.T) {
	page, pageSize := normalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, defaultPageSize, pageSize)

	page, pageSize = normalizePagination(-3, 1000)
	assert.Equal(t, 1, page)
	assert.Equal(t, maxPageSize, pageSize)

	page, pageSize = normalizePagination(4, 50)
	assert.Equal(t, 4, page)
	assert.Equal(t, 50, pageSize)
}
