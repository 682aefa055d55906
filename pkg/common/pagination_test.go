package common

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPaginationParams(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		expect PaginationParams
	}{
		{
			"defaults",
			"/clubs",
			PaginationParams{Page: 1, PageSize: 20, Order: "asc"},
		},
		{
			"explicit values",
			"/clubs?page=3&page_size=50&sort=name&order=desc",
			PaginationParams{Page: 3, PageSize: 50, Sort: "name", Order: "desc"},
		},
		{
			"page size capped",
			"/clubs?page_size=500",
			PaginationParams{Page: 1, PageSize: MaxPageSize, Order: "asc"},
		},
		{
			"non-numeric and negative values ignored",
			"/clubs?page=abc&page_size=-5",
			PaginationParams{Page: 1, PageSize: 20, Order: "asc"},
		},
		{
			"unknown order ignored",
			"/clubs?order=sideways",
			PaginationParams{Page: 1, PageSize: 20, Order: "asc"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.expect, ExtractPaginationParams(r))
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 1, PageSize: 20}.CalculateOffset())
	assert.Equal(t, 40, PaginationParams{Page: 3, PageSize: 20}.CalculateOffset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 20))
	assert.Equal(t, 1, CalculateTotalPages(20, 20))
	assert.Equal(t, 3, CalculateTotalPages(45, 20))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}

func TestBuildPaginationMeta(t *testing.T) {
	meta := BuildPaginationMeta(2, 20, 45)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	first := BuildPaginationMeta(1, 20, 15)
	assert.False(t, first.HasNext)
	assert.False(t, first.HasPrev)
}
