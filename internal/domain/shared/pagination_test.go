package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		in       Pagination
		expected Pagination
	}{
		{"valid input unchanged", Pagination{Page: 2, PageSize: 25}, Pagination{Page: 2, PageSize: 25}},
		{"zero page clamps to first", Pagination{Page: 0, PageSize: 10}, Pagination{Page: 1, PageSize: 10}},
		{"negative page clamps to first", Pagination{Page: -5, PageSize: 10}, Pagination{Page: 1, PageSize: 10}},
		{"zero size gets default", Pagination{Page: 1, PageSize: 0}, Pagination{Page: 1, PageSize: DefaultPageSize}},
		{"negative size gets default", Pagination{Page: 1, PageSize: -1}, Pagination{Page: 1, PageSize: DefaultPageSize}},
		{"oversized capped at max", Pagination{Page: 1, PageSize: 1000}, Pagination{Page: 1, PageSize: MaxPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Normalize())
		})
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("middle page", func(t *testing.T) {
		page := Paginate(items, Pagination{Page: 2, PageSize: 10})

		assert.Len(t, page.Items, 10)
		assert.Equal(t, 10, page.Items[0])
		assert.Equal(t, 25, page.TotalCount)
		assert.Equal(t, 2, page.PageNumber)
		assert.Equal(t, 10, page.PageSize)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("last partial page", func(t *testing.T) {
		page := Paginate(items, Pagination{Page: 3, PageSize: 10})

		assert.Len(t, page.Items, 5)
		assert.Equal(t, 20, page.Items[0])
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("page beyond the end is empty, not an error", func(t *testing.T) {
		page := Paginate(items, Pagination{Page: 99, PageSize: 10})

		assert.Empty(t, page.Items)
		assert.Equal(t, 25, page.TotalCount)
		assert.Equal(t, 99, page.PageNumber)
	})

	t.Run("exact division has no extra page", func(t *testing.T) {
		page := Paginate(items[:20], Pagination{Page: 1, PageSize: 10})

		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("empty set", func(t *testing.T) {
		page := Paginate([]int{}, Pagination{Page: 1, PageSize: 10})

		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.TotalCount)
		assert.Equal(t, 0, page.TotalPages)
	})

	t.Run("unnormalized input is clamped", func(t *testing.T) {
		page := Paginate(items, Pagination{Page: 0, PageSize: 0})

		assert.Equal(t, 1, page.PageNumber)
		assert.Equal(t, DefaultPageSize, page.PageSize)
		assert.Len(t, page.Items, 10)
	})
}

func TestMapPage(t *testing.T) {
	page := Paginate([]int{1, 2, 3}, Pagination{Page: 1, PageSize: 2})

	mapped := MapPage(page, func(i int) string {
		if i == 1 {
			return "one"
		}
		return "two"
	})

	assert.Equal(t, []string{"one", "two"}, mapped.Items)
	assert.Equal(t, page.TotalCount, mapped.TotalCount)
	assert.Equal(t, page.PageNumber, mapped.PageNumber)
	assert.Equal(t, page.TotalPages, mapped.TotalPages)
}
