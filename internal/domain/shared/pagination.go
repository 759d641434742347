package shared

// Default and maximum page sizes applied by Normalize.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination carries 1-based paging input for list operations.
type Pagination struct {
	Page     int
	PageSize int
}

// DefaultPagination returns the first page with the default page size.
func DefaultPagination() Pagination {
	return Pagination{Page: 1, PageSize: DefaultPageSize}
}

// Normalize clamps non-positive page numbers to 1 and non-positive or
// oversized page sizes to the default/maximum. Callers get a defined
// behavior for any input instead of an undefined one.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// PagedResult is the envelope returned by every list operation.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices an already-materialized result set into one page and
// computes the envelope counters. The full set is fetched first and sliced
// in memory; the repository never applies LIMIT/OFFSET.
func Paginate[T any](items []T, p Pagination) PagedResult[T] {
	p = p.Normalize()

	total := len(items)
	totalPages := total / p.PageSize
	if total%p.PageSize > 0 {
		totalPages++
	}

	skip := (p.Page - 1) * p.PageSize
	if skip > total {
		skip = total
	}
	end := skip + p.PageSize
	if end > total {
		end = total
	}

	page := make([]T, end-skip)
	copy(page, items[skip:end])

	return PagedResult[T]{
		Items:      page,
		TotalCount: total,
		PageNumber: p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
	}
}

// MapPage converts a page of one item type into another, preserving the
// envelope counters. Services use it to map entities to response DTOs.
func MapPage[T, U any](page PagedResult[T], fn func(T) U) PagedResult[U] {
	items := make([]U, len(page.Items))
	for i, item := range page.Items {
		items[i] = fn(item)
	}
	return PagedResult[U]{
		Items:      items,
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
