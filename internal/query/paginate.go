package query

import (
	"fmt"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// Page is one window of a paginated list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	Size       int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
	// Offset is the index in the full list of Items[0].
	Offset int `json:"offset"`
}

// TotalPages returns ceil(n/size), and at least 1 so an empty list still has
// one (empty) page.
func TotalPages(n, size int) int {
	if size < 1 {
		return 1
	}
	return max(1, (n+size-1)/size)
}

// Paginate returns page number (1-indexed) of items, holding the slice
// [(number-1)*size, number*size) clipped to len(items). number is clamped
// into [1, TotalPages]. size must be at least 1.
func Paginate[T any](items []T, size, number int) (Page[T], error) {
	if size < 1 {
		return Page[T]{}, fmt.Errorf("page size %d: %w", size, types.ErrInvalidPageSize)
	}
	total := TotalPages(len(items), size)
	number = min(max(number, 1), total)

	start := min((number-1)*size, len(items))
	end := min(start+size, len(items))

	page := make([]T, end-start)
	copy(page, items[start:end])

	return Page[T]{
		Items:      page,
		Number:     number,
		Size:       size,
		TotalPages: total,
		TotalItems: len(items),
		Offset:     start,
	}, nil
}
