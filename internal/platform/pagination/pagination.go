// Package pagination computes page windows for listable entities.
package pagination

import (
	"sort"

	"github.com/yungbote/professionals-backend/internal/platform/validate"
)

const (
	// DefaultPageSize is applied by the transport when the client omits pageSize.
	DefaultPageSize = 10
	// MaxPageSize caps a single page.
	MaxPageSize = 100
)

// Page is a validated 1-based page request.
type Page struct {
	Number int
	Size   int
}

// New validates number and size. Violations are returned as validate.Errors
// keyed pageNumber / pageSize.
func New(number, size int) (Page, error) {
	v := validate.New()
	if number < 1 {
		v.Add("pageNumber", "pageNumber must be greater than or equal to 1")
	}
	v.IntRange("pageSize", size, 1, MaxPageSize)
	if err := v.Err(); err != nil {
		return Page{}, err
	}
	return Page{Number: number, Size: size}, nil
}

func (p Page) Skip() int { return (p.Number - 1) * p.Size }

func (p Page) Take() int { return p.Size }

// TotalPages is ceil(totalItems / Size). Size is never zero for a Page built by New.
func (p Page) TotalPages(totalItems int64) int {
	if totalItems <= 0 || p.Size <= 0 {
		return 0
	}
	size := int64(p.Size)
	return int((totalItems + size - 1) / size)
}

// Result is the wire shape of a paginated listing.
type Result[T any] struct {
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
	TotalItems int64 `json:"totalItems"`
	Items      []T   `json:"items"`
}

// NewResult assembles a Result for the fetched page slice.
func NewResult[T any](p Page, totalItems int64, items []T) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		PageNumber: p.Number,
		PageSize:   p.Size,
		TotalPages: p.TotalPages(totalItems),
		TotalItems: totalItems,
		Items:      items,
	}
}

// SortPage orders a fetched page ascending by key. The sort is stable so rows
// sharing a key keep the order the store returned them in.
func SortPage[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) < key(items[j])
	})
}
