// Package pagination turns list request parameters into a skip/limit/sort
// triple and wraps a page of results with its totals.
package pagination

import (
	"fmt"
	"slices"
	"strings"

	"tours/internal/pkg/errs"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	DefaultSortBy = "createdAt"
)

// Order is a sort direction.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

// Page is a validated page request.
type Page struct {
	number    int
	limit     int
	sortBy    string
	sortOrder Order
}

// Request is the raw page request; zero values select defaults.
type Request struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// NewPage validates r against allowedSort. An empty SortBy falls back to
// DefaultSortBy, an empty order to descending.
func NewPage(r Request, allowedSort []string) (Page, error) {
	p := Page{
		number:    r.Page,
		limit:     r.Limit,
		sortBy:    r.SortBy,
		sortOrder: Order(strings.ToLower(r.SortOrder)),
	}

	if p.number == 0 {
		p.number = DefaultPage
	}
	if p.limit == 0 {
		p.limit = DefaultLimit
	}
	if p.sortBy == "" {
		p.sortBy = DefaultSortBy
	}
	if p.sortOrder == "" {
		p.sortOrder = Descending
	}

	if p.number < 1 {
		return Page{}, errs.NewValueIsOutOfRangeError("page", p.number, 1, "unbounded")
	}
	if p.limit < 1 || p.limit > MaxLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", p.limit, 1, MaxLimit)
	}
	if !slices.Contains(allowedSort, p.sortBy) {
		return Page{}, errs.NewValueIsInvalidErrorWithCause(
			"sortBy",
			fmt.Errorf("%q is not one of %s", p.sortBy, strings.Join(allowedSort, ", ")),
		)
	}
	if p.sortOrder != Ascending && p.sortOrder != Descending {
		return Page{}, errs.NewValueIsInvalidErrorWithCause("sortOrder", fmt.Errorf("%q is not asc or desc", r.SortOrder))
	}

	return p, nil
}

// Default is the first page with default limit and sort.
func Default() Page {
	return Page{number: DefaultPage, limit: DefaultLimit, sortBy: DefaultSortBy, sortOrder: Descending}
}

func (p Page) Number() int {
	return p.number
}

func (p Page) Limit() int {
	return p.limit
}

// Skip is the number of rows before this page.
func (p Page) Skip() int {
	return (p.number - 1) * p.limit
}

func (p Page) SortBy() string {
	return p.sortBy
}

func (p Page) SortOrder() Order {
	return p.sortOrder
}

// Result is one page of items with the total match count.
type Result[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

func NewResult[T any](items []T, total int64, page Page) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{Items: items, Total: total, Page: page.Number(), Limit: page.Limit()}
}
