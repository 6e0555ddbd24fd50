// Package listquery filters and paginates an already-fetched list.
//
// Filters are named so a screen can replace one of them without touching the
// others. Any change to the filter set or the page size moves the query back
// to the first page.
package listquery

import (
	"strings"
	"time"
)

// DefaultPageSize is used when a non-positive page size is requested.
const DefaultPageSize = 10

// Predicate reports whether an item passes a filter.
type Predicate[T any] func(item T) bool

// Page is one slice of the filtered list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Query holds the filter set and the page state of one list screen.
type Query[T any] struct {
	pageSize int
	page     int
	order    []string
	filters  map[string]Predicate[T]
}

// New creates a query on page 1.
func New[T any](pageSize int) *Query[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Query[T]{
		pageSize: pageSize,
		page:     1,
		filters:  make(map[string]Predicate[T]),
	}
}

// Filter sets or replaces the named filter. A nil predicate removes it.
func (q *Query[T]) Filter(name string, p Predicate[T]) *Query[T] {
	_, exists := q.filters[name]
	switch {
	case p == nil && exists:
		delete(q.filters, name)
		q.order = removeName(q.order, name)
	case p != nil:
		if !exists {
			q.order = append(q.order, name)
		}
		q.filters[name] = p
	}
	q.page = 1
	return q
}

// SetPage moves to page; values below 1 select the first page.
func (q *Query[T]) SetPage(page int) *Query[T] {
	if page < 1 {
		page = 1
	}
	q.page = page
	return q
}

// SetPageSize changes the page size and returns to page 1.
func (q *Query[T]) SetPageSize(size int) *Query[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	q.pageSize = size
	q.page = 1
	return q
}

// CurrentPage returns the requested page number.
func (q *Query[T]) CurrentPage() int {
	return q.page
}

// Match reports whether item passes every filter.
func (q *Query[T]) Match(item T) bool {
	for _, name := range q.order {
		if !q.filters[name](item) {
			return false
		}
	}
	return true
}

// Apply filters items and returns the current page. A page past the end is clamped to the last page.
func (q *Query[T]) Apply(items []T) Page[T] {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if q.Match(item) {
			filtered = append(filtered, item)
		}
	}

	total := len(filtered)
	totalPages := (total + q.pageSize - 1) / q.pageSize

	page := q.page
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * q.pageSize
	end := page * q.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      filtered[start:end],
		Page:       page,
		PageSize:   q.pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// Contains matches items where any of the fields contains text, case-insensitively.
// Blank text disables the filter.
func Contains[T any](text string, fields ...func(T) string) Predicate[T] {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}
	return func(item T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				return true
			}
		}
		return false
	}
}

// Equals matches items whose value equals *want. A nil want disables the filter.
func Equals[T any, V comparable](want *V, get func(T) V) Predicate[T] {
	if want == nil {
		return nil
	}
	w := *want
	return func(item T) bool {
		return get(item) == w
	}
}

// InRange matches items whose value lies in [min, max]. Either bound may be nil.
func InRange[T any](min, max *float64, get func(T) float64) Predicate[T] {
	if min == nil && max == nil {
		return nil
	}
	return func(item T) bool {
		v := get(item)
		if min != nil && v < *min {
			return false
		}
		if max != nil && v > *max {
			return false
		}
		return true
	}
}

// SameDay matches items whose timestamp falls on the calendar date of *day (in day's location).
func SameDay[T any](day *time.Time, get func(T) time.Time) Predicate[T] {
	if day == nil {
		return nil
	}
	y, m, d := day.Date()
	loc := day.Location()
	return func(item T) bool {
		iy, im, id := get(item).In(loc).Date()
		return iy == y && im == m && id == d
	}
}

func removeName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
