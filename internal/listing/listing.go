// Package listing filters, sorts and paginates fully-fetched collections in memory.
package listing

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultPageSize is the fixed number of rows per page.
const DefaultPageSize = 10

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Field extracts one named value from an item. Value may return a string,
// an integer, a float64, a *float64, a bool or a time.Time.
type Field[T any] struct {
	Name  string
	Value func(T) any
}

// Schema declares which fields of T can be searched and sorted.
type Schema[T any] struct {
	Searchable []Field[T]
	Sortable   []Field[T]
	PageSize   int
}

// Query is a list request.
type Query struct {
	Search string
	SortBy string
	Order  Order
	Page   int
}

// Page is one page of a list result.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int   `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	HasPrev    bool  `json:"hasPrev"`
	HasNext    bool  `json:"hasNext"`
	Pages      []int `json:"pages"`
}

// Apply filters, sorts and paginates items according to q.
// Unknown sort keys leave the order untouched.
func Apply[T any](items []T, q Query, schema Schema[T]) Page[T] {
	filtered := Filter(items, q.Search, schema.Searchable)
	if f, ok := schema.sortField(q.SortBy); ok {
		filtered = Sort(filtered, f, q.Order)
	}
	size := schema.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	return Paginate(filtered, q.Page, size)
}

func (s Schema[T]) sortField(name string) (Field[T], bool) {
	for _, f := range s.Sortable {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field[T]{}, false
}

// SortKeys returns the names of the sortable fields.
func (s Schema[T]) SortKeys() []string {
	keys := make([]string, 0, len(s.Sortable))
	for _, f := range s.Sortable {
		keys = append(keys, f.Name)
	}
	return keys
}

// Filter keeps the items where any field contains term, ignoring case.
// An empty term keeps everything. The input slice is not modified.
func Filter[T any](items []T, term string, fields []Field[T]) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]T(nil), items...)
	}

	var out []T
	for _, item := range items {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(text(f.Value(item))), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Sort returns a sorted copy of items by field. Nil values sort first in ascending order.
func Sort[T any](items []T, field Field[T], order Order) []T {
	out := append([]T(nil), items...)
	sort.Slice(out, func(i, j int) bool {
		c := compare(field.Value(out[i]), field.Value(out[j]))
		if order == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Paginate returns page (1-based) of items. Out of range pages are clamped.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	pages := make([]int, totalPages)
	for i := range pages {
		pages[i] = i + 1
	}

	return Page[T]{
		Items:      append(make([]T, 0, end-start), items[start:end]...),
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		Pages:      pages,
	}
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses the date formats used by the remote services.
func ParseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *float64:
		if x == nil {
			return ""
		}
		return fmt.Sprint(*x)
	case time.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// normalize turns a field value into nil, float64, time.Time or a lower-cased string.
func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *float64:
		if x == nil {
			return nil
		}
		return *x
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return float64(1)
		}
		return float64(0)
	case time.Time:
		return x
	case string:
		if t, ok := ParseTime(x); ok {
			return t
		}
		return strings.ToLower(x)
	default:
		return strings.ToLower(fmt.Sprint(x))
	}
}

func compare(a, b any) int {
	na, nb := normalize(a), normalize(b)
	switch {
	case na == nil && nb == nil:
		return 0
	case na == nil:
		return -1
	case nb == nil:
		return 1
	}

	switch x := na.(type) {
	case float64:
		if y, ok := nb.(float64); ok {
			return cmpOrdered(x, y)
		}
	case time.Time:
		if y, ok := nb.(time.Time); ok {
			return x.Compare(y)
		}
	case string:
		if y, ok := nb.(string); ok {
			return strings.Compare(x, y)
		}
	}
	// Mixed kinds fall back to their text form.
	return strings.Compare(strings.ToLower(text(a)), strings.ToLower(text(b)))
}

func cmpOrdered(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
