// Package listview implements the shared list pipeline used by every list
// page: search filter, category filter, stable sort, pagination. The pipeline
// is a pure function of the fetched collection and the current query; it is
// recomputed wholesale on any input change and never fails.
package listview

import (
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPageSize matches every list page of the admin console.
const DefaultPageSize = 9

// FilterAll is the sentinel category value that disables category filtering.
const FilterAll = "All"

// Query drives a list view's visible output. The zero value means "no
// search, no filter, no sort, page 1".
type Query struct {
	Search string
	Filter string
	Sort   string
	Page   int
}

// WithSearch returns q with the search text replaced. Any actual change
// resets the page to 1.
func (q Query) WithSearch(s string) Query {
	if s == q.Search {
		return q
	}
	q.Search = s
	q.Page = 1
	return q
}

// WithFilter returns q with the category filter replaced, resetting the page
// on change.
func (q Query) WithFilter(f string) Query {
	if f == q.Filter {
		return q
	}
	q.Filter = f
	q.Page = 1
	return q
}

// WithSort returns q with the sort key replaced, resetting the page on
// change.
func (q Query) WithSort(k string) Query {
	if k == q.Sort {
		return q
	}
	q.Sort = k
	q.Page = 1
	return q
}

// WithPage returns q on the given page. Out-of-range pages are tolerated
// here; Compute clamps to the valid range.
func (q Query) WithPage(p int) Query {
	q.Page = p
	return q
}

// Options binds the generic pipeline to one page's row type.
type Options[T any] struct {
	// SearchText returns the concatenation of the row's searchable fields.
	// The search filter is a case-insensitive substring match against it.
	SearchText func(T) string

	// Category returns the row's normalized status/category value, compared
	// exactly against Query.Filter. Nil disables category filtering.
	Category func(T) string

	// Sorters maps sort keys to comparators. An unknown or empty sort key
	// preserves collection order.
	Sorters map[string]func(a, b T) int

	// PageSize defaults to DefaultPageSize when <= 0.
	PageSize int
}

// Result is the derived visible state for one {collection, query} pair.
type Result[T any] struct {
	// Visible is the slice of rows on the current page, at most PageSize.
	Visible []T
	// FilteredCount is the number of rows after search+category filtering.
	FilteredCount int
	// Page is the page actually shown: Query.Page clamped to [1, TotalPages].
	Page int
	// TotalPages is ceil(FilteredCount/PageSize), at least 1.
	TotalPages int
}

// Compute derives the visible page. It runs the fixed order
// search → category → sort → paginate and is idempotent: the same inputs
// always produce the same output. The input slice is never mutated.
func Compute[T any](items []T, q Query, opts Options[T]) Result[T] {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if search != "" && opts.SearchText != nil {
			if !strings.Contains(strings.ToLower(opts.SearchText(it)), search) {
				continue
			}
		}
		if q.Filter != "" && q.Filter != FilterAll && opts.Category != nil {
			if opts.Category(it) != q.Filter {
				continue
			}
		}
		filtered = append(filtered, it)
	}

	if q.Sort != "" {
		if cmp := opts.Sorters[q.Sort]; cmp != nil {
			slices.SortStableFunc(filtered, cmp)
		}
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	lo := (page - 1) * pageSize
	hi := lo + pageSize
	if lo > len(filtered) {
		lo = len(filtered)
	}
	if hi > len(filtered) {
		hi = len(filtered)
	}

	return Result[T]{
		Visible:       filtered[lo:hi],
		FilteredCount: len(filtered),
		Page:          page,
		TotalPages:    totalPages,
	}
}

var (
	collatorMu sync.Mutex
	// The console's labels are French; sort names the way a French locale
	// would (accent- and case-insensitive).
	collator = collate.New(language.French, collate.Loose)
)

// CompareStrings is a locale-aware comparator for string sort keys.
func CompareStrings(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// CompareTimes orders times ascending. Zero (unknown) times sort after all
// known times so they never float to the top of either direction.
func CompareTimes(a, b time.Time) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return a.Compare(b)
}

// CompareTimesDesc orders times newest first, still keeping zero (unknown)
// times behind every known time. Reverse(CompareTimes) would float the
// unknowns to the top instead.
func CompareTimesDesc(a, b time.Time) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return b.Compare(a)
}

// CompareFloats orders numeric sort keys ascending.
func CompareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Reverse flips a comparator's direction.
func Reverse[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return -cmp(a, b) }
}
