package domain

import "strings"

// ActiveSelector determines which rows a listing targets. Every query entry
// point takes one explicitly; there is no implicit "active only" default
// buried in the persistence layer.
type ActiveSelector int

const (
	// ActiveOnly targets rows with IsActive = true.
	ActiveOnly ActiveSelector = iota
	// InactiveOnly targets rows with IsActive = false.
	InactiveOnly
	// IgnoreActiveFlag targets all rows regardless of lifecycle state.
	IgnoreActiveFlag
)

// Allowed page sizes for listings. Any other requested size snaps to
// DefaultPageSize.
var AllowedPageSizes = []int{5, 10, 25, 50, 100}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// QuerySpec is the immutable description of a listing request: free-text
// search, named field filters, sort key and direction, and paging. It is
// constructed fresh per request and never persisted.
type QuerySpec struct {
	Search   string
	Filters  map[string]string
	SortKey  string
	SortDesc bool
	Page     int
	PageSize int
}

// Normalized returns a copy of the spec with paging and search brought into
// range: page ≥ 1, page size snapped to AllowedPageSizes (else
// DefaultPageSize), search trimmed with whitespace-only terms treated as
// absent. Unknown sort keys are left as-is; the listing engine resolves them
// against the per-entity whitelist.
func (q QuerySpec) Normalized() QuerySpec {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if !pageSizeAllowed(q.PageSize) {
		q.PageSize = DefaultPageSize
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

func pageSizeAllowed(size int) bool {
	for _, s := range AllowedPageSizes {
		if size == s {
			return true
		}
	}
	return false
}

// ListConfig is the per-entity listing configuration: which columns the
// free-text search spans, which filter keys are accepted and how they match,
// and the sort-key whitelist with its default and tie-breaker.
type ListConfig struct {
	// SortFields maps accepted sort keys to column names.
	SortFields map[string]string
	// DefaultSortKey is used when the requested key is absent or unknown.
	DefaultSortKey string
	// TieBreakColumn breaks ties on the primary sort so paging stays
	// deterministic when the sort column has duplicates.
	TieBreakColumn string
	// SearchColumns are OR-ed together for the free-text term.
	SearchColumns []string
	// ExactFilterColumns match with equality (status/enum semantics).
	ExactFilterColumns []string
	// LikeFilterColumns match with a case-insensitive substring.
	LikeFilterColumns []string
}

// SortColumn resolves a requested sort key against the whitelist, falling
// back to the default key for unknown or empty input.
func (c ListConfig) SortColumn(key string) string {
	if col, ok := c.SortFields[strings.ToLower(strings.TrimSpace(key))]; ok {
		return col
	}
	return c.SortFields[c.DefaultSortKey]
}

// PagedResult is the generic envelope returned by listings.
type PagedResult[T any] struct {
	Items       []T   `json:"items"`
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasPrevious bool  `json:"has_previous"`
	HasNext     bool  `json:"has_next"`
}

// NewPagedResult builds a PagedResult with the derived fields computed.
// page is expected to already be clamped into [1, max(totalPages, 1)].
func NewPagedResult[T any](items []T, total int64, page, pageSize int) *PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := TotalPages(total, pageSize)
	return &PagedResult[T]{
		Items:       items,
		Page:        page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}

// TotalPages returns ceil(total / pageSize), and 0 for an empty result set.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// ClampPage brings a requested page into [1, max(totalPages, 1)] so an
// out-of-range request returns the last valid page instead of a phantom
// empty one. An empty result set clamps to page 1.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
