package domain

import "strings"

// Filter wildcard accepted by CategoryFilter and StatusFilter.
const FilterAll = "all"

// DefaultPageSize is used when a query spec does not carry a positive
// page size.
const DefaultPageSize = 10

// StatusFilter selects catalog entries by their active flag.
type StatusFilter string

// Available status filters.
const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusInactive StatusFilter = "inactive"
)

// IsValid returns true if the status filter is recognised.
func (f StatusFilter) IsValid() bool {
	switch f {
	case StatusAll, StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f StatusFilter) String() string {
	return string(f)
}

// QuerySpec is a transient filter and pagination request against a
// catalog snapshot. It is never persisted.
type QuerySpec struct {
	// SearchText matches case-insensitively as a substring of any of
	// title, description or category. Empty matches everything.
	SearchText string

	// CategoryFilter is FilterAll or an exact category string
	// (case-sensitive equality).
	CategoryFilter string

	// StatusFilter selects all, active-only or inactive-only entries.
	StatusFilter StatusFilter

	// Page is 1-based. Pages beyond the last are not clamped; they
	// yield an empty item slice. Callers reset to 1 when a filter
	// changes.
	Page int

	// PageSize is the number of items per page.
	PageSize int
}

// QueryResult is one page of a filtered catalog view.
type QueryResult struct {
	// Items is the requested page, in catalog (insertion) order.
	Items []ServiceRecord

	// TotalMatched counts entries passing the filters, before paging.
	TotalMatched int

	// TotalPages is ceil(TotalMatched/PageSize), never below 1 so the
	// UI always has a valid page count to render.
	TotalPages int
}

// RunQuery derives a filtered, paginated view of a catalog snapshot.
// It is a pure function: the input slice is not mutated and identical
// inputs yield identical results. Filters are AND-composed and order
// independent; catalog order is preserved throughout.
func RunQuery(catalog []ServiceRecord, spec QuerySpec) QueryResult {
	page := spec.Page
	if page < 1 {
		page = 1
	}
	pageSize := spec.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	search := strings.ToLower(strings.TrimSpace(spec.SearchText))

	filtered := make([]ServiceRecord, 0, len(catalog))
	for _, rec := range catalog {
		if !matchesSearch(rec, search) {
			continue
		}
		if spec.CategoryFilter != "" && spec.CategoryFilter != FilterAll && rec.Category != spec.CategoryFilter {
			continue
		}
		switch spec.StatusFilter {
		case StatusActive:
			if !rec.Active {
				continue
			}
		case StatusInactive:
			if rec.Active {
				continue
			}
		}
		filtered = append(filtered, rec)
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return QueryResult{
		Items:        filtered[start:end],
		TotalMatched: len(filtered),
		TotalPages:   totalPages,
	}
}

// matchesSearch reports whether search (already lowercased) occurs in
// any of the record's title, description or category.
func matchesSearch(rec ServiceRecord, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Title), search) ||
		strings.Contains(strings.ToLower(rec.Description), search) ||
		strings.Contains(strings.ToLower(rec.Category), search)
}
