// Package pipeline turns an owner's full record set into one page of list
// results. The whole transformation is pure: it never touches the store, so
// the same query against the same records always yields the same page.
package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"clientmap/internal/clientmap/domain"
)

// PageSize is the fixed number of records per page.
const PageSize = 50

// LocationFilter restricts results by whether a record carries coordinates.
type LocationFilter string

const (
	FilterAll             LocationFilter = "all"
	FilterWithLocation    LocationFilter = "with-location"
	FilterWithoutLocation LocationFilter = "without-location"
)

// ParseLocationFilter maps a query-string value onto a filter, defaulting to
// FilterAll for the empty string.
func ParseLocationFilter(s string) (LocationFilter, error) {
	switch LocationFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterWithLocation:
		return FilterWithLocation, nil
	case FilterWithoutLocation:
		return FilterWithoutLocation, nil
	default:
		return "", fmt.Errorf("unknown location filter %q", s)
	}
}

// SortMode selects the ordering applied after filtering.
type SortMode string

const (
	SortLastNameAsc  SortMode = "name-asc"
	SortLastNameDesc SortMode = "name-desc"
	SortCoordsFirst  SortMode = "coords-first"
	SortAddressAsc   SortMode = "address-asc"
)

// ParseSortMode maps a query-string value onto a sort mode, defaulting to
// SortLastNameAsc for the empty string.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case "", SortLastNameAsc:
		return SortLastNameAsc, nil
	case SortLastNameDesc:
		return SortLastNameDesc, nil
	case SortCoordsFirst:
		return SortCoordsFirst, nil
	case SortAddressAsc:
		return SortAddressAsc, nil
	default:
		return "", fmt.Errorf("unknown sort mode %q", s)
	}
}

// Query is one list request: free-text search, location filter, sort mode and
// a 1-based page number.
type Query struct {
	Text     string
	Location LocationFilter
	Sort     SortMode
	Page     int
}

// Page is the result of applying a Query. RangeStart and RangeEnd are the
// 1-based display positions of the first and last item, both zero when the
// result set is empty.
type Page struct {
	Items      []domain.ClientRecord
	Page       int
	TotalPages int
	Total      int
	RangeStart int
	RangeEnd   int
}

// Apply runs the full transformation: search, filter, sort, then paginate.
// The input slice is not modified.
func Apply(records []domain.ClientRecord, q Query) Page {
	matched := make([]domain.ClientRecord, 0, len(records))
	needle := strings.ToLower(strings.TrimSpace(q.Text))

	for _, rec := range records {
		if !matchesText(rec, needle) {
			continue
		}
		if !matchesLocation(rec, q.Location) {
			continue
		}
		matched = append(matched, rec)
	}

	sortRecords(matched, q.Sort)

	total := len(matched)
	totalPages := (total + PageSize - 1) / PageSize
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

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}

	out := Page{
		Items:      matched[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
	if total > 0 {
		out.RangeStart = start + 1
		out.RangeEnd = end
	}
	return out
}

// Sorted returns a sorted copy of the full record set without filtering or
// paging. Export walks every record in list order, so it shares the ordering
// rules rather than re-implementing them.
func Sorted(records []domain.ClientRecord, mode SortMode) []domain.ClientRecord {
	out := append([]domain.ClientRecord(nil), records...)
	sortRecords(out, mode)
	return out
}

// matchesText checks the "First Last" display name and the phone number for a
// case-insensitive substring match. An empty needle matches everything.
func matchesText(rec domain.ClientRecord, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(rec.FullName()), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(rec.Phone), needle)
}

func matchesLocation(rec domain.ClientRecord, f LocationFilter) bool {
	switch f {
	case FilterWithLocation:
		return rec.HasLocation()
	case FilterWithoutLocation:
		return !rec.HasLocation()
	default:
		return true
	}
}

func sortRecords(recs []domain.ClientRecord, mode SortMode) {
	switch mode {
	case SortLastNameDesc:
		sort.SliceStable(recs, func(i, j int) bool {
			return nameLess(recs[j], recs[i])
		})
	case SortCoordsFirst:
		// Located records first, alphabetical within each group.
		sort.SliceStable(recs, func(i, j int) bool {
			if recs[i].HasLocation() != recs[j].HasLocation() {
				return recs[i].HasLocation()
			}
			return nameLess(recs[i], recs[j])
		})
	case SortAddressAsc:
		// Address only; ties keep their incoming order.
		sort.SliceStable(recs, func(i, j int) bool {
			return strings.ToLower(recs[i].Address) < strings.ToLower(recs[j].Address)
		})
	default:
		sort.SliceStable(recs, func(i, j int) bool {
			return nameLess(recs[i], recs[j])
		})
	}
}

// nameLess orders by last name, breaking ties on first name.
func nameLess(a, b domain.ClientRecord) bool {
	al, bl := strings.ToLower(a.LastName), strings.ToLower(b.LastName)
	if al != bl {
		return al < bl
	}
	return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName)
}
