// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package query implements the table query engine: filtering, sorting,
// and paginating an in-memory record sequence from a QueryState.
//
// DeriveView is a pure function; views re-derive on every state change
// (search keystroke, sort-header toggle, page flip) instead of mutating
// a shared result set.
package query

import (
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// RECORDS
// =============================================================================

// Record is one row of domain data: an opaque mapping from field name
// to scalar value (string or number). Records are immutable once loaded
// from the data source for the current session.
type Record map[string]any

// ID returns the record's stable identifier field, or "" if absent.
func (r Record) ID() string {
	return r.String(FieldID)
}

// String returns the named field rendered as a string. Numbers are
// formatted with fmt; missing fields render as "".
func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// FieldID is the conventional stable-identifier field every dataset
// record carries.
const FieldID = "id"

// =============================================================================
// QUERY STATE
// =============================================================================

// SortDirection orders a sorted column ascending or descending.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// String returns the display string for the direction.
func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// QueryState holds the search/sort/page parameters governing a derived
// table view. It is per-view, per-session state: created when a view
// mounts and discarded on navigation away.
type QueryState struct {
	SearchTerm    string
	SortField     string // empty = unsorted, preserve source order
	SortDirection SortDirection
	Page          int // 1-based
}

// NewQueryState returns the initial state: no filter, no sort, page 1.
func NewQueryState() QueryState {
	return QueryState{Page: 1, SortDirection: Ascending}
}

// SetSearch replaces the search term and resets the page to 1. Any
// change to the term invalidates the current page position.
func (s *QueryState) SetSearch(term string) {
	s.SearchTerm = term
	s.Page = 1
}

// ToggleSort cycles the sort state for a header click: clicking the
// active field flips direction, clicking a new field sorts it ascending.
func (s *QueryState) ToggleSort(field string) {
	if s.SortField == field {
		if s.SortDirection == Ascending {
			s.SortDirection = Descending
		} else {
			s.SortDirection = Ascending
		}
		return
	}
	s.SortField = field
	s.SortDirection = Ascending
}

// ClampPage pins Page into [1, totalPages]. Views call this after every
// filter or record-set change; DeriveView itself never clamps.
func (s *QueryState) ClampPage(totalPages int) {
	if totalPages < 1 {
		totalPages = 1
	}
	if s.Page < 1 {
		s.Page = 1
	}
	if s.Page > totalPages {
		s.Page = totalPages
	}
}

// =============================================================================
// VIEW DERIVATION
// =============================================================================

// View is the derived slice of a record set for one page.
type View struct {
	Rows          []Record
	TotalMatching int
	TotalPages    int
}

// DeriveView filters, sorts, and paginates records.
//
// Filtering runs first: a record matches when the case-insensitive
// substring test succeeds against any of the given fields; an empty
// search term matches everything. Sorting is stable, so records with
// equal keys keep their filtered order in either direction. Pagination
// slices [(page-1)*pageSize, page*pageSize), clamped to the matching
// records; the caller is responsible for keeping state.Page in range.
func DeriveView(records []Record, state QueryState, fields []string, pageSize int) View {
	if pageSize < 1 {
		pageSize = 1
	}

	filtered := filterRecords(records, state.SearchTerm, fields)

	if state.SortField != "" {
		sortRecords(filtered, state.SortField, state.SortDirection)
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (state.Page - 1) * pageSize
	end := start + pageSize
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return View{
		Rows:          filtered[start:end],
		TotalMatching: total,
		TotalPages:    totalPages,
	}
}

// filterRecords returns the records whose listed fields contain term,
// preserving input order. The result is always a fresh slice so sorting
// never reorders the caller's records.
func filterRecords(records []Record, term string, fields []string) []Record {
	out := make([]Record, 0, len(records))
	if term == "" {
		out = append(out, records...)
		return out
	}
	needle := strings.ToLower(term)
	for _, r := range records {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(r.String(f)), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// sortRecords sorts in place by the raw field values. Stability matters:
// sample data contains duplicate sort keys and ties must keep their
// relative filtered order.
func sortRecords(records []Record, field string, dir SortDirection) {
	sort.SliceStable(records, func(i, j int) bool {
		c := compareValues(records[i][field], records[j][field])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
}

// compareValues compares two scalar field values: numerically when both
// are numbers, lexicographically otherwise.
func compareValues(a, b any) int {
	an, aok := asFloat(a)
	bn, bok := asFloat(b)
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(valueString(a), valueString(b))
}

// asFloat widens any numeric scalar to float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

func valueString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
