// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/andes-labs/sapdash/internal/ui/styles"
)

// =============================================================================
// PAGINATION
// =============================================================================

// Pagination renders the per-table page controls. Views hold the page
// index inside their QueryState; this component only draws it.
type Pagination struct {
	theme *styles.Theme
}

// NewPagination creates a pagination renderer.
func NewPagination(theme *styles.Theme) Pagination {
	return Pagination{theme: theme}
}

// RangeLine reports the visible slice of a result set, in the shape
// "Mostrando 1-4 de 6". Page is 1-based, matching query.QueryState.
func (p Pagination) RangeLine(page, pageSize, total int) string {
	if total == 0 {
		return p.theme.PaginationInfo.Render("Mostrando 0 de 0")
	}
	if page < 1 {
		page = 1
	}
	first := (page-1)*pageSize + 1
	last := first + pageSize - 1
	if last > total {
		last = total
	}
	return p.theme.PaginationInfo.Render(
		fmt.Sprintf("Mostrando %d-%d de %d", first, last, total))
}

// Controls renders the prev/next line with the page counter between
// them. Disabled directions render dimmed. Page is 1-based.
func (p Pagination) Controls(page, totalPages int) string {
	prev := p.theme.ShortcutKey.Render("←") + p.theme.ShortcutDesc.Render(" Anterior")
	next := p.theme.ShortcutDesc.Render("Siguiente ") + p.theme.ShortcutKey.Render("→")
	if p.theme.ASCIIOnly {
		prev = p.theme.ShortcutKey.Render("<") + p.theme.ShortcutDesc.Render(" Anterior")
		next = p.theme.ShortcutDesc.Render("Siguiente ") + p.theme.ShortcutKey.Render(">")
	}
	if page <= 1 {
		prev = p.theme.Hint.Render(strip(prev))
	}
	if page >= totalPages {
		next = p.theme.Hint.Render(strip(next))
	}
	counter := p.theme.PaginationInfo.Render(
		fmt.Sprintf("Página %d de %d", max(page, 1), max(totalPages, 1)))
	return prev + "   " + counter + "   " + next
}

// Dots renders one indicator per page with the current page filled,
// the style used under the role pages on the detail view. Page is
// 1-based.
func (p Pagination) Dots(page, totalPages int) string {
	if totalPages <= 1 {
		return p.theme.PageDotActive.Render(p.theme.Dot(true))
	}
	var b strings.Builder
	for i := 1; i <= totalPages; i++ {
		if i > 1 {
			b.WriteString(" ")
		}
		if i == page {
			b.WriteString(p.theme.PageDotActive.Render(p.theme.Dot(true)))
		} else {
			b.WriteString(p.theme.PageDot.Render(p.theme.Dot(false)))
		}
	}
	return b.String()
}

// strip drops ANSI styling so a disabled control can be re-rendered in
// the hint style without nested escape sequences.
func strip(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
