// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the sapdash
// TUI: the record table, pagination controls, the status bar, and the
// confirmation modal.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andes-labs/sapdash/internal/query"
	"github.com/andes-labs/sapdash/internal/ui/styles"
	"github.com/andes-labs/sapdash/internal/util"
)

// =============================================================================
// RECORD TABLE
// =============================================================================

// Column describes one table column bound to a record field.
type Column struct {
	Field    string
	Title    string
	Width    int // display columns for the cell content
	Sortable bool
}

// Table renders pages of records with aligned, width-safe columns. It
// is a pure renderer: the view owns the QueryState and derived rows.
type Table struct {
	Columns []Column

	// Cursor is the active row index within the current page, or -1 for
	// no row highlight (tables without row activation).
	Cursor int

	// Checkbox, when set, prefixes each row with a [x]/[ ] cell driven
	// by the record's id.
	Checkbox func(id string) bool

	// Badge, when set, restyles the rendered value of a field (status
	// and assignment badges).
	Badge func(field, value string) lipgloss.Style

	theme *styles.Theme
}

// NewTable creates a table renderer over the given columns.
func NewTable(theme *styles.Theme, columns []Column) Table {
	return Table{
		Columns: columns,
		Cursor:  -1,
		theme:   theme,
	}
}

// RenderHeader renders the column header line. sortField/descending
// mark the active sort column with an arrow.
func (t Table) RenderHeader(sortField string, descending bool) string {
	cells := make([]string, 0, len(t.Columns)+1)
	if t.Checkbox != nil {
		cells = append(cells, t.theme.TableHeader.Render(util.PadWidth("Sel", 3)))
	}
	for _, col := range t.Columns {
		title := col.Title
		style := t.theme.TableHeader
		if col.Sortable && col.Field == sortField {
			title += " " + t.theme.SortArrow(descending)
			style = t.theme.TableHeaderSort
		}
		cells = append(cells, style.Render(util.PadWidth(title, col.Width)))
	}
	return strings.Join(cells, "  ")
}

// RenderRows renders the current page of records, one line per record.
func (t Table) RenderRows(rows []query.Record) string {
	if len(rows) == 0 {
		return t.theme.Hint.Render("Sin resultados")
	}

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		lines = append(lines, t.renderRow(i, r))
	}
	return strings.Join(lines, "\n")
}

func (t Table) renderRow(index int, r query.Record) string {
	rowStyle := t.theme.TableRow
	if index == t.Cursor {
		rowStyle = t.theme.TableRowActive
	}

	cells := make([]string, 0, len(t.Columns)+1)
	if t.Checkbox != nil {
		mark := "[ ]"
		if t.Checkbox(r.ID()) {
			mark = "[x]"
		}
		cells = append(cells, rowStyle.Render(mark))
	}
	for _, col := range t.Columns {
		value := r.String(col.Field)
		cell := util.PadWidth(value, col.Width)
		style := rowStyle
		if t.Badge != nil && index != t.Cursor {
			style = t.Badge(col.Field, value)
		}
		cells = append(cells, style.Render(cell))
	}
	return strings.Join(cells, "  ")
}

// Render renders header plus rows inside the table border.
func (t Table) Render(rows []query.Record, sortField string, descending bool) string {
	content := t.RenderHeader(sortField, descending) + "\n" + t.RenderRows(rows)
	return t.theme.TableBorder.Render(content)
}
