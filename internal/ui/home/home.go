// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package home provides the analysis list view: a searchable, sortable,
// paginated table of the reviewer's analyses.
package home

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andes-labs/sapdash/internal/config"
	"github.com/andes-labs/sapdash/internal/dataset"
	"github.com/andes-labs/sapdash/internal/query"
	"github.com/andes-labs/sapdash/internal/ui/components"
	"github.com/andes-labs/sapdash/internal/ui/nav"
	"github.com/andes-labs/sapdash/internal/ui/styles"
)

// =============================================================================
// HOME MODEL
// =============================================================================

// Model is the Bubble Tea model for the analysis list.
type Model struct {
	theme *styles.Theme
	cfg   *config.Config

	records []query.Record
	state   query.QueryState
	cursor  int // row within the current page

	search    textinput.Model
	searching bool

	table      components.Table
	pagination components.Pagination

	width  int
	height int
}

// sortKeys maps number keys to sortable columns, in header order.
var sortKeys = map[string]string{
	"1": dataset.FieldName,
	"2": dataset.FieldCreatedBy,
	"3": dataset.FieldBranch,
	"4": dataset.FieldCreatedAt,
}

// New creates the home view over the analysis dataset.
func New(theme *styles.Theme, cfg *config.Config) Model {
	search := textinput.New()
	search.Placeholder = "Buscar por nombre, creador o sucursal..."
	search.CharLimit = 64
	search.Width = 44

	columns := []components.Column{
		{Field: dataset.FieldName, Title: "Análisis", Width: 16, Sortable: true},
		{Field: dataset.FieldCreatedBy, Title: "Creado por", Width: 26, Sortable: true},
		{Field: dataset.FieldBranch, Title: "Sucursal", Width: 9, Sortable: true},
		{Field: dataset.FieldCreatedAt, Title: "Fecha creación", Width: 15, Sortable: true},
		{Field: dataset.FieldStatus, Title: "Estado", Width: 10},
	}

	table := components.NewTable(theme, columns)
	table.Badge = func(field, value string) lipgloss.Style {
		if field != dataset.FieldStatus {
			return theme.TableRow
		}
		if value == dataset.StatusInProgress {
			return theme.BadgeProgress
		}
		return theme.BadgeSaved
	}

	return Model{
		theme:      theme,
		cfg:        cfg,
		records:    dataset.Analyses(),
		state:      query.NewQueryState(),
		search:     search,
		table:      table,
		pagination: components.NewPagination(theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// derive computes the current table page.
func (m Model) derive() query.View {
	return query.DeriveView(m.records, m.state, dataset.AnalysisSearchFields, m.cfg.Tables.AnalysesPageSize)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

// updateSearch handles keys while the search input is focused.
func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.SearchTerm {
		m.state.SetSearch(m.search.Value())
		m.cursor = 0
	}
	return m, cmd
}

// updateBrowse handles keys while the table has focus.
func (m Model) updateBrowse(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	if field, ok := sortKeys[key]; ok {
		m.state.ToggleSort(field)
		return m, nil
	}

	switch key {
	case "/":
		m.searching = true
		return m, m.search.Focus()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.derive().Rows)-1 {
			m.cursor++
		}
		return m, nil

	case "left", "h":
		m.state.Page--
		m.state.ClampPage(m.derive().TotalPages)
		m.cursor = 0
		return m, nil

	case "right", "l":
		m.state.Page++
		m.state.ClampPage(m.derive().TotalPages)
		m.cursor = 0
		return m, nil

	case "enter":
		rows := m.derive().Rows
		if m.cursor >= 0 && m.cursor < len(rows) {
			id := rows[m.cursor].ID()
			return m, func() tea.Msg { return nav.OpenAnalysisMsg{ID: id} }
		}
		return m, nil

	case "n":
		return m, func() tea.Msg { return nav.NewAnalysisMsg{} }
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	v := m.derive()

	tbl := m.table
	tbl.Cursor = m.cursor
	if m.searching {
		tbl.Cursor = -1
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Sus análisis"))
	b.WriteString("\n")

	searchBox := m.theme.InputBlurred.Render(m.search.View())
	if m.searching {
		searchBox = m.theme.InputFocused.Render(m.search.View())
	}
	b.WriteString(searchBox)
	b.WriteString("\n")

	b.WriteString(tbl.Render(v.Rows, m.state.SortField, m.state.SortDirection == query.Descending))
	b.WriteString("\n")

	if v.TotalPages > 1 {
		b.WriteString(m.pagination.RangeLine(m.state.Page, m.cfg.Tables.AnalysesPageSize, v.TotalMatching))
		b.WriteString("\n")
		b.WriteString(m.pagination.Controls(m.state.Page, v.TotalPages))
		b.WriteString("\n")
	}

	return b.String()
}

// Searching reports whether the search input has focus. The root model
// checks this so plain letters reach the input instead of acting as
// global shortcuts.
func (m Model) Searching() bool {
	return m.searching
}

// Shortcuts lists the key bindings shown in the status bar.
func (m Model) Shortcuts() []components.Shortcut {
	if m.searching {
		return []components.Shortcut{
			{Key: "esc", Desc: "cerrar búsqueda"},
		}
	}
	return []components.Shortcut{
		{Key: "/", Desc: "buscar"},
		{Key: "1-4", Desc: "ordenar"},
		{Key: "enter", Desc: "abrir"},
		{Key: "n", Desc: "nuevo análisis"},
		{Key: "q", Desc: "salir"},
	}
}
