// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package detail provides the analysis review view: the analyzed-user
// table with selection checkboxes, the role recommendation pages with
// their feedback radio pairs, and the save and export actions.
package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andes-labs/sapdash/internal/config"
	"github.com/andes-labs/sapdash/internal/dataset"
	"github.com/andes-labs/sapdash/internal/export"
	"github.com/andes-labs/sapdash/internal/query"
	"github.com/andes-labs/sapdash/internal/review"
	"github.com/andes-labs/sapdash/internal/ui/components"
	"github.com/andes-labs/sapdash/internal/ui/nav"
	"github.com/andes-labs/sapdash/internal/ui/styles"
)

// =============================================================================
// FOCUS ZONES
// =============================================================================

type focusZone int

const (
	focusUsers focusZone = iota
	focusRoles
)

// =============================================================================
// DETAIL MODEL
// =============================================================================

// Model is the Bubble Tea model for the analysis review view.
type Model struct {
	theme *styles.Theme
	cfg   *config.Config

	analysis query.Record
	users    []query.Record
	roles    []query.Record

	store     *review.Store
	lastSaved review.Snapshot

	// Users section
	userState  query.QueryState
	userCursor int
	search     textinput.Model
	searching  bool
	userTable  components.Table
	pagination components.Pagination

	// Roles section
	rolePager  paginator.Model
	roleCursor int // row within the current role page

	focus focusZone

	// Modal
	modal     *components.Modal
	showModal bool

	statusMsg string

	width  int
	height int
}

// New creates the review view for one analysis.
func New(theme *styles.Theme, cfg *config.Config, analysisID string) Model {
	analysis, _ := dataset.AnalysisByID(analysisID)

	search := textinput.New()
	search.Placeholder = "Buscar por usuario, función o departamento..."
	search.CharLimit = 64
	search.Width = 48

	store := review.NewStore()

	userTable := components.NewTable(theme, []components.Column{
		{Field: dataset.FieldUser, Title: "Usuario", Width: 12},
		{Field: dataset.FieldBranch, Title: "Sucursal", Width: 9},
		{Field: dataset.FieldFunction, Title: "Función", Width: 20},
		{Field: dataset.FieldDepartment, Title: "Departamento", Width: 17},
		{Field: dataset.FieldAssigned, Title: "Asignado", Width: 9},
	})
	userTable.Checkbox = store.IsSelected

	roles := dataset.Roles()

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = cfg.Tables.RolesPageSize
	pager.SetTotalPages(len(roles))
	pager.ActiveDot = theme.PageDotActive.Render(theme.Dot(true))
	pager.InactiveDot = theme.PageDot.Render(theme.Dot(false))

	return Model{
		theme:      theme,
		cfg:        cfg,
		analysis:   analysis,
		users:      dataset.Users(),
		roles:      roles,
		store:      store,
		lastSaved:  store.Snapshot(),
		userState:  query.NewQueryState(),
		search:     search,
		userTable:  userTable,
		pagination: components.NewPagination(theme),
		rolePager:  pager,
		modal:      components.NewModal(theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// deriveUsers computes the current user table page.
func (m Model) deriveUsers() query.View {
	return query.DeriveView(m.users, m.userState, dataset.UserSearchFields, m.cfg.Tables.UsersPageSize)
}

// pageRoles returns the roles on the current pager page.
func (m Model) pageRoles() []query.Record {
	start, end := m.rolePager.GetSliceBounds(len(m.roles))
	return m.roles[start:end]
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showModal {
			return m.updateModal(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

// updateModal handles keys while the save confirmation is open.
func (m Model) updateModal(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "tab":
		m.modal.Next()
		return m, nil

	case "enter":
		m.showModal = false
		if m.modal.Choice == components.ChoiceUndo {
			m.store.Restore(m.lastSaved)
			m.statusMsg = "Cambios deshechos"
			return m, nil
		}
		m.lastSaved = m.store.Snapshot()
		return m, func() tea.Msg { return nav.GoHomeMsg{} }

	case "esc":
		// Dismiss keeps the save.
		m.showModal = false
		m.lastSaved = m.store.Snapshot()
		return m, nil
	}
	return m, nil
}

// updateSearch handles keys while the user search input is focused.
func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.userState.SearchTerm {
		m.userState.SetSearch(m.search.Value())
		m.userCursor = 0
	}
	return m, cmd
}

// updateBrowse dispatches keys to the focused section.
func (m Model) updateBrowse(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return nav.GoHomeMsg{} }

	case "tab":
		if m.focus == focusUsers {
			m.focus = focusRoles
		} else {
			m.focus = focusUsers
		}
		return m, nil

	case "ctrl+s":
		return m.saveFeedback()

	case "ctrl+d":
		return m.download()
	}

	if m.focus == focusUsers {
		return m.updateUsers(msg)
	}
	return m.updateRoles(msg)
}

// updateUsers handles keys for the analyzed-user table.
func (m Model) updateUsers(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searching = true
		return m, m.search.Focus()

	case "up", "k":
		if m.userCursor > 0 {
			m.userCursor--
		}

	case "down", "j":
		if m.userCursor < len(m.deriveUsers().Rows)-1 {
			m.userCursor++
		}

	case "left", "h":
		m.userState.Page--
		m.userState.ClampPage(m.deriveUsers().TotalPages)
		m.userCursor = 0

	case "right", "l":
		m.userState.Page++
		m.userState.ClampPage(m.deriveUsers().TotalPages)
		m.userCursor = 0

	case " ":
		rows := m.deriveUsers().Rows
		if m.userCursor >= 0 && m.userCursor < len(rows) {
			m.store.Toggle(rows[m.userCursor].ID())
		}
	}
	return m, nil
}

// updateRoles handles keys for the role recommendation pages.
func (m Model) updateRoles(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.roleCursor > 0 {
			m.roleCursor--
		}

	case "down", "j":
		if m.roleCursor < len(m.pageRoles())-1 {
			m.roleCursor++
		}

	case "left", "h":
		m.rolePager.PrevPage()
		m.roleCursor = 0

	case "right", "l":
		m.rolePager.NextPage()
		m.roleCursor = 0

	case "1":
		m.setFeedback(review.PairReview, int(review.OutcomeRejected))
	case "2":
		m.setFeedback(review.PairReview, int(review.OutcomeApproved))
	case "3":
		m.setFeedback(review.PairPersist, int(review.PersistDiscard))
	case "4":
		m.setFeedback(review.PairPersist, int(review.PersistKeep))
	}
	return m, nil
}

// setFeedback applies a radio choice to the role row under the cursor.
func (m *Model) setFeedback(kind review.PairKind, value int) {
	rows := m.pageRoles()
	if m.roleCursor < 0 || m.roleCursor >= len(rows) {
		return
	}
	r := rows[m.roleCursor]
	m.store.SetFeedback(r.String(dataset.FieldUser), r.String(dataset.FieldRole), kind, value)
}

// saveFeedback opens the confirmation modal.
func (m Model) saveFeedback() (Model, tea.Cmd) {
	m.showModal = true
	m.modal.Choice = components.ChoiceHome
	m.statusMsg = ""
	return m, nil
}

// download writes the recommendation file and reports the path.
func (m Model) download() (Model, tea.Cmd) {
	opts := export.DefaultOptions()
	opts.OutputDir = m.cfg.Export.Dir
	opts.FileName = m.cfg.Export.FileName

	path, err := export.ExportToFile(m.analysis, m.roles, m.store.Snapshot(), opts)
	if err != nil {
		m.statusMsg = "Error al exportar: " + err.Error()
		return m, nil
	}
	m.statusMsg = "Recomendación descargada: " + path
	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if m.showModal {
		return m.modal.View(m.width)
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Revisión de análisis: " + m.analysis.String(dataset.FieldName)))
	b.WriteString("\n")

	b.WriteString(m.renderUsers())
	b.WriteString("\n")
	b.WriteString(m.renderRoles())

	if m.statusMsg != "" {
		b.WriteString("\n")
		if strings.HasPrefix(m.statusMsg, "Error") {
			b.WriteString(m.theme.ErrorText.Render(m.statusMsg))
		} else {
			b.WriteString(m.theme.SuccessText.Render(m.statusMsg))
		}
	}

	return b.String()
}

// renderUsers renders the analyzed-user section.
func (m Model) renderUsers() string {
	v := m.deriveUsers()

	tbl := m.userTable
	tbl.Cursor = -1
	if m.focus == focusUsers && !m.searching {
		tbl.Cursor = m.userCursor
	}
	tbl.Badge = m.assignedBadge

	var b strings.Builder
	b.WriteString(m.theme.SectionTitle.Render("Usuarios analizados"))
	b.WriteString("\n")

	searchBox := m.theme.InputBlurred.Render(m.search.View())
	if m.searching {
		searchBox = m.theme.InputFocused.Render(m.search.View())
	}
	b.WriteString(searchBox)
	b.WriteString("\n")

	b.WriteString(tbl.Render(v.Rows, "", false))
	b.WriteString("\n")

	if v.TotalPages > 1 {
		b.WriteString(m.pagination.RangeLine(m.userState.Page, m.cfg.Tables.UsersPageSize, v.TotalMatching))
		b.WriteString("\n")
		b.WriteString(m.pagination.Controls(m.userState.Page, v.TotalPages))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) assignedBadge(field, value string) lipgloss.Style {
	if field != dataset.FieldAssigned {
		return m.theme.TableRow
	}
	if value == dataset.AssignedOK {
		return m.theme.BadgeOK
	}
	return m.theme.BadgePending
}

// renderRoles renders the role recommendation section.
func (m Model) renderRoles() string {
	var b strings.Builder
	b.WriteString(m.theme.SectionTitle.Render("Recomendaciones de roles"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-12s %-30s %-22s %-14s %s",
		"Usuario", "Rol", "N. de usuarios similares", "Feed back", "Guardar")
	b.WriteString(m.theme.TableHeader.Render(header))
	b.WriteString("\n")

	for i, r := range m.pageRoles() {
		b.WriteString(m.renderRoleRow(i, r))
		b.WriteString("\n")
	}

	b.WriteString(m.rolePager.View())
	b.WriteString("\n")
	return b.String()
}

// renderRoleRow renders one role with its two radio pairs.
func (m Model) renderRoleRow(index int, r query.Record) string {
	userID := r.String(dataset.FieldUser)
	roleID := r.String(dataset.FieldRole)
	fb := m.store.Feedback(userID, roleID)

	reviewCell := radioPair(fb.Outcome == review.OutcomeRejected, fb.Outcome == review.OutcomeApproved)
	persistCell := radioPair(fb.Persist == review.PersistDiscard, fb.Persist == review.PersistKeep)

	line := fmt.Sprintf("%-12s %-30s %-22s %-14s %s",
		userID, roleID, r.String(dataset.FieldSimilar), reviewCell, persistCell)

	style := m.theme.TableRow
	if m.focus == focusRoles && index == m.roleCursor {
		style = m.theme.TableRowActive
	}
	return style.Render(line)
}

// radioPair renders a No/Sí radio pair, at most one selected.
func radioPair(no, yes bool) string {
	mark := func(on bool) string {
		if on {
			return "(x)"
		}
		return "( )"
	}
	return mark(no) + "No " + mark(yes) + "Sí"
}

// Shortcuts lists the key bindings shown in the status bar.
func (m Model) Shortcuts() []components.Shortcut {
	if m.showModal {
		return []components.Shortcut{
			{Key: "←/→", Desc: "elegir"},
			{Key: "enter", Desc: "confirmar"},
		}
	}
	if m.searching {
		return []components.Shortcut{
			{Key: "esc", Desc: "cerrar búsqueda"},
		}
	}
	base := []components.Shortcut{
		{Key: "tab", Desc: "cambiar sección"},
		{Key: "ctrl+s", Desc: "guardar feedback"},
		{Key: "ctrl+d", Desc: "descargar recomendación"},
		{Key: "esc", Desc: "volver"},
	}
	if m.focus == focusUsers {
		return append([]components.Shortcut{
			{Key: "/", Desc: "buscar"},
			{Key: "espacio", Desc: "seleccionar"},
		}, base...)
	}
	return append([]components.Shortcut{
		{Key: "1/2", Desc: "feedback No/Sí"},
		{Key: "3/4", Desc: "guardar No/Sí"},
	}, base...)
}
