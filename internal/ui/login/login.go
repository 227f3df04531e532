// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login provides the sign-in view. Authentication is a stub:
// any non-empty user and password pair is accepted.
package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andes-labs/sapdash/internal/ui/nav"
	"github.com/andes-labs/sapdash/internal/ui/styles"
)

// =============================================================================
// LOGIN MODEL
// =============================================================================

const (
	fieldUser = iota
	fieldPassword
)

// Model is the Bubble Tea model for the login view.
type Model struct {
	theme *styles.Theme

	user     textinput.Model
	password textinput.Model
	focus    int

	errMsg string

	width  int
	height int
}

// New creates the login view.
func New(theme *styles.Theme) Model {
	user := textinput.New()
	user.Placeholder = "usuario"
	user.CharLimit = 64
	user.Width = 30
	user.Focus()

	password := textinput.New()
	password.Placeholder = "contraseña"
	password.CharLimit = 64
	password.Width = 30
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return Model{
		theme:    theme,
		user:     user,
		password: password,
		focus:    fieldUser,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.cycleFocus()
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focus == fieldUser {
		m.user, cmd = m.user.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *Model) cycleFocus() {
	if m.focus == fieldUser {
		m.focus = fieldPassword
		m.user.Blur()
		m.password.Focus()
	} else {
		m.focus = fieldUser
		m.password.Blur()
		m.user.Focus()
	}
}

func (m Model) submit() (Model, tea.Cmd) {
	user := strings.TrimSpace(m.user.Value())
	password := m.password.Value()
	if user == "" || password == "" {
		m.errMsg = "Ingrese usuario y contraseña"
		return m, nil
	}
	m.errMsg = ""
	return m, func() tea.Msg { return nav.LoginMsg{User: user} }
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Brand.Render("cmpc"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Title.Render("¡Bienvenidos al Gestor de Accesos SAP!"))
	b.WriteString("\n\n")

	b.WriteString(m.theme.SectionTitle.Render("Login"))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Label.Render("Usuario:"))
	b.WriteString("\n")
	b.WriteString(m.inputBox(m.user.View(), m.focus == fieldUser))
	b.WriteString("\n")

	b.WriteString(m.theme.Label.Render("Contraseña:"))
	b.WriteString("\n")
	b.WriteString(m.inputBox(m.password.View(), m.focus == fieldPassword))
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(m.theme.ErrorText.Render(m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.theme.Hint.Render("enter Ingresar · tab cambiar campo"))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) inputBox(inner string, focused bool) string {
	if focused {
		return m.theme.InputFocused.Render(inner)
	}
	return m.theme.InputBlurred.Render(inner)
}
