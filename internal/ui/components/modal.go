// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andes-labs/sapdash/internal/ui/styles"
)

// =============================================================================
// CONFIRMATION MODAL - Save success dialog with two choices
// =============================================================================

// ModalChoice identifies the highlighted button in a Modal.
type ModalChoice int

const (
	// ChoiceUndo reverts the save and stays on the current view.
	ChoiceUndo ModalChoice = iota
	// ChoiceHome keeps the save and returns to the analysis list.
	ChoiceHome
)

// Modal is the confirmation dialog shown after feedback is saved.
type Modal struct {
	Title   string
	Message string
	Choice  ModalChoice
	theme   *styles.Theme
}

// NewModal creates the save confirmation modal.
func NewModal(theme *styles.Theme) *Modal {
	return &Modal{
		Title:  "¡Feedback guardado exitosamente!",
		Choice: ChoiceHome,
		theme:  theme,
	}
}

// Next moves the highlight to the other choice.
func (m *Modal) Next() {
	if m.Choice == ChoiceUndo {
		m.Choice = ChoiceHome
	} else {
		m.Choice = ChoiceUndo
	}
}

// View renders the modal box centred within the given width.
func (m *Modal) View(width int) string {
	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render(m.Title))
	b.WriteString("\n\n")
	if m.Message != "" {
		b.WriteString(m.theme.Label.Render(m.Message))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderButtons())

	box := m.theme.ModalBox.Render(b.String())
	if width <= lipgloss.Width(box) {
		return box
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func (m *Modal) renderButtons() string {
	undo := m.renderButton("Deshacer", m.Choice == ChoiceUndo)
	home := m.renderButton("Ir a inicio", m.Choice == ChoiceHome)
	return undo + "   " + home
}

func (m *Modal) renderButton(label string, active bool) string {
	if active {
		return m.theme.TableRowActive.Padding(0, 1).Render("> " + label)
	}
	return m.theme.Label.Padding(0, 1).Render("  " + label)
}
