// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andes-labs/sapdash/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom shortcut and context bar
// =============================================================================

// Shortcut is one key binding shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom bar: the current user on the left, the
// active view's shortcuts on the right.
type StatusBar struct {
	User     string
	ViewName string
	Width    int
	theme    *styles.Theme
}

// NewStatusBar creates a StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// View renders the status bar with the given shortcuts.
func (s *StatusBar) View(shortcuts []Shortcut) string {
	left := s.renderLeft()
	right := s.renderShortcuts(shortcuts)

	spacing := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if spacing < 1 {
		spacing = 1
	}

	return s.theme.StatusBar.Width(s.Width).Render(
		left + strings.Repeat(" ", spacing) + right)
}

// renderLeft renders the user and view context section.
func (s *StatusBar) renderLeft() string {
	parts := []string{}
	if s.User != "" {
		parts = append(parts, s.theme.Brand.Render(s.User))
	}
	if s.ViewName != "" {
		parts = append(parts, s.theme.ShortcutDesc.Render(s.ViewName))
	}
	sep := s.theme.ShortcutDesc.Render(" | ")
	return strings.Join(parts, sep)
}

// renderShortcuts renders the key binding hints.
func (s *StatusBar) renderShortcuts(shortcuts []Shortcut) string {
	rendered := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		rendered = append(rendered,
			s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}
	return strings.Join(rendered, "  ")
}
