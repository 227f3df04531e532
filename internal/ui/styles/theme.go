// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application. It detects
// the terminal's color capability once at startup and adjusts.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile
	ASCIIOnly    bool

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// PAGE CHROME
	// ==========================================================================

	Title        lipgloss.Style
	SectionTitle lipgloss.Style
	Brand        lipgloss.Style
	Hint         lipgloss.Style

	// ==========================================================================
	// TABLES
	// ==========================================================================

	TableHeader     lipgloss.Style
	TableHeaderSort lipgloss.Style
	TableRow        lipgloss.Style
	TableRowActive  lipgloss.Style
	TableBorder     lipgloss.Style

	// ==========================================================================
	// STATUS BADGES
	// ==========================================================================

	BadgeOK       lipgloss.Style
	BadgePending  lipgloss.Style
	BadgeProgress lipgloss.Style
	BadgeSaved    lipgloss.Style

	// ==========================================================================
	// FORMS AND INPUTS
	// ==========================================================================

	Label        lipgloss.Style
	InputFocused lipgloss.Style
	InputBlurred lipgloss.Style

	// ==========================================================================
	// FEEDBACK SURFACES
	// ==========================================================================

	ErrorText   lipgloss.Style
	SuccessText lipgloss.Style
	ModalBox    lipgloss.Style
	ModalTitle  lipgloss.Style

	// ==========================================================================
	// STATUS BAR AND PAGINATION
	// ==========================================================================

	StatusBar      lipgloss.Style
	ShortcutKey    lipgloss.Style
	ShortcutDesc   lipgloss.Style
	PaginationInfo lipgloss.Style
	PageDot        lipgloss.Style
	PageDotActive  lipgloss.Style
}

// NewTheme creates a theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald).
		MarginBottom(1)

	t.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.Brand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.Hint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.TableHeaderSort = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.TableRow = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.TableRowActive = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SelectionBg).
		Bold(true)

	t.TableBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.BadgeOK = lipgloss.NewStyle().Foreground(Emerald).Bold(true)
	t.BadgePending = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	t.BadgeProgress = lipgloss.NewStyle().Foreground(Amber)
	t.BadgeSaved = lipgloss.NewStyle().Foreground(Emerald)

	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.InputFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(FocusRing).
		Padding(0, 1)

	t.InputBlurred = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.SuccessText = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ModalBox = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Emerald).
		Padding(1, 3).
		Align(lipgloss.Center)

	t.ModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.PaginationInfo = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.PageDot = lipgloss.NewStyle().
		Foreground(Overlay)

	t.PageDotActive = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)
}

// SetSize updates the theme dimensions on terminal resize.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// =============================================================================
// SHARED RENDER HELPERS
// =============================================================================

// RenderProgressBar renders an ASCII progress bar of the given width
// for a percentage in [0, 100].
func RenderProgressBar(width int, percent float64) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// SortArrow returns the header arrow glyph for a sort direction, with
// an ASCII fallback.
func (t *Theme) SortArrow(descending bool) string {
	if t.ASCIIOnly {
		if descending {
			return "v"
		}
		return "^"
	}
	if descending {
		return "↓"
	}
	return "↑"
}

// Dot returns the page-indicator glyph, with an ASCII fallback.
func (t *Theme) Dot(active bool) string {
	if t.ASCIIOnly {
		if active {
			return "(*)"
		}
		return "( )"
	}
	if active {
		return "●"
	}
	return "○"
}
