// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package home

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andes-labs/sapdash/internal/config"
	"github.com/andes-labs/sapdash/internal/query"
	"github.com/andes-labs/sapdash/internal/ui/nav"
	"github.com/andes-labs/sapdash/internal/ui/styles"
)

func newModel() Model {
	theme := styles.NewTheme()
	theme.ASCIIOnly = true
	return New(theme, config.Default())
}

func press(m Model, key string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	return m.Update(msg)
}

func TestFirstPageShowsFourAnalyses(t *testing.T) {
	m := newModel()

	v := m.derive()
	if len(v.Rows) != 4 {
		t.Fatalf("first page rows = %d, want 4", len(v.Rows))
	}
	if v.TotalPages != 2 {
		t.Errorf("total pages = %d, want 2", v.TotalPages)
	}
	out := m.View()
	for _, want := range []string{"Sus análisis", "Resumen_07-2026", "Mostrando 1-4 de 6"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPageNavigation(t *testing.T) {
	m := newModel()

	m, _ = press(m, "right")
	if m.state.Page != 2 {
		t.Fatalf("page after right = %d, want 2", m.state.Page)
	}
	if got := len(m.derive().Rows); got != 2 {
		t.Errorf("second page rows = %d, want 2", got)
	}

	// Already at the last page.
	m, _ = press(m, "right")
	if m.state.Page != 2 {
		t.Errorf("page after right at end = %d, want 2", m.state.Page)
	}

	m, _ = press(m, "left")
	if m.state.Page != 1 {
		t.Errorf("page after left = %d, want 1", m.state.Page)
	}
}

func TestSearchFiltersAndResetsPage(t *testing.T) {
	m := newModel()
	m, _ = press(m, "right")

	m, _ = press(m, "/")
	if !m.searching {
		t.Fatal("slash did not enter search mode")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("rocio")})

	if m.state.Page != 1 {
		t.Errorf("page after search = %d, want 1", m.state.Page)
	}
	v := m.derive()
	if v.TotalMatching != 2 {
		t.Errorf("matches for rocio = %d, want 2", v.TotalMatching)
	}

	m, _ = press(m, "esc")
	if m.searching {
		t.Error("esc did not leave search mode")
	}
}

func TestSortToggle(t *testing.T) {
	m := newModel()

	m, _ = press(m, "1")
	if m.state.SortField != "name" || m.state.SortDirection != query.Ascending {
		t.Fatalf("after 1: field=%q dir=%v", m.state.SortField, m.state.SortDirection)
	}
	m, _ = press(m, "1")
	if m.state.SortDirection != query.Descending {
		t.Errorf("second press did not flip to descending")
	}
	m, _ = press(m, "3")
	if m.state.SortField != "branch" || m.state.SortDirection != query.Ascending {
		t.Errorf("after 3: field=%q dir=%v", m.state.SortField, m.state.SortDirection)
	}
}

func TestEnterOpensAnalysisUnderCursor(t *testing.T) {
	m := newModel()
	m, _ = press(m, "down")

	_, cmd := press(m, "enter")
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	msg, ok := cmd().(nav.OpenAnalysisMsg)
	if !ok {
		t.Fatalf("command produced %T, want nav.OpenAnalysisMsg", cmd())
	}
	if msg.ID != "2" {
		t.Errorf("opened analysis %q, want 2", msg.ID)
	}
}

func TestCursorStaysInPage(t *testing.T) {
	m := newModel()

	m, _ = press(m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.cursor)
	}
	for i := 0; i < 10; i++ {
		m, _ = press(m, "down")
	}
	if m.cursor != 3 {
		t.Errorf("cursor after repeated down = %d, want 3", m.cursor)
	}
}

func TestNOpensNewAnalysis(t *testing.T) {
	m := newModel()

	_, cmd := press(m, "n")
	if cmd == nil {
		t.Fatal("n produced no command")
	}
	if _, ok := cmd().(nav.NewAnalysisMsg); !ok {
		t.Fatalf("command produced %T, want nav.NewAnalysisMsg", cmd())
	}
}
