// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		percent float64
		want    string
	}{
		{"empty", 10, 0, "[----------]"},
		{"half", 10, 50, "[#####-----]"},
		{"full", 10, 100, "[##########]"},
		{"clamped high", 4, 250, "[####]"},
		{"clamped low", 4, -5, "[----]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderProgressBar(tt.width, tt.percent); got != tt.want {
				t.Errorf("RenderProgressBar(%d, %v) = %q, want %q", tt.width, tt.percent, got, tt.want)
			}
		})
	}
}

func TestRenderProgressBar_WidthFloor(t *testing.T) {
	got := RenderProgressBar(0, 50)
	if !strings.HasPrefix(got, "[") || !strings.HasSuffix(got, "]") {
		t.Errorf("bar lost its frame: %q", got)
	}
}

func TestSortArrowAndDot_ASCIIFallback(t *testing.T) {
	th := &Theme{}
	if th.SortArrow(false) != "↑" || th.SortArrow(true) != "↓" {
		t.Error("unicode arrows expected by default")
	}
	if th.Dot(true) != "●" {
		t.Error("unicode dot expected by default")
	}

	th.ASCIIOnly = true
	if th.SortArrow(false) != "^" || th.SortArrow(true) != "v" {
		t.Error("ascii arrows expected")
	}
	if th.Dot(true) != "(*)" || th.Dot(false) != "( )" {
		t.Error("ascii dots expected")
	}
}

func TestNewTheme_SetSize(t *testing.T) {
	th := NewTheme()
	th.SetSize(120, 40)
	if th.Width != 120 || th.Height != 40 {
		t.Errorf("size = %dx%d, want 120x40", th.Width, th.Height)
	}
}
