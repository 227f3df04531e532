// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package newanalysis provides the upload form: the data file intake
// with its simulated upload, the fixed analysis info panel, and the
// optional user-ID filter list.
package newanalysis

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andes-labs/sapdash/internal/config"
	"github.com/andes-labs/sapdash/internal/ui/components"
	"github.com/andes-labs/sapdash/internal/ui/nav"
	"github.com/andes-labs/sapdash/internal/ui/styles"
	"github.com/andes-labs/sapdash/internal/upload"
)

// Analysis info panel values. The pilot runs against one fixed scope.
const (
	infoBranch     = "0504"
	infoFunction   = "ML81N"
	infoDepartment = "CORP_FINANCE"
)

// tickMsg advances the upload simulation. It carries the generation of
// the submission that scheduled it so ticks from a superseded upload
// are dropped instead of corrupting the current one.
type tickMsg struct {
	generation int
}

// =============================================================================
// NEW ANALYSIS MODEL
// =============================================================================

// Model is the Bubble Tea model for the upload form.
type Model struct {
	theme *styles.Theme
	cfg   *config.Config

	sim *upload.Simulator

	fileInput textinput.Model
	filters   []textinput.Model
	focus     int // 0 = file input, 1..len(filters) = filter rows

	bar  progress.Model
	spin spinner.Model

	errMsg string

	width  int
	height int
}

// New creates the upload form.
func New(theme *styles.Theme, cfg *config.Config) Model {
	sim := upload.NewSimulator()
	sim.SetTiming(cfg.Upload.Step, cfg.TickInterval())

	fileInput := textinput.New()
	fileInput.Placeholder = "Ingresar xlsx/csv"
	fileInput.CharLimit = 128
	fileInput.Width = 36
	fileInput.Focus()

	// The filter list starts with one seeded ID and one blank row.
	filters := []textinput.Model{
		newFilterInput("AABATTI"),
		newFilterInput(""),
	}

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	if theme.ASCIIOnly {
		spin.Spinner = spinner.Line
	}
	spin.Style = theme.Brand

	return Model{
		theme:     theme,
		cfg:       cfg,
		sim:       sim,
		fileInput: fileInput,
		filters:   filters,
		bar:       progress.New(progress.WithDefaultGradient()),
		spin:      spin,
	}
}

func newFilterInput(value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = "Ingrese ID de usuario"
	in.CharLimit = 32
	in.Width = 24
	in.SetValue(value)
	return in
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// scheduleTick arms the next simulation tick for a generation.
func (m Model) scheduleTick(generation int) tea.Cmd {
	return tea.Tick(m.sim.TickInterval(), func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.sim.Tick(msg.generation) && m.sim.Phase() == upload.PhaseUploading {
			return m, m.scheduleTick(msg.generation)
		}
		return m, nil

	case spinner.TickMsg:
		if m.sim.Phase() != upload.PhaseUploading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.sim.Cancel()
		return m, func() tea.Msg { return nav.GoHomeMsg{} }

	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil

	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil

	case "ctrl+a":
		m.filters = append(m.filters, newFilterInput(""))
		m.setFocus(len(m.filters))
		return m, nil

	case "ctrl+s":
		return m.startAnalysis()

	case "enter":
		if m.focus == 0 {
			return m.submitFile()
		}
		m.setFocus(m.focus + 1)
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.fileInput, cmd = m.fileInput.Update(msg)
	} else {
		m.filters[m.focus-1], cmd = m.filters[m.focus-1].Update(msg)
	}
	return m, cmd
}

// setFocus moves focus, wrapping over the file input plus filter rows.
func (m *Model) setFocus(target int) {
	total := len(m.filters) + 1
	target = ((target % total) + total) % total

	m.fileInput.Blur()
	for i := range m.filters {
		m.filters[i].Blur()
	}

	m.focus = target
	if target == 0 {
		m.fileInput.Focus()
	} else {
		m.filters[target-1].Focus()
	}
}

// submitFile hands the typed file name to the simulator.
func (m Model) submitFile() (Model, tea.Cmd) {
	name := strings.TrimSpace(m.fileInput.Value())
	if name == "" {
		return m, nil
	}

	generation, err := m.sim.SubmitFile(name)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.errMsg = ""
	return m, tea.Batch(m.scheduleTick(generation), m.spin.Tick)
}

// startAnalysis gates on the simulator and navigates into the review.
func (m Model) startAnalysis() (Model, tea.Cmd) {
	if err := m.sim.StartAnalysis(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	return m, func() tea.Msg { return nav.OpenAnalysisMsg{ID: "1"} }
}

// FilterIDs returns the non-empty user-ID filters.
func (m Model) FilterIDs() []string {
	out := make([]string, 0, len(m.filters))
	for _, in := range m.filters {
		if v := strings.TrimSpace(in.Value()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Nuevo análisis"))
	b.WriteString("\n")

	b.WriteString(m.theme.SectionTitle.Render("Cargar archivo de datos *"))
	b.WriteString("\n")
	fileBox := m.theme.InputBlurred.Render(m.fileInput.View())
	if m.focus == 0 {
		fileBox = m.theme.InputFocused.Render(m.fileInput.View())
	}
	b.WriteString(fileBox)
	b.WriteString("\n")

	b.WriteString(m.renderUploadState())

	b.WriteString("\n")
	b.WriteString(m.theme.SectionTitle.Render("Información del análisis"))
	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render("Sucursal: " + infoBranch))
	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render("Función: " + infoFunction))
	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render("Departamento: " + infoDepartment))
	b.WriteString("\n\n")

	b.WriteString(m.theme.SectionTitle.Render("Filtro por usuario (Opcional)"))
	b.WriteString("\n")
	for i, in := range m.filters {
		box := m.theme.InputBlurred.Render("ID " + in.View())
		if m.focus == i+1 {
			box = m.theme.InputFocused.Render("ID " + in.View())
		}
		b.WriteString(box)
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorText.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Hint.Render("* Campos obligatorios"))
	b.WriteString("\n")
	return b.String()
}

// renderUploadState renders the progress or result of the simulation.
func (m Model) renderUploadState() string {
	switch m.sim.Phase() {
	case upload.PhaseUploading, upload.PhaseValidating:
		bar := m.bar.ViewAs(float64(m.sim.Progress()) / 100)
		if m.theme.ASCIIOnly {
			bar = styles.RenderProgressBar(30, float64(m.sim.Progress()))
		}
		return m.spin.View() + " " + m.theme.Label.Render("Estado de carga") + "\n" + bar + "\n"

	case upload.PhaseComplete:
		return m.theme.SuccessText.Render("✓ Archivo cargado exitosamente") + "\n"

	case upload.PhaseRejected:
		return m.theme.ErrorText.Render(m.sim.ErrorMessage()) + "\n"
	}
	return ""
}

// Shortcuts lists the key bindings shown in the status bar.
func (m Model) Shortcuts() []components.Shortcut {
	return []components.Shortcut{
		{Key: "enter", Desc: "cargar archivo"},
		{Key: "tab", Desc: "siguiente campo"},
		{Key: "ctrl+a", Desc: "agregar ID"},
		{Key: "ctrl+s", Desc: "comenzar análisis"},
		{Key: "esc", Desc: "volver"},
	}
}
