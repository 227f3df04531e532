// sapdash - terminal dashboard for SAP access-role review.
//
// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andes-labs/sapdash/internal/cli"
	"github.com/andes-labs/sapdash/internal/config"
	"github.com/andes-labs/sapdash/internal/ui/components"
	"github.com/andes-labs/sapdash/internal/ui/detail"
	"github.com/andes-labs/sapdash/internal/ui/home"
	"github.com/andes-labs/sapdash/internal/ui/login"
	"github.com/andes-labs/sapdash/internal/ui/nav"
	"github.com/andes-labs/sapdash/internal/ui/newanalysis"
	"github.com/andes-labs/sapdash/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	case cli.CmdExport:
		if err := cli.HandleExport(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		runTUI(args)
	}
}

// runTUI starts the dashboard.
func runTUI(args cli.Args) {
	cfg := loadConfig(args)

	theme := styles.NewTheme()
	theme.ASCIIOnly = cfg.UI.ASCIIOnly || args.ASCII

	m := newRootModel(theme, cfg)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the configuration for this run: an explicit
// --config path wins, otherwise the usual lookup plus env overrides.
func loadConfig(args cli.Args) *config.Config {
	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Advertencia: configuración inválida, usando valores por defecto (%v)\n", err)
		cfg = config.Default()
	}
	if args.ExportDir != "" {
		cfg.Export.Dir = args.ExportDir
	}
	return cfg
}

// =============================================================================
// ROOT MODEL - View switching
// =============================================================================

// viewState names the active screen.
type viewState int

const (
	stateLogin viewState = iota
	stateHome
	stateDetail
	stateNewAnalysis
)

// rootModel owns navigation between the four screens. Each screen is
// its own Bubble Tea model; this one routes messages and swaps them.
type rootModel struct {
	theme *styles.Theme
	cfg   *config.Config

	state viewState
	user  string

	login       login.Model
	home        home.Model
	detail      detail.Model
	newAnalysis newanalysis.Model

	statusBar *components.StatusBar

	width  int
	height int
}

func newRootModel(theme *styles.Theme, cfg *config.Config) rootModel {
	return rootModel{
		theme:     theme,
		cfg:       cfg,
		state:     stateLogin,
		login:     login.New(theme),
		statusBar: components.NewStatusBar(theme),
	}
}

// Init implements tea.Model.
func (m rootModel) Init() tea.Cmd {
	return m.login.Init()
}

// Update implements tea.Model.
func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.statusBar.SetWidth(msg.Width)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// Quit from the list; everywhere else q is regular input.
			if m.state == stateHome && !m.home.Searching() {
				return m, tea.Quit
			}
		}

	case nav.LoginMsg:
		m.user = msg.User
		m.statusBar.User = msg.User
		m.home = home.New(m.theme, m.cfg)
		return m.activate(stateHome, m.home.Init())

	case nav.LogoutMsg:
		m.user = ""
		m.statusBar.User = ""
		m.login = login.New(m.theme)
		return m.activate(stateLogin, m.login.Init())

	case nav.GoHomeMsg:
		m.home = home.New(m.theme, m.cfg)
		return m.activate(stateHome, m.home.Init())

	case nav.OpenAnalysisMsg:
		m.detail = detail.New(m.theme, m.cfg, msg.ID)
		return m.activate(stateDetail, m.detail.Init())

	case nav.NewAnalysisMsg:
		m.newAnalysis = newanalysis.New(m.theme, m.cfg)
		return m.activate(stateNewAnalysis, m.newAnalysis.Init())
	}

	var cmd tea.Cmd
	switch m.state {
	case stateLogin:
		m.login, cmd = m.login.Update(msg)
	case stateHome:
		m.home, cmd = m.home.Update(msg)
	case stateDetail:
		m.detail, cmd = m.detail.Update(msg)
	case stateNewAnalysis:
		m.newAnalysis, cmd = m.newAnalysis.Update(msg)
	}
	return m, cmd
}

// activate switches to a freshly built screen and replays the current
// terminal size so it lays itself out immediately.
func (m rootModel) activate(target viewState, init tea.Cmd) (tea.Model, tea.Cmd) {
	m.state = target
	if m.width == 0 {
		return m, init
	}
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	var cmd tea.Cmd
	switch target {
	case stateLogin:
		m.login, cmd = m.login.Update(size)
	case stateHome:
		m.home, cmd = m.home.Update(size)
	case stateDetail:
		m.detail, cmd = m.detail.Update(size)
	case stateNewAnalysis:
		m.newAnalysis, cmd = m.newAnalysis.Update(size)
	}
	return m, tea.Batch(init, cmd)
}

// View implements tea.Model.
func (m rootModel) View() string {
	switch m.state {
	case stateLogin:
		return m.login.View()

	case stateHome:
		m.statusBar.ViewName = "Inicio"
		return m.home.View() + "\n" + m.statusBar.View(m.home.Shortcuts())

	case stateDetail:
		m.statusBar.ViewName = "Revisión"
		return m.detail.View() + "\n" + m.statusBar.View(m.detail.Shortcuts())

	case stateNewAnalysis:
		m.statusBar.ViewName = "Nuevo análisis"
		return m.newAnalysis.View() + "\n" + m.statusBar.View(m.newAnalysis.Shortcuts())
	}
	return ""
}
