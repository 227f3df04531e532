// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses the sapdash command line and handles the
// non-interactive commands.
package cli

import (
	"fmt"
	"os"
	"runtime"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdExport // headless recommendation export
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	ConfigPath string // --config: explicit config file
	ExportDir  string // --export-dir: overrides export.dir
	ASCII      bool   // --ascii: plain glyphs only
	AnalysisID string // export: which analysis to render

	// Raw args remaining after flag parsing
	Raw []string
}

// Parse reads os.Args and returns the command plus its arguments.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

func parseArgs(argv []string) (Command, Args) {
	cmd := CmdTUI
	args := Args{AnalysisID: "1"}

	for i := 0; i < len(argv); i++ {
		a := argv[i]
		switch a {
		case "version", "--version", "-v":
			cmd = CmdVersion
		case "help", "--help", "-h":
			cmd = CmdHelp
		case "export":
			cmd = CmdExport
		case "--ascii":
			args.ASCII = true
		case "--config":
			if i+1 < len(argv) {
				i++
				args.ConfigPath = argv[i]
			}
		case "--export-dir":
			if i+1 < len(argv) {
				i++
				args.ExportDir = argv[i]
			}
		case "--analysis":
			if i+1 < len(argv) {
				i++
				args.AnalysisID = argv[i]
			}
		default:
			args.Raw = append(args.Raw, a)
		}
	}
	return cmd, args
}

// HandleVersion prints full build information.
func HandleVersion() {
	fmt.Printf("sapdash %s\n", Version)
	fmt.Printf("  commit: %s\n", GitCommit)
	fmt.Printf("  built:  %s\n", BuildDate)
	fmt.Printf("  %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Print(`sapdash - revisión de accesos SAP

Usage:
  sapdash                         start the dashboard
  sapdash export [--analysis N]   write the recommendation file and exit
  sapdash version                 print version
  sapdash help                    this help

Flags:
  --config PATH       read configuration from PATH
  --export-dir DIR    write exports into DIR
  --ascii             plain ASCII glyphs only
`)
}
