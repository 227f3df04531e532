// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for sapdash.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides, loaded from ~/.sapdash/config.toml when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete sapdash configuration.
type Config struct {
	Version string `toml:"version"`

	Tables TablesConfig `toml:"tables"`
	Upload UploadConfig `toml:"upload"`
	Export ExportConfig `toml:"export"`
	UI     UIConfig     `toml:"ui"`
}

// TablesConfig holds the per-view page sizes.
type TablesConfig struct {
	// AnalysesPageSize is the home view's rows per page.
	AnalysesPageSize int `toml:"analyses_page_size"`
	// UsersPageSize is the detail view's user-table rows per page.
	UsersPageSize int `toml:"users_page_size"`
	// RolesPageSize is the detail view's role rows per dot-addressed page.
	RolesPageSize int `toml:"roles_page_size"`
}

// UploadConfig tunes the simulated upload.
type UploadConfig struct {
	// Step is the progress increment applied per tick.
	Step int `toml:"step"`
	// TickIntervalMS is the interval between ticks, in milliseconds.
	TickIntervalMS int `toml:"tick_interval_ms"`
}

// ExportConfig controls the recommendation download artifact.
type ExportConfig struct {
	// Dir is the directory exports are written to.
	Dir string `toml:"dir"`
	// FileName is the artifact name; a timestamp is appended before the
	// extension.
	FileName string `toml:"file_name"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// ASCIIOnly disables non-ASCII glyphs (dots, arrows) for plain
	// terminals.
	ASCIIOnly bool `toml:"ascii_only"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with the pilot's default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Tables: TablesConfig{
			AnalysesPageSize: 4,
			UsersPageSize:    5,
			RolesPageSize:    3,
		},
		Upload: UploadConfig{
			Step:           10,
			TickIntervalMS: 200,
		},
		Export: ExportConfig{
			Dir:      ".",
			FileName: "recomendaciones_roles.txt",
		},
		UI: UIConfig{},
	}
}

// TickInterval returns the upload tick interval as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Upload.TickIntervalMS) * time.Millisecond
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the sapdash configuration directory (~/.sapdash).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".sapdash"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file when present, falls back to defaults, and
// applies environment overrides last.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, err
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads a config from an explicit path (for --config).
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies SAPDASH_* environment variables over the
// loaded values. Environment always wins over file contents.
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("SAPDASH_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}
	if name := os.Getenv("SAPDASH_EXPORT_FILE"); name != "" {
		c.Export.FileName = name
	}
	if ascii := os.Getenv("SAPDASH_ASCII"); ascii != "" {
		c.UI.ASCIIOnly = ascii == "1" || ascii == "true"
	}
	if ms := os.Getenv("SAPDASH_UPLOAD_TICK_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			c.Upload.TickIntervalMS = v
		}
	}
}

// SetDefaults fills zero values left by a sparse config file.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Tables.AnalysesPageSize == 0 {
		c.Tables.AnalysesPageSize = def.Tables.AnalysesPageSize
	}
	if c.Tables.UsersPageSize == 0 {
		c.Tables.UsersPageSize = def.Tables.UsersPageSize
	}
	if c.Tables.RolesPageSize == 0 {
		c.Tables.RolesPageSize = def.Tables.RolesPageSize
	}
	if c.Upload.Step == 0 {
		c.Upload.Step = def.Upload.Step
	}
	if c.Upload.TickIntervalMS == 0 {
		c.Upload.TickIntervalMS = def.Upload.TickIntervalMS
	}
	if c.Export.Dir == "" {
		c.Export.Dir = def.Export.Dir
	}
	if c.Export.FileName == "" {
		c.Export.FileName = def.Export.FileName
	}
}

// Validate rejects configurations the views cannot run with.
func (c *Config) Validate() error {
	if c.Tables.AnalysesPageSize < 1 || c.Tables.UsersPageSize < 1 || c.Tables.RolesPageSize < 1 {
		return fmt.Errorf("page sizes must be positive")
	}
	if c.Upload.Step < 1 || c.Upload.Step > 100 {
		return fmt.Errorf("upload step must be in [1, 100], got %d", c.Upload.Step)
	}
	if c.Upload.TickIntervalMS < 1 {
		return fmt.Errorf("upload tick interval must be positive")
	}
	return nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
)

// Global returns the process-wide configuration, loading it on first
// use. Load errors fall back to defaults; the TUI reports them on its
// own surface.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfig = cfg
	})
	return globalConfig
}
