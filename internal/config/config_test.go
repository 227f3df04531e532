// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 4, cfg.Tables.AnalysesPageSize)
	assert.Equal(t, 5, cfg.Tables.UsersPageSize)
	assert.Equal(t, 3, cfg.Tables.RolesPageSize)
	assert.Equal(t, 10, cfg.Upload.Step)
	assert.Equal(t, 200*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, "recomendaciones_roles.txt", cfg.Export.FileName)
}

func TestLoadFromPath_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[tables]
analyses_page_size = 8

[export]
dir = "/tmp/exports"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Tables.AnalysesPageSize)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
	// Unset sections keep their defaults.
	assert.Equal(t, 5, cfg.Tables.UsersPageSize)
	assert.Equal(t, 200, cfg.Upload.TickIntervalMS)
}

func TestLoadFromPath_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("tables = nope"), 0o644))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero page size", func(c *Config) { c.Tables.UsersPageSize = -1 }},
		{"step too large", func(c *Config) { c.Upload.Step = 150 }},
		{"zero interval", func(c *Config) { c.Upload.TickIntervalMS = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SAPDASH_EXPORT_DIR", "/srv/out")
	t.Setenv("SAPDASH_ASCII", "1")
	t.Setenv("SAPDASH_UPLOAD_TICK_MS", "50")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "/srv/out", cfg.Export.Dir)
	assert.True(t, cfg.UI.ASCIIOnly)
	assert.Equal(t, 50, cfg.Upload.TickIntervalMS)
}

func TestApplyEnvOverrides_IgnoresBadTick(t *testing.T) {
	t.Setenv("SAPDASH_UPLOAD_TICK_MS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 200, cfg.Upload.TickIntervalMS)
}

func TestSetDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()
	assert.NoError(t, cfg.Validate())
}
