// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders a feedback snapshot to a downloadable
// plain-text artifact.
//
// This is the dashboard's "Descargar recomendación" action: the detail
// view hands over the analysis record, the role recommendations, and
// the reviewer's current snapshot; the artifact lands in the configured
// export directory with a timestamped name.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/andes-labs/sapdash/internal/dataset"
	"github.com/andes-labs/sapdash/internal/query"
	"github.com/andes-labs/sapdash/internal/review"
	"github.com/andes-labs/sapdash/internal/util"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configure where and under what name the artifact is written.
type Options struct {
	// OutputDir is the directory to write to. Default: ".".
	OutputDir string
	// FileName is the base artifact name. A timestamp is inserted before
	// the extension. Default: "recomendaciones_roles.txt".
	FileName string
	// Now supplies the timestamp; tests pin it. Nil means time.Now.
	Now func() time.Time
}

// DefaultOptions returns the export defaults.
func DefaultOptions() *Options {
	return &Options{
		OutputDir: ".",
		FileName:  "recomendaciones_roles.txt",
	}
}

// =============================================================================
// RENDERING
// =============================================================================

// Render produces the artifact body: an analysis header followed by
// one line per role recommendation with the reviewer's recorded
// choices. Roles keep their dataset order.
func Render(analysis query.Record, roles []query.Record, snap review.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Recomendaciones de roles: %s\n", analysis.String(dataset.FieldName))
	fmt.Fprintf(&b, "Análisis: %s\n", analysis.String(dataset.FieldUID))
	fmt.Fprintf(&b, "Creado por: %s  Sucursal: %s  Fecha: %s\n",
		analysis.String(dataset.FieldCreatedBy),
		analysis.String(dataset.FieldBranch),
		analysis.String(dataset.FieldCreatedAt))
	b.WriteString("\n")

	feedback := make(map[string]review.Feedback, len(snap.Entries))
	for _, e := range snap.Entries {
		feedback[e.UserID+"/"+e.RoleID] = e.Feedback
	}

	for _, r := range roles {
		user := r.String(dataset.FieldUser)
		role := r.String(dataset.FieldRole)
		fb := feedback[user+"/"+role]
		fmt.Fprintf(&b, "%s  %s  similares=%s  feedback=%s  guardar=%s\n",
			user, role, r.String(dataset.FieldSimilar),
			fb.Outcome, fb.Persist)
	}

	if len(snap.Selected) > 0 {
		b.WriteString("\nUsuarios seleccionados: ")
		b.WriteString(strings.Join(snap.Selected, ", "))
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// FILE OUTPUT
// =============================================================================

// ExportToFile renders the snapshot and writes it atomically under
// opts.OutputDir. Returns the full path of the written file.
func ExportToFile(analysis query.Record, roles []query.Record, snap review.Snapshot, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	body := Render(analysis, roles, snap)

	name := opts.FileName
	if name == "" {
		name = DefaultOptions().FileName
	}
	ext := filepath.Ext(name)
	base := sanitizeFilename(strings.TrimSuffix(name, ext))
	timestamp := now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s%s", base, timestamp, ext)

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, filename)

	if err := util.AtomicWriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// sanitizeFilename replaces path separators and other filesystem-hostile
// characters so a configured name can never escape the export directory.
func sanitizeFilename(s string) string {
	replacements := map[rune]rune{
		'/': '-', '\\': '-', ':': '-', '*': '-',
		'?': '-', '"': '-', '<': '-', '>': '-', '|': '-',
	}
	out := strings.Map(func(r rune) rune {
		if repl, ok := replacements[r]; ok {
			return repl
		}
		return r
	}, strings.TrimSpace(s))
	if out == "" {
		return "recomendaciones"
	}
	return out
}
