// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/andes-labs/sapdash/internal/config"
	"github.com/andes-labs/sapdash/internal/dataset"
	"github.com/andes-labs/sapdash/internal/export"
	"github.com/andes-labs/sapdash/internal/review"
)

// HandleExport writes the recommendation file for one analysis without
// entering the TUI. Feedback starts unset, so the artifact lists every
// role with both groups unanswered.
func HandleExport(args Args) error {
	cfg := config.Global()

	analysis, ok := dataset.AnalysisByID(args.AnalysisID)
	if !ok {
		return fmt.Errorf("análisis %q no encontrado", args.AnalysisID)
	}

	opts := export.DefaultOptions()
	opts.OutputDir = cfg.Export.Dir
	if args.ExportDir != "" {
		opts.OutputDir = args.ExportDir
	}
	opts.FileName = cfg.Export.FileName

	store := review.NewStore()
	path, err := export.ExportToFile(analysis, dataset.Roles(), store.Snapshot(), opts)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
