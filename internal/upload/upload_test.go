// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drive applies n ticks for the given generation.
func drive(s *Simulator, gen, n int) {
	for i := 0; i < n; i++ {
		s.Tick(gen)
	}
}

// =============================================================================
// SUBMISSION
// =============================================================================

func TestSubmitFile_RejectsBadExtension(t *testing.T) {
	s := NewSimulator()

	_, err := s.SubmitFile("report.txt")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	assert.Equal(t, PhaseRejected, s.Phase())
	assert.Equal(t, 0, s.Progress())
	assert.NotEmpty(t, s.ErrorMessage())
}

func TestSubmitFile_AcceptsCSVAndXLSX(t *testing.T) {
	tests := []string{"report.csv", "report.xlsx", "REPORT.CSV", "datos.XlSx"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewSimulator()
			_, err := s.SubmitFile(name)
			require.NoError(t, err)
			assert.Equal(t, PhaseUploading, s.Phase())
			assert.Equal(t, 0, s.Progress())
			assert.Equal(t, name, s.FileName())
		})
	}
}

func TestSubmitFile_RecoversFromRejected(t *testing.T) {
	s := NewSimulator()

	_, err := s.SubmitFile("notas.pdf")
	require.Error(t, err)

	// Resubmitting a corrected file clears the rejection.
	_, err = s.SubmitFile("notas.csv")
	require.NoError(t, err)
	assert.Equal(t, PhaseUploading, s.Phase())
	assert.Empty(t, s.ErrorMessage())
}

func TestSubmitFile_NoExtension(t *testing.T) {
	s := NewSimulator()
	_, err := s.SubmitFile("reporte")
	assert.Error(t, err)
	assert.Equal(t, PhaseRejected, s.Phase())
}

// =============================================================================
// PROGRESS TICKS
// =============================================================================

func TestTick_AdvancesToComplete(t *testing.T) {
	s := NewSimulator()
	gen, err := s.SubmitFile("report.csv")
	require.NoError(t, err)

	// +10 per tick from 0: ten ticks reach 100 and flip to Complete.
	drive(s, gen, 9)
	assert.Equal(t, 90, s.Progress())
	assert.Equal(t, PhaseUploading, s.Phase())

	require.True(t, s.Tick(gen))
	assert.Equal(t, 100, s.Progress())
	assert.Equal(t, PhaseComplete, s.Phase())
}

func TestTick_IgnoredAfterComplete(t *testing.T) {
	s := NewSimulator()
	gen, _ := s.SubmitFile("report.csv")
	drive(s, gen, 10)
	require.Equal(t, PhaseComplete, s.Phase())

	assert.False(t, s.Tick(gen), "ticks after completion must be dropped")
	assert.Equal(t, 100, s.Progress())
}

func TestTick_StaleGenerationDropped(t *testing.T) {
	s := NewSimulator()
	oldGen, _ := s.SubmitFile("first.csv")
	drive(s, oldGen, 4)
	require.Equal(t, 40, s.Progress())

	// A superseding submission restarts progress; ticks still queued for
	// the first transfer must not advance the second one.
	newGen, _ := s.SubmitFile("second.xlsx")
	assert.Equal(t, 0, s.Progress())

	assert.False(t, s.Tick(oldGen))
	assert.Equal(t, 0, s.Progress())

	assert.True(t, s.Tick(newGen))
	assert.Equal(t, 10, s.Progress())
}

func TestCancel_InvalidatesPendingTicks(t *testing.T) {
	s := NewSimulator()
	gen, _ := s.SubmitFile("report.csv")
	drive(s, gen, 3)

	s.Cancel()
	assert.False(t, s.Tick(gen), "view teardown must orphan scheduled ticks")
	assert.Equal(t, 30, s.Progress())
}

func TestSetTiming_OverridesStep(t *testing.T) {
	s := NewSimulator()
	s.SetTiming(25, 50*time.Millisecond)
	gen, _ := s.SubmitFile("report.csv")

	drive(s, gen, 4)
	assert.Equal(t, 100, s.Progress())
	assert.Equal(t, PhaseComplete, s.Phase())
	assert.Equal(t, 50*time.Millisecond, s.TickInterval())

	// Non-positive values keep the current timing.
	s.SetTiming(0, 0)
	assert.Equal(t, 50*time.Millisecond, s.TickInterval())
}

// =============================================================================
// DOWNSTREAM GATE
// =============================================================================

func TestStartAnalysis_BeforeAnySubmission(t *testing.T) {
	s := NewSimulator()
	assert.False(t, s.CanStartAnalysis())

	err := s.StartAnalysis()
	var nr *NotReadyError
	require.ErrorAs(t, err, &nr)
	assert.Equal(t, ReasonNoFile, nr.Reason)
	assert.Equal(t, "Debe seleccionar un archivo antes de comenzar", err.Error())
}

func TestStartAnalysis_WhileUploading(t *testing.T) {
	s := NewSimulator()
	gen, _ := s.SubmitFile("report.csv")
	drive(s, gen, 5)

	err := s.StartAnalysis()
	var nr *NotReadyError
	require.ErrorAs(t, err, &nr)
	assert.Equal(t, ReasonUploadIncomplete, nr.Reason)

	// Refusal never mutates the machine.
	assert.Equal(t, 50, s.Progress())
	assert.Equal(t, PhaseUploading, s.Phase())
}

func TestStartAnalysis_AfterComplete(t *testing.T) {
	s := NewSimulator()
	gen, _ := s.SubmitFile("report.csv")
	drive(s, gen, 10)

	assert.True(t, s.CanStartAnalysis())
	assert.NoError(t, s.StartAnalysis())
}

func TestStartAnalysis_AfterRejection(t *testing.T) {
	s := NewSimulator()
	_, err := s.SubmitFile("report.txt")
	require.Error(t, err)

	startErr := s.StartAnalysis()
	var nr *NotReadyError
	require.ErrorAs(t, startErr, &nr)
	assert.Equal(t, ReasonNoFile, nr.Reason, "a rejected file is no file")
}

func TestNotReadyError_IsComparableViaErrorsAs(t *testing.T) {
	err := error(&NotReadyError{Reason: ReasonUploadIncomplete})
	var nr *NotReadyError
	assert.True(t, errors.As(err, &nr))
}
