// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package upload implements the simulated file-upload state machine for
// the new-analysis flow.
//
// There is no real file I/O: a submission validates the extension, then
// a periodic timer advances progress in fixed steps until completion.
// Each submission bumps a generation counter and every tick carries the
// generation it was scheduled for, so a superseding submission (or view
// teardown) invalidates stale pending ticks deterministically instead
// of relying on timer-cancellation ordering.
package upload

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// =============================================================================
// PHASES
// =============================================================================

// Phase is the current stage of the upload state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseUploading
	PhaseComplete
	PhaseRejected
)

// String returns the display string for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseValidating:
		return "Validating"
	case PhaseUploading:
		return "Uploading"
	case PhaseComplete:
		return "Complete"
	case PhaseRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Timing and step defaults for the simulated transfer: +10 progress
// units every 200ms, so a valid file completes after ten ticks from 0.
const (
	DefaultStep         = 10
	DefaultTickInterval = 200 * time.Millisecond
)

// =============================================================================
// ERRORS
// =============================================================================

// ValidationError reports a rejected file selection. It is recovered
// locally: the machine moves to Rejected and accepts a corrected
// resubmission.
type ValidationError struct {
	FileName string
}

func (e *ValidationError) Error() string {
	return "Error: Solo se permiten archivos .csv o .xlsx"
}

// NotReadyReason says why a downstream action was refused.
type NotReadyReason int

const (
	ReasonNoFile NotReadyReason = iota
	ReasonUploadIncomplete
)

// NotReadyError blocks "begin analysis" until the upload completes. No
// state changes when it is returned.
type NotReadyError struct {
	Reason NotReadyReason
}

func (e *NotReadyError) Error() string {
	if e.Reason == ReasonNoFile {
		return "Debe seleccionar un archivo antes de comenzar"
	}
	return "Por favor espere a que se complete la carga del archivo"
}

// =============================================================================
// SIMULATOR
// =============================================================================

// Simulator is the upload state machine. One instance lives per
// new-analysis view session and is discarded with it.
type Simulator struct {
	fileName   string
	progress   int // [0, 100]
	phase      Phase
	errMsg     string
	generation int

	step     int
	interval time.Duration
}

// NewSimulator returns an idle simulator with the default step and tick
// interval.
func NewSimulator() *Simulator {
	return &Simulator{
		phase:    PhaseIdle,
		step:     DefaultStep,
		interval: DefaultTickInterval,
	}
}

// SetTiming overrides the progress step and tick interval (from config).
// Non-positive values keep the defaults.
func (s *Simulator) SetTiming(step int, interval time.Duration) {
	if step > 0 {
		s.step = step
	}
	if interval > 0 {
		s.interval = interval
	}
}

// Phase returns the current phase.
func (s *Simulator) Phase() Phase { return s.phase }

// Progress returns the progress value in [0, 100].
func (s *Simulator) Progress() int { return s.progress }

// FileName returns the most recently submitted file name, or "".
func (s *Simulator) FileName() string { return s.fileName }

// ErrorMessage returns the user-facing message for a rejected
// submission, or "".
func (s *Simulator) ErrorMessage() string { return s.errMsg }

// Generation returns the current submission generation. Ticks scheduled
// for an older generation are ignored.
func (s *Simulator) Generation() int { return s.generation }

// TickInterval returns the configured interval between progress ticks.
func (s *Simulator) TickInterval() time.Duration { return s.interval }

// SubmitFile validates name's extension and starts a new simulated
// transfer. A submission from any phase supersedes whatever was in
// flight: the generation advances, so ticks from the previous transfer
// no longer apply.
//
// On a bad extension the machine moves to Rejected with progress 0 and
// returns a *ValidationError; resubmitting a corrected file recovers.
func (s *Simulator) SubmitFile(name string) (int, error) {
	s.generation++
	s.phase = PhaseValidating

	if !allowedExtension(name) {
		s.phase = PhaseRejected
		s.fileName = ""
		s.progress = 0
		s.errMsg = (&ValidationError{FileName: name}).Error()
		return s.generation, &ValidationError{FileName: name}
	}

	s.phase = PhaseUploading
	s.fileName = name
	s.progress = 0
	s.errMsg = ""
	return s.generation, nil
}

// Tick applies one timer tick scheduled for the given generation.
// Stale ticks (superseded generation, or any phase other than
// Uploading) are dropped. Returns true when the tick was applied.
func (s *Simulator) Tick(generation int) bool {
	if generation != s.generation || s.phase != PhaseUploading {
		return false
	}
	s.progress += s.step
	if s.progress >= 100 {
		s.progress = 100
		s.phase = PhaseComplete
	}
	return true
}

// Cancel invalidates any pending ticks, for view teardown. The phase is
// left as-is; the owning view is being discarded with the simulator.
func (s *Simulator) Cancel() {
	s.generation++
}

// CanStartAnalysis reports whether the downstream "begin analysis"
// action is allowed. True only in Complete.
func (s *Simulator) CanStartAnalysis() bool {
	return s.phase == PhaseComplete
}

// StartAnalysis gates the downstream action. The returned
// *NotReadyError says whether no file was chosen or the upload is still
// running; the machine's state never changes on refusal.
func (s *Simulator) StartAnalysis() error {
	if s.phase == PhaseComplete {
		return nil
	}
	if s.fileName == "" {
		return &NotReadyError{Reason: ReasonNoFile}
	}
	return &NotReadyError{Reason: ReasonUploadIncomplete}
}

// allowedExtension accepts .csv and .xlsx, case-insensitively.
func allowedExtension(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}

// Describe returns a one-line status for logging and the status bar.
func (s *Simulator) Describe() string {
	switch s.phase {
	case PhaseUploading:
		return fmt.Sprintf("%s %d%%", s.fileName, s.progress)
	case PhaseComplete:
		return fmt.Sprintf("%s 100%%", s.fileName)
	case PhaseRejected:
		return s.errMsg
	default:
		return s.phase.String()
	}
}
