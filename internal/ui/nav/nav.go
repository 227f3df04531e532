// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav defines the messages views emit to ask the root model to
// switch screens. Views never switch themselves; the root model owns
// navigation.
package nav

// LoginMsg is emitted when the login form is submitted.
type LoginMsg struct {
	User string
}

// LogoutMsg returns to the login view.
type LogoutMsg struct{}

// GoHomeMsg returns to the analysis list.
type GoHomeMsg struct{}

// OpenAnalysisMsg opens the review view for one analysis.
type OpenAnalysisMsg struct {
	ID string
}

// NewAnalysisMsg opens the upload form.
type NewAnalysisMsg struct{}
