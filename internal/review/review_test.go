// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// SELECTION SET
// =============================================================================

func TestToggle_FlipsMembership(t *testing.T) {
	s := NewStore()

	assert.False(t, s.IsSelected("KPPIRES"))
	s.Toggle("KPPIRES")
	assert.True(t, s.IsSelected("KPPIRES"))
	assert.Equal(t, 1, s.SelectedCount())
}

func TestToggle_IsInvolution(t *testing.T) {
	// Two toggles restore the prior state, from either starting point.
	s := NewStore()

	s.Toggle("ASILVA")
	s.Toggle("ASILVA")
	assert.False(t, s.IsSelected("ASILVA"))
	assert.Equal(t, 0, s.SelectedCount())

	s.Toggle("JPEREZ")
	s.Toggle("JPEREZ")
	s.Toggle("JPEREZ")
	assert.True(t, s.IsSelected("JPEREZ"))
}

func TestToggle_IndependentIDs(t *testing.T) {
	s := NewStore()
	s.Toggle("A")
	s.Toggle("B")
	s.Toggle("A")

	assert.False(t, s.IsSelected("A"))
	assert.True(t, s.IsSelected("B"))
	assert.ElementsMatch(t, []string{"B"}, s.SelectedIDs())
}

// =============================================================================
// FEEDBACK PAIRS
// =============================================================================

func TestSetFeedback_RadioSemantics(t *testing.T) {
	s := NewStore()
	role := "ZDX_DMPSST0-008-01-001:0514"

	s.SetOutcome("KPPIRES", role, OutcomeApproved)
	assert.Equal(t, OutcomeApproved, s.Feedback("KPPIRES", role).Outcome)

	// Rewriting the same group with a different value leaves exactly one
	// option active, never both and never neither.
	s.SetOutcome("KPPIRES", role, OutcomeRejected)
	assert.Equal(t, OutcomeRejected, s.Feedback("KPPIRES", role).Outcome)
}

func TestSetFeedback_PairsAreIndependent(t *testing.T) {
	s := NewStore()
	role := "ZD_ALCOPCO-001-01-001:0514"

	s.SetOutcome("KPPIRES", role, OutcomeRejected)
	s.SetPersist("KPPIRES", role, PersistKeep)

	fb := s.Feedback("KPPIRES", role)
	assert.Equal(t, OutcomeRejected, fb.Outcome)
	assert.Equal(t, PersistKeep, fb.Persist)

	// Writing one group never disturbs the other.
	s.SetOutcome("KPPIRES", role, OutcomeApproved)
	assert.Equal(t, PersistKeep, s.Feedback("KPPIRES", role).Persist)
}

func TestSetFeedback_ByPairKind(t *testing.T) {
	s := NewStore()

	s.SetFeedback("ZVALASKI", "ZD_DIRECTOR-001-01-001:0504", PairReview, int(OutcomeApproved))
	s.SetFeedback("ZVALASKI", "ZD_DIRECTOR-001-01-001:0504", PairPersist, int(PersistDiscard))

	fb := s.Feedback("ZVALASKI", "ZD_DIRECTOR-001-01-001:0504")
	assert.Equal(t, OutcomeApproved, fb.Outcome)
	assert.Equal(t, PersistDiscard, fb.Persist)
}

func TestFeedback_StartsUnset(t *testing.T) {
	s := NewStore()
	fb := s.Feedback("MKSOUZA", "ZD_PORTARIA-001-01-001:0504")
	assert.Equal(t, OutcomeUnset, fb.Outcome)
	assert.Equal(t, PersistUnset, fb.Persist)
}

func TestFeedback_DistinctPairsDoNotInterfere(t *testing.T) {
	s := NewStore()

	s.SetOutcome("KPPIRES", "role-a", OutcomeApproved)
	s.SetOutcome("KPPIRES", "role-b", OutcomeRejected)
	s.SetOutcome("ZVALASKI", "role-a", OutcomeRejected)

	assert.Equal(t, OutcomeApproved, s.Feedback("KPPIRES", "role-a").Outcome)
	assert.Equal(t, OutcomeRejected, s.Feedback("KPPIRES", "role-b").Outcome)
	assert.Equal(t, OutcomeRejected, s.Feedback("ZVALASKI", "role-a").Outcome)
}

// =============================================================================
// SNAPSHOT / RESTORE
// =============================================================================

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s := NewStore()
	s.Toggle("KPPIRES")
	s.SetOutcome("KPPIRES", "role-a", OutcomeApproved)

	snap := s.Snapshot()

	// Mutations after the snapshot must not leak into it.
	s.Toggle("KPPIRES")
	s.SetOutcome("KPPIRES", "role-a", OutcomeRejected)

	assert.Equal(t, []string{"KPPIRES"}, snap.Selected)
	assert.Len(t, snap.Entries, 1)
	assert.Equal(t, OutcomeApproved, snap.Entries[0].Feedback.Outcome)
}

func TestRestore_RevertsToSnapshot(t *testing.T) {
	s := NewStore()
	s.Toggle("ASILVA")
	s.SetPersist("ASILVA", "role-x", PersistKeep)
	snap := s.Snapshot()

	s.Toggle("ASILVA")
	s.Toggle("JPEREZ")
	s.SetPersist("ASILVA", "role-x", PersistDiscard)

	s.Restore(snap)

	assert.True(t, s.IsSelected("ASILVA"))
	assert.False(t, s.IsSelected("JPEREZ"))
	assert.Equal(t, PersistKeep, s.Feedback("ASILVA", "role-x").Persist)
}
