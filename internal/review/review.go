// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package review tracks the reviewer's in-flight decisions for one
// analysis detail session: which users are checked, and the per-role
// feedback choices.
//
// Feedback is two radio groups per (user, role) pair. Each group is a
// single enum rather than two booleans, so "both options active" is not
// representable.
package review

// =============================================================================
// FEEDBACK CHOICES
// =============================================================================

// Outcome answers "is this recommendation correct?" for one role row.
type Outcome int

const (
	OutcomeUnset Outcome = iota
	OutcomeRejected
	OutcomeApproved
)

// String returns the display string for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "No"
	case OutcomeApproved:
		return "Sí"
	default:
		return "-"
	}
}

// Persist answers "keep this recommendation on save?" for one role row.
type Persist int

const (
	PersistUnset Persist = iota
	PersistDiscard
	PersistKeep
)

// String returns the display string for the persist choice.
func (p Persist) String() string {
	switch p {
	case PersistDiscard:
		return "No"
	case PersistKeep:
		return "Sí"
	default:
		return "-"
	}
}

// PairKind names which of the two radio groups a write targets.
type PairKind int

const (
	PairReview  PairKind = iota // the Outcome group ("Feed back")
	PairPersist                 // the Persist group ("Guardar")
)

// Feedback is the pair of mutually exclusive review/persist decisions
// attached to one role recommendation for one user.
type Feedback struct {
	Outcome Outcome
	Persist Persist
}

// pairKey identifies a (user, role) feedback pair.
type pairKey struct {
	UserID string
	RoleID string
}

// =============================================================================
// SELECTION STORE
// =============================================================================

// Store holds the selection set and feedback map for one detail-view
// session. Mutations are synchronous and immediately observable; the
// interaction model is single-threaded, so no locking is done here.
type Store struct {
	selected map[string]bool
	feedback map[pairKey]Feedback
}

// NewStore returns an empty store: nothing selected, all feedback unset.
func NewStore() *Store {
	return &Store{
		selected: make(map[string]bool),
		feedback: make(map[pairKey]Feedback),
	}
}

// Toggle flips membership of id in the selection set. Two toggles in
// succession restore the prior state.
func (s *Store) Toggle(id string) {
	if s.selected[id] {
		delete(s.selected, id)
		return
	}
	s.selected[id] = true
}

// IsSelected reports whether id is currently checked.
func (s *Store) IsSelected(id string) bool {
	return s.selected[id]
}

// SelectedCount returns the number of checked ids.
func (s *Store) SelectedCount() int {
	return len(s.selected)
}

// SelectedIDs returns the checked ids. No iteration order is guaranteed.
func (s *Store) SelectedIDs() []string {
	out := make([]string, 0, len(s.selected))
	for id := range s.selected {
		out = append(out, id)
	}
	return out
}

// SetOutcome writes the review radio group for a (user, role) pair.
// Setting a value implicitly deactivates the sibling option: the group
// holds exactly one active option after any write.
func (s *Store) SetOutcome(userID, roleID string, v Outcome) {
	k := pairKey{userID, roleID}
	fb := s.feedback[k]
	fb.Outcome = v
	s.feedback[k] = fb
}

// SetPersist writes the persist radio group for a (user, role) pair.
func (s *Store) SetPersist(userID, roleID string, v Persist) {
	k := pairKey{userID, roleID}
	fb := s.feedback[k]
	fb.Persist = v
	s.feedback[k] = fb
}

// SetFeedback writes the named radio group. value follows the group's
// own enum: Outcome values for PairReview, Persist values for
// PairPersist.
func (s *Store) SetFeedback(userID, roleID string, kind PairKind, value int) {
	switch kind {
	case PairReview:
		s.SetOutcome(userID, roleID, Outcome(value))
	case PairPersist:
		s.SetPersist(userID, roleID, Persist(value))
	}
}

// Feedback returns the current choices for a (user, role) pair. Pairs
// never written report both groups unset.
func (s *Store) Feedback(userID, roleID string) Feedback {
	return s.feedback[pairKey{userID, roleID}]
}

// =============================================================================
// SNAPSHOTS
// =============================================================================

// Entry is one recorded feedback pair in a snapshot.
type Entry struct {
	UserID   string
	RoleID   string
	Feedback Feedback
}

// Snapshot is a point-in-time copy of the store, taken on "save" and
// handed to the export collaborator. It shares no state with the live
// store.
type Snapshot struct {
	Selected []string
	Entries  []Entry
}

// Snapshot copies the current store state.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{Selected: s.SelectedIDs()}
	for k, fb := range s.feedback {
		snap.Entries = append(snap.Entries, Entry{
			UserID:   k.UserID,
			RoleID:   k.RoleID,
			Feedback: fb,
		})
	}
	return snap
}

// Restore replaces the store's state with a previously taken snapshot.
// Used by the confirmation modal's discard-and-revert choice.
func (s *Store) Restore(snap Snapshot) {
	s.selected = make(map[string]bool, len(snap.Selected))
	for _, id := range snap.Selected {
		s.selected[id] = true
	}
	s.feedback = make(map[pairKey]Feedback, len(snap.Entries))
	for _, e := range snap.Entries {
		s.feedback[pairKey{e.UserID, e.RoleID}] = e.Feedback
	}
}
