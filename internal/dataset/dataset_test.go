// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package dataset

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andes-labs/sapdash/internal/query"
)

func idsOf(records []query.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID())
	}
	return out
}

func TestDatasets_ShapeAndOrder(t *testing.T) {
	assert.Len(t, Analyses(), 6)
	assert.Len(t, Users(), 6)
	assert.Len(t, Roles(), 5)

	// Source insertion order is the contract the query engine builds on.
	assert.Equal(t, "Resumen_07-2026", Analyses()[0].String(FieldName))
	assert.Equal(t, "KPPIRES", Users()[0].ID())
	assert.Equal(t, "ZDX_DMPSST0-008-01-001:0514", Roles()[0].String(FieldRole))
}

func TestDatasets_StableIdentifiers(t *testing.T) {
	seen := map[string]bool{}
	for _, recs := range [][]string{idsOf(Analyses()), idsOf(Users()), idsOf(Roles())} {
		for _, id := range recs {
			require.NotEmpty(t, id)
			require.False(t, seen[id], "duplicate id %q across dataset", id)
			seen[id] = true
		}
	}
}

func TestAnalyses_CarrySessionUUID(t *testing.T) {
	for _, a := range Analyses() {
		_, err := uuid.Parse(a.String(FieldUID))
		assert.NoError(t, err, "analysis %s has no parseable uid", a.ID())
	}
	// Repeated access returns the same loaded records, same uids.
	assert.Equal(t, Analyses()[0].String(FieldUID), Analyses()[0].String(FieldUID))
}

func TestAnalysisByID(t *testing.T) {
	a, ok := AnalysisByID("3")
	require.True(t, ok)
	assert.Equal(t, "Resumen_05-2025", a.String(FieldName))

	_, ok = AnalysisByID("99")
	assert.False(t, ok)
}

func TestRoles_SimilarCountsAreNumeric(t *testing.T) {
	for _, r := range Roles() {
		_, ok := r[FieldSimilar].(int)
		assert.True(t, ok, "similar count must stay numeric for numeric sorting")
	}
}
