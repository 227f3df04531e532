// Copyright (c) 2026 Andes Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dataset is the injected data source for the dashboard
// prototype: three hardcoded, ordered record sequences (analysis
// summaries, analyzed users, role recommendations) keyed by stable
// identifiers.
//
// The records mirror the pilot's sample data verbatim. A production
// build would replace this package with a real backend client; the
// rest of the system only requires read access plus a stable
// per-record identifier field.
package dataset

import (
	"sync"

	"github.com/google/uuid"

	"github.com/andes-labs/sapdash/internal/query"
)

// =============================================================================
// FIELD NAMES
// =============================================================================

// Analysis summary fields.
const (
	FieldName      = "name"
	FieldCreatedBy = "createdBy"
	FieldBranch    = "branch"
	FieldCreatedAt = "createdAt"
	FieldStatus    = "status"
	FieldUID       = "uid" // session-stable UUID, for export headers
)

// Analyzed-user fields.
const (
	FieldUser       = "user"
	FieldFunction   = "function"
	FieldDepartment = "department"
	FieldAssigned   = "assigned"
)

// Role recommendation fields.
const (
	FieldRole    = "role"
	FieldSimilar = "similar"
	// Seed values some sample roles arrived with. They are carried as
	// plain data; reviewer feedback always starts unset.
	FieldSeedOutcome = "seedOutcome"
	FieldSeedPersist = "seedPersist"
)

// Status values used by the sample data.
const (
	StatusInProgress = "En proceso"
	StatusSaved      = "Guardado"
	AssignedOK       = "OK"
	AssignedPending  = "Pendiente"
)

// SearchFields per view: which columns the free-text filter probes.
var (
	AnalysisSearchFields = []string{FieldName, FieldCreatedBy, FieldBranch}
	UserSearchFields     = []string{FieldUser, FieldFunction, FieldDepartment}
)

// =============================================================================
// SAMPLE DATA
// =============================================================================

var (
	loadOnce sync.Once
	analyses []query.Record
	users    []query.Record
	roles    []query.Record
)

func load() {
	analyses = []query.Record{
		{query.FieldID: "1", FieldName: "Resumen_07-2026", FieldCreatedBy: "rocio@cmpc.cl", FieldBranch: "504", FieldCreatedAt: "01-08-2026", FieldStatus: StatusInProgress},
		{query.FieldID: "2", FieldName: "Resumen_06-2026", FieldCreatedBy: "javier.acuna@cmpc.cl", FieldBranch: "514", FieldCreatedAt: "01-07-2026", FieldStatus: StatusSaved},
		{query.FieldID: "3", FieldName: "Resumen_05-2025", FieldCreatedBy: "enrique.escalona@cmpc.cl", FieldBranch: "504", FieldCreatedAt: "01-06-2026", FieldStatus: StatusSaved},
		{query.FieldID: "4", FieldName: "Resumen_04-2026", FieldCreatedBy: "rocio@cmpc.cl", FieldBranch: "514", FieldCreatedAt: "01-05-2026", FieldStatus: StatusSaved},
		{query.FieldID: "5", FieldName: "Resumen_05-2026", FieldCreatedBy: "javier.acuna@cmpc.cl", FieldBranch: "514", FieldCreatedAt: "01-04-2026", FieldStatus: StatusSaved},
		{query.FieldID: "6", FieldName: "Resumen_06-2026", FieldCreatedBy: "enrique.escalona@cmpc.cl", FieldBranch: "504", FieldCreatedAt: "01-03-2026", FieldStatus: StatusSaved},
	}
	// Each analysis gets a session-stable UUID alongside its display id.
	for _, a := range analyses {
		a[FieldUID] = uuid.NewString()
	}

	users = []query.Record{
		{query.FieldID: "KPPIRES", FieldUser: "KPPIRES", FieldBranch: "0504", FieldFunction: "ANALISTA FINANCEIRO", FieldDepartment: "CORP_FINANCE", FieldAssigned: AssignedOK},
		{query.FieldID: "ZVALASKI", FieldUser: "ZVALASKI", FieldBranch: "0504", FieldFunction: "DIRETOR GERAL", FieldDepartment: "DIRETORIA GERAL", FieldAssigned: AssignedOK},
		{query.FieldID: "MKSOUZA", FieldUser: "MKSOUZA", FieldBranch: "0504", FieldFunction: "PORTEIRO", FieldDepartment: "CN_PORTARIA", FieldAssigned: AssignedPending},
		{query.FieldID: "ASILVA", FieldUser: "ASILVA", FieldBranch: "0514", FieldFunction: "CONTADOR", FieldDepartment: "CONTABILIDAD", FieldAssigned: AssignedOK},
		{query.FieldID: "JPEREZ", FieldUser: "JPEREZ", FieldBranch: "0514", FieldFunction: "ANALISTA", FieldDepartment: "RECURSOS HUMANOS", FieldAssigned: AssignedPending},
		{query.FieldID: "MRODRIGUEZ", FieldUser: "MRODRIGUEZ", FieldBranch: "0504", FieldFunction: "GERENTE", FieldDepartment: "VENTAS", FieldAssigned: AssignedOK},
	}

	roles = []query.Record{
		{query.FieldID: "KPPIRES/ZDX_DMPSST0-008-01-001:0514", FieldUser: "KPPIRES", FieldRole: "ZDX_DMPSST0-008-01-001:0514", FieldSimilar: 7, FieldSeedOutcome: "si", FieldSeedPersist: "si"},
		{query.FieldID: "KPPIRES/ZD_ALCOPCO-001-01-001:0514", FieldUser: "KPPIRES", FieldRole: "ZD_ALCOPCO-001-01-001:0514", FieldSimilar: 5, FieldSeedOutcome: "no", FieldSeedPersist: "si"},
		{query.FieldID: "KPPIRES/ZD_ALFIFI0-001-01-001:0107", FieldUser: "KPPIRES", FieldRole: "ZD_ALFIFI0-001-01-001:0107", FieldSimilar: 3, FieldSeedOutcome: "no", FieldSeedPersist: "si"},
		{query.FieldID: "ZVALASKI/ZD_DIRECTOR-001-01-001:0504", FieldUser: "ZVALASKI", FieldRole: "ZD_DIRECTOR-001-01-001:0504", FieldSimilar: 8, FieldSeedOutcome: "si", FieldSeedPersist: "si"},
		{query.FieldID: "MKSOUZA/ZD_PORTARIA-001-01-001:0504", FieldUser: "MKSOUZA", FieldRole: "ZD_PORTARIA-001-01-001:0504", FieldSimilar: 4, FieldSeedOutcome: "no", FieldSeedPersist: "si"},
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Analyses returns the ordered analysis-summary records.
func Analyses() []query.Record {
	loadOnce.Do(load)
	return analyses
}

// Users returns the ordered analyzed-user records.
func Users() []query.Record {
	loadOnce.Do(load)
	return users
}

// Roles returns the ordered role-recommendation records.
func Roles() []query.Record {
	loadOnce.Do(load)
	return roles
}

// AnalysisByID looks up an analysis summary by its display id.
func AnalysisByID(id string) (query.Record, bool) {
	for _, a := range Analyses() {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}
