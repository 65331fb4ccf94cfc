// Package importer provides the business logic for bulk record imports.
// This package has no HTTP dependencies and can be driven by any frontend.
package importer

import (
	"context"
)

// Kind identifies one of the supported import targets.
type Kind string

const (
	KindAssets      Kind = "assets"
	KindUsers       Kind = "users"
	KindAssignments Kind = "assignments"
)

// Request describes one bulk import run. Immutable once accepted.
type Request struct {
	Kind       Kind   `json:"kind"`
	HasHeaders bool   `json:"hasHeaders"`
	SkipErrors bool   `json:"skipErrors"`
	Notes      string `json:"notes,omitempty"`
	Payload    string `json:"payload"`
}

// RawRow is an ordered sequence of trimmed text fields from one payload line.
type RawRow []string

// FieldType represents the expected data type for an import field.
type FieldType int

const (
	FieldText FieldType = iota
	FieldEnum
	FieldDate
	FieldNumeric
	FieldBool
	FieldInt
)

// FieldSpec defines one positional slot in a kind's row schema.
// The slot's position is its index in the kind's field list.
type FieldSpec struct {
	Name       string    // Column name, used in templates and error messages
	Type       FieldType // Expected data type
	Required   bool      // Value must be present after defaulting
	EnumValues []string  // Valid values for FieldEnum type
	Default    string    // Substituted when the slot is empty or absent
}

// RowStatus is the terminal state of one processed row.
type RowStatus string

const (
	RowImported RowStatus = "imported"
	RowFailed   RowStatus = "failed"
)

// RowOutcome records the result of processing a single data row.
// Row indexes are 1-based and do not count the header line.
type RowOutcome struct {
	Index   int
	Status  RowStatus
	Message string // Non-empty if Status is RowFailed
}

// Report is the aggregate result of an import run.
//
// ImportedRows + FailedRows equals TotalRows when the run completed
// normally; when the run aborted on the first failure the remaining
// rows are simply unprocessed and the sum is smaller than TotalRows.
type Report struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	TotalRows    int      `json:"totalRows"`
	ImportedRows int      `json:"importedRows"`
	FailedRows   int      `json:"failedRows"`
	Errors       []string `json:"errors"`
}

// Gateway is the persistence surface the import pipeline writes through.
// One insert per kind; each call is awaited before the next row begins.
// Satisfied by *store.Store.
type Gateway interface {
	InsertAsset(ctx context.Context, a *Asset) error
	InsertUser(ctx context.Context, u *User) error
	InsertAssignment(ctx context.Context, a *Assignment) error
}
