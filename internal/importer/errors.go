package importer

// errors.go defines the error taxonomy for import runs.
//
// Request-level errors (ErrInvalidKind, ErrEmptyPayload) abort the run
// before any row is processed and propagate to the caller. Row-level
// errors (ValidationError, PersistenceError) are recovered inside the
// orchestrator and converted into RowOutcomes; they never escape Run.

import (
	"errors"
	"fmt"
)

// Request-level errors. No rows are processed when these are returned.
var (
	ErrInvalidKind  = errors.New("unrecognized import kind")
	ErrEmptyPayload = errors.New("payload contains no data rows")
)

// ValidationError represents a single field failing a validation rule.
// It marks a data-quality problem in the uploaded row.
type ValidationError struct {
	Field   string // Field/column name
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// PersistenceError wraps a Gateway failure for a structurally valid
// record. It is accounted identically to a validation failure but kept
// distinguishable for diagnostics: it indicates a storage-layer
// condition, not bad input data.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }

// failureStage names the pipeline stage a row error originated from,
// for structured logging.
func failureStage(err error) string {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return "persist"
	}
	return "validate"
}
