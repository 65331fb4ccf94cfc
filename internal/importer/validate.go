package importer

// validate.go holds the validation helpers shared by the per-kind rule
// sets. Each kind applies the same constraints its interactive create
// form would: required fields, enumerated vocabularies, and coercion
// of numeric text the builder deliberately left raw.

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

func requiredErr(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "required field is empty"}
}

func enumErr(field, value string, allowed []string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("value must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// coerceNumeric converts numeric field text. Empty text is a NULL, not
// an error; non-empty text that fails to parse rejects the record.
func coerceNumeric(field, raw string) (pgtype.Numeric, error) {
	if raw == "" {
		return pgtype.Numeric{Valid: false}, nil
	}
	n := toNumeric(raw)
	if !n.Valid {
		return n, &ValidationError{Field: field, Value: raw, Message: "invalid number format"}
	}
	return n, nil
}
