package store

// errors.go rewrites the most common PostgreSQL constraint failures
// into messages an operator can act on without reading SQLSTATE codes.
// Everything else passes through wrapped, so logs keep the original
// driver error.

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes this layer translates.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeCheckViolation      = "23514"
)

// friendlyError maps constraint violations to human-readable messages.
// Returns nil when err is nil.
func friendlyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("a record with this value already exists (%s): %w", pgErr.ConstraintName, err)
	case codeForeignKeyViolation:
		return fmt.Errorf("referenced record does not exist (%s): %w", pgErr.ConstraintName, err)
	case codeNotNullViolation:
		return fmt.Errorf("missing value for column %s: %w", pgErr.ColumnName, err)
	case codeCheckViolation:
		return fmt.Errorf("value rejected by constraint %s: %w", pgErr.ConstraintName, err)
	default:
		return err
	}
}
