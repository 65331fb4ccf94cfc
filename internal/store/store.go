// Package store implements the persistence gateway over PostgreSQL.
// It exposes exactly one insert per record kind; row-level isolation
// is the orchestrator's concern, so every insert is an independent
// statement against the pool (or an enclosing transaction).
package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mklatt/assetbase/internal/importer"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Store writes validated records to PostgreSQL.
// It satisfies importer.Gateway.
type Store struct {
	db DBTX
}

// New creates a Store backed by db.
func New(db DBTX) *Store {
	return &Store{db: db}
}

const insertAssetSQL = `
INSERT INTO assets (
	tag, name, category, subcategory, serial, model, manufacturer,
	purchase_date, purchase_price, current_value, status, condition,
	building, floor, room, desk, description, notes
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
)`

// InsertAsset persists one validated asset.
func (s *Store) InsertAsset(ctx context.Context, a *importer.Asset) error {
	_, err := s.db.Exec(ctx, insertAssetSQL,
		a.Tag,
		a.Name,
		a.Category,
		pgText(a.Subcategory),
		pgText(a.Serial),
		pgText(a.Model),
		pgText(a.Manufacturer),
		a.PurchaseDate,
		a.PurchasePrice,
		a.CurrentValue,
		a.Status,
		a.Condition,
		pgText(a.Building),
		pgText(a.Floor),
		pgText(a.Room),
		pgText(a.Desk),
		pgText(a.Description),
		pgText(a.Notes),
	)
	return friendlyError(err)
}

const insertUserSQL = `
INSERT INTO users (
	id, name, email, department, job_title, employee_id, phone, role, is_active
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9
)`

// InsertUser persists one validated user.
func (s *Store) InsertUser(ctx context.Context, u *importer.User) error {
	_, err := s.db.Exec(ctx, insertUserSQL,
		pgtype.UUID{Bytes: u.ID, Valid: true},
		u.Name,
		u.Email,
		pgText(u.Department),
		pgText(u.JobTitle),
		pgText(u.EmployeeID),
		pgText(u.Phone),
		u.Role,
		u.IsActive,
	)
	return friendlyError(err)
}

const insertAssignmentSQL = `
INSERT INTO assignments (
	asset_id, user_id, purpose, expected_return_at, notes
) VALUES (
	$1, $2, $3, $4, $5
)`

// InsertAssignment persists one validated assignment.
func (s *Store) InsertAssignment(ctx context.Context, a *importer.Assignment) error {
	_, err := s.db.Exec(ctx, insertAssignmentSQL,
		int32(a.AssetID),
		pgtype.UUID{Bytes: a.UserID, Valid: true},
		pgText(a.Purpose),
		a.ExpectedReturnAt,
		pgText(a.Notes),
	)
	return friendlyError(err)
}

// pgText converts an optional string to pgtype.Text, NULL when empty.
func pgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}
