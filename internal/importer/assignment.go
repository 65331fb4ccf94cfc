package importer

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// assignmentFields is the ordered positional schema for assignment rows.
var assignmentFields = []FieldSpec{
	{Name: "asset_id", Type: FieldInt, Required: true},
	{Name: "user_id", Type: FieldText, Required: true},
	{Name: "purpose", Type: FieldText},
	{Name: "expected_return_at", Type: FieldDate},
	{Name: "notes", Type: FieldText},
}

var assignmentFieldIdx = fieldIndex(assignmentFields)

// AssignmentCandidate holds one assignment row after mapping and
// defaulting. AssetID 0 marks a missing or malformed value; UserID
// stays textual until the validator checks it is a well-formed id.
type AssignmentCandidate struct {
	AssetID          int
	UserID           string
	Purpose          string
	ExpectedReturnAt pgtype.Date
	Notes            string
}

// Assignment is a fully validated assignment record, ready for persistence.
type Assignment struct {
	AssetID          int
	UserID           uuid.UUID
	Purpose          string
	ExpectedReturnAt pgtype.Date
	Notes            string
}

func buildAssignment(row RawRow) *AssignmentCandidate {
	r := newRowReader(row, assignmentFields, assignmentFieldIdx)
	return &AssignmentCandidate{
		AssetID:          toInt(r.get("asset_id")),
		UserID:           r.get("user_id"),
		Purpose:          r.get("purpose"),
		ExpectedReturnAt: toDate(r.get("expected_return_at")),
		Notes:            r.get("notes"),
	}
}

// validateAssignment enforces that both referential fields are
// well-formed. Cross-row referential consistency is the gateway's
// concern, not checked here.
func validateAssignment(c *AssignmentCandidate) (*Assignment, error) {
	if c.AssetID <= 0 {
		return nil, &ValidationError{Field: "asset_id", Message: "must be a positive integer"}
	}
	if c.UserID == "" {
		return nil, requiredErr("user_id")
	}
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil, &ValidationError{Field: "user_id", Value: c.UserID, Message: "not a valid user id"}
	}

	return &Assignment{
		AssetID:          c.AssetID,
		UserID:           userID,
		Purpose:          c.Purpose,
		ExpectedReturnAt: c.ExpectedReturnAt,
		Notes:            c.Notes,
	}, nil
}

func processAssignment(ctx context.Context, gw Gateway, row RawRow) error {
	rec, err := validateAssignment(buildAssignment(row))
	if err != nil {
		return err
	}
	if err := gw.InsertAssignment(ctx, rec); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

func checkAssignment(row RawRow) error {
	_, err := validateAssignment(buildAssignment(row))
	return err
}
