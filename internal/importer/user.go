package importer

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

var userRoles = []string{"admin", "manager", "user", "viewer"}

// emailRegex is the same lightweight well-formedness check the user
// form applies: one @, no whitespace, a dot in the domain.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// userFields is the ordered positional schema for user rows.
var userFields = []FieldSpec{
	{Name: "name", Type: FieldText, Required: true},
	{Name: "email", Type: FieldText, Required: true},
	{Name: "department", Type: FieldText},
	{Name: "job_title", Type: FieldText},
	{Name: "employee_id", Type: FieldText},
	{Name: "phone", Type: FieldText},
	{Name: "role", Type: FieldEnum, EnumValues: userRoles, Default: "user"},
	{Name: "is_active", Type: FieldBool},
}

var userFieldIdx = fieldIndex(userFields)

// UserCandidate holds one user row after mapping and defaulting.
// ID is generated at build time, never user-supplied.
type UserCandidate struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Department string
	JobTitle   string
	EmployeeID string
	Phone      string
	Role       string
	IsActive   bool
}

// User is a fully validated user record, ready for persistence.
type User struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Department string
	JobTitle   string
	EmployeeID string
	Phone      string
	Role       string
	IsActive   bool
}

// buildUser maps a raw row into a user candidate. IsActive is true
// only for the literal true token; anything else reads as false.
func buildUser(row RawRow) *UserCandidate {
	r := newRowReader(row, userFields, userFieldIdx)
	return &UserCandidate{
		ID:         uuid.New(),
		Name:       r.get("name"),
		Email:      r.get("email"),
		Department: r.get("department"),
		JobTitle:   r.get("job_title"),
		EmployeeID: r.get("employee_id"),
		Phone:      r.get("phone"),
		Role:       r.get("role"),
		IsActive:   isTrueLiteral(r.get("is_active")),
	}
}

func validateUser(c *UserCandidate) (*User, error) {
	if c.Name == "" {
		return nil, requiredErr("name")
	}
	if c.Email == "" {
		return nil, requiredErr("email")
	}
	if !emailRegex.MatchString(c.Email) {
		return nil, &ValidationError{Field: "email", Value: c.Email, Message: "not a valid email address"}
	}
	role, ok := canonicalEnum(c.Role, userRoles)
	if !ok {
		return nil, enumErr("role", c.Role, userRoles)
	}

	return &User{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Department: c.Department,
		JobTitle:   c.JobTitle,
		EmployeeID: c.EmployeeID,
		Phone:      c.Phone,
		Role:       role,
		IsActive:   c.IsActive,
	}, nil
}

func processUser(ctx context.Context, gw Gateway, row RawRow) error {
	rec, err := validateUser(buildUser(row))
	if err != nil {
		return err
	}
	if err := gw.InsertUser(ctx, rec); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

func checkUser(row RawRow) error {
	_, err := validateUser(buildUser(row))
	return err
}
