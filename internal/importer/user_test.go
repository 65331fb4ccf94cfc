package importer

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func userRow(overrides map[string]string) RawRow {
	row := make(RawRow, len(userFields))
	for i, f := range userFields {
		row[i] = overrides[f.Name]
	}
	return row
}

// ============================================================================
// buildUser Tests
// ============================================================================

func TestBuildUser(t *testing.T) {
	c := buildUser(userRow(map[string]string{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	}))

	if c.Role != "user" {
		t.Errorf("Role = %q, want default %q", c.Role, "user")
	}
	if c.IsActive {
		t.Error("IsActive = true for empty field, want false")
	}
	if c.ID == uuid.Nil {
		t.Error("ID not generated at build time")
	}
}

func TestBuildUserGeneratesUniqueIDs(t *testing.T) {
	row := userRow(map[string]string{"name": "Jane", "email": "jane@example.com"})
	a := buildUser(row)
	b := buildUser(row)
	if a.ID == b.ID {
		t.Error("two builds produced the same synthetic ID")
	}
}

func TestBuildUserIsActiveLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"false", false},
		{"yes", false},
		{"active", false},
		{"", false},
	}

	for _, tt := range tests {
		c := buildUser(userRow(map[string]string{"is_active": tt.input}))
		if c.IsActive != tt.want {
			t.Errorf("is_active %q: IsActive = %v, want %v", tt.input, c.IsActive, tt.want)
		}
	}
}

// ============================================================================
// validateUser Tests
// ============================================================================

func TestValidateUserRoleCanonicalized(t *testing.T) {
	rec, err := validateUser(buildUser(userRow(map[string]string{
		"name": "Jane Doe", "email": "jane@example.com", "role": "ADMIN",
	})))
	if err != nil {
		t.Fatalf("validateUser() error = %v, want nil", err)
	}
	if rec.Role != "admin" {
		t.Errorf("Role = %q, want vocabulary casing %q", rec.Role, "admin")
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		wantErr   string
	}{
		{
			name:      "minimal valid row",
			overrides: map[string]string{"name": "Jane Doe", "email": "jane@example.com"},
		},
		{
			name: "full valid row",
			overrides: map[string]string{
				"name": "Jane Doe", "email": "jane@example.com",
				"department": "IT", "job_title": "SRE", "employee_id": "E-42",
				"phone": "+1 555 0101", "role": "admin", "is_active": "true",
			},
		},
		{
			name:      "missing name",
			overrides: map[string]string{"email": "jane@example.com"},
			wantErr:   "name",
		},
		{
			name:      "missing email",
			overrides: map[string]string{"name": "Jane Doe"},
			wantErr:   "email",
		},
		{
			name:      "malformed email",
			overrides: map[string]string{"name": "Jane Doe", "email": "not-an-email"},
			wantErr:   "email",
		},
		{
			name:      "email without domain dot",
			overrides: map[string]string{"name": "Jane Doe", "email": "jane@host"},
			wantErr:   "email",
		},
		{
			name:      "unknown role",
			overrides: map[string]string{"name": "Jane Doe", "email": "jane@example.com", "role": "superuser"},
			wantErr:   "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := validateUser(buildUser(userRow(tt.overrides)))

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validateUser() error = %v, want nil", err)
				}
				if rec.ID == uuid.Nil {
					t.Error("validated user lost its synthetic ID")
				}
				return
			}

			if err == nil {
				t.Fatalf("validateUser() = nil error, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}
