package importer

import (
	"reflect"
	"testing"
)

// ============================================================================
// splitRows Tests
// ============================================================================

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		hasHeaders bool
		want       []RawRow
	}{
		{
			name:    "single row",
			payload: "a,b,c",
			want:    []RawRow{{"a", "b", "c"}},
		},
		{
			name:    "multiple rows",
			payload: "a,b\nc,d",
			want:    []RawRow{{"a", "b"}, {"c", "d"}},
		},
		{
			name:    "fields trimmed",
			payload: "  a , b ,c  ",
			want:    []RawRow{{"a", "b", "c"}},
		},
		{
			name:    "crlf line endings",
			payload: "a,b\r\nc,d\r\n",
			want:    []RawRow{{"a", "b"}, {"c", "d"}},
		},
		{
			name:    "blank lines dropped before indexing",
			payload: "a,b\n\n   \nc,d\n",
			want:    []RawRow{{"a", "b"}, {"c", "d"}},
		},
		{
			name:       "header discarded",
			payload:    "col1,col2\na,b\nc,d",
			hasHeaders: true,
			want:       []RawRow{{"a", "b"}, {"c", "d"}},
		},
		{
			name:       "blank lines before header do not shield data rows",
			payload:    "\n\ncol1,col2\na,b",
			hasHeaders: true,
			want:       []RawRow{{"a", "b"}},
		},
		{
			name:       "header only",
			payload:    "col1,col2",
			hasHeaders: true,
			want:       nil,
		},
		{
			name:    "only blank lines",
			payload: "\n  \n\t\n",
			want:    nil,
		},
		{
			name:    "empty payload",
			payload: "",
			want:    nil,
		},
		{
			name:    "empty fields preserved",
			payload: "a,,c",
			want:    []RawRow{{"a", "", "c"}},
		},
		{
			name:    "no quoting: embedded comma splits",
			payload: `"hello, world",b`,
			want:    []RawRow{{`"hello`, `world"`, "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitRows(tt.payload, tt.hasHeaders)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitRows(%q, %v) = %v, want %v", tt.payload, tt.hasHeaders, got, tt.want)
			}
		})
	}
}

// ============================================================================
// rowReader Tests
// ============================================================================

func TestRowReaderDefaults(t *testing.T) {
	fields := []FieldSpec{
		{Name: "first", Type: FieldText},
		{Name: "second", Type: FieldEnum, Default: "fallback"},
	}
	idx := fieldIndex(fields)

	tests := []struct {
		name string
		row  RawRow
		slot string
		want string
	}{
		{name: "value present", row: RawRow{"x", "y"}, slot: "second", want: "y"},
		{name: "empty value defaulted", row: RawRow{"x", ""}, slot: "second", want: "fallback"},
		{name: "short row defaulted", row: RawRow{"x"}, slot: "second", want: "fallback"},
		{name: "no default stays empty", row: RawRow{""}, slot: "first", want: ""},
		{name: "unknown slot", row: RawRow{"x"}, slot: "third", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRowReader(tt.row, fields, idx)
			if got := r.get(tt.slot); got != tt.want {
				t.Errorf("get(%q) = %q, want %q", tt.slot, got, tt.want)
			}
		})
	}
}

// ============================================================================
// sanitizeUTF8 Tests
// ============================================================================

func TestSanitizeUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid passes through", input: "hello,world", want: "hello,world"},
		{name: "invalid byte replaced", input: "caf\xe9", want: "caf�"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(sanitizeUTF8([]byte(tt.input)))
			if got != tt.want {
				t.Errorf("sanitizeUTF8(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
