package importer

// mapper.go turns a raw text payload into positional rows.
//
// The row format is deliberately simple: newline-delimited rows,
// comma-delimited fields, every field trimmed. No quoting or escaping
// is attempted, so a field containing a literal comma splits
// incorrectly. That is a documented limitation of the format, not
// something this mapper tries to guess its way around.

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// splitRows splits a payload into data rows. Blank and whitespace-only
// lines are dropped before indexing, so they never occupy a row index.
// When hasHeaders is true the first remaining line is discarded; row
// index 1 is the first data line after the header.
func splitRows(payload string, hasHeaders bool) []RawRow {
	var rows []RawRow
	for _, line := range strings.Split(payload, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, splitFields(line))
	}
	if hasHeaders && len(rows) > 0 {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil
	}
	return rows
}

// splitFields splits one line into trimmed fields on the comma delimiter.
func splitFields(line string) RawRow {
	parts := strings.Split(line, ",")
	row := make(RawRow, len(parts))
	for i, p := range parts {
		row[i] = strings.TrimSpace(p)
	}
	return row
}

// rowReader gives builders named, defaulted access to positional slots.
// The kind's ordered field list is the single source of slot positions.
type rowReader struct {
	row    RawRow
	fields []FieldSpec
	idx    map[string]int
}

func newRowReader(row RawRow, fields []FieldSpec, idx map[string]int) rowReader {
	return rowReader{row: row, fields: fields, idx: idx}
}

// get returns the trimmed value for a named slot, substituting the
// slot's default when the value is empty or the slot is absent.
func (r rowReader) get(name string) string {
	pos, ok := r.idx[name]
	if !ok {
		return ""
	}
	v := ""
	if pos < len(r.row) {
		v = r.row[pos]
	}
	if v == "" {
		v = r.fields[pos].Default
	}
	return v
}

// fieldIndex maps slot names to their positions in the field list.
func fieldIndex(fields []FieldSpec) map[string]int {
	idx := make(map[string]int, len(fields))
	for i, f := range fields {
		idx[f.Name] = i
	}
	return idx
}

// sanitizeUTF8 replaces invalid byte sequences with U+FFFD so a
// malformed payload degrades into replacement characters instead of
// corrupting downstream processing.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
