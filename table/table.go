package table

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	// ErrRaggedRow is returned when a data row has more values than fields.
	ErrRaggedRow = errors.New("row has more values than fields")
	// ErrUnknownField is returned when ImportFields names a missing field.
	ErrUnknownField = errors.New("unknown field")
)

// Metadata keys set by importers.
const (
	MetaImportedFrom = "imported_from"
	MetaFilename     = "filename"
)

// Metadata records where a table came from. It is descriptive only and is
// never used to rebuild the table.
type Metadata map[string]string

// Table is a rectangular set of string values with named columns.
type Table struct {
	Fields   []string
	Rows     [][]string
	Meta     Metadata
	Encoding string
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of fields
func (t *Table) ColCount() int {
	return len(t.Fields)
}

// FieldIndex returns the position of the named field, or -1.
func (t *Table) FieldIndex(name string) int {
	for i, f := range t.Fields {
		if f == name {
			return i
		}
	}
	return -1
}

// Get returns the value at the given row and column (0-indexed)
func (t *Table) Get(row, col int) (string, error) {
	if row < 0 || row >= len(t.Rows) {
		return "", fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return "", fmt.Errorf("col index %d out of bounds", col)
	}
	return t.Rows[row][col], nil
}

// Value returns the value of the named field in the given row.
func (t *Table) Value(row int, field string) (string, error) {
	col := t.FieldIndex(field)
	if col < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return t.Get(row, col)
}

// Serialize yields the data rows in order, header excluded. Each yielded
// slice is a copy and may be kept by the caller.
func (t *Table) Serialize() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for _, row := range t.Rows {
			out := make([]string, len(row))
			copy(out, row)
			if !yield(out) {
				return
			}
		}
	}
}

// String renders the table as tab separated lines, header first.
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Fields, "\t"))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}
