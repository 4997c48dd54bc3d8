package table

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// BuildOptions configures how Build turns raw rows into a Table.
type BuildOptions struct {
	// Encoding is recorded on the table; values are already decoded.
	Encoding string

	// Fields gives explicit field names. When nil, the first row is
	// used as the header.
	Fields []string

	// SkipHeader controls whether the first row is dropped. nil means
	// "skip it when Fields is nil".
	SkipHeader *bool

	// ImportFields keeps only these fields, in this order.
	ImportFields []string

	// Extra carries options for other builders. Build ignores it.
	Extra map[string]any
}

// Bool returns a pointer to b, for optional flags such as SkipHeader.
func Bool(b bool) *bool {
	return &b
}

// Build creates a Table from rows. Rows shorter than the header are padded
// with empty strings; longer rows are an error.
func Build(rows [][]string, meta Metadata, opts BuildOptions) (*Table, error) {
	skipHeader := opts.Fields == nil
	if opts.SkipHeader != nil {
		skipHeader = *opts.SkipHeader
	}

	var header []string
	if opts.Fields != nil {
		header = opts.Fields
	} else if len(rows) > 0 {
		header = rows[0]
	}
	fields := MakeHeader(header)

	data := rows
	if skipHeader && len(data) > 0 {
		data = data[1:]
	}

	t := &Table{
		Fields:   fields,
		Rows:     make([][]string, 0, len(data)),
		Meta:     make(Metadata, len(meta)),
		Encoding: opts.Encoding,
	}
	for k, v := range meta {
		t.Meta[k] = v
	}

	for i, row := range data {
		if len(row) > len(fields) {
			return nil, fmt.Errorf("%w: row %d has %d values, %d fields", ErrRaggedRow, i, len(row), len(fields))
		}
		values := make([]string, len(fields))
		copy(values, row)
		t.Rows = append(t.Rows, values)
	}

	if len(opts.ImportFields) > 0 {
		if err := t.project(MakeHeader(opts.ImportFields)); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// project reorders and narrows the table to the given fields.
func (t *Table) project(names []string) error {
	cols := make([]int, len(names))
	for i, name := range names {
		col := t.FieldIndex(name)
		if col < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		cols[i] = col
	}

	for i, row := range t.Rows {
		projected := make([]string, len(cols))
		for j, col := range cols {
			projected[j] = row[col]
		}
		t.Rows[i] = projected
	}
	t.Fields = names
	return nil
}

// MakeHeader turns raw header values into unique field names: each value
// is slugged, empty ones become field_N (N being the 0-based position) and
// repeated names get _2, _3, ... suffixes.
func MakeHeader(names []string) []string {
	fields := make([]string, len(names))
	seen := make(map[string]struct{}, len(names))

	for i, name := range names {
		field := Slug(name)
		if field == "" {
			field = "field_" + strconv.Itoa(i)
		}
		if _, exists := seen[field]; exists {
			for counter := 2; ; counter++ {
				candidate := field + "_" + strconv.Itoa(counter)
				if _, taken := seen[candidate]; !taken {
					field = candidate
					break
				}
			}
		}
		seen[field] = struct{}{}
		fields[i] = field
	}
	return fields
}

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts text to a lowercase ASCII identifier, e.g.
// "Preço Médio" becomes "preco_medio".
func Slug(text string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn))), text)
	if err != nil {
		stripped = text
	}
	stripped = strings.ToLower(strings.TrimSpace(stripped))
	return strings.Trim(slugRegexp.ReplaceAllString(stripped, "_"), "_")
}
