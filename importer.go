package rows

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tsawler/rows/format"
	"github.com/tsawler/rows/htmltable"
	"github.com/tsawler/rows/source"
	"github.com/tsawler/rows/table"
)

var (
	// ErrUnsupportedFormat is returned when the source is recognized as a
	// format other than HTML.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvalidOption is returned for configuration values that can never
	// be satisfied, such as a negative table index.
	ErrInvalidOption = errors.New("invalid option")
)

// Importer provides a fluent interface for importing a table from HTML.
// Each configuration method returns a new Importer instance, making it
// safe for concurrent use and allowing method chaining.
type Importer struct {
	src any

	// Configuration
	options importOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Importer with a deep copy of options.
func (e *Importer) clone() *Importer {
	return &Importer{
		src:     e.src,
		options: e.options.clone(),
		err:     e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Importer instance)
// ============================================================================

// Encoding sets the label used to decode the source (default "utf-8").
// Any WHATWG encoding label is accepted.
//
// Example:
//
//	t, _, err := rows.Open("legacy.html").Encoding("windows-1252").Table()
func (e *Importer) Encoding(label string) *Importer {
	newExt := e.clone()
	newExt.options.encoding = label
	return newExt
}

// Index selects the table to import among all <table> elements in
// document order (0-based, nested tables included).
func (e *Importer) Index(i int) *Importer {
	newExt := e.clone()
	if i < 0 && newExt.err == nil {
		newExt.err = fmt.Errorf("%w: negative table index %d", ErrInvalidOption, i)
	}
	newExt.options.index = i
	return newExt
}

// KeepColspan keeps rows whose cell count differs from the widest row.
// By default such rows are dropped and reported as warnings.
func (e *Importer) KeepColspan() *Importer {
	newExt := e.clone()
	newExt.options.keepColspan = true
	return newExt
}

// PreserveHTML imports each cell's inner markup instead of its text.
//
// Example:
//
//	t, _, err := rows.Open("links.html").PreserveHTML().Table()
//	// t.Rows[0][0] == `<a href="/x">x</a>`
func (e *Importer) PreserveHTML() *Importer {
	newExt := e.clone()
	newExt.options.preserveHTML = true
	return newExt
}

// RowTag sets the selector for row elements (default "tr").
func (e *Importer) RowTag(tag string) *Importer {
	newExt := e.clone()
	newExt.options.rowTag = tag
	return newExt
}

// ColumnTag sets the selector for cell elements (default "td|th").
func (e *Importer) ColumnTag(tag string) *Importer {
	newExt := e.clone()
	newExt.options.columnTag = tag
	return newExt
}

// Fields sets explicit field names. The first row is then kept as data.
func (e *Importer) Fields(names ...string) *Importer {
	newExt := e.clone()
	newExt.options.fields = append([]string(nil), names...)
	return newExt
}

// ImportFields restricts the table to the named fields, in that order.
// Multiple calls are cumulative.
func (e *Importer) ImportFields(names ...string) *Importer {
	newExt := e.clone()
	newExt.options.importFields = append(newExt.options.importFields, names...)
	return newExt
}

// Logger sets the logger receiving debug records during import.
func (e *Importer) Logger(l *slog.Logger) *Importer {
	newExt := e.clone()
	newExt.options.logger = l
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Table imports the selected table. It returns the table, any warnings
// encountered during import, and an error if the import failed.
//
// Example:
//
//	t, warnings, err := rows.Open("report.html").Table()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", rows.FormatWarnings(warnings))
//	}
func (e *Importer) Table() (*table.Table, []Warning, error) {
	res, warnings, err := e.extract()
	if err != nil {
		return nil, nil, err
	}

	t, err := table.Build(res.Rows, res.Meta, e.options.buildOptions())
	if err != nil {
		return nil, warnings, fmt.Errorf("building table: %w", err)
	}
	return t, warnings, nil
}

// Rows returns the raw row matrix of the selected table, header row
// included, without building a table.
func (e *Importer) Rows() ([][]string, []Warning, error) {
	res, warnings, err := e.extract()
	if err != nil {
		return nil, nil, err
	}
	return res.Rows, warnings, nil
}

func (e *Importer) extract() (*htmltable.Result, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	name, data, err := source.ReadAll(e.src)
	if err != nil {
		return nil, nil, err
	}

	if f := format.Resolve(name, data); f != format.HTML && f != format.Unknown {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	res, err := htmltable.ImportRows(source.Named(name, bytes.NewReader(data)), e.options.htmlOptions())
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for _, d := range res.Dropped {
		warnings = append(warnings, Warning{
			Type:    WarningDroppedRow,
			Row:     d.Index,
			Message: fmt.Sprintf("%d cells, expected %d", d.Cells, res.MaxColumns),
		})
	}
	return res, warnings, nil
}
