package htmltable

import (
	"log/slog"

	"github.com/tsawler/rows/internal/textenc"
	"github.com/tsawler/rows/table"
)

// Default selectors for rows and cells.
const (
	DefaultRowTag    = "tr"
	DefaultColumnTag = "td|th"
)

// Options configures Import.
type Options struct {
	// Encoding is the label used to decode the input (default "utf-8").
	Encoding string

	// Index selects the table among all <table> elements in document
	// order, nested tables included.
	Index int

	// IgnoreColspan drops every row whose cell count differs from the
	// widest row. Rows with colspanned cells report fewer cells and would
	// otherwise shift the columns after them.
	IgnoreColspan bool

	// PreserveHTML returns each cell's inner markup (entities decoded)
	// instead of its text.
	PreserveHTML bool

	// RowTag and ColumnTag select rows among the table's children and
	// cells among each row's children. "a|b" is accepted as a shorthand
	// for the CSS group "a, b".
	RowTag    string
	ColumnTag string

	// Build is forwarded to table.Build. Its Encoding is overwritten with
	// the import encoding.
	Build table.BuildOptions

	// Logger receives debug records. nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the default import options.
func DefaultOptions() Options {
	return Options{
		Encoding:      textenc.Default,
		Index:         0,
		IgnoreColspan: true,
		PreserveHTML:  false,
		RowTag:        DefaultRowTag,
		ColumnTag:     DefaultColumnTag,
	}
}

// withDefaults fills empty string fields with their defaults.
func (o Options) withDefaults() Options {
	if o.Encoding == "" {
		o.Encoding = textenc.Default
	}
	if o.RowTag == "" {
		o.RowTag = DefaultRowTag
	}
	if o.ColumnTag == "" {
		o.ColumnTag = DefaultColumnTag
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// ExportOptions configures Export.
type ExportOptions struct {
	// Encoding of the produced bytes (default "utf-8"). Characters the
	// encoding cannot represent are written as numeric character
	// references.
	Encoding string

	// Escape HTML-escapes field names and values. By default they are
	// written as is, so markup imported with PreserveHTML survives a
	// round trip.
	Escape bool
}
