package rows

import (
	"log/slog"

	"github.com/tsawler/rows/htmltable"
	"github.com/tsawler/rows/table"
)

// importOptions holds configuration for an Importer.
type importOptions struct {
	encoding string
	index    int

	// Row and cell extraction
	keepColspan  bool
	preserveHTML bool
	rowTag       string
	columnTag    string

	// Table construction
	fields       []string
	importFields []string

	logger *slog.Logger
}

// defaultOptions returns the default import options.
func defaultOptions() importOptions {
	return importOptions{
		encoding:     "utf-8",
		index:        0,
		keepColspan:  false,
		preserveHTML: false,
		rowTag:       htmltable.DefaultRowTag,
		columnTag:    htmltable.DefaultColumnTag,
	}
}

// clone creates a deep copy of importOptions.
func (o importOptions) clone() importOptions {
	newOpts := o

	// Deep copy slices
	if o.fields != nil {
		newOpts.fields = append([]string(nil), o.fields...)
	}
	if o.importFields != nil {
		newOpts.importFields = append([]string(nil), o.importFields...)
	}

	return newOpts
}

// htmlOptions converts the options for htmltable.ImportRows.
func (o importOptions) htmlOptions() htmltable.Options {
	return htmltable.Options{
		Encoding:      o.encoding,
		Index:         o.index,
		IgnoreColspan: !o.keepColspan,
		PreserveHTML:  o.preserveHTML,
		RowTag:        o.rowTag,
		ColumnTag:     o.columnTag,
		Logger:        o.logger,
	}
}

// buildOptions converts the options for table.Build.
func (o importOptions) buildOptions() table.BuildOptions {
	return table.BuildOptions{
		Encoding:     o.encoding,
		Fields:       o.fields,
		ImportFields: o.importFields,
	}
}
