// Package rows provides a fluent API for importing tables from HTML
// documents and exporting them back to HTML.
//
// Basic usage:
//
//	t, warnings, err := rows.Open("report.html").Table()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", rows.FormatWarnings(warnings))
//	}
//
// With options:
//
//	t, _, err := rows.Open(resp.Body).
//	    Encoding("iso-8859-1").
//	    Index(2).
//	    PreserveHTML().
//	    Table()
//
// Exporting:
//
//	err := rows.Export(t, "out.html", "utf-8")
//
// For lower-level control, use the htmltable and table packages directly.
package rows

import (
	"github.com/tsawler/rows/htmltable"
	"github.com/tsawler/rows/table"
)

// Open returns an Importer for src, which may be a file path, a []byte or
// any io.Reader. Nothing is read until a terminal operation such as
// Table() is called; streams passed in are not closed.
//
// Example:
//
//	t, warnings, err := rows.Open("prices.html").Table()
func Open(src any) *Importer {
	return &Importer{
		src:     src,
		options: defaultOptions(),
	}
}

// Export writes t as HTML to dst (a path or an io.Writer) using the given
// encoding. Field names and values are written as is.
//
// Example:
//
//	err := rows.Export(t, os.Stdout, "")
func Export(t *table.Table, dst any, encoding string) error {
	_, err := htmltable.Export(t, dst, htmltable.ExportOptions{Encoding: encoding})
	return err
}

// ExportBytes returns t rendered as HTML in the given encoding.
func ExportBytes(t *table.Table, encoding string) ([]byte, error) {
	return htmltable.Export(t, nil, htmltable.ExportOptions{Encoding: encoding})
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	html := rows.Must(rows.ExportBytes(t, "utf-8"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTable is a helper that wraps a call to Table() and panics if the
// error is non-nil. It discards warnings and returns just the table.
//
// Example:
//
//	t := rows.MustTable(rows.Open("prices.html").Table())
func MustTable(t *table.Table, _ []Warning, err error) *table.Table {
	if err != nil {
		panic(err)
	}
	return t
}
