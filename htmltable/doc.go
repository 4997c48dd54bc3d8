// Package htmltable converts between HTML <table> markup and table.Table.
//
// Import extracts one table from a document:
//
//	opts := htmltable.DefaultOptions()
//	opts.Index = 1
//	t, err := htmltable.Import("report.html", opts)
//
// Export writes a table back as HTML, either to a destination or as bytes:
//
//	data, err := htmltable.Export(t, nil, htmltable.ExportOptions{})
//
// TagToDict and TagText inspect a single tag, e.g. a cell imported with
// Options.PreserveHTML.
package htmltable
