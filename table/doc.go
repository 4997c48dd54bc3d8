// Package table provides the in-memory tabular container shared by the
// format plugins.
//
// Importers hand their raw rows to [Build], which derives field names from
// the header row and returns a [Table]:
//
//	t, err := table.Build(rows, table.Metadata{"imported_from": "html"}, table.BuildOptions{})
//
// Exporters read the data rows back with [Table.Serialize]:
//
//	for row := range t.Serialize() {
//	    // row is a []string with one value per field
//	}
//
// All values are decoded strings; no type detection is performed.
package table
