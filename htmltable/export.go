package htmltable

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/rows/internal/textenc"
	"github.com/tsawler/rows/source"
	"github.com/tsawler/rows/table"
)

// Export renders t as an HTML table document encoded with opts.Encoding.
//
// When dst is nil the bytes are returned. Otherwise dst (a path or an
// io.Writer) receives them, is flushed, and Export returns nil bytes.
func Export(t *table.Table, dst any, opts ExportOptions) ([]byte, error) {
	data, err := textenc.Encode(Markup(t, opts.Escape), opts.Encoding, true)
	if err != nil {
		return nil, fmt.Errorf("encoding HTML: %w", err)
	}

	if dst == nil {
		return data, nil
	}

	name, w, err := source.ResolveWriter(dst)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("writing %s: %w", name, err)
	}
	if err := source.Flush(w); err != nil {
		w.Close()
		return nil, fmt.Errorf("flushing %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", name, err)
	}
	return nil, nil
}

// Markup renders t as HTML text. Data rows alternate between the "odd"
// and "even" classes, starting with "odd".
func Markup(t *table.Table, escape bool) string {
	value := func(s string) string { return s }
	if escape {
		value = html.EscapeString
	}

	lines := []string{"<table>", "", "  <thead>", "    <tr>"}
	for _, field := range t.Fields {
		lines = append(lines, "      <th>"+value(field)+"</th>")
	}
	lines = append(lines, "    </tr>", "  </thead>", "", "  <tbody>", "")

	index := 0
	for row := range t.Serialize() {
		index++
		class := "even"
		if index%2 == 1 {
			class = "odd"
		}
		lines = append(lines, `    <tr class="`+class+`">`)
		for _, v := range row {
			lines = append(lines, "      <td>", value(v), "      </td>")
		}
		lines = append(lines, "    </tr>", "")
	}
	lines = append(lines, "  </tbody>", "</table>", "")

	return strings.Join(lines, "\n")
}
