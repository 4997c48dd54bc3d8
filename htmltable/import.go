package htmltable

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/rows/internal/textenc"
	"github.com/tsawler/rows/source"
	"github.com/tsawler/rows/table"
)

// Result is the row matrix extracted from one table, before it is turned
// into a table.Table.
type Result struct {
	Rows    [][]string
	Meta    table.Metadata
	Dropped []DroppedRow

	// MaxColumns is the cell count of the widest extracted row.
	MaxColumns int
	// TableCount is the number of <table> elements in the document.
	TableCount int
}

// DroppedRow describes a row removed by the IgnoreColspan policy.
type DroppedRow struct {
	Index int // position among the extracted rows
	Cells int
}

// Import reads HTML from src (a path, []byte or io.Reader), extracts the
// table selected by opts.Index and builds a table from its rows.
func Import(src any, opts Options) (*table.Table, error) {
	res, err := ImportRows(src, opts)
	if err != nil {
		return nil, err
	}

	buildOpts := opts.Build
	buildOpts.Encoding = opts.withDefaults().Encoding
	t, err := table.Build(res.Rows, res.Meta, buildOpts)
	if err != nil {
		return nil, fmt.Errorf("building table: %w", err)
	}
	return t, nil
}

// ImportRows is Import without the final table construction.
func ImportRows(src any, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	rowMatcher, err := compileSelector(opts.RowTag)
	if err != nil {
		return nil, err
	}
	cellMatcher, err := compileSelector(opts.ColumnTag)
	if err != nil {
		return nil, err
	}

	filename, raw, err := source.ReadAll(src)
	if err != nil {
		return nil, err
	}

	text, err := textenc.Decode(raw, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("decoding HTML: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tables := doc.Find("table")
	if opts.Index < 0 || opts.Index >= tables.Length() {
		return nil, fmt.Errorf("%w: index %d, document has %d tables", ErrTableIndex, opts.Index, tables.Length())
	}
	selected := tables.Eq(opts.Index)
	unwrapSections(selected.Get(0))

	res := &Result{
		Rows:       make([][]string, 0),
		TableCount: tables.Length(),
	}

	selected.ChildrenMatcher(rowMatcher).Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenMatcher(cellMatcher)
		values := make([]string, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			values = append(values, cellValue(cell, opts.PreserveHTML))
		})
		res.Rows = append(res.Rows, values)
	})

	for _, row := range res.Rows {
		if len(row) > res.MaxColumns {
			res.MaxColumns = len(row)
		}
	}

	if opts.IgnoreColspan {
		kept := res.Rows[:0]
		for i, row := range res.Rows {
			if len(row) == res.MaxColumns {
				kept = append(kept, row)
				continue
			}
			res.Dropped = append(res.Dropped, DroppedRow{Index: i, Cells: len(row)})
			opts.Logger.Debug("dropping row with mismatched cell count",
				"row", i, "cells", len(row), "max_columns", res.MaxColumns)
		}
		res.Rows = kept
	}

	res.Meta = table.Metadata{table.MetaImportedFrom: "html"}
	if filename != "" {
		res.Meta[table.MetaFilename] = filename
	}

	opts.Logger.Debug("imported html table",
		"filename", filename,
		"index", opts.Index,
		"tables", res.TableCount,
		"rows", len(res.Rows),
		"dropped", len(res.Dropped))

	return res, nil
}

// cellValue returns the trimmed text of cell, or its trimmed inner markup
// with entities decoded when preserveHTML is set.
func cellValue(cell *goquery.Selection, preserveHTML bool) string {
	if !preserveHTML {
		return strings.TrimSpace(cell.Text())
	}
	inner, err := cell.Html()
	if err != nil {
		return strings.TrimSpace(cell.Text())
	}
	return html.UnescapeString(strings.TrimSpace(inner))
}

// unwrapSections replaces each <thead> and <tbody> child of the table with
// its own children, so rows can be selected as direct children of the
// table wherever they were declared.
func unwrapSections(tableNode *html.Node) {
	for c := tableNode.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && (c.DataAtom == atom.Thead || c.DataAtom == atom.Tbody) {
			for gc := c.FirstChild; gc != nil; gc = c.FirstChild {
				c.RemoveChild(gc)
				tableNode.InsertBefore(gc, c)
			}
			tableNode.RemoveChild(c)
		}
		c = next
	}
}

var tagAlternation = regexp.MustCompile(`^\s*[A-Za-z][A-Za-z0-9-]*(\s*\|\s*[A-Za-z][A-Za-z0-9-]*)+\s*$`)

// compileSelector compiles a row or column tag. Plain "a|b" alternations
// are rewritten to the CSS group "a, b".
func compileSelector(tag string) (cascadia.Selector, error) {
	if tagAlternation.MatchString(tag) {
		parts := strings.Split(tag, "|")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		tag = strings.Join(parts, ", ")
	}

	sel, err := cascadia.Compile(tag)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, tag, err)
	}
	return sel, nil
}
