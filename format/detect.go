// Package format provides file format detection for the rows plugins.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a tabular data format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates an HTML document.
	HTML
	// CSV indicates comma separated values.
	CSV
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// ODS indicates an OpenDocument spreadsheet.
	ODS
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case CSV:
		return "CSV"
	case XLSX:
		return "XLSX"
	case ODS:
		return "ODS"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case CSV:
		return ".csv"
	case XLSX:
		return ".xlsx"
	case ODS:
		return ".ods"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".csv":
		return CSV
	case ".xlsx":
		return XLSX
	case ".ods":
		return ODS
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// ZIP based spreadsheets cannot be told apart from their magic alone and
// are reported as Unknown, as is plain text.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}
	if detectHTMLMagic(data) {
		return HTML
	}
	return Unknown
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}
	if len(data) > 512 {
		data = data[:512]
	}

	upper := strings.ToUpper(string(data))
	for _, prefix := range []string{"<!DOCTYPE HTML", "<HTML", "<TABLE", "<!--"} {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}

// Resolve combines both detectors: a recognized extension wins, otherwise
// the content decides.
func Resolve(filename string, data []byte) Format {
	if f := Detect(filename); f != Unknown {
		return f
	}
	return DetectFromMagic(data)
}
