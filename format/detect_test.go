package format

import (
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{HTML, "HTML"},
		{CSV, "CSV"},
		{XLSX, "XLSX"},
		{ODS, "ODS"},
		{PDF, "PDF"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{HTML, ".html"},
		{CSV, ".csv"},
		{XLSX, ".xlsx"},
		{ODS, ".ods"},
		{PDF, ".pdf"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"table.html", HTML},
		{"table.HTML", HTML},
		{"table.Html", HTML},
		{"table.htm", HTML},
		{"table.HTM", HTML},
		{"table.xhtml", HTML},
		{"table.csv", CSV},
		{"table.xlsx", XLSX},
		{"table.ods", ODS},
		{"table.pdf", PDF},
		{"table.txt", Unknown},
		{"table", Unknown},
		{"", Unknown},
		{"/path/to/file.html", HTML},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "PDF magic bytes",
			data: []byte("%PDF-1.4"),
			want: PDF,
		},
		{
			name: "ZIP magic bytes",
			data: []byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00},
			want: Unknown,
		},
		{
			name: "HTML with DOCTYPE",
			data: []byte("<!DOCTYPE html>\n<html>"),
			want: HTML,
		},
		{
			name: "HTML with html tag",
			data: []byte("<html><head>"),
			want: HTML,
		},
		{
			name: "bare table fragment",
			data: []byte("<table><tr><td>1</td></tr></table>"),
			want: HTML,
		},
		{
			name: "whitespace and BOM before DOCTYPE",
			data: []byte("\xef\xbb\xbf  \n  <!DOCTYPE HTML PUBLIC"),
			want: HTML,
		},
		{
			name: "XHTML prologue",
			data: []byte(`<?xml version="1.0"?><html xmlns="http://www.w3.org/1999/xhtml">`),
			want: HTML,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Unknown,
		},
		{
			name: "text file",
			data: []byte("Hello, World!"),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve("data.csv", []byte("<table>")); got != CSV {
		t.Errorf("Resolve() = %v, want CSV (extension wins)", got)
	}
	if got := Resolve("", []byte("<table>")); got != HTML {
		t.Errorf("Resolve() = %v, want HTML", got)
	}
	if got := Resolve("notes", []byte("plain")); got != Unknown {
		t.Errorf("Resolve() = %v, want Unknown", got)
	}
}
