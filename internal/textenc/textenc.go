// Package textenc resolves text encodings by their WHATWG label and converts
// between encoded bytes and Go strings.
package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Default is the encoding used when no label is given.
const Default = "utf-8"

var (
	// ErrUnknownEncoding is returned for labels htmlindex does not know.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrDecode is returned when input bytes are not valid in the encoding.
	ErrDecode = errors.New("invalid byte sequence")
	// ErrEncode is returned when text cannot be represented in the encoding.
	ErrEncode = errors.New("cannot encode text")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Lookup returns the encoding registered for label together with its
// canonical name. An empty label selects Default.
func Lookup(label string) (encoding.Encoding, string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = Default
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	name, err := htmlindex.Name(enc)
	if err != nil {
		name = strings.ToLower(label)
	}
	return enc, name, nil
}

// Decode converts data from the labelled encoding to a string.
//
// UTF-8 input is validated strictly: the x/text decoder would silently
// substitute U+FFFD for malformed sequences.
func Decode(data []byte, label string) (string, error) {
	enc, name, err := Lookup(label)
	if err != nil {
		return "", err
	}

	if name == "utf-8" {
		data = bytes.TrimPrefix(data, utf8BOM)
		if off := invalidOffset(data); off >= 0 {
			return "", fmt.Errorf("%w for %s at offset %d", ErrDecode, name, off)
		}
		return string(data), nil
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w for %s: %v", ErrDecode, name, err)
	}
	return string(out), nil
}

// Encode converts text to the labelled encoding. When escapeUnsupported is
// set, runes the encoding cannot represent are written as HTML numeric
// character references instead of failing.
func Encode(text, label string, escapeUnsupported bool) ([]byte, error) {
	enc, name, err := Lookup(label)
	if err != nil {
		return nil, err
	}
	if name == "utf-8" {
		if !utf8.ValidString(text) {
			return nil, fmt.Errorf("%w: invalid UTF-8 in input", ErrEncode)
		}
		return []byte(text), nil
	}

	encoder := enc.NewEncoder()
	if escapeUnsupported {
		encoder = encoding.HTMLEscapeUnsupported(encoder)
	}
	out, err := encoder.Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w to %s: %v", ErrEncode, name, err)
	}
	return out, nil
}

// invalidOffset returns the byte offset of the first malformed UTF-8
// sequence in data, or -1 when data is valid.
func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
