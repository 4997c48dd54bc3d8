// Package source resolves the inputs and outputs accepted by the format
// plugins (paths, byte slices, files and streams) into readers and writers
// with a display name.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// ErrUnsupportedSource is returned for values that are neither a path nor
// a stream.
var ErrUnsupportedSource = errors.New("unsupported source")

type named interface {
	Name() string
}

// Resolve turns src into a display name and a reader. src may be a file
// path (string), a []byte, or any io.Reader; readers with a Name method
// (such as *os.File) report that name.
//
// The returned ReadCloser must be closed. It only closes files opened by
// Resolve itself; caller-supplied streams are left open.
func Resolve(src any) (string, io.ReadCloser, error) {
	switch s := src.(type) {
	case nil:
		return "", nil, fmt.Errorf("%w: nil", ErrUnsupportedSource)
	case string:
		f, err := os.Open(s)
		if err != nil {
			return "", nil, fmt.Errorf("opening file: %w", err)
		}
		return s, f, nil
	case []byte:
		return "", io.NopCloser(bytes.NewReader(s)), nil
	case io.Reader:
		name := ""
		if n, ok := s.(named); ok {
			name = n.Name()
		}
		return name, io.NopCloser(s), nil
	default:
		return "", nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
	}
}

// ReadAll resolves src and reads it to the end.
func ReadAll(src any) (string, []byte, error) {
	name, rc, err := Resolve(src)
	if err != nil {
		return "", nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return name, nil, fmt.Errorf("reading %s: %w", displayName(name), err)
	}
	return name, data, nil
}

// ResolveWriter turns dst into a display name and a writer. dst may be a
// file path, which is created or truncated, or any io.Writer.
//
// As with Resolve, Close only closes files opened here.
func ResolveWriter(dst any) (string, io.WriteCloser, error) {
	switch d := dst.(type) {
	case nil:
		return "", nil, fmt.Errorf("%w: nil", ErrUnsupportedSource)
	case string:
		f, err := os.Create(d)
		if err != nil {
			return "", nil, fmt.Errorf("creating file: %w", err)
		}
		return d, f, nil
	case io.Writer:
		name := ""
		if n, ok := d.(named); ok {
			name = n.Name()
		}
		return name, nopWriteCloser{d}, nil
	default:
		return "", nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, dst)
	}
}

// Flush pushes buffered data in w to its destination when w supports it
// (bufio.Writer style Flush, or os.File style Sync).
func Flush(w io.Writer) error {
	if nw, ok := w.(nopWriteCloser); ok {
		w = nw.Writer
	}
	switch f := w.(type) {
	case interface{ Flush() error }:
		return f.Flush()
	case interface{ Sync() error }:
		// Pipes and terminals reject fsync with EINVAL.
		if err := f.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) && !errors.Is(err, syscall.EINVAL) {
			return err
		}
	}
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func displayName(name string) string {
	if name == "" {
		return "stream"
	}
	return name
}

// Named attaches a display name to r, so that Resolve reports it.
func Named(name string, r io.Reader) io.Reader {
	return namedReader{Reader: r, name: name}
}

type namedReader struct {
	io.Reader
	name string
}

func (n namedReader) Name() string { return n.name }
