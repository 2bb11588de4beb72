package ingestion

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

var (
	zipMagic  = []byte{'P', 'K', 0x03, 0x04}
	gzipMagic = []byte{0x1f, 0x8b}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// OpenContainer unwraps an uploaded file into its text payload. Zip and gzip
// are detected by magic number or by extension; anything else is read as
// plain text. The returned name is the payload's own name.
func OpenContainer(filename string, data []byte) (io.ReadCloser, string, error) {
	if len(data) == 0 {
		return nil, filename, ErrEmptyUpload
	}

	lower := strings.ToLower(filename)
	switch {
	case bytes.HasPrefix(data, zipMagic) || strings.HasSuffix(lower, ".zip"):
		return openZip(data)
	case bytes.HasPrefix(data, gzipMagic) || strings.HasSuffix(lower, ".gz"):
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, filename, fmt.Errorf("%w: %v", ErrUnreadableContainer, err)
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr}}, strings.TrimSuffix(filename, path.Ext(filename)), nil
	}

	return io.NopCloser(bytes.NewReader(data)), filename, nil
}

func openZip(data []byte) (io.ReadCloser, string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnreadableContainer, err)
	}

	// first entry by extension wins
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := strings.ToLower(f.Name)
		if !strings.HasSuffix(name, ".txt") && !strings.HasSuffix(name, ".csv") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, f.Name, fmt.Errorf("%w: %v", ErrUnreadableContainer, err)
		}
		return rc, f.Name, nil
	}

	return nil, "", ErrNoTextPayload
}

// ParseFile unwraps the container and parses its payload.
func ParseFile(filename string, data []byte) (*Result, error) {
	rc, _, err := OpenContainer(filename, data)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	res, err := Parse(rc)
	if err != nil {
		// a corrupt compressed stream only shows up once it is read
		if isCompressionError(err) {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableContainer, err)
		}
		return nil, err
	}
	return res, nil
}

func isCompressionError(err error) bool {
	return errors.Is(err, gzip.ErrChecksum) || errors.Is(err, gzip.ErrHeader) ||
		errors.Is(err, zip.ErrChecksum) || errors.Is(err, zip.ErrFormat) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
