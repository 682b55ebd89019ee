// Package filter detects and removes the transport compression of eventio streams.
package filter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Format identifies the framing of a transport.
type Format uint8

const (
	FormatRaw Format = iota
	FormatGzip
	FormatZstd
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatGzip:
		return "gzip"
	case FormatZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Filter is the interface implemented by all decompression filters.
type Filter interface {
	// Format returns the framing this filter removes.
	Format() Format

	// Magic returns the leading bytes that identify the framing.
	Magic() []byte

	// NewReader returns a reader of the decompressed stream.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// Registry lists the filters tried, in order, when sniffing a transport.
var Registry = []Filter{
	Gzip{},
	Zstd{},
}

// Detect peeks at the start of br and returns the matching filter, or nil
// when no magic matches. No bytes are consumed.
func Detect(br *bufio.Reader, registry []Filter) (Filter, error) {
	for _, f := range registry {
		magic := f.Magic()
		head, err := br.Peek(len(magic))
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, bufio.ErrBufferFull) {
				continue
			}
			return nil, fmt.Errorf("sniffing %s magic: %w", f.Format(), err)
		}
		if bytes.Equal(head, magic) {
			return f, nil
		}
	}
	return nil, nil
}

// Stream is a transport with its compression framing removed.
type Stream struct {
	io.Reader
	format Format
	closer io.Closer
}

// Format returns the framing that was detected.
func (s *Stream) Format() Format {
	return s.format
}

// Close releases the decompressor, if any. It does not close the transport.
func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Wrap sniffs r and layers the matching decompression filter over it.
// Transports without a known magic pass through unmodified.
func Wrap(r io.Reader, bufSize int, registry []Filter) (*Stream, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, bufSize)
	}

	f, err := Detect(br, registry)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return &Stream{Reader: br, format: FormatRaw}, nil
	}

	dr, err := f.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("%s reader: %w", f.Format(), err)
	}
	return &Stream{Reader: dr, format: f.Format(), closer: dr}, nil
}
