package eventio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-eventio/internal/binary"
	"github.com/robert-malhotra/go-eventio/internal/filter"
	"github.com/robert-malhotra/go-eventio/internal/object"
)

// Header is the decoded header of an eventio object.
type Header = object.Header

// Format identifies the compression framing of a transport.
type Format = filter.Format

// Transport framings.
const (
	FormatRaw  = filter.FormatRaw
	FormatGzip = filter.FormatGzip
	FormatZstd = filter.FormatZstd
)

// SyncMarker precedes every top-level object.
const SyncMarker = object.SyncMarker

// File is an open eventio stream. It owns the read position of the
// decompressed stream, which only moves forward.
//
// A File must not be used by more than one goroutine at a time. To decode
// independent regions in parallel, open the same path once per goroutine.
type File struct {
	path         string
	transport    io.Closer
	stream       *filter.Stream
	reader       *binary.Reader
	registry     *Registry
	log          *zap.Logger
	nextTopLevel uint64
	closed       bool
}

// Open opens an eventio file for reading. Gzip and zstd compressed files
// are detected from their magic bytes and decompressed transparently.
func Open(path string, opts ...Option) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	f, err := newFile(fh, opts)
	if err != nil {
		fh.Close()
		return nil, err
	}
	f.path = path
	f.transport = fh
	return f, nil
}

// NewReader reads an eventio stream from r. Closing the returned File does
// not close r.
func NewReader(r io.Reader, opts ...Option) (*File, error) {
	return newFile(r, opts)
}

func newFile(r io.Reader, opts []Option) (*File, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	stream, err := filter.Wrap(r, o.bufferSize, o.filters)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	o.logger.Debug("opened eventio stream", zap.Stringer("format", stream.Format()))

	cfg := binary.DefaultConfig()
	cfg.BufferSize = o.bufferSize

	return &File{
		stream:   stream,
		reader:   binary.NewReader(stream.Reader, cfg),
		registry: o.registry,
		log:      o.logger,
	}, nil
}

// Close releases the decompressor and closes the file opened by Open.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	err := f.stream.Close()
	if f.transport != nil {
		err = errors.Join(err, f.transport.Close())
	}
	return err
}

// Path returns the file path, empty for streams created with NewReader.
func (f *File) Path() string {
	return f.path
}

// Format returns the detected compression framing.
func (f *File) Format() Format {
	return f.stream.Format()
}

// Registry returns the registry used to build objects.
func (f *File) Registry() *Registry {
	return f.registry
}

// HasNextTopLevel moves to the offset where the next top-level object is
// expected and reports whether any byte is left there. A clean end of
// stream is reported as false with a nil error.
func (f *File) HasNextTopLevel() (bool, error) {
	if f.closed {
		return false, ErrClosed
	}
	if err := f.reader.SeekForward(f.nextTopLevel); err != nil {
		return false, fmt.Errorf("seeking to next top-level object: %w", err)
	}
	return f.reader.HasRemaining()
}

// NextTopLevel decodes the next top-level object. It returns io.EOF when
// the stream ended cleanly at the previous object's boundary.
func (f *File) NextTopLevel() (Object, error) {
	ok, err := f.HasNextTopLevel()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, io.EOF
	}
	if err := object.ReadSyncMarker(f.reader); err != nil {
		return nil, err
	}
	return f.readObject(true)
}

// readObject decodes the header at the current position. Nested objects
// carry no sync marker.
func (f *File) readObject(toplevel bool) (Object, error) {
	at := f.reader.Pos()
	h, err := object.Read(f.reader)
	if err != nil {
		return nil, fmt.Errorf("reading object header at offset %d: %w", at, err)
	}

	address := f.reader.Pos()
	if toplevel {
		f.nextTopLevel = address + h.Size()
	}

	obj := f.registry.New(address, h)
	if ce := f.log.Check(zap.DebugLevel, "decoded object"); ce != nil {
		ce.Write(
			zap.String("name", obj.Name()),
			zap.Uint32("type", h.Type()),
			zap.Uint32("version", h.Version()),
			zap.Uint32("id", h.ID()),
			zap.Uint64("address", address),
			zap.Uint64("size", h.Size()),
			zap.Bool("container", h.IsContainer()),
			zap.Bool("toplevel", toplevel),
		)
	}
	return obj, nil
}

// Pos returns the current offset in the decompressed stream.
func (f *File) Pos() uint64 {
	return f.reader.Pos()
}

// SeekForward moves to target by discarding bytes. Moving backwards fails
// with ErrInvalidSeek.
func (f *File) SeekForward(target uint64) error {
	if f.closed {
		return ErrClosed
	}
	return f.reader.SeekForward(target)
}

// HasRemaining reports whether at least one more byte can be read.
func (f *File) HasRemaining() (bool, error) {
	if f.closed {
		return false, ErrClosed
	}
	return f.reader.HasRemaining()
}

// ReadUpTo reads at most n bytes; fewer are returned only at end of stream.
func (f *File) ReadUpTo(n uint64) ([]byte, error) {
	if f.closed {
		return nil, ErrClosed
	}
	return f.reader.ReadUpTo(n)
}

// ReadBytes reads exactly n bytes.
func (f *File) ReadBytes(n uint64) ([]byte, error) {
	if f.closed {
		return nil, ErrClosed
	}
	return f.reader.ReadBytes(n)
}

// ReadUint16 reads an unsigned 16-bit integer.
func (f *File) ReadUint16() (uint16, error) {
	if f.closed {
		return 0, ErrClosed
	}
	return f.reader.ReadUint16()
}

// ReadUint32 reads an unsigned 32-bit integer.
func (f *File) ReadUint32() (uint32, error) {
	if f.closed {
		return 0, ErrClosed
	}
	return f.reader.ReadUint32()
}

// ReadInt32 reads a signed 32-bit integer.
func (f *File) ReadInt32() (int32, error) {
	if f.closed {
		return 0, ErrClosed
	}
	return f.reader.ReadInt32()
}

// ReadString reads a string prefixed by its 16-bit length.
func (f *File) ReadString() (string, error) {
	if f.closed {
		return "", ErrClosed
	}
	return f.reader.ReadString()
}

// ReadNumeric reads a fixed-width value in the stream's byte order.
func ReadNumeric[T binary.Numeric](f *File) (T, error) {
	if f.closed {
		var zero T
		return zero, ErrClosed
	}
	return binary.Read[T](f.reader)
}
