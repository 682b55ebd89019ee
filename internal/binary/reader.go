// Package binary provides low-level, forward-only binary I/O for eventio stream parsing.
package binary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	// ErrTruncated is returned when the stream ends before a field is complete.
	ErrTruncated = errors.New("truncated data")

	// ErrInvalidSeek is returned when asked to move the position backwards.
	ErrInvalidSeek = errors.New("invalid seek: target before current position")
)

// DefaultBufferSize is the read-ahead buffer used when none is configured.
const DefaultBufferSize = 64 * 1024

// discardChunk bounds a single Discard call so that 42-bit lengths never
// overflow an int on 32-bit platforms.
const discardChunk = 1 << 30

// Numeric is the set of fixed-width types that can be read with Read.
type Numeric interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// Reader reads eventio data from a one-pass byte stream. The position only
// ever moves forward, so the underlying reader may be a decompressor.
type Reader struct {
	r     *bufio.Reader
	order binary.ByteOrder
	pos   uint64
}

// Config holds reader configuration.
type Config struct {
	ByteOrder  binary.ByteOrder
	BufferSize int
}

// DefaultConfig returns the configuration used by eventio files:
// little-endian with a 64 KiB read-ahead buffer.
func DefaultConfig() Config {
	return Config{
		ByteOrder:  binary.LittleEndian,
		BufferSize: DefaultBufferSize,
	}
}

// NewReader creates a binary reader with the given configuration.
// If r is already a *bufio.Reader it is used as is.
func NewReader(r io.Reader, cfg Config) *Reader {
	if cfg.ByteOrder == nil {
		cfg.ByteOrder = binary.LittleEndian
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, cfg.BufferSize)
	}
	return &Reader{
		r:     br,
		order: cfg.ByteOrder,
	}
}

// Pos returns the number of bytes consumed from the logical stream.
func (r *Reader) Pos() uint64 {
	return r.pos
}

// ByteOrder returns the configured byte order.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}

// ReadUpTo reads at most n bytes. Fewer than n bytes are returned only when
// the stream ends; that is not reported as an error.
func (r *Reader) ReadUpTo(n uint64) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	// LimitReader + ReadAll grows the buffer as data arrives, so a bogus
	// length cannot force a huge allocation up front.
	buf, err := io.ReadAll(io.LimitReader(r.r, int64(min(n, math.MaxInt64))))
	r.pos += uint64(len(buf))
	if err != nil {
		return buf, fmt.Errorf("reading at offset %d: %w", r.pos, err)
	}
	return buf, nil
}

// ReadBytes reads exactly n bytes from the current position.
func (r *Reader) ReadBytes(n uint64) ([]byte, error) {
	start := r.pos
	buf, err := r.ReadUpTo(n)
	if err != nil {
		return nil, err
	}
	if uint64(len(buf)) < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, got %d", ErrTruncated, n, start, len(buf))
	}
	return buf, nil
}

// fixed reads exactly len(buf) bytes into buf.
func (r *Reader) fixed(buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	r.pos += uint64(n)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: need %d bytes at offset %d, got %d", ErrTruncated, len(buf), r.pos-uint64(n), n)
	default:
		return fmt.Errorf("reading at offset %d: %w", r.pos, err)
	}
}

// Read reads a fixed-width numeric value in the reader's byte order.
func Read[T Numeric](r *Reader) (T, error) {
	var v T
	buf := make([]byte, binary.Size(v))
	if err := r.fixed(buf); err != nil {
		return v, err
	}
	if _, err := binary.Decode(buf, r.order, &v); err != nil {
		return v, err
	}
	return v, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *Reader) ReadUint8() (uint8, error) {
	var buf [1]byte
	if err := r.fixed(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads an unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	var buf [2]byte
	if err := r.fixed(buf[:]); err != nil {
		return 0, err
	}
	return r.order.Uint16(buf[:]), nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	var buf [4]byte
	if err := r.fixed(buf[:]); err != nil {
		return 0, err
	}
	return r.order.Uint32(buf[:]), nil
}

// ReadUint64 reads an unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	var buf [8]byte
	if err := r.fixed(buf[:]); err != nil {
		return 0, err
	}
	return r.order.Uint64(buf[:]), nil
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadFloat32 reads an IEEE 754 single precision value.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE 754 double precision value.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadString reads a string prefixed by its 16-bit length.
// The bytes are returned as is; they need not be valid UTF-8.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return "", fmt.Errorf("reading string length: %w", err)
	}
	buf, err := r.ReadBytes(uint64(n))
	if err != nil {
		return "", fmt.Errorf("reading string: %w", err)
	}
	return string(buf), nil
}

// SeekForward moves the position to target by discarding bytes.
// Seeking to the current position is a no-op.
func (r *Reader) SeekForward(target uint64) error {
	if target < r.pos {
		return fmt.Errorf("%w: at %d, asked for %d", ErrInvalidSeek, r.pos, target)
	}
	return r.Skip(target - r.pos)
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n uint64) error {
	for n > 0 {
		chunk := int(min(n, discardChunk))
		d, err := r.r.Discard(chunk)
		r.pos += uint64(d)
		n -= uint64(d)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: stream ended at offset %d, %d bytes short", ErrTruncated, r.pos, n)
			}
			return fmt.Errorf("skipping at offset %d: %w", r.pos, err)
		}
	}
	return nil
}

// Peek returns the next n bytes without advancing the position.
func (r *Reader) Peek(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	return r.r.Peek(n)
}

// HasRemaining reports whether at least one more byte can be read.
// A clean end of stream is reported as false with a nil error.
func (r *Reader) HasRemaining() (bool, error) {
	_, err := r.r.Peek(1)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, io.EOF):
		return false, nil
	default:
		return false, fmt.Errorf("peeking at offset %d: %w", r.pos, err)
	}
}
