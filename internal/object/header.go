package object

import (
	"encoding/binary"
	"errors"
	"fmt"

	ebinary "github.com/robert-malhotra/go-eventio/internal/binary"
)

/*
Object Header Layout (all words little-endian):
Offset  Size  Description
0       4     Type/version word
                bits  0-15  type id
                bit   16    user flag
                bit   17    extended flag
                bits 20-31  version
4       4     Object id
8       4     Length word
                bits  0-29  length (low 30 bits)
                bit   30    container flag
12      4     Extension word, only when the extended flag is set
                bits  0-11  length (bits 30-41)
*/

// Header sizes in bytes.
const (
	Size         = 12
	ExtendedSize = 16
)

// MaxSize is one past the largest payload size an extended header can declare.
const MaxSize = uint64(1) << 42

const (
	userBit      = 16
	extendedBit  = 17
	containerBit = 30
	lengthBits   = 30
)

// ErrInvalidHeader is returned when a header cannot be decoded from the given bytes.
var ErrInvalidHeader = errors.New("invalid object header")

// Header is the packed header preceding every eventio object.
type Header struct {
	TypeVersionWord uint32
	IDWord          uint32
	LengthWord      uint32
	ExtensionWord   uint32
}

func extractBits(value uint32, first, n uint) uint32 {
	return (value >> first) & ((1 << n) - 1)
}

func isBitSet(value uint32, bit uint) bool {
	return value&(1<<bit) != 0
}

// Type returns the object type id.
func (h Header) Type() uint32 {
	return extractBits(h.TypeVersionWord, 0, 16)
}

// IsUserBitSet reports whether the user flag is set.
func (h Header) IsUserBitSet() bool {
	return isBitSet(h.TypeVersionWord, userBit)
}

// IsExtended reports whether the header carries the extension word.
func (h Header) IsExtended() bool {
	return isBitSet(h.TypeVersionWord, extendedBit)
}

// Version returns the object version.
func (h Header) Version() uint32 {
	return extractBits(h.TypeVersionWord, 20, 12)
}

// IsContainer reports whether the payload is a sequence of child objects.
func (h Header) IsContainer() bool {
	return isBitSet(h.LengthWord, containerBit)
}

// ID returns the object identifier.
func (h Header) ID() uint32 {
	return h.IDWord
}

// HeaderSize returns the number of bytes the header occupies on the wire.
func (h Header) HeaderSize() uint64 {
	if h.IsExtended() {
		return ExtendedSize
	}
	return Size
}

// Size returns the payload length in bytes, not counting the header.
func (h Header) Size() uint64 {
	size := uint64(extractBits(h.LengthWord, 0, lengthBits))
	if h.IsExtended() {
		size += uint64(extractBits(h.ExtensionWord, 0, 12)) << lengthBits
	}
	return size
}

// Read decodes a header at the reader's current position.
// The extension word is consumed only when the extended flag is set.
func Read(r *ebinary.Reader) (Header, error) {
	var h Header
	var err error

	if h.TypeVersionWord, err = r.ReadUint32(); err != nil {
		return Header{}, fmt.Errorf("reading type/version word: %w", err)
	}
	if h.IDWord, err = r.ReadUint32(); err != nil {
		return Header{}, fmt.Errorf("reading id word: %w", err)
	}
	if h.LengthWord, err = r.ReadUint32(); err != nil {
		return Header{}, fmt.Errorf("reading length word: %w", err)
	}
	if h.IsExtended() {
		if h.ExtensionWord, err = r.ReadUint32(); err != nil {
			return Header{}, fmt.Errorf("reading extension word: %w", err)
		}
	}
	return h, nil
}

// Decode decodes a header from the start of buf.
func Decode(buf []byte) (Header, error) {
	if len(buf) < Size {
		return Header{}, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidHeader, Size, len(buf))
	}
	h := Header{
		TypeVersionWord: binary.LittleEndian.Uint32(buf[0:4]),
		IDWord:          binary.LittleEndian.Uint32(buf[4:8]),
		LengthWord:      binary.LittleEndian.Uint32(buf[8:12]),
	}
	if h.IsExtended() {
		if len(buf) < ExtendedSize {
			return Header{}, fmt.Errorf("%w: extended header needs %d bytes, got %d", ErrInvalidHeader, ExtendedSize, len(buf))
		}
		h.ExtensionWord = binary.LittleEndian.Uint32(buf[12:16])
	}
	return h, nil
}
