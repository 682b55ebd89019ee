package object_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-eventio/internal/binary"
	"github.com/robert-malhotra/go-eventio/internal/eventiotest"
	"github.com/robert-malhotra/go-eventio/internal/object"
)

func TestHeaderAccessors(t *testing.T) {
	h := object.Header{
		// version 0xABC, extended, user, type 0x1234
		TypeVersionWord: 0xABC<<20 | 1<<17 | 1<<16 | 0x1234,
		IDWord:          0xDEADBEEF,
		LengthWord:      1<<30 | 0x123,
		ExtensionWord:   0x5,
	}

	assert.Equal(t, uint32(0x1234), h.Type())
	assert.Equal(t, uint32(0xABC), h.Version())
	assert.True(t, h.IsUserBitSet())
	assert.True(t, h.IsExtended())
	assert.True(t, h.IsContainer())
	assert.Equal(t, uint32(0xDEADBEEF), h.ID())
	assert.Equal(t, uint64(16), h.HeaderSize())
	assert.Equal(t, uint64(0x5)<<30+0x123, h.Size())
}

func TestHeaderIgnoresReservedBits(t *testing.T) {
	h := object.Header{
		// bits 18 and 19 are reserved
		TypeVersionWord: 3<<18 | 71,
		// bit 31 is reserved and must not leak into the length
		LengthWord: 1<<31 | 9,
		// only 12 extension bits count, and only when extended
		ExtensionWord: 0xFFFFFFFF,
	}

	assert.Equal(t, uint32(71), h.Type())
	assert.Equal(t, uint32(0), h.Version())
	assert.False(t, h.IsUserBitSet())
	assert.False(t, h.IsExtended())
	assert.False(t, h.IsContainer())
	assert.Equal(t, uint64(12), h.HeaderSize())
	assert.Equal(t, uint64(9), h.Size())

	h.TypeVersionWord |= 1 << 17
	assert.Equal(t, uint64(0xFFF)<<30+9, h.Size())
}

func TestHeaderSizeRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		h := object.Header{
			TypeVersionWord: rng.Uint32(),
			IDWord:          rng.Uint32(),
			LengthWord:      rng.Uint32(),
			ExtensionWord:   rng.Uint32(),
		}
		require.Less(t, h.Size(), object.MaxSize)
		if h.IsExtended() {
			require.Equal(t, uint64(object.ExtendedSize), h.HeaderSize())
		} else {
			require.Equal(t, uint64(object.Size), h.HeaderSize())
			require.Less(t, h.Size(), uint64(1)<<30)
		}
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name     string
		header   object.Header
		wantSize uint64
		wantPos  uint64
	}{
		{"plain", eventiotest.Header(71, 0, 7, 9, false, false, false), 9, 12},
		{"container", eventiotest.Header(2000, 1, 1, 0, true, false, false), 0, 12},
		{"forced extended", eventiotest.Header(70, 1, 2, 100, false, false, true), 100, 16},
		{"large", eventiotest.Header(1, 0, 3, 5<<30+17, true, true, false), 5<<30 + 17, 16},
		{"largest", eventiotest.Header(1, 0, 4, object.MaxSize-1, false, false, false), object.MaxSize - 1, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append(eventiotest.EncodeHeader(tt.header), 0xAA, 0xBB)
			r := binary.NewReader(bytes.NewReader(data), binary.DefaultConfig())

			h, err := object.Read(r)
			require.NoError(t, err)
			assert.Equal(t, tt.header, h)
			assert.Equal(t, tt.wantSize, h.Size())
			assert.Equal(t, tt.wantPos, r.Pos())
			assert.Equal(t, tt.wantPos, h.HeaderSize())
		})
	}
}

func TestReadTruncated(t *testing.T) {
	full := eventiotest.EncodeHeader(eventiotest.Header(1, 0, 0, 1, false, false, true))
	for n := 0; n < len(full); n++ {
		r := binary.NewReader(bytes.NewReader(full[:n]), binary.DefaultConfig())
		_, err := object.Read(r)
		require.ErrorIs(t, err, binary.ErrTruncated, "prefix of %d bytes", n)
	}
}

func TestDecode(t *testing.T) {
	h := eventiotest.Header(72, 3, 11, 3<<30, false, false, false)
	got, err := object.Decode(eventiotest.EncodeHeader(h))
	require.NoError(t, err)
	assert.Equal(t, h, got)

	plain := eventiotest.Header(72, 3, 11, 40, false, false, false)
	got, err = object.Decode(eventiotest.EncodeHeader(plain))
	require.NoError(t, err)
	assert.Equal(t, plain, got)

	_, err = object.Decode(make([]byte, 11))
	require.ErrorIs(t, err, object.ErrInvalidHeader)

	_, err = object.Decode(eventiotest.EncodeHeader(h)[:14])
	require.ErrorIs(t, err, object.ErrInvalidHeader)
}

func TestReadSyncMarker(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"marker", []byte{0x37, 0x8A, 0x1F, 0xD4}, nil},
		{"byte swapped", []byte{0xD4, 0x1F, 0x8A, 0x37}, object.ErrMissingSyncMarker},
		{"zeros", []byte{0, 0, 0, 0}, object.ErrMissingSyncMarker},
		{"short", []byte{0x37, 0x8A}, binary.ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := binary.NewReader(bytes.NewReader(tt.data), binary.DefaultConfig())
			err := object.ReadSyncMarker(r)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, uint64(4), r.Pos())
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
