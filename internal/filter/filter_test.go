package filter_test

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-eventio/internal/eventiotest"
	"github.com/robert-malhotra/go-eventio/internal/filter"
)

func samplePayload() []byte {
	return eventiotest.Stream(eventiotest.Object{
		Type:    71,
		Payload: eventiotest.TimestampedString(100, "abc"),
	})
}

func TestWrap(t *testing.T) {
	raw := samplePayload()

	tests := []struct {
		name   string
		input  []byte
		format filter.Format
	}{
		{"raw", raw, filter.FormatRaw},
		{"gzip", eventiotest.Gzip(raw), filter.FormatGzip},
		{"zstd", eventiotest.Zstd(raw), filter.FormatZstd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := filter.Wrap(bytes.NewReader(tt.input), 4096, filter.Registry)
			require.NoError(t, err)
			defer s.Close()

			assert.Equal(t, tt.format, s.Format())
			got, err := io.ReadAll(s)
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}
}

func TestWrapMultiMemberGzip(t *testing.T) {
	a, b := []byte("first member "), []byte("second member")
	input := append(eventiotest.Gzip(a), eventiotest.Gzip(b)...)

	s, err := filter.Wrap(bytes.NewReader(input), 4096, filter.Registry)
	require.NoError(t, err)
	defer s.Close()

	got, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, append(a, b...), got)
}

func TestWrapShortTransports(t *testing.T) {
	for _, input := range [][]byte{nil, {0x1f}, {0x28, 0xb5, 0x2f}} {
		s, err := filter.Wrap(bytes.NewReader(input), 4096, filter.Registry)
		require.NoError(t, err)
		assert.Equal(t, filter.FormatRaw, s.Format())

		got, err := io.ReadAll(s)
		require.NoError(t, err)
		assert.Equal(t, len(input), len(got))
		require.NoError(t, s.Close())
	}
}

func TestWrapWithoutRegistry(t *testing.T) {
	input := eventiotest.Gzip(samplePayload())

	s, err := filter.Wrap(bytes.NewReader(input), 4096, nil)
	require.NoError(t, err)
	assert.Equal(t, filter.FormatRaw, s.Format())

	got, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestWrapCorruptGzipHeader(t *testing.T) {
	// gzip magic followed by an invalid compression method
	input := []byte{0x1f, 0x8b, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

	_, err := filter.Wrap(bytes.NewReader(input), 4096, filter.Registry)
	require.Error(t, err)
}

func TestDetectDoesNotConsume(t *testing.T) {
	input := eventiotest.Zstd([]byte("payload"))
	br := bufio.NewReader(bytes.NewReader(input))

	f, err := filter.Detect(br, filter.Registry)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, filter.FormatZstd, f.Format())

	rest, err := io.ReadAll(br)
	require.NoError(t, err)
	assert.Equal(t, input, rest)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "raw", filter.FormatRaw.String())
	assert.Equal(t, "gzip", filter.FormatGzip.String())
	assert.Equal(t, "zstd", filter.FormatZstd.String())
	assert.Equal(t, "Format(9)", filter.Format(9).String())
}
