package filter

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Gzip removes gzip framing. Concatenated members are read as one stream.
type Gzip struct{}

func (Gzip) Format() Format {
	return FormatGzip
}

func (Gzip) Magic() []byte {
	return gzipMagic
}

func (Gzip) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zr, nil
}
