package filter

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdFrameMagic contains first 4 bytes of any zstd frame
// https://github.com/klauspost/compress/blob/master/zstd/framedec.go#L58 .
var zstdFrameMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Zstd removes zstd framing.
type Zstd struct{}

func (Zstd) Format() Format {
	return FormatZstd
}

func (Zstd) Magic() []byte {
	return zstdFrameMagic
}

// NewReader decodes synchronously, without background goroutines.
func (Zstd) NewReader(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}
