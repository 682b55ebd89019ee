// Package eventiotest builds eventio byte streams for tests.
package eventiotest

import (
	"bytes"
	"encoding/binary"
)

// Writer appends little-endian eventio primitives to an in-memory buffer.
type Writer struct {
	buf bytes.Buffer
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// WriteBytes appends data verbatim.
func (w *Writer) WriteBytes(data []byte) *Writer {
	w.buf.Write(data)
	return w
}

// WriteUint16 appends an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) *Writer {
	w.buf.Write(binary.LittleEndian.AppendUint16(nil, v))
	return w
}

// WriteUint32 appends an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) *Writer {
	w.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
	return w
}

// WriteInt32 appends a signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) *Writer {
	return w.WriteUint32(uint32(v))
}

// WriteString appends a string prefixed by its 16-bit length.
func (w *Writer) WriteString(s string) *Writer {
	w.WriteUint16(uint16(len(s)))
	w.buf.WriteString(s)
	return w
}

// WriteZeros appends n zero bytes.
func (w *Writer) WriteZeros(n int) *Writer {
	w.buf.Write(make([]byte, n))
	return w
}
