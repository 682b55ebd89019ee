package eventiotest

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/robert-malhotra/go-eventio/internal/object"
)

// Object describes an object to encode. Its payload is Payload followed by
// the encoded Children and Padding zero bytes.
type Object struct {
	Type      uint32
	Version   uint32
	ID        uint32
	User      bool
	Extended  bool // force the 16-byte header even for small sizes
	Container bool
	Payload   []byte
	Children  []Object
	Padding   int
}

// Header builds a header from its fields. The extended flag is set when
// extended is true or size does not fit in 30 bits.
func Header(typ, version, id uint32, size uint64, container, user, extended bool) object.Header {
	h := object.Header{
		TypeVersionWord: (typ & 0xFFFF) | (version&0xFFF)<<20,
		IDWord:          id,
		LengthWord:      uint32(size & (1<<30 - 1)),
	}
	if user {
		h.TypeVersionWord |= 1 << 16
	}
	if container {
		h.LengthWord |= 1 << 30
	}
	if extended || size>>30 != 0 {
		h.TypeVersionWord |= 1 << 17
		h.ExtensionWord = uint32(size>>30) & 0xFFF
	}
	return h
}

// EncodeHeader returns the wire form of h, 12 or 16 bytes long.
func EncodeHeader(h object.Header) []byte {
	w := &Writer{}
	w.WriteUint32(h.TypeVersionWord).WriteUint32(h.IDWord).WriteUint32(h.LengthWord)
	if h.IsExtended() {
		w.WriteUint32(h.ExtensionWord)
	}
	return w.Bytes()
}

// Encode returns o as a nested object: header then payload, no marker.
func Encode(o Object) []byte {
	var body bytes.Buffer
	body.Write(o.Payload)
	for _, c := range o.Children {
		body.Write(Encode(c))
	}
	body.Write(make([]byte, o.Padding))

	container := o.Container || len(o.Children) > 0
	h := Header(o.Type, o.Version, o.ID, uint64(body.Len()), container, o.User, o.Extended)

	w := &Writer{}
	w.WriteBytes(EncodeHeader(h)).WriteBytes(body.Bytes())
	return w.Bytes()
}

// Stream returns objs as top-level objects, each preceded by the sync marker.
func Stream(objs ...Object) []byte {
	w := &Writer{}
	for _, o := range objs {
		w.WriteUint32(object.SyncMarker).WriteBytes(Encode(o))
	}
	return w.Bytes()
}

// TimestampedString returns the payload of a timestamped string record.
func TimestampedString(ts int32, s string) []byte {
	w := &Writer{}
	w.WriteInt32(ts).WriteString(s)
	return w.Bytes()
}

// Gzip frames data as a gzip stream.
func Gzip(data []byte) []byte {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Zstd frames data as a zstd stream.
func Zstd(data []byte) []byte {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		panic(err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, make([]byte, 0, enc.MaxEncodedSize(len(data))))
}
