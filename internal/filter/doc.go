// Package filter detects and removes the transport compression of eventio streams.
//
// Eventio files are commonly stored gzip or zstd compressed. The framing is
// recognized from the first bytes of the transport, before any object header
// is parsed, and the matching decompressor is layered over it. The result is
// a one-pass reader of the logical stream; offsets used by the rest of the
// module are offsets into that decompressed stream.
//
// # Supported Framings
//
//   - gzip (magic 1F 8B): [Gzip], backed by klauspost/compress/gzip.
//     Multi-member files are read as one stream.
//
//   - zstd (magic 28 B5 2F FD): [Zstd], backed by klauspost/compress/zstd.
//
// Anything else is passed through unmodified as [FormatRaw].
//
// # Usage
//
//	s, err := filter.Wrap(file, 64<<10, filter.Registry)
//	defer s.Close()
//	fmt.Println(s.Format())
//
// # Key Types
//
//   - [Filter]: a decompression filter identified by its magic bytes
//   - [Registry]: the filters tried when sniffing
//   - [Stream]: a transport with its framing removed
package filter
