// Package object decodes eventio object headers.
//
// Every eventio object starts with a packed header of three or four
// little-endian 32-bit words. The header carries the object's type id,
// version, id, container flag and payload length. It never includes the
// payload itself.
//
// # Header Layouts
//
// Two layouts exist:
//
//   - Ordinary (12 bytes): the length is the low 30 bits of the length word,
//     so payloads are limited to 1 GiB.
//
//   - Extended (16 bytes, flag bit 17 of the type/version word): a fourth
//     word supplies 12 more length bits, allowing payloads up to 4 TiB.
//
// # Top-level Objects
//
// Objects at the outermost level of a stream are each preceded by the
// 4-byte [SyncMarker]. Nested objects are not.
//
// # Usage
//
// Decode a header from the current position of a reader:
//
//	h, err := object.Read(reader)
//	fmt.Println(h.Type(), h.Version(), h.Size(), h.IsContainer())
//
// # Key Types
//
//   - [Header]: packed header words and their bit accessors
//   - [Read]: decodes a header from a stream
//   - [Decode]: decodes a header from a byte slice
//
// # Errors
//
//   - [ErrInvalidHeader]: not enough bytes for a header
//   - [ErrMissingSyncMarker]: a top-level object is not aligned on a marker
package object
