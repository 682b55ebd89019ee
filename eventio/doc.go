// Package eventio reads eventio files: streams of length-prefixed, possibly
// nested objects written by scientific instrument software.
//
// A file is a sequence of top-level objects, each preceded by a 4-byte sync
// marker. Every object starts with a 12- or 16-byte header giving its type
// id, version, id, payload size and whether the payload is itself a sequence
// of child objects (a container). Files may be gzip or zstd compressed; the
// framing is detected and removed when the file is opened.
//
// # Reading
//
// The stream is read strictly forward, so a compressed file is never
// decompressed more than once and never held in memory. Objects are small
// descriptors of a stream region; their payload and children are read on
// demand through the [File] they came from.
//
//	f, err := eventio.Open("run.eventio.zst")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	for {
//	    obj, err := f.NextTopLevel()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    for obj.HasNext() {
//	        child, err := obj.ReadNextChild(f)
//	        ...
//	    }
//	}
//
// Or visit the whole tree:
//
//	err := eventio.Walk(f, func(obj eventio.Object, depth int) error {
//	    if rec, ok := obj.(eventio.StringRecord); ok {
//	        ts, text, err := rec.Parse(f)
//	        ...
//	    }
//	    return nil
//	})
//
// Because the position never moves backwards, an object's payload must be
// read before anything that follows it in the stream. Seeking backwards fails
// with [ErrInvalidSeek].
//
// # Record Kinds
//
// A [Registry] turns each header into the most specific [Object] known for
// its type id: [History] (70), [CommandLine] (71) and [ConfigLine] (72) by
// default, a plain [BaseObject] otherwise. Further kinds are added with
// [Registry.Register] and passed to [Open] with [WithRegistry].
//
// # Errors
//
//   - [ErrOpen]: the transport could not be opened or its framing is corrupt
//   - [ErrMissingSyncMarker]: a top-level object is not aligned on a marker
//   - [ErrTruncatedData]: the stream ended inside a field or object
//   - [ErrInvalidSeek]: an attempt to move the position backwards
//   - [ErrNotContainer], [ErrEndOfContainer]: child traversal misuse
//
// A clean end of stream is not an error: [File.HasNextTopLevel] returns
// false and [File.NextTopLevel] returns io.EOF.
package eventio
