package eventio

import (
	"fmt"

	"github.com/robert-malhotra/go-eventio/internal/object"
)

// Object is one node of the object tree. It describes a region of the
// stream and does not hold its payload; payload bytes and children are read
// on demand through the File the object was decoded from.
type Object interface {
	// Name returns the record kind, "Object" for unknown type ids.
	Name() string

	// Address returns the stream offset just past the header, where the
	// payload starts.
	Address() uint64

	// Header returns the decoded header.
	Header() Header

	// HasNext reports whether a container has unread children.
	// It is always false for non-containers.
	HasNext() bool

	// ReadNextChild decodes the next child of a container.
	ReadNextChild(f *File) (Object, error)

	// ReadPayload returns the Header().Size() payload bytes verbatim.
	ReadPayload(f *File) ([]byte, error)

	String() string
}

// BaseObject implements Object for any type id. Record kinds embed it and
// add their own payload decoding.
type BaseObject struct {
	name    string
	address uint64
	header  Header
	cursor  uint64
}

// NewBaseObject returns the generic node for a header decoded at address.
func NewBaseObject(name string, address uint64, header Header) *BaseObject {
	return &BaseObject{
		name:    name,
		address: address,
		header:  header,
		cursor:  address,
	}
}

func (o *BaseObject) Name() string {
	return o.name
}

func (o *BaseObject) Address() uint64 {
	return o.address
}

func (o *BaseObject) Header() Header {
	return o.header
}

// End returns the stream offset just past the payload.
func (o *BaseObject) End() uint64 {
	return o.address + o.header.Size()
}

// Consumed returns how many payload bytes of a container have been walked.
func (o *BaseObject) Consumed() uint64 {
	return o.cursor - o.address
}

func (o *BaseObject) HasNext() bool {
	return o.header.IsContainer() && o.Consumed() < o.header.Size()
}

// ReadNextChild decodes the child at the container's cursor and advances the
// cursor past it. Children are produced strictly in stream order.
//
// A tail too short to hold a header is padding: the cursor moves to the end
// and ErrEndOfContainer is returned.
func (o *BaseObject) ReadNextChild(f *File) (Object, error) {
	if !o.header.IsContainer() {
		return nil, fmt.Errorf("%w: %s", ErrNotContainer, o)
	}
	if !o.HasNext() {
		return nil, fmt.Errorf("%w: %s", ErrEndOfContainer, o)
	}
	if pad := o.End() - o.cursor; pad < object.Size {
		f.log.Debug("skipping container padding")
		o.cursor = o.End()
		return nil, fmt.Errorf("%w: %d bytes of padding in %s", ErrEndOfContainer, pad, o)
	}

	if err := f.SeekForward(o.cursor); err != nil {
		return nil, fmt.Errorf("seeking to child of %s: %w", o, err)
	}
	child, err := f.readObject(false)
	if err != nil {
		return nil, err
	}

	ch := child.Header()
	next := o.cursor + ch.HeaderSize() + ch.Size()
	if next > o.End() {
		return nil, fmt.Errorf("%w: child %s ends at %d, past container end %d", ErrTruncatedData, child, next, o.End())
	}
	o.cursor = next
	return child, nil
}

func (o *BaseObject) ReadPayload(f *File) ([]byte, error) {
	if err := f.SeekForward(o.address); err != nil {
		return nil, fmt.Errorf("seeking to payload of %s: %w", o, err)
	}
	buf, err := f.ReadBytes(o.header.Size())
	if err != nil {
		return nil, fmt.Errorf("reading payload of %s: %w", o, err)
	}
	return buf, nil
}

// String renders the object as
// Name[type, version](address=A, size=S, id=I, is_container=B).
func (o *BaseObject) String() string {
	return fmt.Sprintf("%s[%d, %d](address=%d, size=%d, id=%d, is_container=%t)",
		o.name, o.header.Type(), o.header.Version(),
		o.address, o.header.Size(), o.header.ID(), o.header.IsContainer())
}
