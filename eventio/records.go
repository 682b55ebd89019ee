package eventio

import "fmt"

// Known type ids.
const (
	TypeHistory     = 70
	TypeCommandLine = 71
	TypeConfigLine  = 72
)

// StringRecord is implemented by records whose payload is a timestamp
// followed by a length-prefixed string.
type StringRecord interface {
	Object
	Parse(f *File) (timestamp int32, text string, err error)
}

// TimestampedString decodes a payload made of a signed 32-bit timestamp and
// a length-prefixed string.
type TimestampedString struct {
	*BaseObject
}

// Parse reads the timestamp and string from the start of the payload.
// Fields that would extend past the payload fail with ErrTruncatedData
// before any byte beyond the object is consumed.
func (o *TimestampedString) Parse(f *File) (int32, string, error) {
	const prefix = 4 + 2
	if o.header.Size() < prefix {
		return 0, "", fmt.Errorf("%w: payload of %s is shorter than %d bytes", ErrTruncatedData, o, prefix)
	}
	if err := f.SeekForward(o.address); err != nil {
		return 0, "", fmt.Errorf("seeking to %s: %w", o, err)
	}
	ts, err := f.ReadInt32()
	if err != nil {
		return 0, "", fmt.Errorf("reading timestamp of %s: %w", o, err)
	}
	n, err := f.ReadUint16()
	if err != nil {
		return 0, "", fmt.Errorf("reading text length of %s: %w", o, err)
	}
	if prefix+uint64(n) > o.header.Size() {
		return 0, "", fmt.Errorf("%w: text of %d bytes overruns payload of %s", ErrTruncatedData, n, o)
	}
	text, err := f.ReadBytes(uint64(n))
	if err != nil {
		return 0, "", fmt.Errorf("reading text of %s: %w", o, err)
	}
	return ts, string(text), nil
}

// History is the container of the command and config lines a file was
// produced with.
type History struct {
	*BaseObject
}

// CommandLine holds one command line of the producing program.
type CommandLine struct {
	TimestampedString
}

// ConfigLine holds one configuration line of the producing program.
type ConfigLine struct {
	TimestampedString
}
