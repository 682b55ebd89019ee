package eventio

import (
	"errors"

	"github.com/robert-malhotra/go-eventio/internal/binary"
	"github.com/robert-malhotra/go-eventio/internal/object"
)

// Common errors
var (
	ErrOpen              = errors.New("cannot open eventio stream")
	ErrMissingSyncMarker = object.ErrMissingSyncMarker
	ErrTruncatedData     = binary.ErrTruncated
	ErrInvalidSeek       = binary.ErrInvalidSeek
	ErrNotContainer      = errors.New("object is not a container")
	ErrEndOfContainer    = errors.New("no objects left in container")
	ErrClosed            = errors.New("file is closed")
)
