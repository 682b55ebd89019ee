package object

import (
	"errors"
	"fmt"

	ebinary "github.com/robert-malhotra/go-eventio/internal/binary"
)

// SyncMarker precedes every top-level object. On disk it reads 37 8A 1F D4.
const SyncMarker uint32 = 0xD41F8A37

// ErrMissingSyncMarker is returned when a top-level object does not start
// with SyncMarker.
var ErrMissingSyncMarker = errors.New("missing sync marker")

// ReadSyncMarker consumes four bytes and checks them against SyncMarker.
func ReadSyncMarker(r *ebinary.Reader) error {
	at := r.Pos()
	marker, err := r.ReadUint32()
	if err != nil {
		return fmt.Errorf("reading sync marker: %w", err)
	}
	if marker != SyncMarker {
		return fmt.Errorf("%w: got 0x%08X at offset %d", ErrMissingSyncMarker, marker, at)
	}
	return nil
}
