package casefile

import (
	"context"
	"github.com/myrjola/thejury/internal/errors"
)

// ErrCapacityExceeded means the serialized history no longer fits in the
// backing store. The store reacts by degrading the write (see Store.Append),
// so this error normally stays internal.
var ErrCapacityExceeded = errors.NewSentinel("record store capacity exceeded")

// RecordStore is the durable storage consumed by the Store: a single keyed
// record holding the serialized case history. Save must be atomic from the
// caller's perspective: it either fully replaces the record or leaves it
// unchanged.
type RecordStore interface {
	// Load returns the stored record, or nil when none has been saved yet.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored record.
	Save(ctx context.Context, data []byte) error
}
