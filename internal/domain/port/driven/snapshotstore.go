// Package driven defines the port interfaces implemented by driven adapters.
package driven

import (
	"context"
	"time"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

// SnapshotStore persists the serialized record store, one slot per tool.
// This is the auto-save target: Save runs after every mutation and replaces
// the slot wholesale.
type SnapshotStore interface {
	// Save stores the serialized record set for the tool.
	Save(ctx context.Context, tool model.Tool, data []byte, savedAt time.Time) error

	// Load returns the most recent snapshot for the tool, or nil data and
	// no error when the slot has never been written.
	Load(ctx context.Context, tool model.Tool) (data []byte, savedAt time.Time, err error)
}
