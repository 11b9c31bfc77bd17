package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SnapshotStore = (*SnapshotRepo)(nil)

// SnapshotRepo is the SQLite implementation of the SnapshotStore port.
// One row per tool; Save replaces the row wholesale.
type SnapshotRepo struct {
	db *DB
}

// NewSnapshotRepo creates a new SnapshotRepo backed by the given DB.
func NewSnapshotRepo(db *DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Save stores the serialized record set for the tool, overwriting any
// previous snapshot.
func (r *SnapshotRepo) Save(ctx context.Context, tool model.Tool, data []byte, savedAt time.Time) error {
	const query = `
		INSERT INTO snapshots (tool, data, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(tool) DO UPDATE SET
			data = excluded.data,
			saved_at = excluded.saved_at
	`

	_, err := r.db.Writer.ExecContext(ctx, query, string(tool), string(data), savedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save snapshot for %s: %w", tool, err)
	}

	return nil
}

// Load returns the snapshot for the tool. A tool that has never been saved
// returns nil data and no error.
func (r *SnapshotRepo) Load(ctx context.Context, tool model.Tool) ([]byte, time.Time, error) {
	const query = `SELECT data, saved_at FROM snapshots WHERE tool = ?`

	var data, savedAt string
	err := r.db.Reader.QueryRowContext(ctx, query, string(tool)).Scan(&data, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("load snapshot for %s: %w", tool, err)
	}

	ts, err := time.Parse(time.RFC3339, savedAt)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parse saved_at: %w", err)
	}

	return []byte(data), ts, nil
}
