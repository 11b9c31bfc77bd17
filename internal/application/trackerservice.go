// Package application wires the record stores to persistence and exposes the
// operations the driving adapters call.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/trentschlar/DigitalAccessibility/internal/catalog"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/port/driven"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/store"
	"github.com/trentschlar/DigitalAccessibility/internal/export"
	"github.com/trentschlar/DigitalAccessibility/internal/ingest"
)

// ErrUnknownTool is returned for tool names outside {baseline, remediation}.
var ErrUnknownTool = fmt.Errorf("unknown tool")

const autoSaveTimeout = 5 * time.Second

// TrackerService owns one record store per tool and coordinates seeding,
// auto-save, export, and restore. It depends only on the SnapshotStore port.
type TrackerService struct {
	stores    map[model.Tool]*store.Store
	snapshots driven.SnapshotStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewTrackerService creates the service with one empty store per tool.
func NewTrackerService(snapshots driven.SnapshotStore, logger *slog.Logger) *TrackerService {
	return &TrackerService{
		stores: map[model.Tool]*store.Store{
			model.ToolBaseline:    store.New(model.ToolBaseline),
			model.ToolRemediation: store.New(model.ToolRemediation),
		},
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
	}
}

// Init seeds each store from the catalog, overlays the latest auto-save
// snapshot when one exists, and then subscribes auto-save. A corrupt
// snapshot is logged and skipped; the catalog seed remains in effect.
func (s *TrackerService) Init(ctx context.Context, cat *catalog.Catalog) error {
	for tool, st := range s.stores {
		st.Seed(cat.Records(tool))

		data, savedAt, err := s.snapshots.Load(ctx, tool)
		if err != nil {
			return fmt.Errorf("load %s snapshot: %w", tool, err)
		}
		if data != nil {
			doc, err := export.DecodeBackup(tool, data)
			if err != nil {
				s.logger.Error("ignoring corrupt auto-save snapshot", "tool", tool, "error", err)
			} else {
				st.Seed(doc.Records)
				s.logger.Info("restored auto-save snapshot", "tool", tool, "saved_at", savedAt, "records", len(doc.Records))
			}
		}

		st.Subscribe(s.autoSave)
	}
	return nil
}

// autoSave persists the mutated store. Best-effort: a failed save is logged
// and swallowed, so an unavailable database degrades to manual backups.
func (s *TrackerService) autoSave(tool model.Tool, records []model.LayerRecord) {
	now := s.now()
	data, err := export.EncodeBackup(tool, records, now)
	if err != nil {
		s.logger.Error("auto-save encode failed", "tool", tool, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), autoSaveTimeout)
	defer cancel()

	if err := s.snapshots.Save(ctx, tool, data, now); err != nil {
		s.logger.Error("auto-save failed, use manual backups", "tool", tool, "error", err)
	}
}

// Store returns the record store for a tool.
func (s *TrackerService) Store(tool model.Tool) (*store.Store, error) {
	st, ok := s.stores[tool]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}
	return st, nil
}

// Records returns every record for a tool in insertion order.
func (s *TrackerService) Records(tool model.Tool) ([]model.LayerRecord, error) {
	st, err := s.Store(tool)
	if err != nil {
		return nil, err
	}
	return st.All(), nil
}

// Get returns a single record by key.
func (s *TrackerService) Get(tool model.Tool, key string) (model.LayerRecord, error) {
	st, err := s.Store(tool)
	if err != nil {
		return model.LayerRecord{}, err
	}
	r, ok := st.Get(key)
	if !ok {
		return model.LayerRecord{}, fmt.Errorf("%w: %q", store.ErrNotFound, key)
	}
	return r, nil
}

// Update merges a patch into the record at key.
func (s *TrackerService) Update(tool model.Tool, key string, patch model.RecordPatch) (model.LayerRecord, error) {
	st, err := s.Store(tool)
	if err != nil {
		return model.LayerRecord{}, err
	}
	return st.Set(key, patch)
}

// ExportCSV produces the date-stamped CSV report for a tool.
func (s *TrackerService) ExportCSV(tool model.Tool) (export.Result, error) {
	records, err := s.Records(tool)
	if err != nil {
		return export.Result{}, err
	}
	return export.ExportCSV(tool, records, s.now())
}

// ExportBackup produces the date-stamped JSON backup for a tool.
func (s *TrackerService) ExportBackup(tool model.Tool) (export.Result, error) {
	records, err := s.Records(tool)
	if err != nil {
		return export.Result{}, err
	}
	return export.ExportBackup(tool, records, s.now())
}

// Restore replaces a tool's store wholesale from a backup document. On any
// parse or validation error, the live store is left untouched.
func (s *TrackerService) Restore(tool model.Tool, data []byte) (int, error) {
	st, err := s.Store(tool)
	if err != nil {
		return 0, err
	}

	doc, err := export.DecodeBackup(tool, data)
	if err != nil {
		return 0, err
	}

	st.ReplaceAll(doc.Records)
	return len(doc.Records), nil
}

// IngestExtract parses an extractor CSV and merges the resulting baseline
// records into the baseline store: known layers are updated in place,
// unknown layers are appended. Returns the record count ingested.
func (s *TrackerService) IngestExtract(data []byte) (int, error) {
	rows, err := ingest.ParseExtractorCSV(data)
	if err != nil {
		return 0, err
	}

	st := s.stores[model.ToolBaseline]
	incoming := ingest.BuildRecords(rows, s.now())

	merged := st.All()
	index := make(map[string]int, len(merged))
	for i, r := range merged {
		index[r.Key()] = i
	}
	for _, r := range incoming {
		if i, ok := index[r.Key()]; ok {
			merged[i] = r
		} else {
			index[r.Key()] = len(merged)
			merged = append(merged, r)
		}
	}

	st.ReplaceAll(merged)
	return len(incoming), nil
}

// IngestExtractFile reads and ingests an extractor CSV from disk. Used by
// the drop-directory watcher and the CLI.
func (s *TrackerService) IngestExtractFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read extract %s: %w", path, err)
	}
	return s.IngestExtract(data)
}
