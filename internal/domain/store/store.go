// Package store holds the in-memory record collection that every adapter
// reads from and writes through. One Store instance exists per tool; the
// composition root owns its lifecycle and injects it where needed.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

var (
	// ErrNotFound is returned when a key has no record. Records are only
	// created by seeding or a wholesale replace, never by Set.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidStatus is returned when a patch carries a status outside
	// the tool's enum.
	ErrInvalidStatus = errors.New("invalid status")
)

// Listener observes store mutations. Listeners run synchronously after every
// mutation with a snapshot of the full record set in insertion order, so an
// auto-save or stats recompute never sees a half-applied change.
type Listener func(tool model.Tool, records []model.LayerRecord)

// Store is an ordered collection of LayerRecord keyed by identity.
type Store struct {
	tool model.Tool

	mu        sync.RWMutex
	order     []string
	records   map[string]model.LayerRecord
	listeners []Listener
}

// New creates an empty store for the given tool.
func New(tool model.Tool) *Store {
	return &Store{
		tool:    tool,
		records: make(map[string]model.LayerRecord),
	}
}

// Tool returns the tool this store belongs to.
func (s *Store) Tool() model.Tool {
	return s.tool
}

// Subscribe registers a mutation listener. Subscribe is intended for wiring
// at startup, before the edit stream begins.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Get returns the record for key.
func (s *Store) Get(key string) (model.LayerRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[key]
	return r, ok
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// All returns every record in insertion order.
func (s *Store) All() []model.LayerRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Set merges the patch into the record at key and notifies listeners.
// A patch with a status outside the tool's enum is rejected whole; the
// record is left unchanged.
func (s *Store) Set(key string, patch model.RecordPatch) (model.LayerRecord, error) {
	s.mu.Lock()
	r, ok := s.records[key]
	if !ok {
		s.mu.Unlock()
		return model.LayerRecord{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if patch.Status != nil && !model.ValidStatus(s.tool, *patch.Status) {
		s.mu.Unlock()
		return model.LayerRecord{}, fmt.Errorf("%w: %q for tool %s", ErrInvalidStatus, *patch.Status, s.tool)
	}

	patch.Apply(&r)
	s.records[key] = r
	snapshot := s.snapshotLocked()
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(s.tool, snapshot)
	}
	return r, nil
}

// ReplaceAll swaps the entire record set, preserving the order of the given
// slice, and notifies listeners. Later duplicates of a key win.
func (s *Store) ReplaceAll(records []model.LayerRecord) {
	s.mu.Lock()
	s.order = s.order[:0]
	s.records = make(map[string]model.LayerRecord, len(records))
	for _, r := range records {
		key := r.Key()
		if _, exists := s.records[key]; !exists {
			s.order = append(s.order, key)
		}
		s.records[key] = r
	}
	snapshot := s.snapshotLocked()
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(s.tool, snapshot)
	}
}

// Seed loads records without notifying listeners. Used at startup before
// auto-save is subscribed, so seeding never overwrites a newer snapshot.
func (s *Store) Seed(records []model.LayerRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = s.order[:0]
	s.records = make(map[string]model.LayerRecord, len(records))
	for _, r := range records {
		key := r.Key()
		if _, exists := s.records[key]; !exists {
			s.order = append(s.order, key)
		}
		s.records[key] = r
	}
}

func (s *Store) snapshotLocked() []model.LayerRecord {
	out := make([]model.LayerRecord, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.records[key])
	}
	return out
}
