package ingest

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a drop directory for extractor CSVs and hands each new or
// rewritten file to the callback. Events are debounced because the extractor
// writes its CSV incrementally.
type Watcher struct {
	dir      string
	debounce time.Duration
	onCSV    func(path string)
	logger   *slog.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewWatcher creates a watcher for dir. onCSV is called with the absolute
// path of each settled CSV file.
func NewWatcher(dir string, onCSV func(path string), logger *slog.Logger) *Watcher {
	return &Watcher{
		dir:      dir,
		debounce: 2 * time.Second,
		onCSV:    onCSV,
		logger:   logger,
		pending:  make(map[string]*time.Timer),
	}
}

// Run watches until the context is cancelled. Watch errors are logged and
// the loop keeps going; a broken watcher degrades to manual ingest only.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return err
	}
	w.logger.Info("watching for extractor csvs", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if strings.ToLower(filepath.Ext(event.Name)) != ".csv" {
				continue
			}
			w.schedule(event.Name)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

// schedule arms (or re-arms) the debounce timer for a path.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()
		w.onCSV(path)
	})
}
