// Package httphandler is the HTTP driving adapter that serves the REST API.
package httphandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/trentschlar/DigitalAccessibility/internal/application"
	"github.com/trentschlar/DigitalAccessibility/internal/contrast"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/store"
)

// maxRestoreBytes caps uploaded backup documents. The full 68-layer store
// with generous notes serializes well under 1MB.
const maxRestoreBytes = 8 << 20

// Handler is the HTTP driving adapter.
type Handler struct {
	tracker *application.TrackerService
	stats   *application.StatsService
	logger  *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(tracker *application.TrackerService, stats *application.StatsService, logger *slog.Logger) *Handler {
	return &Handler{
		tracker: tracker,
		stats:   stats,
		logger:  logger,
	}
}

// RegisterAPIRoutes registers all REST API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/tools/{tool}/records", h.ListRecords)
	mux.HandleFunc("GET /api/v1/tools/{tool}/records/{key}", h.GetRecord)
	mux.HandleFunc("PATCH /api/v1/tools/{tool}/records/{key}", h.PatchRecord)
	mux.HandleFunc("GET /api/v1/tools/{tool}/stats", h.GetStats)
	mux.HandleFunc("GET /api/v1/tools/{tool}/export/csv", h.ExportCSV)
	mux.HandleFunc("GET /api/v1/tools/{tool}/backup", h.ExportBackup)
	mux.HandleFunc("POST /api/v1/tools/{tool}/restore", h.Restore)
	mux.HandleFunc("GET /api/v1/contrast", h.Contrast)
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// pathTool resolves the {tool} path segment. Writes a 404 and returns false
// for unknown tools.
func pathTool(w http.ResponseWriter, r *http.Request) (model.Tool, bool) {
	tool, ok := model.ParseTool(r.PathValue("tool"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown tool")
		return "", false
	}
	return tool, true
}

// ListRecords returns a tool's records in insertion order.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	tool, ok := pathTool(w, r)
	if !ok {
		return
	}

	records, err := h.tracker.Records(tool)
	if err != nil {
		h.logger.Error("failed to list records", "tool", tool, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toRecordResponse(rec))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetRecord returns a single record by its store key.
func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	tool, ok := pathTool(w, r)
	if !ok {
		return
	}

	rec, err := h.tracker.Get(tool, r.PathValue("key"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to get record", "tool", tool, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// PatchRecord merges the provided fields into a record. Fields absent from
// the body are left untouched.
func (h *Handler) PatchRecord(w http.ResponseWriter, r *http.Request) {
	tool, ok := pathTool(w, r)
	if !ok {
		return
	}

	var patch model.RecordPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.tracker.Update(tool, r.PathValue("key"), patch)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
		return
	case errors.Is(err, store.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.logger.Error("failed to patch record", "tool", tool, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// GetStats returns the derived stats panel for a tool.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	tool, ok := pathTool(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(h.stats.Latest(tool)))
}

// ExportCSV streams the CSV report as a download.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	tool, ok := pathTool(w, r)
	if !ok {
		return
	}

	result, err := h.tracker.ExportCSV(tool)
	if err != nil {
		h.logger.Error("csv export failed", "tool", tool, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	_, _ = w.Write(result.Content)
}

// ExportBackup streams the JSON backup document as a download.
func (h *Handler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	tool, ok := pathTool(w, r)
	if !ok {
		return
	}

	result, err := h.tracker.ExportBackup(tool)
	if err != nil {
		h.logger.Error("backup export failed", "tool", tool, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	_, _ = w.Write(result.Content)
}

// Restore replaces a tool's store from an uploaded backup document. A
// malformed document leaves the store untouched and returns 400.
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	tool, ok := pathTool(w, r)
	if !ok {
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRestoreBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	n, err := h.tracker.Restore(tool, data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, RestoreResponse{Records: n})
}

// Contrast computes the WCAG contrast ratio between the fg and bg query colors.
func (h *Handler) Contrast(w http.ResponseWriter, r *http.Request) {
	fg, err := contrast.ParseHex(r.URL.Query().Get("fg"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid fg color")
		return
	}
	bg, err := contrast.ParseHex(r.URL.Query().Get("bg"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bg color")
		return
	}

	ratio := contrast.Ratio(fg, bg)
	writeJSON(w, http.StatusOK, ContrastResponse{
		Foreground: fg.Hex(),
		Background: bg.Hex(),
		Ratio:      math.Round(ratio*100) / 100,
		Rating:     contrast.Rating(ratio),
	})
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
