package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/trentschlar/DigitalAccessibility/internal/application"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// RecordResponse wraps a record with its store key. The record itself
// serializes with the backup-file field names, so API consumers and backup
// files read the same shape.
type RecordResponse struct {
	Key string `json:"key"`
	model.LayerRecord
}

func toRecordResponse(r model.LayerRecord) RecordResponse {
	return RecordResponse{Key: r.Key(), LayerRecord: r}
}

// StatsResponse is the JSON representation of the derived stats panel.
type StatsResponse struct {
	Tool               string         `json:"tool"`
	Total              int            `json:"total"`
	ByStatus           map[string]int `json:"byStatus"`
	CompletionPct      float64        `json:"completionPct"`
	WithColorIssues    int            `json:"withColorIssues"`
	WithContrastIssues int            `json:"withContrastIssues"`
	WithSymbolIssues   int            `json:"withSymbolIssues"`
	WithLabelIssues    int            `json:"withLabelIssues"`
	WithPopupIssues    int            `json:"withPopupIssues"`
	WithAnyIssue       int            `json:"withAnyIssue"`
}

func toStatsResponse(s application.Stats) StatsResponse {
	return StatsResponse{
		Tool:               string(s.Tool),
		Total:              s.Total,
		ByStatus:           s.ByStatus,
		CompletionPct:      s.CompletionPct,
		WithColorIssues:    s.WithColorIssues,
		WithContrastIssues: s.WithContrastIssues,
		WithSymbolIssues:   s.WithSymbolIssues,
		WithLabelIssues:    s.WithLabelIssues,
		WithPopupIssues:    s.WithPopupIssues,
		WithAnyIssue:       s.WithAnyIssue,
	}
}

// ContrastResponse is the JSON representation of a contrast check.
type ContrastResponse struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	Rating     string  `json:"rating"`
}

// RestoreResponse reports the outcome of a backup restore.
type RestoreResponse struct {
	Records int `json:"records"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
