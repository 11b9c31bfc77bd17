// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/trentschlar/DigitalAccessibility/internal/adapter/driving/web/templates"
	"github.com/trentschlar/DigitalAccessibility/internal/application"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/store"
)

// maxUploadBytes caps the restore upload size.
const maxUploadBytes = 8 << 20

// Handler is the web GUI driving adapter that serves HTML via templ components.
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

// Overview renders the landing page with one stats card per tool.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	csrfToken(w, r)

	body := templates.Overview(
		h.stats.Latest(model.ToolBaseline),
		h.stats.Latest(model.ToolRemediation),
	)
	layout := templates.Layout("LayerAudit", body)

	if err := layout.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render overview", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// ToolPage renders the tracker table for one tool.
func (h *Handler) ToolPage(w http.ResponseWriter, r *http.Request) {
	tool, ok := model.ParseTool(r.PathValue("tool"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	token := csrfToken(w, r)

	records, err := h.tracker.Records(tool)
	if err != nil {
		h.logger.Error("failed to load records", "tool", tool, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	views := make([]templates.RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, templates.RecordView{
			Key:         rec.Key(),
			Record:      rec,
			SummaryHTML: RenderMarkdown(rec.IssuesSummary),
		})
	}

	view := templates.ToolView{
		Tool:      tool,
		Title:     pageTitle(tool),
		Statuses:  model.Statuses(tool),
		Records:   views,
		Stats:     h.stats.Latest(tool),
		CSRFToken: token,
		Error:     r.URL.Query().Get("error"),
	}

	layout := templates.Layout(view.Title, templates.ToolPage(view))
	if err := layout.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render tool page", "tool", tool, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// SaveRecord handles a record form post: every editable field is present in
// the form, so the patch sets them all. Unchecked checkboxes simply don't
// appear in the form data, which maps to false.
func (h *Handler) SaveRecord(w http.ResponseWriter, r *http.Request) {
	tool, ok := model.ParseTool(r.PathValue("tool"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !validateCSRF(r) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	key := r.PostFormValue("key")
	patch := patchFromForm(r)

	if _, err := h.tracker.Update(tool, key, patch); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, store.ErrInvalidStatus):
			http.Redirect(w, r, "/app/"+string(tool)+"?error=invalid+status", http.StatusSeeOther)
		default:
			h.logger.Error("failed to save record", "tool", tool, "key", key, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, templates.RecordAnchor(tool, key), http.StatusSeeOther)
}

// Restore handles a backup file upload and replaces the tool's store. A
// malformed file redirects back with an error banner; the store is untouched.
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	tool, ok := model.ParseTool(r.PathValue("tool"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !validateCSRF(r) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Redirect(w, r, "/app/"+string(tool)+"?error=upload+too+large+or+malformed", http.StatusSeeOther)
		return
	}

	file, _, err := r.FormFile("backup")
	if err != nil {
		http.Redirect(w, r, "/app/"+string(tool)+"?error=no+backup+file+provided", http.StatusSeeOther)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Redirect(w, r, "/app/"+string(tool)+"?error=failed+to+read+backup", http.StatusSeeOther)
		return
	}

	n, err := h.tracker.Restore(tool, data)
	if err != nil {
		h.logger.Error("restore rejected", "tool", tool, "error", err)
		http.Redirect(w, r, "/app/"+string(tool)+"?error="+restoreErrorQuery(err), http.StatusSeeOther)
		return
	}

	h.logger.Info("backup restored", "tool", tool, "records", n)
	http.Redirect(w, r, "/app/"+string(tool), http.StatusSeeOther)
}

func restoreErrorQuery(err error) string {
	return url.QueryEscape(err.Error())
}

func pageTitle(tool model.Tool) string {
	if tool == model.ToolRemediation {
		return "Layer Remediation Tracker"
	}
	return "Baseline Accessibility Audit"
}

// patchFromForm builds a full-field patch from the record form.
func patchFromForm(r *http.Request) model.RecordPatch {
	str := func(name string) *string {
		v := r.PostFormValue(name)
		return &v
	}
	flag := func(name string) *bool {
		_, present := r.PostForm[name]
		return &present
	}

	return model.RecordPatch{
		Status:  str("status"),
		Date:    str("date"),
		Auditor: str("auditor"),

		ColorIssues: flag("colorIssues"),
		ColorNotes:  str("colorNotes"),

		ContrastIssues: flag("contrastIssues"),
		ContrastNotes:  str("contrastNotes"),

		SymbolIssues: flag("symbolIssues"),
		SymbolNotes:  str("symbolNotes"),

		LabelIssues: flag("labelIssues"),
		LabelNotes:  str("labelNotes"),

		PopupIssues: flag("popupIssues"),
		PopupNotes:  str("popupNotes"),

		IssuesSummary: str("issuesSummary"),
	}
}
