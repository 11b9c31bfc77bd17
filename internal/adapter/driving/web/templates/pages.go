package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/trentschlar/DigitalAccessibility/internal/application"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

// RecordView is one record row prepared for rendering.
type RecordView struct {
	Key         string
	Record      model.LayerRecord
	SummaryHTML string // sanitized markdown of the issues summary
}

// ToolView is everything the tracker page needs.
type ToolView struct {
	Tool      model.Tool
	Title     string
	Statuses  []string
	Records   []RecordView
	Stats     application.Stats
	CSRFToken string
	Error     string
}

// Overview renders the landing page with a stats card per tool.
func Overview(baseline, remediation application.Stats) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := raw(w, `<h1>Layer Accessibility Audit</h1><div class="cards">`); err != nil {
			return err
		}
		if err := statsCard(w, "Baseline Audit", "/app/baseline", baseline); err != nil {
			return err
		}
		if err := statsCard(w, "Remediation", "/app/remediation", remediation); err != nil {
			return err
		}
		return raw(w, `</div>`)
	})
}

func statsCard(w io.Writer, title, href string, s application.Stats) error {
	if err := writef(w, `<section class="card"><h2><a href="%s">%s</a></h2>`, href, templ.EscapeString(title)); err != nil {
		return err
	}
	if err := writef(w, `<p class="big">%.1f%%</p><p>%d layers</p><ul>`, s.CompletionPct, s.Total); err != nil {
		return err
	}
	for _, status := range model.Statuses(s.Tool) {
		if err := writef(w, `<li>%s: %d</li>`, templ.EscapeString(status), s.ByStatus[status]); err != nil {
			return err
		}
	}
	return raw(w, `</ul></section>`)
}

// ToolPage renders the tracker table for one tool: a form per record, plus
// the Save / Load / Export CSV controls.
func ToolPage(v ToolView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h1>%s</h1>`, templ.EscapeString(v.Title)); err != nil {
			return err
		}
		if v.Error != "" {
			if err := writef(w, `<p class="error" role="alert">%s</p>`, templ.EscapeString(v.Error)); err != nil {
				return err
			}
		}

		if err := toolbar(w, v); err != nil {
			return err
		}
		if err := statsBar(w, v.Stats); err != nil {
			return err
		}

		for _, rv := range v.Records {
			if err := recordForm(w, v, rv); err != nil {
				return err
			}
		}
		return nil
	})
}

func toolbar(w io.Writer, v ToolView) error {
	if err := writef(w,
		`<div class="toolbar"><a class="btn" href="/api/v1/tools/%s/backup" download>Save Backup</a><a class="btn" href="/api/v1/tools/%s/export/csv" download>Export CSV</a>`,
		v.Tool, v.Tool); err != nil {
		return err
	}
	if err := writef(w,
		`<form class="inline" method="post" action="/app/%s/restore" enctype="multipart/form-data"><input type="hidden" name="csrf_token" value="%s"><label>Load Backup <input type="file" name="backup" accept=".json" required></label><button type="submit">Restore</button></form>`,
		v.Tool, templ.EscapeString(v.CSRFToken)); err != nil {
		return err
	}
	return raw(w, `</div>`)
}

func statsBar(w io.Writer, s application.Stats) error {
	if err := writef(w, `<p class="stats">%d layers, %.1f%% complete`, s.Total, s.CompletionPct); err != nil {
		return err
	}
	for _, status := range model.Statuses(s.Tool) {
		if err := writef(w, ` | %s: %d`, templ.EscapeString(status), s.ByStatus[status]); err != nil {
			return err
		}
	}
	return raw(w, `</p>`)
}

func recordForm(w io.Writer, v ToolView, rv RecordView) error {
	r := rv.Record

	if err := writef(w, `<form class="record" method="post" action="/app/%s/records"><input type="hidden" name="csrf_token" value="%s"><input type="hidden" name="key" value="%s">`,
		v.Tool, templ.EscapeString(v.CSRFToken), templ.EscapeString(rv.Key)); err != nil {
		return err
	}

	if err := writef(w, `<h3>%s <small>%s</small></h3>`, templ.EscapeString(r.LayerName), templ.EscapeString(r.MapService)); err != nil {
		return err
	}

	if err := raw(w, `<select name="status" aria-label="Status">`); err != nil {
		return err
	}
	for _, status := range v.Statuses {
		selected := ""
		if status == r.Status {
			selected = " selected"
		}
		if err := writef(w, `<option value="%s"%s>%s</option>`, status, selected, templ.EscapeString(status)); err != nil {
			return err
		}
	}
	if err := raw(w, `</select>`); err != nil {
		return err
	}

	if err := writef(w, `<label>Date <input type="date" name="date" value="%s"></label><label>Auditor <input name="auditor" value="%s"></label>`,
		templ.EscapeString(r.Date), templ.EscapeString(r.Auditor)); err != nil {
		return err
	}

	categories := []struct {
		label, flagName, notesName string
		flag                       bool
		notes                      string
	}{
		{"Color", "colorIssues", "colorNotes", r.ColorIssues, r.ColorNotes},
		{"Contrast", "contrastIssues", "contrastNotes", r.ContrastIssues, r.ContrastNotes},
		{"Symbol", "symbolIssues", "symbolNotes", r.SymbolIssues, r.SymbolNotes},
		{"Label", "labelIssues", "labelNotes", r.LabelIssues, r.LabelNotes},
		{"Popup", "popupIssues", "popupNotes", r.PopupIssues, r.PopupNotes},
	}
	for _, c := range categories {
		checked := ""
		if c.flag {
			checked = " checked"
		}
		if err := writef(w, `<fieldset><legend>%s</legend><label><input type="checkbox" name="%s"%s> Issues</label><input name="%s" value="%s" placeholder="Notes"></fieldset>`,
			c.label, c.flagName, checked, c.notesName, templ.EscapeString(c.notes)); err != nil {
			return err
		}
	}

	if err := writef(w, `<label>Summary <textarea name="issuesSummary">%s</textarea></label>`, templ.EscapeString(r.IssuesSummary)); err != nil {
		return err
	}
	if rv.SummaryHTML != "" {
		if err := writef(w, `<div class="summary-preview">%s</div>`, rv.SummaryHTML); err != nil {
			return err
		}
	}

	return raw(w, `<button type="submit">Save</button></form>`)
}

// RecordAnchor returns the URL fragment for a record, usable in redirects
// back to the row that was just saved.
func RecordAnchor(tool model.Tool, key string) string {
	return fmt.Sprintf("/app/%s#%s", tool, url.PathEscape(key))
}
