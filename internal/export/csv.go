// Package export serializes a record set into the two external formats:
// write-only CSV for reporting, and the JSON backup document that is the
// only round-trippable format.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

// CSVColumns is the fixed report column order: identity first, then
// status/date/auditor, then each issue category's flag and notes, then the
// summary rollup.
var CSVColumns = []string{
	"Map Service",
	"Layer Name",
	"Status",
	"Date",
	"Auditor",
	"Color Issues",
	"Color Notes",
	"Contrast Issues",
	"Contrast Notes",
	"Contrast Measurements",
	"Symbol Issues",
	"Symbol Notes",
	"Label Issues",
	"Label Notes",
	"Popup Issues",
	"Popup Notes",
	"Notes Summary",
}

// Result is a downloadable export artifact.
type Result struct {
	Filename string
	Content  []byte
}

// ToCSV serializes records in the given order to RFC4180 CSV. Free-text
// fields containing commas, quotes, or newlines are quoted with internal
// quotes doubled, so the output re-parses to the original text.
func ToCSV(records []model.LayerRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVColumns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.MapService,
			r.LayerName,
			r.Status,
			r.Date,
			r.Auditor,
			yesNo(r.ColorIssues),
			r.ColorNotes,
			yesNo(r.ContrastIssues),
			r.ContrastNotes,
			r.ContrastMeasurements,
			yesNo(r.SymbolIssues),
			r.SymbolNotes,
			yesNo(r.LabelIssues),
			r.LabelNotes,
			yesNo(r.PopupIssues),
			r.PopupNotes,
			r.IssuesSummary,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row for %s: %w", r.Key(), err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportCSV wraps ToCSV with a date-stamped download filename.
func ExportCSV(tool model.Tool, records []model.LayerRecord, now time.Time) (Result, error) {
	content, err := ToCSV(records)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Filename: fmt.Sprintf("layeraudit_%s_%s.csv", tool, now.UTC().Format("2006-01-02")),
		Content:  content,
	}, nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
