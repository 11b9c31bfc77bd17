package ingest

import (
	"strings"
	"time"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

// Issue detection mirrors the heuristics the GIS team applied by hand before
// this tracker existed: red/green combinations, single-color symbology,
// failed contrast measurements, label text without halos, and popups that
// were never configured.

func detectColorIssues(row ExtractorRow) []string {
	var issues []string

	colors := strings.ToLower(row.ColorsUsed)
	hasRed := strings.Contains(colors, "#ff0000") || strings.Contains(colors, "#f00")
	hasGreen := strings.Contains(colors, "#00ff00") || strings.Contains(colors, "#0f0")
	if hasRed && hasGreen {
		issues = append(issues, "Red/green combination detected (color blind issue)")
	}
	if strings.Contains(strings.ToLower(row.ColorNotes), "red/green") {
		issues = append(issues, "Extractor flagged red/green combination")
	}

	if !truthy(row.UsesMultipleColors) && row.SymbologyType != "" {
		issues = append(issues, "Single color layer: cannot rely on color alone to distinguish features")
	}

	return issues
}

func detectContrastIssues(row ExtractorRow) []string {
	var issues []string

	estimate := strings.ToLower(row.EstimatedContrastIssues)
	if strings.Contains(estimate, "fail") {
		issues = append(issues, "Extractor estimate: "+row.EstimatedContrastIssues)
	}

	return issues
}

func detectLabelIssues(row ExtractorRow) []string {
	if !truthy(row.LabelsEnabled) {
		return nil
	}

	var issues []string
	if !truthy(row.HaloEnabled) {
		issues = append(issues, "Labels lack halo: cannot guarantee 4.5:1 contrast over variable basemaps")
	}
	if row.LabelIssues != "" {
		issues = append(issues, row.LabelIssues)
	}

	return issues
}

func detectPopupIssues(row ExtractorRow) []string {
	if truthy(row.PopupEnabled) {
		return nil
	}
	return []string{"Popup unknown or not configured"}
}

// initialStatus decides the starting audit status for an ingested record.
// Any critical finding forces needs-work; a layer whose contrast estimates
// all pass and which has no critical finding starts at pass.
func initialStatus(colorIssues, contrastIssues, labelIssues []string, row ExtractorRow) string {
	critical := []string{"red/green", "single color", "lack halo", "cannot guarantee", "fails", "fail"}

	hasCritical := false
	for _, issue := range append(append(append([]string{}, colorIssues...), contrastIssues...), labelIssues...) {
		lower := strings.ToLower(issue)
		for _, kw := range critical {
			if strings.Contains(lower, kw) {
				hasCritical = true
			}
		}
	}
	if hasCritical {
		return model.StatusNeedsWork
	}

	estimate := strings.ToLower(row.EstimatedContrastIssues)
	if strings.Contains(estimate, "meets") || strings.Contains(estimate, "pass") {
		return model.StatusPass
	}

	return model.StatusNeedsWork
}

// BuildRecord assembles a baseline record from an extractor row, with the
// notes fields composed the same way the manual audit spreadsheets were.
func BuildRecord(row ExtractorRow, now time.Time) model.LayerRecord {
	colorIssues := detectColorIssues(row)
	contrastIssues := detectContrastIssues(row)
	labelIssues := detectLabelIssues(row)
	popupIssues := detectPopupIssues(row)

	colorNotes := []string{
		"Symbology Type: " + row.SymbologyType,
		"Colors: " + row.ColorsUsed,
		"Multiple Colors: " + row.UsesMultipleColors,
	}
	if row.LineWidths != "" {
		colorNotes = append(colorNotes, "Line Widths: "+row.LineWidths)
	}
	if row.Transparency != "" {
		colorNotes = append(colorNotes, "Transparency: "+row.Transparency)
	}
	if row.ColorNotes != "" {
		colorNotes = append(colorNotes, "Notes: "+row.ColorNotes)
	}
	if len(colorIssues) > 0 {
		colorNotes = append(colorNotes, "ISSUES: "+strings.Join(colorIssues, "; "))
	}

	var labelNotes []string
	if truthy(row.LabelsEnabled) {
		labelNotes = append(labelNotes, "Labels: ENABLED")
		labelNotes = append(labelNotes, "Font: "+row.FontName+" "+row.FontSize+"pt")
		if truthy(row.FontBold) {
			labelNotes = append(labelNotes, "Bold: Yes")
		}
		if row.FontColor != "" {
			labelNotes = append(labelNotes, "Color: "+row.FontColor)
		}
		if truthy(row.HaloEnabled) {
			labelNotes = append(labelNotes, "Halo: "+row.HaloColor+" ("+row.HaloSize+")")
		} else {
			labelNotes = append(labelNotes, "Halo: NONE")
		}
		if len(labelIssues) > 0 {
			labelNotes = append(labelNotes, "ISSUES: "+strings.Join(labelIssues, "; "))
		}
	} else {
		labelNotes = append(labelNotes, "Labels: DISABLED")
	}

	var popupNotes []string
	if truthy(row.PopupEnabled) {
		popupNotes = append(popupNotes, "Enabled with "+row.PopupFieldsCount+" fields")
		popupNotes = append(popupNotes, "Fields: "+row.PopupFields)
	} else {
		popupNotes = append(popupNotes, "Popup: Unknown/Not configured")
	}
	if len(popupIssues) > 0 {
		popupNotes = append(popupNotes, "ISSUES: "+strings.Join(popupIssues, "; "))
	}

	var summary []string
	if len(colorIssues) > 0 {
		summary = append(summary, "COLOR: "+strings.Join(colorIssues, "; "))
	}
	if len(contrastIssues) > 0 {
		summary = append(summary, "CONTRAST: "+strings.Join(contrastIssues, "; "))
	}
	if len(labelIssues) > 0 {
		summary = append(summary, "LABELS: "+strings.Join(labelIssues, "; "))
	}
	if len(popupIssues) > 0 {
		summary = append(summary, "POPUPS: "+strings.Join(popupIssues, "; "))
	}

	return model.LayerRecord{
		MapService: row.MapName,
		LayerName:  row.LayerName,
		Status:     initialStatus(colorIssues, contrastIssues, labelIssues, row),
		Date:       now.UTC().Format("2006-01-02"),
		Auditor:    "Automated extract",

		ColorIssues: len(colorIssues) > 0,
		ColorNotes:  strings.Join(colorNotes, " | "),

		ContrastIssues:       len(contrastIssues) > 0,
		ContrastNotes:        strings.Join(contrastIssues, " | "),
		ContrastMeasurements: row.EstimatedContrastIssues,

		LabelIssues: len(labelIssues) > 0,
		LabelNotes:  strings.Join(labelNotes, " | "),

		PopupIssues: len(popupIssues) > 0,
		PopupNotes:  strings.Join(popupNotes, " | "),

		IssuesSummary: strings.Join(summary, " || "),
	}
}

// BuildRecords converts parsed rows to records, preserving row order.
func BuildRecords(rows []ExtractorRow, now time.Time) []model.LayerRecord {
	records := make([]model.LayerRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, BuildRecord(row, now))
	}
	return records
}
