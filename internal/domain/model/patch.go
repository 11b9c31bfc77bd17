package model

// RecordPatch is a partial update to a LayerRecord. Nil fields are left
// untouched by Apply, which is what lets a single form input save without
// clobbering the rest of the record. Identity fields are deliberately absent:
// map service and layer name never change after creation.
type RecordPatch struct {
	Status  *string `json:"status,omitempty"`
	Date    *string `json:"date,omitempty"`
	Auditor *string `json:"auditor,omitempty"`

	ColorIssues *bool   `json:"colorIssues,omitempty"`
	ColorNotes  *string `json:"colorNotes,omitempty"`

	ContrastIssues       *bool   `json:"contrastIssues,omitempty"`
	ContrastNotes        *string `json:"contrastNotes,omitempty"`
	ContrastMeasurements *string `json:"contrastMeasurements,omitempty"`

	SymbolIssues *bool   `json:"symbolIssues,omitempty"`
	SymbolNotes  *string `json:"symbolNotes,omitempty"`

	LabelIssues *bool   `json:"labelIssues,omitempty"`
	LabelNotes  *string `json:"labelNotes,omitempty"`

	PopupIssues *bool   `json:"popupIssues,omitempty"`
	PopupNotes  *string `json:"popupNotes,omitempty"`

	PopupHeaderBg     *string `json:"popupHeaderBg,omitempty"`
	PopupHeaderText   *string `json:"popupHeaderText,omitempty"`
	PopupRestrictedBg *string `json:"popupRestrictedBg,omitempty"`
	PopupFontSize     *string `json:"popupFontSize,omitempty"`

	IssuesSummary *string `json:"issuesSummary,omitempty"`
}

// Apply merges the set fields of the patch into r.
func (p RecordPatch) Apply(r *LayerRecord) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&r.Status, p.Status)
	setString(&r.Date, p.Date)
	setString(&r.Auditor, p.Auditor)

	setBool(&r.ColorIssues, p.ColorIssues)
	setString(&r.ColorNotes, p.ColorNotes)

	setBool(&r.ContrastIssues, p.ContrastIssues)
	setString(&r.ContrastNotes, p.ContrastNotes)
	setString(&r.ContrastMeasurements, p.ContrastMeasurements)

	setBool(&r.SymbolIssues, p.SymbolIssues)
	setString(&r.SymbolNotes, p.SymbolNotes)

	setBool(&r.LabelIssues, p.LabelIssues)
	setString(&r.LabelNotes, p.LabelNotes)

	setBool(&r.PopupIssues, p.PopupIssues)
	setString(&r.PopupNotes, p.PopupNotes)

	setString(&r.PopupHeaderBg, p.PopupHeaderBg)
	setString(&r.PopupHeaderText, p.PopupHeaderText)
	setString(&r.PopupRestrictedBg, p.PopupRestrictedBg)
	setString(&r.PopupFontSize, p.PopupFontSize)

	setString(&r.IssuesSummary, p.IssuesSummary)
}
