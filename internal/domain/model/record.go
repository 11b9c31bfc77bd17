package model

// KeySeparator joins map service and layer name into a record key. The
// three-pipe separator survives layer names that contain a single "|".
const KeySeparator = "|||"

// LayerRecord is one map layer's entry in a tracker. The same shape serves
// both tools; Status is interpreted against the owning tool's enum, and the
// popup styling fields are only edited by the remediation tool.
//
// JSON tags match the backup file format, so a record marshals directly into
// a backup document.
type LayerRecord struct {
	MapService string `json:"mapService"`
	LayerName  string `json:"layerName"`
	Status     string `json:"status"`
	Date       string `json:"date,omitempty"`
	Auditor    string `json:"auditor,omitempty"`

	ColorIssues bool   `json:"colorIssues"`
	ColorNotes  string `json:"colorNotes,omitempty"`

	ContrastIssues       bool   `json:"contrastIssues"`
	ContrastNotes        string `json:"contrastNotes,omitempty"`
	ContrastMeasurements string `json:"contrastMeasurements,omitempty"`

	SymbolIssues bool   `json:"symbolIssues"`
	SymbolNotes  string `json:"symbolNotes,omitempty"`

	LabelIssues bool   `json:"labelIssues"`
	LabelNotes  string `json:"labelNotes,omitempty"`

	PopupIssues bool   `json:"popupIssues"`
	PopupNotes  string `json:"popupNotes,omitempty"`

	// Popup styling captured during remediation.
	PopupHeaderBg     string `json:"popupHeaderBg,omitempty"`
	PopupHeaderText   string `json:"popupHeaderText,omitempty"`
	PopupRestrictedBg string `json:"popupRestrictedBg,omitempty"`
	PopupFontSize     string `json:"popupFontSize,omitempty"`

	IssuesSummary string `json:"issuesSummary,omitempty"`
}

// Key returns the stable identity of the record within a store.
func (r LayerRecord) Key() string {
	return r.MapService + KeySeparator + r.LayerName
}

// HasAnyIssue reports whether any of the five issue categories is flagged.
func (r LayerRecord) HasAnyIssue() bool {
	return r.ColorIssues || r.ContrastIssues || r.SymbolIssues || r.LabelIssues || r.PopupIssues
}
