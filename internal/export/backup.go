package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

// SchemaVersion is the current backup document version. Bump when the record
// shape changes incompatibly; DecodeBackup rejects versions it doesn't know.
const SchemaVersion = 1

// Backup is the JSON backup document. It is the only input format for a
// restore; importing one replaces the store wholesale.
type Backup struct {
	SchemaVersion int                 `json:"schemaVersion"`
	Tool          model.Tool          `json:"tool"`
	ExportedAt    time.Time           `json:"exportedAt"`
	Records       []model.LayerRecord `json:"records"`
}

// EncodeBackup serializes the record set into a backup document.
func EncodeBackup(tool model.Tool, records []model.LayerRecord, now time.Time) ([]byte, error) {
	doc := Backup{
		SchemaVersion: SchemaVersion,
		Tool:          tool,
		ExportedAt:    now.UTC(),
		Records:       records,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return data, nil
}

// ExportBackup wraps EncodeBackup with a date-stamped download filename.
func ExportBackup(tool model.Tool, records []model.LayerRecord, now time.Time) (Result, error) {
	content, err := EncodeBackup(tool, records, now)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Filename: fmt.Sprintf("layeraudit_%s_backup_%s.json", tool, now.UTC().Format("2006-01-02")),
		Content:  content,
	}, nil
}

// DecodeBackup parses and validates a backup document. Any error leaves the
// caller's live store untouched; the document is fully validated before a
// restore applies it.
func DecodeBackup(tool model.Tool, data []byte) (Backup, error) {
	var doc Backup
	if err := json.Unmarshal(data, &doc); err != nil {
		return Backup{}, fmt.Errorf("parse backup: %w", err)
	}

	if doc.SchemaVersion != SchemaVersion {
		return Backup{}, fmt.Errorf("unsupported backup schema version %d (want %d)", doc.SchemaVersion, SchemaVersion)
	}

	// Older manual backups omit the tool field; only an explicit mismatch is rejected.
	if doc.Tool != "" && doc.Tool != tool {
		return Backup{}, fmt.Errorf("backup is for tool %q, not %q", doc.Tool, tool)
	}

	for i, r := range doc.Records {
		if r.MapService == "" || r.LayerName == "" {
			return Backup{}, fmt.Errorf("record %d is missing its identity fields", i)
		}
		if !model.ValidStatus(tool, r.Status) {
			return Backup{}, fmt.Errorf("record %s has invalid status %q", r.Key(), r.Status)
		}
	}

	return doc, nil
}
