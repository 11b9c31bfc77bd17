package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

func backupRecords() []model.LayerRecord {
	return []model.LayerRecord{
		{
			MapService:    "OSMP Trail Map (WAB)",
			LayerName:     "Trails",
			Status:        model.StatusNeedsWork,
			Auditor:       "jdoe",
			ColorIssues:   true,
			ColorNotes:    "red/green palette",
			IssuesSummary: "COLOR: red/green",
		},
		{MapService: "OSMP Baseline Layers", LayerName: "Wetlands", Status: model.StatusPass},
	}
}

func TestBackup_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	data, err := EncodeBackup(model.ToolBaseline, backupRecords(), now)
	require.NoError(t, err)

	doc, err := DecodeBackup(model.ToolBaseline, data)
	require.NoError(t, err)

	assert.Equal(t, SchemaVersion, doc.SchemaVersion)
	assert.Equal(t, model.ToolBaseline, doc.Tool)
	assert.Equal(t, now, doc.ExportedAt)
	assert.Equal(t, backupRecords(), doc.Records)
}

func TestDecodeBackup_RejectsMalformedJSON(t *testing.T) {
	_, err := DecodeBackup(model.ToolBaseline, []byte(`{"schemaVersion": 1, "records": [`))
	require.Error(t, err)
}

func TestDecodeBackup_RejectsUnknownSchemaVersion(t *testing.T) {
	doc := Backup{SchemaVersion: 99, Tool: model.ToolBaseline, Records: backupRecords()}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = DecodeBackup(model.ToolBaseline, data)
	require.ErrorContains(t, err, "schema version")
}

func TestDecodeBackup_RejectsToolMismatch(t *testing.T) {
	data, err := EncodeBackup(model.ToolRemediation, nil, time.Now())
	require.NoError(t, err)

	_, err = DecodeBackup(model.ToolBaseline, data)
	require.ErrorContains(t, err, "remediation")
}

func TestDecodeBackup_ToleratesMissingToolField(t *testing.T) {
	// Hand-edited backups from the spreadsheet era omit the tool field.
	data := []byte(`{
		"schemaVersion": 1,
		"records": [
			{"mapService": "Svc", "layerName": "Layer", "status": "pass"}
		]
	}`)

	doc, err := DecodeBackup(model.ToolBaseline, data)
	require.NoError(t, err)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, "pass", doc.Records[0].Status)
}

func TestDecodeBackup_RejectsInvalidStatus(t *testing.T) {
	records := backupRecords()
	records[1].Status = "completed" // remediation status in a baseline backup
	data, err := EncodeBackup(model.ToolBaseline, records, time.Now())
	require.NoError(t, err)

	_, err = DecodeBackup(model.ToolBaseline, data)
	require.ErrorContains(t, err, "invalid status")
}

func TestDecodeBackup_RejectsMissingIdentity(t *testing.T) {
	data := []byte(`{
		"schemaVersion": 1,
		"tool": "baseline",
		"records": [{"status": "pass"}]
	}`)

	_, err := DecodeBackup(model.ToolBaseline, data)
	require.ErrorContains(t, err, "identity")
}

func TestExportBackup_Filename(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	result, err := ExportBackup(model.ToolRemediation, nil, now)
	require.NoError(t, err)

	assert.Equal(t, "layeraudit_remediation_backup_2026-03-14.json", result.Filename)
}
