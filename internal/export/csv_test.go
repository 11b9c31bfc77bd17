package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

func TestToCSV_HeaderAndRowOrder(t *testing.T) {
	records := []model.LayerRecord{
		{MapService: "Svc A", LayerName: "First", Status: model.StatusPass, ColorIssues: true},
		{MapService: "Svc B", LayerName: "Second", Status: model.StatusNotAudited},
	}

	data, err := ToCSV(records)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, CSVColumns, rows[0])
	assert.Equal(t, "First", rows[1][1])
	assert.Equal(t, "Second", rows[2][1])
	assert.Equal(t, "Yes", rows[1][5])
	assert.Equal(t, "No", rows[2][5])
}

func TestToCSV_HostileFreeTextRoundTrips(t *testing.T) {
	hostile := "comma, \"quotes\", and\na newline"
	records := []model.LayerRecord{{
		MapService:    "Svc",
		LayerName:     hostile,
		Status:        model.StatusNeedsWork,
		ColorNotes:    `notes with "embedded" quotes`,
		IssuesSummary: "line one\nline two, with comma",
	}}

	data, err := ToCSV(records)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, hostile, rows[1][1])
	assert.Equal(t, `notes with "embedded" quotes`, rows[1][6])
	assert.Equal(t, "line one\nline two, with comma", rows[1][16])
}

func TestToCSV_EmptySetStillHasHeader(t *testing.T) {
	data, err := ToCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, CSVColumns, rows[0])
}

func TestExportCSV_Filename(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)

	result, err := ExportCSV(model.ToolBaseline, nil, now)
	require.NoError(t, err)

	assert.Equal(t, "layeraudit_baseline_2026-03-14.csv", result.Filename)
	assert.NotEmpty(t, result.Content)
}
