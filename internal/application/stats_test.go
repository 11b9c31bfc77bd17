package application

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/store"
	"github.com/trentschlar/DigitalAccessibility/internal/export"
)

func TestComputeStats_BaselineCompletion(t *testing.T) {
	records := []model.LayerRecord{
		{MapService: "M", LayerName: "A", Status: model.StatusPass},
		{MapService: "M", LayerName: "B", Status: model.StatusNeedsWork, ColorIssues: true, LabelIssues: true},
		{MapService: "M", LayerName: "C", Status: model.StatusNotAudited},
		{MapService: "M", LayerName: "D", Status: model.StatusNotAudited},
	}

	s := ComputeStats(model.ToolBaseline, records)

	assert.Equal(t, 4, s.Total)
	// Audited share: pass and needs-work count, not-audited does not.
	assert.Equal(t, 50.0, s.CompletionPct)
	assert.Equal(t, 1, s.ByStatus[model.StatusPass])
	assert.Equal(t, 1, s.ByStatus[model.StatusNeedsWork])
	assert.Equal(t, 2, s.ByStatus[model.StatusNotAudited])
	assert.Equal(t, 0, s.ByStatus[model.StatusFail])

	assert.Equal(t, 1, s.WithColorIssues)
	assert.Equal(t, 1, s.WithLabelIssues)
	assert.Equal(t, 0, s.WithPopupIssues)
	assert.Equal(t, 1, s.WithAnyIssue)
}

func TestComputeStats_RemediationCountsOnlyCompleted(t *testing.T) {
	records := []model.LayerRecord{
		{MapService: "M", LayerName: "A", Status: model.StatusCompleted},
		{MapService: "M", LayerName: "B", Status: model.StatusInProgress},
		{MapService: "M", LayerName: "C", Status: model.StatusPlanned},
	}

	s := ComputeStats(model.ToolRemediation, records)

	// In-progress and planned are not done yet.
	assert.InDelta(t, 33.3, s.CompletionPct, 0.001)
	assert.Equal(t, 1, s.ByStatus[model.StatusCompleted])
}

func TestComputeStats_EmptySet(t *testing.T) {
	s := ComputeStats(model.ToolBaseline, nil)

	assert.Zero(t, s.Total)
	assert.Zero(t, s.CompletionPct)
	// Every status is present in the map even with no records.
	require.Len(t, s.ByStatus, 4)
}

func TestComputeStats_RoundsToOneDecimal(t *testing.T) {
	records := []model.LayerRecord{
		{MapService: "M", LayerName: "A", Status: model.StatusPass},
		{MapService: "M", LayerName: "B", Status: model.StatusNotAudited},
		{MapService: "M", LayerName: "C", Status: model.StatusNotAudited},
	}

	s := ComputeStats(model.ToolBaseline, records)

	assert.Equal(t, 33.3, s.CompletionPct)
}

func TestRemediationScenario_ExportOrderAndCompletion(t *testing.T) {
	st := store.New(model.ToolRemediation)
	st.Seed([]model.LayerRecord{
		{MapService: "OSMP", LayerName: "Seasonal Dog Regs", Status: model.StatusInProgress},
		{MapService: "OSMP", LayerName: "Trail Regs", Status: model.StatusInProgress},
	})
	svc := NewStatsService(st)

	data, err := export.ToCSV(st.All())
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Seasonal Dog Regs", rows[1][1])
	assert.Equal(t, "Trail Regs", rows[2][1])

	_, err = st.Set("OSMP|||Seasonal Dog Regs", model.RecordPatch{Status: strPtr(model.StatusCompleted)})
	require.NoError(t, err)

	assert.Equal(t, 50.0, svc.Latest(model.ToolRemediation).CompletionPct)
}

func TestStatsService_RecomputesOnMutation(t *testing.T) {
	st := store.New(model.ToolBaseline)
	st.Seed([]model.LayerRecord{
		{MapService: "M", LayerName: "A", Status: model.StatusNotAudited},
		{MapService: "M", LayerName: "B", Status: model.StatusNotAudited},
	})

	svc := NewStatsService(st)
	assert.Equal(t, 0.0, svc.Latest(model.ToolBaseline).CompletionPct)

	_, err := st.Set("M|||A", model.RecordPatch{Status: strPtr(model.StatusPass)})
	require.NoError(t, err)

	latest := svc.Latest(model.ToolBaseline)
	assert.Equal(t, 50.0, latest.CompletionPct)
	assert.Equal(t, 1, latest.ByStatus[model.StatusPass])
}
