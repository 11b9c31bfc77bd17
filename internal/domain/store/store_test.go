package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func seedRecords() []model.LayerRecord {
	return []model.LayerRecord{
		{MapService: "OSMP Trail Map (WAB)", LayerName: "Trails", Status: model.StatusNotAudited},
		{MapService: "OSMP Trail Map (WAB)", LayerName: "Trailheads", Status: model.StatusNotAudited},
		{MapService: "OSMP Baseline Layers", LayerName: "Wetlands", Status: model.StatusPass},
	}
}

func TestStore_SetMergesPatch(t *testing.T) {
	s := New(model.ToolBaseline)
	s.Seed(seedRecords())

	key := seedRecords()[0].Key()
	got, err := s.Set(key, model.RecordPatch{
		Status:     strPtr(model.StatusNeedsWork),
		Auditor:    strPtr("jdoe"),
		ColorNotes: strPtr("red/green palette"),
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusNeedsWork, got.Status)
	assert.Equal(t, "jdoe", got.Auditor)
	assert.Equal(t, "red/green palette", got.ColorNotes)
	// Untouched fields survive the merge.
	assert.Equal(t, "OSMP Trail Map (WAB)", got.MapService)
	assert.Equal(t, "Trails", got.LayerName)

	stored, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, got, stored)
}

func TestStore_SetUnknownKey(t *testing.T) {
	s := New(model.ToolBaseline)
	s.Seed(seedRecords())

	_, err := s.Set("nope|||missing", model.RecordPatch{Status: strPtr(model.StatusPass)})

	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_SetInvalidStatusLeavesRecordUnchanged(t *testing.T) {
	s := New(model.ToolBaseline)
	s.Seed(seedRecords())
	key := seedRecords()[0].Key()

	_, err := s.Set(key, model.RecordPatch{
		Status:  strPtr("completed"), // remediation status, not baseline
		Auditor: strPtr("jdoe"),
	})

	require.ErrorIs(t, err, ErrInvalidStatus)

	// The whole patch is rejected, including the valid auditor field.
	got, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, model.StatusNotAudited, got.Status)
	assert.Empty(t, got.Auditor)
}

func TestStore_AllPreservesInsertionOrder(t *testing.T) {
	s := New(model.ToolBaseline)
	s.Seed(seedRecords())

	all := s.All()

	require.Len(t, all, 3)
	assert.Equal(t, "Trails", all[0].LayerName)
	assert.Equal(t, "Trailheads", all[1].LayerName)
	assert.Equal(t, "Wetlands", all[2].LayerName)
}

func TestStore_ListenersNotifiedOnSet(t *testing.T) {
	s := New(model.ToolBaseline)
	s.Seed(seedRecords())

	var gotTool model.Tool
	var gotRecords []model.LayerRecord
	calls := 0
	s.Subscribe(func(tool model.Tool, records []model.LayerRecord) {
		calls++
		gotTool = tool
		gotRecords = records
	})

	key := seedRecords()[0].Key()
	_, err := s.Set(key, model.RecordPatch{Status: strPtr(model.StatusFail)})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, model.ToolBaseline, gotTool)
	require.Len(t, gotRecords, 3)
	assert.Equal(t, model.StatusFail, gotRecords[0].Status)
}

func TestStore_SeedDoesNotNotify(t *testing.T) {
	s := New(model.ToolBaseline)

	calls := 0
	s.Subscribe(func(model.Tool, []model.LayerRecord) { calls++ })

	s.Seed(seedRecords())

	assert.Zero(t, calls)
	assert.Equal(t, 3, s.Len())
}

func TestStore_ReplaceAllNotifiesAndDeduplicates(t *testing.T) {
	s := New(model.ToolRemediation)

	calls := 0
	s.Subscribe(func(model.Tool, []model.LayerRecord) { calls++ })

	s.ReplaceAll([]model.LayerRecord{
		{MapService: "Svc", LayerName: "A", Status: model.StatusNotStarted},
		{MapService: "Svc", LayerName: "B", Status: model.StatusPlanned},
		{MapService: "Svc", LayerName: "A", Status: model.StatusCompleted}, // later duplicate wins
	})

	assert.Equal(t, 1, calls)
	require.Equal(t, 2, s.Len())

	got, ok := s.Get("Svc|||A")
	require.True(t, ok)
	assert.Equal(t, model.StatusCompleted, got.Status)
}

func TestStore_ListenerCanReadStore(t *testing.T) {
	// Listeners run outside the store lock, so a listener that calls back
	// into the store must not deadlock.
	s := New(model.ToolBaseline)
	s.Seed(seedRecords())

	s.Subscribe(func(model.Tool, []model.LayerRecord) {
		_ = s.All()
		_ = s.Len()
	})

	_, err := s.Set(seedRecords()[0].Key(), model.RecordPatch{PopupIssues: boolPtr(true)})
	require.NoError(t, err)
}
