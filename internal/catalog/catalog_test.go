package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	assert.Len(t, cat.Baseline, 68)
	assert.Len(t, cat.Remediation, 2)

	for _, e := range append(append([]Entry{}, cat.Baseline...), cat.Remediation...) {
		assert.NotEmpty(t, e.MapService, "entry %q", e.LayerName)
		assert.NotEmpty(t, e.LayerName, "entry in %q", e.MapService)
	}
}

func TestRecords_DefaultsBlankStatus(t *testing.T) {
	cat := &Catalog{
		Baseline: []Entry{
			{MapService: "Svc", LayerName: "A"},
			{MapService: "Svc", LayerName: "B", Status: model.StatusPass},
		},
		Remediation: []Entry{
			{MapService: "Svc", LayerName: "C"},
		},
	}

	baseline := cat.Records(model.ToolBaseline)
	require.Len(t, baseline, 2)
	assert.Equal(t, model.StatusNotAudited, baseline[0].Status)
	assert.Equal(t, model.StatusPass, baseline[1].Status)

	remediation := cat.Records(model.ToolRemediation)
	require.Len(t, remediation, 1)
	assert.Equal(t, model.StatusNotStarted, remediation[0].Status)
}

func TestRecords_EmbeddedStatusesAreValid(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	for _, r := range cat.Records(model.ToolBaseline) {
		assert.True(t, model.ValidStatus(model.ToolBaseline, r.Status), "layer %s", r.Key())
	}
	for _, r := range cat.Records(model.ToolRemediation) {
		assert.True(t, model.ValidStatus(model.ToolRemediation, r.Status), "layer %s", r.Key())
	}
}
