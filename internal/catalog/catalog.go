// Package catalog carries the fixed list of known map layers that seeds each
// tracker at startup.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

//go:embed layers.yaml
var catalogFS embed.FS

// Entry is one catalog line. Status is optional; absent means the tool's
// default starting status.
type Entry struct {
	MapService    string `yaml:"mapService"`
	LayerName     string `yaml:"layerName"`
	Status        string `yaml:"status"`
	IssuesSummary string `yaml:"issuesSummary"`
}

// Catalog is the embedded layer list for both tools.
type Catalog struct {
	Baseline    []Entry `yaml:"baseline"`
	Remediation []Entry `yaml:"remediation"`
}

// Load parses the embedded catalog and validates its statuses.
func Load() (*Catalog, error) {
	data, err := catalogFS.ReadFile("layers.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	for _, e := range c.Baseline {
		if e.Status != "" && !model.ValidStatus(model.ToolBaseline, e.Status) {
			return nil, fmt.Errorf("catalog entry %s/%s has invalid baseline status %q", e.MapService, e.LayerName, e.Status)
		}
	}
	for _, e := range c.Remediation {
		if e.Status != "" && !model.ValidStatus(model.ToolRemediation, e.Status) {
			return nil, fmt.Errorf("catalog entry %s/%s has invalid remediation status %q", e.MapService, e.LayerName, e.Status)
		}
	}

	return &c, nil
}

// Records converts the catalog entries for a tool into seed records, in
// catalog order.
func (c *Catalog) Records(tool model.Tool) []model.LayerRecord {
	entries := c.Baseline
	if tool == model.ToolRemediation {
		entries = c.Remediation
	}

	records := make([]model.LayerRecord, 0, len(entries))
	for _, e := range entries {
		status := e.Status
		if status == "" {
			status = model.DefaultStatus(tool)
		}
		records = append(records, model.LayerRecord{
			MapService:    e.MapService,
			LayerName:     e.LayerName,
			Status:        status,
			IssuesSummary: e.IssuesSummary,
		})
	}
	return records
}
