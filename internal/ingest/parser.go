// Package ingest reads the extractor CSVs produced by the ArcGIS batch audit
// tooling and turns each row into a baseline tracker record, flagging likely
// accessibility issues along the way.
package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ExtractorRow is one layer's worth of extracted symbology data. Field names
// follow the extractor's CSV headers.
type ExtractorRow struct {
	MapName                 string
	LayerFile               string
	LayerName               string
	SymbologyType           string
	ColorsUsed              string
	UsesMultipleColors      string
	ColorNotes              string
	LineWidths              string
	Transparency            string
	EstimatedContrastIssues string
	LabelsEnabled           string
	FontName                string
	FontSize                string
	FontBold                string
	FontColor               string
	HaloEnabled             string
	HaloColor               string
	HaloSize                string
	LabelIssues             string
	PopupEnabled            string
	PopupFieldsCount        string
	PopupFields             string
	ExtractionNotes         string
}

// ParseExtractorCSV reads an extractor CSV by header name, tolerating column
// reordering and a UTF-8 BOM. Rows without a layer name are skipped. The map
// service comes from the "Map Name" column when present, otherwise from the
// layer file's base name.
func ParseExtractorCSV(data []byte) ([]ExtractorRow, error) {
	data = stripBOM(data)
	r := csv.NewReader(bufio.NewReader(bytes.NewReader(data)))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := idx["layer name"]; !ok {
		return nil, errors.New("extractor csv missing 'Layer Name' column")
	}

	field := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []ExtractorRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		row := ExtractorRow{
			MapName:                 field(rec, "map name"),
			LayerFile:               field(rec, "layer file"),
			LayerName:               field(rec, "layer name"),
			SymbologyType:           field(rec, "symbology type"),
			ColorsUsed:              field(rec, "colors used (first 10)"),
			UsesMultipleColors:      field(rec, "uses multiple colors"),
			ColorNotes:              field(rec, "color notes"),
			LineWidths:              field(rec, "line widths"),
			Transparency:            field(rec, "transparency"),
			EstimatedContrastIssues: field(rec, "estimated contrast issues"),
			LabelsEnabled:           field(rec, "labels enabled"),
			FontName:                field(rec, "font name"),
			FontSize:                field(rec, "font size"),
			FontBold:                field(rec, "font bold"),
			FontColor:               field(rec, "font color"),
			HaloEnabled:             field(rec, "halo enabled"),
			HaloColor:               field(rec, "halo color"),
			HaloSize:                field(rec, "halo size"),
			LabelIssues:             field(rec, "label issues"),
			PopupEnabled:            field(rec, "popup enabled"),
			PopupFieldsCount:        field(rec, "popup fields count"),
			PopupFields:             field(rec, "popup fields (sample)"),
			ExtractionNotes:         field(rec, "extraction notes"),
		}
		if row.LayerName == "" {
			continue
		}
		if row.MapName == "" {
			row.MapName = mapNameFromFile(row.LayerFile)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func mapNameFromFile(layerFile string) string {
	base := filepath.Base(layerFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "." || base == "" {
		return "Unknown"
	}
	return base
}

func stripBOM(b []byte) []byte {
	bom := []byte{0xEF, 0xBB, 0xBF}
	if len(b) >= 3 && bytes.Equal(b[:3], bom) {
		return b[3:]
	}
	return b
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true
	}
	return false
}
