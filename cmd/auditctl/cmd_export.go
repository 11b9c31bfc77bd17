package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/trentschlar/DigitalAccessibility/internal/export"
)

var (
	exportFormat string
	exportDir    string
)

// exportCmd writes the date-stamped CSV report or JSON backup for a tool
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the CSV report or JSON backup for a tool",
	Long: `Export a tool's records to the current directory (or --out).

Formats:
  csv  - spreadsheet report with one row per layer
  json - backup document the panel can restore from`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&toolName, "tool", "baseline", "tracker to export (baseline or remediation)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format (csv or json)")
	exportCmd.Flags().StringVar(&exportDir, "out", ".", "directory to write the export into")
}

func runExport(cmd *cobra.Command, args []string) error {
	tool, err := parseToolFlag()
	if err != nil {
		return err
	}

	tracker, cleanup, err := openTracker(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	var result export.Result
	switch exportFormat {
	case "csv":
		result, err = tracker.ExportCSV(tool)
	case "json":
		result, err = tracker.ExportBackup(tool)
	default:
		return fmt.Errorf("unknown format %q (valid: csv, json)", exportFormat)
	}
	if err != nil {
		return err
	}

	path := filepath.Join(exportDir, result.Filename)
	if err := os.WriteFile(path, result.Content, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
