// auditctl is the companion CLI for the layer audit panel. It operates on
// the same SQLite database as the server, so exports and restores work
// without the server running.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	sqliteadapter "github.com/trentschlar/DigitalAccessibility/internal/adapter/driven/sqlite"
	"github.com/trentschlar/DigitalAccessibility/internal/application"
	"github.com/trentschlar/DigitalAccessibility/internal/catalog"
	"github.com/trentschlar/DigitalAccessibility/internal/config"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
)

var (
	// Global flags
	toolName string
	quiet    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "auditctl",
	Short: "Manage layer accessibility audit data from the command line",
	Long: `auditctl works directly against the layeraudit database.

Available subcommands:
  export   - Write the CSV report or JSON backup for a tool
  restore  - Replace a tool's records from a JSON backup file
  ingest   - Merge extractor CSVs into the baseline tracker
  contrast - Compute the WCAG contrast ratio between two colors`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if quiet {
			level = slog.LevelError
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(contrastCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseToolFlag resolves the --tool flag or fails with the valid values.
func parseToolFlag() (model.Tool, error) {
	tool, ok := model.ParseTool(toolName)
	if !ok {
		return "", fmt.Errorf("unknown tool %q (valid: baseline, remediation)", toolName)
	}
	return tool, nil
}

// openTracker opens the configured database, migrates it, and returns a fully
// seeded tracker service plus a cleanup func for the database handle.
func openTracker(ctx context.Context) (*application.TrackerService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}

	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		cleanup()
		return nil, nil, err
	}

	cat, err := catalog.Load()
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	tracker := application.NewTrackerService(sqliteadapter.NewSnapshotRepo(db), slog.Default())
	if err := tracker.Init(ctx, cat); err != nil {
		cleanup()
		return nil, nil, err
	}

	return tracker, cleanup, nil
}
