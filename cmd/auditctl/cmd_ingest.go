package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ingestCmd merges extractor CSVs into the baseline tracker
var ingestCmd = &cobra.Command{
	Use:   "ingest <extract.csv>...",
	Short: "Merge extractor CSVs into the baseline tracker",
	Long: `Ingest one or more map-layer extractor CSVs. Each row becomes a
baseline record with issue flags derived from the extractor's symbology and
labeling columns. Layers already in the tracker are updated in place.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	tracker, cleanup, err := openTracker(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	total := 0
	for _, path := range args {
		n, err := tracker.IngestExtractFile(path)
		if err != nil {
			return fmt.Errorf("ingest %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records\n", path, n)
		total += n
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ingested %d records total\n", total)
	return nil
}
