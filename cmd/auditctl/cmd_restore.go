package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// restoreCmd replaces a tool's records from a JSON backup file
var restoreCmd = &cobra.Command{
	Use:   "restore <backup.json>",
	Short: "Replace a tool's records from a JSON backup file",
	Long: `Restore a tool from a backup document produced by the panel or by
'auditctl export --format json'. The backup is validated before anything is
replaced; a malformed file leaves the database untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	restoreCmd.Flags().StringVar(&toolName, "tool", "baseline", "tracker to restore (baseline or remediation)")
}

func runRestore(cmd *cobra.Command, args []string) error {
	tool, err := parseToolFlag()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	tracker, cleanup, err := openTracker(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	n, err := tracker.Restore(tool, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "restored %d records into %s\n", n, tool)
	return nil
}
