package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/trentschlar/DigitalAccessibility/internal/contrast"
)

// contrastCmd computes a WCAG contrast ratio without touching the database
var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Compute the WCAG contrast ratio between two hex colors",
	Long: `Compute the WCAG 2.x contrast ratio between two #rrggbb colors and
rate it: AAA (>= 7:1), AA (>= 4.5:1), AA18 (>= 3:1, large text only), Fail.`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func runContrast(cmd *cobra.Command, args []string) error {
	fg, err := contrast.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	bg, err := contrast.ParseHex(args[1])
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	ratio := contrast.Ratio(fg, bg)
	fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %.2f:1 (%s)\n",
		fg.Hex(), bg.Hex(), math.Round(ratio*100)/100, contrast.Rating(ratio))
	return nil
}
