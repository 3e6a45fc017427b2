package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/structcalc/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "structcalc",
	Short: "Structural Mechanics Calculator",
	Long: `structcalc - Go Structural Mechanics Calculator

A CLI tool for closed-form structural analysis of beams and columns,
with an engineering-material catalog and selector.

This tool helps engineers perform:
  - Beam analysis (deflection, stress, shear, moment, safety factor)
  - Euler column buckling and slenderness classification
  - Material search, comparison and recommendation
  - Moment/shear/deflection diagrams and PDF reports

All analyses are single-span, linear-elastic, small-deflection,
rectangular-section, closed-form.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   structcalc v%-44s║\n", version.Version)
		fmt.Println("  ║   Go Structural Mechanics Calculator                      ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for closed-form beam and column analysis")
		fmt.Println("  with an engineering-material catalog.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Simply supported, cantilever and distributed-load beams")
		fmt.Println("    • Euler buckling for four end-restraint conditions")
		fmt.Println("    • Material search, recommendation and comparison")
		fmt.Println("    • ASCII and image diagrams, PDF reports, batch analysis")
		fmt.Println("    • JSON REST API (structcalc serve)")
		fmt.Println()
		fmt.Println("  Use 'structcalc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
