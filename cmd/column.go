package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/structcalc/internal/report"
	"github.com/alexiusacademia/structcalc/internal/structural"
)

var (
	colMaterial string
	colLength   float64
	colWidth    float64
	colHeight   float64
	colEnd      string
	colReport   string
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Euler buckling analysis of a rectangular column",
	Long: `Compute the critical elastic buckling load of an axially loaded
rectangular column using Euler's formula. Buckling is evaluated about
the weak axis of the section.

Supported end conditions and their effective length factors:

  pinned-pinned  K = 1.0 (default)
  fixed-free     K = 2.0
  fixed-fixed    K = 0.5
  fixed-pinned   K = 0.7

Unrecognized end conditions are treated as pinned-pinned.

Example:
  structcalc column --length 3 --width 0.1 --height 0.1 --end-condition fixed-fixed`,
	RunE: runColumn,
}

func init() {
	rootCmd.AddCommand(columnCmd)

	columnCmd.Flags().StringVarP(&colMaterial, "material", "m", "Steel A36", "Material name from the catalog")
	columnCmd.Flags().Float64VarP(&colLength, "length", "L", 0, "Column height (m) [required]")
	columnCmd.Flags().Float64VarP(&colWidth, "width", "b", 0, "Section width (m) [required]")
	columnCmd.Flags().Float64VarP(&colHeight, "height", "H", 0, "Section depth (m) [required]")
	columnCmd.Flags().StringVarP(&colEnd, "end-condition", "e", "pinned-pinned", "End restraint condition")
	columnCmd.Flags().StringVar(&colReport, "report", "", "Write a PDF report to this path")

	columnCmd.MarkFlagRequired("length")
	columnCmd.MarkFlagRequired("width")
	columnCmd.MarkFlagRequired("height")
}

func runColumn(cmd *cobra.Command, args []string) error {
	material, err := lookupMaterial(colMaterial)
	if err != nil {
		return err
	}

	end := structural.ParseEndCondition(colEnd)
	analyzer := structural.NewColumnAnalyzer(material)
	res, err := analyzer.EulerBuckling(colLength, colWidth, colHeight, end)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COLUMN BUCKLING ANALYSIS (EULER)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s\n", material.Name)
	fmt.Fprintf(w, "  Young's Modulus (E):\t%.1f GPa\n", material.YoungsModulus)
	fmt.Fprintf(w, "  Length (L):\t%.3f m\n", colLength)
	fmt.Fprintf(w, "  Section (b x h):\t%.0f x %.0f mm\n", colWidth*1000, colHeight*1000)
	fmt.Fprintf(w, "  End Condition:\t%s\n", res.EndCondition)
	fmt.Fprintf(w, "  Effective Length Factor (K):\t%.2f\n", res.EndCondition.K())
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Slenderness Ratio:\t%.2f\n", res.SlendernessRatio)
	classification := "SHORT (crushing governs, verify separately)"
	if res.IsLongColumn {
		classification = "LONG (Euler buckling governs)"
	}
	fmt.Fprintf(w, "  Classification:\t%s\n", classification)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  CRITICAL LOAD = %.2f kN      \n", res.CriticalLoadKN)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	if colReport != "" {
		r := report.ColumnReport{
			Material: material,
			Length:   colLength,
			Width:    colWidth,
			Height:   colHeight,
			Result:   res,
		}
		if err := r.WriteFile(colReport); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("  Report written to %s\n", colReport)
	}

	return nil
}
