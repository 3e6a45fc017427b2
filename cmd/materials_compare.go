package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/structcalc/internal/matdb"
)

var materialsCompareCmd = &cobra.Command{
	Use:   "compare [material]...",
	Short: "Show selected materials side by side",
	Long: `Print a property-by-property comparison of two or more catalog
materials. Names are matched case-insensitively; unknown names are
skipped with a warning.

Example:
  structcalc materials compare "Steel A36" "Aluminum 6061-T6" "Titanium Ti-6Al-4V"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMaterialsCompare,
}

func init() {
	materialsCmd.AddCommand(materialsCompareCmd)
}

func runMaterialsCompare(cmd *cobra.Command, args []string) error {
	db, err := openCatalog()
	if err != nil {
		return err
	}
	selector := &matdb.Selector{DB: db}

	materials := selector.Compare(args...)
	if len(materials) < 2 {
		return fmt.Errorf("need at least two known materials to compare")
	}
	if len(materials) < len(args) {
		for _, name := range args {
			if _, ok := db.GetByName(name); !ok {
				fmt.Fprintf(os.Stderr, "warning: unknown material %q skipped\n", name)
			}
		}
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MATERIAL COMPARISON")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "  Property"
	for _, m := range materials {
		header += "\t" + m.Name
	}
	fmt.Fprintln(w, header)

	rows := []struct {
		label string
		value func(matdb.MaterialProperties) string
	}{
		{"Category", func(m matdb.MaterialProperties) string { return string(m.Category) }},
		{"Grade", func(m matdb.MaterialProperties) string { return m.Grade }},
		{"Yield Strength (MPa)", func(m matdb.MaterialProperties) string { return fmt.Sprintf("%.0f", m.YieldStrength) }},
		{"Ultimate Strength (MPa)", func(m matdb.MaterialProperties) string { return fmt.Sprintf("%.0f", m.UltimateStrength) }},
		{"Young's Modulus (GPa)", func(m matdb.MaterialProperties) string { return fmt.Sprintf("%.1f", m.YoungsModulus) }},
		{"Density (kg/m³)", func(m matdb.MaterialProperties) string { return fmt.Sprintf("%.0f", m.Density) }},
		{"Cost ($/kg)", func(m matdb.MaterialProperties) string { return fmt.Sprintf("%.2f", m.CostPerKg) }},
		{"Max Service Temp (°C)", func(m matdb.MaterialProperties) string { return fmt.Sprintf("%.0f", m.MaxServiceTemp) }},
		{"Corrosion Resistance", func(m matdb.MaterialProperties) string { return string(m.CorrosionResistance) }},
		{"Machinability", func(m matdb.MaterialProperties) string { return string(m.Machinability) }},
		{"Weldability", func(m matdb.MaterialProperties) string { return string(m.Weldability) }},
	}
	for _, r := range rows {
		line := "  " + r.label
		for _, m := range materials {
			line += "\t" + r.value(m)
		}
		fmt.Fprintln(w, line)
	}
	w.Flush()
	fmt.Println()
	return nil
}
