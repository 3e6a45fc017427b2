package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/structcalc/internal/diagram"
	"github.com/alexiusacademia/structcalc/internal/matdb"
	"github.com/alexiusacademia/structcalc/internal/report"
	"github.com/alexiusacademia/structcalc/internal/structural"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Beam analysis commands",
	Long: `Analyze single-span rectangular beams under the supported load
configurations:

  point       Simply supported beam with a point load
  cantilever  Cantilever beam with a point load at the free end
  udl         Simply supported beam with a uniformly distributed load
  batch       Analyze many beams from an Excel worksheet

All commands report deflection, bending stress, internal moment and
shear, the safety factor against yield, and the member weight and cost.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}

// lookupMaterial resolves a --material flag value against the catalog.
// Tags used by the HTTP API (steel_a36, aluminum_6061) are accepted
// alongside catalog display names.
func lookupMaterial(name string) (structural.Material, error) {
	switch name {
	case "steel_a36":
		return structural.SteelA36(), nil
	case "aluminum_6061":
		return structural.Aluminum6061(), nil
	}

	db := matdb.NewDatabase()
	if m, ok := db.GetByName(name); ok {
		return m.Structural(), nil
	}

	var names []string
	for _, m := range db.Materials() {
		names = append(names, m.Name)
	}
	return structural.Material{}, fmt.Errorf("unknown material %q (available: %s)",
		name, strings.Join(names, ", "))
}

func printBeamInputs(configuration string, m structural.Material, rows [][2]string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     BEAM ANALYSIS - %s\n", strings.ToUpper(configuration))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s\n", m.Name)
	fmt.Fprintf(w, "  Young's Modulus (E):\t%.1f GPa\n", m.YoungsModulus)
	fmt.Fprintf(w, "  Yield Strength (Fy):\t%.1f MPa\n", m.YieldStrength)
	for _, row := range rows {
		fmt.Fprintf(w, "  %s:\t%s\n", row[0], row[1])
	}
	w.Flush()
	fmt.Println()
}

func printBeamResult(res *structural.BeamAnalysisResult) {
	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max Deflection:\t%.3f mm\n", res.MaxDeflection)
	fmt.Fprintf(w, "  Max Stress:\t%.2f MPa\n", res.MaxStress)
	fmt.Fprintf(w, "  Max Moment:\t%.2f N·m\n", res.MaxMoment)
	fmt.Fprintf(w, "  Max Shear:\t%.2f N\n", res.MaxShear)
	fmt.Fprintf(w, "  Weight:\t%.3f kg\n", res.Weight)
	fmt.Fprintf(w, "  Cost:\t$%.2f\n", res.Cost)
	w.Flush()
	fmt.Println()

	status := "✓ SAFE"
	if !res.IsSafe() {
		status = "✗ UNSAFE"
	}
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  SAFETY FACTOR = %.2f   %s      \n", res.SafetyFactor, status)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}

// emitBeamArtifacts handles the shared --ascii/--diagram/--report output
// options of the beam commands.
func emitBeamArtifacts(bc diagram.BeamCase, res *structural.BeamAnalysisResult,
	configuration string, ascii bool, diagramPath, reportPath string) error {

	if ascii || diagramPath != "" {
		curves, err := diagram.SampleBeam(bc, 200)
		if err != nil {
			return err
		}

		if ascii {
			fmt.Print(diagram.RenderASCII(curves))
		}

		if diagramPath != "" {
			exports := []struct {
				suffix string
				fn     func(*diagram.Curves, string) error
			}{
				{"moment", diagram.ExportMomentDiagram},
				{"shear", diagram.ExportShearDiagram},
				{"deflection", diagram.ExportDeflectionDiagram},
			}
			for _, ex := range exports {
				path := suffixPath(diagramPath, ex.suffix)
				if err := ex.fn(curves, path); err != nil {
					return fmt.Errorf("export %s diagram: %w", ex.suffix, err)
				}
				fmt.Printf("  Diagram written to %s\n", path)
			}
		}
	}

	if reportPath != "" {
		r := report.BeamReport{
			Configuration: configuration,
			Material:      bc.Material,
			Length:        bc.Length,
			Load:          bc.Load,
			LoadPosition:  bc.LoadPosition,
			Width:         bc.Width,
			Height:        bc.Height,
			Result:        res,
		}
		if err := r.WriteFile(reportPath); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("  Report written to %s\n", reportPath)
	}

	return nil
}

// suffixPath turns out.png + "moment" into out_moment.png.
func suffixPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + suffix + ext
}
