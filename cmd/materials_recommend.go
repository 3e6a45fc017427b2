package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/structcalc/internal/matdb"
)

var (
	recMinStrength float64
	recMaxCost     float64
	recMinTemp     float64
	recCategory    string
	recCorrosion   string
	recOptimize    string
)

var materialsRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Pick the best material for a set of requirements",
	Long: `Filter the catalog by the given constraints and return the single
best match under the chosen objective:

  cost      lowest cost per kilogram (default)
  weight    lowest density
  strength  highest yield strength

Example:
  structcalc materials recommend --min-strength 250 --optimize weight`,
	RunE: runMaterialsRecommend,
}

func init() {
	materialsCmd.AddCommand(materialsRecommendCmd)

	materialsRecommendCmd.Flags().Float64Var(&recMinStrength, "min-strength", 0, "Minimum yield strength (MPa)")
	materialsRecommendCmd.Flags().Float64Var(&recMaxCost, "max-cost", 0, "Maximum cost (USD/kg)")
	materialsRecommendCmd.Flags().Float64Var(&recMinTemp, "min-temp", 0, "Minimum service temperature (°C)")
	materialsRecommendCmd.Flags().StringVar(&recCategory, "category", "", "Material category (metal, polymer, ceramic, composite)")
	materialsRecommendCmd.Flags().StringVar(&recCorrosion, "min-corrosion", "", "Minimum corrosion resistance (poor, moderate, good, excellent)")
	materialsRecommendCmd.Flags().StringVar(&recOptimize, "optimize", "cost", "Objective: cost, weight or strength")
}

func runMaterialsRecommend(cmd *cobra.Command, args []string) error {
	db, err := openCatalog()
	if err != nil {
		return err
	}
	selector := &matdb.Selector{DB: db}

	best, ok := selector.Recommend(matdb.Filter{
		MinYieldStrength: recMinStrength,
		MaxCostPerKg:     recMaxCost,
		MinServiceTemp:   recMinTemp,
		Category:         matdb.Category(recCategory),
		MinCorrosion:     matdb.Level(recCorrosion),
	}, matdb.Objective(recOptimize))
	if !ok {
		return fmt.Errorf("no material matches the given requirements")
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     RECOMMENDED MATERIAL (optimize: %s)\n", recOptimize)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name:\t%s\n", best.Name)
	fmt.Fprintf(w, "  Grade:\t%s\n", best.Grade)
	fmt.Fprintf(w, "  Category:\t%s\n", best.Category)
	fmt.Fprintf(w, "  Yield Strength:\t%.0f MPa\n", best.YieldStrength)
	fmt.Fprintf(w, "  Young's Modulus:\t%.1f GPa\n", best.YoungsModulus)
	fmt.Fprintf(w, "  Density:\t%.0f kg/m³\n", best.Density)
	fmt.Fprintf(w, "  Cost:\t$%.2f/kg\n", best.CostPerKg)
	fmt.Fprintf(w, "  Max Service Temp:\t%.0f °C\n", best.MaxServiceTemp)
	fmt.Fprintf(w, "  Corrosion Resistance:\t%s\n", best.CorrosionResistance)
	fmt.Fprintf(w, "  Machinability:\t%s\n", best.Machinability)
	fmt.Fprintf(w, "  Weldability:\t%s\n", best.Weldability)
	w.Flush()
	fmt.Println()
	return nil
}
