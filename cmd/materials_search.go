package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/structcalc/internal/matdb"
)

var (
	searchMinStrength float64
	searchMaxCost     float64
	searchMinTemp     float64
	searchCategory    string
	searchCorrosion   string
)

var materialsSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Filter the catalog by engineering requirements",
	Long: `List every catalog material satisfying the given constraints.
Omitted constraints do not filter.

Example:
  # strong, cheap, and at least moderately corrosion resistant
  structcalc materials search --min-strength 250 --max-cost 5 --min-corrosion moderate`,
	RunE: runMaterialsSearch,
}

func init() {
	materialsCmd.AddCommand(materialsSearchCmd)

	materialsSearchCmd.Flags().Float64Var(&searchMinStrength, "min-strength", 0, "Minimum yield strength (MPa)")
	materialsSearchCmd.Flags().Float64Var(&searchMaxCost, "max-cost", 0, "Maximum cost (USD/kg)")
	materialsSearchCmd.Flags().Float64Var(&searchMinTemp, "min-temp", 0, "Minimum service temperature (°C)")
	materialsSearchCmd.Flags().StringVar(&searchCategory, "category", "", "Material category (metal, polymer, ceramic, composite)")
	materialsSearchCmd.Flags().StringVar(&searchCorrosion, "min-corrosion", "", "Minimum corrosion resistance (poor, moderate, good, excellent)")
}

func runMaterialsSearch(cmd *cobra.Command, args []string) error {
	db, err := openCatalog()
	if err != nil {
		return err
	}

	results := db.Search(matdb.Filter{
		MinYieldStrength: searchMinStrength,
		MaxCostPerKg:     searchMaxCost,
		MinServiceTemp:   searchMinTemp,
		Category:         matdb.Category(searchCategory),
		MinCorrosion:     matdb.Level(searchCorrosion),
	})

	fmt.Println()
	if len(results) == 0 {
		fmt.Println("  No materials match the given requirements.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  %d material(s) match:\n", len(results))
	fmt.Println()
	printMaterialsTable(results)
	fmt.Println()
	return nil
}
