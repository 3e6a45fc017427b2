package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/structcalc/internal/matdb"
)

var materialsFile string

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Material catalog commands",
	Long: `Browse and query the built-in material catalog:

  list       Show every material in the catalog
  search     Filter the catalog by engineering requirements
  recommend  Pick the best material for a set of requirements
  compare    Show selected materials side by side

Pass --materials-file to merge user-defined materials from a YAML file
into the catalog; entries sharing a name with a built-in material
replace it.`,
}

func init() {
	rootCmd.AddCommand(materialsCmd)

	materialsCmd.PersistentFlags().StringVar(&materialsFile, "materials-file", "",
		"YAML file of additional materials to merge into the catalog")
}

// openCatalog builds the catalog, merging --materials-file when given.
func openCatalog() (*matdb.Database, error) {
	db := matdb.NewDatabase()
	if materialsFile != "" {
		if err := db.LoadFile(materialsFile); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func printMaterialsTable(materials []matdb.MaterialProperties) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tCategory\tFy (MPa)\tE (GPa)\tDensity (kg/m³)\tCost ($/kg)\tMax Temp (°C)\tCorrosion\n")
	fmt.Fprintf(w, "  ────\t────────\t────────\t───────\t───────────────\t───────────\t─────────────\t─────────\n")
	for _, m := range materials {
		fmt.Fprintf(w, "  %s\t%s\t%.0f\t%.1f\t%.0f\t%.2f\t%.0f\t%s\n",
			m.Name, m.Category, m.YieldStrength, m.YoungsModulus,
			m.Density, m.CostPerKg, m.MaxServiceTemp, m.CorrosionResistance)
	}
	w.Flush()
}
