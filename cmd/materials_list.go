package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var materialsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every material in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openCatalog()
		if err != nil {
			return err
		}

		materials := db.Materials()
		fmt.Println()
		fmt.Println("═══════════════════════════════════════════════════════════════")
		fmt.Printf("     MATERIAL CATALOG (%d materials)\n", len(materials))
		fmt.Println("═══════════════════════════════════════════════════════════════")
		fmt.Println()
		printMaterialsTable(materials)
		fmt.Println()
		return nil
	},
}

func init() {
	materialsCmd.AddCommand(materialsListCmd)
}
