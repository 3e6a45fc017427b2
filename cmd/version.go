package cmd

import (
	"fmt"

	"github.com/alexiusacademia/structcalc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of structcalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("structcalc v%s\n", version.Version)
		fmt.Println("Structural Mechanics Calculator")
		fmt.Printf("Build: %s (%s)\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
