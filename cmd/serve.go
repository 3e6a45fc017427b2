package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/structcalc/internal/config"
	"github.com/alexiusacademia/structcalc/internal/httpserver"
	"github.com/alexiusacademia/structcalc/internal/matdb"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve the analyzers and the material catalog as a JSON REST API.

Configuration comes from the environment (a .env file in the working
directory is loaded when present):

  STRUCTCALC_HOST            listen host (default 0.0.0.0)
  STRUCTCALC_PORT            listen port (default 5000)
  STRUCTCALC_MATERIALS_FILE  optional YAML file of extra materials

Endpoints:

  GET  /health
  POST /api/beam/analyze
  POST /api/column/analyze
  POST /api/materials/search
  POST /api/materials/recommend`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg, err := config.LoadServe()
	if err != nil {
		return err
	}

	db := matdb.NewDatabase()
	if cfg.MaterialsFile != "" {
		if err := db.LoadFile(cfg.MaterialsFile); err != nil {
			return fmt.Errorf("load materials file: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpserver.NewRouter(db),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	fmt.Printf("structcalc API listening on http://%s\n", cfg.Addr())
	return srv.ListenAndServe()
}
