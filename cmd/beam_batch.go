package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/structcalc/internal/structural"
)

var batchFile string

var beamBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze many beams from an Excel worksheet",
	Long: `Run beam analyses for every row of an Excel worksheet.

The first sheet is read, skipping the header row. Expected columns:

  A  material       catalog name or tag (steel_a36, aluminum_6061)
  B  beam_type      simply_supported | cantilever | distributed
  C  length         span (m)
  D  load           N for point loads, N/m for distributed
  E  load_position  m from the left support (simply_supported only,
                    blank = midspan)
  F  width          section width (m)
  G  height         section depth (m)

Rows that fail to parse or analyze are skipped and reported at the end.

Example:
  structcalc beam batch --file cases.xlsx`,
	RunE: runBeamBatch,
}

func init() {
	beamCmd.AddCommand(beamBatchCmd)

	beamBatchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Excel workbook of beam cases [required]")
	beamBatchCmd.MarkFlagRequired("file")
}

type batchCase struct {
	material structural.Material
	beamType string
	length   float64
	load     float64
	position float64
	width    float64
	height   float64
}

func runBeamBatch(cmd *cobra.Command, args []string) error {
	f, err := excelize.OpenFile(batchFile)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return fmt.Errorf("sheet %q has no data rows", sheet)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     BATCH BEAM ANALYSIS - %s\n", batchFile)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Row\tMaterial\tType\tDeflection (mm)\tStress (MPa)\tSF\tStatus\n")
	fmt.Fprintf(w, "  ───\t────────\t────\t───────────────\t────────────\t──\t──────\n")

	analyzed := 0
	var skipped []string
	for i := 1; i < len(rows); i++ {
		bc, err := parseBatchRow(rows[i])
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		analyzer := structural.NewBeamAnalyzer(bc.material)
		var res *structural.BeamAnalysisResult
		switch bc.beamType {
		case "cantilever":
			res, err = analyzer.Cantilever(bc.length, bc.load, bc.width, bc.height)
		case "distributed":
			res, err = analyzer.UniformLoad(bc.length, bc.load, bc.width, bc.height)
		default:
			res, err = analyzer.SimplySupportedPointLoad(bc.length, bc.load, bc.position, bc.width, bc.height)
		}
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		status := "SAFE"
		if !res.IsSafe() {
			status = "UNSAFE"
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%.3f\t%.2f\t%.2f\t%s\n",
			i+1, bc.material.Name, bc.beamType, res.MaxDeflection, res.MaxStress, res.SafetyFactor, status)
		analyzed++
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  Analyzed %d of %d rows.\n", analyzed, len(rows)-1)

	if len(skipped) > 0 {
		fmt.Println()
		fmt.Println("SKIPPED:")
		for _, s := range skipped {
			fmt.Printf("  %s\n", s)
		}
	}
	fmt.Println()
	return nil
}

func parseBatchRow(row []string) (batchCase, error) {
	if len(row) < 7 {
		return batchCase{}, fmt.Errorf("expected 7 columns, got %d", len(row))
	}

	material, err := lookupMaterial(row[0])
	if err != nil {
		return batchCase{}, err
	}

	bc := batchCase{material: material, beamType: row[1]}
	switch bc.beamType {
	case "simply_supported", "cantilever", "distributed":
	default:
		return batchCase{}, fmt.Errorf("unknown beam type %q", row[1])
	}

	if bc.length, err = parseCell(row[2], "length"); err != nil {
		return batchCase{}, err
	}
	if bc.load, err = parseCell(row[3], "load"); err != nil {
		return batchCase{}, err
	}
	if row[4] != "" {
		if bc.position, err = parseCell(row[4], "load_position"); err != nil {
			return batchCase{}, err
		}
	}
	if bc.width, err = parseCell(row[5], "width"); err != nil {
		return batchCase{}, err
	}
	if bc.height, err = parseCell(row[6], "height"); err != nil {
		return batchCase{}, err
	}

	if bc.beamType == "simply_supported" && bc.position == 0 {
		bc.position = bc.length / 2
	}
	return bc, nil
}

func parseCell(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s value %q", name, s)
	}
	return v, nil
}
