package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/structcalc/internal/diagram"
	"github.com/alexiusacademia/structcalc/internal/structural"
)

var (
	cantMaterial string
	cantLength   float64
	cantLoad     float64
	cantWidth    float64
	cantHeight   float64
	cantASCII    bool
	cantDiagram  string
	cantReport   string
)

var beamCantileverCmd = &cobra.Command{
	Use:   "cantilever",
	Short: "Analyze a cantilever beam with an end load",
	Long: `Analyze a cantilever beam fixed at one end and carrying a point
load at the free end. The moment peaks at the fixed end and the
deflection at the free end.

Example:
  structcalc beam cantilever --length 1.5 --load 800 --width 0.04 --height 0.08`,
	RunE: runBeamCantilever,
}

func init() {
	beamCmd.AddCommand(beamCantileverCmd)

	beamCantileverCmd.Flags().StringVarP(&cantMaterial, "material", "m", "Steel A36", "Material name from the catalog")
	beamCantileverCmd.Flags().Float64VarP(&cantLength, "length", "L", 0, "Beam length (m) [required]")
	beamCantileverCmd.Flags().Float64VarP(&cantLoad, "load", "P", 0, "Point load at the free end (N) [required]")
	beamCantileverCmd.Flags().Float64VarP(&cantWidth, "width", "b", 0, "Section width (m) [required]")
	beamCantileverCmd.Flags().Float64VarP(&cantHeight, "height", "H", 0, "Section depth (m) [required]")
	beamCantileverCmd.Flags().BoolVar(&cantASCII, "ascii", false, "Draw moment/shear/deflection charts in the terminal")
	beamCantileverCmd.Flags().StringVar(&cantDiagram, "diagram", "", "Export diagrams to image files (png/svg/pdf)")
	beamCantileverCmd.Flags().StringVar(&cantReport, "report", "", "Write a PDF report to this path")

	beamCantileverCmd.MarkFlagRequired("length")
	beamCantileverCmd.MarkFlagRequired("load")
	beamCantileverCmd.MarkFlagRequired("width")
	beamCantileverCmd.MarkFlagRequired("height")
}

func runBeamCantilever(cmd *cobra.Command, args []string) error {
	material, err := lookupMaterial(cantMaterial)
	if err != nil {
		return err
	}

	analyzer := structural.NewBeamAnalyzer(material)
	res, err := analyzer.Cantilever(cantLength, cantLoad, cantWidth, cantHeight)
	if err != nil {
		return err
	}

	printBeamInputs("cantilever, end load", material, [][2]string{
		{"Length (L)", fmt.Sprintf("%.3f m", cantLength)},
		{"End Load (P)", fmt.Sprintf("%.2f N", cantLoad)},
		{"Section (b x h)", fmt.Sprintf("%.0f x %.0f mm", cantWidth*1000, cantHeight*1000)},
	})
	printBeamResult(res)

	return emitBeamArtifacts(diagram.BeamCase{
		Config:   diagram.CantileverEnd,
		Material: material,
		Length:   cantLength,
		Load:     cantLoad,
		Width:    cantWidth,
		Height:   cantHeight,
	}, res, "Cantilever, end load", cantASCII, cantDiagram, cantReport)
}
