// Package report renders one-page PDF summaries of analysis results.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/structcalc/internal/structural"
)

// BeamReport collects everything needed to document a beam analysis.
type BeamReport struct {
	Configuration string // e.g. "Simply supported, point load"
	Material      structural.Material
	Length        float64 // m
	Load          float64 // N or N/m
	LoadPosition  float64 // m, point-load case only
	Width         float64 // m
	Height        float64 // m
	Result        *structural.BeamAnalysisResult
}

// Write renders the report as PDF to w.
func (r BeamReport) Write(w io.Writer) error {
	pdf := newPage("Beam Analysis Report")

	section(pdf, "Configuration")
	row(pdf, "Type", r.Configuration)
	row(pdf, "Material", r.Material.Name)
	row(pdf, "Span", fmt.Sprintf("%.3f m", r.Length))
	row(pdf, "Load", fmt.Sprintf("%.2f", r.Load))
	if r.LoadPosition > 0 {
		row(pdf, "Load position", fmt.Sprintf("%.3f m from left support", r.LoadPosition))
	}
	row(pdf, "Section", fmt.Sprintf("%.0f x %.0f mm", r.Width*1000, r.Height*1000))

	section(pdf, "Material Properties")
	row(pdf, "Young's modulus", fmt.Sprintf("%.1f GPa", r.Material.YoungsModulus))
	row(pdf, "Yield strength", fmt.Sprintf("%.1f MPa", r.Material.YieldStrength))
	row(pdf, "Density", fmt.Sprintf("%.0f kg/m3", r.Material.Density))
	row(pdf, "Cost", fmt.Sprintf("%.2f USD/kg", r.Material.CostPerKg))

	section(pdf, "Results")
	row(pdf, "Max deflection", fmt.Sprintf("%.3f mm", r.Result.MaxDeflection))
	row(pdf, "Max stress", fmt.Sprintf("%.2f MPa", r.Result.MaxStress))
	row(pdf, "Max moment", fmt.Sprintf("%.2f N-m", r.Result.MaxMoment))
	row(pdf, "Max shear", fmt.Sprintf("%.2f N", r.Result.MaxShear))
	row(pdf, "Safety factor", fmt.Sprintf("%.2f", r.Result.SafetyFactor))
	row(pdf, "Weight", fmt.Sprintf("%.3f kg", r.Result.Weight))
	row(pdf, "Cost", fmt.Sprintf("%.2f USD", r.Result.Cost))

	status := "SAFE"
	if !r.Result.IsSafe() {
		status = "UNSAFE"
	}
	row(pdf, "Status", fmt.Sprintf("%s (min safety factor %.1f)", status, structural.DefaultMinSafetyFactor))

	return pdf.Output(w)
}

// WriteFile renders the report to a PDF file, creating directories as
// needed.
func (r BeamReport) WriteFile(path string) error {
	return writeFile(path, r.Write)
}

// ColumnReport documents an Euler buckling analysis.
type ColumnReport struct {
	Material structural.Material
	Length   float64 // m
	Width    float64 // m
	Height   float64 // m
	Result   *structural.ColumnBucklingResult
}

// Write renders the report as PDF to w.
func (r ColumnReport) Write(w io.Writer) error {
	pdf := newPage("Column Buckling Report")

	section(pdf, "Configuration")
	row(pdf, "Material", r.Material.Name)
	row(pdf, "Length", fmt.Sprintf("%.3f m", r.Length))
	row(pdf, "Section", fmt.Sprintf("%.0f x %.0f mm", r.Width*1000, r.Height*1000))
	row(pdf, "End condition", r.Result.EndCondition.String())
	row(pdf, "Effective length factor", fmt.Sprintf("%.2f", r.Result.EndCondition.K()))

	section(pdf, "Results")
	row(pdf, "Critical load", fmt.Sprintf("%.2f kN", r.Result.CriticalLoadKN))
	row(pdf, "Slenderness ratio", fmt.Sprintf("%.2f", r.Result.SlendernessRatio))
	classification := "short (crushing-governed)"
	if r.Result.IsLongColumn {
		classification = "long (Euler-governed)"
	}
	row(pdf, "Classification", classification)

	return pdf.Output(w)
}

// WriteFile renders the report to a PDF file.
func (r ColumnReport) WriteFile(path string) error {
	return writeFile(path, r.Write)
}

func newPage(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s by structcalc", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(6)
	return pdf
}

func section(pdf *gofpdf.Fpdf, name string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, name)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.Cell(60, 6, label)
	pdf.Cell(0, 6, value)
	pdf.Ln(6)
}

func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
