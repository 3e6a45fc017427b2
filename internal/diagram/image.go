package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportMomentDiagram exports the bending moment distribution to an
// image file (format by extension: .png, .svg or .pdf).
func ExportMomentDiagram(c *Curves, filename string) error {
	return exportCurve(c.X, c.Moment, "Bending Moment Diagram", "Moment (N·m)", filename)
}

// ExportShearDiagram exports the shear force distribution.
func ExportShearDiagram(c *Curves, filename string) error {
	return exportCurve(c.X, c.Shear, "Shear Force Diagram", "Shear (N)", filename)
}

// ExportDeflectionDiagram exports the deflected shape.
func ExportDeflectionDiagram(c *Curves, filename string) error {
	return exportCurve(c.X, c.Deflection, "Deflection Diagram", "Deflection (mm)", filename)
}

func exportCurve(xs, ys []float64, title, yLabel, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Span (m)"
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(line)

	// Zero reference line
	if len(xs) > 0 {
		zero, err := plotter.NewLine(plotter.XYs{
			{X: xs[0], Y: 0},
			{X: xs[len(xs)-1], Y: 0},
		})
		if err != nil {
			return err
		}
		zero.LineStyle.Width = vg.Points(1)
		zero.LineStyle.Color = color.Gray{Y: 128}
		zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(zero)
	}

	// Mark the peak value
	peakX, peakY := xs[0], ys[0]
	for i := range ys {
		if abs(ys[i]) > abs(peakY) {
			peakX, peakY = xs[i], ys[i]
		}
	}
	peak, err := plotter.NewScatter(plotter.XYs{{X: peakX, Y: peakY}})
	if err != nil {
		return err
	}
	peak.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	peak.GlyphStyle.Radius = vg.Points(4)
	p.Add(peak)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 8 * vg.Inch
	height := 5 * vg.Inch

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
