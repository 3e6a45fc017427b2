package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// RenderASCII draws terminal charts of the moment, shear and deflection
// distributions along the span.
func RenderASCII(c *Curves) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(renderChart("BENDING MOMENT (N·m)", c.Moment))
	sb.WriteString(renderChart("SHEAR FORCE (N)", c.Shear))
	sb.WriteString(renderChart("DEFLECTION (mm)", c.Deflection))

	if len(c.X) > 1 {
		sb.WriteString(fmt.Sprintf("  Span: 0 – %.2f m, %d stations\n", c.X[len(c.X)-1], len(c.X)))
	}

	return sb.String()
}

func renderChart(title string, data []float64) string {
	var sb strings.Builder
	sb.WriteString("  " + title + "\n")
	sb.WriteString("  " + strings.Repeat("─", len(title)) + "\n")

	if MaxAbs(data) == 0 {
		sb.WriteString("  (zero along the span)\n\n")
		return sb.String()
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	return sb.String()
}
