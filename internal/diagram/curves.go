package diagram

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/structcalc/internal/structural"
)

// BeamConfig identifies the loading configuration being drawn.
type BeamConfig int

const (
	SimplySupportedPoint BeamConfig = iota
	CantileverEnd
	UniformDistributed
)

// BeamCase describes one beam analysis for plotting purposes.
type BeamCase struct {
	Config       BeamConfig
	Material     structural.Material
	Length       float64 // m
	Load         float64 // N (point) or N/m (distributed)
	LoadPosition float64 // m from left support, point-load case only
	Width        float64 // m
	Height       float64 // m
}

// Curves holds the internal force and deflection distributions sampled
// along the span.
type Curves struct {
	X          []float64 // station (m)
	Moment     []float64 // N·m
	Shear      []float64 // N
	Deflection []float64 // mm
}

// SampleBeam evaluates the closed-form moment, shear and deflection
// distributions at n+1 evenly spaced stations. The sampled maxima match
// the engine's reported peak values at the corresponding stations.
func SampleBeam(bc BeamCase, n int) (*Curves, error) {
	if bc.Length <= 0 || bc.Width <= 0 || bc.Height <= 0 {
		return nil, fmt.Errorf("%w: length=%.4f, width=%.4f, height=%.4f",
			structural.ErrInvalidGeometry, bc.Length, bc.Width, bc.Height)
	}
	if n < 2 {
		n = 2
	}

	e := bc.Material.YoungsModulus * 1e9
	i := structural.RectSecondMoment(bc.Width, bc.Height)
	ei := e * i

	c := &Curves{
		X:          make([]float64, n+1),
		Moment:     make([]float64, n+1),
		Shear:      make([]float64, n+1),
		Deflection: make([]float64, n+1),
	}

	l := bc.Length
	for k := 0; k <= n; k++ {
		x := l * float64(k) / float64(n)
		c.X[k] = x

		switch bc.Config {
		case CantileverEnd:
			// Fixed at x=0, load P at the free end
			p := bc.Load
			c.Shear[k] = p
			c.Moment[k] = p * (l - x)
			c.Deflection[k] = p * x * x * (3*l - x) / (6 * ei) * 1000

		case UniformDistributed:
			w := bc.Load
			c.Shear[k] = w * (l/2 - x)
			c.Moment[k] = w * x * (l - x) / 2
			c.Deflection[k] = w * x * (math.Pow(l, 3) - 2*l*x*x + math.Pow(x, 3)) / (24 * ei) * 1000

		default: // SimplySupportedPoint
			p := bc.Load
			a := bc.LoadPosition
			b := l - a
			r1 := p * b / l
			r2 := p * a / l
			if x <= a {
				c.Shear[k] = r1
				c.Moment[k] = r1 * x
				c.Deflection[k] = p * b * x * (l*l - b*b - x*x) / (6 * l * ei) * 1000
			} else {
				xr := l - x
				c.Shear[k] = -r2
				c.Moment[k] = r2 * xr
				c.Deflection[k] = p * a * xr * (l*l - a*a - xr*xr) / (6 * l * ei) * 1000
			}
		}
	}

	return c, nil
}

// MaxAbs returns the largest magnitude in vals.
func MaxAbs(vals []float64) float64 {
	max := 0.0
	for _, v := range vals {
		if math.Abs(v) > max {
			max = math.Abs(v)
		}
	}
	return max
}
