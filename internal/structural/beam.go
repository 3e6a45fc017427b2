package structural

import (
	"fmt"
	"math"
	"strings"
)

// DefaultMinSafetyFactor is the design margin a result must meet for
// IsSafe to report true.
const DefaultMinSafetyFactor = 1.5

// centerTolerance is the distance (m) within which a point load is
// treated as acting at midspan, selecting the PL³/48EI deflection
// formula over the general two-term one. Both agree at the true center.
const centerTolerance = 0.01

// ErrInvalidGeometry reports degenerate member dimensions. A zero width
// or height would zero the second moment of area and turn the
// deflection and stress formulas into divisions by zero, so the
// analyzers reject it up front instead of returning non-finite numbers.
var ErrInvalidGeometry = fmt.Errorf("invalid geometry")

// BeamAnalysisResult holds the outcome of one beam analysis.
// It is a pure value: created once per call, never mutated.
type BeamAnalysisResult struct {
	MaxDeflection float64 // mm
	MaxStress     float64 // MPa
	MaxMoment     float64 // N·m
	MaxShear      float64 // N
	SafetyFactor  float64 // yield strength / max stress
	Weight        float64 // kg
	Cost          float64 // USD
}

// IsSafe reports whether the safety factor meets DefaultMinSafetyFactor.
func (r *BeamAnalysisResult) IsSafe() bool {
	return r.IsSafeFor(DefaultMinSafetyFactor)
}

// IsSafeFor reports whether the safety factor meets an explicit minimum.
func (r *BeamAnalysisResult) IsSafeFor(minFactor float64) bool {
	return r.SafetyFactor >= minFactor
}

// Summary generates a human-readable report of the analysis.
func (r *BeamAnalysisResult) Summary() string {
	status := "✓ SAFE"
	if !r.IsSafe() {
		status = "✗ UNSAFE"
	}
	return fmt.Sprintf(`Beam Analysis Results
%s
Max Deflection:  %.2f mm
Max Stress:      %.1f MPa
Max Moment:      %.1f N·m
Max Shear:       %.1f N
Safety Factor:   %.2f
Weight:          %.2f kg
Cost:            $%.2f
Status:          %s
`, strings.Repeat("=", 50),
		r.MaxDeflection, r.MaxStress, r.MaxMoment, r.MaxShear,
		r.SafetyFactor, r.Weight, r.Cost, status)
}

// BeamAnalyzer computes closed-form results for single-span,
// linear-elastic, rectangular-section beams. It is bound to one
// material at construction and stateless afterwards, so one analyzer
// may serve concurrent callers.
type BeamAnalyzer struct {
	Material Material
}

// NewBeamAnalyzer creates a beam analyzer bound to a material.
func NewBeamAnalyzer(m Material) *BeamAnalyzer {
	return &BeamAnalyzer{Material: m}
}

// SimplySupportedPointLoad analyzes a simply supported beam carrying a
// point load at loadPosition metres from the left support.
//
//	length:       span (m)
//	load:         point load magnitude (N)
//	loadPosition: distance from left support (m)
//	width:        section width (m)
//	height:       section depth (m)
func (ba *BeamAnalyzer) SimplySupportedPointLoad(length, load, loadPosition, width, height float64) (*BeamAnalysisResult, error) {
	if err := checkGeometry(length, width, height); err != nil {
		return nil, err
	}

	i := RectSecondMoment(width, height)
	e := ba.Material.elasticModulusPa()

	a := loadPosition
	b := length - loadPosition
	maxMoment := load * a * b / length

	var deflection float64
	if math.Abs(a-b) < centerTolerance {
		// Load at midspan
		deflection = load * math.Pow(length, 3) / (48 * e * i)
	} else {
		// Deflection at the load point
		deflection = load * a * a * b * b / (3 * e * i * length)
	}

	maxShear := math.Max(load*b/length, load*a/length)

	return ba.finish(maxMoment, maxShear, deflection, length, width, height), nil
}

// Cantilever analyzes a cantilever beam with a point load at the free end.
func (ba *BeamAnalyzer) Cantilever(length, load, width, height float64) (*BeamAnalysisResult, error) {
	if err := checkGeometry(length, width, height); err != nil {
		return nil, err
	}

	i := RectSecondMoment(width, height)
	e := ba.Material.elasticModulusPa()

	// Maximum moment at the fixed end, deflection at the free end
	maxMoment := load * length
	deflection := load * math.Pow(length, 3) / (3 * e * i)
	maxShear := load

	return ba.finish(maxMoment, maxShear, deflection, length, width, height), nil
}

// UniformLoad analyzes a simply supported beam under a uniformly
// distributed load (N/m).
func (ba *BeamAnalyzer) UniformLoad(length, loadPerLength, width, height float64) (*BeamAnalysisResult, error) {
	if err := checkGeometry(length, width, height); err != nil {
		return nil, err
	}

	i := RectSecondMoment(width, height)
	e := ba.Material.elasticModulusPa()

	// Moment and deflection peak at midspan, shear at the supports
	maxMoment := loadPerLength * length * length / 8
	deflection := 5 * loadPerLength * math.Pow(length, 4) / (384 * e * i)
	maxShear := loadPerLength * length / 2

	return ba.finish(maxMoment, maxShear, deflection, length, width, height), nil
}

// finish derives the configuration-independent result fields: bending
// stress from the peak moment, the safety factor against yield, and the
// member's weight and cost. deflection is in metres and is converted to
// millimetres here.
func (ba *BeamAnalyzer) finish(maxMoment, maxShear, deflection, length, width, height float64) *BeamAnalysisResult {
	i := RectSecondMoment(width, height)
	c := height / 2

	stressMPa := maxMoment * c / i / 1e6
	safety := ba.Material.YieldStrength / stressMPa

	weight := length * width * height * ba.Material.Density
	cost := weight * ba.Material.CostPerKg

	return &BeamAnalysisResult{
		MaxDeflection: deflection * 1000,
		MaxStress:     stressMPa,
		MaxMoment:     maxMoment,
		MaxShear:      maxShear,
		SafetyFactor:  safety,
		Weight:        weight,
		Cost:          cost,
	}
}

// RectSecondMoment returns the second moment of area of a rectangle
// about its horizontal centroidal axis, I = b·h³/12.
func RectSecondMoment(width, height float64) float64 {
	return width * math.Pow(height, 3) / 12
}

func checkGeometry(length, width, height float64) error {
	if length <= 0 || width <= 0 || height <= 0 {
		return fmt.Errorf("%w: length=%.4f, width=%.4f, height=%.4f", ErrInvalidGeometry, length, width, height)
	}
	return nil
}
