package structural

import (
	"math"
)

// LongColumnSlenderness separates Euler-governed ("long") columns from
// crushing-governed ("short") ones. Only the buckling mode is
// evaluated here; no crushing check is performed.
const LongColumnSlenderness = 120.0

// EndCondition names the four supported column end restraints.
type EndCondition int

const (
	PinnedPinned EndCondition = iota
	FixedFree
	FixedFixed
	FixedPinned
)

// ParseEndCondition maps a restraint tag to its EndCondition. Unknown
// tags fall back to PinnedPinned; this tolerant default is documented
// behavior, not an error.
func ParseEndCondition(tag string) EndCondition {
	switch tag {
	case "fixed-free":
		return FixedFree
	case "fixed-fixed":
		return FixedFixed
	case "fixed-pinned":
		return FixedPinned
	default:
		return PinnedPinned
	}
}

// K returns the effective length factor for the restraint condition.
func (ec EndCondition) K() float64 {
	switch ec {
	case FixedFree:
		return 2.0
	case FixedFixed:
		return 0.5
	case FixedPinned:
		return 0.7
	default:
		return 1.0
	}
}

func (ec EndCondition) String() string {
	switch ec {
	case FixedFree:
		return "fixed-free"
	case FixedFixed:
		return "fixed-fixed"
	case FixedPinned:
		return "fixed-pinned"
	default:
		return "pinned-pinned"
	}
}

// ColumnBucklingResult holds the outcome of an Euler buckling analysis.
type ColumnBucklingResult struct {
	CriticalLoadN    float64
	CriticalLoadKN   float64
	SlendernessRatio float64
	EndCondition     EndCondition
	IsLongColumn     bool
}

// ColumnAnalyzer evaluates the elastic buckling mode of rectangular
// columns. Like BeamAnalyzer it is bound to one material and stateless.
type ColumnAnalyzer struct {
	Material Material
}

// NewColumnAnalyzer creates a column analyzer bound to a material.
func NewColumnAnalyzer(m Material) *ColumnAnalyzer {
	return &ColumnAnalyzer{Material: m}
}

// EulerBuckling computes the critical buckling load P_cr = π²·E·I/L_e²
// for an axially loaded column.
//
//	length: column height (m)
//	width:  section width (m)
//	height: section depth (m)
//	end:    end restraint condition
func (ca *ColumnAnalyzer) EulerBuckling(length, width, height float64, end EndCondition) (*ColumnBucklingResult, error) {
	if err := checkGeometry(length, width, height); err != nil {
		return nil, err
	}

	// Buckling occurs about the weak axis
	iMin := math.Min(
		RectSecondMoment(width, height),
		RectSecondMoment(height, width),
	)

	effLength := end.K() * length
	e := ca.Material.elasticModulusPa()
	pcr := math.Pi * math.Pi * e * iMin / (effLength * effLength)

	area := width * height
	r := math.Sqrt(iMin / area) // radius of gyration
	slenderness := effLength / r

	return &ColumnBucklingResult{
		CriticalLoadN:    pcr,
		CriticalLoadKN:   pcr / 1000,
		SlendernessRatio: slenderness,
		EndCondition:     end,
		IsLongColumn:     slenderness > LongColumnSlenderness,
	}, nil
}
