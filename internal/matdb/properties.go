package matdb

import (
	"fmt"

	"github.com/alexiusacademia/structcalc/internal/structural"
)

// Category classifies a material family.
type Category string

const (
	Metal     Category = "metal"
	Polymer   Category = "polymer"
	Ceramic   Category = "ceramic"
	Composite Category = "composite"
)

// Level is an ordered qualitative rating used for corrosion
// resistance, machinability and weldability.
type Level string

const (
	Poor      Level = "poor"
	Moderate  Level = "moderate"
	Good      Level = "good"
	Excellent Level = "excellent"
)

// rank orders levels so "at least good" comparisons work; unknown
// levels rank lowest.
func (l Level) rank() int {
	switch l {
	case Poor:
		return 0
	case Moderate:
		return 1
	case Good:
		return 2
	case Excellent:
		return 3
	default:
		return -1
	}
}

// AtLeast reports whether l meets the minimum rating min.
func (l Level) AtLeast(min Level) bool {
	return l.rank() >= min.rank()
}

// MaterialProperties is one catalog row: the full engineering data
// sheet for a stock material.
type MaterialProperties struct {
	// Identification
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	Grade    string   `yaml:"grade"`

	// Mechanical properties
	YoungsModulus    float64 `yaml:"youngs_modulus"`    // GPa
	YieldStrength    float64 `yaml:"yield_strength"`    // MPa
	UltimateStrength float64 `yaml:"ultimate_strength"` // MPa
	PoissonsRatio    float64 `yaml:"poissons_ratio"`
	Density          float64 `yaml:"density"` // kg/m³
	Hardness         float64 `yaml:"hardness,omitempty"` // HB

	// Thermal properties
	ThermalConductivity float64 `yaml:"thermal_conductivity"` // W/(m·K)
	ThermalExpansion    float64 `yaml:"thermal_expansion"`    // 1e-6/K
	MaxServiceTemp      float64 `yaml:"max_service_temp"`     // °C
	MeltingPoint        float64 `yaml:"melting_point,omitempty"` // °C

	// Cost and availability
	CostPerKg    float64 `yaml:"cost_per_kg"` // USD/kg
	Availability string  `yaml:"availability"`

	// Environment and manufacturability
	CorrosionResistance Level `yaml:"corrosion_resistance"`
	Machinability       Level `yaml:"machinability"`
	Weldability         Level `yaml:"weldability"`
}

func (p MaterialProperties) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Grade)
}

// Structural converts a catalog row into the engine's material value.
func (p MaterialProperties) Structural() structural.Material {
	return structural.Material{
		Name:          p.Name,
		YoungsModulus: p.YoungsModulus,
		YieldStrength: p.YieldStrength,
		Density:       p.Density,
		CostPerKg:     p.CostPerKg,
	}
}
