package structural

// Material holds the mechanical properties the analyzers need.
// Values are never mutated by the engine.
type Material struct {
	Name          string
	YoungsModulus float64 // E (GPa)
	YieldStrength float64 // Fy (MPa)
	Density       float64 // kg/m³
	CostPerKg     float64 // USD/kg
}

// SteelA36 returns standard ASTM A36 structural steel.
func SteelA36() Material {
	return Material{
		Name:          "Steel A36",
		YoungsModulus: 200,
		YieldStrength: 250,
		Density:       7850,
		CostPerKg:     1.50,
	}
}

// Aluminum6061 returns 6061-T6 aluminum alloy.
func Aluminum6061() Material {
	return Material{
		Name:          "Aluminum 6061-T6",
		YoungsModulus: 69,
		YieldStrength: 276,
		Density:       2700,
		CostPerKg:     3.50,
	}
}

// elasticModulusPa converts the stored modulus from GPa to Pa.
func (m Material) elasticModulusPa() float64 {
	return m.YoungsModulus * 1e9
}
