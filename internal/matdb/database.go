package matdb

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Database holds the material catalog. The built-in table covers the
// common structural stock; LoadFile merges user-defined materials.
type Database struct {
	materials []MaterialProperties
}

// NewDatabase creates a catalog populated with the built-in materials.
func NewDatabase() *Database {
	return &Database{materials: builtin()}
}

// Materials returns a copy of the catalog rows.
func (db *Database) Materials() []MaterialProperties {
	out := make([]MaterialProperties, len(db.materials))
	copy(out, db.materials)
	return out
}

// LoadFile merges materials from a YAML file into the catalog. A file
// entry with the same name as an existing row replaces it.
func (db *Database) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc struct {
		Materials []MaterialProperties `yaml:"materials"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse materials file %s: %w", path, err)
	}

	for _, m := range doc.Materials {
		if m.Name == "" {
			return fmt.Errorf("materials file %s: entry without a name", path)
		}
		db.add(m)
	}
	return nil
}

func (db *Database) add(m MaterialProperties) {
	for i, existing := range db.materials {
		if strings.EqualFold(existing.Name, m.Name) {
			db.materials[i] = m
			return
		}
	}
	db.materials = append(db.materials, m)
}

// Filter holds search criteria. Zero values mean "no constraint".
type Filter struct {
	MinYieldStrength float64  // MPa
	MaxCostPerKg     float64  // USD/kg
	MinServiceTemp   float64  // °C
	Category         Category // empty = any
	MinCorrosion     Level    // empty = any
}

// Search returns every material satisfying the filter, in catalog order.
func (db *Database) Search(f Filter) []MaterialProperties {
	var results []MaterialProperties
	for _, m := range db.materials {
		if f.MinYieldStrength > 0 && m.YieldStrength < f.MinYieldStrength {
			continue
		}
		if f.MaxCostPerKg > 0 && m.CostPerKg > f.MaxCostPerKg {
			continue
		}
		if f.MinServiceTemp > 0 && m.MaxServiceTemp < f.MinServiceTemp {
			continue
		}
		if f.Category != "" && m.Category != f.Category {
			continue
		}
		if f.MinCorrosion != "" && !m.CorrosionResistance.AtLeast(f.MinCorrosion) {
			continue
		}
		results = append(results, m)
	}
	return results
}

// GetByName looks a material up case-insensitively.
func (db *Database) GetByName(name string) (MaterialProperties, bool) {
	for _, m := range db.materials {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return MaterialProperties{}, false
}

func builtin() []MaterialProperties {
	return []MaterialProperties{
		{
			Name: "Steel A36", Category: Metal, Grade: "ASTM A36",
			YoungsModulus: 200, YieldStrength: 250, UltimateStrength: 400,
			PoissonsRatio: 0.26, Density: 7850, Hardness: 119,
			ThermalConductivity: 51.9, ThermalExpansion: 11.7,
			MaxServiceTemp: 425, MeltingPoint: 1510,
			CostPerKg: 1.50, Availability: "common",
			CorrosionResistance: Poor, Machinability: Good, Weldability: Excellent,
		},
		{
			Name: "Steel 4140", Category: Metal, Grade: "AISI 4140",
			YoungsModulus: 205, YieldStrength: 415, UltimateStrength: 655,
			PoissonsRatio: 0.29, Density: 7850, Hardness: 197,
			ThermalConductivity: 42.6, ThermalExpansion: 12.3,
			MaxServiceTemp: 425, MeltingPoint: 1416,
			CostPerKg: 2.20, Availability: "common",
			CorrosionResistance: Moderate, Machinability: Moderate, Weldability: Good,
		},
		{
			Name: "Stainless Steel 304", Category: Metal, Grade: "AISI 304",
			YoungsModulus: 193, YieldStrength: 215, UltimateStrength: 505,
			PoissonsRatio: 0.29, Density: 8000, Hardness: 123,
			ThermalConductivity: 16.2, ThermalExpansion: 17.3,
			MaxServiceTemp: 870, MeltingPoint: 1450,
			CostPerKg: 4.50, Availability: "common",
			CorrosionResistance: Excellent, Machinability: Moderate, Weldability: Excellent,
		},
		{
			Name: "Aluminum 6061-T6", Category: Metal, Grade: "AA 6061-T6",
			YoungsModulus: 69, YieldStrength: 276, UltimateStrength: 310,
			PoissonsRatio: 0.33, Density: 2700, Hardness: 95,
			ThermalConductivity: 167, ThermalExpansion: 23.6,
			MaxServiceTemp: 200, MeltingPoint: 582,
			CostPerKg: 3.50, Availability: "common",
			CorrosionResistance: Good, Machinability: Excellent, Weldability: Good,
		},
		{
			Name: "Aluminum 7075-T6", Category: Metal, Grade: "AA 7075-T6",
			YoungsModulus: 71.7, YieldStrength: 503, UltimateStrength: 572,
			PoissonsRatio: 0.33, Density: 2810, Hardness: 150,
			ThermalConductivity: 130, ThermalExpansion: 23.4,
			MaxServiceTemp: 175, MeltingPoint: 477,
			CostPerKg: 5.00, Availability: "common",
			CorrosionResistance: Moderate, Machinability: Good, Weldability: Poor,
		},
		{
			Name: "Titanium Ti-6Al-4V", Category: Metal, Grade: "Grade 5",
			YoungsModulus: 113.8, YieldStrength: 880, UltimateStrength: 950,
			PoissonsRatio: 0.342, Density: 4430, Hardness: 334,
			ThermalConductivity: 6.7, ThermalExpansion: 8.6,
			MaxServiceTemp: 400, MeltingPoint: 1660,
			CostPerKg: 35.00, Availability: "moderate",
			CorrosionResistance: Excellent, Machinability: Poor, Weldability: Moderate,
		},
		{
			Name: "ABS Plastic", Category: Polymer, Grade: "Standard",
			YoungsModulus: 2.3, YieldStrength: 40, UltimateStrength: 45,
			PoissonsRatio: 0.35, Density: 1050,
			ThermalConductivity: 0.25, ThermalExpansion: 90,
			MaxServiceTemp: 80,
			CostPerKg: 2.50, Availability: "common",
			CorrosionResistance: Excellent, Machinability: Excellent, Weldability: Poor,
		},
		{
			Name: "Nylon 6/6", Category: Polymer, Grade: "PA66",
			YoungsModulus: 2.9, YieldStrength: 75, UltimateStrength: 85,
			PoissonsRatio: 0.39, Density: 1140,
			ThermalConductivity: 0.25, ThermalExpansion: 80,
			MaxServiceTemp: 120,
			CostPerKg: 3.00, Availability: "common",
			CorrosionResistance: Excellent, Machinability: Good, Weldability: Poor,
		},
	}
}
