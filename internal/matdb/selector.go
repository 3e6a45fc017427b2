package matdb

// Objective selects the ranking criterion for a recommendation.
type Objective string

const (
	OptimizeCost     Objective = "cost"
	OptimizeWeight   Objective = "weight"
	OptimizeStrength Objective = "strength"
)

// Selector ranks catalog materials against requirements.
type Selector struct {
	DB *Database
}

// NewSelector creates a selector over a fresh built-in catalog.
func NewSelector() *Selector {
	return &Selector{DB: NewDatabase()}
}

// Recommend returns the best material matching the filter under the
// given objective, or false when nothing qualifies. An unknown
// objective returns the first match.
func (s *Selector) Recommend(f Filter, optimize Objective) (MaterialProperties, bool) {
	candidates := s.DB.Search(f)
	if len(candidates) == 0 {
		return MaterialProperties{}, false
	}

	best := candidates[0]
	for _, m := range candidates[1:] {
		switch optimize {
		case OptimizeCost:
			if m.CostPerKg < best.CostPerKg {
				best = m
			}
		case OptimizeWeight:
			if m.Density < best.Density {
				best = m
			}
		case OptimizeStrength:
			if m.YieldStrength > best.YieldStrength {
				best = m
			}
		}
	}
	return best, true
}

// Compare resolves a list of material names, skipping unknown ones.
func (s *Selector) Compare(names ...string) []MaterialProperties {
	var out []MaterialProperties
	for _, name := range names {
		if m, ok := s.DB.GetByName(name); ok {
			out = append(out, m)
		}
	}
	return out
}
