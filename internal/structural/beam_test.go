package structural

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// within reports whether got is within tol of want (relative for large
// magnitudes, absolute near zero).
func within(got, want, tol float64) bool {
	diff := math.Abs(got - want)
	if math.Abs(want) > 1 {
		return diff/math.Abs(want) <= tol
	}
	return diff <= tol
}

func TestSimplySupportedPointLoadSteelScenario(t *testing.T) {
	ba := NewBeamAnalyzer(SteelA36())

	// L=2 m, P=1000 N at midspan, 50x100 mm section
	res, err := ba.SimplySupportedPointLoad(2.0, 1000, 1.0, 0.05, 0.1)
	if err != nil {
		t.Fatalf("SimplySupportedPointLoad failed: %v", err)
	}

	// I = 4.1667e-6 m⁴, M = PL/4 = 500 N·m
	if !within(res.MaxMoment, 500, 1e-9) {
		t.Errorf("MaxMoment = %.4f, want 500", res.MaxMoment)
	}
	// δ = PL³/(48EI) = 0.2 mm
	if !within(res.MaxDeflection, 0.2, 1e-6) {
		t.Errorf("MaxDeflection = %.4f mm, want 0.2", res.MaxDeflection)
	}
	// σ = Mc/I = 6.0 MPa
	if !within(res.MaxStress, 6.0, 1e-9) {
		t.Errorf("MaxStress = %.4f MPa, want 6.0", res.MaxStress)
	}
	if !within(res.SafetyFactor, 250.0/6.0, 1e-9) {
		t.Errorf("SafetyFactor = %.4f, want %.4f", res.SafetyFactor, 250.0/6.0)
	}
	if !within(res.MaxShear, 500, 1e-9) {
		t.Errorf("MaxShear = %.4f, want 500", res.MaxShear)
	}
	if !within(res.Weight, 78.5, 1e-9) {
		t.Errorf("Weight = %.4f kg, want 78.5", res.Weight)
	}
	if !within(res.Cost, 117.75, 1e-9) {
		t.Errorf("Cost = %.4f USD, want 117.75", res.Cost)
	}
	if !res.IsSafe() {
		t.Error("IsSafe() = false, want true")
	}
}

func TestPointLoadCenteredBranchSymmetry(t *testing.T) {
	ba := NewBeamAnalyzer(SteelA36())
	length, load, width, height := 2.0, 1000.0, 0.05, 0.1

	centered, err := ba.SimplySupportedPointLoad(length, load, length/2, width, height)
	if err != nil {
		t.Fatal(err)
	}

	// Just past the tolerance band: the general two-term formula runs.
	// At a = L/2 both formulas coincide, so nudging the load by barely
	// more than the tolerance must move the deflection only slightly.
	offCenter, err := ba.SimplySupportedPointLoad(length, load, length/2+0.0051, width, height)
	if err != nil {
		t.Fatal(err)
	}
	if !within(offCenter.MaxDeflection, centered.MaxDeflection, 1e-3) {
		t.Errorf("deflection discontinuity across the center branch: centered %.6f mm, off-center %.6f mm",
			centered.MaxDeflection, offCenter.MaxDeflection)
	}

	// Evaluate the general formula exactly at the center: must equal
	// PL³/48EI analytically.
	a, b := length/2, length/2
	e := SteelA36().YoungsModulus * 1e9
	i := RectSecondMoment(width, height)
	general := load * a * a * b * b / (3 * e * i * length) * 1000
	if !within(general, centered.MaxDeflection, 1e-12) {
		t.Errorf("general formula at center = %.9f mm, centered branch = %.9f mm", general, centered.MaxDeflection)
	}
}

func TestPointLoadOffCenter(t *testing.T) {
	ba := NewBeamAnalyzer(SteelA36())

	// a=0.5, b=1.5: M = Pab/L = 375 N·m, reaction shear peaks on the
	// near-support side at P·b/L = 750 N.
	res, err := ba.SimplySupportedPointLoad(2.0, 1000, 0.5, 0.05, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if !within(res.MaxMoment, 375, 1e-9) {
		t.Errorf("MaxMoment = %.4f, want 375", res.MaxMoment)
	}
	if !within(res.MaxShear, 750, 1e-9) {
		t.Errorf("MaxShear = %.4f, want 750", res.MaxShear)
	}

	e := SteelA36().YoungsModulus * 1e9
	i := RectSecondMoment(0.05, 0.1)
	want := 1000 * 0.25 * 2.25 / (3 * e * i * 2.0) * 1000
	if !within(res.MaxDeflection, want, 1e-12) {
		t.Errorf("MaxDeflection = %.6f mm, want %.6f", res.MaxDeflection, want)
	}
}

func TestCantilever(t *testing.T) {
	ba := NewBeamAnalyzer(Aluminum6061())
	length, load, width, height := 1.5, 800.0, 0.04, 0.08

	res, err := ba.Cantilever(length, load, width, height)
	if err != nil {
		t.Fatal(err)
	}

	if !within(res.MaxMoment, load*length, 1e-12) {
		t.Errorf("MaxMoment = %.4f, want %.4f", res.MaxMoment, load*length)
	}
	if !within(res.MaxShear, load, 1e-12) {
		t.Errorf("MaxShear = %.4f, want %.4f", res.MaxShear, load)
	}

	e := 69e9
	i := RectSecondMoment(width, height)
	wantDefl := load * math.Pow(length, 3) / (3 * e * i) * 1000
	if !within(res.MaxDeflection, wantDefl, 1e-12) {
		t.Errorf("MaxDeflection = %.6f mm, want %.6f", res.MaxDeflection, wantDefl)
	}

	wantStress := load * length * (height / 2) / i / 1e6
	if !within(res.MaxStress, wantStress, 1e-12) {
		t.Errorf("MaxStress = %.4f MPa, want %.4f", res.MaxStress, wantStress)
	}
}

func TestUniformLoad(t *testing.T) {
	ba := NewBeamAnalyzer(SteelA36())
	length, w, width, height := 4.0, 2000.0, 0.1, 0.2

	res, err := ba.UniformLoad(length, w, width, height)
	if err != nil {
		t.Fatal(err)
	}

	if !within(res.MaxMoment, w*length*length/8, 1e-12) {
		t.Errorf("MaxMoment = %.4f, want %.4f", res.MaxMoment, w*length*length/8)
	}
	if !within(res.MaxShear, w*length/2, 1e-12) {
		t.Errorf("MaxShear = %.4f, want %.4f", res.MaxShear, w*length/2)
	}

	e := 200e9
	i := RectSecondMoment(width, height)
	wantDefl := 5 * w * math.Pow(length, 4) / (384 * e * i) * 1000
	if !within(res.MaxDeflection, wantDefl, 1e-12) {
		t.Errorf("MaxDeflection = %.6f mm, want %.6f", res.MaxDeflection, wantDefl)
	}
}

// The total load w·L concentrated at midspan deflects PL³/48EI; spread
// uniformly it deflects 5wL⁴/384EI. Their ratio is exactly 0.625, a
// classical consistency check between the two configurations.
func TestUniformVersusEquivalentPointLoad(t *testing.T) {
	ba := NewBeamAnalyzer(SteelA36())
	length, w, width, height := 3.0, 1500.0, 0.05, 0.1

	udl, err := ba.UniformLoad(length, w, width, height)
	if err != nil {
		t.Fatal(err)
	}
	point, err := ba.SimplySupportedPointLoad(length, w*length, length/2, width, height)
	if err != nil {
		t.Fatal(err)
	}

	ratio := udl.MaxDeflection / point.MaxDeflection
	if !within(ratio, 0.625, 1e-12) {
		t.Errorf("deflection ratio = %.9f, want 0.625", ratio)
	}
	if udl.MaxDeflection >= point.MaxDeflection {
		t.Error("distributed load must deflect less than the equivalent concentrated load")
	}
}

func TestHeightMonotonicity(t *testing.T) {
	ba := NewBeamAnalyzer(SteelA36())

	heights := []float64{0.05, 0.08, 0.1, 0.15, 0.2}
	var prev *BeamAnalysisResult
	for _, h := range heights {
		res, err := ba.SimplySupportedPointLoad(2.0, 1000, 1.0, 0.05, h)
		if err != nil {
			t.Fatalf("height %.2f: %v", h, err)
		}
		if prev != nil {
			if res.MaxDeflection >= prev.MaxDeflection {
				t.Errorf("deflection not strictly decreasing at height %.2f", h)
			}
			if res.MaxStress >= prev.MaxStress {
				t.Errorf("stress not strictly decreasing at height %.2f", h)
			}
		}
		prev = res
	}
}

func TestWeightAndCostIdentity(t *testing.T) {
	mats := []Material{SteelA36(), Aluminum6061()}
	cases := []struct {
		length, width, height float64
	}{
		{1.0, 0.02, 0.04},
		{2.5, 0.05, 0.1},
		{6.0, 0.2, 0.35},
	}

	for _, m := range mats {
		ba := NewBeamAnalyzer(m)
		for _, c := range cases {
			res, err := ba.Cantilever(c.length, 500, c.width, c.height)
			if err != nil {
				t.Fatal(err)
			}
			wantWeight := c.length * c.width * c.height * m.Density
			if res.Weight != wantWeight {
				t.Errorf("%s %v: Weight = %v, want exact %v", m.Name, c, res.Weight, wantWeight)
			}
			if res.Cost != wantWeight*m.CostPerKg {
				t.Errorf("%s %v: Cost = %v, want exact %v", m.Name, c, res.Cost, wantWeight*m.CostPerKg)
			}
		}
	}
}

func TestInvalidGeometry(t *testing.T) {
	ba := NewBeamAnalyzer(SteelA36())

	cases := []struct {
		name                  string
		length, width, height float64
	}{
		{"zero width", 2.0, 0, 0.1},
		{"zero height", 2.0, 0.05, 0},
		{"zero length", 0, 0.05, 0.1},
		{"negative width", 2.0, -0.05, 0.1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ba.SimplySupportedPointLoad(c.length, 1000, c.length/2, c.width, c.height); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("point load: err = %v, want ErrInvalidGeometry", err)
			}
			if _, err := ba.Cantilever(c.length, 1000, c.width, c.height); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("cantilever: err = %v, want ErrInvalidGeometry", err)
			}
			if _, err := ba.UniformLoad(c.length, 1000, c.width, c.height); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("uniform: err = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}

func TestUnsafeDesignIsNotAnError(t *testing.T) {
	ba := NewBeamAnalyzer(SteelA36())

	// A long slender member under a heavy load: valid result, low margin.
	res, err := ba.SimplySupportedPointLoad(6.0, 200000, 3.0, 0.02, 0.05)
	if err != nil {
		t.Fatalf("overloaded beam must still analyze: %v", err)
	}
	if res.IsSafe() {
		t.Errorf("SafetyFactor = %.3f, expected an unsafe design", res.SafetyFactor)
	}
	if res.SafetyFactor <= 0 {
		t.Errorf("SafetyFactor = %.3f, want positive", res.SafetyFactor)
	}
}

func TestSummary(t *testing.T) {
	ba := NewBeamAnalyzer(SteelA36())
	res, err := ba.SimplySupportedPointLoad(2.0, 1000, 1.0, 0.05, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	s := res.Summary()
	for _, want := range []string{"Max Deflection", "Safety Factor", "Cost", "✓ SAFE"} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary missing %q:\n%s", want, s)
		}
	}
}

func TestIsSafeFor(t *testing.T) {
	r := &BeamAnalysisResult{SafetyFactor: 2.0}
	if !r.IsSafeFor(2.0) {
		t.Error("factor equal to threshold must pass")
	}
	if r.IsSafeFor(2.5) {
		t.Error("factor below threshold must fail")
	}
}
