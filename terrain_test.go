package glade

import "testing"

func flatProfile(y float64) ProfileFunc {
	return func(float64) float64 { return y }
}

func TestGenerateProfileCoverage(t *testing.T) {
	p := GenerateProfile(2400, 0.35, flatProfile(100))
	if p.Parallax != 0.35 {
		t.Errorf("Parallax = %v, want 0.35", p.Parallax)
	}
	first := p.Points[0]
	last := p.Points[len(p.Points)-1]
	if first.X != 0 {
		t.Errorf("first sample at x=%v, want 0", first.X)
	}
	if last.X != 2400 {
		t.Errorf("last sample at x=%v, want 2400", last.X)
	}
	// 2400/6 + 1 samples, inclusive of both ends.
	if want := 2400/terrainStep + 1; len(p.Points) != want {
		t.Errorf("sample count = %d, want %d", len(p.Points), want)
	}
}

func TestGenerateProfileSpacing(t *testing.T) {
	p := GenerateProfile(600, 1.0, flatProfile(50))
	for i := 1; i < len(p.Points); i++ {
		dx := p.Points[i].X - p.Points[i-1].X
		if !approxEqual(dx, terrainStep, epsilon) {
			t.Fatalf("spacing between samples %d and %d = %v, want %v", i-1, i, dx, float64(terrainStep))
		}
	}
}

func TestGenerateProfileNonMultipleWidth(t *testing.T) {
	// World width not a multiple of the step still gets a final sample at
	// the exact right edge.
	p := GenerateProfile(100, 1.0, flatProfile(10))
	last := p.Points[len(p.Points)-1]
	if last.X != 100 {
		t.Errorf("last sample at x=%v, want 100", last.X)
	}
}

func TestGenerateProfileDeterministic(t *testing.T) {
	f := farHillProfile(600, 560)
	a := GenerateProfile(2400, 0.35, f)
	b := GenerateProfile(2400, 0.35, f)
	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Fatalf("sample %d differs between identical generations", i)
		}
	}
}

func TestStockProfilesPeriodic(t *testing.T) {
	// Each ridge must repeat with the world-unit shift its layer sees at
	// the autoscroll wrap, so the loop shows no seam. With a 2400/800
	// world the scroll range is 1600.
	const scroll = 1600.0
	profiles := []struct {
		name   string
		coef   float64
		make   func(h, period float64) ProfileFunc
	}{
		{"far", 0.35, farHillProfile},
		{"mid", 0.62, midHillProfile},
		{"ground", 1.0, groundProfile},
	}
	for _, p := range profiles {
		period := scroll * p.coef
		f := p.make(600, period)
		for x := 0.0; x <= 800; x += 6 {
			a, b := f(x), f(x+period)
			if !approxEqual(a, b, 1e-6) {
				t.Fatalf("%s ridge not periodic at x=%v: %v vs %v", p.name, x, a, b)
			}
		}
	}
}

func TestElevationAtInterpolates(t *testing.T) {
	p := GenerateProfile(60, 1.0, func(x float64) float64 { return x })
	// Identity elevation: interpolation between samples must stay on the line.
	for _, x := range []float64{0, 3, 6, 17.5, 60} {
		if got := p.ElevationAt(x); !approxEqual(got, x, epsilon) {
			t.Errorf("ElevationAt(%v) = %v, want %v", x, got, x)
		}
	}
}

func TestElevationAtClampsEnds(t *testing.T) {
	p := GenerateProfile(60, 1.0, func(x float64) float64 { return x })
	if got := p.ElevationAt(-10); got != 0 {
		t.Errorf("ElevationAt(-10) = %v, want 0", got)
	}
	if got := p.ElevationAt(500); got != 60 {
		t.Errorf("ElevationAt(500) = %v, want 60", got)
	}
}

func TestStockProfilesStayOnScreen(t *testing.T) {
	const h = 600.0
	profiles := map[string]ProfileFunc{
		"far":    farHillProfile(h, 560),
		"mid":    midHillProfile(h, 992),
		"ground": groundProfile(h, 1600),
	}
	for name, f := range profiles {
		for x := 0.0; x <= 2400; x += 6 {
			y := f(x)
			if y < 0 || y > h {
				t.Fatalf("%s profile leaves the viewport at x=%v: y=%v", name, x, y)
			}
		}
	}
}
