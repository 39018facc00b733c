package glade

import (
	"math"
	"math/rand/v2"
	"testing"
)

func testField(t *testing.T, count int) *particleField {
	t.Helper()
	rng := rand.New(rand.NewPCG(5, 11))
	return newParticleField(count, 2400, 800, 600, rng)
}

func TestParticleFieldCount(t *testing.T) {
	f := testField(t, 55)
	if len(f.particles) != 55 {
		t.Fatalf("particle count = %d, want 55", len(f.particles))
	}
	// Count is fixed: updates never create or destroy particles.
	for i := 0; i < 500; i++ {
		f.update()
	}
	if len(f.particles) != 55 {
		t.Errorf("particle count after updates = %d, want 55", len(f.particles))
	}
}

func TestParticleFieldInitialDistribution(t *testing.T) {
	f := testField(t, 55)
	for i := range f.particles {
		p := &f.particles[i]
		if p.x < 0 || p.x > 2400 {
			t.Errorf("particle %d starts at x=%v, outside world", i, p.x)
		}
		if p.vx <= 0 {
			t.Errorf("particle %d has non-positive drift %v", i, p.vx)
		}
		if p.size <= 0 {
			t.Errorf("particle %d has non-positive size %v", i, p.size)
		}
	}
}

func TestParticleWrapsSameUpdate(t *testing.T) {
	f := testField(t, 1)
	p := &f.particles[0]
	p.x = 2399.9
	p.vx = 0.5
	f.update()
	if p.x != 0 {
		t.Errorf("x after crossing world edge = %v, want 0 on the same update", p.x)
	}
}

func TestParticleNeverExceedsWorldByMoreThanOneStep(t *testing.T) {
	f := testField(t, 55)
	for step := 0; step < 20000; step++ {
		f.update()
		for i := range f.particles {
			if f.particles[i].x > 2400 {
				t.Fatalf("step %d: particle %d at x=%v beyond world width", step, i, f.particles[i].x)
			}
		}
	}
}

func TestParticleVerticalWrapTeleports(t *testing.T) {
	f := testField(t, 1)
	p := &f.particles[0]
	p.y = 625 // past the lower bound (viewport 600 + 20)
	fall := p.fall
	f.update()
	if p.y != -20 {
		t.Errorf("y after lower bound = %v, want -20 teleport", p.y)
	}
	if p.fall != fall {
		t.Errorf("fall velocity changed on wrap: %v -> %v (want teleport, not bounce)", fall, p.fall)
	}
}

func TestParticleVisibleWindow(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		camX   float64
		expect bool
	}{
		{"center of view", 400, 0, true},
		{"just inside left margin", -59, 0, true},
		{"outside left margin", -61, 0, false},
		{"just inside right margin", 859, 0, true},
		{"outside right margin", 861, 0, false},
		{"shifted camera", 1200, 1000, true},
		{"behind shifted camera", 900, 1000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := particleVisible(tt.x, tt.camX, 800); got != tt.expect {
				t.Errorf("particleVisible(%v, cam=%v) = %v, want %v", tt.x, tt.camX, got, tt.expect)
			}
		})
	}
}

func TestParticleUpdatesWhileOffscreen(t *testing.T) {
	// Culling only skips rendering; simulation always runs.
	f := testField(t, 1)
	p := &f.particles[0]
	p.x = 2000 // far from a camera parked at 0
	before := p.x
	f.update()
	if p.x == before {
		t.Error("off-screen particle did not advance")
	}
}

func TestParticleColorMorph(t *testing.T) {
	day := particleColor(1.0, 0)
	if !approxEqual(day.R, petalTint.R, epsilon) || !approxEqual(day.B, petalTint.B, epsilon) {
		t.Errorf("day color = %v, want petal tint %v", day, petalTint)
	}
	night := particleColor(1.0, 1)
	if !approxEqual(night.R, fireflyTint.R, epsilon) || !approxEqual(night.G, fireflyTint.G, epsilon) {
		t.Errorf("night color = %v, want firefly tint %v", night, fireflyTint)
	}
	// Out-of-range night factors clamp instead of over-shooting the gamut.
	over := particleColor(1.0, 1.7)
	if !approxEqual(over.R, fireflyTint.R, epsilon) {
		t.Errorf("over-range morph = %v, want firefly tint", over)
	}
}

func TestFloatOffsetBounded(t *testing.T) {
	for clock := 0.0; clock < 1000; clock += 7 {
		off := floatOffset(clock, 1.3)
		if math.Abs(off) > 6 {
			t.Fatalf("float offset %v exceeds amplitude", off)
		}
	}
}
