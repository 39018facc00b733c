package glade

import (
	"math"
	"testing"
)

func TestValueNoiseRange(t *testing.T) {
	n := NewValueNoise(42)
	for x := -50.0; x < 50; x += 0.173 {
		v := n.At(x)
		if v < 0 || v > 1 {
			t.Fatalf("At(%v) = %v, outside [0,1]", x, v)
		}
	}
}

func TestValueNoiseDeterministic(t *testing.T) {
	a := NewValueNoise(7)
	b := NewValueNoise(7)
	for x := 0.0; x < 20; x += 0.31 {
		if a.At(x) != b.At(x) {
			t.Fatalf("same seed diverges at x=%v", x)
		}
	}
}

func TestValueNoiseSeedsDiffer(t *testing.T) {
	a := NewValueNoise(1)
	b := NewValueNoise(2)
	same := true
	for x := 0.0; x < 10; x += 0.5 {
		if a.At(x) != b.At(x) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical noise")
	}
}

func TestValueNoiseContinuity(t *testing.T) {
	// Neighboring samples must be close: no jumps, including across
	// integer lattice points.
	n := NewValueNoise(99)
	const step = 1e-4
	prev := n.At(0)
	for x := step; x < 5; x += step {
		v := n.At(x)
		if math.Abs(v-prev) > 0.01 {
			t.Fatalf("discontinuity at x=%v: %v -> %v", x, prev, v)
		}
		prev = v
	}
}

func TestNoiseFuncAdapter(t *testing.T) {
	f := NoiseFunc(func(x float64) float64 { return 0.5 })
	var n SmoothNoise = f
	if got := n.At(123); got != 0.5 {
		t.Errorf("At(123) = %v, want 0.5", got)
	}
}
