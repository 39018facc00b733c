package glade

import (
	"fmt"
	"math"
)

// Gradient is an ordered table of color stops spaced evenly over [0, 1].
// Construct with NewGradient; a gradient needs at least two stops.
type Gradient struct {
	stops []Color
}

// NewGradient builds a gradient from ordered, evenly spaced stops.
// Returns an error when fewer than two stops are given — a malformed stop
// table is a configuration mistake, not a runtime condition.
func NewGradient(stops ...Color) (Gradient, error) {
	if len(stops) < 2 {
		return Gradient{}, fmt.Errorf("gradient: need at least 2 stops, got %d", len(stops))
	}
	s := make([]Color, len(stops))
	copy(s, stops)
	return Gradient{stops: s}, nil
}

// mustGradient is used for the package's built-in palettes, which are known
// valid at compile time.
func mustGradient(stops ...Color) Gradient {
	g, err := NewGradient(stops...)
	if err != nil {
		panic(err)
	}
	return g
}

// StopCount returns the number of stops in the gradient.
func (g Gradient) StopCount() int {
	return len(g.stops)
}

// At samples the gradient at t ∈ [0, 1], interpolating componentwise between
// the two surrounding stops. t is clamped; At(0) and At(1) return the first
// and last stops exactly.
func (g Gradient) At(t float64) Color {
	t = clamp01(t)
	n := len(g.stops) - 1
	i := int(math.Floor(t * float64(n)))
	if i > n-1 {
		i = n - 1
	}
	lt := t*float64(n) - float64(i)
	if lt >= 1 {
		// Exact at t = 1: a lerp with rounding could land a hair off the
		// final stop.
		return g.stops[i+1]
	}
	return g.stops[i].Lerp(g.stops[i+1], lt)
}
