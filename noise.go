package glade

import "math"

// SmoothNoise is a deterministic 1D noise function returning values in
// [0, 1], continuous in its input. Tree and grass shape variation is pulled
// through this interface so any continuous pseudo-random source can be
// substituted.
type SmoothNoise interface {
	At(x float64) float64
}

// NoiseFunc adapts a plain function to the SmoothNoise interface.
type NoiseFunc func(x float64) float64

// At implements SmoothNoise.
func (f NoiseFunc) At(x float64) float64 {
	return f(x)
}

// valueNoise is seeded lattice value noise: hashed values at integer
// lattice points, smooth-stepped between them.
type valueNoise struct {
	seed uint64
}

// NewValueNoise returns a seeded SmoothNoise implementation. The same seed
// always produces the same function.
func NewValueNoise(seed uint64) SmoothNoise {
	return valueNoise{seed: seed}
}

// latticeValue hashes an integer lattice coordinate to [0, 1).
func (n valueNoise) latticeValue(i int64) float64 {
	h := uint64(i)*0x9E3779B97F4A7C15 + n.seed
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return float64(h>>11) / float64(1<<53)
}

// At returns smooth noise at x.
func (n valueNoise) At(x float64) float64 {
	i := int64(math.Floor(x))
	f := x - math.Floor(x)
	a := n.latticeValue(i)
	b := n.latticeValue(i + 1)
	return lerp(a, b, SmoothStep(f))
}
