package glade

import "math"

// terrainStep is the world-unit spacing between elevation samples.
const terrainStep = 6

// ProfileFunc is a closed-form elevation formula: world x → elevation y
// (screen units, measured from the top of the viewport).
type ProfileFunc func(x float64) float64

// TerrainProfile is a densely sampled elevation ridge for one parallax
// layer. Sampled once at scene construction and immutable afterwards.
type TerrainProfile struct {
	Points   []Vec2
	Parallax float64
}

// GenerateProfile samples f every terrainStep world units over
// [0, worldWidth], inclusive of both ends. Pure and deterministic.
func GenerateProfile(worldWidth float64, parallax float64, f ProfileFunc) TerrainProfile {
	n := int(worldWidth/terrainStep) + 1
	pts := make([]Vec2, 0, n+1)
	for x := 0.0; x <= worldWidth; x += terrainStep {
		pts = append(pts, Vec2{X: x, Y: f(x)})
	}
	if last := pts[len(pts)-1]; last.X < worldWidth {
		pts = append(pts, Vec2{X: worldWidth, Y: f(worldWidth)})
	}
	return TerrainProfile{Points: pts, Parallax: parallax}
}

// ElevationAt returns the ridge height at world x, linearly interpolated
// between the surrounding samples and clamped at the profile's ends.
func (p TerrainProfile) ElevationAt(x float64) float64 {
	n := len(p.Points)
	if n == 0 {
		return 0
	}
	if x <= p.Points[0].X {
		return p.Points[0].Y
	}
	if x >= p.Points[n-1].X {
		return p.Points[n-1].Y
	}
	i := int(x / terrainStep)
	if i >= n-1 {
		i = n - 2
	}
	a, b := p.Points[i], p.Points[i+1]
	if b.X == a.X {
		return a.Y
	}
	t := (x - a.X) / (b.X - a.X)
	return lerp(a.Y, b.Y, t)
}

// The three stock ridges. Each is a sum of two sines with distinct
// harmonic, phase, and amplitude so the layers never visibly repeat in
// sync. Elevations hang off the viewport height so the ridgelines scale
// with the window.
//
// period must be the world-unit distance the layer's content shifts when
// the autoscroll wraps: scroll range times the layer's parallax
// coefficient. Sine frequencies are integer harmonics of that period, so
// the view after the wrap is identical to the view before it — the loop
// has no seam.

// farHillProfile is the distant ridge: long, low swells.
func farHillProfile(viewportHeight, period float64) ProfileFunc {
	base := viewportHeight * 0.58
	w := 2 * math.Pi / period
	return func(x float64) float64 {
		return base +
			34*math.Sin(x*w*2+0.8) +
			18*math.Sin(x*w*5+2.3)
	}
}

// midHillProfile is the middle ridge: shorter period, more relief.
func midHillProfile(viewportHeight, period float64) ProfileFunc {
	base := viewportHeight * 0.70
	w := 2 * math.Pi / period
	return func(x float64) float64 {
		return base +
			26*math.Sin(x*w*3+1.9) +
			14*math.Sin(x*w*7+0.4)
	}
}

// groundProfile is the foreground meadow line: gentle, high frequency.
func groundProfile(viewportHeight, period float64) ProfileFunc {
	base := viewportHeight * 0.84
	w := 2 * math.Pi / period
	return func(x float64) float64 {
		return base +
			10*math.Sin(x*w*5+3.6) +
			5*math.Sin(x*w*11+1.1)
	}
}
