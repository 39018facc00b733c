package glade

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sky gradients: four waypoints each (afternoon, golden hour, dusk, night),
// sampled by the time-of-day scalar. Top and bottom are interpolated
// independently so the horizon warms before the zenith darkens.
var (
	skyTopStops = mustGradient(
		Color{0.35, 0.62, 0.93, 1},
		Color{0.33, 0.44, 0.79, 1},
		Color{0.15, 0.14, 0.38, 1},
		Color{0.04, 0.05, 0.14, 1},
	)
	skyBottomStops = mustGradient(
		Color{0.72, 0.86, 0.98, 1},
		Color{0.98, 0.72, 0.46, 1},
		Color{0.54, 0.29, 0.42, 1},
		Color{0.08, 0.10, 0.22, 1},
	)
)

// horizonGlowTint is the warm band color; its alpha follows Frame.Glow.
var horizonGlowTint = Color{1.0, 0.62, 0.28, 1}

// Star field tuning.
const (
	starCount        = 90
	starVisibleFrom  = 0.32 // tod below which stars are fully invisible
	starFullyVisible = 0.72 // tod at which the alpha ramp reaches 1
)

// star is one fixed screen-space star. The field doesn't scroll; like the
// sky it always fills the viewport.
type star struct {
	x, y  float64
	size  float64
	phase float64
}

// newStarField scatters stars over the upper portion of the viewport.
func newStarField(viewportWidth, viewportHeight float64, rng *rand.Rand) []star {
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{
			x:     rng.Float64() * viewportWidth,
			y:     rng.Float64() * viewportHeight * 0.68,
			size:  0.8 + rng.Float64()*1.4,
			phase: rng.Float64() * 2 * math.Pi,
		}
	}
	return stars
}

// starAlphaRamp is the base star visibility for a given tod: 0 below the
// reveal threshold, ramping linearly to 1.
func starAlphaRamp(tod float64) float64 {
	return remap01(tod, starVisibleFrom, starFullyVisible)
}

func drawSkyLayer(s *Scene, dst *ebiten.Image, fr Frame, _ float64) {
	w := s.cfg.ViewportWidth
	h := s.cfg.ViewportHeight
	top := skyTopStops.At(fr.Tod)
	bottom := skyBottomStops.At(fr.Tod)
	fillVerticalGradient(dst, Rect{Width: w, Height: h}, top, bottom)

	if fr.Glow > 0 {
		// Warm band straddling the horizon, fading out toward both edges.
		bandY := h * 0.52
		bandH := h * 0.16
		peak := horizonGlowTint.WithAlpha(0.45 * fr.Glow)
		clear := horizonGlowTint.WithAlpha(0)
		fillVerticalGradient(dst, Rect{Y: bandY - bandH, Width: w, Height: bandH}, clear, peak)
		fillVerticalGradient(dst, Rect{Y: bandY, Width: w, Height: bandH}, peak, clear)
	}
}

func drawStarsLayer(s *Scene, dst *ebiten.Image, fr Frame, _ float64) {
	ramp := starAlphaRamp(fr.Tod)
	if ramp == 0 {
		return
	}
	for i := range s.stars {
		st := &s.stars[i]
		tw := 0.7 + 0.3*math.Sin(fr.Clock*0.06+st.phase)
		col := Color{0.92, 0.94, 1.0, 1}.WithAlpha(ramp * tw)
		fillCircle(dst, st.x, st.y, st.size*(0.75+0.35*tw), col, BlendAdd)
	}
}
