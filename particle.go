package glade

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Particle appearance archetypes. The field morphs between drifting petals
// (day) and fireflies (night) as the night factor rises.
var (
	petalTint   = Color{1.00, 0.76, 0.82, 1}
	fireflyTint = Color{0.84, 0.93, 0.42, 1}
)

// glowThreshold is the night factor beyond which the firefly halo fades in.
const glowThreshold = 0.1

// particleCullMargin extends the visible window so particles don't pop at
// the viewport edges.
const particleCullMargin = 60

// particle holds per-particle simulation state. Count is fixed: particles
// are created once and wrap around the world instead of dying.
type particle struct {
	x, y  float64 // world position; y is the float baseline
	vx    float64 // horizontal drift per tick
	fall  float64 // slow vertical sink per tick
	rot   float64 // current rotation
	vrot  float64 // angular velocity per tick
	phase float64 // offset into the shared float oscillation
	size  float64
	tintR float64 // per-particle brightness variation of the petal tint
}

// particleField is the fixed pool of ambient drift particles.
type particleField struct {
	particles      []particle
	worldWidth     float64
	viewportWidth  float64
	viewportHeight float64
}

// newParticleField scatters count particles uniformly across the world.
func newParticleField(count int, worldWidth, viewportWidth, viewportHeight float64, rng *rand.Rand) *particleField {
	f := &particleField{
		particles:      make([]particle, count),
		worldWidth:     worldWidth,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
	for i := range f.particles {
		p := &f.particles[i]
		p.x = rng.Float64() * worldWidth
		p.y = rng.Float64() * viewportHeight * 0.78
		p.vx = 0.2 + rng.Float64()*0.5
		p.fall = 0.08 + rng.Float64()*0.22
		p.rot = rng.Float64() * 2 * math.Pi
		p.vrot = (rng.Float64()*0.03 + 0.01) * sign(rng.Float64()-0.5)
		p.phase = rng.Float64() * 2 * math.Pi
		p.size = 2.5 + rng.Float64()*2.5
		p.tintR = 0.9 + rng.Float64()*0.1
	}
	return f
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// update integrates every particle one tick, visible or not. Wraps are
// position teleports, never velocity reversals, so motion stays
// unidirectional and cyclic.
func (f *particleField) update() {
	lower := f.viewportHeight + 20.0
	for i := range f.particles {
		p := &f.particles[i]
		p.x += p.vx
		if p.x > f.worldWidth {
			p.x = 0
		}
		p.y += p.fall
		if p.y > lower {
			p.y = -20
		}
		p.rot += p.vrot
	}
}

// particleColor morphs the per-particle petal tint toward the firefly tint
// by the night factor.
func particleColor(tintScale, nightFactor float64) Color {
	base := petalTint.Scaled(tintScale)
	return base.Lerp(fireflyTint, clamp01(nightFactor))
}

// particleVisible reports whether world x falls inside the padded viewport
// window for the given camera position.
func particleVisible(x, camX, viewportWidth float64) bool {
	return x >= camX-particleCullMargin && x <= camX+viewportWidth+particleCullMargin
}

// floatOffset is the shared vertical oscillation, sampled per particle.
func floatOffset(clock, phase float64) float64 {
	return math.Sin(clock*0.045+phase) * 6
}

// draw renders the visible particles. Off-screen particles were still
// updated, so they re-enter mid-motion.
func (f *particleField) draw(dst *ebiten.Image, fr Frame) {
	nf := fr.NightFactor
	// Oval at day, near-circular dot at night.
	rxScale := lerp(1.7, 0.85, nf)
	ryScale := lerp(0.75, 0.85, nf)

	for i := range f.particles {
		p := &f.particles[i]
		if !particleVisible(p.x, fr.CamX, f.viewportWidth) {
			continue
		}
		sx := p.x - fr.CamX
		sy := p.y + floatOffset(fr.Clock, p.phase)
		col := particleColor(p.tintR, nf)

		if nf > glowThreshold {
			halo := (nf - glowThreshold) / (1 - glowThreshold)
			fillCircle(dst, sx, sy, p.size*2.6, fireflyTint.WithAlpha(0.22*halo), BlendAdd)
		}
		fillEllipse(dst, sx, sy, p.size*rxScale, p.size*ryScale, p.rot, col, BlendNormal)
	}
}
