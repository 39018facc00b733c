package glade

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// defaultParticleCount is the fixed size of the ambient particle field.
const defaultParticleCount = 55

// SceneConfig configures a Scene. Zero values for ParticleCount and Seed
// pick defaults; the dimensions are required.
type SceneConfig struct {
	// WorldWidth is the total scrollable world extent. Must exceed
	// ViewportWidth.
	WorldWidth float64
	// ViewportWidth and ViewportHeight are the visible frame dimensions.
	ViewportWidth  float64
	ViewportHeight float64
	// ParticleCount is the fixed number of drift particles (default 55).
	ParticleCount int
	// Seed drives the scene's random layout and noise source. Scenes with
	// equal configs are identical. Default 1.
	Seed uint64
}

// Input is the level-triggered control state sampled once per tick by the
// caller. The camera reads exactly one driver from it each frame.
type Input struct {
	// Autoscroll selects the automatic looping drive. When false the
	// camera follows Direction instead.
	Autoscroll bool
	// Direction is the held manual scroll input.
	Direction Direction
}

// Scene owns all mutable state: camera, particles, symbol phases, and the
// per-frame snapshot. Everything is single-threaded; Update mutates, Draw
// only reads. Multiple independent scenes can coexist.
type Scene struct {
	cfg    SceneConfig
	camera *Camera

	farHills TerrainProfile
	midHills TerrainProfile
	ground   TerrainProfile

	particles *particleField
	symbols   []*Symbol
	stars     []star
	clouds    []cloud
	cloudSpan float64
	trees     []tree
	flowers   []flower

	noise  SmoothNoise
	layers []Layer

	clock float64
	frame Frame
}

// Landmark placement, as fractions of the camera scroll range. The leaf
// sits inside the fast middle stretch of the time-of-day curve, so the sky
// is changing quickest right as it appears.
var symbolPlacements = [4]struct {
	typ   SymbolType
	frac  float64 // camera range fraction; world x adds half a viewport
	yFrac float64 // of viewport height
	phase float64 // staggered so no two pulses ever sync
}{
	{SymbolSun, 0.08, 0.26, 0.0},
	{SymbolLeaf, 0.36, 0.46, 1.7},
	{SymbolStar, 0.68, 0.20, 3.1},
	{SymbolMoon, 0.92, 0.24, 4.9},
}

// NewScene builds a scene: terrain profiles, particle field, star field,
// landmark symbols, and the layer table. Pure given the config; all
// randomness is seeded.
func NewScene(cfg SceneConfig) (*Scene, error) {
	if cfg.ViewportWidth <= 0 || cfg.ViewportHeight <= 0 {
		return nil, fmt.Errorf("scene: viewport must be positive, got %gx%g",
			cfg.ViewportWidth, cfg.ViewportHeight)
	}
	if cfg.WorldWidth <= cfg.ViewportWidth {
		return nil, fmt.Errorf("scene: world width %g must exceed viewport width %g",
			cfg.WorldWidth, cfg.ViewportWidth)
	}
	if cfg.ParticleCount == 0 {
		cfg.ParticleCount = defaultParticleCount
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9E3779B97F4A7C15))
	noise := NewValueNoise(cfg.Seed)

	// Each ridge repeats with the exact world-unit shift its layer sees
	// when the autoscroll wraps, keeping the loop seamless.
	scroll := cfg.WorldWidth - cfg.ViewportWidth
	s := &Scene{
		cfg:    cfg,
		camera: newCamera(cfg.WorldWidth, cfg.ViewportWidth),
		farHills: GenerateProfile(cfg.WorldWidth, parallaxFarHills,
			farHillProfile(cfg.ViewportHeight, scroll*parallaxFarHills)),
		midHills: GenerateProfile(cfg.WorldWidth, parallaxMidHills,
			midHillProfile(cfg.ViewportHeight, scroll*parallaxMidHills)),
		ground: GenerateProfile(cfg.WorldWidth, parallaxForeground,
			groundProfile(cfg.ViewportHeight, scroll*parallaxForeground)),
		stars:  newStarField(cfg.ViewportWidth, cfg.ViewportHeight, rng),
		noise:  noise,
		layers: sceneLayers(),
	}
	s.clouds, s.cloudSpan = newClouds(cfg.WorldWidth, cfg.ViewportWidth, cfg.ViewportHeight, rng)
	s.trees = newTrees(scroll, cfg.ViewportWidth, s.ground, noise)
	s.flowers = newFlowers(scroll, cfg.ViewportWidth, s.ground, rng)
	s.particles = newParticleField(cfg.ParticleCount,
		cfg.WorldWidth, cfg.ViewportWidth, cfg.ViewportHeight, rng)

	for _, p := range symbolPlacements {
		s.symbols = append(s.symbols, &Symbol{
			Type:  p.typ,
			X:     p.frac*scroll + cfg.ViewportWidth/2,
			Y:     p.yFrac * cfg.ViewportHeight,
			phase: p.phase,
		})
	}

	s.snapshot()
	return s, nil
}

// Update advances the scene one tick: camera drive, frame snapshot, then
// particle and pulse integration. in is this tick's sampled input state.
func (s *Scene) Update(in Input) {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.camera.advance(in, dt)
	s.clock++
	s.snapshot()

	s.particles.update()
	// Phases advance even while a symbol is culled, so it re-enters
	// mid-pulse.
	for _, sym := range s.symbols {
		sym.advancePhase()
	}
}

// snapshot recomputes the shared per-frame values from the camera position.
func (s *Scene) snapshot() {
	tod := TimeOfDay(s.camera.Position, s.cfg.WorldWidth, s.cfg.ViewportWidth)
	s.frame = Frame{
		Tod:         tod,
		NightFactor: NightFactor(tod),
		Glow:        GlowIntensity(tod),
		NightScale:  NightScale(tod),
		Clock:       s.clock,
		CamX:        s.camera.Position,
	}
}

// Draw composites the layer stack back to front into screen. Each layer is
// offset by the camera position times its parallax coefficient; all layers
// share the Frame snapshot taken in Update.
func (s *Scene) Draw(screen *ebiten.Image) {
	for i := range s.layers {
		layer := &s.layers[i]
		offsetX := -s.frame.CamX * layer.Parallax
		layer.Draw(s, screen, s.frame, offsetX)
	}
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// TimeOfDay returns the current time-of-day scalar from this frame's
// snapshot.
func (s *Scene) TimeOfDay() float64 {
	return s.frame.Tod
}

// Frame returns this tick's shared snapshot.
func (s *Scene) Frame() Frame {
	return s.frame
}

// Symbols returns the four landmark symbols in placement order.
func (s *Scene) Symbols() []*Symbol {
	return s.symbols
}

// Layers returns the ordered compositor table.
func (s *Scene) Layers() []Layer {
	return s.layers
}

// Config returns the scene's effective configuration, including applied
// defaults.
func (s *Scene) Config() SceneConfig {
	return s.cfg
}
