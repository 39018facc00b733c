package glade

import "github.com/hajimehoshi/ebiten/v2"

// Frame is the per-tick snapshot shared by every layer. It is computed once
// at the top of Scene.Update so all draw calls in a frame observe the same
// time of day and camera position.
type Frame struct {
	Tod         float64 // normalized day/night scalar, 0 = day, 1 = night
	NightFactor float64 // particle morph remap of Tod
	Glow        float64 // horizon glow band intensity
	NightScale  float64 // RGB darkening multiplier for terrain/foliage
	Clock       float64 // monotonic tick counter driving oscillations
	CamX        float64 // camera position at snapshot time
}

// LayerFunc draws one layer. offsetX is the layer's horizontal parallax
// offset, already computed from the camera position.
type LayerFunc func(s *Scene, dst *ebiten.Image, fr Frame, offsetX float64)

// Layer is one entry in the compositor's ordered table.
type Layer struct {
	Name     string
	Parallax float64
	Draw     LayerFunc
}

// Parallax coefficients per depth band. Sky and stars always fill the
// viewport and never scroll.
const (
	parallaxSky        = 0.0
	parallaxClouds     = 0.15
	parallaxFarHills   = 0.35
	parallaxMidHills   = 0.62
	parallaxForeground = 1.0
)

// sceneLayers builds the fixed back-to-front layer stack. The order is
// load-bearing: later layers occlude earlier ones, and every layer tints
// itself from the same Frame snapshot.
func sceneLayers() []Layer {
	return []Layer{
		{Name: "sky", Parallax: parallaxSky, Draw: drawSkyLayer},
		{Name: "stars", Parallax: parallaxSky, Draw: drawStarsLayer},
		{Name: "clouds", Parallax: parallaxClouds, Draw: drawCloudsLayer},
		{Name: "farhills", Parallax: parallaxFarHills, Draw: drawFarHillsLayer},
		{Name: "midhills", Parallax: parallaxMidHills, Draw: drawMidHillsLayer},
		{Name: "ground", Parallax: parallaxForeground, Draw: drawGroundLayer},
		{Name: "trees", Parallax: parallaxForeground, Draw: drawTreesLayer},
		{Name: "flowers", Parallax: parallaxForeground, Draw: drawFlowersLayer},
		{Name: "particles", Parallax: parallaxForeground, Draw: drawParticlesLayer},
		{Name: "symbols", Parallax: parallaxForeground, Draw: drawSymbolsLayer},
	}
}

func drawParticlesLayer(s *Scene, dst *ebiten.Image, fr Frame, _ float64) {
	s.particles.draw(dst, fr)
}

func drawSymbolsLayer(s *Scene, dst *ebiten.Image, fr Frame, _ float64) {
	for _, sym := range s.symbols {
		if !sym.Visible(fr.CamX, s.cfg.ViewportWidth) {
			continue
		}
		sym.draw(dst, fr.CamX)
	}
}
