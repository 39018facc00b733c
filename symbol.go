package glade

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SymbolType tags one of the four landmark symbols.
type SymbolType uint8

const (
	SymbolSun SymbolType = iota
	SymbolLeaf
	SymbolStar
	SymbolMoon
)

// String returns the symbol name.
func (t SymbolType) String() string {
	switch t {
	case SymbolSun:
		return "sun"
	case SymbolLeaf:
		return "leaf"
	case SymbolStar:
		return "star"
	case SymbolMoon:
		return "moon"
	}
	return "unknown"
}

// symbolPhaseStep is the per-tick pulse phase advance. Phase grows without
// bound; the trig functions wrap it implicitly.
const symbolPhaseStep = 0.055

// symbolCullMargin extends the visibility window beyond the viewport edges.
const symbolCullMargin = 80

// glowLayers is the number of concentric discs in the radial glow stack.
const glowLayers = 5

// Symbol is a fixed landmark marker with an independently running pulse.
// Symbols are placed once at scene construction and never move; discovery
// is purely visual, no found-state is recorded.
type Symbol struct {
	Type SymbolType
	X, Y float64

	phase float64
}

// advancePhase runs every tick, including while the symbol is off-screen,
// so a symbol re-enters mid-pulse rather than resetting.
func (s *Symbol) advancePhase() {
	s.phase += symbolPhaseStep
}

// Pulse returns the current pulse intensity in [0, 1].
func (s *Symbol) Pulse() float64 {
	return (math.Sin(s.phase) + 1) / 2
}

// Visible reports whether the symbol's screen x falls inside the padded
// viewport window.
func (s *Symbol) Visible(camX, viewportWidth float64) bool {
	sx := s.X - camX
	return sx >= -symbolCullMargin && sx <= viewportWidth+symbolCullMargin
}

// iconFunc draws one symbol's icon centered at (x, y) with the given alpha.
type iconFunc func(dst *ebiten.Image, x, y, alpha float64)

// symbolIcons dispatches symbol type → icon renderer.
var symbolIcons = [4]iconFunc{
	SymbolSun:  drawSunIcon,
	SymbolLeaf: drawLeafIcon,
	SymbolStar: drawStarIcon,
	SymbolMoon: drawMoonIcon,
}

// symbolGlowTints gives each symbol its own halo color.
var symbolGlowTints = [4]Color{
	SymbolSun:  {1.00, 0.85, 0.45, 1},
	SymbolLeaf: {0.65, 0.95, 0.55, 1},
	SymbolStar: {0.80, 0.85, 1.00, 1},
	SymbolMoon: {0.85, 0.88, 1.00, 1},
}

// draw renders the radial glow stack, then the icon, both scaled by the
// current pulse.
func (s *Symbol) draw(dst *ebiten.Image, camX float64) {
	sx := s.X - camX
	pulse := s.Pulse()
	tint := symbolGlowTints[s.Type]

	// Concentric discs: radius shrinks inward while alpha rises, reading
	// as a soft radial falloff. Outer radius and peak alpha both follow
	// the pulse.
	outer := 18 + 20*pulse
	maxAlpha := 0.10 + 0.22*pulse
	for i := 0; i < glowLayers; i++ {
		f := float64(i+1) / glowLayers
		r := outer * (1 - f*0.75)
		fillCircle(dst, sx, s.Y, r, tint.WithAlpha(maxAlpha*f), BlendAdd)
	}

	symbolIcons[s.Type](dst, sx, s.Y, 0.45+0.55*pulse)
}

// --- Icons ---
// Each icon is a small fixed vector shape, roughly 22 units across.

func drawSunIcon(dst *ebiten.Image, x, y, alpha float64) {
	core := Color{1.0, 0.88, 0.40, 1}.WithAlpha(alpha)
	fillCircle(dst, x, y, 7, core, BlendNormal)
	ray := Color{1.0, 0.80, 0.35, 1}.WithAlpha(alpha).toRGBA()
	for i := 0; i < 8; i++ {
		a := math.Pi / 4 * float64(i)
		sin, cos := math.Sincos(a)
		vector.StrokeLine(dst,
			float32(x+cos*10), float32(y+sin*10),
			float32(x+cos*14), float32(y+sin*14),
			2, ray, true)
	}
}

func drawLeafIcon(dst *ebiten.Image, x, y, alpha float64) {
	body := Color{0.45, 0.80, 0.38, 1}.WithAlpha(alpha)
	// Two mirrored arcs meeting at the tips form the blade.
	const n = 10
	pts := make([]Vec2, 0, n*2)
	for i := 0; i <= n; i++ {
		t := float64(i) / n
		pts = append(pts, Vec2{
			X: x + lerp(-10, 10, t),
			Y: y - math.Sin(t*math.Pi)*6,
		})
	}
	for i := n - 1; i > 0; i-- {
		t := float64(i) / n
		pts = append(pts, Vec2{
			X: x + lerp(-10, 10, t),
			Y: y + math.Sin(t*math.Pi)*6,
		})
	}
	fillPolygonCentroid(dst, pts, body, BlendNormal)
	vein := Color{0.30, 0.55, 0.28, 1}.WithAlpha(alpha).toRGBA()
	vector.StrokeLine(dst, float32(x-9), float32(y), float32(x+9), float32(y), 1.5, vein, true)
}

func drawStarIcon(dst *ebiten.Image, x, y, alpha float64) {
	col := Color{0.95, 0.95, 0.75, 1}.WithAlpha(alpha)
	// Five-pointed star: alternating outer/inner radii.
	pts := make([]Vec2, 10)
	for i := range pts {
		r := 11.0
		if i%2 == 1 {
			r = 4.5
		}
		a := -math.Pi/2 + math.Pi/5*float64(i)
		sin, cos := math.Sincos(a)
		pts[i] = Vec2{X: x + cos*r, Y: y + sin*r}
	}
	fillPolygonCentroid(dst, pts, col, BlendNormal)
}

func drawMoonIcon(dst *ebiten.Image, x, y, alpha float64) {
	col := Color{0.92, 0.93, 0.85, 1}.WithAlpha(alpha)
	// Crescent: the strip between the disc's outer arc and a smaller arc
	// displaced toward the lit side.
	const n = 14
	outer := make([]Vec2, n+1)
	inner := make([]Vec2, n+1)
	for i := 0; i <= n; i++ {
		a := -math.Pi/2 + math.Pi*float64(i)/n
		sin, cos := math.Sincos(a)
		outer[i] = Vec2{X: x + cos*9, Y: y + sin*9}
		inner[i] = Vec2{X: x + 4 + cos*6.5, Y: y + sin*6.5}
	}
	fillBand(dst, outer, inner, col, BlendNormal)
}
