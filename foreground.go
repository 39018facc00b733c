package glade

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Daytime base colors for the terrain bands. All of them darken toward a
// silhouette through Frame.NightScale rather than shifting hue.
var (
	cloudTint    = Color{0.97, 0.97, 1.00, 1}
	cloudBlush   = Color{1.00, 0.80, 0.78, 1}
	farHillTint  = Color{0.50, 0.63, 0.57, 1}
	midHillTint  = Color{0.36, 0.55, 0.41, 1}
	groundTint   = Color{0.31, 0.52, 0.29, 1}
	grassTint    = Color{0.25, 0.46, 0.24, 1}
	trunkTint    = Color{0.32, 0.23, 0.16, 1}
	canopyTint   = Color{0.22, 0.45, 0.24, 1}
	rimLightTint = Color{1.00, 0.85, 0.55, 1}
	flowerCore   = Color{1.00, 0.94, 0.45, 1}
)

// flowerPetalTints cycles across the meadow so neighboring flowers differ.
var flowerPetalTints = [3]Color{
	{0.95, 0.55, 0.70, 1},
	{0.85, 0.70, 0.95, 1},
	{0.98, 0.80, 0.55, 1},
}

// Detail fade windows: these elements disappear entirely past a threshold
// instead of merely dimming.
const (
	blushFadeStart, blushFadeEnd   = 0.35, 0.55
	rimFadeStart, rimFadeEnd       = 0.30, 0.50
	flowerFadeStart, flowerFadeEnd = 0.45, 0.62
)

// detailFade is 1 while tod is below start, 0 past end.
func detailFade(tod, start, end float64) float64 {
	return 1 - remap01(tod, start, end)
}

// cloud is a puff cluster placed in the slow parallax band.
type cloud struct {
	x, y  float64
	scale float64
}

// newClouds spreads clouds over a band the 0.15 parallax layer tiles
// through. The band length is a whole multiple of the layer's wrap shift
// (scroll range × coefficient) so the autoscroll wrap lands on the same
// cloud arrangement it left.
func newClouds(worldWidth, viewportWidth, viewportHeight float64, rng *rand.Rand) ([]cloud, float64) {
	shift := (worldWidth - viewportWidth) * parallaxClouds
	span := shift
	for span < viewportWidth+320 {
		span += shift
	}
	count := int(span / 260)
	if count < 3 {
		count = 3
	}
	clouds := make([]cloud, count)
	for i := range clouds {
		clouds[i] = cloud{
			x:     rng.Float64() * span,
			y:     viewportHeight * (0.10 + rng.Float64()*0.22),
			scale: 0.7 + rng.Float64()*0.7,
		}
	}
	return clouds, span
}

// tree is one foreground tree; its proportions come from the scene's
// smooth-noise source so the silhouette is stable frame to frame.
type tree struct {
	x, baseY float64
	height   float64
	width    float64
}

// treeSpacing is the nominal world-unit gap between foreground trees.
const treeSpacing = 170

// newTrees places trees along the ground line with noise-driven size and
// jittered spacing. Placement covers one scroll period and repeats into
// the tail of the world, so the autoscroll wrap lands on identical trees.
func newTrees(scroll, viewportWidth float64, ground TerrainProfile, noise SmoothNoise) []tree {
	var trees []tree
	for x := 60.0; x < scroll; x += treeSpacing {
		jitter := (noise.At(x*0.013) - 0.5) * 90
		tx := x + jitter
		h := 60 + noise.At(tx*0.021)*55
		w := 16 + noise.At(tx*0.017+31)*14
		trees = append(trees, tree{
			x:      tx,
			baseY:  ground.ElevationAt(tx) + 4,
			height: h,
			width:  w,
		})
	}
	return appendPeriodicTail(trees, scroll, viewportWidth,
		func(t tree) float64 { return t.x },
		func(t tree, dx float64) tree {
			t.x += dx
			t.baseY = ground.ElevationAt(t.x) + 4
			return t
		})
}

// appendPeriodicTail duplicates items from the head of one scroll period
// into the world's tail window, shifted by the period, so the view after
// the autoscroll wrap matches the view before it.
func appendPeriodicTail[T any](items []T, scroll, viewportWidth float64, xOf func(T) float64, shift func(T, float64) T) []T {
	for _, it := range items {
		if xOf(it) < viewportWidth+160 {
			items = append(items, shift(it, scroll))
		}
	}
	return items
}

// flower is one meadow flower rooted to the ground profile.
type flower struct {
	x, y float64
	tint Color
	size float64
}

const flowerSpacing = 56

// newFlowers scatters flowers over one scroll period, repeating the head
// into the tail like newTrees.
func newFlowers(scroll, viewportWidth float64, ground TerrainProfile, rng *rand.Rand) []flower {
	var flowers []flower
	i := 0
	for x := 24.0; x < scroll; x += flowerSpacing {
		fx := x + rng.Float64()*30
		flowers = append(flowers, flower{
			x:    fx,
			y:    ground.ElevationAt(fx) + 8 + rng.Float64()*14,
			tint: flowerPetalTints[i%len(flowerPetalTints)],
			size: 3 + rng.Float64()*2,
		})
		i++
	}
	return appendPeriodicTail(flowers, scroll, viewportWidth,
		func(f flower) float64 { return f.x },
		func(f flower, dx float64) flower { f.x += dx; return f })
}

// --- Layer draw functions ---

func drawCloudsLayer(s *Scene, dst *ebiten.Image, fr Frame, offsetX float64) {
	body := cloudTint.Scaled(lerp(1.0, 0.30, fr.Tod))
	blushAlpha := detailFade(fr.Tod, blushFadeStart, blushFadeEnd)
	for i := range s.clouds {
		c := &s.clouds[i]
		// Fold into the cloud band so the layer tiles forever.
		x := math.Mod(c.x+offsetX, s.cloudSpan)
		if x < 0 {
			x += s.cloudSpan
		}
		if x >= s.cloudSpan-160 {
			// Straddles the band's left edge.
			x -= s.cloudSpan
		}
		if x > s.cfg.ViewportWidth+160 {
			continue
		}
		r := 26 * c.scale
		fillEllipse(dst, x, c.y, r*1.9, r*0.8, 0, body, BlendNormal)
		fillCircle(dst, x-r*0.9, c.y+r*0.12, r*0.7, body, BlendNormal)
		fillCircle(dst, x+r*0.8, c.y+r*0.10, r*0.75, body, BlendNormal)
		fillCircle(dst, x, c.y-r*0.35, r*0.8, body, BlendNormal)
		if blushAlpha > 0 {
			// Warm underside highlight, gone entirely by dusk.
			fillEllipse(dst, x, c.y+r*0.5, r*1.4, r*0.35, 0,
				cloudBlush.WithAlpha(0.35*blushAlpha), BlendNormal)
		}
	}
}

func drawFarHillsLayer(s *Scene, dst *ebiten.Image, fr Frame, offsetX float64) {
	col := farHillTint.Scaled(fr.NightScale)
	fillRidge(dst, s.farHills.Points, offsetX, s.cfg.ViewportHeight, col)
}

func drawMidHillsLayer(s *Scene, dst *ebiten.Image, fr Frame, offsetX float64) {
	col := midHillTint.Scaled(fr.NightScale)
	fillRidge(dst, s.midHills.Points, offsetX, s.cfg.ViewportHeight, col)
}

func drawGroundLayer(s *Scene, dst *ebiten.Image, fr Frame, offsetX float64) {
	col := groundTint.Scaled(fr.NightScale)
	fillRidge(dst, s.ground.Points, offsetX, s.cfg.ViewportHeight, col)
	drawGrass(s, dst, fr, offsetX)
}

// grassSpacing is the world-unit gap between blades.
const grassSpacing = 14

// drawGrass strokes short blades along the ground line. Heights come from
// the noise source, so blades keep their shape as the camera moves.
func drawGrass(s *Scene, dst *ebiten.Image, fr Frame, offsetX float64) {
	col := grassTint.Scaled(fr.NightScale).toRGBA()
	scroll := s.camera.ScrollRange()
	left := -offsetX - grassSpacing
	right := -offsetX + s.cfg.ViewportWidth + grassSpacing
	start := math.Floor(left/grassSpacing) * grassSpacing
	for wx := start; wx <= right; wx += grassSpacing {
		// Blade shape keys off the position folded into one scroll
		// period, so the blades past the wrap repeat the first ones.
		fold := math.Mod(wx, scroll)
		if fold < 0 {
			fold += scroll
		}
		h := 6 + s.noise.At(fold*0.11)*10
		lean := (s.noise.At(fold*0.053+7) - 0.5) * 6
		baseY := s.ground.ElevationAt(wx) + 2
		x := wx + offsetX
		vector.StrokeLine(dst, float32(x), float32(baseY),
			float32(x+lean), float32(baseY-h), 1.5, col, true)
	}
}

func drawTreesLayer(s *Scene, dst *ebiten.Image, fr Frame, offsetX float64) {
	trunk := trunkTint.Scaled(fr.NightScale)
	canopy := canopyTint.Scaled(fr.NightScale)
	rimAlpha := detailFade(fr.Tod, rimFadeStart, rimFadeEnd)
	for i := range s.trees {
		t := &s.trees[i]
		x := t.x + offsetX
		if x < -120 || x > s.cfg.ViewportWidth+120 {
			continue
		}
		topY := t.baseY - t.height
		trunkW := t.width * 0.22
		fillPolygon(dst, []Vec2{
			{X: x - trunkW/2, Y: t.baseY},
			{X: x + trunkW/2, Y: t.baseY},
			{X: x + trunkW*0.35, Y: topY + t.height*0.35},
			{X: x - trunkW*0.35, Y: topY + t.height*0.35},
		}, 0, trunk, BlendNormal)

		crownR := t.width * 0.9
		fillCircle(dst, x, topY+crownR*0.5, crownR, canopy, BlendNormal)
		fillCircle(dst, x-crownR*0.7, topY+crownR*0.9, crownR*0.75, canopy, BlendNormal)
		fillCircle(dst, x+crownR*0.7, topY+crownR*0.9, crownR*0.75, canopy, BlendNormal)
		if rimAlpha > 0 {
			// Western rim light, fully faded by mid-transition.
			fillEllipse(dst, x-crownR*0.45, topY+crownR*0.35,
				crownR*0.55, crownR*0.3, -0.5,
				rimLightTint.WithAlpha(0.30*rimAlpha), BlendNormal)
		}
	}
}

func drawFlowersLayer(s *Scene, dst *ebiten.Image, fr Frame, offsetX float64) {
	coreAlpha := detailFade(fr.Tod, flowerFadeStart, flowerFadeEnd)
	for i := range s.flowers {
		f := &s.flowers[i]
		x := f.x + offsetX
		if x < -20 || x > s.cfg.ViewportWidth+20 {
			continue
		}
		petal := f.tint.Scaled(fr.NightScale)
		for p := 0; p < 5; p++ {
			a := 2 * math.Pi * float64(p) / 5
			sin, cos := math.Sincos(a)
			fillEllipse(dst, x+cos*f.size, f.y+sin*f.size,
				f.size*0.9, f.size*0.55, a, petal, BlendNormal)
		}
		if coreAlpha > 0 {
			fillCircle(dst, x, f.y, f.size*0.55, flowerCore.WithAlpha(coreAlpha), BlendNormal)
		}
	}
}
