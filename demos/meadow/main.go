// Meadow — a scrolling day-to-night walk.
//
// The camera drifts through a meadow while the sky slides from afternoon
// into night. Hold the arrow keys (or A/D) to wander manually, press space
// to toggle the autoscroll, and press 1–4 to glide to one of the four
// landmark symbols hidden along the way.
//
// Demonstrates: NewScene, the Input struct, Camera.ScrollTo with eased
// seeks, and the debug overlay.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/glade"
)

const (
	screenW = 800
	screenH = 600
	worldW  = 2400

	seekDuration = 1.6 // seconds per landmark glide
)

type game struct {
	scene      *glade.Scene
	autoscroll bool
	debug      bool
}

// sampleInput reads the held keys as level state, once per tick.
func sampleInput() glade.Direction {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		return glade.DirectionLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		return glade.DirectionRight
	}
	return glade.DirectionNone
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.autoscroll = !g.autoscroll
		g.scene.Camera().CancelSeek()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	dir := sampleInput()
	if dir != glade.DirectionNone {
		// Manual input takes over from any landmark glide.
		g.scene.Camera().CancelSeek()
		g.autoscroll = false
	}

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4} {
		if inpututil.IsKeyJustPressed(key) {
			sym := g.scene.Symbols()[i]
			g.autoscroll = false
			g.scene.Camera().ScrollTo(sym.X-screenW/2, seekDuration, ease.InOutQuad)
		}
	}

	g.scene.Update(glade.Input{Autoscroll: g.autoscroll, Direction: dir})
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		glade.DrawDebugOverlay(screen, g.scene)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

func main() {
	scene, err := glade.NewScene(glade.SceneConfig{
		WorldWidth:     worldW,
		ViewportWidth:  screenW,
		ViewportHeight: screenH,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Meadow — Glade demo")
	if err := ebiten.RunGame(&game{scene: scene, autoscroll: true}); err != nil {
		log.Fatal(err)
	}
}
