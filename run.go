package glade

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the window dimensions; they default to the
	// scene's viewport size.
	Width, Height int
	// Input samples this tick's control state. Defaults to a function
	// returning autoscroll-on, which plays the scene as a loop.
	Input func() Input
	// Debug enables the FPS/camera/time-of-day overlay.
	Debug bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	g.scene.Update(g.cfg.Input())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.Debug {
		DrawDebugOverlay(screen, g.scene)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return int(g.scene.cfg.ViewportWidth), int(g.scene.cfg.ViewportHeight)
}

// Run creates a window and drives the scene until the window closes.
// Blocks; call from main.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "Glade"
	}
	if cfg.Width <= 0 {
		cfg.Width = int(scene.cfg.ViewportWidth)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(scene.cfg.ViewportHeight)
	}
	if cfg.Input == nil {
		cfg.Input = func() Input { return Input{Autoscroll: true} }
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}
