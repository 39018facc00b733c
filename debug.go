package glade

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DrawDebugOverlay prints frame rate and scene state in the top-left corner.
func DrawDebugOverlay(screen *ebiten.Image, s *Scene) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\ncam: %.1f / %.0f\ntod: %.3f",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		s.camera.Position, s.camera.ScrollRange(),
		s.frame.Tod,
	))
}
