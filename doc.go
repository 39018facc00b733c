// Package glade renders a horizontally-scrolling parallax nature scene for
// [Ebitengine], morphing continuously from afternoon to night as the camera
// travels the world.
//
// The sky palette, terrain tint, and ambient particles are all driven by a
// single time-of-day scalar derived from the camera position, so scrolling
// the scene is the same thing as moving through the day. Four fixed landmark
// symbols pulse into view along the way.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene, err := glade.NewScene(glade.SceneConfig{
//		WorldWidth:     2400,
//		ViewportWidth:  800,
//		ViewportHeight: 600,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	glade.Run(scene, glade.RunConfig{Title: "Glade"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly:
//
//	type Game struct{ scene *glade.Scene }
//
//	func (g *Game) Update() error        { g.scene.Update(sampleInput()); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return 800, 600 }
//
// # Frame model
//
// All mutable state lives in a [Scene] and is advanced synchronously by
// [Scene.Update]: the camera moves (autoscroll, directional input, or an
// animated [Camera.ScrollTo] seek), the time-of-day scalar is recomputed,
// and particles and symbol pulses integrate one step. [Scene.Draw] then
// composites the fixed layer stack back to front, each layer offset by the
// camera position times its parallax coefficient. Nothing is concurrent;
// every draw call observes the snapshot taken at the top of the tick.
//
// [Ebitengine]: https://ebitengine.org
package glade
