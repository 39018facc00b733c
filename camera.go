package glade

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Direction is the level-triggered manual scroll input. It is state, not an
// event: the camera re-reads it every frame for as long as a key is held.
type Direction uint8

const (
	DirectionNone  Direction = iota // no manual input
	DirectionLeft                   // scroll toward world start
	DirectionRight                  // scroll toward world end
)

// Default scroll speeds in world units per tick.
const (
	defaultAutoSpeed   = 0.6
	defaultManualSpeed = 4.0
)

// Camera owns the horizontal scroll position into the world. Exactly one
// driver moves it per frame: the autoscroll increment, the manual direction
// input, or an active ScrollTo seek.
type Camera struct {
	// Position is the world-space x of the viewport's left edge,
	// in [0, worldWidth − viewportWidth].
	Position float64
	// AutoSpeed is the autoscroll advance per tick.
	AutoSpeed float64
	// ManualSpeed is the directional-input advance per tick.
	ManualSpeed float64

	worldWidth    float64
	viewportWidth float64

	seek     *gween.Tween
	seekDone bool
}

// newCamera creates a Camera with default speeds at position 0.
func newCamera(worldWidth, viewportWidth float64) *Camera {
	return &Camera{
		AutoSpeed:     defaultAutoSpeed,
		ManualSpeed:   defaultManualSpeed,
		worldWidth:    worldWidth,
		viewportWidth: viewportWidth,
	}
}

// ScrollRange returns the travel range of the camera: worldWidth − viewportWidth.
func (c *Camera) ScrollRange() float64 {
	return c.worldWidth - c.viewportWidth
}

// AdvanceAuto moves the camera by AutoSpeed, wrapping seamlessly at the end
// of the scroll range. The modulo wrap is exact, so the loop has no seam.
func (c *Camera) AdvanceAuto() {
	r := c.ScrollRange()
	if r <= 0 {
		c.Position = 0
		return
	}
	c.Position = math.Mod(c.Position+c.AutoSpeed, r)
}

// AdvanceManual moves the camera by ManualSpeed in the given direction,
// clamping at the world bounds. Holding a direction at a bound is a no-op.
func (c *Camera) AdvanceManual(dir Direction) {
	switch dir {
	case DirectionLeft:
		c.Position -= c.ManualSpeed
	case DirectionRight:
		c.Position += c.ManualSpeed
	}
	c.clamp()
}

// ScrollTo animates the camera to the given world position over duration
// seconds. While the seek is active it is the camera's only driver; the
// target is clamped to the scroll range.
func (c *Camera) ScrollTo(x float64, duration float32, easeFn ease.TweenFunc) {
	target := math.Max(0, math.Min(x, c.ScrollRange()))
	c.seek = gween.New(float32(c.Position), float32(target), duration, easeFn)
	c.seekDone = false
}

// Seeking reports whether a ScrollTo animation is in progress.
func (c *Camera) Seeking() bool {
	return c.seek != nil && !c.seekDone
}

// CancelSeek drops any active ScrollTo animation, leaving the camera where
// it is.
func (c *Camera) CancelSeek() {
	c.seek = nil
}

// advance applies this frame's single driver. Seek wins over the
// autoscroll flag, which wins over directional input.
func (c *Camera) advance(in Input, dt float32) {
	if c.Seeking() {
		val, done := c.seek.Update(dt)
		c.Position = float64(val)
		c.clamp()
		if done {
			c.seekDone = true
			c.seek = nil
		}
		return
	}
	if in.Autoscroll {
		c.AdvanceAuto()
		return
	}
	c.AdvanceManual(in.Direction)
}

// clamp restricts Position to [0, ScrollRange].
func (c *Camera) clamp() {
	r := c.ScrollRange()
	if r < 0 {
		r = 0
	}
	c.Position = math.Max(0, math.Min(c.Position, r))
}
