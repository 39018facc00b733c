package glade

import "math"

// todSegment maps one input interval of the normalized camera position onto
// one output interval of the time-of-day scalar. The local fraction is
// smooth-stepped independently inside each segment, so the curve is
// value-continuous at segment boundaries but slopes are not matched there.
// The chosen breakpoints keep the mismatch below what the eye picks up.
type todSegment struct {
	p0, p1 float64 // input interval over normalized camera position
	v0, v1 float64 // output interval of the tod scalar
}

// todSegments is the afternoon→night curve: long quiet stretches at both
// ends, with most of the change compressed into the middle third of the
// scroll. The leaf landmark sits inside the middle segment, so the fastest
// sky change happens right around its reveal.
var todSegments = [3]todSegment{
	{0.00, 0.22, 0.00, 0.12},
	{0.22, 0.52, 0.12, 0.88},
	{0.52, 1.00, 0.88, 1.00},
}

// TimeOfDay maps a camera position to the normalized day/night scalar.
// 0 is full afternoon, 1 is full night. The result is in [0, 1], monotonic
// in position, and continuous across the piecewise segments.
func TimeOfDay(position, worldWidth, viewportWidth float64) float64 {
	scroll := worldWidth - viewportWidth
	if scroll <= 0 {
		return 0
	}
	p := clamp01(position / scroll)

	for _, seg := range todSegments {
		if p <= seg.p1 || seg.p1 == 1 {
			local := remap01(p, seg.p0, seg.p1)
			return lerp(seg.v0, seg.v1, SmoothStep(local))
		}
	}
	return 1
}

// NightFactor remaps tod onto the particle morph range: 0 until dusk begins,
// 1 once full night has settled. Drives the petal→firefly transition.
func NightFactor(tod float64) float64 {
	return remap01(tod, 0.52, 0.88)
}

// GlowIntensity is the strength of the warm horizon band. It rises from
// nothing, peaks mid-transition, and vanishes again by nightfall, tracing
// sin(π·u) over the sunset window.
func GlowIntensity(tod float64) float64 {
	u := remap01(tod, 0.14, 0.74)
	if u == 0 || u == 1 {
		return 0
	}
	return math.Sin(math.Pi * u)
}

// nightScaleFloor is the RGB multiplier at full night. Terrain and foliage
// darken toward a silhouette rather than shifting hue.
const nightScaleFloor = 0.08

// NightScale returns the multiplicative darkening applied to terrain and
// foliage colors: 1 at full day down to a near-black silhouette at night.
func NightScale(tod float64) float64 {
	return lerp(1.0, nightScaleFloor, clamp01(tod))
}
