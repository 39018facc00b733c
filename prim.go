package glade

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is the shared 1x1 source image for solid-color fills.
// Created lazily so pure simulation code (and tests) never touch ebiten.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(Color{1, 1, 1, 1}.toRGBA())
	}
	return whitePixel
}

// setVertex writes one solid-color vertex. Colors are premultiplied here
// and submitted with ColorScaleModePremultipliedAlpha.
func setVertex(v *ebiten.Vertex, x, y float64, col Color) {
	a := float32(clamp01(col.A))
	v.DstX = float32(x)
	v.DstY = float32(y)
	v.SrcX = 0.5
	v.SrcY = 0.5
	v.ColorR = float32(clamp01(col.R)) * a
	v.ColorG = float32(clamp01(col.G)) * a
	v.ColorB = float32(clamp01(col.B)) * a
	v.ColorA = a
}

// submitTriangles draws premultiplied solid-color triangles with the given blend.
func submitTriangles(dst *ebiten.Image, verts []ebiten.Vertex, inds []uint16, blend BlendMode) {
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.Blend = blend.EbitenBlend()
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), &op)
}

// fillPolygon fan-triangulates points (translated by offsetX) and fills them
// with a single color. Needs at least 3 points.
func fillPolygon(dst *ebiten.Image, points []Vec2, offsetX float64, col Color, blend BlendMode) {
	n := len(points)
	if n < 3 {
		return
	}
	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)
	for i, p := range points {
		setVertex(&verts[i], p.X+offsetX, p.Y, col)
	}
	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	submitTriangles(dst, verts, inds, blend)
}

// fillPolygonCentroid fills a polygon that is star-shaped with respect to
// its centroid (convex shapes, regular stars) by fanning from the centroid.
func fillPolygonCentroid(dst *ebiten.Image, points []Vec2, col Color, blend BlendMode) {
	n := len(points)
	if n < 3 {
		return
	}
	var cx, cy float64
	for _, p := range points {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(n)
	cy /= float64(n)

	verts := make([]ebiten.Vertex, n+1)
	inds := make([]uint16, n*3)
	setVertex(&verts[0], cx, cy, col)
	for i, p := range points {
		setVertex(&verts[i+1], p.X, p.Y, col)
	}
	for i := 0; i < n; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16((i+1)%n + 1)
	}
	submitTriangles(dst, verts, inds, blend)
}

// fillBand fills the strip between two polylines of equal length, e.g. the
// region between two arcs. Works for non-convex strips like a crescent.
func fillBand(dst *ebiten.Image, outer, inner []Vec2, col Color, blend BlendMode) {
	n := len(outer)
	if n < 2 || len(inner) != n {
		return
	}
	verts := make([]ebiten.Vertex, n*2)
	inds := make([]uint16, (n-1)*6)
	for i := 0; i < n; i++ {
		setVertex(&verts[i*2], outer[i].X, outer[i].Y, col)
		setVertex(&verts[i*2+1], inner[i].X, inner[i].Y, col)
	}
	for i := 0; i < n-1; i++ {
		o0 := uint16(i * 2)
		in0 := uint16(i*2 + 1)
		o1 := uint16((i + 1) * 2)
		in1 := uint16((i+1)*2 + 1)
		inds[i*6+0] = o0
		inds[i*6+1] = o1
		inds[i*6+2] = in0
		inds[i*6+3] = in0
		inds[i*6+4] = o1
		inds[i*6+5] = in1
	}
	submitTriangles(dst, verts, inds, blend)
}

// fillRidge fills the area between an elevation ridge and the bottom edge.
// points must be ordered left to right. Triangulated as vertical strips so
// arbitrary ridge shapes fill correctly.
func fillRidge(dst *ebiten.Image, points []Vec2, offsetX, bottom float64, col Color) {
	n := len(points)
	if n < 2 {
		return
	}
	ridge := make([]Vec2, n)
	base := make([]Vec2, n)
	for i, p := range points {
		ridge[i] = Vec2{X: p.X + offsetX, Y: p.Y}
		base[i] = Vec2{X: p.X + offsetX, Y: bottom}
	}
	fillBand(dst, ridge, base, col, BlendNormal)
}

// fillVerticalGradient fills rect with a top→bottom color gradient using
// per-vertex colors on a single quad.
func fillVerticalGradient(dst *ebiten.Image, rect Rect, top, bottom Color) {
	var verts [4]ebiten.Vertex
	setVertex(&verts[0], rect.X, rect.Y, top)
	setVertex(&verts[1], rect.X+rect.Width, rect.Y, top)
	setVertex(&verts[2], rect.X+rect.Width, rect.Y+rect.Height, bottom)
	setVertex(&verts[3], rect.X, rect.Y+rect.Height, bottom)
	inds := []uint16{0, 1, 2, 0, 2, 3}
	submitTriangles(dst, verts[:], inds, BlendNormal)
}

// ellipseSegments is the fan resolution for ellipse fills.
const ellipseSegments = 20

// fillEllipse fills a rotated ellipse centered at (cx, cy) with radii
// (rx, ry), rotated by rot radians.
func fillEllipse(dst *ebiten.Image, cx, cy, rx, ry, rot float64, col Color, blend BlendMode) {
	sin, cos := math.Sincos(rot)
	pts := make([]Vec2, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		x := rx * math.Cos(a)
		y := ry * math.Sin(a)
		pts[i] = Vec2{
			X: cx + x*cos - y*sin,
			Y: cy + x*sin + y*cos,
		}
	}
	fillPolygon(dst, pts, 0, col, blend)
}

// fillCircle fills an axis-aligned circle.
func fillCircle(dst *ebiten.Image, cx, cy, r float64, col Color, blend BlendMode) {
	fillEllipse(dst, cx, cy, r, r, 0, col, blend)
}
