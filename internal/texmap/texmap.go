// Package texmap implements perspective-correct scan conversion of
// textured triangles, in the style of the fixed-point edge walker in
// golang.org/x/image/vector's Rasterizer.fixedLineTo: each edge is
// walked top-to-bottom, stepping interpolated attributes linearly in
// screen space and recovering perspective-correct texture coordinates
// by dividing out the interpolated 1/w at each pixel.
package texmap

import "golang.org/x/image/math/f32"

// Vertex is a triangle corner in screen space, carrying the
// homogeneous texture coordinates (U/W, V/W) and 1/W needed to
// recover perspective-correct (u, v) at any interpolated point.
type Vertex struct {
	Pos  f32.Vec2 // destination pixel coordinates
	UOverW, VOverW float32
	InvW float32
}

// Image is a sampled texture source: bilinear lookup at texture-space
// coordinates, already resolved from (u/w)/(1/w) and (v/w)/(1/w).
type Image interface {
	Sample(u, v float32) uint32
	Bounds() (w, h int)
}

// Plot receives one destination pixel produced by triangle
// scan-conversion. x, y are destination pixel coordinates and src is
// the sampled (not yet composited) texel. The caller supplies Plot to
// apply opacity and the active compositor mode without texmap needing
// to know about either.
type Plot func(x, y int, src uint32)

// ClipRect intersects the scan-conversion loop bounds.
type ClipRect struct {
	MinX, MinY, MaxX, MaxY int
}

func (c ClipRect) contains(x, y int) bool {
	return x >= c.MinX && x < c.MaxX && y >= c.MinY && y < c.MaxY
}

// DrawTriangle scan-converts one triangle, sampling img at each
// covered destination pixel and invoking plot. Degenerate
// (zero-area) triangles and triangles entirely outside clip are
// skipped silently.
func DrawTriangle(img Image, v0, v1, v2 Vertex, clip ClipRect, plot Plot) {
	// Sort vertices by ascending screen Y.
	if v0.Pos[1] > v1.Pos[1] {
		v0, v1 = v1, v0
	}
	if v1.Pos[1] > v2.Pos[1] {
		v1, v2 = v2, v1
	}
	if v0.Pos[1] > v1.Pos[1] {
		v0, v1 = v1, v0
	}

	minY, maxY := int(v0.Pos[1]), int(v2.Pos[1])
	if maxY <= minY {
		return // degenerate: zero screen-space height
	}
	if maxY <= clip.MinY || minY >= clip.MaxY {
		return
	}
	minX := min3(v0.Pos[0], v1.Pos[0], v2.Pos[0])
	maxX := max3(v0.Pos[0], v1.Pos[0], v2.Pos[0])
	if int(maxX) <= clip.MinX || int(minX) >= clip.MaxX {
		return
	}

	scanTopHalf(img, v0, v1, v2, clip, plot)
	scanBottomHalf(img, v0, v1, v2, clip, plot)
}

func scanTopHalf(img Image, v0, v1, v2 Vertex, clip ClipRect, plot Plot) {
	if v1.Pos[1] <= v0.Pos[1] {
		return
	}
	y0, y1 := int(v0.Pos[1]), int(v1.Pos[1])
	y0 = max(y0, clip.MinY)
	y1 = min(y1, clip.MaxY)
	for y := y0; y < y1; y++ {
		fy := float32(y) + 0.5
		if fy < v0.Pos[1] || fy >= v1.Pos[1] {
			continue
		}
		tLeft := (fy - v0.Pos[1]) / (v1.Pos[1] - v0.Pos[1])
		left := lerpVertex(v0, v1, tLeft)
		tRight := (fy - v0.Pos[1]) / (v2.Pos[1] - v0.Pos[1])
		right := lerpVertex(v0, v2, tRight)
		scanRow(img, y, left, right, clip, plot)
	}
}

func scanBottomHalf(img Image, v0, v1, v2 Vertex, clip ClipRect, plot Plot) {
	if v2.Pos[1] <= v1.Pos[1] {
		return
	}
	y0, y1 := int(v1.Pos[1]), int(v2.Pos[1])
	y0 = max(y0, clip.MinY)
	y1 = min(y1, clip.MaxY)
	for y := y0; y < y1; y++ {
		fy := float32(y) + 0.5
		if fy < v1.Pos[1] || fy >= v2.Pos[1] {
			continue
		}
		tLeft := (fy - v1.Pos[1]) / (v2.Pos[1] - v1.Pos[1])
		left := lerpVertex(v1, v2, tLeft)
		tRight := (fy - v0.Pos[1]) / (v2.Pos[1] - v0.Pos[1])
		right := lerpVertex(v0, v2, tRight)
		scanRow(img, y, left, right, clip, plot)
	}
}

func scanRow(img Image, y int, left, right Vertex, clip ClipRect, plot Plot) {
	if left.Pos[0] > right.Pos[0] {
		left, right = right, left
	}
	x0, x1 := int(left.Pos[0]), int(right.Pos[0])
	x0 = max(x0, clip.MinX)
	x1 = min(x1, clip.MaxX)
	span := right.Pos[0] - left.Pos[0]
	if span <= 0 {
		return
	}
	for x := x0; x < x1; x++ {
		if !clip.contains(x, y) {
			continue
		}
		t := (float32(x) + 0.5 - left.Pos[0]) / span
		invW := lerp(left.InvW, right.InvW, t)
		if invW == 0 {
			continue
		}
		uOverW := lerp(left.UOverW, right.UOverW, t)
		vOverW := lerp(left.VOverW, right.VOverW, t)
		u, v := uOverW/invW, vOverW/invW
		plot(x, y, img.Sample(u, v))
	}
}

func lerpVertex(a, b Vertex, t float32) Vertex {
	return Vertex{
		Pos:    f32.Vec2{lerp(a.Pos[0], b.Pos[0], t), lerp(a.Pos[1], b.Pos[1], t)},
		UOverW: lerp(a.UOverW, b.UOverW, t),
		VOverW: lerp(a.VOverW, b.VOverW, t),
		InvW:   lerp(a.InvW, b.InvW, t),
	}
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
