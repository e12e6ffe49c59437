package swraster

import (
	"math"

	"github.com/gogpu/swraster/internal/pixel"
	"github.com/gogpu/swraster/internal/resample"
	"github.com/gogpu/swraster/internal/texmap"
)

// blitPath classifies how RasterImage samples the source, derived
// from the inverse of the forward matrix.
type blitPath int

const (
	pathDirect blitPath = iota
	pathScaled
	pathTransformed
)

const directTolerance = 1e-6

func classifyBlit(inv Matrix) blitPath {
	if !inv.IsAffine() {
		return pathTransformed
	}
	if math.Abs(inv.B) > directTolerance || math.Abs(inv.D) > directTolerance {
		return pathTransformed
	}
	if math.Abs(inv.A-1) < directTolerance && math.Abs(inv.E-1) < directTolerance {
		return pathDirect
	}
	return pathScaled
}

// MeshVertex is one corner of a mesh triangle: (ImageX, ImageY) is its
// sample point in img's own pixel space, and (DestX, DestY) is its
// position before matrix is applied — the same role an image corner
// plays in RasterImage's default quad split, generalized to an
// arbitrary triangle.
type MeshVertex struct {
	ImageX, ImageY float64
	DestX, DestY   float64
}

// MeshTriangle is three mesh vertices, wound in the order
// internal/texmap.DrawTriangle expects.
type MeshTriangle [3]MeshVertex

// Mesh overrides RasterImage's default corner-quad split with an
// arbitrary triangle list, letting an image warp onto a non-planar
// destination shape instead of a single affine/projective quad (the
// texmap-mesh dispatch of §4.6/§4.8). A nil or empty Mesh falls back
// to the default two-triangle quad covering img's own corners.
type Mesh []MeshTriangle

// RasterImage draws img under matrix, clipped to bbox, at the given
// opacity, honoring the surface's active compositor mode. When mesh is
// non-empty, it replaces the default corner-quad split with an
// arbitrary per-triangle warp; matrix still applies to every mesh
// vertex's destination point. It reports false if the surface is
// null/grayscale, bbox lies outside the surface, or matrix (or a mesh
// vertex under matrix) is non-invertible/degenerate.
func RasterImage(s *Surface, img Image, mesh Mesh, matrix Matrix, bbox BBox, opacity float64) bool {
	if s == nil || s.Width <= 0 || s.Height <= 0 {
		return reject(preconditionLevel, "null or zero-dimension surface")
	}
	if !s.IsColor() {
		return reject(preconditionLevel, "image on grayscale unsupported")
	}
	if !img.Valid() {
		return reject(preconditionLevel, "invalid image source")
	}
	box := bbox.ClampToSurface(s.Width, s.Height)
	if box.Empty() {
		return reject(preconditionLevel, "bbox outside surface")
	}

	opByte := byte(clamp01(opacity) * 255)

	inv, ok := matrix.Invert()
	if !ok {
		return reject(degenerateLevel, "degenerate transform")
	}

	if len(mesh) > 0 {
		return rasterImageMesh(s, img, mesh, matrix, box, opByte)
	}

	switch classifyBlit(inv) {
	case pathDirect:
		return rasterImageDirect(s, img, inv, box, opByte)
	case pathScaled:
		return rasterImageScaled(s, img, inv, box, opByte)
	default:
		return rasterImageMesh(s, img, defaultQuadMesh(img), matrix, box, opByte)
	}
}

func rasterImageDirect(s *Surface, img Image, inv Matrix, box BBox, opacity byte) bool {
	src := func(x, y int) (uint32, byte, bool) {
		sx := int(math.Round(float64(x)*inv.A+inv.C)) + img.OffsetX
		sy := int(math.Round(float64(y)*inv.E+inv.F)) + img.OffsetY
		if sx < 0 || sx >= img.Width || sy < 0 || sy >= img.Height {
			return 0, 0, false
		}
		return img.wordAt(sx, sy), opacity, true
	}
	return s.paint(effectiveBox(s, box), src)
}

func rasterImageScaled(s *Surface, img Image, inv Matrix, box BBox, opacity byte) bool {
	forwardScale := 1.0
	if inv.A != 0 {
		forwardScale = 1 / math.Abs(inv.A)
	}
	source := img.source()
	downscale := forwardScale < resample.DownscaleTolerance
	n := resample.HalfScale(forwardScale)

	src := func(x, y int) (uint32, byte, bool) {
		sx := float64(x)*inv.A + inv.C + float64(img.OffsetX)
		sy := float64(y)*inv.E + inv.F + float64(img.OffsetY)
		if downscale {
			// Centre the 2n x 2n box on the source position of the
			// destination pixel's centre, so it spans that pixel's footprint.
			cx := (float64(x)+0.5)*inv.A + inv.C + float64(img.OffsetX)
			cy := (float64(y)+0.5)*inv.E + inv.F + float64(img.OffsetY)
			w, ok := resample.Downscale(source, int(math.Round(cx)), int(math.Round(cy)), n)
			if !ok {
				return 0, 0, false
			}
			return w, opacity, true
		}
		if sx < 0 || sx >= float64(img.Width) || sy < 0 || sy >= float64(img.Height) {
			return 0, 0, false
		}
		return resample.Upscale(source, sx, sy), opacity, true
	}
	return s.paint(effectiveBox(s, box), src)
}

// imageSampler adapts an Image into texmap's bilinear-sampled Image
// interface via internal/resample's Upscale.
type imageSampler struct {
	img Image
}

func (a imageSampler) Bounds() (int, int) { return a.img.Width, a.img.Height }
func (a imageSampler) Sample(u, v float32) uint32 {
	src := a.img.source()
	fx, fy := clampf(float64(u), 0, float64(a.img.Width-1)), clampf(float64(v), 0, float64(a.img.Height-1))
	return resample.Upscale(src, fx, fy)
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// defaultQuadMesh is the two-triangle split RasterImage uses when the
// caller supplies no explicit Mesh: img's own four corners, mapped to
// themselves in both image and destination space (matrix is applied
// afterward, per vertex, by rasterImageMesh).
func defaultQuadMesh(img Image) Mesh {
	w, h := float64(img.Width), float64(img.Height)
	c := [4]MeshVertex{
		{ImageX: 0, ImageY: 0, DestX: 0, DestY: 0},
		{ImageX: w, ImageY: 0, DestX: w, DestY: 0},
		{ImageX: w, ImageY: h, DestX: w, DestY: h},
		{ImageX: 0, ImageY: h, DestX: 0, DestY: h},
	}
	return Mesh{{c[0], c[1], c[2]}, {c[0], c[2], c[3]}}
}

// meshVertex applies m to v's destination point, producing the
// perspective-correct vertex internal/texmap.DrawTriangle expects.
func meshVertex(m Matrix, v MeshVertex) (texmap.Vertex, bool) {
	xp, yp, wp := m.Apply(v.DestX, v.DestY)
	if wp == 0 {
		return texmap.Vertex{}, false
	}
	invW := float32(1 / wp)
	return texmap.Vertex{
		Pos:    [2]float32{float32(xp), float32(yp)},
		UOverW: float32(v.ImageX) * invW,
		VOverW: float32(v.ImageY) * invW,
		InvW:   invW,
	}, true
}

// rasterImageMesh scan-converts each of mesh's triangles independently
// (grounded on the original's _rasterTexmapPolygonMesh, which loops a
// mesh the same way over _rasterTexmapPolygon), applying m to every
// vertex's destination point before handing it to
// internal/texmap.DrawTriangle.
func rasterImageMesh(s *Surface, img Image, mesh Mesh, m Matrix, box BBox, opacity byte) bool {
	mode := None
	if s.Compositor != nil {
		mode = s.Compositor.Mode
	}
	if mode.IsMatte() && s.Compositor == nil {
		return reject(preconditionLevel, "matte composite with no active compositor")
	}

	clip := texmap.ClipRect{MinX: box.MinX, MinY: box.MinY, MaxX: box.MaxX, MaxY: box.MaxY}
	sampler := imageSampler{img: img}
	plot := func(x, y int, word uint32) {
		compositeOnePixel(s, mode, x, y, word, opacity)
	}

	// Map every vertex before drawing, so a degenerate vertex rejects
	// the call before any pixel is written.
	tris := make([][3]texmap.Vertex, len(mesh))
	for t, tri := range mesh {
		for i, v := range tri {
			vert, ok := meshVertex(m, v)
			if !ok {
				return reject(degenerateLevel, "degenerate transform")
			}
			tris[t][i] = vert
		}
	}
	for _, verts := range tris {
		texmap.DrawTriangle(sampler, verts[0], verts[1], verts[2], clip, plot)
	}

	if mode.IsMask() {
		return s.blitCompositor(box)
	}
	return true
}

// compositeOnePixel applies the same None/matte/mask formulas as
// paint, for callers (the texmap path) that produce pixels one at a
// time rather than by row. Mode None redirects into the active
// compositor's buffer, same as paint, so a mesh/transformed image
// drawn before SetMode still populates the buffer a later matte mode
// reads.
func compositeOnePixel(s *Surface, mode CompositeMode, x, y int, word uint32, coverage byte) {
	switch {
	case mode == None:
		target := s
		if s.Compositor != nil {
			target = s.Compositor.Surface
		}
		dst := target.wordAt(x, y)
		target.setWordAt(x, y, target.Blender.blendWord(word, dst, coverage))
	case mode.IsMatte():
		m := matteAlphaAt(s.Compositor.Surface, mode, x, y)
		dst := s.wordAt(x, y)
		s.setWordAt(x, y, s.Blender.blendWord(word, dst, pixel.Scale(coverage, m)))
	case mode.IsMask():
		comp := s.Compositor.Surface
		scaled := word
		if coverage != 255 {
			scaled = pixel.Blend(word, coverage)
		}
		comp.setWordAt(x, y, applyMaskFormula(mode, scaled, comp.wordAt(x, y)))
	}
}
