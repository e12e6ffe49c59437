package swraster

import "github.com/gogpu/swraster/internal/pixel"

// Shape is either an axis-aligned rectangle or a run-length-encoded
// coverage mask; RasterShape and RasterGradientShape accept either.
type Shape struct {
	Rect  *BBox
	Spans RleSpans
}

// RectShape wraps a rectangle as a Shape.
func RectShape(box BBox) Shape { return Shape{Rect: &box} }

// SpanShape wraps an RLE coverage mask as a Shape. RasterStroke and
// RasterGradientStroke always use this form (§4.8: "raster_stroke
// always RLE").
func SpanShape(spans RleSpans) Shape { return Shape{Spans: spans} }

func premultiplyByte(c, a byte) byte { return pixel.Scale(c, a) }

// RasterShape fills shape with solid colour (r, g, b, a), honoring the
// surface's active compositor mode. It reports false on an
// unsupported surface configuration or empty geometry.
func RasterShape(s *Surface, shape Shape, r, g, b, a byte) bool {
	if s == nil || s.Width <= 0 || s.Height <= 0 {
		return reject(preconditionLevel, "null or zero-dimension surface")
	}
	pr, pg, pb := premultiplyByte(r, a), premultiplyByte(g, a), premultiplyByte(b, a)

	if !s.IsColor() {
		return rasterShapeGray(s, shape, pr, a)
	}

	color := s.Blender.Join(pr, pg, pb, a)
	return rasterGeometry(s, shape, func(x, y int) (uint32, byte, bool) { return color, 255, true },
		func(x, y int, coverage byte) (uint32, byte, bool) { return color, coverage, true })
}

// RasterStroke fills a stroke's RLE coverage mask with solid colour.
// It is a thin alias of RasterShape: the stroke geometry always
// arrives as spans, and the fill algebra is identical.
func RasterStroke(s *Surface, spans RleSpans, r, g, b, a byte) bool {
	return RasterShape(s, SpanShape(spans), r, g, b, a)
}

// RasterGradientShape fills shape by evaluating fill's ramp at each
// pixel. Grayscale surfaces reject with "gradient on grayscale
// unsupported" per §4.8.
func RasterGradientShape(s *Surface, shape Shape, fill GradientFill) bool {
	if s == nil || s.Width <= 0 || s.Height <= 0 {
		return reject(preconditionLevel, "null or zero-dimension surface")
	}
	if !s.IsColor() {
		return reject(preconditionLevel, "gradient on grayscale unsupported")
	}
	if fill.Linear == nil && fill.Radial == nil {
		return reject(degenerateLevel, "degenerate gradient")
	}
	rectSrc := func(x, y int) (uint32, byte, bool) {
		idx := clampRampIndex(fill.T(float64(x)+0.5, float64(y)+0.5))
		return fill.Ramp[idx], 255, true
	}
	spanSrc := func(x, y int, coverage byte) (uint32, byte, bool) {
		idx := clampRampIndex(fill.T(float64(x)+0.5, float64(y)+0.5))
		return fill.Ramp[idx], coverage, true
	}
	return rasterGeometry(s, shape, rectSrc, spanSrc)
}

// RasterGradientStroke is RasterGradientShape restricted to a stroke's
// RLE mask.
func RasterGradientStroke(s *Surface, spans RleSpans, fill GradientFill) bool {
	return RasterGradientShape(s, SpanShape(spans), fill)
}

// rasterGeometry dispatches a rect or RLE Shape to the compositing
// engine. rectAt supplies the source word for a rect fill (uniform
// coverage 255); spanAt supplies it for one RLE span pixel, given the
// span's own coverage.
func rasterGeometry(
	s *Surface,
	shape Shape,
	rectAt func(x, y int) (uint32, byte, bool),
	spanAt func(x, y int, coverage byte) (uint32, byte, bool),
) bool {
	switch {
	case shape.Rect != nil:
		box := shape.Rect.ClampToSurface(s.Width, s.Height)
		if box.Empty() {
			return reject(degenerateLevel, "empty rect geometry")
		}
		return s.paint(effectiveBox(s, box), func(x, y int) (uint32, byte, bool) {
			if !box.Contains(x, y) {
				return 0, 0, false
			}
			return rectAt(x, y)
		})
	case len(shape.Spans) > 0:
		if !shape.Spans.Validate() {
			return reject(preconditionLevel, "malformed RLE")
		}
		bounds := shape.Spans.Bounds().ClampToSurface(s.Width, s.Height)
		box := effectiveBox(s, bounds)
		lookup := buildSpanLookup(shape.Spans)
		return s.paint(box, func(x, y int) (uint32, byte, bool) {
			cov, ok := lookup(x, y)
			if !ok {
				return 0, 0, false
			}
			return spanAt(x, y, cov)
		})
	default:
		return reject(degenerateLevel, "empty geometry")
	}
}

// effectiveBox returns the region a paint call should iterate: the
// shape's own bounds, except when IntersectMask is active, in which
// case it must be the full compositor bounds so out-of-region pixels
// get zeroed (§4.4).
func effectiveBox(s *Surface, shapeBounds BBox) BBox {
	if s.Compositor != nil && s.Compositor.Mode == IntersectMask {
		return s.Compositor.Bounds
	}
	return shapeBounds
}

// buildSpanLookup returns a function mapping (x, y) to the covering
// span's coverage, or !ok if no span covers that pixel. Spans is
// assumed validated (sorted, non-overlapping).
func buildSpanLookup(spans RleSpans) func(x, y int) (byte, bool) {
	byRow := make(map[int16][]Span)
	for _, sp := range spans {
		byRow[sp.Y] = append(byRow[sp.Y], sp)
	}
	return func(x, y int) (byte, bool) {
		row, ok := byRow[int16(y)]
		if !ok {
			return 0, false
		}
		for _, sp := range row {
			if x >= int(sp.X) && x < int(sp.X)+int(sp.Len) {
				return sp.Coverage, true
			}
			if x < int(sp.X) {
				break // spans in a row are sorted by X
			}
		}
		return 0, false
	}
}

// rasterShapeGray implements the grayscale-only rect/RLE matte path:
// a single byte per pixel via INTERPOLATE8(src, dst, a) = src*a/255 +
// dst*(255-a)/255. Mask compositing and gradients are unsupported on
// a grayscale surface.
func rasterShapeGray(s *Surface, shape Shape, gray, a byte) bool {
	mode := None
	if s.Compositor != nil {
		mode = s.Compositor.Mode
	}
	if mode.IsMask() {
		return reject(preconditionLevel, "mask compositing on grayscale unsupported")
	}

	var box BBox
	var coverageAt func(x, y int) (byte, bool)
	switch {
	case shape.Rect != nil:
		box = shape.Rect.ClampToSurface(s.Width, s.Height)
		if box.Empty() {
			return reject(degenerateLevel, "empty rect geometry")
		}
		coverageAt = func(x, y int) (byte, bool) { return 255, true }
	case len(shape.Spans) > 0:
		if !shape.Spans.Validate() {
			return reject(preconditionLevel, "malformed RLE")
		}
		box = shape.Spans.Bounds().ClampToSurface(s.Width, s.Height)
		coverageAt = buildSpanLookup(shape.Spans)
	default:
		return reject(degenerateLevel, "empty geometry")
	}

	for y := box.MinY; y < box.MaxY; y++ {
		for x := box.MinX; x < box.MaxX; x++ {
			cov, ok := coverageAt(x, y)
			if !ok {
				continue
			}
			effA := pixel.Scale(a, cov)
			if mode.IsMatte() {
				if s.Compositor == nil {
					return reject(preconditionLevel, "matte composite with no active compositor")
				}
				m := matteAlphaAt(s.Compositor.Surface, mode, x, y)
				effA = pixel.Scale(effA, m)
			}
			dst := s.byteAt(x, y)
			s.setByteAt(x, y, byte(uint16(gray)*uint16(effA)/255+uint16(dst)*uint16(255-effA)/255))
		}
	}
	return true
}
