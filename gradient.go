package swraster

import (
	"math"
	"sort"

	"github.com/gogpu/swraster/internal/pixel"
)

// gradientEpsilon is the minimum linear length / radial radius accepted
// by the constructors; below it the gradient is degenerate per §3.
const gradientEpsilon = 1e-6

// ExtendMode selects how buildRamp maps each ramp position through
// applyExtendMode while sampling the stops over [0,1]. At raster time a
// gradient parameter outside [0,1] is clamped to the first or last ramp
// entry by clampRampIndex whatever the mode; the gradient is not tiled
// or mirrored beyond its own axis.
type ExtendMode int

const (
	// ExtendPad clamps to the nearest edge stop.
	ExtendPad ExtendMode = iota
	// ExtendRepeat tiles the gradient.
	ExtendRepeat
	// ExtendReflect mirrors alternate tiles.
	ExtendReflect
)

// ColorStop places a straight-alpha color at a position along a
// gradient's [0,1] parameter axis.
type ColorStop struct {
	Offset  float64
	R, G, B, A uint8
}

// LinearParams is the axis of a linear gradient: t is the normalized
// projection of a point onto the segment (PivotX,PivotY)-(PivotX+DirX*Len,
// PivotY+DirY*Len).
type LinearParams struct {
	PivotX, PivotY float64
	DirX, DirY     float64
	Len            float64
}

// T evaluates the closed-form linear gradient parameter at (x, y),
// unnormalized to [0,1] (extend mode is applied by the ramp lookup).
func (p LinearParams) T(x, y float64) float64 {
	return ((x-p.PivotX)*p.DirX + (y-p.PivotY)*p.DirY) / p.Len
}

// RadialParams describes a focal radial gradient: a circle of radius A
// centred at (Cx, Cy), with rays cast from focus (Fx, Fy).
type RadialParams struct {
	Cx, Cy float64
	A      float64
	Fx, Fy float64
}

// T evaluates the radial gradient parameter at (x, y) via ray-circle
// intersection when the focus is off-center, or plain distance-from-
// center when it coincides with the center.
func (p RadialParams) T(x, y float64) float64 {
	if p.Fx == p.Cx && p.Fy == p.Cy {
		dx, dy := x-p.Cx, y-p.Cy
		return math.Sqrt(dx*dx+dy*dy) / p.A
	}

	dx, dy := x-p.Fx, y-p.Fy
	fx, fy := p.Cx-p.Fx, p.Cy-p.Fy

	a := dx*dx + dy*dy
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - p.A*p.A

	if a == 0 {
		return 0
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 1
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}

	pointDist := math.Sqrt(a)
	intersectDist := t * pointDist
	if intersectDist == 0 {
		return 0
	}
	return pointDist / intersectDist
}

// GradientFill is the fully-resolved gradient a span writer consumes:
// exactly one of Linear or Radial is set, plus a precomputed 256-entry
// premultiplied color ramp. Translucent reports whether any ramp entry
// carries partial coverage; callers that need to skip blending for a
// provably-opaque ramp can check it before rasterizing.
type GradientFill struct {
	Linear      *LinearParams
	Radial      *RadialParams
	Ramp        [256]uint32
	Translucent bool
}

// T evaluates the gradient parameter at (x, y), unclamped. Callers
// index Ramp with clampRampIndex(T(x,y)).
func (g GradientFill) T(x, y float64) float64 {
	if g.Linear != nil {
		return g.Linear.T(x, y)
	}
	return g.Radial.T(x, y)
}

// clampRampIndex maps a gradient parameter to a [0,255] ramp index,
// clamping t to [0,1]. No extend mode is applied to t here.
func clampRampIndex(t float64) uint8 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 255
	}
	return uint8(math.Round(t * 255))
}

func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
	return sorted
}

func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAtOffset resolves the premultiplied word at parameter t by
// locating its bracketing stops and interpolating at the byte level
// (§4 explicitly excludes colour management beyond byte order, so this
// does not linearize to sRGB the way a display-facing gradient would).
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode, bl Blender) uint32 {
	if len(stops) == 0 {
		return 0
	}
	if len(stops) == 1 {
		s := stops[0]
		return premultiplyStop(s, bl)
	}

	sorted := sortStops(stops)
	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool { return sorted[i].Offset >= t })
	if idx == 0 {
		return premultiplyStop(sorted[0], bl)
	}
	if idx >= len(sorted) {
		return premultiplyStop(sorted[len(sorted)-1], bl)
	}

	s1, s2 := sorted[idx-1], sorted[idx]
	if s2.Offset == s1.Offset {
		return premultiplyStop(s1, bl)
	}
	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	w1 := premultiplyStop(s1, bl)
	w2 := premultiplyStop(s2, bl)
	return pixel.Interpolate(w2, w1, byte(math.Round(localT*255)))
}

func premultiplyStop(s ColorStop, bl Blender) uint32 {
	r := uint16(s.R) * uint16(s.A) / 255
	g := uint16(s.G) * uint16(s.A) / 255
	b := uint16(s.B) * uint16(s.A) / 255
	return bl.Join(byte(r), byte(g), byte(b), s.A)
}

// buildRamp precomputes the 256-entry premultiplied ramp and whether
// any entry is non-opaque.
func buildRamp(stops []ColorStop, extend ExtendMode, bl Blender) (ramp [256]uint32, translucent bool) {
	for i := 0; i < 256; i++ {
		t := float64(i) / 255
		w := colorAtOffset(stops, t, extend, bl)
		ramp[i] = w
		if bl.Alpha(w) != 255 {
			translucent = true
		}
	}
	return
}

// NewLinearGradientFill builds a linear GradientFill along (x0,y0)-(x1,y1).
// It reports false ("degenerate gradient") if the axis length is below
// gradientEpsilon.
func NewLinearGradientFill(x0, y0, x1, y1 float64, stops []ColorStop, extend ExtendMode, bl Blender) (GradientFill, bool) {
	dx, dy := x1-x0, y1-y0
	length := math.Sqrt(dx*dx + dy*dy)
	if length < gradientEpsilon {
		return GradientFill{}, false
	}
	ramp, translucent := buildRamp(stops, extend, bl)
	return GradientFill{
		Linear: &LinearParams{
			PivotX: x0, PivotY: y0,
			DirX: dx / length, DirY: dy / length,
			Len: length,
		},
		Ramp:        ramp,
		Translucent: translucent,
	}, true
}

// NewRadialGradientFill builds a radial GradientFill of radius a
// centred at (cx,cy) with rays from focus (fx,fy). It reports false
// ("degenerate gradient") if a is below gradientEpsilon.
func NewRadialGradientFill(cx, cy, fx, fy, a float64, stops []ColorStop, extend ExtendMode, bl Blender) (GradientFill, bool) {
	if a < gradientEpsilon {
		return GradientFill{}, false
	}
	ramp, translucent := buildRamp(stops, extend, bl)
	return GradientFill{
		Radial:      &RadialParams{Cx: cx, Cy: cy, A: a, Fx: fx, Fy: fy},
		Ramp:        ramp,
		Translucent: translucent,
	}, true
}
