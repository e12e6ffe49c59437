package swraster

import "math"

// Matrix is a 3x3 affine transform in row-major order:
//
//	| A B C |
//	| D E F |
//	| G H I |
//
// applied to a homogeneous point (x, y, 1) as:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//	w' = G*x + H*y + I
//
// The rasterizer's rect/RLE/image paths need only the affine subset
// (G=H=0, I=1) and only its inverse; the full 3x3 form and Apply's
// homogeneous divide exist for the texture-mapping path (§4.6), which
// is the only component that consults the forward matrix and its w
// term.
type Matrix struct {
	A, B, C float64
	D, E, F float64
	G, H, I float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1, I: 1}
}

// Translate returns a translation transform.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, B: 0, C: x, D: 0, E: 1, F: y, I: 1}
}

// Scale returns a scaling transform.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy, I: 1}
}

// Rotate returns a rotation transform (angle in radians).
func Rotate(angle float64) Matrix {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos, I: 1}
}

// Multiply returns the composition that applies m first and then o:
// the matrix product o * m under Apply's column-vector convention.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		A: o.A*m.A + o.B*m.D + o.C*m.G,
		B: o.A*m.B + o.B*m.E + o.C*m.H,
		C: o.A*m.C + o.B*m.F + o.C*m.I,
		D: o.D*m.A + o.E*m.D + o.F*m.G,
		E: o.D*m.B + o.E*m.E + o.F*m.H,
		F: o.D*m.C + o.E*m.F + o.F*m.I,
		G: o.G*m.A + o.H*m.D + o.I*m.G,
		H: o.G*m.B + o.H*m.E + o.I*m.H,
		I: o.G*m.C + o.H*m.F + o.I*m.I,
	}
}

// Apply transforms (x, y) into homogeneous coordinates (x', y', w').
// For an affine matrix (G=H=0, I=1), w' is always 1.
func (m Matrix) Apply(x, y float64) (xp, yp, wp float64) {
	xp = m.A*x + m.B*y + m.C
	yp = m.D*x + m.E*y + m.F
	wp = m.G*x + m.H*y + m.I
	return
}

// TransformPoint applies m to an affine point, dividing by w.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	xp, yp, wp := m.Apply(x, y)
	if wp == 0 || wp == 1 {
		return xp, yp
	}
	return xp / wp, yp / wp
}

// IsAffine reports whether m has no projective component.
func (m Matrix) IsAffine() bool {
	return m.G == 0 && m.H == 0 && m.I == 1
}

// Invert returns the inverse of m and true, or (zero, false) if m is
// not invertible (determinant within 1e-10 of zero). Callers fail the
// raster call with "degenerate transform" on false, per §3.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*(m.E*m.I-m.F*m.H) - m.B*(m.D*m.I-m.F*m.G) + m.C*(m.D*m.H-m.E*m.G)
	if math.Abs(det) < 1e-10 {
		return Matrix{}, false
	}
	invDet := 1 / det
	return Matrix{
		A: (m.E*m.I - m.F*m.H) * invDet,
		B: (m.C*m.H - m.B*m.I) * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: (m.F*m.G - m.D*m.I) * invDet,
		E: (m.A*m.I - m.C*m.G) * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
		G: (m.D*m.H - m.E*m.G) * invDet,
		H: (m.B*m.G - m.A*m.H) * invDet,
		I: (m.A*m.E - m.B*m.D) * invDet,
	}, true
}
