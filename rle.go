package swraster

// Span is a single run of constant coverage on one scanline: pixels
// [X, X+Len) on row Y are covered at Coverage/255.
type Span struct {
	X, Y     int16
	Len      uint16
	Coverage uint8
}

// RleSpans is an ordered, non-overlapping coverage mask: spans are
// sorted first by Y then by X, and no two spans on the same row
// overlap (adjacent spans may touch and are not required to merge, but
// a well-formed producer should not emit degenerate zero-length spans).
type RleSpans []Span

// Validate reports whether spans is sorted by (Y, X) and free of
// same-row overlaps. Rasterizers that consume caller-supplied RLE
// input call this once before iterating and fail with "malformed RLE"
// on false, per §3's precondition-failure taxonomy.
func (spans RleSpans) Validate() bool {
	for i := 1; i < len(spans); i++ {
		prev, cur := spans[i-1], spans[i]
		if cur.Len == 0 {
			return false
		}
		if cur.Y < prev.Y {
			return false
		}
		if cur.Y == prev.Y {
			if cur.X < prev.X {
				return false
			}
			if int32(prev.X)+int32(prev.Len) > int32(cur.X) {
				return false
			}
		}
	}
	if len(spans) > 0 && spans[0].Len == 0 {
		return false
	}
	return true
}

// Bounds computes the bounding box covering every span, or an empty
// BBox if spans is empty.
func (spans RleSpans) Bounds() BBox {
	if len(spans) == 0 {
		return BBox{}
	}
	b := BBox{
		MinX: int(spans[0].X), MaxX: int(spans[0].X) + int(spans[0].Len),
		MinY: int(spans[0].Y), MaxY: int(spans[0].Y) + 1,
	}
	for _, s := range spans[1:] {
		x0, x1 := int(s.X), int(s.X)+int(s.Len)
		y0, y1 := int(s.Y), int(s.Y)+1
		if x0 < b.MinX {
			b.MinX = x0
		}
		if x1 > b.MaxX {
			b.MaxX = x1
		}
		if y0 < b.MinY {
			b.MinY = y0
		}
		if y1 > b.MaxY {
			b.MaxY = y1
		}
	}
	return b
}
