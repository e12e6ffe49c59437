package swraster

// BBox is an integer axis-aligned rectangle [Min.X, Max.X) x [Min.Y, Max.Y)
// in pixel coordinates. It is empty when either extent is <= 0.
type BBox struct {
	MinX, MinY, MaxX, MaxY int
}

// NewBBox constructs a BBox from a top-left corner and dimensions.
func NewBBox(x, y, w, h int) BBox {
	return BBox{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Empty reports whether the box has non-positive width or height.
func (b BBox) Empty() bool {
	return b.MaxX <= b.MinX || b.MaxY <= b.MinY
}

// Width returns the box width, or 0 if empty.
func (b BBox) Width() int {
	if b.Empty() {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the box height, or 0 if empty.
func (b BBox) Height() int {
	if b.Empty() {
		return 0
	}
	return b.MaxY - b.MinY
}

// Contains reports whether (x, y) lies inside the box.
func (b BBox) Contains(x, y int) bool {
	return x >= b.MinX && x < b.MaxX && y >= b.MinY && y < b.MaxY
}

// Intersect returns the overlap of b and o. The result is empty if they
// do not overlap.
func (b BBox) Intersect(o BBox) BBox {
	r := BBox{
		MinX: max(b.MinX, o.MinX),
		MinY: max(b.MinY, o.MinY),
		MaxX: min(b.MaxX, o.MaxX),
		MaxY: min(b.MaxY, o.MaxY),
	}
	if r.Empty() {
		return BBox{}
	}
	return r
}

// ClampToSurface intersects b with the [0,w) x [0,h) surface bounds.
func (b BBox) ClampToSurface(w, h int) BBox {
	return b.Intersect(BBox{MaxX: w, MaxY: h})
}
