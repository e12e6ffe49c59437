package swraster

import "github.com/gogpu/swraster/internal/resample"

// Image is a read-only pixel source for RasterImage: a packed-word
// pixel grid plus the color space its words are encoded in. Unlike
// Surface, an Image carries no compositor state — it is sampled, never
// written to, by the raster core.
type Image struct {
	Pix        []byte
	Stride     int // pixels per row, may exceed Width for padded buffers
	Width      int
	Height     int
	ColorSpace ColorSpace

	// OffsetX, OffsetY shift the region of Pix that RasterImage's
	// direct blit path samples from, letting a caller reuse one
	// backing buffer for several sub-images without copying.
	OffsetX, OffsetY int
}

// NewImage allocates a zeroed Image of the given size and color space.
// It reports false ("invalid dimensions") if width or height is <= 0.
func NewImage(width, height int, cs ColorSpace) (Image, bool) {
	if width <= 0 || height <= 0 {
		return Image{}, false
	}
	return Image{
		Pix:        make([]byte, width*height*4),
		Stride:     width,
		Width:      width,
		Height:     height,
		ColorSpace: cs,
	}, true
}

// Valid reports whether img's buffer is large enough for its declared
// dimensions and stride, and its color space is recognized.
func (img Image) Valid() bool {
	if img.Width <= 0 || img.Height <= 0 || img.Stride < img.Width {
		return false
	}
	if _, ok := img.ColorSpace.order(); !ok {
		return false
	}
	return len(img.Pix) >= img.Stride*img.Height*4
}

// Bounds returns img's extent as a BBox rooted at the origin.
func (img Image) Bounds() BBox {
	return NewBBox(0, 0, img.Width, img.Height)
}

// source adapts img into the packed-word view internal/resample
// operates on.
func (img Image) source() *resample.Source {
	return &resample.Source{Pix: img.Pix, Stride: img.Stride, Width: img.Width, Height: img.Height}
}

// wordAt reads the packed word at (x, y) without bounds checking.
func (img Image) wordAt(x, y int) uint32 {
	off := (y*img.Stride + x) * 4
	p := img.Pix
	return uint32(p[off]) | uint32(p[off+1])<<8 | uint32(p[off+2])<<16 | uint32(p[off+3])<<24
}

// setWordAt writes the packed word at (x, y) without bounds checking.
func (img Image) setWordAt(x, y int, w uint32) {
	off := (y*img.Stride + x) * 4
	p := img.Pix
	p[off] = byte(w)
	p[off+1] = byte(w >> 8)
	p[off+2] = byte(w >> 16)
	p[off+3] = byte(w >> 24)
}
