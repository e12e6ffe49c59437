package swraster

import "github.com/gogpu/swraster/internal/pixel"

// Surface is a destination pixel buffer. Colour surfaces use 4-byte
// elements (one packed word per pixel); grayscale surfaces use 1-byte
// elements and support only the non-gradient rect/RLE matte path
// (§4.5). Stride is in elements, not bytes.
type Surface struct {
	Pix           []byte
	Stride        int
	Width         int
	Height        int
	ChannelSize   int // 1 (grayscale) or 4 (colour)
	ColorSpace    ColorSpace
	Premultiplied bool
	Blender       Blender
	Compositor    *Compositor
}

// Options configures a new Surface. A zero Options is not valid;
// callers start from DefaultOptions.
type Options struct {
	Width, Height int
	ChannelSize   int
	ColorSpace    ColorSpace
	Premultiplied bool
}

// DefaultOptions returns a colour, premultiplied ABGR8888 configuration.
func DefaultOptions(width, height int) Options {
	return Options{
		Width: width, Height: height,
		ChannelSize:   4,
		ColorSpace:    ABGR8888,
		Premultiplied: true,
	}
}

// NewSurface allocates a Surface per opts. It reports false
// ("precondition failure") for non-positive dimensions, an
// unrecognized channel size, or a color space configureBlender
// rejects.
func NewSurface(opts Options) (*Surface, bool) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, reject(preconditionLevel, "null or zero-dimension surface")
	}
	if opts.ChannelSize != 1 && opts.ChannelSize != 4 {
		return nil, reject(preconditionLevel, "invalid channel size")
	}
	bl, ok := configureBlender(opts.ColorSpace)
	if !ok {
		return nil, reject(preconditionLevel, "unsupported colour space")
	}
	stride := opts.Width
	return &Surface{
		Pix:           make([]byte, stride*opts.Height*opts.ChannelSize),
		Stride:        stride,
		Width:         opts.Width,
		Height:        opts.Height,
		ChannelSize:   opts.ChannelSize,
		ColorSpace:    opts.ColorSpace,
		Premultiplied: opts.Premultiplied,
		Blender:       bl,
	}, true
}

// IsColor reports whether s stores 4-byte packed-word pixels.
func (s *Surface) IsColor() bool { return s.ChannelSize == 4 }

// bbox returns the full-surface bounding box.
func (s *Surface) bbox() BBox { return NewBBox(0, 0, s.Width, s.Height) }

func (s *Surface) wordAt(x, y int) uint32 {
	off := (y*s.Stride + x) * 4
	p := s.Pix
	return uint32(p[off]) | uint32(p[off+1])<<8 | uint32(p[off+2])<<16 | uint32(p[off+3])<<24
}

func (s *Surface) setWordAt(x, y int, w uint32) {
	off := (y*s.Stride + x) * 4
	p := s.Pix
	p[off] = byte(w)
	p[off+1] = byte(w >> 8)
	p[off+2] = byte(w >> 16)
	p[off+3] = byte(w >> 24)
}

func (s *Surface) byteAt(x, y int) byte {
	return s.Pix[y*s.Stride+x]
}

func (s *Surface) setByteAt(x, y int, v byte) {
	s.Pix[y*s.Stride+x] = v
}

// Clear zeros the rectangle [x,y,x+w,y+h) intersected with the
// surface bounds, using a single contiguous store per row (or the
// whole buffer in one store when the rectangle spans full rows).
func (s *Surface) Clear(x, y, w, h int) bool {
	box := NewBBox(x, y, w, h).ClampToSurface(s.Width, s.Height)
	if box.Empty() {
		return reject(preconditionLevel, "empty clear region")
	}
	rowBytes := box.Width() * s.ChannelSize
	if box.MinX == 0 && box.MaxX == s.Width && s.Stride == s.Width {
		start := box.MinY * s.Stride * s.ChannelSize
		end := box.MaxY * s.Stride * s.ChannelSize
		clear(s.Pix[start:end])
		return true
	}
	for row := box.MinY; row < box.MaxY; row++ {
		start := (row*s.Stride + box.MinX) * s.ChannelSize
		clear(s.Pix[start : start+rowBytes])
	}
	return true
}

// Premultiply converts every pixel from straight to premultiplied
// alpha and sets Premultiplied. It reports false if already
// premultiplied or the surface is grayscale.
func (s *Surface) Premultiply() bool {
	if !s.IsColor() {
		return reject(preconditionLevel, "premultiply on grayscale surface")
	}
	if s.Premultiplied {
		return reject(preconditionLevel, "already premultiplied")
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			w := s.wordAt(x, y)
			r, g, b, a := s.Blender.Split(w)
			r, g, b = pixel.Scale(r, a), pixel.Scale(g, a), pixel.Scale(b, a)
			s.setWordAt(x, y, s.Blender.Join(r, g, b, a))
		}
	}
	s.Premultiplied = true
	return true
}

// Unpremultiply converts every pixel from premultiplied to straight
// alpha. A fully-transparent pixel unpremultiplies to (255,255,255,0),
// §4.7's defined choice for the alpha-zero case; its previous RGB
// channels are not kept.
func (s *Surface) Unpremultiply() bool {
	if !s.IsColor() {
		return reject(preconditionLevel, "unpremultiply on grayscale surface")
	}
	if !s.Premultiplied {
		return reject(preconditionLevel, "already straight alpha")
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			w := s.wordAt(x, y)
			r, g, b, a := s.Blender.Split(w)
			if a == 0 {
				s.setWordAt(x, y, s.Blender.Join(255, 255, 255, 0))
				continue
			}
			r = byte(uint16(r) * 255 / uint16(a))
			g = byte(uint16(g) * 255 / uint16(a))
			b = byte(uint16(b) * 255 / uint16(a))
			s.setWordAt(x, y, s.Blender.Join(r, g, b, a))
		}
	}
	s.Premultiplied = false
	return true
}

// ConvertColorSpace byte-swaps every pixel between ABGR and ARGB byte
// orders, preserving the alpha convention. Any other target reports
// false ("unsupported colour space conversion").
func (s *Surface) ConvertColorSpace(target ColorSpace) bool {
	if !s.IsColor() {
		return reject(preconditionLevel, "colour space conversion on grayscale surface")
	}
	if target == s.ColorSpace {
		return true
	}
	swapped, ok := s.ColorSpace.swapped()
	if !ok || swapped != target {
		return reject(preconditionLevel, "unsupported colour space conversion")
	}
	newBlender, ok := configureBlender(target)
	if !ok {
		return reject(preconditionLevel, "unsupported colour space")
	}
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			r, g, b, a := s.Blender.Split(s.wordAt(x, y))
			s.setWordAt(x, y, newBlender.Join(r, g, b, a))
		}
	}
	s.ColorSpace = target
	s.Blender = newBlender
	return true
}
