package swraster

// CompositeMode selects how a rasterizer combines source pixels with
// the compositor buffer instead of writing straight to the
// destination. None means no compositing is active. ClipPath is
// resolved by the geometry stage before the core ever sees a shape,
// so no rasterizer branch implements it directly.
type CompositeMode int

const (
	None CompositeMode = iota
	ClipPath
	AlphaMask
	InvAlphaMask
	LumaMask
	InvLumaMask
	AddMask
	SubtractMask
	IntersectMask
	DifferenceMask
)

// IsMatte reports whether mode reads the compositor buffer as a
// per-pixel mask multiplied against the source (§4.4).
func (m CompositeMode) IsMatte() bool {
	switch m {
	case AlphaMask, InvAlphaMask, LumaMask, InvLumaMask:
		return true
	default:
		return false
	}
}

// IsMask reports whether mode writes into the compositor buffer
// instead of the destination, to be blitted back on EndComposite.
func (m CompositeMode) IsMask() bool {
	switch m {
	case AddMask, SubtractMask, IntersectMask, DifferenceMask:
		return true
	default:
		return false
	}
}

// Compositor is the inner surface a composite context renders into.
// It always has channel size 4 regardless of the parent surface's
// grayscale/colour split, since matte and mask math both need a full
// premultiplied word per pixel.
type Compositor struct {
	Surface *Surface
	Mode    CompositeMode
	Bounds  BBox
}

// CompositeContext is one LIFO frame of nested off-screen rendering.
// BeginComposite pushes a frame that redirects the surface's active
// compositor; EndComposite pops it, blitting the compositor buffer
// back onto the surface that was active when the frame was pushed.
type CompositeContext struct {
	parent     *Surface
	prevComp   *Compositor
	compositor *Compositor
}

// BeginComposite allocates a compositor-sized buffer, clears it, and
// installs it as s's active compositor for the duration of the
// returned context. It reports (nil, false) for a bbox outside the
// surface or a surface colour space that has no blender.
func (s *Surface) BeginComposite(x, y, w, h int) (*CompositeContext, bool) {
	box := NewBBox(x, y, w, h).ClampToSurface(s.Width, s.Height)
	if box.Empty() {
		return nil, reject(preconditionLevel, "composite bbox outside surface")
	}
	bl, ok := configureBlender(s.ColorSpace)
	if !ok {
		return nil, reject(preconditionLevel, "unsupported colour space")
	}
	compSurf := &Surface{
		Pix:           compositorPool.get(s.Width, s.Height),
		Stride:        s.Width,
		Width:         s.Width,
		Height:        s.Height,
		ChannelSize:   4,
		ColorSpace:    s.ColorSpace,
		Premultiplied: true,
		Blender:       bl,
	}
	ctx := &CompositeContext{
		parent:   s,
		prevComp: s.Compositor,
		compositor: &Compositor{
			Surface: compSurf,
			Mode:    None,
			Bounds:  box,
		},
	}
	s.Compositor = ctx.compositor
	return ctx, true
}

// SetMode sets the composite mode for the active compositor pass.
func (ctx *CompositeContext) SetMode(mode CompositeMode) {
	ctx.compositor.Mode = mode
}

// EndComposite blits the compositor buffer back onto the surface that
// was active when ctx was created, scaled by opacity, then restores
// that surface's previous compositor (possibly nil), popping this
// LIFO frame. It reports false if ctx was already ended.
//
// This is the authoritative blit for the composite pass (§4.7); a
// mask mode's own per-call blit (paintMask, via blitCompositor) has
// already written the compositor's running total to the destination
// at full coverage, so this blend is redundant, not additive, only
// when opacity is 1 and the compositor content is opaque.
func (ctx *CompositeContext) EndComposite(opacity float64) bool {
	if ctx.compositor == nil {
		return reject(preconditionLevel, "composite context already ended")
	}
	s := ctx.parent
	comp := ctx.compositor.Surface
	box := ctx.compositor.Bounds
	cov := byte(clamp01(opacity) * 255)

	for py := box.MinY; py < box.MaxY; py++ {
		for px := box.MinX; px < box.MaxX; px++ {
			src := comp.wordAt(px, py)
			if s.IsColor() {
				dst := s.wordAt(px, py)
				s.setWordAt(px, py, s.Blender.blendWord(src, dst, cov))
			}
		}
	}

	compositorPool.put(comp.Width, comp.Height, comp.Pix)
	s.Compositor = ctx.prevComp
	ctx.compositor = nil
	return true
}
