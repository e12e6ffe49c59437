package swraster

import "github.com/gogpu/swraster/internal/pixel"

// pixelSource yields the premultiplied source word and coverage
// (AA weight × opacity, in [0,255]) at a destination pixel. ok is
// false when (x, y) lies outside the paint's own region; the only
// caller that distinguishes this from "fully transparent" is
// IntersectMask, which must zero compositor pixels outside the
// source while everyone else simply skips them.
type pixelSource func(x, y int) (word uint32, coverage byte, ok bool)

// paint applies src over box according to s's active compositor
// state. Mode None redirects the draw into the active compositor's
// buffer when one exists (mirroring the teacher's PushLayer, which
// swaps the pixmap pointer for the duration of a layer's inner draws)
// so that content authored before SetMode is called becomes the
// buffer a later matte or mask mode reads; with no active compositor
// it blends straight into the destination. A matte mode multiplies by
// a compositor-derived alpha and writes into the destination; a mask
// mode writes into the compositor buffer and finishes with a direct
// blit. box is the region to iterate: the paint's own bounds for
// every mode except IntersectMask, which must scan its full
// compositor bounds so that out-of-region pixels can be zeroed.
func (s *Surface) paint(box BBox, src pixelSource) bool {
	mode := None
	if s.Compositor != nil {
		mode = s.Compositor.Mode
	}
	switch {
	case mode == None:
		target := s
		if s.Compositor != nil {
			target = s.Compositor.Surface
		}
		return target.paintDirect(box, src)
	case mode.IsMatte():
		return s.paintMatte(box, mode, src)
	case mode.IsMask():
		return s.paintMask(box, mode, src)
	default:
		return reject(preconditionLevel, "unsupported composite mode")
	}
}

func (s *Surface) paintDirect(box BBox, src pixelSource) bool {
	for y := box.MinY; y < box.MaxY; y++ {
		for x := box.MinX; x < box.MaxX; x++ {
			w, cov, ok := src(x, y)
			if !ok {
				continue
			}
			dst := s.wordAt(x, y)
			s.setWordAt(x, y, s.Blender.blendWord(w, dst, cov))
		}
	}
	return true
}

// matteAlphaAt extracts the per-pixel alpha a matte mode reads from
// the compositor buffer.
func matteAlphaAt(comp *Surface, mode CompositeMode, x, y int) byte {
	w := comp.wordAt(x, y)
	switch mode {
	case AlphaMask:
		return comp.Blender.Alpha(w)
	case InvAlphaMask:
		return comp.Blender.InvAlpha(w)
	case LumaMask:
		return comp.Blender.Luma(w)
	case InvLumaMask:
		return comp.Blender.InvLuma(w)
	default:
		return 255
	}
}

func (s *Surface) paintMatte(box BBox, mode CompositeMode, src pixelSource) bool {
	if s.Compositor == nil {
		return reject(preconditionLevel, "matte composite with no active compositor")
	}
	comp := s.Compositor.Surface
	for y := box.MinY; y < box.MaxY; y++ {
		for x := box.MinX; x < box.MaxX; x++ {
			w, cov, ok := src(x, y)
			if !ok {
				continue
			}
			m := matteAlphaAt(comp, mode, x, y)
			combinedCov := pixel.Scale(cov, m)
			dst := s.wordAt(x, y)
			s.setWordAt(x, y, s.Blender.blendWord(w, dst, combinedCov))
		}
	}
	return true
}

func (s *Surface) paintMask(box BBox, mode CompositeMode, src pixelSource) bool {
	if s.Compositor == nil {
		return reject(preconditionLevel, "mask composite with no active compositor")
	}
	comp := s.Compositor.Surface
	for y := box.MinY; y < box.MaxY; y++ {
		for x := box.MinX; x < box.MaxX; x++ {
			w, cov, ok := src(x, y)
			cmpOld := comp.wordAt(x, y)
			if !ok {
				if mode == IntersectMask {
					comp.setWordAt(x, y, 0)
				}
				continue
			}
			scaled := w
			if cov != 255 {
				scaled = pixel.Blend(w, cov)
			}
			comp.setWordAt(x, y, applyMaskFormula(mode, scaled, cmpOld))
		}
	}
	return s.blitCompositor(box)
}

// applyMaskFormula implements §4.4's four compositor-update formulas.
func applyMaskFormula(mode CompositeMode, src, cmp uint32) uint32 {
	switch mode {
	case AddMask:
		return pixel.SourceOver(src, cmp)
	case SubtractMask:
		return pixel.Blend(cmp, pixel.InvAlpha(src))
	case IntersectMask:
		return pixel.Blend(cmp, pixel.Alpha(src))
	case DifferenceMask:
		return pixel.Add(pixel.Blend(src, pixel.InvAlpha(cmp)), pixel.Blend(cmp, pixel.InvAlpha(src)))
	default:
		return cmp
	}
}

// blitCompositor performs the direct-image blend of the compositor
// buffer onto the destination over box, at full coverage, so that the
// destination reflects the compositor's running total after every
// mask-mode paint call (§4.4's per-call update). EndComposite's own
// blit (§4.7) is the authoritative one for the pass as a whole: it
// applies the caller's opacity, where this one always uses full
// coverage. For an opaque single-paint mask the two coincide
// bit-for-bit; a translucent compositor blitted through more than one
// paint call before EndComposite, or ended at opacity < 1, is
// re-blended on top of what this method already wrote rather than
// starting from the pre-composite destination.
func (s *Surface) blitCompositor(box BBox) bool {
	comp := s.Compositor.Surface
	for y := box.MinY; y < box.MaxY; y++ {
		for x := box.MinX; x < box.MaxX; x++ {
			src := comp.wordAt(x, y)
			dst := s.wordAt(x, y)
			s.setWordAt(x, y, s.Blender.blendWord(src, dst, 255))
		}
	}
	return true
}
