package swraster

import "github.com/gogpu/swraster/internal/pixel"

// ColorSpace tags a surface's pixel byte order and alpha convention.
type ColorSpace uint8

const (
	// ABGR8888 packs bytes [R,G,B,A] (word = A<<24|B<<16|G<<8|R),
	// premultiplied alpha.
	ABGR8888 ColorSpace = iota
	// ABGR8888S is ABGR8888 with straight (non-premultiplied) alpha.
	ABGR8888S
	// ARGB8888 packs bytes [B,G,R,A] (word = A<<24|R<<16|G<<8|B),
	// premultiplied alpha.
	ARGB8888
	// ARGB8888S is ARGB8888 with straight (non-premultiplied) alpha.
	ARGB8888S
)

// String implements fmt.Stringer.
func (cs ColorSpace) String() string {
	switch cs {
	case ABGR8888:
		return "ABGR8888"
	case ABGR8888S:
		return "ABGR8888S"
	case ARGB8888:
		return "ARGB8888"
	case ARGB8888S:
		return "ARGB8888S"
	default:
		return "invalid"
	}
}

// Straight reports whether cs uses non-premultiplied (straight) alpha.
func (cs ColorSpace) Straight() bool {
	return cs == ABGR8888S || cs == ARGB8888S
}

// order returns the byte order pixel algebra should use for cs.
func (cs ColorSpace) order() (pixel.Order, bool) {
	switch cs {
	case ABGR8888, ABGR8888S:
		return pixel.OrderRGBA, true
	case ARGB8888, ARGB8888S:
		return pixel.OrderBGRA, true
	default:
		return 0, false
	}
}

// swapped returns the colour space with the opposite byte order but the
// same alpha convention, i.e. the ABGR<->ARGB conversion §4.7 supports.
func (cs ColorSpace) swapped() (ColorSpace, bool) {
	switch cs {
	case ABGR8888:
		return ARGB8888, true
	case ARGB8888:
		return ABGR8888, true
	case ABGR8888S:
		return ARGB8888S, true
	case ARGB8888S:
		return ABGR8888S, true
	default:
		return 0, false
	}
}

// Blender bundles the byte-order-specific pixel operations for a
// surface's color space: join/split, alpha extraction, and luma
// extraction. It is installed once by configureBlender and never
// varies per pixel.
type Blender struct {
	ColorSpace ColorSpace
	order      pixel.Order
}

// Join packs (r,g,b,a) into a word using this blender's byte order.
func (bl Blender) Join(r, g, b, a byte) uint32 { return pixel.Join(bl.order, r, g, b, a) }

// Split unpacks a word into (r,g,b,a) using this blender's byte order.
func (bl Blender) Split(w uint32) (r, g, b, a byte) { return pixel.Split(bl.order, w) }

// Alpha extracts the alpha channel of w.
func (bl Blender) Alpha(w uint32) byte { return pixel.Alpha(w) }

// InvAlpha returns 255 - Alpha(w).
func (bl Blender) InvAlpha(w uint32) byte { return pixel.InvAlpha(w) }

// Luma extracts the ITU-R BT.709 luma of w.
func (bl Blender) Luma(w uint32) byte { return pixel.Luma(bl.order, w) }

// InvLuma returns 255 - Luma(w).
func (bl Blender) InvLuma(w uint32) byte { return pixel.InvLuma(bl.order, w) }

// blendWord composites src over dst at the given coverage, scaling
// src by coverage before the source-over blend. Used by the direct
// blit at the end of a mask pass and by EndComposite's opacity blit.
func (bl Blender) blendWord(src, dst uint32, coverage byte) uint32 {
	if coverage != 255 {
		src = pixel.Blend(src, coverage)
	}
	return pixel.SourceOver(src, dst)
}

// configureBlender selects join/luma/inv_luma by color space. It
// returns false ("unsupported color space") for any tag outside the
// four defined here, and no blender is installed.
func configureBlender(cs ColorSpace) (Blender, bool) {
	order, ok := cs.order()
	if !ok {
		return Blender{}, false
	}
	return Blender{ColorSpace: cs, order: order}, true
}
