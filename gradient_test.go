package swraster

import "testing"

func TestNewLinearGradientFillDegenerate(t *testing.T) {
	bl, _ := configureBlender(ABGR8888)
	_, ok := NewLinearGradientFill(5, 5, 5, 5, []ColorStop{{Offset: 0, A: 255}}, ExtendPad, bl)
	if ok {
		t.Error("NewLinearGradientFill with zero-length axis should report false")
	}
}

func TestNewRadialGradientFillDegenerate(t *testing.T) {
	bl, _ := configureBlender(ABGR8888)
	_, ok := NewRadialGradientFill(0, 0, 0, 0, 0, []ColorStop{{Offset: 0, A: 255}}, ExtendPad, bl)
	if ok {
		t.Error("NewRadialGradientFill with zero radius should report false")
	}
}

func TestLinearGradientEndpoints(t *testing.T) {
	bl, _ := configureBlender(ABGR8888)
	stops := []ColorStop{
		{Offset: 0, R: 255, A: 255},
		{Offset: 1, B: 255, A: 255},
	}
	fill, ok := NewLinearGradientFill(0, 0, 100, 0, stops, ExtendPad, bl)
	if !ok {
		t.Fatal("NewLinearGradientFill returned false")
	}
	t0 := fill.T(0, 0)
	t1 := fill.T(100, 0)
	if clampRampIndex(t0) != 0 {
		t.Errorf("T(start) index = %d, want 0", clampRampIndex(t0))
	}
	if clampRampIndex(t1) != 255 {
		t.Errorf("T(end) index = %d, want 255", clampRampIndex(t1))
	}
	r0, _, _, a0 := bl.Split(fill.Ramp[0])
	if r0 != 255 || a0 != 255 {
		t.Errorf("ramp[0] = (r=%d,a=%d), want (255,255)", r0, a0)
	}
	_, _, b255, _ := bl.Split(fill.Ramp[255])
	if b255 != 255 {
		t.Errorf("ramp[255] blue = %d, want 255", b255)
	}
}

func TestRadialGradientSimpleCenterFocus(t *testing.T) {
	bl, _ := configureBlender(ABGR8888)
	stops := []ColorStop{
		{Offset: 0, R: 255, A: 255},
		{Offset: 1, R: 0, A: 255},
	}
	fill, ok := NewRadialGradientFill(50, 50, 50, 50, 50, stops, ExtendPad, bl)
	if !ok {
		t.Fatal("NewRadialGradientFill returned false")
	}
	center := fill.T(50, 50)
	edge := fill.T(100, 50)
	if center != 0 {
		t.Errorf("T(center) = %v, want 0", center)
	}
	if edge != 1 {
		t.Errorf("T(edge) = %v, want 1", edge)
	}
}

func TestSingleStopReturnsConstantColor(t *testing.T) {
	bl, _ := configureBlender(ABGR8888)
	stops := []ColorStop{{Offset: 0.5, R: 10, G: 20, B: 30, A: 255}}
	fill, ok := NewLinearGradientFill(0, 0, 10, 0, stops, ExtendPad, bl)
	if !ok {
		t.Fatal("NewLinearGradientFill returned false")
	}
	first := fill.Ramp[0]
	for _, w := range fill.Ramp {
		if w != first {
			t.Fatal("single-stop ramp should be constant across all 256 entries")
		}
	}
}

func TestGradientReversalMirrorsDestination(t *testing.T) {
	forward := []ColorStop{{Offset: 0, R: 255, A: 255}, {Offset: 1, B: 255, A: 255}}
	reversed := []ColorStop{{Offset: 0, B: 255, A: 255}, {Offset: 1, R: 255, A: 255}}

	sFwd, _ := NewSurface(DefaultOptions(8, 1))
	fillFwd, _ := NewLinearGradientFill(0, 0, 8, 0, forward, ExtendPad, sFwd.Blender)
	if !RasterGradientShape(sFwd, RectShape(NewBBox(0, 0, 8, 1)), fillFwd) {
		t.Fatal("RasterGradientShape returned false")
	}

	sRev, _ := NewSurface(DefaultOptions(8, 1))
	fillRev, _ := NewLinearGradientFill(0, 0, 8, 0, reversed, ExtendPad, sRev.Blender)
	if !RasterGradientShape(sRev, RectShape(NewBBox(0, 0, 8, 1)), fillRev) {
		t.Fatal("RasterGradientShape returned false")
	}

	for x := 0; x < 8; x++ {
		mirrored := 7 - x
		if got, want := sFwd.wordAt(x, 0), sRev.wordAt(mirrored, 0); got != want {
			t.Errorf("wordAt(%d) = %#x, want mirrored reversed-ramp pixel wordAt(%d) = %#x", x, got, mirrored, want)
		}
	}
}

func TestTranslucentFlagReflectsRampAlpha(t *testing.T) {
	bl, _ := configureBlender(ABGR8888)
	opaqueStops := []ColorStop{{Offset: 0, A: 255}, {Offset: 1, A: 255}}
	fill, _ := NewLinearGradientFill(0, 0, 10, 0, opaqueStops, ExtendPad, bl)
	if fill.Translucent {
		t.Error("Translucent = true for a fully opaque ramp")
	}

	translucentStops := []ColorStop{{Offset: 0, A: 255}, {Offset: 1, A: 0}}
	fill2, _ := NewLinearGradientFill(0, 0, 10, 0, translucentStops, ExtendPad, bl)
	if !fill2.Translucent {
		t.Error("Translucent = false for a ramp containing a transparent stop")
	}
}
