package swraster

import "testing"

func TestColorSpaceString(t *testing.T) {
	cases := map[ColorSpace]string{
		ABGR8888:  "ABGR8888",
		ABGR8888S: "ABGR8888S",
		ARGB8888:  "ARGB8888",
		ARGB8888S: "ARGB8888S",
		ColorSpace(99): "invalid",
	}
	for cs, want := range cases {
		if got := cs.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", cs, got, want)
		}
	}
}

func TestColorSpaceStraight(t *testing.T) {
	if ABGR8888.Straight() || ARGB8888.Straight() {
		t.Error("premultiplied tags should report Straight() == false")
	}
	if !ABGR8888S.Straight() || !ARGB8888S.Straight() {
		t.Error("S-suffixed tags should report Straight() == true")
	}
}

func TestColorSpaceSwapped(t *testing.T) {
	cases := []struct{ in, want ColorSpace }{
		{ABGR8888, ARGB8888},
		{ARGB8888, ABGR8888},
		{ABGR8888S, ARGB8888S},
		{ARGB8888S, ABGR8888S},
	}
	for _, c := range cases {
		got, ok := c.in.swapped()
		if !ok || got != c.want {
			t.Errorf("%v.swapped() = (%v,%v), want (%v,true)", c.in, got, ok, c.want)
		}
	}
}

func TestConfigureBlenderRejectsUnknownSpace(t *testing.T) {
	if _, ok := configureBlender(ColorSpace(99)); ok {
		t.Error("configureBlender should reject an unrecognized colour space")
	}
}

func TestBlenderJoinSplitRoundTrip(t *testing.T) {
	bl, ok := configureBlender(ARGB8888)
	if !ok {
		t.Fatal("configureBlender(ARGB8888) returned false")
	}
	w := bl.Join(10, 20, 30, 200)
	r, g, b, a := bl.Split(w)
	if r != 10 || g != 20 || b != 30 || a != 200 {
		t.Errorf("Split(Join(10,20,30,200)) = (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestBlenderAlphaOrderIndependence(t *testing.T) {
	abgr, _ := configureBlender(ABGR8888)
	argb, _ := configureBlender(ARGB8888)
	wa := abgr.Join(1, 2, 3, 128)
	wb := argb.Join(1, 2, 3, 128)
	if abgr.Alpha(wa) != 128 || argb.Alpha(wb) != 128 {
		t.Error("Alpha() should read byte 24-31 regardless of colour space order")
	}
	if abgr.InvAlpha(wa) != 127 {
		t.Errorf("InvAlpha(128) = %d, want 127", abgr.InvAlpha(wa))
	}
}

func TestBlendWordFullCoverage(t *testing.T) {
	bl, _ := configureBlender(ABGR8888)
	src := bl.Join(10, 20, 30, 255)
	dst := bl.Join(200, 200, 200, 255)
	got := bl.blendWord(src, dst, 255)
	if got != src {
		t.Errorf("blendWord with full coverage and opaque src = %#x, want %#x (src)", got, src)
	}
}

func TestBlendWordZeroCoverage(t *testing.T) {
	bl, _ := configureBlender(ABGR8888)
	src := bl.Join(10, 20, 30, 255)
	dst := bl.Join(200, 200, 200, 255)
	got := bl.blendWord(src, dst, 0)
	if got != dst {
		t.Errorf("blendWord with zero coverage = %#x, want %#x (dst)", got, dst)
	}
}
