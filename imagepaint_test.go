package swraster

import "testing"

func fillImage(w, h int, cs ColorSpace, word uint32) Image {
	img, _ := NewImage(w, h, cs)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.setWordAt(x, y, word)
		}
	}
	return img
}

func TestRasterImageDirectCopiesPixels(t *testing.T) {
	s, _ := NewSurface(DefaultOptions(4, 4))
	img := fillImage(4, 4, ABGR8888, 0xFF0000FF)
	if !RasterImage(s, img, nil, Identity(), NewBBox(0, 0, 4, 4), 1.0) {
		t.Fatal("RasterImage returned false")
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := s.wordAt(x, y); got != 0xFF0000FF {
				t.Fatalf("wordAt(%d,%d) = %#x, want 0xFF0000FF", x, y, got)
			}
		}
	}
}

func TestRasterImageDirectSkipsOutOfBoundsSource(t *testing.T) {
	s, _ := NewSurface(DefaultOptions(4, 4))
	s.setWordAt(0, 0, 0xAABBCCDD)
	img := fillImage(2, 2, ABGR8888, 0xFF0000FF)
	// translate the source so its origin lands off the destination
	m := Translate(10, 10)
	RasterImage(s, img, nil, m, NewBBox(0, 0, 4, 4), 1.0)
	if got := s.wordAt(0, 0); got != 0xAABBCCDD {
		t.Errorf("wordAt(0,0) = %#x, want unchanged 0xAABBCCDD (source out of bounds)", got)
	}
}

func TestRasterImageRejectsGrayscale(t *testing.T) {
	opts := DefaultOptions(4, 4)
	opts.ChannelSize = 1
	s, _ := NewSurface(opts)
	img := fillImage(4, 4, ABGR8888, 0xFFFFFFFF)
	if RasterImage(s, img, nil, Identity(), NewBBox(0, 0, 4, 4), 1.0) {
		t.Error("RasterImage should reject a grayscale destination surface")
	}
}

func TestRasterImageRejectsBBoxOutsideSurface(t *testing.T) {
	s, _ := NewSurface(DefaultOptions(4, 4))
	img := fillImage(2, 2, ABGR8888, 0xFFFFFFFF)
	if RasterImage(s, img, nil, Identity(), NewBBox(100, 100, 4, 4), 1.0) {
		t.Error("RasterImage should reject a bbox entirely outside the surface")
	}
}

func TestRasterImageDownscaleUniformImage(t *testing.T) {
	s, _ := NewSurface(DefaultOptions(32, 32))
	img := fillImage(256, 256, ABGR8888, 0x80808080)
	m := Scale(0.125, 0.125)
	if !RasterImage(s, img, nil, m, NewBBox(0, 0, 32, 32), 1.0) {
		t.Fatal("RasterImage returned false")
	}
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if got := s.wordAt(x, y); got != 0x80808080 {
				t.Fatalf("wordAt(%d,%d) = %#x, want 0x80808080", x, y, got)
			}
		}
	}
}

func TestRasterImageMeshWarpsHalvesIndependently(t *testing.T) {
	s, _ := NewSurface(DefaultOptions(4, 4))
	img, _ := NewImage(2, 1, ABGR8888)
	img.setWordAt(0, 0, 0xFF0000FF) // left half red
	img.setWordAt(1, 0, 0xFF00FF00) // right half green

	mesh := Mesh{
		{{ImageX: 0, ImageY: 0, DestX: 0, DestY: 0}, {ImageX: 1, ImageY: 0, DestX: 2, DestY: 0}, {ImageX: 1, ImageY: 1, DestX: 2, DestY: 4}},
		{{ImageX: 0, ImageY: 0, DestX: 0, DestY: 0}, {ImageX: 1, ImageY: 1, DestX: 2, DestY: 4}, {ImageX: 0, ImageY: 1, DestX: 0, DestY: 4}},
		{{ImageX: 1, ImageY: 0, DestX: 2, DestY: 0}, {ImageX: 2, ImageY: 0, DestX: 4, DestY: 0}, {ImageX: 2, ImageY: 1, DestX: 4, DestY: 4}},
		{{ImageX: 1, ImageY: 0, DestX: 2, DestY: 0}, {ImageX: 2, ImageY: 1, DestX: 4, DestY: 4}, {ImageX: 1, ImageY: 1, DestX: 2, DestY: 4}},
	}

	if !RasterImage(s, img, mesh, Identity(), NewBBox(0, 0, 4, 4), 1.0) {
		t.Fatal("RasterImage returned false")
	}
	r0, g0, _, _ := s.Blender.Split(s.wordAt(0, 0))
	if r0 <= g0 {
		t.Errorf("wordAt(0,0) red=%d green=%d, want red-dominant (near the left triangle's red source)", r0, g0)
	}
	if got := s.wordAt(3, 0); got != 0xFF00FF00 {
		t.Errorf("wordAt(3,0) = %#x, want the right mesh triangle's pure green source", got)
	}
}

func TestRasterImageEmptyMeshFallsBackToDefaultQuad(t *testing.T) {
	s, _ := NewSurface(DefaultOptions(4, 4))
	img := fillImage(4, 4, ABGR8888, 0xFF0000FF)
	if !RasterImage(s, img, Mesh{}, Rotate(0.5), NewBBox(0, 0, 4, 4), 1.0) {
		t.Fatal("RasterImage returned false")
	}
}

func TestClassifyBlitPaths(t *testing.T) {
	identity, _ := Identity().Invert()
	if got := classifyBlit(identity); got != pathDirect {
		t.Errorf("classifyBlit(identity) = %v, want pathDirect", got)
	}
	scaled, _ := Scale(2, 2).Invert()
	if got := classifyBlit(scaled); got != pathScaled {
		t.Errorf("classifyBlit(scale) = %v, want pathScaled", got)
	}
	rotated, _ := Rotate(0.5).Invert()
	if got := classifyBlit(rotated); got != pathTransformed {
		t.Errorf("classifyBlit(rotation) = %v, want pathTransformed", got)
	}
}
