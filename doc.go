// Package swraster implements the software rasterization core of a 2D
// vector-graphics engine: the pixel-producing stage that turns already
// prepared geometry (axis-aligned rectangles, run-length-encoded coverage
// spans, and source images) into pixels on a destination [Surface],
// honoring color, gradient fills, opacity, affine transforms, image
// scaling, and compositing against a mask or matte buffer.
//
// # Scope
//
// Path flattening, stroke expansion, affine-matrix construction beyond
// what a caller needs to invert a transform, gradient ramp authoring
// beyond premultiplied color stops, and the higher-level scene/painter
// API are external collaborators. This package consumes their outputs
// ([RleSpans], [GradientFill], [Matrix], [Image]) and writes pixels.
//
// # Entry points
//
//	dst, ok := swraster.NewSurface(swraster.DefaultOptions(400, 300))
//	ok = swraster.RasterShape(dst, shape, 255, 0, 0, 255)
//
// # Coordinate system
//
// Row-major, origin at top-left, x increasing right, y increasing down.
//
// # Error handling
//
// Every entry point returns bool. false means the call had no effect on
// the destination surface; it never panics or returns an error value.
package swraster

// Version identifies this module's release.
const Version = "0.1.0"
