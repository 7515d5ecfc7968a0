// Package imaging provides the frame and mask primitives shared by the pipeline.
//
// Frames are *image.RGBA buffers with an opaque alpha channel; the three
// colour channels are read in R, G, B order. A frame is never modified once
// captured: anything that draws (annotation, HUD, display composition) works on
// a CloneFrame copy.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with the origin at the
// top-left corner, X increasing rightward and Y increasing downward. Frames
// produced here always start at (0,0).
//
// # Masks
//
// A Mask pairs a target name with an *image.Gray of the frame's size holding
// 0xFF for member pixels and 0 elsewhere. Masks are produced by the classify
// package and consumed by detection; they are discarded after region
// selection.
//
// # Thread Safety
//
// FrameCache is safe for concurrent use. The remaining functions are
// stateless; concurrent calls are safe as long as they do not write to the
// same frame.
package imaging
