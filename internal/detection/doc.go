// Package detection selects the largest connected region of a colour mask.
//
// For every target mask produced by the classify package the region selector
// enumerates 8-connected foreground components, keeps the one with the most
// pixels and reports its bounding box when its area exceeds a minimum. The
// same selector is used for every classification strategy so timings compare
// like with like.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//   - Region.X/Y is the inclusive top-left corner, Width/Height the box size
//
// # Absence Is Not Failure
//
// An empty mask, a component that is too small and a malformed mask buffer
// all produce a Detection with Found=false and an Outcome saying which case
// applied. Nothing in this package returns an error, so a bad mask can never
// abort a benchmark run.
//
// # Determinism
//
// Ties on area are broken by scan order (the component whose first pixel
// comes first in row-major order wins). Running the selector twice on the
// same mask yields the same Region.
package detection
