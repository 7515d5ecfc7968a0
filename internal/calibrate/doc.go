// Package calibrate measures the colours inside a region of a frame and
// proposes colour-table entries from them.
//
// Range tables tuned for one camera rarely survive another camera or another
// room. The usual workflow is to hold the target in front of the camera,
// sample the region it occupies, and paste the suggested entry into the
// configuration file:
//
//	frame, _ := source.Capture(ctx)
//	r, _ := calibrate.ParseRegion("center", frame.Bounds())
//	stats, _ := calibrate.Sample(frame, r, 5)
//	target := calibrate.Suggest("red", stats, 10)
//
// # Hue Wrap-Around
//
// Hue is circular. When the sampled hues sit on both sides of 0 (as they do
// for red) Suggest emits two HSV boxes, one ending at 0 and one at MaxHue,
// instead of a single box spanning the whole wheel.
package calibrate
