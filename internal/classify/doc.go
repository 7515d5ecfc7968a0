// Package classify turns a frame into one binary mask per target colour.
//
// Four interchangeable strategies trade robustness for cost:
//
//  1. HSVRange: convert the frame once to hue/saturation/value and test each
//     target's HSV boxes, unioning the masks of targets with several boxes.
//  2. ChannelConjunction: split the raw channels, threshold each against the
//     target's RGB box and AND the three channel masks together.
//  3. DominantDifference: for chromatic targets compute
//     channel - max(other two), clipped at zero, and keep pixels whose
//     difference exceeds the dominance margin. Achromatic targets use their
//     RGB box as a low intensity range.
//  4. PureChannel: keep pixels whose dominant channel alone exceeds the
//     purity level. Cheapest, and the most sensitive to lighting.
//
// Strategies run on the calling goroutine and walk the frame directly. The
// channel strategies split each plane they need once per call, so every
// strategy pays only for its own operations when timed.
//
// Every strategy is a pure function of (frame, table). Nothing is cached
// between calls, so the same frame always yields the same masks.
//
// # Errors
//
// A malformed frame (nil, empty, or a pixel buffer that does not cover its
// bounds) or an empty table is reported as an error. Callers treat it as
// fatal; it is never turned into "no detection".
package classify
