// Package colors holds the colour range table that drives classification.
//
// A Table lists the target colours (black, green and red by default) and, for
// each of them, the predicates every classification strategy needs:
//   - HSV: one or more inclusive hue/saturation/value boxes. Hue uses the
//     halved 0-180 scale so it fits in a byte; saturation and value are 0-255.
//     Multiple boxes are unioned, which is how red wraps around hue 0.
//   - RGB: one inclusive box over the raw red, green and blue channels.
//   - Dominant: the channel that must dominate the other two for chromatic
//     targets. Targets without a dominant channel are achromatic and fall back
//     to their RGB box (a low intensity range for black).
//
// # Immutability
//
// A Table is configuration. It is built once (Default or config.Load),
// validated, and then only read. Classifiers receive it explicitly on every
// call and never keep a reference between frames.
package colors
