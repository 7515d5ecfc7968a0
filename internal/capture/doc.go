// Package capture holds the collaborators the benchmark harness talks to but
// does not own the logic of: frame sources and display sinks.
//
// # Frame Sources
//
//   - SyntheticSource renders a fixed cycle of scenes. It needs no hardware
//     and is fully deterministic, which makes it the source used in tests.
//   - ReplaySource plays a directory of PNG/JPEG files in lexical order,
//     looping at the end.
//   - CameraSource reads a video device through OpenCV. It is only available
//     when built with the gocv tag.
//
// Open picks one from a short description ("synthetic", "dir:/path",
// "camera:0").
//
// # Display Sinks
//
//   - HeadlessDisplay keeps the latest frame in memory, reads keys from an
//     io.Reader (normally stdin) and can write periodic snapshots.
//   - WindowDisplay shows frames in an OpenCV window (gocv tag only).
//
// # Errors
//
// A source that cannot be opened returns an error wrapping
// ErrSourceUnavailable; this is fatal before any run starts. A Capture call
// that fails mid-run returns an error wrapping ErrCaptureFailed.
package capture
