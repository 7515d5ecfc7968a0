// Package bench drives frames through the classification pipeline and records
// one sample per frame and strategy.
//
// # State Machine
//
// A Harness starts in AwaitingStart: it pulls frames and shows them without
// measuring anything until the start key arrives. In Running it measures
// every frame until each run holds the configured number of samples or the
// quit key (or context cancellation) arrives, then moves to Sealed. A sealed
// harness cannot be run again.
//
// # Modes
//
// Sequential runs every strategy on the frame one after the other. Parallel
// runs exactly two strategies in their own goroutines and waits for both
// before fetching the next frame. In both modes each strategy works on its
// own copy of the frame, so annotation by one never reaches another.
//
// # Measurement
//
// Latency covers classification and region selection only; capture,
// telemetry, annotation and display are outside the timed section. CPU and
// memory are sampled by the driving loop right before the frame is
// dispatched and shared by every strategy's sample for that frame.
//
// # Failures
//
// A capture error while running seals the runs collected so far and returns
// them together with an error wrapping ErrInterrupted. Cancellation is not an
// error: the partial runs are returned with a nil error.
package bench
