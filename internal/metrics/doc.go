// Package metrics reduces a sealed benchmark run to summary statistics.
//
// Throughput is samples divided by the wall time from the start signal to
// the completion of the last sample, so capture and display overhead count
// against it. Latency statistics use the per-sample classify+select times
// only; the standard deviation is the population form. Detection rates are
// percentages of the samples in the run.
package metrics
