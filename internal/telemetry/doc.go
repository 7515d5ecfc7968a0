// Package telemetry samples the resource usage of the current process.
//
// CPU utilisation is the process CPU time consumed between two samples
// divided by the wall time between them, as a percentage of one core; a
// process saturating two cores reads 200. Resident memory is read from the
// kernel where available and approximated from the Go runtime elsewhere.
package telemetry
