package telemetry

import "runtime"

// runtimeBytes approximates resident memory with the memory obtained from
// the OS by the Go runtime.
func runtimeBytes() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Sys
}
