//go:build !linux

package telemetry

func residentBytes() uint64 {
	return runtimeBytes()
}
