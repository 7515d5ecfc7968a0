//go:build linux

package telemetry

import (
	"bytes"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// residentBytes reads the resident page count from /proc/self/statm.
func residentBytes() uint64 {
	data, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return runtimeBytes()
	}
	fields := bytes.Fields(data)
	if len(fields) < 2 {
		return runtimeBytes()
	}
	pages, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return runtimeBytes()
	}
	return pages * uint64(unix.Getpagesize())
}
