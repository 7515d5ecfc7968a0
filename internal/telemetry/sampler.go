package telemetry

import (
	"sync"
	"time"
)

// Sampler produces CPU and memory snapshots of the current process.
type Sampler struct {
	mu       sync.Mutex
	now      func() time.Time
	cpuTime  func() time.Duration
	lastWall time.Time
	lastCPU  time.Duration
}

// NewSampler creates a sampler whose first CPU reading covers the time since
// construction.
func NewSampler() *Sampler {
	s := &Sampler{now: time.Now, cpuTime: processCPUTime}
	s.lastWall = s.now()
	s.lastCPU = s.cpuTime()
	return s
}

// SampleCPUPercent returns the process CPU utilisation since the previous
// call, in percent of one core.
func (s *Sampler) SampleCPUPercent() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	wall := s.now()
	cpu := s.cpuTime()
	dWall := wall.Sub(s.lastWall)
	dCPU := cpu - s.lastCPU
	s.lastWall, s.lastCPU = wall, cpu

	if dWall <= 0 || dCPU < 0 {
		return 0
	}
	return 100 * float64(dCPU) / float64(dWall)
}

// SampleResidentMemoryMB returns the resident set size in MiB.
func (s *Sampler) SampleResidentMemoryMB() float64 {
	return float64(residentBytes()) / (1024 * 1024)
}
