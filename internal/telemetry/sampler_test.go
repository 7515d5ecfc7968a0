package telemetry

import (
	"math"
	"testing"
	"time"
)

func TestSampler_CPUPercent(t *testing.T) {
	wall := time.Unix(1000, 0)
	cpu := time.Duration(0)

	s := &Sampler{
		now:     func() time.Time { return wall },
		cpuTime: func() time.Duration { return cpu },
	}
	s.lastWall, s.lastCPU = wall, cpu

	tests := []struct {
		name  string
		dWall time.Duration
		dCPU  time.Duration
		want  float64
	}{
		{"idle", time.Second, 0, 0},
		{"half core", time.Second, 500 * time.Millisecond, 50},
		{"two cores", 100 * time.Millisecond, 200 * time.Millisecond, 200},
		{"no wall time", 0, time.Millisecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wall = wall.Add(tt.dWall)
			cpu += tt.dCPU
			if got := s.SampleCPUPercent(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSampler_Live(t *testing.T) {
	s := NewSampler()

	// Burn a little CPU so the reading has something to measure.
	deadline := time.Now().Add(20 * time.Millisecond)
	x := 0
	for time.Now().Before(deadline) {
		x++
	}
	_ = x

	if got := s.SampleCPUPercent(); got < 0 {
		t.Errorf("CPU percent should not be negative, got %v", got)
	}
	if got := s.SampleResidentMemoryMB(); got <= 0 {
		t.Errorf("resident memory should be positive, got %v", got)
	}
}
