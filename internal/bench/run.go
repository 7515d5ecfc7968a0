package bench

import (
	"time"

	"github.com/google/uuid"

	"github.com/ironsheep/colorbench/internal/classify"
	"github.com/ironsheep/colorbench/internal/detection"
)

// Sample is the measured cost and outcome of one frame for one strategy.
type Sample struct {
	Latency    time.Duration
	Result     detection.Result
	CPUPercent float64
	MemoryMB   float64
}

// SealReason records why a run stopped collecting samples.
type SealReason string

const (
	SealComplete    SealReason = "complete"
	SealCancelled   SealReason = "cancelled"
	SealInterrupted SealReason = "interrupted"
)

// Run is the ordered sample sequence of one strategy.
//
// Start is when the start signal fired; End is when the last sample's
// classify+select step completed. End is zero for a run sealed before its
// first sample.
type Run struct {
	ID       uuid.UUID
	Strategy classify.Strategy
	Mode     Mode
	Target   int
	Samples  []Sample
	Start    time.Time
	End      time.Time
	Reason   SealReason
}

func newRun(s classify.Strategy, mode Mode, target int, start time.Time) *Run {
	return &Run{
		ID:       uuid.New(),
		Strategy: s,
		Mode:     mode,
		Target:   target,
		Samples:  make([]Sample, 0, target),
		Start:    start,
	}
}

// Len returns the number of samples collected.
func (r *Run) Len() int {
	return len(r.Samples)
}

// Duration returns End - Start.
func (r *Run) Duration() time.Duration {
	if r.End.IsZero() {
		return 0
	}
	return r.End.Sub(r.Start)
}

// Partial reports whether the run stopped before reaching Target.
func (r *Run) Partial() bool {
	return len(r.Samples) < r.Target
}
