package metrics

import (
	"math"
	"time"

	"github.com/ironsheep/colorbench/internal/bench"
)

// Latency summarises per-sample latency in milliseconds.
type Latency struct {
	MeanMS   float64 `json:"mean_ms"`
	StdDevMS float64 `json:"stddev_ms"`
	MinMS    float64 `json:"min_ms"`
	MaxMS    float64 `json:"max_ms"`
}

// Usage summarises a resource reading across samples.
type Usage struct {
	Mean float64 `json:"mean"`
	Max  float64 `json:"max"`
}

// ColorRate is the detection rate of one target.
type ColorRate struct {
	Target  string  `json:"target"`
	Percent float64 `json:"percent"`
	Frames  int     `json:"frames"`
}

// Report is the aggregate of one run.
type Report struct {
	RunID    string `json:"run_id"`
	Strategy string `json:"strategy"`
	Title    string `json:"title"`
	Mode     string `json:"mode"`
	Reason   string `json:"reason"`

	// NoData is set when the run holds no samples; every statistic is zero.
	NoData bool `json:"no_data"`

	Frames       int     `json:"frames"`
	Target       int     `json:"target"`
	TotalSeconds float64 `json:"total_seconds"`
	RealFPS      float64 `json:"real_fps"`

	Latency  Latency `json:"latency"`
	CPU      Usage   `json:"cpu_percent"`
	MemoryMB Usage   `json:"memory_mb"`

	// OverallPercent counts samples where at least one target was found.
	OverallPercent float64     `json:"overall_percent"`
	PerColor       []ColorRate `json:"per_color"`
}

// Rate returns the detection percentage of target.
func (r Report) Rate(target string) (float64, bool) {
	for _, c := range r.PerColor {
		if c.Target == target {
			return c.Percent, true
		}
	}
	return 0, false
}

// Aggregate computes the report of a run.
//
// An empty run yields a report with NoData set instead of dividing by zero.
// Per-colour rates are listed in the order targets first appear in the
// samples.
func Aggregate(run *bench.Run) Report {
	r := Report{
		RunID:    run.ID.String(),
		Strategy: run.Strategy.String(),
		Title:    run.Strategy.Title(),
		Mode:     run.Mode.String(),
		Reason:   string(run.Reason),
		Target:   run.Target,
		Frames:   len(run.Samples),
	}
	if len(run.Samples) == 0 {
		r.NoData = true
		return r
	}

	n := float64(len(run.Samples))

	if d := run.Duration(); d > 0 {
		r.TotalSeconds = d.Seconds()
		r.RealFPS = n / r.TotalSeconds
	}

	latencies := make([]float64, len(run.Samples))
	cpu := make([]float64, len(run.Samples))
	mem := make([]float64, len(run.Samples))

	var order []string
	found := make(map[string]int)
	anyFound := 0

	for i, s := range run.Samples {
		latencies[i] = float64(s.Latency) / float64(time.Millisecond)
		cpu[i] = s.CPUPercent
		mem[i] = s.MemoryMB

		for _, d := range s.Result.Detections {
			if _, seen := found[d.Target]; !seen {
				found[d.Target] = 0
				order = append(order, d.Target)
			}
			if d.Found {
				found[d.Target]++
			}
		}
		if s.Result.AnyFound() {
			anyFound++
		}
	}

	r.Latency = summarize(latencies)
	r.CPU = usage(cpu)
	r.MemoryMB = usage(mem)

	r.OverallPercent = 100 * float64(anyFound) / n
	r.PerColor = make([]ColorRate, len(order))
	for i, name := range order {
		r.PerColor[i] = ColorRate{
			Target:  name,
			Frames:  found[name],
			Percent: 100 * float64(found[name]) / n,
		}
	}

	return r
}

// summarize computes mean, population standard deviation, min and max.
func summarize(values []float64) Latency {
	l := Latency{MinMS: math.Inf(1), MaxMS: math.Inf(-1)}
	sum := 0.0
	for _, v := range values {
		sum += v
		l.MinMS = math.Min(l.MinMS, v)
		l.MaxMS = math.Max(l.MaxMS, v)
	}
	l.MeanMS = sum / float64(len(values))

	sq := 0.0
	for _, v := range values {
		d := v - l.MeanMS
		sq += d * d
	}
	l.StdDevMS = math.Sqrt(sq / float64(len(values)))
	return l
}

func usage(values []float64) Usage {
	u := Usage{Max: math.Inf(-1)}
	sum := 0.0
	for _, v := range values {
		sum += v
		u.Max = math.Max(u.Max, v)
	}
	u.Mean = sum / float64(len(values))
	return u
}
