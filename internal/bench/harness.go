package bench

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ironsheep/colorbench/internal/annotate"
	"github.com/ironsheep/colorbench/internal/capture"
	"github.com/ironsheep/colorbench/internal/classify"
	"github.com/ironsheep/colorbench/internal/colors"
	"github.com/ironsheep/colorbench/internal/detection"
	"github.com/ironsheep/colorbench/internal/imaging"
)

// DefaultSamples is the run length used when Config.Samples is zero.
const DefaultSamples = 300

var (
	// ErrInterrupted means frame acquisition failed while runs were in
	// progress. The runs collected so far are returned alongside it.
	ErrInterrupted = errors.New("benchmark run interrupted")

	// ErrAlreadyRun is returned when Run is called on a sealed harness.
	ErrAlreadyRun = errors.New("harness already sealed")
)

// Telemetry samples the resources of the current process.
type Telemetry interface {
	SampleCPUPercent() float64
	SampleResidentMemoryMB() float64
}

// Config describes one benchmark session.
type Config struct {
	Table      *colors.Table
	Strategies []classify.Strategy
	Mode       Mode
	MinArea    int
	Samples    int

	StartKey capture.Key
	QuitKey  capture.Key

	// DisplayWidth and DisplayHeight size each pane of the composed display.
	DisplayWidth  int
	DisplayHeight int
}

// Harness runs the benchmark state machine.
type Harness struct {
	cfg       Config
	source    capture.FrameSource
	display   capture.Display
	telemetry Telemetry
	ops       [][]string

	state atomic.Int32

	// Now stamps run start and sample completion. Latency is always
	// measured with the monotonic clock.
	Now func() time.Time

	// OnFrame, when set, receives every composed display image.
	OnFrame func(img image.Image)
}

// New validates cfg and creates a harness in AwaitingStart.
//
// Parallel mode needs exactly two strategies; sequential mode at least one.
func New(cfg Config, source capture.FrameSource, display capture.Display, tel Telemetry) (*Harness, error) {
	if cfg.Table == nil || len(cfg.Table.Targets) == 0 {
		return nil, errors.New("bench: colour table is empty")
	}
	if source == nil {
		return nil, errors.New("bench: no frame source")
	}
	if display == nil {
		return nil, errors.New("bench: no display")
	}
	if tel == nil {
		return nil, errors.New("bench: no telemetry")
	}
	if len(cfg.Strategies) == 0 {
		return nil, errors.New("bench: no strategies selected")
	}
	for _, s := range cfg.Strategies {
		if !s.Valid() {
			return nil, fmt.Errorf("bench: invalid strategy %v", s)
		}
	}
	if cfg.Mode == Parallel && len(cfg.Strategies) != 2 {
		return nil, fmt.Errorf("bench: parallel mode runs exactly 2 strategies, got %d", len(cfg.Strategies))
	}
	if cfg.MinArea < 0 {
		return nil, fmt.Errorf("bench: negative minimum area %d", cfg.MinArea)
	}
	if cfg.Samples < 0 {
		return nil, fmt.Errorf("bench: negative sample count %d", cfg.Samples)
	}
	if cfg.Samples == 0 {
		cfg.Samples = DefaultSamples
	}

	ops := make([][]string, len(cfg.Strategies))
	for i, s := range cfg.Strategies {
		ops[i] = s.Operations(cfg.Table)
	}

	return &Harness{
		cfg:       cfg,
		source:    source,
		display:   display,
		telemetry: tel,
		ops:       ops,
		Now:       time.Now,
	}, nil
}

// State returns the current lifecycle state. Safe for concurrent use.
func (h *Harness) State() State {
	return State(h.state.Load())
}

// Run executes the session and returns one Run per strategy, in the order
// the strategies were configured.
//
// Run returns no runs and a nil error when the quit key or cancellation
// arrives before the start key. Classification errors are returned as is,
// with the runs collected so far.
func (h *Harness) Run(ctx context.Context) ([]*Run, error) {
	if h.State() == Sealed {
		return nil, ErrAlreadyRun
	}
	defer h.state.Store(int32(Sealed))

	started, err := h.awaitStart(ctx)
	if err != nil || !started {
		return nil, err
	}
	return h.measure(ctx)
}

// awaitStart shows frames until the start key. It reports false when the
// session ended before starting.
func (h *Harness) awaitStart(ctx context.Context) (bool, error) {
	slog.Info("bench: awaiting start",
		"start_key", string(h.cfg.StartKey),
		"quit_key", string(h.cfg.QuitKey),
		"mode", h.cfg.Mode.String())

	for {
		if ctx.Err() != nil {
			slog.Info("bench: cancelled before start")
			return false, nil
		}

		frame, err := h.source.Capture(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return false, nil
			}
			return false, fmt.Errorf("%w: %w", ErrInterrupted, err)
		}

		panes := make([]imaging.Pane, len(h.cfg.Strategies))
		for i, s := range h.cfg.Strategies {
			panes[i] = imaging.Pane{Title: paneTitle(i, s), Image: frame}
		}
		h.show(panes)

		if k, ok := h.display.PollKey(); ok {
			switch k {
			case h.cfg.StartKey:
				return true, nil
			case h.cfg.QuitKey:
				slog.Info("bench: quit before start")
				return false, nil
			}
		}
	}
}

// lane is the outcome of one strategy on one frame.
type lane struct {
	latency   time.Duration
	result    detection.Result
	annotated *image.RGBA
	done      time.Time
	err       error
}

func (h *Harness) measure(ctx context.Context) ([]*Run, error) {
	h.state.Store(int32(Running))

	start := h.Now()
	runs := make([]*Run, len(h.cfg.Strategies))
	for i, s := range h.cfg.Strategies {
		runs[i] = newRun(s, h.cfg.Mode, h.cfg.Samples, start)
	}

	slog.Info("bench: running",
		"strategies", len(runs),
		"samples", h.cfg.Samples,
		"mode", h.cfg.Mode.String())

	seal := func(reason SealReason) {
		for _, r := range runs {
			r.Reason = reason
			slog.Info("bench: run sealed",
				"run", r.ID.String(),
				"strategy", r.Strategy.String(),
				"samples", len(r.Samples),
				"reason", string(reason))
		}
	}

	for n := 0; n < h.cfg.Samples; n++ {
		if h.cancelled(ctx) {
			seal(SealCancelled)
			return runs, nil
		}

		frame, err := h.source.Capture(ctx)
		if err != nil {
			if ctx.Err() != nil {
				seal(SealCancelled)
				return runs, nil
			}
			seal(SealInterrupted)
			return runs, fmt.Errorf("%w after %d frames: %w", ErrInterrupted, n, err)
		}

		cpu := h.telemetry.SampleCPUPercent()
		mem := h.telemetry.SampleResidentMemoryMB()

		copies := make([]*image.RGBA, len(runs))
		for i := range copies {
			copies[i] = imaging.CloneFrame(frame)
		}

		panes, err := record(runs, h.dispatch(copies), cpu, mem)
		if err != nil {
			seal(SealInterrupted)
			return runs, err
		}
		h.show(panes)

		slog.Debug("bench: frame processed", "frame", n, "cpu", cpu, "mem_mb", mem)
	}

	seal(SealComplete)
	return runs, nil
}

// record appends one sample per lane to the matching run. If any lane failed
// nothing is appended, so every run keeps the same length.
func record(runs []*Run, lanes []lane, cpu, mem float64) ([]imaging.Pane, error) {
	for i, l := range lanes {
		if l.err != nil {
			return nil, fmt.Errorf("bench: %s: %w", runs[i].Strategy, l.err)
		}
	}

	panes := make([]imaging.Pane, len(runs))
	for i, l := range lanes {
		runs[i].Samples = append(runs[i].Samples, Sample{
			Latency:    l.latency,
			Result:     l.result,
			CPUPercent: cpu,
			MemoryMB:   mem,
		})
		runs[i].End = l.done
		panes[i] = imaging.Pane{Title: paneTitle(i, runs[i].Strategy), Image: l.annotated}
	}
	return panes, nil
}

// cancelled polls the quit key and the context once per frame.
func (h *Harness) cancelled(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	k, ok := h.display.PollKey()
	return ok && k == h.cfg.QuitKey
}

// dispatch runs every strategy on its own frame copy.
func (h *Harness) dispatch(frames []*image.RGBA) []lane {
	out := make([]lane, len(frames))

	if h.cfg.Mode == Parallel {
		var wg sync.WaitGroup
		for i := range frames {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				out[i] = h.process(i, frames[i])
			}(i)
		}
		wg.Wait()
		return out
	}

	for i := range frames {
		out[i] = h.process(i, frames[i])
	}
	return out
}

// process classifies one frame copy, then annotates it outside the timed
// section.
func (h *Harness) process(i int, frame *image.RGBA) lane {
	s := h.cfg.Strategies[i]

	t0 := time.Now()
	masks, err := classify.Classify(s, frame, h.cfg.Table)
	if err != nil {
		return lane{err: err}
	}
	res := detection.Detect(masks, h.cfg.MinArea)
	latency := time.Since(t0)
	done := h.Now()

	annotate.Annotate(frame, res, h.cfg.Table)
	annotate.DrawHUD(frame, annotate.HUD{Latency: latency, Operations: h.ops[i]})

	return lane{latency: latency, result: res, annotated: frame, done: done}
}

func (h *Harness) show(panes []imaging.Pane) {
	w, hgt := h.cfg.DisplayWidth, h.cfg.DisplayHeight
	if w <= 0 || hgt <= 0 {
		b := panes[0].Image.Bounds()
		w, hgt = b.Dx(), b.Dy()
	}
	img := imaging.Compose(panes, w, hgt)
	h.display.Show(img)
	if h.OnFrame != nil {
		h.OnFrame(img)
	}
}

func paneTitle(i int, s classify.Strategy) string {
	return fmt.Sprintf("METHOD %d: %s", i+1, s.Title())
}
