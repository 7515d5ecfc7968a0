package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ironsheep/colorbench/internal/bench"
	"github.com/ironsheep/colorbench/internal/capture"
	"github.com/ironsheep/colorbench/internal/config"
	"github.com/ironsheep/colorbench/internal/metrics"
	"github.com/ironsheep/colorbench/internal/report"
	"github.com/ironsheep/colorbench/internal/server"
	"github.com/ironsheep/colorbench/internal/snapshot"
	"github.com/ironsheep/colorbench/internal/telemetry"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("colorbench %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		case "calibrate":
			os.Exit(runCalibrate(os.Args[2:]))
		}
	}

	os.Exit(run())
}

func usage() {
	fmt.Println("colorbench - benchmark colour classification strategies on live frames")
	fmt.Println()
	fmt.Println("Usage: colorbench [options]")
	fmt.Println("       colorbench calibrate [-source S] [-region R] [-name N]")
	fmt.Println()
	fmt.Println("Options:")
	newFlags(&options{}).PrintDefaults()
	fmt.Println()
	fmt.Println("Keys (one per line on stdin, or in the window):")
	fmt.Println("  s    start the benchmark")
	fmt.Println("  q    quit; a running benchmark is sealed and reported")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  COLORBENCH_LOG_LEVEL=debug    Enable debug logging")
}

type options struct {
	configPath  string
	source      string
	strategies  string
	mode        string
	samples     int
	minArea     int
	autoStart   bool
	window      bool
	httpAddr    string
	linger      bool
	jsonPath    string
	snapshotDir string
	debug       bool
}

func newFlags(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("colorbench", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&o.source, "source", "", "frame source: synthetic, dir:PATH or camera[:N]")
	fs.StringVar(&o.strategies, "strategies", "", "comma separated strategies: hsv, channels, dominant, pure")
	fs.StringVar(&o.mode, "mode", "", "sequential or parallel (parallel needs exactly 2 strategies)")
	fs.IntVar(&o.samples, "samples", 0, "samples per run (default 300)")
	fs.IntVar(&o.minArea, "min-area", 0, "minimum region area in pixels (default 1000)")
	fs.BoolVar(&o.autoStart, "auto-start", false, "start measuring without waiting for the start key (headless display only)")
	fs.BoolVar(&o.window, "window", false, "show frames in a window (requires a gocv build)")
	fs.StringVar(&o.httpAddr, "http", "", "serve reports on this address, e.g. 127.0.0.1:8080")
	fs.BoolVar(&o.linger, "linger", false, "keep serving reports after the benchmark until interrupted")
	fs.StringVar(&o.jsonPath, "json", "", "also write the reports as JSON to this file (- for stdout)")
	fs.StringVar(&o.snapshotDir, "snapshot-dir", "", "save every Nth displayed frame into this directory")
	fs.BoolVar(&o.debug, "debug", false, "enable debug logging")
	return fs
}

func run() int {
	var opts options
	fs := newFlags(&opts)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2
	}

	setupLogging(opts.debug)

	cfg, err := loadConfig(fs, &opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "colorbench: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Debug("colorbench: starting", "version", Version, "built", BuildTime, "commit", GitCommit)

	source, err := capture.Open(cfg.Source, cfg.Frame.Width, cfg.Frame.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "colorbench: cannot open frame source: %v\n", err)
		return 1
	}
	defer source.Close()

	display, err := openDisplay(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "colorbench: cannot open display: %v\n", err)
		return 1
	}
	defer display.Close()

	strategies, err := cfg.ParsedStrategies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "colorbench: %v\n", err)
		return 2
	}
	mode, err := bench.ParseMode(cfg.Bench.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "colorbench: %v\n", err)
		return 2
	}
	start, quit := cfg.Keys()

	h, err := bench.New(bench.Config{
		Table:         &cfg.Colors,
		Strategies:    strategies,
		Mode:          mode,
		MinArea:       cfg.Bench.MinArea,
		Samples:       cfg.Bench.Samples,
		StartKey:      capture.Key(start),
		QuitKey:       capture.Key(quit),
		DisplayWidth:  cfg.Display.Width,
		DisplayHeight: cfg.Display.Height,
	}, source, display, telemetry.NewSampler())
	if err != nil {
		fmt.Fprintf(os.Stderr, "colorbench: %v\n", err)
		return 2
	}

	var srv *server.Server
	serverDone := make(chan error, 1)
	if cfg.HTTP.Addr != "" {
		srv = server.New()
		srv.SetStateFunc(func() string { return h.State().String() })
		h.OnFrame = srv.SetLatestFrame
		go func() { serverDone <- srv.Run(ctx, cfg.HTTP.Addr) }()
	}

	if !cfg.Bench.AutoStart {
		fmt.Fprintf(os.Stderr, "Press '%c' then Enter to start, '%c' to quit.\n", start, quit)
	}

	runs, runErr := h.Run(ctx)

	reports := make([]metrics.Report, 0, len(runs))
	for _, r := range runs {
		rep := metrics.Aggregate(r)
		reports = append(reports, rep)
		if err := report.WriteText(os.Stdout, rep); err != nil {
			slog.Error("colorbench: writing report failed", "error", err)
		}
		if srv != nil {
			srv.AddReport(rep)
		}
	}
	if len(reports) > 1 {
		if err := report.WriteSummary(os.Stdout, reports); err != nil {
			slog.Error("colorbench: writing summary failed", "error", err)
		}
	}
	if opts.jsonPath != "" && len(reports) > 0 {
		if err := writeJSON(opts.jsonPath, reports); err != nil {
			slog.Error("colorbench: writing JSON failed", "path", opts.jsonPath, "error", err)
		}
	}

	if srv != nil && opts.linger {
		slog.Info("colorbench: serving reports until interrupted", "addr", cfg.HTTP.Addr)
		<-ctx.Done()
	}
	stop()
	if srv != nil {
		if err := <-serverDone; err != nil {
			slog.Error("colorbench: server failed", "error", err)
		}
	}

	if runErr != nil {
		if errors.Is(runErr, bench.ErrInterrupted) {
			fmt.Fprintf(os.Stderr, "colorbench: run interrupted: %v\n", runErr)
		} else {
			fmt.Fprintf(os.Stderr, "colorbench: %v\n", runErr)
		}
		return 1
	}
	return 0
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug || os.Getenv("COLORBENCH_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	// stdout carries the reports
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads the config file (or defaults) and applies the flags that
// were set explicitly.
func loadConfig(fs *flag.FlagSet, o *options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source = o.source
		case "strategies":
			cfg.Bench.Strategies = splitList(o.strategies)
		case "mode":
			cfg.Bench.Mode = o.mode
		case "samples":
			cfg.Bench.Samples = o.samples
		case "min-area":
			cfg.Bench.MinArea = o.minArea
		case "auto-start":
			cfg.Bench.AutoStart = o.autoStart
		case "window":
			cfg.Display.Window = o.window
		case "http":
			cfg.HTTP.Addr = o.httpAddr
		case "snapshot-dir":
			cfg.Snapshot.Dir = o.snapshotDir
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func openDisplay(cfg *config.Config) (capture.Display, error) {
	if cfg.Display.Window {
		return capture.NewWindowDisplay("colorbench")
	}

	start, _ := cfg.Keys()
	opts := capture.HeadlessOptions{
		Keys:      os.Stdin,
		AutoStart: cfg.Bench.AutoStart,
		StartKey:  capture.Key(start),
	}
	if cfg.Snapshot.Dir != "" {
		w, err := snapshot.NewWriter(cfg.Snapshot.Dir, snapshot.Options{
			Format:   cfg.Snapshot.Format,
			Quality:  cfg.Snapshot.Quality,
			Lossless: cfg.Snapshot.Lossless,
		})
		if err != nil {
			return nil, err
		}
		opts.Snapshots = w
		opts.SnapshotEvery = cfg.Snapshot.Every
		slog.Info("colorbench: writing snapshots", "dir", w.Dir(), "every", cfg.Snapshot.Every)
	}
	return capture.NewHeadlessDisplay(opts), nil
}

func writeJSON(path string, reports []metrics.Report) error {
	if path == "-" {
		return report.WriteJSON(os.Stdout, reports)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteJSON(f, reports); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
