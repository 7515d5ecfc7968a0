// Package config loads the YAML configuration of the benchmark tool.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/colorbench/internal/bench"
	"github.com/ironsheep/colorbench/internal/classify"
	"github.com/ironsheep/colorbench/internal/colors"
)

// Config is the complete tool configuration.
type Config struct {
	Source   string         `yaml:"source"` // synthetic, dir:PATH, camera[:N]
	Frame    FrameConfig    `yaml:"frame"`
	Display  DisplayConfig  `yaml:"display"`
	Bench    BenchConfig    `yaml:"bench"`
	Colors   colors.Table   `yaml:"colors"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	HTTP     HTTPConfig     `yaml:"http"`
}

// FrameConfig is the capture size every strategy sees.
type FrameConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DisplayConfig sizes each pane of the on-screen display.
type DisplayConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Window bool `yaml:"window"` // OpenCV window instead of headless
}

// BenchConfig controls the benchmark session.
type BenchConfig struct {
	Strategies []string `yaml:"strategies"`
	Mode       string   `yaml:"mode"` // sequential, parallel
	Samples    int      `yaml:"samples"`
	MinArea    int      `yaml:"min_area"`
	StartKey   string   `yaml:"start_key"`
	QuitKey    string   `yaml:"quit_key"`
	AutoStart  bool     `yaml:"auto_start"`
}

// SnapshotConfig enables periodic saving of the displayed frame.
type SnapshotConfig struct {
	Dir      string `yaml:"dir"` // empty disables snapshots
	Format   string `yaml:"format"`
	Quality  int    `yaml:"quality"`
	Lossless bool   `yaml:"lossless"`
	Every    int    `yaml:"every"` // frames between snapshots
}

// HTTPConfig enables the report endpoint.
type HTTPConfig struct {
	Addr string `yaml:"addr"` // empty disables the server
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Source:  "synthetic",
		Frame:   FrameConfig{Width: 1280, Height: 720},
		Display: DisplayConfig{Width: 960, Height: 540},
		Bench: BenchConfig{
			Strategies: []string{"hsv", "channels"},
			Mode:       "sequential",
			Samples:    bench.DefaultSamples,
			MinArea:    1000,
			StartKey:   "s",
			QuitKey:    "q",
		},
		Colors:   colors.Default(),
		Snapshot: SnapshotConfig{Format: "png", Quality: 90, Every: 30},
	}
}

// Load reads a YAML file over the defaults and validates the result.
//
// Keys missing from the file keep their default values. A colours section,
// when present, replaces the whole default table.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate rejects impossible values and fills zero values with defaults.
func (c *Config) Validate() error {
	def := Default()

	if c.Source == "" {
		c.Source = def.Source
	}
	if c.Frame.Width < 0 || c.Frame.Height < 0 {
		return fmt.Errorf("frame size must be positive, got %dx%d", c.Frame.Width, c.Frame.Height)
	}
	if c.Frame.Width == 0 || c.Frame.Height == 0 {
		c.Frame = def.Frame
	}
	if c.Display.Width < 0 || c.Display.Height < 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.Width == 0 || c.Display.Height == 0 {
		c.Display.Width, c.Display.Height = def.Display.Width, def.Display.Height
	}

	b := &c.Bench
	if len(b.Strategies) == 0 {
		b.Strategies = def.Bench.Strategies
	}
	strategies, err := c.ParsedStrategies()
	if err != nil {
		return err
	}
	mode, err := bench.ParseMode(b.Mode)
	if err != nil {
		return err
	}
	if mode == bench.Parallel && len(strategies) != 2 {
		return fmt.Errorf("parallel mode needs exactly 2 strategies, got %d", len(strategies))
	}
	if b.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", b.Samples)
	}
	if b.Samples == 0 {
		b.Samples = def.Bench.Samples
	}
	if b.MinArea < 0 {
		return fmt.Errorf("min_area must not be negative, got %d", b.MinArea)
	}
	if b.StartKey == "" {
		b.StartKey = def.Bench.StartKey
	}
	if b.QuitKey == "" {
		b.QuitKey = def.Bench.QuitKey
	}
	if utf8.RuneCountInString(b.StartKey) != 1 || utf8.RuneCountInString(b.QuitKey) != 1 {
		return fmt.Errorf("start_key and quit_key must be single characters, got %q and %q", b.StartKey, b.QuitKey)
	}
	if b.StartKey == b.QuitKey {
		return fmt.Errorf("start_key and quit_key must differ, both are %q", b.StartKey)
	}

	if err := c.Colors.Validate(); err != nil {
		return fmt.Errorf("colors: %w", err)
	}

	if c.Snapshot.Every < 0 {
		return fmt.Errorf("snapshot.every must not be negative, got %d", c.Snapshot.Every)
	}
	if c.Snapshot.Every == 0 {
		c.Snapshot.Every = def.Snapshot.Every
	}

	return nil
}

// ParsedStrategies returns Bench.Strategies as classify strategies.
func (c *Config) ParsedStrategies() ([]classify.Strategy, error) {
	out := make([]classify.Strategy, 0, len(c.Bench.Strategies))
	for _, name := range c.Bench.Strategies {
		s, err := classify.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Keys returns the start and quit keys.
func (c *Config) Keys() (start, quit rune) {
	start, _ = utf8.DecodeRuneInString(c.Bench.StartKey)
	quit, _ = utf8.DecodeRuneInString(c.Bench.QuitKey)
	return start, quit
}
