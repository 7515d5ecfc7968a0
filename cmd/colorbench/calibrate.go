package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/colorbench/internal/calibrate"
	"github.com/ironsheep/colorbench/internal/capture"
	"github.com/ironsheep/colorbench/internal/config"
)

// runCalibrate samples one frame and prints a suggested colour-table entry.
func runCalibrate(args []string) int {
	fs := flag.NewFlagSet("calibrate", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML configuration file (for source and frame size)")
	source := fs.String("source", "", "frame source: synthetic, dir:PATH or camera[:N]")
	region := fs.String("region", "center", "region name (center, top-left, ...) or x1,y1,x2,y2")
	name := fs.String("name", "target", "name of the suggested target")
	slack := fs.Int("slack", 10, "amount added around the sampled range on every channel")
	skip := fs.Int("skip", 10, "frames to discard first, to let the camera settle")
	cropPath := fs.String("crop", "", "save the sampled region to this image file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *slack < 0 || *slack > 255 {
		fmt.Fprintf(os.Stderr, "calibrate: slack must be between 0 and 255\n")
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "calibrate: %v\n", err)
			return 2
		}
		cfg = loaded
	}
	if *source != "" {
		cfg.Source = *source
	}

	src, err := capture.Open(cfg.Source, cfg.Frame.Width, cfg.Frame.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calibrate: cannot open frame source: %v\n", err)
		return 1
	}
	defer src.Close()

	ctx := context.Background()
	frame, err := src.Capture(ctx)
	for i := 0; err == nil && i < *skip; i++ {
		frame, err = src.Capture(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "calibrate: %v\n", err)
		return 1
	}

	r, err := calibrate.ParseRegion(*region, frame.Bounds())
	if err != nil {
		fmt.Fprintf(os.Stderr, "calibrate: %v\n", err)
		return 2
	}

	stats, err := calibrate.Sample(frame, r, 5)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calibrate: %v\n", err)
		return 1
	}

	if *cropPath != "" {
		if err := imaging.Save(imaging.Crop(frame, r), *cropPath); err != nil {
			fmt.Fprintf(os.Stderr, "calibrate: saving crop: %v\n", err)
			return 1
		}
	}

	fmt.Fprintf(os.Stderr, "Sampled %d pixels in %v\n", stats.Pixels, r)
	for _, c := range stats.Dominant {
		fmt.Fprintf(os.Stderr, "  %s  %5.1f%%\n", c.Hex, c.Percentage)
	}

	target := calibrate.Suggest(*name, stats, uint8(*slack))
	out, err := yaml.Marshal(map[string]interface{}{
		"colors": map[string]interface{}{"targets": []interface{}{target}},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "calibrate: %v\n", err)
		return 1
	}
	fmt.Print(string(out))
	return 0
}
