package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"
)

var (
	// ErrSourceUnavailable means the frame source could not be opened.
	ErrSourceUnavailable = errors.New("frame source unavailable")

	// ErrCaptureFailed means a frame could not be read from an open source.
	ErrCaptureFailed = errors.New("frame capture failed")
)

// FrameSource produces frames of a fixed size.
//
// Capture blocks until a frame is available. Returned frames are opaque
// *image.RGBA buffers that the caller must treat as read-only.
type FrameSource interface {
	Capture(ctx context.Context) (*image.RGBA, error)
	Close() error
}

// Key is a keyboard key reported by a Display.
type Key rune

// Display shows frames and reports key presses.
//
// Show must not block on the caller. PollKey returns the next pending key,
// if any, without waiting.
type Display interface {
	Show(img image.Image)
	PollKey() (Key, bool)
	Close() error
}

// Open creates a FrameSource from a description:
//
//   - "synthetic": the default scene cycle (red target / empty)
//   - "dir:PATH": replay the images in PATH
//   - "camera" or "camera:N": video device N (default 0)
func Open(desc string, width, height int) (FrameSource, error) {
	kind, arg, _ := strings.Cut(desc, ":")
	switch kind {
	case "synthetic", "":
		return NewSyntheticSource(width, height, AlternatingScenes()), nil
	case "dir":
		if arg == "" {
			return nil, fmt.Errorf("%w: dir source needs a path", ErrSourceUnavailable)
		}
		return NewReplaySource(arg, width, height)
	case "camera":
		device := 0
		if arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid camera device %q", ErrSourceUnavailable, arg)
			}
			device = n
		}
		return OpenCamera(device, width, height)
	}
	return nil, fmt.Errorf("%w: unknown source %q", ErrSourceUnavailable, desc)
}
