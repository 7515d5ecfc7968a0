package imaging

import (
	"fmt"
	"image"
	"sync"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// FrameCache provides thread-safe caching of decoded replay frames.
//
// Frames are keyed by file path and stored already converted to the
// configured frame size, so replaying a directory costs a decode only the
// first time each file is seen. The cached frame is shared; callers that
// intend to draw on it must take a CloneFrame first.
//
// # Example Usage
//
//	cache := imaging.NewFrameCache(1280, 720)
//	frame, err := cache.Load("/data/frames/0001.png")
//	if err != nil {
//	    return err
//	}
type FrameCache struct {
	mu     sync.RWMutex
	width  int
	height int
	frames map[string]*image.RGBA
}

// NewFrameCache creates an empty cache producing frames of width×height.
func NewFrameCache(width, height int) *FrameCache {
	return &FrameCache{
		width:  width,
		height: height,
		frames: make(map[string]*image.RGBA),
	}
}

// Load returns the frame for path, decoding it on first use.
//
// Parameters:
//   - path: Path to a PNG or JPEG file.
//
// Returns:
//   - *image.RGBA: The frame, resized to the cache dimensions when the file
//     has a different size.
//   - error: Non-nil if the file cannot be opened or decoded.
func (c *FrameCache) Load(path string) (*image.RGBA, error) {
	c.mu.RLock()
	if f, ok := c.frames[path]; ok {
		c.mu.RUnlock()
		return f, nil
	}
	c.mu.RUnlock()

	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame %s: %w", path, err)
	}

	frame := Fit(img, c.width, c.height)

	c.mu.Lock()
	c.frames[path] = frame
	c.mu.Unlock()

	return frame, nil
}

// Fit converts img to an opaque RGBA frame of width×height at the origin.
func Fit(img image.Image, width, height int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		img = imaging.Resize(img, width, height, imaging.Linear)
	}
	frame := clone.AsRGBA(img)
	// Frames are opaque; transparent source pixels must not leak into
	// channel thresholds.
	for i := 3; i < len(frame.Pix); i += 4 {
		frame.Pix[i] = 0xFF
	}
	if frame.Rect.Min != (image.Point{}) {
		frame.Rect = frame.Rect.Sub(frame.Rect.Min)
	}
	return frame
}

// Len returns the number of cached frames.
func (c *FrameCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.frames)
}

// Clear removes all frames from the cache.
func (c *FrameCache) Clear() {
	c.mu.Lock()
	c.frames = make(map[string]*image.RGBA)
	c.mu.Unlock()
}
