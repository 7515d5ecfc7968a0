package capture

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/ironsheep/colorbench/internal/imaging"
)

// Calibrated scene colours. Each lies inside exactly one target of the default
// colour table for every strategy; Neutral lies inside none.
var (
	Red     = color.RGBA{220, 20, 20, 255}
	Green   = color.RGBA{20, 200, 20, 255}
	Black   = color.RGBA{10, 10, 10, 255}
	Neutral = color.RGBA{128, 128, 128, 255}
)

// Scene describes one synthetic frame: a background with an optional patch.
type Scene struct {
	Background color.RGBA
	Patch      image.Rectangle
	PatchColor color.RGBA
}

// Render draws the scene into a new frame.
func (s Scene) Render(width, height int) *image.RGBA {
	frame := imaging.SolidFrame(width, height, s.Background)
	if !s.Patch.Empty() {
		imaging.FillRect(frame, s.Patch, s.PatchColor)
	}
	return frame
}

// AlternatingScenes returns a two-scene cycle: a frame filled with the
// calibrated red, then an empty neutral frame.
func AlternatingScenes() []Scene {
	return []Scene{
		{Background: Red},
		{Background: Neutral},
	}
}

// SyntheticSource cycles through a list of scenes.
//
// Frames are rendered once at construction, so Capture costs no drawing.
type SyntheticSource struct {
	mu     sync.Mutex
	frames []*image.RGBA
	next   int
	count  int

	// FailAfter, when positive, makes Capture fail once that many frames
	// have been produced. Used to exercise acquisition failures.
	FailAfter int
}

// NewSyntheticSource renders scenes at width×height. An empty list yields a
// single neutral scene.
func NewSyntheticSource(width, height int, scenes []Scene) *SyntheticSource {
	if len(scenes) == 0 {
		scenes = []Scene{{Background: Neutral}}
	}
	frames := make([]*image.RGBA, len(scenes))
	for i, s := range scenes {
		frames[i] = s.Render(width, height)
	}
	return &SyntheticSource{frames: frames}
}

// Capture returns the next scene in the cycle.
func (s *SyntheticSource) Capture(ctx context.Context) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailAfter > 0 && s.count >= s.FailAfter {
		return nil, fmt.Errorf("%w: synthetic source exhausted after %d frames", ErrCaptureFailed, s.count)
	}
	f := s.frames[s.next]
	s.next = (s.next + 1) % len(s.frames)
	s.count++
	return f, nil
}

// Count returns the number of frames captured so far.
func (s *SyntheticSource) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Close is a no-op.
func (s *SyntheticSource) Close() error {
	return nil
}
