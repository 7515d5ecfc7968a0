package annotate

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/ironsheep/colorbench/internal/imaging"
)

// hudColor is the yellow used for every HUD line.
var hudColor = color.RGBA{255, 255, 0, 255}

const (
	hudMargin     = 20
	hudLineHeight = 20
)

// HUD is the per-pane performance overlay.
type HUD struct {
	// Latency is the classify+select cost of the frame being shown.
	Latency time.Duration

	// Operations lists the primitives the strategy ran, top to bottom.
	Operations []string
}

// PotentialFPS returns how many frames per second a strategy could sustain if
// classification were the only cost. It is +Inf for a zero latency.
func PotentialFPS(latency time.Duration) float64 {
	if latency <= 0 {
		return math.Inf(1)
	}
	return float64(time.Second) / float64(latency)
}

// Lines returns the top-right HUD text.
func (h HUD) Lines() []string {
	fps := PotentialFPS(h.Latency)
	fpsText := "inf"
	if !math.IsInf(fps, 1) {
		fpsText = fmt.Sprintf("%.1f", fps)
	}
	ms := float64(h.Latency) / float64(time.Millisecond)
	return []string{
		"FPS (potential): " + fpsText,
		fmt.Sprintf("Cost: %.2f ms", ms),
	}
}

// DrawHUD draws the FPS and cost lines at the top-right corner of frame and
// the operation list at its bottom-right corner, last operation lowest.
func DrawHUD(frame *image.RGBA, h HUD) {
	b := frame.Bounds()

	top := h.Lines()
	x := b.Max.X - hudMargin - widest(top)
	for i, line := range top {
		imaging.DrawText(frame, clampX(x, b), b.Min.Y+hudMargin+imaging.GlyphHeight+i*hudLineHeight, line, hudColor)
	}

	x = b.Max.X - hudMargin - widest(h.Operations)
	y := b.Max.Y - hudMargin
	for i := len(h.Operations) - 1; i >= 0; i-- {
		imaging.DrawText(frame, clampX(x, b), y, h.Operations[i], hudColor)
		y -= hudLineHeight
	}
}

func widest(lines []string) int {
	w := 0
	for _, l := range lines {
		if tw := imaging.TextWidth(l); tw > w {
			w = tw
		}
	}
	return w
}

func clampX(x int, b image.Rectangle) int {
	if x < b.Min.X {
		return b.Min.X
	}
	return x
}
