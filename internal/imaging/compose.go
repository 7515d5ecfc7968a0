package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Pane is one titled tile of the display.
type Pane struct {
	Title string
	Image image.Image
}

// Compose scales every pane to width×height and places them left to right.
//
// The title of each pane is drawn in its top-left corner after scaling so it
// stays readable regardless of the capture resolution.
func Compose(panes []Pane, width, height int) *image.NRGBA {
	if len(panes) == 0 {
		return imaging.New(width, height, color.Black)
	}

	out := imaging.New(width*len(panes), height, color.Black)
	for i, p := range panes {
		tile := imaging.Resize(p.Image, width, height, imaging.Linear)
		if p.Title != "" {
			DrawText(tile, 20, 10+GlyphHeight, p.Title, color.RGBA{0, 255, 255, 255})
		}
		out = imaging.Paste(out, tile, image.Pt(i*width, 0))
	}
	return out
}
