package annotate

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ironsheep/colorbench/internal/colors"
	"github.com/ironsheep/colorbench/internal/detection"
	"github.com/ironsheep/colorbench/internal/imaging"
)

const (
	// BoxThickness is the width of the bounding box outline in pixels.
	BoxThickness = 3

	// LabelOffset is the gap between a label's baseline and the box top.
	LabelOffset = 10
)

// Annotate draws the box and label of every detected target onto frame.
//
// Targets without a valid region are skipped. Box and label use the target's
// display colour from table; a detection whose target is missing from the
// table is drawn in gray with its name as label.
func Annotate(frame *image.RGBA, res detection.Result, table *colors.Table) {
	for _, d := range res.Detections {
		if !d.Found || d.Region == nil {
			continue
		}

		label := d.Target
		col := color.RGBA{128, 128, 128, 255}
		if tg, ok := table.Lookup(d.Target); ok {
			col = tg.DisplayColor()
			if tg.Label != "" {
				label = tg.Label
			}
		}

		r := d.Region.Rect()
		DrawBox(frame, r, BoxThickness, col)
		x, y := LabelOrigin(frame.Bounds(), r, label)
		imaging.DrawText(frame, x, y, label, col)
	}
}

// DrawBox draws the outline of r, thickness pixels wide, inside r.
// Parts outside the frame are clipped.
func DrawBox(img draw.Image, r image.Rectangle, thickness int, c color.Color) {
	src := image.NewUniform(c)
	b := img.Bounds()
	for t := 0; t < thickness; t++ {
		in := r.Inset(t)
		if in.Empty() {
			break
		}
		edges := []image.Rectangle{
			image.Rect(in.Min.X, in.Min.Y, in.Max.X, in.Min.Y+1),
			image.Rect(in.Min.X, in.Max.Y-1, in.Max.X, in.Max.Y),
			image.Rect(in.Min.X, in.Min.Y, in.Min.X+1, in.Max.Y),
			image.Rect(in.Max.X-1, in.Min.Y, in.Max.X, in.Max.Y),
		}
		for _, e := range edges {
			draw.Draw(img, e.Intersect(b), src, image.Point{}, draw.Src)
		}
	}
}

// LabelOrigin returns the baseline origin for a box label.
//
// The label sits LabelOffset pixels above the box's top-left corner. When that
// would leave the frame it is clamped so the whole text stays visible.
func LabelOrigin(frame, box image.Rectangle, label string) (x, y int) {
	x = box.Min.X
	y = box.Min.Y - LabelOffset

	if maxX := frame.Max.X - imaging.TextWidth(label); x > maxX {
		x = maxX
	}
	if x < frame.Min.X {
		x = frame.Min.X
	}
	if minY := frame.Min.Y + imaging.GlyphHeight; y < minY {
		y = minY
	}
	if y > frame.Max.Y {
		y = frame.Max.Y
	}
	return x, y
}
