package colors

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaxHue is the largest hue on the halved scale (360 degrees / 2).
const MaxHue = 180

// HSV is a pixel in byte-sized hue/saturation/value form.
//
//   - H: 0-180 (degrees halved, 0=red, 60=green, 120=blue)
//   - S: 0-255 (0=gray, 255=fully saturated)
//   - V: 0-255 (brightest channel)
type HSV struct {
	H uint8
	S uint8
	V uint8
}

// ToHSV converts an 8-bit RGB pixel to the byte HSV layout the range tables use.
//
// The conversion itself is go-colorful's; the result is rescaled from
// (0-360, 0-1, 0-1) and rounded to the nearest integer.
func ToHSV(r, g, b uint8) HSV {
	c := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
	h, s, v := c.Hsv()
	return HSV{
		H: uint8(math.Round(h / 2)),
		S: uint8(math.Round(s * 255)),
		V: uint8(math.Round(v * 255)),
	}
}
