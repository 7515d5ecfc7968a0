package classify

import (
	"image"

	"github.com/ironsheep/colorbench/internal/colors"
)

const on = 0xFF

// split copies the requested raw channels of frame (0=R, 1=G, 2=B) into
// planes in a single pass. Planes not requested are nil.
func split(frame *image.RGBA, want [3]bool) [3]*image.Gray {
	var planes [3]*image.Gray
	for i := range planes {
		if want[i] {
			planes[i] = image.NewGray(frame.Rect)
		}
	}

	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	for y := 0; y < h; y++ {
		row := frame.Pix[y*frame.Stride : y*frame.Stride+4*w]
		for i, p := range planes {
			if p == nil {
				continue
			}
			dst := p.Pix[y*p.Stride : y*p.Stride+w]
			for x := range dst {
				dst[x] = row[4*x+i]
			}
		}
	}
	return planes
}

// inRange marks pixels of g with lo <= v <= hi.
func inRange(g *image.Gray, lo, hi uint8) *image.Gray {
	out := image.NewGray(g.Rect)
	w, h := g.Rect.Dx(), g.Rect.Dy()
	for y := 0; y < h; y++ {
		src := g.Pix[y*g.Stride : y*g.Stride+w]
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x, v := range src {
			if v >= lo && v <= hi {
				dst[x] = on
			}
		}
	}
	return out
}

// above marks pixels of g strictly greater than level.
func above(g *image.Gray, level uint8) *image.Gray {
	out := image.NewGray(g.Rect)
	w, h := g.Rect.Dx(), g.Rect.Dy()
	for y := 0; y < h; y++ {
		src := g.Pix[y*g.Stride : y*g.Stride+w]
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x, v := range src {
			if v > level {
				dst[x] = on
			}
		}
	}
	return out
}

// and intersects b into a and returns a.
func and(a, b *image.Gray) *image.Gray {
	for i := range a.Pix {
		a.Pix[i] &= b.Pix[i]
	}
	return a
}

// or unions b into a and returns a.
func or(a, b *image.Gray) *image.Gray {
	for i := range a.Pix {
		a.Pix[i] |= b.Pix[i]
	}
	return a
}

// rgbRange marks frame pixels whose raw channels all fall inside b.
func rgbRange(frame *image.RGBA, b colors.Bounds) *image.Gray {
	out := image.NewGray(frame.Rect)
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	for y := 0; y < h; y++ {
		row := frame.Pix[y*frame.Stride : y*frame.Stride+4*w]
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x := 0; x < w; x++ {
			p := row[4*x : 4*x+3]
			if b.Contains(p[0], p[1], p[2]) {
				dst[x] = on
			}
		}
	}
	return out
}
