package classify

import (
	"image"

	"github.com/ironsheep/colorbench/internal/colors"
	"github.com/ironsheep/colorbench/internal/imaging"
)

// classifyHSV converts the frame once and evaluates every HSV box against it.
func classifyHSV(frame *image.RGBA, table *colors.Table) []imaging.Mask {
	w, h := frame.Rect.Dx(), frame.Rect.Dy()

	hsv := make([]colors.HSV, w*h)
	for y := 0; y < h; y++ {
		row := frame.Pix[y*frame.Stride : y*frame.Stride+4*w]
		for x := 0; x < w; x++ {
			hsv[y*w+x] = colors.ToHSV(row[4*x], row[4*x+1], row[4*x+2])
		}
	}

	masks := make([]imaging.Mask, 0, len(table.Targets))
	for _, tg := range table.Targets {
		var m *image.Gray
		for _, b := range tg.HSV {
			part := hsvRange(hsv, frame.Rect, b)
			if m == nil {
				m = part
				continue
			}
			m = or(m, part)
		}
		if m == nil {
			m = image.NewGray(frame.Rect)
		}
		masks = append(masks, imaging.Mask{Target: tg.Name, Gray: m})
	}
	return masks
}

// hsvRange marks converted pixels inside b.
func hsvRange(hsv []colors.HSV, rect image.Rectangle, b colors.Bounds) *image.Gray {
	out := image.NewGray(rect)
	w, h := rect.Dx(), rect.Dy()
	for y := 0; y < h; y++ {
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		src := hsv[y*w : y*w+w]
		for x, p := range src {
			if b.Contains(p.H, p.S, p.V) {
				dst[x] = on
			}
		}
	}
	return out
}
