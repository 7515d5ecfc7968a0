package classify

import (
	"image"

	"github.com/ironsheep/colorbench/internal/colors"
	"github.com/ironsheep/colorbench/internal/imaging"
)

// classifyDominant keeps pixels whose dominant channel beats both others by
// more than the table's margin.
func classifyDominant(frame *image.RGBA, table *colors.Table) []imaging.Mask {
	masks := make([]imaging.Mask, 0, len(table.Targets))
	for _, tg := range table.Targets {
		idx, ok := tg.DominantIndex()
		if !ok {
			masks = append(masks, imaging.Mask{Target: tg.Name, Gray: rgbRange(frame, tg.RGB)})
			continue
		}
		masks = append(masks, imaging.Mask{
			Target: tg.Name,
			Gray:   dominance(frame, idx, table.DominanceMargin),
		})
	}
	return masks
}

// dominance thresholds channel[idx] - max(other two), clipped at zero.
// The difference is computed in int16 so 0-255 cannot wrap.
func dominance(frame *image.RGBA, idx, margin int) *image.Gray {
	o1, o2 := (idx+1)%3, (idx+2)%3
	m := int16(margin)

	out := image.NewGray(frame.Rect)
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	for y := 0; y < h; y++ {
		row := frame.Pix[y*frame.Stride : y*frame.Stride+4*w]
		dst := out.Pix[y*out.Stride : y*out.Stride+w]
		for x := 0; x < w; x++ {
			p := row[4*x : 4*x+3]
			other := int16(p[o1])
			if v := int16(p[o2]); v > other {
				other = v
			}
			diff := int16(p[idx]) - other
			if diff < 0 {
				diff = 0
			}
			if diff > m {
				dst[x] = on
			}
		}
	}
	return out
}
