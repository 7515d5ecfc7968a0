package classify

import (
	"image"

	"github.com/ironsheep/colorbench/internal/colors"
	"github.com/ironsheep/colorbench/internal/imaging"
)

// classifyChannels splits the frame once, then ANDs three per-channel range
// masks for each target.
func classifyChannels(frame *image.RGBA, table *colors.Table) []imaging.Mask {
	planes := split(frame, [3]bool{true, true, true})

	masks := make([]imaging.Mask, 0, len(table.Targets))
	for _, tg := range table.Targets {
		r := inRange(planes[0], tg.RGB.Min[0], tg.RGB.Max[0])
		g := inRange(planes[1], tg.RGB.Min[1], tg.RGB.Max[1])
		b := inRange(planes[2], tg.RGB.Min[2], tg.RGB.Max[2])
		masks = append(masks, imaging.Mask{Target: tg.Name, Gray: and(r, and(g, b))})
	}
	return masks
}
