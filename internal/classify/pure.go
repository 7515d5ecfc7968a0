package classify

import (
	"image"

	"github.com/ironsheep/colorbench/internal/colors"
	"github.com/ironsheep/colorbench/internal/imaging"
)

// classifyPure thresholds the dominant channel alone against the purity level.
// Each dominant channel is split out once, however many targets share it.
func classifyPure(frame *image.RGBA, table *colors.Table) []imaging.Mask {
	planes := split(frame, dominantPlanes(table))

	masks := make([]imaging.Mask, 0, len(table.Targets))
	for _, tg := range table.Targets {
		idx, ok := tg.DominantIndex()
		if !ok {
			masks = append(masks, imaging.Mask{Target: tg.Name, Gray: rgbRange(frame, tg.RGB)})
			continue
		}
		masks = append(masks, imaging.Mask{
			Target: tg.Name,
			Gray:   above(planes[idx], table.PurityLevel),
		})
	}
	return masks
}

// dominantPlanes reports which channels are dominant for some target.
func dominantPlanes(table *colors.Table) [3]bool {
	var want [3]bool
	for _, tg := range table.Targets {
		if idx, ok := tg.DominantIndex(); ok {
			want[idx] = true
		}
	}
	return want
}
