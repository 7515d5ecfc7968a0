package calibrate

import (
	"math"

	"github.com/ironsheep/colorbench/internal/colors"
)

// achromaticSaturation is the mean saturation below which a sample is
// treated as black/gray rather than a hue.
const achromaticSaturation = 60

// wrapGap is the minimum hue gap that splits a sample into two boxes.
const wrapGap = colors.MaxHue / 2

// Suggest proposes a colour-table entry covering the sampled region.
//
// Every bound is widened by slack on both sides and clamped to the channel
// range. A sample whose mean saturation is low becomes an achromatic target
// with no dominant channel; otherwise the channel with the highest mean is
// dominant.
func Suggest(name string, st *Stats, slack uint8) colors.Target {
	mean := [3]uint8{
		round(st.RGB[0].Mean),
		round(st.RGB[1].Mean),
		round(st.RGB[2].Mean),
	}

	t := colors.Target{
		Name:    name,
		Display: colors.FormatHex(mean),
		RGB:     widen(st.RGB, slack, 255),
	}

	sv := widen(st.HSV, slack, 255)
	achromatic := st.HSV[1].Mean < achromaticSaturation

	ranges := hueRanges(st.Hues)
	if achromatic {
		// hue is meaningless without saturation
		ranges = [][2]uint8{{0, colors.MaxHue}}
	}
	for _, hr := range ranges {
		lo := sub(hr[0], slack, 0)
		hi := add(hr[1], slack, colors.MaxHue)
		t.HSV = append(t.HSV, colors.Bounds{
			Min: [3]uint8{lo, sv.Min[1], sv.Min[2]},
			Max: [3]uint8{hi, sv.Max[1], sv.Max[2]},
		})
	}

	if !achromatic {
		t.Dominant = dominantChannel(st)
	}
	return t
}

// hueRanges groups sorted hues into one range, or two when the largest gap
// between neighbours is wide enough that the sample straddles hue 0.
func hueRanges(hues []uint8) [][2]uint8 {
	if len(hues) == 0 {
		return [][2]uint8{{0, colors.MaxHue}}
	}

	gapAt, gap := -1, 0
	for i := 1; i < len(hues); i++ {
		if d := int(hues[i]) - int(hues[i-1]); d > gap {
			gap, gapAt = d, i
		}
	}

	first, last := hues[0], hues[len(hues)-1]
	if gap < wrapGap {
		return [][2]uint8{{first, last}}
	}
	return [][2]uint8{
		{0, hues[gapAt-1]},
		{hues[gapAt], colors.MaxHue},
	}
}

func dominantChannel(st *Stats) string {
	names := [3]string{colors.ChannelRed, colors.ChannelGreen, colors.ChannelBlue}
	best := 0
	for c := 1; c < 3; c++ {
		if st.RGB[c].Mean > st.RGB[best].Mean {
			best = c
		}
	}
	return names[best]
}

func widen(cs [3]ChannelStats, slack, limit uint8) colors.Bounds {
	var b colors.Bounds
	for c := 0; c < 3; c++ {
		b.Min[c] = sub(cs[c].Min, slack, 0)
		b.Max[c] = add(cs[c].Max, slack, limit)
	}
	return b
}

func sub(v, d, floor uint8) uint8 {
	if int(v)-int(d) < int(floor) {
		return floor
	}
	return v - d
}

func add(v, d, ceil uint8) uint8 {
	if int(v)+int(d) > int(ceil) {
		return ceil
	}
	return v + d
}

func round(f float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(f))))
}
