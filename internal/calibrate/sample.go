package calibrate

import (
	"fmt"
	"image"
	"sort"

	"github.com/ironsheep/colorbench/internal/colors"
)

// ChannelStats summarises one channel over a region.
type ChannelStats struct {
	Min  uint8   `json:"min" yaml:"min"`
	Max  uint8   `json:"max" yaml:"max"`
	Mean float64 `json:"mean" yaml:"mean"`
}

// ColorFrequency is one quantised colour and its share of the region.
type ColorFrequency struct {
	Hex        string  `json:"hex" yaml:"hex"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Stats describes the pixels of a sampled region.
type Stats struct {
	Region image.Rectangle `json:"-" yaml:"-"`
	Pixels int             `json:"pixels" yaml:"pixels"`

	// RGB and HSV hold per-channel statistics in R,G,B and H,S,V order.
	RGB [3]ChannelStats `json:"rgb" yaml:"rgb"`
	HSV [3]ChannelStats `json:"hsv" yaml:"hsv"`

	// Hues lists every distinct hue seen, ascending; used for wrap-around.
	Hues []uint8 `json:"-" yaml:"-"`

	// Dominant holds the most frequent quantised colours, most common first.
	Dominant []ColorFrequency `json:"dominant" yaml:"dominant"`
}

// Sample computes statistics over region r of frame.
//
// Parameters:
//   - frame: The source frame.
//   - r: Region to sample; must lie inside the frame and be non-empty.
//   - dominant: Number of dominant colours to keep.
//
// # Color Quantization
//
// Dominant colours group pixels by dividing each component by 16 and
// rounding down, so colours within 16 units per component count together.
func Sample(frame *image.RGBA, r image.Rectangle, dominant int) (*Stats, error) {
	if r.Empty() || !r.In(frame.Bounds()) {
		return nil, fmt.Errorf("sample region %v outside frame bounds %v", r, frame.Bounds())
	}

	st := &Stats{Region: r, Pixels: r.Dx() * r.Dy()}
	for i := range st.RGB {
		st.RGB[i].Min, st.HSV[i].Min = 255, 255
	}

	var sumRGB, sumHSV [3]float64
	seenHue := make(map[uint8]bool)
	counts := make(map[[3]uint8]int)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := frame.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			px := frame.Pix[off : off+3 : off+3]
			off += 4

			hsv := colors.ToHSV(px[0], px[1], px[2])
			hv := [3]uint8{hsv.H, hsv.S, hsv.V}
			for c := 0; c < 3; c++ {
				accumulate(&st.RGB[c], &sumRGB[c], px[c])
				accumulate(&st.HSV[c], &sumHSV[c], hv[c])
			}
			seenHue[hsv.H] = true

			counts[[3]uint8{px[0] / 16 * 16, px[1] / 16 * 16, px[2] / 16 * 16}]++
		}
	}

	n := float64(st.Pixels)
	for c := 0; c < 3; c++ {
		st.RGB[c].Mean = sumRGB[c] / n
		st.HSV[c].Mean = sumHSV[c] / n
	}

	for h := range seenHue {
		st.Hues = append(st.Hues, h)
	}
	sort.Slice(st.Hues, func(i, j int) bool { return st.Hues[i] < st.Hues[j] })

	st.Dominant = topColors(counts, st.Pixels, dominant)
	return st, nil
}

func accumulate(cs *ChannelStats, sum *float64, v uint8) {
	if v < cs.Min {
		cs.Min = v
	}
	if v > cs.Max {
		cs.Max = v
	}
	*sum += float64(v)
}

func topColors(counts map[[3]uint8]int, total, n int) []ColorFrequency {
	type entry struct {
		rgb   [3]uint8
		count int
	}
	entries := make([]entry, 0, len(counts))
	for rgb, c := range counts {
		entries = append(entries, entry{rgb, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return colors.FormatHex(entries[i].rgb) < colors.FormatHex(entries[j].rgb)
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]ColorFrequency, len(entries))
	for i, e := range entries {
		out[i] = ColorFrequency{
			Hex:        colors.FormatHex(e.rgb),
			Percentage: float64(e.count) / float64(total) * 100,
		}
	}
	return out
}
