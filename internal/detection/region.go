package detection

import (
	"image"

	"github.com/ironsheep/colorbench/internal/imaging"
)

// Region is the bounding box and pixel area of one connected component.
//
// (X, Y) is the top-left corner (inclusive); the box spans Width×Height
// pixels. Area is the number of foreground pixels in the component, which is
// at most Width×Height.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Area   int `json:"area"`
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Outcome explains what SelectLargestRegion concluded about a mask.
type Outcome int

const (
	// Found means a component larger than the minimum area exists.
	Found Outcome = iota

	// NoComponents means the mask had no foreground pixels.
	NoComponents

	// BelowMinArea means the largest component did not exceed the minimum area.
	BelowMinArea

	// DegenerateMask means the mask buffer was nil, empty or inconsistent.
	// It is reported like any other absence, never as a pipeline failure.
	DegenerateMask
)

var outcomeNames = [...]string{
	Found:          "found",
	NoComponents:   "no_components",
	BelowMinArea:   "below_min_area",
	DegenerateMask: "degenerate_mask",
}

func (o Outcome) String() string {
	if o >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Selection is the result of SelectLargestRegion. Region is only meaningful
// when Outcome is Found.
type Selection struct {
	Outcome Outcome
	Region  Region
}

// Found reports whether a valid region was selected.
func (s Selection) Found() bool {
	return s.Outcome == Found
}

// SelectLargestRegion finds the largest 8-connected foreground component of a
// mask and returns its bounding box.
//
// Parameters:
//   - mask: Binary mask; any non-zero pixel is foreground.
//   - minArea: Components must have strictly more pixels than this.
//
// Returns a Selection whose Outcome is Found only when the largest component's
// area exceeds minArea. Absence of a region is an ordinary outcome: an empty
// mask yields NoComponents, a too-small component BelowMinArea and a broken
// buffer DegenerateMask. The function never panics on malformed input.
//
// # Algorithm
//
//  1. Scan the mask in row-major order.
//  2. From every unvisited foreground pixel, flood-fill its component with an
//     explicit stack, counting pixels and growing the bounding box.
//  3. Keep the component with the largest pixel count. On equal counts the
//     component reached first in the scan wins, so identical masks always
//     give identical regions.
//  4. Reject the winner if its area does not exceed minArea.
func SelectLargestRegion(mask *image.Gray, minArea int) Selection {
	if err := imaging.CheckMask(mask); err != nil {
		return Selection{Outcome: DegenerateMask}
	}

	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	visited := make([]bool, w*h)
	stack := make([]int, 0, 256)

	var best Region
	found := false

	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, v := range row {
			if v == 0 || visited[y*w+x] {
				continue
			}
			var r Region
			r, stack = fillComponent(mask, visited, x, y, w, h, stack)
			if !found || r.Area > best.Area {
				best = r
				found = true
			}
		}
	}

	if !found {
		return Selection{Outcome: NoComponents}
	}
	if best.Area <= minArea {
		return Selection{Outcome: BelowMinArea}
	}

	best.X += mask.Rect.Min.X
	best.Y += mask.Rect.Min.Y
	return Selection{Outcome: Found, Region: best}
}

// fillComponent performs an iterative 8-connected flood fill from (sx, sy).
//
// Pixels are marked visited when pushed so each is counted once. The stack
// slice is returned for reuse by the next component.
func fillComponent(mask *image.Gray, visited []bool, sx, sy, w, h int, stack []int) (Region, []int) {
	minX, minY := sx, sy
	maxX, maxY := sx, sy
	area := 0

	stack = append(stack[:0], sy*w+sx)
	visited[sy*w+sx] = true

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x, y := i%w, i/w
		area++
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}

		for dy := -1; dy <= 1; dy++ {
			ny := y + dy
			if ny < 0 || ny >= h {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				nx := x + dx
				if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
					continue
				}
				ni := ny*w + nx
				if visited[ni] || mask.Pix[ny*mask.Stride+nx] == 0 {
					continue
				}
				visited[ni] = true
				stack = append(stack, ni)
			}
		}
	}

	return Region{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
		Area:   area,
	}, stack
}
