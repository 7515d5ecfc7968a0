package detection

import (
	"github.com/ironsheep/colorbench/internal/imaging"
)

// Detection is the per-target part of a Result.
type Detection struct {
	// Target is the colour name.
	Target string `json:"target"`

	// Found is true when a valid region exists.
	Found bool `json:"found"`

	// Region is nil unless Found.
	Region *Region `json:"region,omitempty"`

	// Outcome records why a region was or was not reported.
	Outcome Outcome `json:"outcome"`
}

// Result holds one Detection per target, in the order the masks were given.
type Result struct {
	Detections []Detection `json:"detections"`
}

// Detect runs SelectLargestRegion on every mask.
func Detect(masks []imaging.Mask, minArea int) Result {
	res := Result{Detections: make([]Detection, 0, len(masks))}
	for _, m := range masks {
		sel := SelectLargestRegion(m.Gray, minArea)
		d := Detection{Target: m.Target, Found: sel.Found(), Outcome: sel.Outcome}
		if sel.Found() {
			region := sel.Region
			d.Region = &region
		}
		res.Detections = append(res.Detections, d)
	}
	return res
}

// Lookup returns the detection for a target.
func (r Result) Lookup(target string) (Detection, bool) {
	for _, d := range r.Detections {
		if d.Target == target {
			return d, true
		}
	}
	return Detection{}, false
}

// Found reports whether target was detected.
func (r Result) Found(target string) bool {
	d, ok := r.Lookup(target)
	return ok && d.Found
}

// AnyFound reports whether at least one target was detected.
func (r Result) AnyFound() bool {
	for _, d := range r.Detections {
		if d.Found {
			return true
		}
	}
	return false
}

// Count returns the number of detected targets.
func (r Result) Count() int {
	n := 0
	for _, d := range r.Detections {
		if d.Found {
			n++
		}
	}
	return n
}
