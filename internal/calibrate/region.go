package calibrate

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// NamedRegion returns a named part of bounds.
//
// Supported names: top-left, top-right, bottom-left, bottom-right, top-half,
// bottom-half, left-half, right-half, center (the middle 50% on each axis)
// and full.
func NamedRegion(bounds image.Rectangle, name string) (image.Rectangle, error) {
	w, h := bounds.Dx(), bounds.Dy()
	midX, midY := w/2, h/2

	var x1, y1, x2, y2 int
	switch name {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW, qH := w/4, h/4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	case "full":
		x1, y1, x2, y2 = 0, 0, w, h
	default:
		return image.Rectangle{}, fmt.Errorf("unknown region: %s", name)
	}

	return image.Rect(x1, y1, x2, y2).Add(bounds.Min), nil
}

// ParseRegion accepts either a region name or "x1,y1,x2,y2" with x2/y2
// exclusive. The result must lie inside bounds and be non-empty.
func ParseRegion(s string, bounds image.Rectangle) (image.Rectangle, error) {
	if !strings.Contains(s, ",") {
		return NamedRegion(bounds, s)
	}

	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("region %q: want x1,y1,x2,y2", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("region %q: %w", s, err)
		}
		v[i] = n
	}

	r := image.Rect(v[0], v[1], v[2], v[3])
	if v[0] >= v[2] || v[1] >= v[3] {
		return image.Rectangle{}, fmt.Errorf("invalid region %q: x1 must be < x2, y1 must be < y2", s)
	}
	if !r.In(bounds) {
		return image.Rectangle{}, fmt.Errorf("region %v outside frame bounds %v", r, bounds)
	}
	return r, nil
}
