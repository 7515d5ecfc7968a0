package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// ErrMalformedFrame is returned when a frame or mask buffer does not match
// its declared dimensions.
var ErrMalformedFrame = errors.New("malformed frame buffer")

// Mask is a binary membership image for one target colour.
//
// Pixels are 0xFF where the frame pixel satisfies the target's predicate and
// 0 elsewhere. Masks have the same bounds as the frame that produced them.
type Mask struct {
	Target string
	Gray   *image.Gray
}

// NewFrame allocates an opaque black frame of the given size.
func NewFrame(width, height int) *image.RGBA {
	return SolidFrame(width, height, color.RGBA{0, 0, 0, 255})
}

// SolidFrame creates a frame filled with a single colour.
func SolidFrame(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// FillRect paints r (clipped to the frame) with c.
func FillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// CloneFrame returns an independent copy of src.
//
// Copies never share pixel memory, so annotating one cannot change what a
// classifier reads from another.
func CloneFrame(src *image.RGBA) *image.RGBA {
	dst := &image.RGBA{
		Pix:    make([]uint8, len(src.Pix)),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
	copy(dst.Pix, src.Pix)
	return dst
}

// CheckFrame verifies that the pixel buffer covers the frame bounds.
//
// Returns an error wrapping ErrMalformedFrame for nil or empty frames, a
// stride shorter than a row, or a buffer shorter than Stride*height.
func CheckFrame(img *image.RGBA) error {
	if img == nil {
		return fmt.Errorf("%w: nil frame", ErrMalformedFrame)
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: empty bounds %v", ErrMalformedFrame, img.Rect)
	}
	if img.Stride < 4*w {
		return fmt.Errorf("%w: stride %d shorter than row of %d pixels", ErrMalformedFrame, img.Stride, w)
	}
	if len(img.Pix) < img.Stride*(h-1)+4*w {
		return fmt.Errorf("%w: %d bytes for %dx%d frame", ErrMalformedFrame, len(img.Pix), w, h)
	}
	return nil
}

// CheckMask verifies a mask buffer the same way CheckFrame does for frames.
func CheckMask(m *image.Gray) error {
	if m == nil {
		return fmt.Errorf("%w: nil mask", ErrMalformedFrame)
	}
	w, h := m.Rect.Dx(), m.Rect.Dy()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: empty mask bounds %v", ErrMalformedFrame, m.Rect)
	}
	if m.Stride < w || len(m.Pix) < m.Stride*(h-1)+w {
		return fmt.Errorf("%w: mask buffer does not cover %dx%d", ErrMalformedFrame, w, h)
	}
	return nil
}

// CountSet returns the number of non-zero pixels in a mask.
func CountSet(m *image.Gray) int {
	n := 0
	w, h := m.Rect.Dx(), m.Rect.Dy()
	for y := 0; y < h; y++ {
		row := m.Pix[y*m.Stride : y*m.Stride+w]
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
