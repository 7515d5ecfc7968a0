//go:build !gocv

package capture

import "fmt"

// OpenCamera reports ErrSourceUnavailable: this binary was built without the
// gocv tag.
func OpenCamera(device, width, height int) (FrameSource, error) {
	return nil, fmt.Errorf("%w: camera %d: built without gocv support", ErrSourceUnavailable, device)
}

// NewWindowDisplay fails without the gocv tag; use a HeadlessDisplay.
func NewWindowDisplay(name string) (Display, error) {
	return nil, fmt.Errorf("window display %q: built without gocv support", name)
}
