//go:build gocv

package capture

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"gocv.io/x/gocv"

	"github.com/ironsheep/colorbench/internal/imaging"
)

// CameraSource reads frames from a video device through OpenCV.
type CameraSource struct {
	mu     sync.Mutex
	cam    *gocv.VideoCapture
	mat    gocv.Mat
	width  int
	height int
}

// OpenCamera opens a video device and requests width×height.
//
// The device may pick another resolution; frames are resized to the
// requested size so every strategy sees the configured dimensions.
// Returns an error wrapping ErrSourceUnavailable when the device cannot be
// opened or does not deliver a first frame.
func OpenCamera(device, width, height int) (FrameSource, error) {
	cam, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("%w: camera %d: %v", ErrSourceUnavailable, device, err)
	}
	cam.Set(gocv.VideoCaptureFrameWidth, float64(width))
	cam.Set(gocv.VideoCaptureFrameHeight, float64(height))
	cam.Set(gocv.VideoCaptureBufferSize, 1)

	mat := gocv.NewMat()
	if ok := cam.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		cam.Close()
		return nil, fmt.Errorf("%w: camera %d delivered no frame", ErrSourceUnavailable, device)
	}

	slog.Info("capture: camera opened",
		"device", device,
		"requested", fmt.Sprintf("%dx%d", width, height),
		"actual", fmt.Sprintf("%dx%d", mat.Cols(), mat.Rows()))

	return &CameraSource{cam: cam, mat: mat, width: width, height: height}, nil
}

// Capture reads the next frame from the device.
func (c *CameraSource) Capture(ctx context.Context) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ok := c.cam.Read(&c.mat); !ok || c.mat.Empty() {
		return nil, fmt.Errorf("%w: camera read returned no frame", ErrCaptureFailed)
	}
	if c.mat.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("%w: unexpected mat type %v", ErrCaptureFailed, c.mat.Type())
	}

	img, err := c.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	return imaging.Fit(img, c.width, c.height), nil
}

// Close releases the device.
func (c *CameraSource) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mat.Close()
	return c.cam.Close()
}

// WindowDisplay shows frames in an OpenCV window.
type WindowDisplay struct {
	win *gocv.Window
	mat gocv.Mat
}

// NewWindowDisplay opens a window titled name.
func NewWindowDisplay(name string) (Display, error) {
	return &WindowDisplay{win: gocv.NewWindow(name), mat: gocv.NewMat()}, nil
}

// Show draws img in the window.
func (w *WindowDisplay) Show(img image.Image) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		slog.Warn("capture: cannot convert frame for display", "error", err)
		return
	}
	w.mat.Close()
	w.mat = mat
	w.win.IMShow(w.mat)
}

// PollKey waits one millisecond for a key, which also lets the window
// repaint.
func (w *WindowDisplay) PollKey() (Key, bool) {
	k := w.win.WaitKey(1)
	if k < 0 {
		return 0, false
	}
	return Key(k & 0xFF), true
}

// Close closes the window.
func (w *WindowDisplay) Close() error {
	w.mat.Close()
	return w.win.Close()
}
