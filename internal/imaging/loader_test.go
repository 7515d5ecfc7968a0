package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// createTestImageFile writes a solid PNG and returns its path.
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := SolidFrame(width, height, c)

	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestFrameCache_Load(t *testing.T) {
	path := createTestImageFile(t, 64, 48, color.RGBA{220, 20, 20, 255})
	cache := NewFrameCache(64, 48)

	frame, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if frame.Bounds() != image.Rect(0, 0, 64, 48) {
		t.Errorf("Bounds: got %v, want 64x48", frame.Bounds())
	}
	if got := frame.RGBAAt(10, 10); got != (color.RGBA{220, 20, 20, 255}) {
		t.Errorf("pixel: got %v, want (220,20,20,255)", got)
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}
}

func TestFrameCache_LoadResizes(t *testing.T) {
	path := createTestImageFile(t, 100, 100, color.RGBA{0, 200, 0, 255})
	cache := NewFrameCache(40, 30)

	frame, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if frame.Bounds().Dx() != 40 || frame.Bounds().Dy() != 30 {
		t.Errorf("size: got %dx%d, want 40x30", frame.Bounds().Dx(), frame.Bounds().Dy())
	}
	if err := CheckFrame(frame); err != nil {
		t.Errorf("resized frame should be well formed: %v", err)
	}
}

func TestFrameCache_ReturnsCachedFrame(t *testing.T) {
	path := createTestImageFile(t, 16, 16, color.White)
	cache := NewFrameCache(16, 16)

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Removing the file proves the second load never touches the disk.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove file: %v", err)
	}

	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	if first != second {
		t.Error("expected the cached frame to be returned")
	}
}

func TestFrameCache_MissingFile(t *testing.T) {
	cache := NewFrameCache(16, 16)
	if _, err := cache.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestFrameCache_Clear(t *testing.T) {
	path := createTestImageFile(t, 8, 8, color.Black)
	cache := NewFrameCache(8, 8)
	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", cache.Len())
	}
}

func TestFrameCache_ConcurrentLoad(t *testing.T) {
	path := createTestImageFile(t, 32, 32, color.RGBA{10, 10, 10, 255})
	cache := NewFrameCache(32, 32)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(path); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load failed: %v", err)
	}
}

func TestFit_OpaqueAtOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 30, 20))
	for i := range src.Pix {
		src.Pix[i] = 0x40 // alpha 0x40 too
	}

	f := Fit(src, 20, 10)
	if f.Bounds() != image.Rect(0, 0, 20, 10) {
		t.Errorf("bounds: got %v, want origin-based 20x10", f.Bounds())
	}
	for i := 3; i < len(f.Pix); i += 4 {
		if f.Pix[i] != 0xFF {
			t.Fatalf("alpha at byte %d: got %d, want 255", i, f.Pix[i])
		}
	}
}
