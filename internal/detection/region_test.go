package detection

import (
	"encoding/json"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/ironsheep/colorbench/internal/imaging"
)

// createMask creates an empty mask of the given size.
func createMask(width, height int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, width, height))
}

// fillMask sets every pixel of r.
func fillMask(m *image.Gray, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.SetGray(x, y, color.Gray{Y: 255})
		}
	}
}

func TestSelectLargestRegion_SingleBlob(t *testing.T) {
	m := createMask(100, 80)
	fillMask(m, image.Rect(10, 20, 50, 60))

	sel := SelectLargestRegion(m, 1000)
	if !sel.Found() {
		t.Fatalf("expected a region, got outcome %v", sel.Outcome)
	}
	want := Region{X: 10, Y: 20, Width: 40, Height: 40, Area: 1600}
	if sel.Region != want {
		t.Errorf("Region: got %+v, want %+v", sel.Region, want)
	}
}

func TestSelectLargestRegion_PicksLargest(t *testing.T) {
	m := createMask(200, 100)
	fillMask(m, image.Rect(0, 0, 20, 20))     // 400
	fillMask(m, image.Rect(100, 10, 150, 60)) // 2500
	fillMask(m, image.Rect(30, 70, 60, 90))   // 600

	sel := SelectLargestRegion(m, 0)
	if !sel.Found() {
		t.Fatal("expected a region")
	}
	if sel.Region.Area != 2500 || sel.Region.X != 100 || sel.Region.Y != 10 {
		t.Errorf("Region: got %+v, want the 50x50 blob at (100,10)", sel.Region)
	}
}

func TestSelectLargestRegion_EmptyMask(t *testing.T) {
	sel := SelectLargestRegion(createMask(50, 50), 0)
	if sel.Found() || sel.Outcome != NoComponents {
		t.Errorf("got %v, want NoComponents", sel.Outcome)
	}
}

func TestSelectLargestRegion_BelowMinArea(t *testing.T) {
	// A 10x10 patch is 100 px, far below the default minimum of 1000.
	m := createMask(100, 100)
	fillMask(m, image.Rect(40, 40, 50, 50))

	sel := SelectLargestRegion(m, 1000)
	if sel.Found() || sel.Outcome != BelowMinArea {
		t.Errorf("got %v, want BelowMinArea", sel.Outcome)
	}
	if sel.Region != (Region{}) {
		t.Errorf("rejected region must not be surfaced, got %+v", sel.Region)
	}
}

func TestSelectLargestRegion_AreaEqualToMinIsRejected(t *testing.T) {
	m := createMask(40, 40)
	fillMask(m, image.Rect(0, 0, 10, 10))

	if sel := SelectLargestRegion(m, 100); sel.Found() {
		t.Error("area == minArea must be rejected")
	}
	if sel := SelectLargestRegion(m, 99); !sel.Found() {
		t.Error("area > minArea must be accepted")
	}
}

func TestSelectLargestRegion_EightConnected(t *testing.T) {
	m := createMask(10, 10)
	// A diagonal line is one component under 8-connectivity.
	for i := 0; i < 10; i++ {
		m.SetGray(i, i, color.Gray{Y: 255})
	}

	sel := SelectLargestRegion(m, 0)
	want := Region{X: 0, Y: 0, Width: 10, Height: 10, Area: 10}
	if sel.Region != want {
		t.Errorf("Region: got %+v, want %+v", sel.Region, want)
	}
}

func TestSelectLargestRegion_TieBreakIsScanOrder(t *testing.T) {
	m := createMask(100, 100)
	fillMask(m, image.Rect(60, 5, 70, 15)) // first pixel at row 5
	fillMask(m, image.Rect(5, 50, 15, 60)) // first pixel at row 50

	sel := SelectLargestRegion(m, 0)
	if sel.Region.X != 60 || sel.Region.Y != 5 {
		t.Errorf("tie should go to the component found first, got %+v", sel.Region)
	}

	again := SelectLargestRegion(m, 0)
	if again != sel {
		t.Errorf("repeated selection differs: %+v vs %+v", again, sel)
	}
}

func TestSelectLargestRegion_DegenerateMask(t *testing.T) {
	tests := []struct {
		name string
		mask *image.Gray
	}{
		{"nil", nil},
		{"empty bounds", &image.Gray{}},
		{"short buffer", &image.Gray{Pix: make([]uint8, 5), Stride: 10, Rect: image.Rect(0, 0, 10, 10)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := SelectLargestRegion(tt.mask, 0)
			if sel.Found() || sel.Outcome != DegenerateMask {
				t.Errorf("got %v, want DegenerateMask", sel.Outcome)
			}
		})
	}
}

func TestSelectLargestRegion_OffsetBounds(t *testing.T) {
	m := image.NewGray(image.Rect(100, 200, 150, 250))
	fillMask(m, image.Rect(110, 210, 130, 230))

	sel := SelectLargestRegion(m, 0)
	if sel.Region.X != 110 || sel.Region.Y != 210 {
		t.Errorf("Region should be in mask coordinates, got %+v", sel.Region)
	}
}

func TestSelectLargestRegion_AreaAlwaysAboveMin(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		m := createMask(40, 30)
		for i := range m.Pix {
			if rng.Intn(3) == 0 {
				m.Pix[i] = 255
			}
		}
		minArea := rng.Intn(60)

		sel := SelectLargestRegion(m, minArea)
		if sel.Found() && sel.Region.Area <= minArea {
			t.Fatalf("trial %d: area %d not above minArea %d", trial, sel.Region.Area, minArea)
		}
		if sel.Found() && sel.Region.Area > sel.Region.Width*sel.Region.Height {
			t.Fatalf("trial %d: area %d exceeds box %dx%d", trial, sel.Region.Area, sel.Region.Width, sel.Region.Height)
		}
		if again := SelectLargestRegion(m, minArea); again != sel {
			t.Fatalf("trial %d: selection not reproducible", trial)
		}
	}
}

func TestSelectLargestRegion_FullFrame(t *testing.T) {
	m := createMask(64, 48)
	fillMask(m, m.Bounds())

	sel := SelectLargestRegion(m, 1000)
	if !sel.Found() || sel.Region.Area != 64*48 {
		t.Errorf("full mask: got %+v (%v)", sel.Region, sel.Outcome)
	}
	if imaging.CountSet(m) != sel.Region.Area {
		t.Errorf("area %d should equal set pixels %d", sel.Region.Area, imaging.CountSet(m))
	}
}

func TestOutcome_JSON(t *testing.T) {
	b, err := json.Marshal(BelowMinArea)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `"below_min_area"` {
		t.Errorf("got %s", b)
	}
	if Outcome(42).String() != "unknown" {
		t.Errorf("unknown outcome: got %s", Outcome(42).String())
	}
}

func TestRegion_Rect(t *testing.T) {
	r := Region{X: 3, Y: 4, Width: 10, Height: 5}
	if r.Rect() != image.Rect(3, 4, 13, 9) {
		t.Errorf("Rect: got %v", r.Rect())
	}
}
