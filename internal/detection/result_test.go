package detection

import (
	"image"
	"testing"

	"github.com/ironsheep/colorbench/internal/imaging"
)

func TestDetect(t *testing.T) {
	red := createMask(100, 100)
	fillMask(red, image.Rect(0, 0, 50, 50))
	green := createMask(100, 100)
	fillMask(green, image.Rect(0, 0, 10, 10))

	masks := []imaging.Mask{
		{Target: "black", Gray: createMask(100, 100)},
		{Target: "green", Gray: green},
		{Target: "red", Gray: red},
	}

	res := Detect(masks, 1000)
	if len(res.Detections) != 3 {
		t.Fatalf("Detections: got %d, want 3", len(res.Detections))
	}
	for i, name := range []string{"black", "green", "red"} {
		if res.Detections[i].Target != name {
			t.Errorf("detection %d: got %s, want %s", i, res.Detections[i].Target, name)
		}
	}

	if !res.Found("red") || res.Found("green") || res.Found("black") {
		t.Errorf("Found flags wrong: %+v", res.Detections)
	}
	if d, _ := res.Lookup("red"); d.Region == nil || d.Region.Area != 2500 {
		t.Errorf("red region: got %+v", d.Region)
	}
	if d, _ := res.Lookup("green"); d.Region != nil || d.Outcome != BelowMinArea {
		t.Errorf("green: got region %+v outcome %v", d.Region, d.Outcome)
	}
	if d, _ := res.Lookup("black"); d.Outcome != NoComponents {
		t.Errorf("black outcome: got %v", d.Outcome)
	}
	if !res.AnyFound() || res.Count() != 1 {
		t.Errorf("AnyFound=%v Count=%d, want true 1", res.AnyFound(), res.Count())
	}
}

func TestDetect_DegenerateMaskIsAbsence(t *testing.T) {
	res := Detect([]imaging.Mask{{Target: "red", Gray: nil}}, 0)
	d, ok := res.Lookup("red")
	if !ok || d.Found || d.Outcome != DegenerateMask {
		t.Errorf("got %+v, want not found with DegenerateMask", d)
	}
	if res.AnyFound() {
		t.Error("AnyFound should be false")
	}
}

func TestResult_LookupMissing(t *testing.T) {
	var res Result
	if _, ok := res.Lookup("red"); ok {
		t.Error("Lookup on empty result should fail")
	}
	if res.Found("red") {
		t.Error("Found on empty result should be false")
	}
}
