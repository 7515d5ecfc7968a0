package colors

import (
	"image/color"
	"strings"
	"testing"
)

func TestToHSV_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    HSV
	}{
		{"pure red", 255, 0, 0, HSV{0, 255, 255}},
		{"pure green", 0, 255, 0, HSV{60, 255, 255}},
		{"pure blue", 0, 0, 255, HSV{120, 255, 255}},
		{"white", 255, 255, 255, HSV{0, 0, 255}},
		{"black", 0, 0, 0, HSV{0, 0, 0}},
		{"gray", 128, 128, 128, HSV{0, 0, 128}},
		{"dark red", 220, 20, 20, HSV{0, 232, 220}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHSV(tt.r, tt.g, tt.b)
			if got != tt.want {
				t.Errorf("ToHSV(%d,%d,%d): got %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestToHSV_RedWrapsAround(t *testing.T) {
	// A red with a touch of blue sits just below 360 degrees.
	got := ToHSV(255, 0, 10)
	if got.H < 170 || got.H > MaxHue {
		t.Errorf("H: got %d, want within [170,%d]", got.H, MaxHue)
	}

	table := Default()
	red, _ := table.Lookup("red")
	matched := false
	for _, b := range red.HSV {
		if b.Contains(got.H, got.S, got.V) {
			matched = true
		}
	}
	if !matched {
		t.Errorf("wrapped red %+v not matched by any red hsv range", got)
	}
}

func TestBounds_Contains(t *testing.T) {
	b := Bounds{Min: [3]uint8{10, 20, 30}, Max: [3]uint8{40, 50, 60}}

	tests := []struct {
		name       string
		c0, c1, c2 uint8
		want       bool
	}{
		{"inside", 20, 30, 40, true},
		{"lower edge inclusive", 10, 20, 30, true},
		{"upper edge inclusive", 40, 50, 60, true},
		{"first channel below", 9, 30, 40, false},
		{"second channel above", 20, 51, 40, false},
		{"third channel above", 20, 30, 61, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.c0, tt.c1, tt.c2); got != tt.want {
				t.Errorf("Contains(%d,%d,%d): got %v, want %v", tt.c0, tt.c1, tt.c2, got, tt.want)
			}
		})
	}
}

func TestDefault_Validates(t *testing.T) {
	table := Default()
	if err := table.Validate(); err != nil {
		t.Fatalf("Default table should validate: %v", err)
	}

	names := table.Names()
	want := []string{"black", "green", "red"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Names: got %v, want %v", names, want)
	}
}

func TestTable_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Table)
		wantErr string
	}{
		{"no targets", func(tb *Table) { tb.Targets = nil }, "no targets"},
		{"negative margin", func(tb *Table) { tb.DominanceMargin = -1 }, "dominance_margin"},
		{"empty name", func(tb *Table) { tb.Targets[0].Name = "" }, "name is required"},
		{"duplicate name", func(tb *Table) { tb.Targets[1].Name = "black" }, "defined twice"},
		{"bad display", func(tb *Table) { tb.Targets[0].Display = "#12" }, "display colour"},
		{"no hsv", func(tb *Table) { tb.Targets[0].HSV = nil }, "hsv range is required"},
		{"inverted hsv", func(tb *Table) {
			tb.Targets[1].HSV[0] = Bounds{Min: [3]uint8{90, 0, 0}, Max: [3]uint8{80, 255, 255}}
		}, "min 90 greater than max 80"},
		{"hue too large", func(tb *Table) {
			tb.Targets[1].HSV[0].Max[0] = 200
		}, "hue above"},
		{"inverted rgb", func(tb *Table) {
			tb.Targets[2].RGB.Min[1] = 200
		}, "rgb range"},
		{"unknown dominant", func(tb *Table) { tb.Targets[2].Dominant = "cyan" }, "unknown dominant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Default()
			tt.mutate(&table)
			err := table.Validate()
			if err == nil {
				t.Fatal("Validate should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestTable_Validate_DefaultsLabel(t *testing.T) {
	table := Default()
	table.Targets[0].Label = ""
	if err := table.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if table.Targets[0].Label != "BLACK" {
		t.Errorf("Label: got %q, want BLACK", table.Targets[0].Label)
	}
}

func TestTarget_DominantIndex(t *testing.T) {
	tests := []struct {
		dominant string
		wantIdx  int
		wantOK   bool
	}{
		{"red", 0, true},
		{"green", 1, true},
		{"blue", 2, true},
		{"", 0, false},
	}

	for _, tt := range tests {
		idx, ok := Target{Dominant: tt.dominant}.DominantIndex()
		if idx != tt.wantIdx || ok != tt.wantOK {
			t.Errorf("DominantIndex(%q): got (%d,%v), want (%d,%v)", tt.dominant, idx, ok, tt.wantIdx, tt.wantOK)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#FF0000", color.RGBA{255, 0, 0, 255}, false},
		{"00FF00", color.RGBA{0, 255, 0, 255}, false},
		{"#64646480", color.RGBA{100, 100, 100, 128}, false},
		{"", color.RGBA{}, true},
		{"#FFF", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q): err=%v, wantErr=%v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTarget_DisplayColorFallback(t *testing.T) {
	got := Target{Display: "nonsense"}.DisplayColor()
	if got != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("DisplayColor fallback: got %v", got)
	}
}
