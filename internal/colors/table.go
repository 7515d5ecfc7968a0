package colors

import (
	"fmt"
	"image/color"
)

// Channel names accepted in Target.Dominant.
const (
	ChannelRed   = "red"
	ChannelGreen = "green"
	ChannelBlue  = "blue"
)

// Bounds is an inclusive box over a three-channel pixel representation.
//
// For HSV bounds the channels are (H, S, V); for RGB bounds they are (R, G, B).
type Bounds struct {
	Min [3]uint8 `yaml:"min" json:"min"`
	Max [3]uint8 `yaml:"max" json:"max"`
}

// Contains reports whether every channel lies inside its interval.
func (b Bounds) Contains(c0, c1, c2 uint8) bool {
	return c0 >= b.Min[0] && c0 <= b.Max[0] &&
		c1 >= b.Min[1] && c1 <= b.Max[1] &&
		c2 >= b.Min[2] && c2 <= b.Max[2]
}

func (b Bounds) validate() error {
	for i := 0; i < 3; i++ {
		if b.Min[i] > b.Max[i] {
			return fmt.Errorf("channel %d: min %d greater than max %d", i, b.Min[i], b.Max[i])
		}
	}
	return nil
}

// Target is one logical colour the pipeline looks for.
type Target struct {
	// Name identifies the target in results and reports ("red").
	Name string `yaml:"name" json:"name"`

	// Label is drawn next to the bounding box ("RED"). Defaults to Name.
	Label string `yaml:"label" json:"label"`

	// Display is the "#RRGGBB" colour used for the box and label.
	Display string `yaml:"display" json:"display"`

	// HSV boxes for the alternate-space strategy, unioned.
	HSV []Bounds `yaml:"hsv" json:"hsv"`

	// RGB box for the per-channel strategy. Achromatic targets also use it
	// in the dominant-difference and pure-channel strategies.
	RGB Bounds `yaml:"rgb" json:"rgb"`

	// Dominant is "red", "green" or "blue" for chromatic targets, empty for
	// achromatic ones.
	Dominant string `yaml:"dominant,omitempty" json:"dominant,omitempty"`
}

// Achromatic reports whether the target has no dominant channel.
func (t Target) Achromatic() bool {
	return t.Dominant == ""
}

// DominantIndex returns the RGBA byte offset (0=R, 1=G, 2=B) of the dominant
// channel. ok is false for achromatic targets.
func (t Target) DominantIndex() (idx int, ok bool) {
	switch t.Dominant {
	case ChannelRed:
		return 0, true
	case ChannelGreen:
		return 1, true
	case ChannelBlue:
		return 2, true
	}
	return 0, false
}

// DisplayColor parses Display, falling back to mid gray if it is malformed.
func (t Target) DisplayColor() color.RGBA {
	c, err := ParseHex(t.Display)
	if err != nil {
		return color.RGBA{128, 128, 128, 255}
	}
	return c
}

// Table is the immutable colour configuration shared by every strategy.
type Table struct {
	Targets []Target `yaml:"targets" json:"targets"`

	// DominanceMargin is the amount by which the dominant channel must
	// exceed the larger of the other two (strict).
	DominanceMargin int `yaml:"dominance_margin" json:"dominance_margin"`

	// PurityLevel is the single-channel level a chromatic target's channel
	// must exceed in the pure-channel strategy (strict).
	PurityLevel uint8 `yaml:"purity_level" json:"purity_level"`
}

// Names returns the target names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Targets))
	for i, tg := range t.Targets {
		names[i] = tg.Name
	}
	return names
}

// Lookup returns the target with the given name.
func (t *Table) Lookup(name string) (Target, bool) {
	for _, tg := range t.Targets {
		if tg.Name == name {
			return tg, true
		}
	}
	return Target{}, false
}

// Validate checks the table for impossible values.
//
// Labels default to the upper-cased name when empty; apart from that the
// table is left untouched.
func (t *Table) Validate() error {
	if len(t.Targets) == 0 {
		return fmt.Errorf("colour table has no targets")
	}
	if t.DominanceMargin < 0 || t.DominanceMargin > 255 {
		return fmt.Errorf("dominance_margin must be between 0 and 255, got %d", t.DominanceMargin)
	}

	seen := make(map[string]bool, len(t.Targets))
	for i := range t.Targets {
		tg := &t.Targets[i]
		if tg.Name == "" {
			return fmt.Errorf("target %d: name is required", i)
		}
		if seen[tg.Name] {
			return fmt.Errorf("target %q defined twice", tg.Name)
		}
		seen[tg.Name] = true

		if tg.Label == "" {
			tg.Label = upper(tg.Name)
		}
		if _, err := ParseHex(tg.Display); err != nil {
			return fmt.Errorf("target %q: display colour: %w", tg.Name, err)
		}
		if len(tg.HSV) == 0 {
			return fmt.Errorf("target %q: at least one hsv range is required", tg.Name)
		}
		for j, b := range tg.HSV {
			if err := b.validate(); err != nil {
				return fmt.Errorf("target %q: hsv range %d: %w", tg.Name, j, err)
			}
			if b.Max[0] > MaxHue {
				return fmt.Errorf("target %q: hsv range %d: hue above %d", tg.Name, j, MaxHue)
			}
		}
		if err := tg.RGB.validate(); err != nil {
			return fmt.Errorf("target %q: rgb range: %w", tg.Name, err)
		}
		if _, ok := tg.DominantIndex(); !ok && !tg.Achromatic() {
			return fmt.Errorf("target %q: unknown dominant channel %q (must be red, green or blue)",
				tg.Name, tg.Dominant)
		}
	}
	return nil
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// Default returns the calibrated table for the black, green and red targets.
//
// The values are starting points for a typical indoor webcam and usually
// need tuning for the actual lighting.
func Default() Table {
	return Table{
		Targets: []Target{
			{
				Name:    "black",
				Label:   "BLACK",
				Display: "#646464",
				HSV: []Bounds{
					{Min: [3]uint8{0, 0, 0}, Max: [3]uint8{180, 255, 50}},
				},
				RGB: Bounds{Min: [3]uint8{0, 0, 0}, Max: [3]uint8{70, 70, 70}},
			},
			{
				Name:    "green",
				Label:   "GREEN",
				Display: "#00FF00",
				HSV: []Bounds{
					{Min: [3]uint8{35, 100, 100}, Max: [3]uint8{85, 255, 255}},
				},
				RGB:      Bounds{Min: [3]uint8{0, 120, 0}, Max: [3]uint8{100, 255, 100}},
				Dominant: ChannelGreen,
			},
			{
				Name:    "red",
				Label:   "RED",
				Display: "#FF0000",
				// Red straddles hue 0, so it needs both ends of the wheel.
				HSV: []Bounds{
					{Min: [3]uint8{0, 100, 100}, Max: [3]uint8{10, 255, 255}},
					{Min: [3]uint8{170, 100, 100}, Max: [3]uint8{180, 255, 255}},
				},
				RGB:      Bounds{Min: [3]uint8{120, 0, 0}, Max: [3]uint8{255, 100, 100}},
				Dominant: ChannelRed,
			},
		},
		DominanceMargin: 50,
		PurityLevel:     150,
	}
}
