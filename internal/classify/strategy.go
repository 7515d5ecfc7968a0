package classify

import (
	"fmt"
	"strings"

	"github.com/ironsheep/colorbench/internal/colors"
)

// Strategy selects one of the classification algorithms.
type Strategy int

const (
	HSVRange Strategy = iota + 1
	ChannelConjunction
	DominantDifference
	PureChannel
)

var strategyNames = map[Strategy]string{
	HSVRange:           "hsv",
	ChannelConjunction: "channels",
	DominantDifference: "dominant",
	PureChannel:        "pure",
}

var strategyTitles = map[Strategy]string{
	HSVRange:           "HSV range (robust)",
	ChannelConjunction: "RGB split (fragile)",
	DominantDifference: "Dominant channel",
	PureChannel:        "Pure channel (cheapest)",
}

// All returns every strategy in declaration order.
func All() []Strategy {
	return []Strategy{HSVRange, ChannelConjunction, DominantDifference, PureChannel}
}

// String returns the short name used on the command line and in reports.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// Title returns a human readable name for display panes and report headers.
func (s Strategy) Title() string {
	if title, ok := strategyTitles[s]; ok {
		return title
	}
	return s.String()
}

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy resolves a short name ("hsv", "channels", "dominant", "pure").
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q (want hsv, channels, dominant or pure)", name)
}

// ParseStrategies resolves a comma separated list such as "hsv,channels".
func ParseStrategies(list string) ([]Strategy, error) {
	var out []Strategy
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := ParseStrategy(part)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no strategies given")
	}
	return out, nil
}

// Operations lists the primitive operations one classify+select pass performs
// for the given table, for the on-screen HUD.
func (s Strategy) Operations(table *colors.Table) []string {
	n := len(table.Targets)
	chromatic := 0
	intervals := 0
	for _, tg := range table.Targets {
		if !tg.Achromatic() {
			chromatic++
		}
		intervals += len(tg.HSV)
	}
	achromatic := n - chromatic

	var ops []string
	switch s {
	case HSVRange:
		ops = []string{
			"toHSV (x1)",
			fmt.Sprintf("inRange (x%d)", intervals),
			fmt.Sprintf("union (x%d)", intervals-n),
		}
	case ChannelConjunction:
		ops = []string{
			"split (x1)",
			fmt.Sprintf("inRange (x%d)", 3*n),
			fmt.Sprintf("and (x%d)", 2*n),
		}
	case DominantDifference:
		ops = []string{
			fmt.Sprintf("diff+clip (x%d)", chromatic),
			fmt.Sprintf("threshold (x%d)", chromatic),
			fmt.Sprintf("inRange (x%d)", achromatic),
		}
	case PureChannel:
		ops = []string{
			fmt.Sprintf("extract (x%d)", chromatic),
			fmt.Sprintf("threshold (x%d)", chromatic),
			fmt.Sprintf("inRange (x%d)", achromatic),
		}
	}
	return append(ops,
		fmt.Sprintf("components (x%d)", n),
		fmt.Sprintf("boundingBox (x%d)", n),
	)
}
