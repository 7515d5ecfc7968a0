package bench

import "fmt"

// Mode selects how strategies share a frame.
type Mode int

const (
	Sequential Mode = iota
	Parallel
)

func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode parses "sequential" or "parallel".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "sequential", "seq", "":
		return Sequential, nil
	case "parallel", "par":
		return Parallel, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want sequential or parallel)", s)
}

// State is the harness lifecycle state.
type State int32

const (
	AwaitingStart State = iota
	Running
	Sealed
)

func (s State) String() string {
	switch s {
	case AwaitingStart:
		return "awaiting_start"
	case Running:
		return "running"
	case Sealed:
		return "sealed"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}
