package classify

import (
	"fmt"
	"image"

	"github.com/ironsheep/colorbench/internal/colors"
	"github.com/ironsheep/colorbench/internal/imaging"
)

// Classify produces one mask per target, in table order.
//
// Parameters:
//   - s: The strategy to run.
//   - frame: The captured frame. It is only read.
//   - table: The colour table. It is only read.
//
// Returns:
//   - []imaging.Mask: One mask per table target, each with the frame's bounds.
//   - error: Non-nil if the frame is malformed (wrapping
//     imaging.ErrMalformedFrame), the table is empty, or s is unknown.
func Classify(s Strategy, frame *image.RGBA, table *colors.Table) ([]imaging.Mask, error) {
	if err := imaging.CheckFrame(frame); err != nil {
		return nil, err
	}
	if table == nil || len(table.Targets) == 0 {
		return nil, fmt.Errorf("classify: colour table has no targets")
	}

	switch s {
	case HSVRange:
		return classifyHSV(frame, table), nil
	case ChannelConjunction:
		return classifyChannels(frame, table), nil
	case DominantDifference:
		return classifyDominant(frame, table), nil
	case PureChannel:
		return classifyPure(frame, table), nil
	default:
		return nil, fmt.Errorf("classify: unknown strategy %d", int(s))
	}
}
