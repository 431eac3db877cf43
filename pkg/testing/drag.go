package testing

import (
	"github.com/go-drift/blanket/pkg/geometry"
	"github.com/go-drift/blanket/pkg/gestures"
)

const dragPointerID = 7

// Drag feeds source a synthetic straight-line drag: a down at start, the
// given number of move events one frame apart covering delta, and a
// release. Install the clock with animation.SetClock first so the
// recognizer's velocity tracking sees the frame spacing.
func Drag(clock *FakeClock, source *gestures.PointerDragSource, start, delta geometry.Offset, moves int) {
	if moves < 1 {
		moves = 1
	}
	source.HandlePointer(gestures.PointerEvent{
		PointerID: dragPointerID,
		Phase:     gestures.PointerPhaseDown,
		Position:  start,
	})
	position := start
	for i := 1; i <= moves; i++ {
		clock.Advance(DefaultFrameStep)
		position = geometry.Offset{
			X: start.X + delta.X*float64(i)/float64(moves),
			Y: start.Y + delta.Y*float64(i)/float64(moves),
		}
		source.HandlePointer(gestures.PointerEvent{
			PointerID: dragPointerID,
			Phase:     gestures.PointerPhaseMove,
			Position:  position,
		})
	}
	source.HandlePointer(gestures.PointerEvent{
		PointerID: dragPointerID,
		Phase:     gestures.PointerPhaseUp,
		Position:  position,
	})
}
