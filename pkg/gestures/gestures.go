// Package gestures defines the drag stream consumed by the blanket core and
// the two interchangeable sources that produce it.
//
// A drag gesture is a sequence of zero or more translation updates followed
// by exactly one end carrying the release velocity. [PointerDragSource]
// recognizes that stream from raw pointer events; [HostDragSource] relays a
// stream that a platform recognizer has already produced. The core's drag
// logic is identical regardless of which source feeds it.
package gestures

import "github.com/go-drift/blanket/pkg/geometry"

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	// Position is the pointer position where the drag began.
	Position geometry.Offset
}

// DragUpdateDetails describes a drag update.
type DragUpdateDetails struct {
	// Translation is the cumulative movement since the drag began.
	Translation geometry.Offset
	// Delta is the movement since the previous update.
	Delta geometry.Offset
}

// DragEndDetails describes the end of a drag.
type DragEndDetails struct {
	// Velocity is the release velocity in pixels per second.
	Velocity geometry.Offset
	// Translation is the total movement over the drag.
	Translation geometry.Offset
}

// DragHandlers receives the drag stream from a DragSource.
type DragHandlers struct {
	// ShouldStart is consulted once movement exceeds the touch slop.
	// Returning false rejects the gesture, letting nested scrollable
	// content claim it instead. A nil ShouldStart accepts every drag.
	ShouldStart func(totalDelta float64) bool
	OnStart     func(DragStartDetails)
	OnUpdate    func(DragUpdateDetails)
	OnEnd       func(DragEndDetails)
	OnCancel    func()
}

// DragSource produces a drag stream into a set of handlers.
type DragSource interface {
	// Bind installs the handlers that receive subsequent drag events.
	// Binding replaces any previously bound handlers.
	Bind(handlers DragHandlers)
}
