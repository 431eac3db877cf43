package gestures

import (
	"math"
	"time"

	"github.com/go-drift/blanket/pkg/animation"
	"github.com/go-drift/blanket/pkg/geometry"
)

// PointerPhase identifies a pointer event's lifecycle stage.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

// PointerEvent is a raw pointer event from the host's input layer.
type PointerEvent struct {
	PointerID int64
	Phase     PointerPhase
	Position  geometry.Offset
}

// DefaultTouchSlop is the distance a pointer must travel before a drag is
// recognized.
const DefaultTouchSlop = 18.0

// PointerDragSource recognizes vertical drags from raw pointer events.
//
// It applies touch slop, rejects horizontally dominant movement, and tracks
// an exponentially smoothed vertical velocity for the end event. This is
// the backend for hosts that only deliver raw pointer input.
type PointerDragSource struct {
	handlers DragHandlers

	pointer  int64           // current pointer being tracked
	tracking bool            // true between down and up/cancel
	start    geometry.Offset // initial touch position
	last     geometry.Offset // most recent touch position
	lastTime time.Time       // timestamp of last update (for velocity)
	velocity geometry.Offset // smoothed velocity in pixels/second
	slop     float64         // minimum distance before recognizing a drag
	accepted bool            // true after the gesture was accepted
	rejected bool            // true if the gesture was rejected
	started  bool            // true after OnStart has been called
}

// NewPointerDragSource creates a pointer-backed drag source.
func NewPointerDragSource() *PointerDragSource {
	return &PointerDragSource{slop: DefaultTouchSlop}
}

// Bind installs the handlers receiving the recognized drag stream.
func (p *PointerDragSource) Bind(handlers DragHandlers) {
	p.handlers = handlers
}

// HandlePointer feeds a raw pointer event into the recognizer.
func (p *PointerDragSource) HandlePointer(event PointerEvent) {
	switch event.Phase {
	case PointerPhaseDown:
		p.handleDown(event)
	case PointerPhaseMove:
		p.handleMove(event)
	case PointerPhaseUp:
		p.handleUp(event)
	case PointerPhaseCancel:
		p.handleCancel(event)
	}
}

func (p *PointerDragSource) handleDown(event PointerEvent) {
	p.pointer = event.PointerID
	p.tracking = true
	p.start = event.Position
	p.last = event.Position
	p.lastTime = animation.Now()
	p.velocity = geometry.Offset{}
	p.accepted = false
	p.rejected = false
	p.started = false
}

func (p *PointerDragSource) handleMove(event PointerEvent) {
	if !p.tracking || event.PointerID != p.pointer || p.rejected {
		return
	}
	now := animation.Now()
	dt := now.Sub(p.lastTime).Seconds()

	total := event.Position.Sub(p.start)
	primary := math.Abs(total.Y)
	orthogonal := math.Abs(total.X)

	// Recognition: decide to accept or reject once slop is exceeded.
	if !p.accepted {
		if primary > p.slop && primary >= orthogonal {
			shouldAccept := true
			if p.handlers.ShouldStart != nil {
				shouldAccept = p.handlers.ShouldStart(total.Y)
			}
			if !shouldAccept {
				p.rejected = true
				return
			}
			p.accepted = true
		} else if orthogonal > p.slop {
			// Horizontal movement dominant: likely a horizontal scroll.
			p.rejected = true
			return
		}
	}

	// Exponential smoothing keeps fling detection stable across jittery frames.
	delta := event.Position.Sub(p.last)
	if dt > 0 {
		p.velocity = geometry.Offset{
			X: p.velocity.X*0.8 + (delta.X/dt)*0.2,
			Y: p.velocity.Y*0.8 + (delta.Y/dt)*0.2,
		}
	}

	if p.accepted {
		p.ensureStarted()
		if p.handlers.OnUpdate != nil {
			p.handlers.OnUpdate(DragUpdateDetails{
				Translation: total,
				Delta:       delta,
			})
		}
	}

	p.last = event.Position
	p.lastTime = now
}

func (p *PointerDragSource) handleUp(event PointerEvent) {
	if !p.tracking || event.PointerID != p.pointer {
		return
	}
	p.tracking = false
	if p.accepted && !p.rejected && p.handlers.OnEnd != nil {
		p.handlers.OnEnd(DragEndDetails{
			Velocity:    p.velocity,
			Translation: event.Position.Sub(p.start),
		})
	}
}

func (p *PointerDragSource) handleCancel(event PointerEvent) {
	if !p.tracking || event.PointerID != p.pointer {
		return
	}
	p.tracking = false
	if p.accepted && !p.rejected && p.handlers.OnCancel != nil {
		p.handlers.OnCancel()
	}
	p.rejected = true
}

func (p *PointerDragSource) ensureStarted() {
	if p.started {
		return
	}
	p.started = true
	if p.handlers.OnStart != nil {
		p.handlers.OnStart(DragStartDetails{Position: p.start})
	}
}
