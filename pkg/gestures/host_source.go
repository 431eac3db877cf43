package gestures

import "github.com/go-drift/blanket/pkg/geometry"

// HostDragSource relays a drag stream that the platform's own recognizer
// already produced: cumulative translations during the drag and a single
// velocity at release. Slop, axis disambiguation, and velocity tracking are
// the platform's responsibility. This is the backend for hosts whose native
// gesture system cooperates with scroll views directly.
type HostDragSource struct {
	handlers DragHandlers

	active      bool
	translation geometry.Offset
}

// NewHostDragSource creates a host-backed drag source.
func NewHostDragSource() *HostDragSource {
	return &HostDragSource{}
}

// Bind installs the handlers receiving the relayed drag stream.
func (h *HostDragSource) Bind(handlers DragHandlers) {
	h.handlers = handlers
}

// Update relays a cumulative translation from the platform recognizer.
// The first update of a gesture emits OnStart.
func (h *HostDragSource) Update(translation geometry.Offset) {
	if !h.active {
		h.active = true
		h.translation = geometry.Offset{}
		if h.handlers.OnStart != nil {
			h.handlers.OnStart(DragStartDetails{})
		}
	}
	delta := translation.Sub(h.translation)
	h.translation = translation
	if h.handlers.OnUpdate != nil {
		h.handlers.OnUpdate(DragUpdateDetails{
			Translation: translation,
			Delta:       delta,
		})
	}
}

// End relays the release velocity and terminates the gesture.
func (h *HostDragSource) End(velocity geometry.Offset) {
	if !h.active {
		return
	}
	h.active = false
	if h.handlers.OnEnd != nil {
		h.handlers.OnEnd(DragEndDetails{
			Velocity:    velocity,
			Translation: h.translation,
		})
	}
	h.translation = geometry.Offset{}
}

// Cancel terminates the gesture without an end event.
func (h *HostDragSource) Cancel() {
	if !h.active {
		return
	}
	h.active = false
	h.translation = geometry.Offset{}
	if h.handlers.OnCancel != nil {
		h.handlers.OnCancel()
	}
}
