package blanket

import "github.com/go-drift/blanket/pkg/geometry"

// SizeObserver adapts the host's measurement mechanism into the model's
// size inputs. The host calls Observe whenever a tracked view's allocated
// size changes; repeated identical measurements are dropped so redundant
// layout passes cannot re-trigger resolution.
type SizeObserver struct {
	onChange func(geometry.Size)
	last     geometry.Size
	seen     bool
}

// NewSizeObserver creates an observer forwarding changed sizes to onChange.
func NewSizeObserver(onChange func(geometry.Size)) *SizeObserver {
	return &SizeObserver{onChange: onChange}
}

// Observe records a measurement, forwarding it if it differs from the
// previous one.
func (o *SizeObserver) Observe(size geometry.Size) {
	if o.seen && o.last == size {
		return
	}
	o.last = size
	o.seen = true
	if o.onChange != nil {
		o.onChange(size)
	}
}

// Last returns the most recent measurement, if any.
func (o *SizeObserver) Last() (geometry.Size, bool) {
	return o.last, o.seen
}

// Reset forgets the last measurement so the next Observe always forwards.
// Used when the measured view is torn down and remounted.
func (o *SizeObserver) Reset() {
	o.last = geometry.Size{}
	o.seen = false
}
