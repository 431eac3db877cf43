package blanket

import (
	"slices"

	"github.com/go-drift/blanket/pkg/geometry"
	"github.com/go-drift/blanket/pkg/observe"
)

// Phase is a presentation lifecycle stage.
//
// The lifecycle runs Unmounted → Mounted → Loaded → Displaying. Only the
// external presented flag returns the sheet to Unmounted; there is no path
// backwards from Loaded or Displaying.
type Phase int

const (
	// PhaseUnmounted means the content is not instantiated.
	PhaseUnmounted Phase = iota
	// PhaseMounted means the content exists but has not been measured.
	// It sits pre-positioned at the hiding offset, invisible.
	PhaseMounted
	// PhaseLoaded means detent resolution has produced a valid set.
	// The offset still holds at the hiding offset for one render pass.
	PhaseLoaded
	// PhaseDisplaying means the reveal animation toward offset 0 runs.
	PhaseDisplaying
)

func (p Phase) String() string {
	switch p {
	case PhaseUnmounted:
		return "unmounted"
	case PhaseMounted:
		return "mounted"
	case PhaseLoaded:
		return "loaded"
	case PhaseDisplaying:
		return "displaying"
	default:
		return "unknown"
	}
}

// HeightOverride is an optional explicit height clamp. When inactive the
// sheet sizes to its natural content height; when active the host hard
// constrains the sheet to Value.
type HeightOverride struct {
	Value  float64
	Active bool
}

// ContentDescriptor is a snapshot of the model's layout inputs.
type ContentDescriptor struct {
	HidingOffset            float64
	ContentSize             geometry.Size
	HasContentSize          bool
	MaximumContainerSize    geometry.Size
	HasMaximumContainerSize bool
	Detents                 []Detent
}

// Model aggregates the sheet's layout inputs and owns its observable
// outputs. It recomputes the resolved detent set whenever the content
// size, container size, or declared detents change, and drives the
// presentation phase machine.
//
// Model is single-threaded: every method must be called from the host's
// UI scheduling context.
type Model struct {
	behavior Behavior

	declared    []Detent
	hasDeclared bool

	contentSize    geometry.Size
	hasContentSize bool

	containerSize    geometry.Size
	hasContainerSize bool

	bottomInset  float64
	hiddenOffset float64

	resolved    ResolvedDetentSet
	hasResolved bool

	phase        *observe.Value[Phase]
	offset       *observe.Value[geometry.Offset]
	customHeight *observe.Value[HeightOverride]
	scrollLocked *observe.Value[bool]

	tasks    []func()
	draining bool
}

// NewModel creates a model with the given (already normalized) behavior.
func NewModel(behavior Behavior) *Model {
	m := &Model{
		behavior:     behavior,
		phase:        observe.NewValue(PhaseUnmounted),
		offset:       observe.NewValue(geometry.Offset{}),
		customHeight: observe.NewValue(HeightOverride{}),
		scrollLocked: observe.NewValue(false),
	}
	// Recomputation is suppressed while a height override is active so
	// resolution never fights an in-progress drag. When the override
	// clears, apply whatever inputs arrived in the meantime.
	m.customHeight.AddListener(func(h HeightOverride) {
		if !h.Active {
			m.resolveIfReady()
		}
	})
	return m
}

// Phase returns the observable presentation phase.
func (m *Model) Phase() *observe.Value[Phase] { return m.phase }

// Offset returns the observable vertical translation applied to the
// content. Zero means resting at a detent; positive values move the sheet
// down toward dismissal.
func (m *Model) Offset() *observe.Value[geometry.Offset] { return m.offset }

// CustomHeight returns the observable height override.
func (m *Model) CustomHeight() *observe.Value[HeightOverride] { return m.customHeight }

// ScrollLocked returns the observable scroll-lock flag for nested
// scrollable regions.
func (m *Model) ScrollLocked() *observe.Value[bool] { return m.scrollLocked }

// HiddenOffset returns the offset at which the sheet is fully off-screen:
// the content height plus the bottom safe-area inset.
func (m *Model) HiddenOffset() float64 { return m.hiddenOffset }

// ResolvedDetents returns the current resolved detent set, if resolution
// has completed at least once since mounting.
func (m *Model) ResolvedDetents() (ResolvedDetentSet, bool) {
	return m.resolved, m.hasResolved
}

// DetentContext returns the context detents resolve in, once the container
// and content have both been measured.
func (m *Model) DetentContext() (DetentContext, bool) {
	if !m.hasContentSize || !m.hasContainerSize {
		return DetentContext{}, false
	}
	return DetentContext{
		MaxDetentValue: m.containerSize.Height - m.behavior.ReservedTopMargin,
		ContentHeight:  m.contentSize.Height,
	}, true
}

// Descriptor returns a snapshot of the current layout inputs.
func (m *Model) Descriptor() ContentDescriptor {
	return ContentDescriptor{
		HidingOffset:            m.hiddenOffset,
		ContentSize:             m.contentSize,
		HasContentSize:          m.hasContentSize,
		MaximumContainerSize:    m.containerSize,
		HasMaximumContainerSize: m.hasContainerSize,
		Detents:                 slices.Clone(m.declared),
	}
}

// SetContentSize records a content measurement and recomputes the resolved
// set and hiding offset.
func (m *Model) SetContentSize(size geometry.Size) {
	if m.hasContentSize && m.contentSize == size {
		return
	}
	m.contentSize = size
	m.hasContentSize = true
	m.updateHiddenOffset()
	m.resolveIfReady()
	m.drain()
}

// SetMaximumContainerSize records the container measurement.
func (m *Model) SetMaximumContainerSize(size geometry.Size) {
	if m.hasContainerSize && m.containerSize == size {
		return
	}
	m.containerSize = size
	m.hasContainerSize = true
	m.resolveIfReady()
	m.drain()
}

// SetDetents records the declared detents. An empty set is valid and means
// the sheet rests only at its natural content height.
func (m *Model) SetDetents(detents []Detent) {
	if m.hasDeclared && slices.Equal(m.declared, detents) {
		return
	}
	m.declared = slices.Clone(detents)
	m.hasDeclared = true
	m.resolveIfReady()
	m.drain()
}

// SetSafeAreaInsets records the safe-area insets. Only the bottom inset
// participates in the hiding offset.
func (m *Model) SetSafeAreaInsets(insets geometry.EdgeInsets) {
	if m.bottomInset == insets.Bottom {
		return
	}
	m.bottomInset = insets.Bottom
	m.updateHiddenOffset()
	m.drain()
}

// Mount instantiates the content, pre-positioned at the hiding offset.
func (m *Model) Mount() {
	if m.phase.Get() != PhaseUnmounted {
		return
	}
	m.offset.Set(geometry.Offset{Y: m.hiddenOffset})
	m.phase.Set(PhaseMounted)
	m.resolveIfReady()
	m.drain()
}

// Unmount tears the content down and discards per-presentation state.
// Declared detents and the container measurement persist; the content
// measurement does not, since the content no longer exists.
func (m *Model) Unmount() {
	if m.phase.Get() == PhaseUnmounted {
		return
	}
	m.phase.Set(PhaseUnmounted)
	m.hasContentSize = false
	m.contentSize = geometry.Size{}
	m.hasResolved = false
	m.resolved = ResolvedDetentSet{}
	m.customHeight.Set(HeightOverride{})
	m.scrollLocked.Set(false)
	m.offset.Set(geometry.Offset{})
	m.updateHiddenOffset()
	m.drain()
}

func (m *Model) updateHiddenOffset() {
	m.hiddenOffset = m.contentSize.Height + m.bottomInset
}

// resolveIfReady recomputes the resolved detent set once every input is
// present and no height override is active. Recomputing with unchanged
// inputs is a no-op so redundant renders cannot re-trigger transitions.
func (m *Model) resolveIfReady() {
	if !m.hasContentSize || !m.hasContainerSize || !m.hasDeclared {
		return
	}
	if m.customHeight.Get().Active {
		return
	}
	ctx, _ := m.DetentContext()
	next := ResolveDetents(m.declared, ctx)
	// Unchanged results still advance a freshly mounted sheet: inputs may
	// have resolved before mounting.
	if m.hasResolved && next.Equal(m.resolved) && m.phase.Get() != PhaseMounted {
		return
	}
	m.resolved = next
	m.hasResolved = true

	if m.phase.Get() == PhaseMounted {
		m.offset.Set(geometry.Offset{Y: m.hiddenOffset})
		m.phase.Set(PhaseLoaded)
		// Advance on a microtask within the same serialized update: the
		// pre-positioned frame renders once before the reveal begins.
		m.schedule(func() {
			if m.phase.Get() == PhaseLoaded {
				m.phase.Set(PhaseDisplaying)
			}
		})
	}
}

// schedule queues fn to run after the current mutation's notifications.
func (m *Model) schedule(fn func()) {
	m.tasks = append(m.tasks, fn)
}

// drain runs queued microtasks. Tasks scheduled while draining run in the
// same pass; a nested drain is a no-op.
func (m *Model) drain() {
	if m.draining {
		return
	}
	m.draining = true
	for len(m.tasks) > 0 {
		task := m.tasks[0]
		m.tasks = m.tasks[1:]
		task()
	}
	m.draining = false
}
