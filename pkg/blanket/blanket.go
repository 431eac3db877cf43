package blanket

import (
	"github.com/go-drift/blanket/pkg/animation"
	"github.com/go-drift/blanket/pkg/errors"
	"github.com/go-drift/blanket/pkg/geometry"
	"github.com/go-drift/blanket/pkg/gestures"
	"github.com/go-drift/blanket/pkg/observe"
)

// Config configures a Blanket.
type Config struct {
	// Behavior tunes motion; zero fields take defaults.
	Behavior Behavior
	// Detents is the root detent declaration. Content may add more
	// through the detent channel. Empty means natural content height.
	Detents []Detent
	// Source produces the drag stream. Nil disables dragging.
	Source gestures.DragSource
	// ShouldStartDrag, when set, is consulted before a recognized drag is
	// accepted, letting nested scrollable content claim the gesture.
	ShouldStartDrag func(totalDelta float64) bool
	// OnDismiss runs after the sheet finishes hiding and unmounts.
	OnDismiss func()
}

// Blanket is a detent-based draggable bottom sheet. It wires the layout
// model, the drag controller, a gesture source, and the settle animations
// behind a presented flag.
//
// Blanket is single-threaded; all methods must be called from the host's
// UI scheduling context.
type Blanket struct {
	behavior Behavior
	model    *Model
	drag     *DragController
	channel  *DetentChannel

	offsetAnimator *animation.Animator
	heightAnimator *animation.Animator

	contentObserver   *SizeObserver
	containerObserver *SizeObserver

	source     gestures.DragSource
	rootUpdate func([]Detent)

	presented *observe.Value[bool]
	progress  *observe.Value[float64]
	onDismiss func()
}

// New creates a Blanket from cfg.
func New(cfg Config) *Blanket {
	behavior := normalizeBehavior(cfg.Behavior)
	model := NewModel(behavior)

	b := &Blanket{
		behavior:  behavior,
		model:     model,
		presented: observe.NewValue(false),
		progress:  observe.NewValue(0.0),
		onDismiss: cfg.OnDismiss,
	}

	spring := behavior.Spring.Description()
	b.offsetAnimator = animation.NewAnimator(
		func() float64 { return model.Offset().Get().Y },
		func(v float64) { model.Offset().Set(geometry.Offset{Y: v}) },
		spring,
	)
	b.heightAnimator = animation.NewAnimator(
		func() float64 {
			if override := model.CustomHeight().Get(); override.Active {
				return override.Value
			}
			return model.Descriptor().ContentSize.Height
		},
		func(v float64) { model.CustomHeight().Set(HeightOverride{Value: v, Active: true}) },
		spring,
	)

	b.drag = NewDragController(model, behavior, b.offsetAnimator, b.heightAnimator, b.hideCompleted)

	b.channel = NewDetentChannel(model.SetDetents)
	b.rootUpdate, _ = b.channel.Attach(cfg.Detents)

	b.contentObserver = NewSizeObserver(model.SetContentSize)
	b.containerObserver = NewSizeObserver(model.SetMaximumContainerSize)

	model.Phase().AddListener(b.phaseChanged)
	model.Offset().AddListener(func(geometry.Offset) { b.updateProgress() })
	model.CustomHeight().AddListener(func(HeightOverride) { b.updateProgress() })

	if cfg.Source != nil {
		b.source = cfg.Source
		b.source.Bind(gestures.DragHandlers{
			ShouldStart: cfg.ShouldStartDrag,
			OnStart:     b.drag.HandleStart,
			OnUpdate:    b.drag.HandleUpdate,
			OnEnd:       b.drag.HandleEnd,
			OnCancel:    b.drag.HandleCancel,
		})
	}

	return b
}

// Present mounts the content; the reveal runs once measurement and detent
// resolution complete.
func (b *Blanket) Present() {
	b.SetPresented(true)
}

// Dismiss animates the sheet off-screen, then unmounts it. Before the
// sheet is displaying there is nothing to animate, so it unmounts
// directly.
func (b *Blanket) Dismiss() {
	if !b.presented.Get() {
		return
	}
	if b.model.Phase().Get() != PhaseDisplaying {
		b.SetPresented(false)
		return
	}
	b.heightAnimator.Stop()
	b.offsetAnimator.AnimateTo(b.model.HiddenOffset(), 0, b.hideCompleted)
}

// SetPresented flips the external presentation flag. True mounts the
// content; false tears it down immediately, interrupting any animation.
func (b *Blanket) SetPresented(presented bool) {
	if b.presented.Get() == presented {
		return
	}
	b.presented.Set(presented)
	if presented {
		b.model.Mount()
		return
	}
	b.offsetAnimator.Stop()
	b.heightAnimator.Stop()
	b.model.Unmount()
	// The content is gone with the unmount; its observer must forward the
	// next measurement even if the remounted content measures identically.
	b.contentObserver.Reset()
	b.updateProgress()
}

// SnapTo animates the sheet to the given detent. Unresolved layouts and
// unknown measurement contexts make this a no-op.
func (b *Blanket) SnapTo(d Detent) {
	set, ok := b.model.ResolvedDetents()
	if !ok {
		return
	}
	target, found := resolvedFor(set, d)
	if !found {
		ctx, ok := b.model.DetentContext()
		if !ok {
			return
		}
		target = ResolvedDetent{Source: d, Offset: d.Resolve(ctx)}
	}
	b.drag.settleHeight(set, target, 0)
}

// resolvedFor finds the resolved entry for a declared detent.
func resolvedFor(set ResolvedDetentSet, d Detent) (ResolvedDetent, bool) {
	for _, r := range set.All() {
		if r.Source == d {
			return r, true
		}
	}
	return ResolvedDetent{}, false
}

// SetDetents replaces the root detent declaration.
func (b *Blanket) SetDetents(detents []Detent) {
	b.rootUpdate(detents)
}

// ReportDetents attaches an additional detent declaration from content,
// returning update and remove functions. This is the upward channel
// content uses instead of preference propagation.
func (b *Blanket) ReportDetents(detents []Detent) (update func([]Detent), remove func()) {
	return b.channel.Attach(detents)
}

// SetSafeAreaInsets forwards the host's safe-area insets.
func (b *Blanket) SetSafeAreaInsets(insets geometry.EdgeInsets) {
	b.model.SetSafeAreaInsets(insets)
}

// ContentSizeObserver receives the content's size measurements.
func (b *Blanket) ContentSizeObserver() *SizeObserver {
	return b.contentObserver
}

// ContainerSizeObserver receives the container's size measurements.
func (b *Blanket) ContainerSizeObserver() *SizeObserver {
	return b.containerObserver
}

// Model exposes the underlying layout model and its observable outputs.
func (b *Blanket) Model() *Model {
	return b.model
}

// Presented returns the observable presentation flag.
func (b *Blanket) Presented() *observe.Value[bool] {
	return b.presented
}

// Progress returns the observable open progress: the visible extent as a
// fraction of the highest detent, clamped to [0, 1].
func (b *Blanket) Progress() *observe.Value[float64] {
	return b.progress
}

// Effect returns the translation the rendering layer should apply to the
// presented content this frame.
func (b *Blanket) Effect() OffsetEffect {
	return OffsetEffect{Offset: b.model.Offset().Get()}
}

// phaseChanged starts the reveal when the phase machine reaches
// Displaying. The transition arrives on a model microtask, so the target
// assignment happens in the same serialized update as loading while the
// first animated frame waits for the next tick.
func (b *Blanket) phaseChanged(p Phase) {
	if p == PhaseDisplaying {
		b.offsetAnimator.AnimateTo(0, 0, nil)
	}
}

// hideCompleted finishes a dismissal: flip the flag, tear down, and tell
// the host.
func (b *Blanket) hideCompleted() {
	b.SetPresented(false)
	if b.onDismiss != nil {
		func() {
			defer errors.Recover("blanket.Blanket.OnDismiss")
			b.onDismiss()
		}()
	}
}

func (b *Blanket) updateProgress() {
	set, ok := b.model.ResolvedDetents()
	if !ok || set.Max().Offset <= 0 {
		b.progress.Set(0)
		return
	}
	visible := b.drag.currentHeight() - b.model.Offset().Get().Y
	b.progress.Set(geometry.Clamp(visible/set.Max().Offset, 0, 1))
}
