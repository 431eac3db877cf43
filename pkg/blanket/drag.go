package blanket

import (
	stderrors "errors"
	"math"

	"github.com/go-drift/blanket/pkg/animation"
	"github.com/go-drift/blanket/pkg/errors"
	"github.com/go-drift/blanket/pkg/geometry"
	"github.com/go-drift/blanket/pkg/gestures"
)

var errNoResolvedDetents = stderrors.New("drag event before detent resolution")

// DragController converts the drag stream into offset and height targets.
//
// During a drag the sheet is in one of three regimes, picked by comparing
// the proposed height against the resolved detent range:
//
//   - below the lowest detent, the sheet translates freely toward
//     dismissal with a rubber band above the resting position;
//   - above the highest detent, the height is clamped to a soft band
//     around the tallest detent;
//   - between detents, the height tracks the finger 1:1.
//
// At release it snaps to the nearest detent or dismisses, seeding the
// spring with the gesture velocity.
type DragController struct {
	model    *Model
	behavior Behavior

	offsetAnimator *animation.Animator
	heightAnimator *animation.Animator
	onHidden       func()

	// Ephemeral drag-session state, captured lazily on the first update
	// of each gesture and cleared at drag end.
	hasBaseHeight   bool
	baseHeight      float64
	hasBaseOffset   bool
	baseOffset      geometry.Offset
	baseTranslation geometry.Offset
}

// NewDragController creates a controller mutating model's outputs through
// the given animators. onHidden runs after a dismissal animation settles.
func NewDragController(model *Model, behavior Behavior, offsetAnimator, heightAnimator *animation.Animator, onHidden func()) *DragController {
	return &DragController{
		model:          model,
		behavior:       behavior,
		offsetAnimator: offsetAnimator,
		heightAnimator: heightAnimator,
		onHidden:       onHidden,
	}
}

// HandleStart interrupts any running animation so the finger takes over.
func (c *DragController) HandleStart(gestures.DragStartDetails) {
	c.offsetAnimator.Stop()
	c.heightAnimator.Stop()
}

// HandleUpdate applies one translation update.
func (c *DragController) HandleUpdate(d gestures.DragUpdateDetails) {
	set, ok := c.model.ResolvedDetents()
	if !ok {
		errors.Report(&errors.BlanketError{
			Op:   "blanket.DragController.HandleUpdate",
			Kind: errors.KindGesture,
			Err:  errNoResolvedDetents,
		})
		return
	}

	if !c.hasBaseHeight {
		c.baseHeight = c.currentHeight()
		c.hasBaseHeight = true
	}
	proposedHeight := c.baseHeight - d.Translation.Y

	switch {
	case proposedHeight < set.Min().Offset:
		// Toward dismissal: release the height clamp and translate the
		// whole sheet, banding any overshoot above the resting position.
		c.model.CustomHeight().Set(HeightOverride{})
		c.model.ScrollLocked().Set(false)
		if !c.hasBaseOffset {
			c.baseOffset = c.model.Offset().Get()
			c.baseTranslation = d.Translation
			c.hasBaseOffset = true
		}
		proposed := c.baseOffset.Add(d.Translation.Sub(c.baseTranslation))
		banded := geometry.RubberBand(proposed.Y, 0, math.Inf(1), c.behavior.DismissBandLength)
		c.model.Offset().Set(geometry.Offset{Y: banded})

	case proposedHeight > set.Max().Offset:
		// Over-stretched: soft ceiling at the tallest detent. Nested
		// scrolling is locked so the stretch is felt instead of scrolled.
		banded := geometry.RubberBand(proposedHeight, set.Max().Offset, set.Max().Offset, c.behavior.StretchBandLength)
		c.model.CustomHeight().Set(HeightOverride{Value: banded, Active: true})
		c.model.ScrollLocked().Set(true)

	default:
		c.model.Offset().Set(geometry.Offset{})
		c.model.CustomHeight().Set(HeightOverride{Value: proposedHeight, Active: true})
		c.model.ScrollLocked().Set(false)
	}
}

// HandleEnd decides the resting target from the release velocity and
// starts the settle animation.
func (c *DragController) HandleEnd(d gestures.DragEndDetails) {
	set, ok := c.model.ResolvedDetents()
	c.resetSession()
	if !ok {
		errors.Report(&errors.BlanketError{
			Op:   "blanket.DragController.HandleEnd",
			Kind: errors.KindGesture,
			Err:  errNoResolvedDetents,
		})
		return
	}
	defer c.model.ScrollLocked().Set(false)

	velocityY := d.Velocity.Y
	override := c.model.CustomHeight().Get()

	if override.Active {
		c.settleHeight(set, set.Nearest(override.Value, velocityY), velocityY)
		return
	}

	offsetY := c.model.Offset().Get().Y
	willHide := velocityY > c.behavior.HideVelocityThreshold ||
		offsetY > c.behavior.HideDistanceThreshold

	target := 0.0
	var done func()
	if willHide {
		target = c.model.HiddenOffset()
		done = c.onHidden
	}
	c.offsetAnimator.AnimateTo(target, mappedSpringVelocity(velocityY, target-offsetY), done)
}

// HandleCancel restores the nearest resting state without considering
// dismissal; a cancelled gesture was claimed by someone else.
func (c *DragController) HandleCancel() {
	set, ok := c.model.ResolvedDetents()
	c.resetSession()
	c.model.ScrollLocked().Set(false)
	if !ok {
		return
	}
	if override := c.model.CustomHeight().Get(); override.Active {
		c.settleHeight(set, set.Nearest(override.Value, 0), 0)
		return
	}
	c.offsetAnimator.AnimateTo(0, 0, nil)
}

// settleHeight animates the height clamp to target. Settling at the
// lowest detent clears the clamp afterwards so the sheet returns to
// intrinsic sizing at its lowest resting state.
func (c *DragController) settleHeight(set ResolvedDetentSet, target ResolvedDetent, velocityY float64) {
	current := c.currentHeight()
	velocity := mappedSpringVelocity(velocityY, target.Offset-current)
	if target == set.Min() {
		c.heightAnimator.AnimateTo(target.Offset, velocity, func() {
			c.model.CustomHeight().Set(HeightOverride{})
		})
		return
	}
	c.heightAnimator.AnimateTo(target.Offset, velocity, nil)
}

// currentHeight returns the active height clamp, or the natural content
// height when no clamp is set.
func (c *DragController) currentHeight() float64 {
	if override := c.model.CustomHeight().Get(); override.Active {
		return override.Value
	}
	return c.model.Descriptor().ContentSize.Height
}

func (c *DragController) resetSession() {
	c.hasBaseHeight = false
	c.hasBaseOffset = false
}

// mappedSpringVelocity converts a gesture velocity into the spring's
// initial velocity: the raw speed scaled by the inverse of the remaining
// distance. A vanishing distance maps to zero rather than blowing up.
func mappedSpringVelocity(velocity, distance float64) float64 {
	if math.Abs(distance) < 1e-6 {
		return 0
	}
	return velocity / distance
}
