// Package blanket implements a draggable, detent-based bottom sheet core:
// detent resolution, presentation lifecycle, and the gesture-to-offset
// state machine. Rendering, measurement, and gesture recognition stay in
// the host; the package consumes their streams and produces a vertical
// offset, an optional height clamp, and a scroll-lock flag.
package blanket

import (
	"fmt"

	"github.com/go-drift/blanket/pkg/geometry"
)

type detentKind int

const (
	detentContent detentKind = iota
	detentFraction
	detentHeight
)

// Detent describes a candidate resting position for the sheet: a fraction
// of the available space, a fixed height, or the content's natural height.
// Detents are immutable values with value equality; the zero Detent is
// [Content].
type Detent struct {
	kind  detentKind
	value float64
}

// Content is the detent resting at the content's natural height.
var Content = Detent{kind: detentContent}

// Common fractional presets.
var (
	Medium = Fraction(0.5)
	Full   = Fraction(1.0)
)

// Fraction returns a detent at the given fraction of the available space.
// The fraction is clamped to [0, 1].
func Fraction(value float64) Detent {
	return Detent{kind: detentFraction, value: geometry.Clamp(value, 0, 1)}
}

// Height returns a detent at a fixed height in pixels. Negative heights
// are clamped to zero; heights beyond the available space are capped at
// resolution time.
func Height(value float64) Detent {
	if value < 0 {
		value = 0
	}
	return Detent{kind: detentHeight, value: value}
}

// DetentContext carries the measurements needed to turn a detent into an
// absolute offset.
type DetentContext struct {
	// MaxDetentValue is the tallest offset a detent may resolve to:
	// the container height minus the reserved top margin.
	MaxDetentValue float64
	// ContentHeight is the content's natural height.
	ContentHeight float64
}

// Resolve returns the absolute offset for this detent in ctx.
// All inputs are normalized, never rejected.
func (d Detent) Resolve(ctx DetentContext) float64 {
	switch d.kind {
	case detentFraction:
		return ctx.MaxDetentValue * d.value
	case detentHeight:
		if d.value > ctx.MaxDetentValue {
			return ctx.MaxDetentValue
		}
		return d.value
	default:
		return ctx.ContentHeight
	}
}

func (d Detent) String() string {
	switch d.kind {
	case detentFraction:
		return fmt.Sprintf("Fraction(%g)", d.value)
	case detentHeight:
		return fmt.Sprintf("Height(%g)", d.value)
	default:
		return "Content"
	}
}
