package blanket

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/blanket/pkg/animation"
	"github.com/go-drift/blanket/pkg/errors"
)

// SpringConfig holds spring parameters in configuration form.
type SpringConfig struct {
	Mass      float64 `yaml:"mass"`
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
}

// Description converts the config into animation spring parameters.
func (c SpringConfig) Description() animation.SpringDescription {
	return animation.SpringDescription{
		Mass:      c.Mass,
		Stiffness: c.Stiffness,
		Damping:   c.Damping,
	}
}

// Behavior tunes the sheet's motion: the top margin reserved above the
// tallest detent, rubber-band lengths, dismissal thresholds, and the snap
// spring. Zero values are filled with defaults, so a partial Behavior (or
// a partial YAML document) is always usable.
type Behavior struct {
	// ReservedTopMargin is subtracted from the container height when
	// computing the tallest offset a detent may resolve to.
	ReservedTopMargin float64 `yaml:"reserved_top_margin"`
	// DismissBandLength bounds upward overshoot while the sheet is being
	// dragged below its lowest detent.
	DismissBandLength float64 `yaml:"dismiss_band_length"`
	// StretchBandLength bounds overshoot while the sheet is stretched
	// above its highest detent.
	StretchBandLength float64 `yaml:"stretch_band_length"`
	// HideVelocityThreshold is the downward release speed (px/s) that
	// dismisses the sheet.
	HideVelocityThreshold float64 `yaml:"hide_velocity_threshold"`
	// HideDistanceThreshold is the downward offset beyond which a release
	// dismisses the sheet.
	HideDistanceThreshold float64 `yaml:"hide_distance_threshold"`
	// Spring parameterizes the snap and reveal animations.
	Spring SpringConfig `yaml:"spring"`
}

// DefaultBehavior returns the recommended tuning.
func DefaultBehavior() Behavior {
	spring := animation.IOSSpring()
	return Behavior{
		ReservedTopMargin:     30,
		DismissBandLength:     50,
		StretchBandLength:     20,
		HideVelocityThreshold: 50,
		HideDistanceThreshold: 50,
		Spring: SpringConfig{
			Mass:      spring.Mass,
			Stiffness: spring.Stiffness,
			Damping:   spring.Damping,
		},
	}
}

// normalizeBehavior fills in zero values with defaults.
func normalizeBehavior(value Behavior) Behavior {
	defaults := DefaultBehavior()
	if value.ReservedTopMargin <= 0 {
		value.ReservedTopMargin = defaults.ReservedTopMargin
	}
	if value.DismissBandLength <= 0 {
		value.DismissBandLength = defaults.DismissBandLength
	}
	if value.StretchBandLength <= 0 {
		value.StretchBandLength = defaults.StretchBandLength
	}
	if value.HideVelocityThreshold <= 0 {
		value.HideVelocityThreshold = defaults.HideVelocityThreshold
	}
	if value.HideDistanceThreshold <= 0 {
		value.HideDistanceThreshold = defaults.HideDistanceThreshold
	}
	if value.Spring.Mass <= 0 {
		value.Spring.Mass = defaults.Spring.Mass
	}
	if value.Spring.Stiffness <= 0 {
		value.Spring.Stiffness = defaults.Spring.Stiffness
	}
	if value.Spring.Damping <= 0 {
		value.Spring.Damping = defaults.Spring.Damping
	}
	return value
}

// BehaviorFromYAML parses a behavior document, filling omitted fields with
// defaults. Apps ship motion presets this way.
func BehaviorFromYAML(data []byte) (Behavior, error) {
	var value Behavior
	if err := yaml.Unmarshal(data, &value); err != nil {
		return Behavior{}, &errors.BlanketError{
			Op:   "blanket.BehaviorFromYAML",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("parsing behavior: %w", err),
		}
	}
	return normalizeBehavior(value), nil
}
