package animation

import "math"

// SpringDescription holds the physical parameters of a damped spring.
type SpringDescription struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// IOSSpring returns spring parameters tuned to match the feel of iOS sheet
// transitions: a response of roughly half a second at critical damping.
func IOSSpring() SpringDescription {
	return SpringDescription{
		Mass:      1,
		Stiffness: 158,
		Damping:   25,
	}
}

// SpringSimulation integrates a damped spring toward a target value.
// Create one with the current position and velocity, then call Step with
// frame deltas until it reports completion.
type SpringSimulation struct {
	desc     SpringDescription
	position float64
	velocity float64
	target   float64
}

// Settle tolerances. The simulation snaps to the target once both the
// remaining distance and the velocity fall below these.
const (
	springDistanceTolerance = 0.1
	springVelocityTolerance = 1.0
)

// maxSpringSubstep bounds the integration step for numeric stability.
const maxSpringSubstep = 1.0 / 240

// NewSpringSimulation creates a simulation starting at position with the
// given initial velocity (in units per second), settling at target.
func NewSpringSimulation(desc SpringDescription, position, velocity, target float64) *SpringSimulation {
	if desc.Mass <= 0 {
		desc.Mass = 1
	}
	return &SpringSimulation{
		desc:     desc,
		position: position,
		velocity: velocity,
		target:   target,
	}
}

// Step advances the simulation by dt seconds and returns true once the
// spring has settled at the target.
func (s *SpringSimulation) Step(dt float64) bool {
	if dt <= 0 {
		return s.isDone()
	}
	remaining := dt
	for remaining > 0 {
		h := remaining
		if h > maxSpringSubstep {
			h = maxSpringSubstep
		}
		// Semi-implicit Euler: stable for stiff springs at small steps.
		accel := (-s.desc.Stiffness*(s.position-s.target) - s.desc.Damping*s.velocity) / s.desc.Mass
		s.velocity += accel * h
		s.position += s.velocity * h
		remaining -= h
	}
	if s.isDone() {
		s.position = s.target
		s.velocity = 0
		return true
	}
	return false
}

func (s *SpringSimulation) isDone() bool {
	return math.Abs(s.position-s.target) < springDistanceTolerance &&
		math.Abs(s.velocity) < springVelocityTolerance
}

// Position returns the current simulated value.
func (s *SpringSimulation) Position() float64 {
	return s.position
}

// Velocity returns the current simulated velocity in units per second.
func (s *SpringSimulation) Velocity() float64 {
	return s.velocity
}

// Target returns the value the simulation settles at.
func (s *SpringSimulation) Target() float64 {
	return s.target
}
