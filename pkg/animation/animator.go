package animation

import "time"

// Animator drives a single float property toward a target with a spring.
//
// The property lives outside the animator: reads go through get and writes
// through set, so gesture code can move the same property directly between
// animations. Starting a new animation supersedes any running one; the
// superseded animation's completion callback is never invoked.
type Animator struct {
	get    func() float64
	set    func(float64)
	spring SpringDescription

	sim      *SpringSimulation
	ticker   *Ticker
	lastTime time.Time
	done     func()
}

// NewAnimator creates an animator for the property accessed by get/set.
func NewAnimator(get func() float64, set func(float64), spring SpringDescription) *Animator {
	return &Animator{
		get:    get,
		set:    set,
		spring: spring,
	}
}

// AnimateTo starts a spring animation from the property's current value to
// target. initialVelocity is expressed as a fraction of the remaining
// distance per second, matching how gesture velocity is mapped onto snap
// animations; the pixel velocity handed to the spring is
// initialVelocity * (target - current). done, if non-nil, runs once the
// spring settles. It does not run if the animation is superseded or stopped.
func (a *Animator) AnimateTo(target, initialVelocity float64, done func()) {
	a.Stop()

	current := a.get()
	if current == target {
		a.set(target)
		if done != nil {
			done()
		}
		return
	}

	a.done = done
	a.sim = NewSpringSimulation(a.spring, current, initialVelocity*(target-current), target)
	a.lastTime = Now()
	a.ticker = NewTicker(func(time.Duration) {
		a.tick()
	})
	a.ticker.Start()
}

// tick advances the simulation by the wall-clock delta since the last frame.
func (a *Animator) tick() {
	if a.sim == nil {
		a.Stop()
		return
	}
	now := Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now
	if dt <= 0 {
		return
	}
	// Cap dt to avoid large jumps after frame stalls.
	const maxDt = 0.032
	if dt > maxDt {
		dt = maxDt
	}

	finished := a.sim.Step(dt)
	a.set(a.sim.Position())

	if finished {
		done := a.done
		a.Stop()
		if done != nil {
			done()
		}
	}
}

// Stop halts any running animation at the property's current value.
// The pending completion callback is discarded.
func (a *Animator) Stop() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
	a.sim = nil
	a.done = nil
}

// IsAnimating reports whether an animation is in flight.
func (a *Animator) IsAnimating() bool {
	return a.ticker != nil && a.ticker.IsActive()
}
