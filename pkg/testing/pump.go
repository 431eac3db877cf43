package testing

import (
	"time"

	"github.com/go-drift/blanket/pkg/animation"
)

// DefaultFrameStep is one frame at 60fps.
const DefaultFrameStep = 16 * time.Millisecond

// Pump advances clock by step and runs one animation frame.
func Pump(clock *FakeClock, step time.Duration) {
	clock.Advance(step)
	animation.StepTickers()
}

// PumpUntilIdle pumps frames until no tickers remain active or maxFrames
// is reached, returning the number of frames pumped. Callers should
// install the clock with animation.SetClock first.
func PumpUntilIdle(clock *FakeClock, step time.Duration, maxFrames int) int {
	frames := 0
	for frames < maxFrames && animation.HasActiveTickers() {
		Pump(clock, step)
		frames++
	}
	return frames
}
