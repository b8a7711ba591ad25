package app

import "satoshi-defense/internal/config"

// FixedStep converts variable frame deltas into whole simulation ticks.
type FixedStep struct {
	acc float64
}

// Advance accumulates dt (clamped to config.MaxDeltaTime) and returns how
// many ticks are due, at most config.MaxTicksPerFrame. Leftover time carries
// over to the next frame; backlog beyond the cap is dropped.
func (f *FixedStep) Advance(dt float64) int {
	if dt < 0 {
		dt = 0
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	f.acc += dt

	n := 0
	for f.acc >= config.TickDuration && n < config.MaxTicksPerFrame {
		f.acc -= config.TickDuration
		n++
	}
	if n == config.MaxTicksPerFrame && f.acc >= config.TickDuration {
		f.acc = 0
	}
	return n
}

func (f *FixedStep) Reset() { f.acc = 0 }
