package app

import (
	"testing"

	"satoshi-defense/internal/config"
)

func TestFixedStepAdvance(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
		want   int
	}{
		{"no time", []float64{0}, 0},
		{"negative delta ignored", []float64{-1}, 0},
		{"one tick", []float64{config.TickDuration * 1.01}, 1},
		{"accumulates across frames", []float64{config.TickDuration * 0.6, config.TickDuration * 0.6}, 1},
		{"clamped to max delta", []float64{10}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FixedStep
			total := 0
			for _, dt := range tt.deltas {
				total += f.Advance(dt)
			}
			if total != tt.want {
				t.Errorf("ticks = %d, want %d", total, tt.want)
			}
		})
	}
}

func TestFixedStepSecondOfFrames(t *testing.T) {
	var f FixedStep
	total := 0
	for i := 0; i < 120; i++ {
		total += f.Advance(1.0 / 120)
	}
	if total < 59 || total > 60 {
		t.Errorf("one second at 120 fps produced %d ticks, want ~60", total)
	}
}

func TestFixedStepReset(t *testing.T) {
	var f FixedStep
	f.Advance(config.TickDuration * 0.9)
	f.Reset()
	if n := f.Advance(config.TickDuration * 0.5); n != 0 {
		t.Errorf("after Reset got %d ticks, want 0", n)
	}
}
