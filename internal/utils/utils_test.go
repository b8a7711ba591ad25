package utils

import (
	"math"
	"testing"
)

func TestPRNGServiceIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(4), b.Intn(4); x != y {
			t.Fatalf("draw %d: Intn mismatch %d != %d", i, x, y)
		}
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: Float64 mismatch %v != %v", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Expected seed 42, got %d", a.Seed())
	}
}

func TestPRNGServiceTimeSeed(t *testing.T) {
	if s := NewPRNGService(0).Seed(); s == 0 {
		t.Error("Expected a non-zero seed when 0 is requested")
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, bx, by float64
		dx, dy, dist   float64
	}{
		{"Right", 0, 0, 10, 0, 1, 0, 10},
		{"Down", 5, 5, 5, 8, 0, 1, 3},
		{"Diagonal 3-4-5", 0, 0, 3, 4, 0.6, 0.8, 5},
		{"Same point", 7, 7, 7, 7, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy, dist := Direction(tt.ax, tt.ay, tt.bx, tt.by)
			if math.Abs(dx-tt.dx) > 1e-9 || math.Abs(dy-tt.dy) > 1e-9 || math.Abs(dist-tt.dist) > 1e-9 {
				t.Errorf("Direction = (%v, %v, %v), want (%v, %v, %v)", dx, dy, dist, tt.dx, tt.dy, tt.dist)
			}
			if d := Distance(tt.ax, tt.ay, tt.bx, tt.by); math.Abs(d-tt.dist) > 1e-9 {
				t.Errorf("Distance = %v, want %v", d, tt.dist)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{-0.5: 0, 0: 0, 0.25: 0.25, 1: 1, 3: 1} {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v) = %v, want %v", in, got, want)
		}
	}
}
