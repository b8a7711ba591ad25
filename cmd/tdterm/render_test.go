package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"satoshi-defense/internal/config"
)

func TestToCell(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		w, h   int
		wx, wy int
	}{
		{"origin", 0, 0, 80, 24, 0, 0},
		{"center", config.ScreenWidth / 2, config.ScreenHeight / 2, 80, 24, 40, 12},
		{"far corner clamps inside", config.ScreenWidth, config.ScreenHeight, 80, 24, 79, 23},
		{"offscreen spawn clamps", -10, 700, 80, 24, 0, 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := toCell(tt.x, tt.y, tt.w, tt.h)
			if x != tt.wx || y != tt.wy {
				t.Errorf("toCell(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestRangeOutlineDistinct(t *testing.T) {
	pts := rangeOutline(config.TowerX, config.TowerY, config.TowerRange, 80, 24)
	if len(pts) == 0 {
		t.Fatal("no outline cells")
	}
	seen := map[[2]int]bool{}
	for _, p := range pts {
		k := [2]int{p.X, p.Y}
		if seen[k] {
			t.Fatalf("duplicate cell %v", p)
		}
		seen[k] = true
		if p.X < 0 || p.X >= 80 || p.Y < 0 || p.Y >= 24 {
			t.Errorf("cell %v outside the grid", p)
		}
	}
}

func TestDrawTextAndHealthColor(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(20, 2)

	drawText(s, 2, 1, "hi", tcell.StyleDefault)
	if r, _, _, _ := s.GetContent(3, 1); r != 'i' {
		t.Errorf("cell (3,1) = %q, want 'i'", r)
	}

	full := healthColor(1)
	want := tcell.NewRGBColor(int32(config.HealthFullColor.R), int32(config.HealthFullColor.G), int32(config.HealthFullColor.B))
	if full != want {
		t.Errorf("healthColor(1) = %v, want %v", full, want)
	}
}
