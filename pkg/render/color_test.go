package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("DarkenColor = %v", got)
	}
}

func TestLerpColor(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	green := color.RGBA{0, 255, 0, 255}

	tests := []struct {
		name string
		t    float64
		want color.RGBA
	}{
		{"Start", 0, red},
		{"End", 1, green},
		{"Clamped low", -3, red},
		{"Clamped high", 7, green},
		{"Half", 0.5, color.RGBA{128, 128, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LerpColor(red, green, tt.t); got != tt.want {
				t.Errorf("LerpColor(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}

	if HealthColor(1, red, green) != green {
		t.Error("Full health should be the full color")
	}
}
