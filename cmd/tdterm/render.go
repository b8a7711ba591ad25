package main

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"

	"satoshi-defense/internal/config"
	"satoshi-defense/internal/utils"
	"satoshi-defense/pkg/render"
)

// toCell maps field coordinates onto a w×h grid of terminal cells.
// Points outside the field are clamped to the border.
func toCell(x, y float64, w, h int) (int, int) {
	cx := int(utils.Clamp01(x/config.ScreenWidth) * float64(w))
	cy := int(utils.Clamp01(y/config.ScreenHeight) * float64(h))
	if cx >= w {
		cx = w - 1
	}
	if cy >= h {
		cy = h - 1
	}
	return cx, cy
}

// rangeOutline returns the distinct cells on the tower's range circle.
func rangeOutline(cx, cy, r float64, w, h int) []image.Point {
	const steps = 72
	seen := make(map[image.Point]bool, steps)
	out := make([]image.Point, 0, steps)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		x, y := toCell(cx+r*math.Cos(a), cy+r*math.Sin(a), w, h)
		p := image.Pt(x, y)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func healthColor(fraction float64) tcell.Color {
	c := render.HealthColor(fraction, config.HealthLowColor, config.HealthFullColor)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
