// internal/utils/math.go
package utils

import "math"

// Distance: евклидово расстояние между двумя точками.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Direction returns the unit vector from (ax, ay) towards (bx, by) and the
// distance between them. Coincident points give a zero vector.
func Direction(ax, ay, bx, by float64) (dx, dy, dist float64) {
	dx = bx - ax
	dy = by - ay
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}

// Clamp01 ограничивает значение отрезком [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
