// component/movement.go
package component

import "satoshi-defense/internal/utils"

// Vec2: точка или вектор на игровом поле. Одна единица равна одному пикселю,
// скорости задаются в пикселях за тик.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return utils.Distance(v.X, v.Y, o.X, o.Y)
}

// DirectionTo returns the unit vector from v towards o, zero when they coincide.
func (v Vec2) DirectionTo(o Vec2) (Vec2, float64) {
	dx, dy, dist := utils.Direction(v.X, v.Y, o.X, o.Y)
	return Vec2{X: dx, Y: dy}, dist
}
