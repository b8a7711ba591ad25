package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"satoshi-defense/internal/component"
	"satoshi-defense/internal/config"
	"satoshi-defense/internal/utils"
	"satoshi-defense/pkg/render"
)

// HealthBarFill returns the filled width of a bar for the enemy.
func HealthBarFill(e *component.Enemy) float32 {
	return float32(config.HealthBarWidth * utils.Clamp01(e.HealthFraction()))
}

// DrawHealthBar рисует полоску здоровья над врагом.
func DrawHealthBar(screen *ebiten.Image, e *component.Enemy) {
	p := e.Position()
	x := float32(p.X - config.HealthBarWidth/2)
	y := float32(p.Y - config.HealthBarOffset)

	fill := render.HealthColor(e.HealthFraction(), config.HealthLowColor, config.HealthFullColor)
	vector.DrawFilledRect(screen, x, y, config.HealthBarWidth, config.HealthBarHeight, render.DarkenColor(fill), false)
	if w := HealthBarFill(e); w > 0 {
		vector.DrawFilledRect(screen, x, y, w, config.HealthBarHeight, fill, false)
	}
}
