// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"satoshi-defense/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect          image.Rectangle
	Label         string
	LastClickTime time.Time
}

func NewButton(x, y, w, h int, label string) *Button {
	return &Button{Rect: image.Rect(x, y, x+w, y+h), Label: label}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Click reports whether a click at (x, y) should be handled, debouncing
// repeated clicks within config.ClickCooldown.
func (b *Button) Click(x, y int, now time.Time) bool {
	if !b.Contains(x, y) {
		return false
	}
	if now.Sub(b.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	b.LastClickTime = now
	return true
}

// Draw отрисовывает кнопку; недоступная кнопка рисуется серой.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, enabled bool) {
	bg := config.ButtonColor
	if !enabled {
		bg = config.ButtonOffColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, color.White, true)

	bounds := text.BoundString(face, b.Label)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Label, face, tx, ty, config.TextLightColor)
}
