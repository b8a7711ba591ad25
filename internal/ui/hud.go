package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"satoshi-defense/internal/component"
	"satoshi-defense/internal/config"
	"satoshi-defense/internal/event"
	"satoshi-defense/internal/interfaces"
	"satoshi-defense/internal/logger"
)

const hudLineHeight = 16

// HUD shows score, currency and tower stats, plus short toasts for events
// the player should notice.
type HUD struct {
	face      font.Face
	toast     string
	toastLeft float64
}

func NewHUD(face font.Face) *HUD {
	return &HUD{face: face}
}

// Subscribe registers the HUD for events that produce a toast.
func (h *HUD) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(h, event.TowerUpgraded, event.GameSaved, event.SaveFailed)
}

// OnEvent реализует интерфейс event.Listener.
func (h *HUD) OnEvent(e event.Event) {
	switch e.Type {
	case event.TowerUpgraded:
		if u, ok := e.Data.(event.UpgradeData); ok {
			h.Toast(fmt.Sprintf("%s upgraded to level %d (-%d sat)", u.Kind, u.Level, u.Cost))
		}
	case event.GameSaved:
		h.Toast("Game saved")
	case event.SaveFailed:
		logger.UI.Warn("showing save failure to player: %v", e.Data)
		h.Toast("Save failed!")
	}
}

func (h *HUD) Toast(msg string) {
	h.toast = msg
	h.toastLeft = config.ToastDuration
}

// CurrentToast returns the visible toast, or "" when it has expired.
func (h *HUD) CurrentToast() string {
	if h.toastLeft <= 0 {
		return ""
	}
	return h.toast
}

func (h *HUD) Update(deltaTime float64) {
	if h.toastLeft > 0 {
		h.toastLeft -= deltaTime
	}
}

// Lines returns the stat lines drawn in the top-left corner.
func Lines(view interfaces.GameView, tower *component.Tower) []string {
	return []string{
		fmt.Sprintf("Score: %d   High score: %d", view.Score(), view.HighScore()),
		fmt.Sprintf("Satoshis: %d", view.Currency()),
		fmt.Sprintf("Damage: %d (Lv%d)   Cooldown: %.2fs (Lv%d)",
			tower.Damage(), tower.DamageLevel(), tower.ShootCooldown(), tower.FireRateLevel()),
		fmt.Sprintf("Enemies: %d   Time: %.1fs", len(view.Enemies()), view.Time()),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, view interfaces.GameView, tower *component.Tower) {
	for i, line := range Lines(view, tower) {
		text.Draw(screen, line, h.face, 10, 20+i*hudLineHeight, config.TextLightColor)
	}
	if msg := h.CurrentToast(); msg != "" {
		bounds := text.BoundString(h.face, msg)
		text.Draw(screen, msg, h.face, (config.ScreenWidth-bounds.Dx())/2, 40, config.TextLightColor)
	}
}
