package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"satoshi-defense/internal/component"
	"satoshi-defense/internal/config"
	"satoshi-defense/internal/interfaces"
)

// Action is what a click on the upgrade panel asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionUpgradeDamage
	ActionUpgradeFireRate
	ActionSave
)

const (
	panelButtonWidth  = 180
	panelButtonHeight = 28
	panelGap          = 8
	panelMargin       = 10
)

// UpgradePanel: кнопки улучшений в нижней части экрана.
type UpgradePanel struct {
	Damage   *Button
	FireRate *Button
	Save     *Button
}

func NewUpgradePanel() *UpgradePanel {
	y := config.ScreenHeight - panelMargin - panelButtonHeight
	x := panelMargin
	step := panelButtonWidth + panelGap
	return &UpgradePanel{
		Damage:   NewButton(x, y, panelButtonWidth, panelButtonHeight, ""),
		FireRate: NewButton(x+step, y, panelButtonWidth, panelButtonHeight, ""),
		Save:     NewButton(x+2*step, y, panelButtonWidth/2, panelButtonHeight, "[S] Save"),
	}
}

// HandleClick maps a click to an action.
func (p *UpgradePanel) HandleClick(x, y int, now time.Time) Action {
	switch {
	case p.Damage.Click(x, y, now):
		return ActionUpgradeDamage
	case p.FireRate.Click(x, y, now):
		return ActionUpgradeFireRate
	case p.Save.Click(x, y, now):
		return ActionSave
	}
	return ActionNone
}

// Contains reports whether the point is over any panel button.
func (p *UpgradePanel) Contains(x, y int) bool {
	return p.Damage.Contains(x, y) || p.FireRate.Contains(x, y) || p.Save.Contains(x, y)
}

// Refresh updates labels from the tower's current costs.
func (p *UpgradePanel) Refresh(tower *component.Tower) {
	p.Damage.Label = fmt.Sprintf("[D] Damage Lv%d: %d sat", tower.DamageLevel(), tower.DamageUpgradeCost())
	p.FireRate.Label = fmt.Sprintf("[F] Rate Lv%d: %d sat", tower.FireRateLevel(), tower.FireRateUpgradeCost())
}

func (p *UpgradePanel) Draw(screen *ebiten.Image, face font.Face, view interfaces.GameView, tower *component.Tower) {
	p.Refresh(tower)
	p.Damage.Draw(screen, face, view.Currency() >= tower.DamageUpgradeCost())
	p.FireRate.Draw(screen, face, view.Currency() >= tower.FireRateUpgradeCost())
	p.Save.Draw(screen, face, true)
}
