// internal/interfaces/game_context.go
package interfaces

import "satoshi-defense/internal/component"

// GameContext is what a frontend drives: one tick per call plus the
// player's actions. app.Session implements it.
type GameContext interface {
	Tick()
	UpgradeDamage() bool
	UpgradeFireRate() bool
	Save() error
	View() GameView
	Tower() *component.Tower
}
