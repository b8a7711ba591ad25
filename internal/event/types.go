// internal/event/types.go
package event

import "satoshi-defense/internal/types"

const (
	EnemySpawned  EventType = "EnemySpawned"  // Data: EnemyData
	BulletFired   EventType = "BulletFired"   // Data: nil
	EnemyKilled   EventType = "EnemyKilled"   // Data: EnemyData
	TowerUpgraded EventType = "TowerUpgraded" // Data: UpgradeData
	GameSaved     EventType = "GameSaved"     // Data: nil
	SaveFailed    EventType = "SaveFailed"    // Data: error
)

type EnemyData struct {
	ID   types.EntityID
	X, Y float64
}

// UpgradeKind names an upgrade track.
type UpgradeKind string

const (
	UpgradeDamage   UpgradeKind = "damage"
	UpgradeFireRate UpgradeKind = "fire_rate"
)

type UpgradeData struct {
	Kind  UpgradeKind
	Level int
	Cost  int
}
