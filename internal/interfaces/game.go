package interfaces

import "satoshi-defense/internal/component"

// GameView: то, что видит слой отображения. Только чтение.
type GameView interface {
	Enemies() []*component.Enemy
	Bullets() []*component.Bullet
	Score() int
	Currency() int
	HighScore() int
	Time() float64
}
