package app

import (
	"github.com/google/uuid"

	"satoshi-defense/internal/component"
	"satoshi-defense/internal/config"
	"satoshi-defense/internal/event"
	"satoshi-defense/internal/interfaces"
	"satoshi-defense/internal/logger"
	"satoshi-defense/internal/save"
	"satoshi-defense/internal/utils"
)

var _ interfaces.GameContext = (*Session)(nil)

// Session собирает игру, башню и сохранение в одно целое для фронтендов.
type Session struct {
	ID              string
	Game            *Game
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	tower           *component.Tower
}

// NewSession builds a game around a centred tower and restores its saved
// upgrade levels. Listeners are subscribed before anything can fire.
func NewSession(settings config.Settings, store save.Store, listeners ...func(*event.Dispatcher)) *Session {
	d := event.NewDispatcher()
	for _, subscribe := range listeners {
		subscribe(d)
	}

	rng := utils.NewPRNGService(settings.Seed)
	g := NewGame(store, rng, d)
	tower := component.NewTower(config.TowerDamage, config.TowerRange,
		component.Vec2{X: config.TowerX, Y: config.TowerY})
	g.RestoreTower(tower)

	s := &Session{
		ID:              uuid.New().String(),
		Game:            g,
		EventDispatcher: d,
		Rng:             rng,
		tower:           tower,
	}
	logger.Game.Info("session %s started: seed=%d currency=%d high score=%d damage lvl=%d fire rate lvl=%d",
		s.ID, rng.Seed(), g.Currency(), g.HighScore(), tower.DamageLevel(), tower.FireRateLevel())
	return s
}

func (s *Session) Tick() {
	s.Game.Update(s.tower)
}

func (s *Session) UpgradeDamage() bool {
	ok := s.Game.TryUpgradeTowerDamage(s.tower)
	if ok {
		logger.Game.Info("damage upgraded to level %d", s.tower.DamageLevel())
	} else {
		logger.Game.Debug("damage upgrade refused: %d < %d", s.Game.Currency(), s.tower.DamageUpgradeCost())
	}
	return ok
}

func (s *Session) UpgradeFireRate() bool {
	ok := s.Game.TryUpgradeTowerFireRate(s.tower)
	if ok {
		logger.Game.Info("fire rate upgraded to level %d", s.tower.FireRateLevel())
	} else {
		logger.Game.Debug("fire rate upgrade refused: %d < %d", s.Game.Currency(), s.tower.FireRateUpgradeCost())
	}
	return ok
}

// Save is the explicit save action. Unlike saves triggered by kills and
// upgrades, its error reaches the caller.
func (s *Session) Save() error {
	if err := s.Game.Save(); err != nil {
		logger.Persistence.Error("manual save failed: %v", err)
		return err
	}
	return nil
}

func (s *Session) View() interfaces.GameView {
	return s.Game
}

func (s *Session) Tower() *component.Tower {
	return s.tower
}

// Close flushes the save record one last time.
func (s *Session) Close() error {
	logger.Game.Info("session %s ended: score=%d time=%.1fs", s.ID, s.Game.Score(), s.Game.Time())
	return s.Save()
}
