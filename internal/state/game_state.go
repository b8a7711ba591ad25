// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"satoshi-defense/internal/app"
	"satoshi-defense/internal/audio"
	"satoshi-defense/internal/config"
	"satoshi-defense/internal/logger"
	"satoshi-defense/internal/ui"
)

var _ State = (*GameState)(nil)

// GameState — состояние игры
type GameState struct {
	sm      *StateMachine
	session *app.Session
	face    font.Face
	step    app.FixedStep
	hud     *ui.HUD
	panel   *ui.UpgradePanel
	sounds  *audio.SoundManager // может быть nil
	debug   bool
}

func NewGameState(sm *StateMachine, session *app.Session, face font.Face, sounds *audio.SoundManager) *GameState {
	hud := ui.NewHUD(face)
	hud.Subscribe(session.EventDispatcher)
	return &GameState{
		sm:      sm,
		session: session,
		face:    face,
		hud:     hud,
		panel:   ui.NewUpgradePanel(),
		sounds:  sounds,
	}
}

// Enter сбрасывает аккумулятор, чтобы время паузы не превратилось в тики.
func (g *GameState) Enter() {
	g.step.Reset()
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
		g.sm.SetState(NewPauseState(g.sm, g, g.face))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	g.handleInput()

	for n := g.step.Advance(deltaTime); n > 0; n-- {
		g.session.Tick()
	}
	g.hud.Update(deltaTime)
}

func (g *GameState) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.apply(ui.ActionUpgradeDamage)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.apply(ui.ActionUpgradeFireRate)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.apply(ui.ActionSave)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.toggleSound()
	}

	x, y := ebiten.CursorPosition()
	if g.panel.Contains(x, y) {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.apply(g.panel.HandleClick(x, y, time.Now()))
	}
}

func (g *GameState) toggleSound() {
	if g.sounds == nil {
		return
	}
	muted, err := g.sounds.ToggleMute()
	switch {
	case err != nil:
		logger.Audio.Warn("cannot enable sound: %v", err)
		g.hud.Toast("Sound unavailable")
	case muted:
		g.hud.Toast("Sound off")
	default:
		g.hud.Toast("Sound on")
	}
}

func (g *GameState) apply(a ui.Action) {
	switch a {
	case ui.ActionUpgradeDamage:
		if !g.session.UpgradeDamage() {
			g.hud.Toast("Not enough satoshis")
		}
	case ui.ActionUpgradeFireRate:
		if !g.session.UpgradeFireRate() {
			g.hud.Toast("Not enough satoshis")
		}
	case ui.ActionSave:
		if err := g.session.Save(); err != nil {
			logger.UI.Warn("save from UI failed: %v", err)
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	view := g.session.View()
	tower := g.session.Tower()
	tp := tower.Position()

	vector.StrokeCircle(screen, float32(tp.X), float32(tp.Y), float32(tower.Range()), 1, config.RangeColor, true)
	vector.DrawFilledRect(screen,
		float32(tp.X-config.TowerHalfSize), float32(tp.Y-config.TowerHalfSize),
		2*config.TowerHalfSize, 2*config.TowerHalfSize, config.TowerColor, false)

	for _, e := range view.Enemies() {
		p := e.Position()
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.EnemyRadius, config.EnemyColor, true)
		ui.DrawHealthBar(screen, e)
	}
	for _, b := range view.Bullets() {
		p := b.Position()
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.BulletRadius, config.BulletColor, true)
	}

	g.hud.Draw(screen, view, tower)
	g.panel.Draw(screen, g.face, view, tower)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
			config.ScreenWidth-160, 4)
	}
}

func (g *GameState) Exit() {}
