// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"satoshi-defense/internal/app"
	"satoshi-defense/internal/audio"
	"satoshi-defense/internal/config"
)

// MenuState: стартовый экран, Space начинает игру.
type MenuState struct {
	sm      *StateMachine
	session *app.Session
	face    font.Face
	sounds  *audio.SoundManager
}

func NewMenuState(sm *StateMachine, session *app.Session, face font.Face, sounds *audio.SoundManager) *MenuState {
	return &MenuState{sm: sm, session: session, face: face, sounds: sounds}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.sm.SetState(NewGameState(m.sm, m.session, m.face, m.sounds))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		m.sm.RequestQuit()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	view := m.session.View()
	lines := []string{
		"SATOSHI DEFENSE",
		"",
		fmt.Sprintf("High score: %d   Satoshis: %d", view.HighScore(), view.Currency()),
		"",
		"SPACE - start    ESC - quit",
		"in game: D/F upgrade  S save  M sound  P pause",
	}
	for i, line := range lines {
		w := text.BoundString(m.face, line).Dx()
		text.Draw(screen, line, m.face, (config.ScreenWidth-w)/2, config.ScreenHeight/2-40+i*18, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
