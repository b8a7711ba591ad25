// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"satoshi-defense/internal/app"
	"satoshi-defense/internal/audio"
	"satoshi-defense/internal/config"
	"satoshi-defense/internal/logger"
	"satoshi-defense/internal/save"
	"satoshi-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := logger.ParseLevel(settings.LogLevel)
	if err != nil {
		logger.Game.Warn("%v, using INFO", err)
		level = logger.INFO
	}
	logger.SetGlobalLogLevel(level)
	if settings.LogDir != "" {
		closer, err := logger.InitializeFileLogging(settings.LogDir, true)
		if err != nil {
			logger.Game.Warn("file logging disabled: %v", err)
		} else {
			defer closer.Close()
		}
	}

	sounds := audio.NewSoundManager(settings.Mute)
	if err := sounds.Initialize(); err != nil {
		logger.Audio.Warn("audio initialization failed, playing silently: %v", err)
	}
	defer sounds.Cleanup()

	session := app.NewSession(settings, save.NewFileStore(settings.SavePath), sounds.Subscribe)
	defer session.Close()

	face := basicfont.Face7x13
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, session, face, sounds))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Satoshi Defense")
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(game); err != nil {
		logger.Game.Error("game loop stopped: %v", err)
	}
}
