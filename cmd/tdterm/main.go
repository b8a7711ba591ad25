// cmd/tdterm/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"satoshi-defense/internal/app"
	"satoshi-defense/internal/audio"
	"satoshi-defense/internal/config"
	"satoshi-defense/internal/event"
	"satoshi-defense/internal/logger"
	"satoshi-defense/internal/save"
)

const hudRows = 2

var (
	styleDefault = tcell.StyleDefault
	styleTower   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleRange   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

type terminalGame struct {
	screen  tcell.Screen
	session *app.Session
	sounds  *audio.SoundManager
	paused  bool
	status  string
	until   time.Time
}

func newTerminalGame(session *app.Session, sounds *audio.SoundManager) (*terminalGame, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(styleDefault)
	screen.HideCursor()

	g := &terminalGame{screen: screen, session: session, sounds: sounds}
	session.EventDispatcher.SubscribeAll(event.ListenerFunc(g.onEvent),
		event.TowerUpgraded, event.GameSaved, event.SaveFailed)
	return g, nil
}

func (g *terminalGame) onEvent(e event.Event) {
	switch e.Type {
	case event.TowerUpgraded:
		if u, ok := e.Data.(event.UpgradeData); ok {
			g.flash(fmt.Sprintf("%s -> level %d", u.Kind, u.Level))
		}
	case event.GameSaved:
		g.flash("saved")
	case event.SaveFailed:
		g.flash("save failed")
	}
}

func (g *terminalGame) flash(msg string) {
	g.status = msg
	g.until = time.Now().Add(time.Duration(config.ToastDuration * float64(time.Second)))
}

// handleInput returns false when the player wants to quit.
func (g *terminalGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'p':
			g.paused = !g.paused
		case 'd':
			if !g.session.UpgradeDamage() {
				g.flash("not enough satoshis")
			}
		case 'f':
			if !g.session.UpgradeFireRate() {
				g.flash("not enough satoshis")
			}
		case 's':
			if err := g.session.Save(); err != nil {
				logger.UI.Warn("save from terminal failed: %v", err)
			}
		case 'm':
			muted, err := g.sounds.ToggleMute()
			switch {
			case err != nil:
				logger.Audio.Warn("cannot enable sound: %v", err)
				g.flash("sound unavailable")
			case muted:
				g.flash("sound off")
			default:
				g.flash("sound on")
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *terminalGame) draw() {
	g.screen.Clear()
	w, h := g.screen.Size()
	fieldH := h - hudRows
	if w <= 0 || fieldH <= 0 {
		g.screen.Show()
		return
	}

	view := g.session.View()
	tower := g.session.Tower()
	tp := tower.Position()

	for _, p := range rangeOutline(tp.X, tp.Y, tower.Range(), w, fieldH) {
		g.screen.SetContent(p.X, p.Y, '.', nil, styleRange)
	}
	tx, ty := toCell(tp.X, tp.Y, w, fieldH)
	g.screen.SetContent(tx, ty, 'T', nil, styleTower)

	for _, e := range view.Enemies() {
		p := e.Position()
		x, y := toCell(p.X, p.Y, w, fieldH)
		style := tcell.StyleDefault.Foreground(healthColor(e.HealthFraction()))
		g.screen.SetContent(x, y, 'E', nil, style)
	}
	for _, b := range view.Bullets() {
		p := b.Position()
		x, y := toCell(p.X, p.Y, w, fieldH)
		g.screen.SetContent(x, y, '*', nil, styleBullet)
	}

	hud := fmt.Sprintf("score %d  hi %d  sat %d  dmg %d(L%d)  cd %.2fs(L%d)  t %.0fs",
		view.Score(), view.HighScore(), view.Currency(),
		tower.Damage(), tower.DamageLevel(), tower.ShootCooldown(), tower.FireRateLevel(), view.Time())
	drawText(g.screen, 0, fieldH, hud, styleHUD)

	help := fmt.Sprintf("[d] dmg %d  [f] rate %d  [s] save  [m] sound  [p] pause  [q] quit",
		tower.DamageUpgradeCost(), tower.FireRateUpgradeCost())
	if g.paused {
		help = "PAUSED  " + help
	}
	if time.Now().Before(g.until) {
		help += "  | " + g.status
	}
	drawText(g.screen, 0, fieldH+1, help, styleStatus)

	g.screen.Show()
}

func (g *terminalGame) run() {
	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if !g.paused {
				g.session.Tick()
			}
			g.draw()
		}
	}
}

func (g *terminalGame) cleanup() {
	g.screen.Fini()
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
	if settings.LogDir == "" {
		settings.LogDir = "logs"
	}

	// stdout занят экраном, логи только в файл.
	closer, err := logger.InitializeFileLogging(settings.LogDir, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()
	if level, err := logger.ParseLevel(settings.LogLevel); err == nil {
		logger.SetGlobalLogLevel(level)
	}

	sounds := audio.NewSoundManager(settings.Mute)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Audio.Warn("audio initialization failed: %v", err)
	}
	defer sounds.Cleanup()

	session := app.NewSession(settings, save.NewFileStore(settings.SavePath), sounds.Subscribe)
	defer session.Close()

	g, err := newTerminalGame(session, sounds)
	if err != nil {
		logger.UI.Error("cannot open terminal: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer g.cleanup()

	g.run()
}
