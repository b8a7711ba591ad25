package ui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"satoshi-defense/internal/component"
	"satoshi-defense/internal/config"
	"satoshi-defense/internal/event"
	"satoshi-defense/internal/logger"
)

func TestMain(m *testing.M) {
	logger.SetGlobalOutput(io.Discard)
	m.Run()
}

type fakeView struct {
	enemies  []*component.Enemy
	score    int
	currency int
	high     int
	time     float64
}

func (f fakeView) Enemies() []*component.Enemy  { return f.enemies }
func (f fakeView) Bullets() []*component.Bullet { return nil }
func (f fakeView) Score() int                   { return f.score }
func (f fakeView) Currency() int                { return f.currency }
func (f fakeView) HighScore() int               { return f.high }
func (f fakeView) Time() float64                { return f.time }

func TestButtonClickDebounce(t *testing.T) {
	b := NewButton(10, 10, 100, 20, "ok")
	now := time.Now()

	tests := []struct {
		name string
		x, y int
		at   time.Time
		want bool
	}{
		{"outside", 5, 5, now, false},
		{"first click", 20, 15, now, true},
		{"too soon", 20, 15, now.Add(100 * time.Millisecond), false},
		{"after cooldown", 20, 15, now.Add(time.Duration(config.ClickCooldown+1) * time.Millisecond), true},
		{"right edge is exclusive", 110, 15, now.Add(time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Click(tt.x, tt.y, tt.at); got != tt.want {
				t.Errorf("Click(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestUpgradePanelHandleClick(t *testing.T) {
	p := NewUpgradePanel()
	now := time.Now()
	center := func(b *Button) (int, int) {
		return b.Rect.Min.X + b.Rect.Dx()/2, b.Rect.Min.Y + b.Rect.Dy()/2
	}

	x, y := center(p.Damage)
	if a := p.HandleClick(x, y, now); a != ActionUpgradeDamage {
		t.Errorf("damage button gave %v", a)
	}
	x, y = center(p.FireRate)
	if a := p.HandleClick(x, y, now); a != ActionUpgradeFireRate {
		t.Errorf("fire rate button gave %v", a)
	}
	x, y = center(p.Save)
	if a := p.HandleClick(x, y, now); a != ActionSave {
		t.Errorf("save button gave %v", a)
	}
	if a := p.HandleClick(config.TowerX, config.TowerY, now); a != ActionNone {
		t.Errorf("click on the field gave %v", a)
	}
	if p.Contains(config.TowerX, config.TowerY) {
		t.Error("panel must not cover the tower")
	}
}

func TestUpgradePanelRefresh(t *testing.T) {
	p := NewUpgradePanel()
	tower := component.NewTower(config.TowerDamage, config.TowerRange, component.Vec2{})
	tower.UpgradeDamage()
	p.Refresh(tower)

	if !strings.Contains(p.Damage.Label, "Lv2") || !strings.Contains(p.Damage.Label, "40 sat") {
		t.Errorf("damage label = %q", p.Damage.Label)
	}
	if !strings.Contains(p.FireRate.Label, "25 sat") {
		t.Errorf("fire rate label = %q", p.FireRate.Label)
	}
}

func TestHUDToasts(t *testing.T) {
	d := event.NewDispatcher()
	h := NewHUD(nil)
	h.Subscribe(d)

	tests := []struct {
		name string
		ev   event.Event
		want string
	}{
		{"saved", event.Event{Type: event.GameSaved}, "Game saved"},
		{"save failed", event.Event{Type: event.SaveFailed, Data: errors.New("disk full")}, "Save failed!"},
		{"upgrade", event.Event{Type: event.TowerUpgraded, Data: event.UpgradeData{Kind: event.UpgradeDamage, Level: 2, Cost: 20}},
			"damage upgraded to level 2 (-20 sat)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d.Dispatch(tt.ev)
			if got := h.CurrentToast(); got != tt.want {
				t.Errorf("toast = %q, want %q", got, tt.want)
			}
		})
	}

	h.Update(config.ToastDuration + 0.1)
	if got := h.CurrentToast(); got != "" {
		t.Errorf("toast should expire, got %q", got)
	}

	// Kills do not toast.
	d.Dispatch(event.Event{Type: event.EnemyKilled})
	if got := h.CurrentToast(); got != "" {
		t.Errorf("kill produced toast %q", got)
	}
}

func TestLines(t *testing.T) {
	tower := component.NewTower(config.TowerDamage, config.TowerRange, component.Vec2{})
	view := fakeView{
		enemies:  []*component.Enemy{component.NewEnemy(100, 2, component.Vec2{})},
		score:    30,
		currency: 15,
		high:     90,
		time:     12.5,
	}
	got := strings.Join(Lines(view, tower), "\n")
	for _, want := range []string{"Score: 30", "High score: 90", "Satoshis: 15", "Damage: 10 (Lv1)", "Cooldown: 0.50s", "Enemies: 1", "Time: 12.5s"} {
		if !strings.Contains(got, want) {
			t.Errorf("HUD lines missing %q:\n%s", want, got)
		}
	}
}

func TestHealthBarFill(t *testing.T) {
	e := component.NewEnemy(100, 2, component.Vec2{})
	if got := HealthBarFill(e); got != config.HealthBarWidth {
		t.Errorf("full health fill = %v, want %v", got, config.HealthBarWidth)
	}
	e.ApplyDamage(75)
	if got := HealthBarFill(e); got != config.HealthBarWidth/4 {
		t.Errorf("quarter health fill = %v, want %v", got, config.HealthBarWidth/4)
	}
}
