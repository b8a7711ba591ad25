// Package audio plays short synthesized tones for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"satoshi-defense/internal/event"
	"satoshi-defense/internal/logger"
)

const sampleRate = beep.SampleRate(44100)

// Tone описывает один короткий звук.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // в единицах effects.Volume, основание 2
}

// Tones played per event type. Shots are quiet so they do not drown kills.
var Tones = map[event.EventType]Tone{
	event.BulletFired:   {Freq: 880, Duration: 30 * time.Millisecond, Volume: -3},
	event.EnemyKilled:   {Freq: 440, Duration: 120 * time.Millisecond, Volume: -1},
	event.TowerUpgraded: {Freq: 660, Duration: 200 * time.Millisecond, Volume: -1},
	event.SaveFailed:    {Freq: 120, Duration: 250 * time.Millisecond, Volume: 0},
}

// SoundManager subscribes to game events and turns them into tones.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
	played      map[event.EventType]int
}

func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		muted:  muted,
		played: make(map[event.EventType]int),
	}
}

// Initialize opens the speaker. Failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Subscribe registers the manager for every event that has a tone.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	for t := range Tones {
		d.Subscribe(t, sm)
	}
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	tone, ok := Tones[e.Type]
	if !ok {
		return
	}

	sm.mu.Lock()
	sm.played[e.Type]++
	active := sm.initialized && !sm.muted
	sm.mu.Unlock()

	if active {
		sm.play(tone)
	}
}

func (sm *SoundManager) play(t Tone) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		logger.Audio.Warn("cannot build %v Hz tone: %v", t.Freq, err)
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.Duration), sine),
		Base:     2,
		Volume:   t.Volume,
	})
}

// Played returns how many times a tone was requested for the event type,
// muted or not.
func (sm *SoundManager) Played(t event.EventType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[t]
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// ToggleMute flips the mute flag. Unmuting opens the speaker if it was never
// opened, so a game started with -mute can still turn sound on.
func (sm *SoundManager) ToggleMute() (muted bool, err error) {
	muted = !sm.Muted()
	sm.SetMuted(muted)
	if !muted {
		err = sm.Initialize()
	}
	return muted, err
}

// Cleanup stops playback and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
