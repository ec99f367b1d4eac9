// internal/audio/sound_manager.go
package audio

import (
	"log"
	"sync"
	"time"

	"tower-of-derp/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays attack and economy cues off game events. Until
// Initialize succeeds every Play is a no-op, so a machine without an audio
// device runs the game silently.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
	played      map[Sound]int
}

func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1.0,
		logger: logger,
		played: make(map[Sound]int),
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		sm.logger.Printf("audio: speaker init failed, running silent: %v", err)
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops everything that is still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetVolume sets the master volume, 0 mutes.
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	sm.volume = v
	sm.mu.Unlock()
}

func (sm *SoundManager) Play(sound Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.played[sound]++
	s := NewSound(sound, sampleRate, sm.volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Subscribe registers the manager for the events it has cues for.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm,
		event.TowerFired,
		event.StrongAttackFired,
		event.GoldCollected,
		event.BaseDestroyed,
	)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.TowerFired:
		sm.Play(SoundAttack)
	case event.StrongAttackFired:
		sm.Play(SoundStrongAttack)
	case event.GoldCollected:
		sm.Play(SoundGold)
	case event.BaseDestroyed:
		sm.Play(SoundBaseDestroyed)
	}
}

// Played returns how many times a cue has been started.
func (sm *SoundManager) Played(sound Sound) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[sound]
}
