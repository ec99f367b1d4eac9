package audio

import (
	"io"
	"log"
	"testing"
	"time"

	"tower-of-derp/internal/event"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, w := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		n, peak := drain(NewOscillator(440, 50*time.Millisecond, w, rate))
		assert.Equal(t, rate.N(50*time.Millisecond), n)
		assert.LessOrEqual(t, peak, 1.0)
	}
}

func TestSoundsEnd(t *testing.T) {
	rate := beep.SampleRate(22050)
	for _, s := range []Sound{SoundAttack, SoundStrongAttack, SoundGold, SoundBaseDestroyed} {
		n, peak := drain(NewSound(s, rate, 1))
		assert.Greater(t, n, 0, "sound %d", s)
		assert.Less(t, n, rate.N(2*time.Second), "sound %d", s)
		assert.LessOrEqual(t, peak, 1.0, "sound %d", s)
	}
}

func TestMutedSoundIsSilent(t *testing.T) {
	_, peak := drain(NewSound(SoundAttack, beep.SampleRate(22050), 0))
	assert.Zero(t, peak)
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager(log.New(io.Discard, "", 0))
	d := event.NewDispatcher()
	sm.Subscribe(d)

	assert.NotPanics(t, func() {
		d.Dispatch(event.Event{Type: event.TowerFired})
		d.Dispatch(event.Event{Type: event.BaseDestroyed})
		sm.Cleanup()
	})
	assert.Zero(t, sm.Played(SoundAttack))
}
