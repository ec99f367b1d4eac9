// internal/audio/sounds.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType — форма волны осциллятора
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// Sound identifies one of the game's synthesized cues.
type Sound int

const (
	SoundAttack Sound = iota
	SoundStrongAttack
	SoundGold
	SoundBaseDestroyed
)

const (
	attackDuration        = 90 * time.Millisecond
	strongAttackDuration  = 350 * time.Millisecond
	goldDuration          = 120 * time.Millisecond
	baseDestroyedDuration = 900 * time.Millisecond
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream out exponentially so short cues end without a click.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	speed    float64
	position int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.position) / float64(d.rate)
		vol := math.Exp(-t * d.speed)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s in a linear volume. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewSound builds the streamer for a cue at the given volume.
func NewSound(sound Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch sound {
	case SoundAttack:
		s = &decay{streamer: NewOscillator(660, attackDuration, WaveSquare, rate), rate: rate, speed: 30}
		volume *= 0.25
	case SoundStrongAttack:
		s = beep.Mix(
			&decay{streamer: NewOscillator(110, strongAttackDuration, WaveSaw, rate), rate: rate, speed: 8},
			newVolume(NewOscillator(220, strongAttackDuration, WaveSine, rate), 0.5),
		)
		volume *= 0.4
	case SoundGold:
		s = beep.Seq(
			NewOscillator(988, goldDuration/2, WaveSine, rate),
			NewOscillator(1319, goldDuration/2, WaveSine, rate),
		)
		volume *= 0.3
	case SoundBaseDestroyed:
		s = &decay{streamer: NewOscillator(55, baseDestroyedDuration, WaveSaw, rate), rate: rate, speed: 3}
		volume *= 0.5
	default:
		s = beep.Silence(0)
	}
	return newVolume(s, volume)
}
