// internal/app/driver.go
package app

import (
	"time"

	"tower-of-derp/internal/config"
)

// Ticker is anything the Driver can advance. *Game implements it.
type Ticker interface {
	Tick(elapsed float64)
}

// Driver turns host frame callbacks into simulation ticks. Elapsed time is the
// wall-clock gap since the end of the previous update, clamped to
// config.MaxDeltaTime and scaled by the speed multiplier.
type Driver struct {
	target     Ticker
	clock      Clock
	last       time.Time
	speedIndex int
	paused     bool
}

func NewDriver(target Ticker, clock Clock) *Driver {
	if clock == nil {
		clock = RealClock{}
	}
	return &Driver{target: target, clock: clock, last: clock.Now()}
}

// Update runs one tick and returns the elapsed seconds handed to it.
func (d *Driver) Update() float64 {
	dt := d.clock.Now().Sub(d.last).Seconds()
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	if dt < 0 {
		dt = 0
	}

	var scaled float64
	if !d.paused {
		scaled = dt * d.Speed()
		d.target.Tick(scaled)
	}
	d.last = d.clock.Now()
	return scaled
}

// Reset restarts the frame measurement, so time spent outside the game
// (a menu, a pause screen) is not fed to the next tick.
func (d *Driver) Reset() {
	d.last = d.clock.Now()
}

// Speed returns the current multiplier.
func (d *Driver) Speed() float64 {
	return config.SpeedMultipliers[d.speedIndex]
}

// SpeedIndex returns the position of the current multiplier in
// config.SpeedMultipliers.
func (d *Driver) SpeedIndex() int {
	return d.speedIndex
}

// CycleSpeed switches x1 -> x2 -> x4 -> x1.
func (d *Driver) CycleSpeed() {
	d.speedIndex = (d.speedIndex + 1) % len(config.SpeedMultipliers)
}

func (d *Driver) Paused() bool { return d.paused }

func (d *Driver) TogglePause() {
	d.paused = !d.paused
}
