// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"tower-of-derp/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — кнопка паузы: две полоски, на паузе превращается в «play».
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	s := b.Size * pulse(b.LastClickTime)

	if b.IsPaused {
		play := triangle(b.X-s, b.Y-s*1.2, b.X-s, b.Y+s*1.2, b.X+s, b.Y)
		fillPath(screen, play, b.PlayColor)
		strokePath(screen, play, 1, color.White)
		return
	}

	width := s * 0.6
	height := s * 2.0
	spacing := s * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, b.PauseColor, false)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, 1, color.White, false)
	}
}

func (b *PauseButton) IsClicked(p utils.Vec) bool {
	r := float64(b.Size) * 1.2
	return utils.DistSq(p, utils.Vec{X: float64(b.X), Y: float64(b.Y)}) <= r*r
}

func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}
