// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"tower-of-derp/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — кнопка скорости игры (x1/x2/x4), цвет показывает режим.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	triangleSize := b.Size * pulse(b.LastClickTime)
	clr := b.StateColors[b.CurrentState]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	left := triangle(b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2)
	fillPath(screen, left, clr)
	strokePath(screen, left, 1, color.White)

	right := triangle(b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2)
	fillPath(screen, right, clr)
	strokePath(screen, right, 1, color.White)
}

// IsClicked uses a circle for hit-testing since the shape is irregular.
func (b *SpeedButton) IsClicked(p utils.Vec) bool {
	r := float64(b.Size) * 1.5
	return utils.DistSq(p, utils.Vec{X: float64(b.X), Y: float64(b.Y)}) <= r*r
}

// SetState shows the given speed index.
func (b *SpeedButton) SetState(i int) {
	if i != b.CurrentState {
		b.LastClickTime = time.Now()
	}
	b.CurrentState = i % len(b.StateColors)
}
