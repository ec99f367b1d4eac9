// internal/ui/button.go
package ui

import (
	"image/color"

	"tower-of-derp/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	TextColor           color.Color
	BgColor             color.Color
	HoverColor          color.Color
	Face                font.Face
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float32, label string, face font.Face) *Button {
	return &Button{
		X: x, Y: y, Width: w, Height: h,
		Text:       label,
		TextColor:  color.Black,
		BgColor:    color.RGBA{200, 200, 200, 255},
		HoverColor: color.RGBA{150, 150, 150, 255},
		Face:       face,
	}
}

// Contains проверяет, находится ли точка над кнопкой.
func (b *Button) Contains(p utils.Vec) bool {
	return p.X >= float64(b.X) && p.X < float64(b.X+b.Width) &&
		p.Y >= float64(b.Y) && p.Y < float64(b.Y+b.Height)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, pointer utils.Vec) {
	bg := b.BgColor
	if b.Contains(pointer) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, color.RGBA{80, 80, 80, 255}, false)

	bounds := text.BoundString(b.Face, b.Text)
	tx := int(b.X) + (int(b.Width)-bounds.Dx())/2
	ty := int(b.Y) + (int(b.Height)+bounds.Dy())/2
	text.Draw(screen, b.Text, b.Face, tx, ty, b.TextColor)
}
