// pkg/render/color.go
package render

import "image/color"

// BoardColors holds all the color definitions the board renderer needs.
type BoardColors struct {
	Background   color.RGBA
	Path         color.RGBA
	Base         color.RGBA
	Monster      color.RGBA
	Gold         color.RGBA
	Beam         color.RGBA
	SelectedTile color.RGBA
	Towers       map[string]color.RGBA
	StrokeWidth  float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha channel scaled by a in [0, 1].
func WithAlpha(c color.Color, a float32) color.RGBA {
	r, g, b, al := c.RGBA()
	k := float64(a)
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	// premultiplied: every channel scales with alpha
	return color.RGBA{
		R: uint8(float64(r>>8) * k),
		G: uint8(float64(g>>8) * k),
		B: uint8(float64(b>>8) * k),
		A: uint8(float64(al>>8) * k),
	}
}
