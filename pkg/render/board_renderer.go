// pkg/render/board_renderer.go
package render

import (
	"image/color"

	"tower-of-derp/internal/component"
	"tower-of-derp/internal/config"
	"tower-of-derp/internal/system"
	"tower-of-derp/internal/utils"
	"tower-of-derp/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Frame is everything the renderer reads for one frame.
type Frame struct {
	Towers    []*component.Tower
	Monsters  []*component.Monster
	GoldPiles []*component.GoldPile
	Beams     []system.Beam
	Lasers    []*component.Laser
	Hover     *grid.Cell // highlighted tile, nil when the pointer is off the board
}

// BoardRenderer draws the board in simulation space onto the game canvas.
type BoardRenderer struct {
	colors   *BoardColors
	path     []grid.Cell
	base     component.Base
	mapImage *ebiten.Image // Предрендеренный путь и база
}

func NewBoardRenderer(path []grid.Cell, base component.Base, colors *BoardColors) *BoardRenderer {
	r := &BoardRenderer{colors: colors, path: path, base: base}
	r.RenderMapImage()
	return r
}

// RenderMapImage redraws the static part of the board: background, path
// cells and the base.
func (r *BoardRenderer) RenderMapImage() {
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	}
	r.mapImage.Fill(r.colors.Background)

	for _, c := range r.path {
		o := utils.CellOrigin(c)
		vector.DrawFilledRect(r.mapImage, float32(o.X), float32(o.Y),
			float32(config.BlockSize), float32(config.BlockSize), r.colors.Path, false)
	}

	corner, size := r.base.Bounds()
	vector.DrawFilledRect(r.mapImage, float32(corner.X), float32(corner.Y), float32(size), float32(size), r.colors.Base, false)
	inner := float32(config.BasePadding)
	vector.StrokeRect(r.mapImage, float32(corner.X)+inner, float32(corner.Y)+inner,
		float32(size)-2*inner, float32(size)-2*inner, r.colors.StrokeWidth, DarkenColor(r.colors.Base), false)
}

func (r *BoardRenderer) Draw(screen *ebiten.Image, f Frame) {
	screen.DrawImage(r.mapImage, nil)

	if f.Hover != nil {
		o := utils.CellOrigin(*f.Hover)
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y),
			float32(config.BlockSize), float32(config.BlockSize), WithAlpha(r.colors.SelectedTile, 0.6), false)
	}

	for _, t := range f.Towers {
		r.drawTower(screen, t)
	}
	for _, g := range f.GoldPiles {
		r.drawGoldPile(screen, g)
	}
	for _, m := range f.Monsters {
		vector.DrawFilledRect(screen, float32(m.Position.X), float32(m.Position.Y),
			float32(m.Size), float32(m.Size), r.colors.Monster, false)
	}
	for _, b := range f.Beams {
		vector.StrokeLine(screen, float32(b.From.X), float32(b.From.Y), float32(b.To.X), float32(b.To.Y),
			float32(config.BeamWidth), r.colors.Beam, true)
	}
	for _, l := range f.Lasers {
		vector.StrokeLine(screen, float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y),
			float32(config.BeamWidth)*2, WithAlpha(l.Color, l.Alpha()), true)
	}
}

func (r *BoardRenderer) drawTower(screen *ebiten.Image, t *component.Tower) {
	fill, ok := r.colors.Towers[t.Kind.String()]
	if !ok {
		fill = color.RGBA{200, 200, 200, 255}
	}
	o := utils.CellOrigin(t.Cell)
	pad := float32(3)
	size := float32(config.BlockSize) - 2*pad
	vector.DrawFilledRect(screen, float32(o.X)+pad, float32(o.Y)+pad, size, size, fill, false)
	vector.StrokeRect(screen, float32(o.X)+pad, float32(o.Y)+pad, size, size, r.colors.StrokeWidth, DarkenColor(fill), false)

	// Готовность сильной атаки ниндзя: кружок в центре
	if t.Def.Strong != nil && t.StrongCooldown == 0 {
		c := t.Center()
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), 4, r.colors.Beam, true)
	}
}

func (r *BoardRenderer) drawGoldPile(screen *ebiten.Image, g *component.GoldPile) {
	half := float32(g.Size / 2)
	cx, cy := float32(g.Position.X)+half, float32(g.Position.Y)+half
	vector.DrawFilledCircle(screen, cx, cy, half*0.8, r.colors.Gold, true)
	vector.StrokeCircle(screen, cx, cy, half*0.8, 1, DarkenColor(r.colors.Gold), true)
}
