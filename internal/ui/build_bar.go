// internal/ui/build_bar.go
package ui

import (
	"fmt"
	"image/color"

	"tower-of-derp/internal/config"
	"tower-of-derp/internal/defs"
	"tower-of-derp/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var hotkeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// TowerIcon — иконка башни в панели строительства
type TowerIcon struct {
	Kind   defs.TowerKind
	Cost   uint32
	X, Y   float32
	Size   float32
	Hotkey ebiten.Key
}

func (i TowerIcon) Contains(p utils.Vec) bool {
	return p.X >= float64(i.X) && p.X < float64(i.X+i.Size) &&
		p.Y >= float64(i.Y) && p.Y < float64(i.Y+i.Size)
}

// BuildBar lets the player pick which tower the next click places.
type BuildBar struct {
	Icons    []TowerIcon
	Selected defs.TowerKind
	hovering int // index of the hovered icon, -1 for none
	face     font.Face
}

// NewBuildBar lays the icons out left to right in the UI strip, bound to the
// number keys in order.
func NewBuildBar(towers map[defs.TowerKind]defs.TowerDefinition, face font.Face) *BuildBar {
	bar := &BuildBar{Selected: defs.AllTowerKinds[0], hovering: -1, face: face}
	top := float32(config.ScreenHeight - config.UIHeight + config.BuildBarY)
	for i, kind := range defs.AllTowerKinds {
		bar.Icons = append(bar.Icons, TowerIcon{
			Kind:   kind,
			Cost:   towers[kind].Cost,
			X:      float32(config.BuildBarX + i*(config.BuildIconSize+config.BuildIconMargin)),
			Y:      top,
			Size:   config.BuildIconSize,
			Hotkey: hotkeys[i%len(hotkeys)],
		})
	}
	return bar
}

// IconAt returns the icon under p.
func (b *BuildBar) IconAt(p utils.Vec) (TowerIcon, bool) {
	for _, icon := range b.Icons {
		if icon.Contains(p) {
			return icon, true
		}
	}
	return TowerIcon{}, false
}

// Hover updates the hovered icon.
func (b *BuildBar) Hover(p utils.Vec) {
	b.hovering = -1
	for i, icon := range b.Icons {
		if icon.Contains(p) {
			b.hovering = i
			return
		}
	}
}

// Click selects the icon under p and reports whether there was one.
func (b *BuildBar) Click(p utils.Vec) bool {
	icon, ok := b.IconAt(p)
	if ok {
		b.Selected = icon.Kind
	}
	return ok
}

// HandleKeys selects a tower by its hotkey.
func (b *BuildBar) HandleKeys(justPressed func(ebiten.Key) bool) {
	for _, icon := range b.Icons {
		if justPressed(icon.Hotkey) {
			b.Selected = icon.Kind
		}
	}
}

func (b *BuildBar) Draw(screen *ebiten.Image, gold uint32) {
	for i, icon := range b.Icons {
		bg := config.UIBackgroundColor
		if i == b.hovering {
			bg = config.IconHoverColor
		}
		vector.DrawFilledRect(screen, icon.X, icon.Y, icon.Size, icon.Size, bg, false)

		pad := icon.Size * 0.2
		fill := config.TowerColors[icon.Kind.String()]
		if gold < icon.Cost {
			fill = color.RGBA{fill.R / 3, fill.G / 3, fill.B / 3, 255}
		}
		vector.DrawFilledRect(screen, icon.X+pad, icon.Y+pad, icon.Size-2*pad, icon.Size-2*pad, fill, false)

		if icon.Kind == b.Selected {
			vector.StrokeRect(screen, icon.X, icon.Y, icon.Size, icon.Size, 2, config.IconSelectedColor, false)
		}

		label := fmt.Sprintf("%d: %dg", i+1, icon.Cost)
		text.Draw(screen, label, b.face, int(icon.X), int(icon.Y+icon.Size)+14, config.TextLightColor)
	}
}
