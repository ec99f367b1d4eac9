// internal/terminal/view.go
package terminal

import (
	"fmt"
	"image/color"
	"strings"

	"tower-of-derp/internal/app"
	"tower-of-derp/internal/config"
	"tower-of-derp/internal/defs"
	"tower-of-derp/internal/utils"
	"tower-of-derp/pkg/grid"

	"github.com/gdamore/tcell/v2"
)

// Размер поля в клетках (800/35 и 420/35, с неполной последней колонкой).
// Одна клетка занимает CellWidth колонок терминала.
const (
	Cols      = 23
	Rows      = 12
	CellWidth = 2
)

type Glyph int

const (
	GlyphEmpty Glyph = iota
	GlyphPath
	GlyphBase
	GlyphBasicTower
	GlyphNinjaTower
	GlyphMonster
	GlyphGold
	GlyphHit
)

var glyphText = map[Glyph]string{
	GlyphEmpty:      "  ",
	GlyphPath:       "..",
	GlyphBase:       "##",
	GlyphBasicTower: "[]",
	GlyphNinjaTower: "<>",
	GlyphMonster:    "()",
	GlyphGold:       "$$",
	GlyphHit:        "**",
}

// ViewState is what the terminal adds on top of the simulation.
type ViewState struct {
	Cursor   grid.Cell
	Selected defs.TowerKind
	Speed    float64
	Paused   bool
	Message  string
}

// Frame is one rendered screen: the board glyphs plus the text lines below it.
type Frame struct {
	Cells  [Rows][Cols]Glyph
	Cursor grid.Cell
	Text   []string
}

func inBoard(c grid.Cell) bool {
	return c.X >= 0 && c.X < Cols && c.Y >= 0 && c.Y < Rows
}

// BuildFrame snapshots the game. Later layers overwrite earlier ones:
// path, base, towers, gold, monsters, strong-attack hits.
func BuildFrame(g *app.Game, v ViewState) Frame {
	f := Frame{Cursor: v.Cursor}
	set := func(c grid.Cell, glyph Glyph) {
		if inBoard(c) {
			f.Cells[c.Y][c.X] = glyph
		}
	}

	for _, c := range g.Path() {
		set(c, GlyphPath)
	}
	set(g.Base().Cell, GlyphBase)
	for _, t := range g.Towers() {
		switch t.Kind {
		case defs.TowerNinja:
			set(t.Cell, GlyphNinjaTower)
		default:
			set(t.Cell, GlyphBasicTower)
		}
	}
	for _, p := range g.GoldPiles() {
		set(utils.CellAt(p.Position.Add(utils.Vec{X: p.Size / 2, Y: p.Size / 2})), GlyphGold)
	}
	for _, m := range g.Monsters() {
		if m.Alive() {
			set(utils.CellAt(m.Center()), GlyphMonster)
		}
	}
	for _, l := range g.Lasers() {
		set(utils.CellAt(l.To), GlyphHit)
	}

	f.Text = statusLines(g, v)
	return f
}

func statusLines(g *app.Game, v ViewState) []string {
	player := g.PlayerState()
	stats := g.Statistics()

	status := fmt.Sprintf("Gold: %d  HP: %.0f  Kills: %d  Monsters: %d  x%g",
		player.Gold, player.Health, stats.Kills, g.SpawnerSystem.ActiveMonsters(), v.Speed)
	if v.Paused {
		status += "  [PAUSED]"
	}

	var build []string
	for i, kind := range defs.AllTowerKinds {
		def := g.Config().Towers[kind]
		mark := " "
		if kind == v.Selected {
			mark = ">"
		}
		build = append(build, fmt.Sprintf("%s[%d] %s %dg", mark, i+1, def.Name, def.Cost))
	}

	economy := fmt.Sprintf("Spent: %d  Collected: %d  Base damage: %.0f",
		stats.GoldSpent, stats.GoldCollected, stats.BaseDamage)

	help := "arrows move  space build  g gold  p pause  tab speed  q quit"
	if g.Over() {
		help = fmt.Sprintf("GAME OVER  survived %.0fs  r restart  q quit", stats.ElapsedSeconds)
	}

	lines := []string{status, strings.Join(build, "  "), economy, describeCell(g, v.Cursor), help}
	if v.Message != "" {
		lines = append(lines, v.Message)
	}
	lines = append(lines, "session "+g.ID())
	return lines
}

// describeCell says what stands under the cursor.
func describeCell(g *app.Game, c grid.Cell) string {
	what := "empty"
	switch t, ok := g.Board.TowerAt(c); {
	case ok:
		what = g.Config().Towers[t.Kind].Name + " tower"
	case c == g.Base().Cell:
		what = "base"
	case g.Board.OnPath(c):
		what = "path"
	}
	return fmt.Sprintf("cursor %s: %s", c, what)
}

// Lines renders the frame as plain text, one string per terminal row.
func (f Frame) Lines() []string {
	lines := make([]string, 0, Rows+len(f.Text))
	for y := 0; y < Rows; y++ {
		var b strings.Builder
		for x := 0; x < Cols; x++ {
			b.WriteString(glyphText[f.Cells[y][x]])
		}
		lines = append(lines, b.String())
	}
	return append(lines, f.Text...)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	boardStyle = tcell.StyleDefault.Background(rgb(config.BackgroundColor))
	textStyle  = tcell.StyleDefault.Foreground(rgb(config.TextLightColor)).Background(rgb(config.UIBackgroundColor))
)

func glyphStyle(g Glyph) tcell.Style {
	switch g {
	case GlyphPath:
		return boardStyle.Foreground(rgb(config.PathColor))
	case GlyphBase:
		return boardStyle.Foreground(rgb(config.BaseColor)).Bold(true)
	case GlyphBasicTower:
		return boardStyle.Foreground(rgb(config.TowerColors[string(defs.TowerBasic)])).Bold(true)
	case GlyphNinjaTower:
		return boardStyle.Foreground(rgb(config.TowerColors[string(defs.TowerNinja)])).Bold(true)
	case GlyphMonster:
		return boardStyle.Foreground(rgb(config.MonsterColor)).Bold(true)
	case GlyphGold:
		return boardStyle.Foreground(rgb(config.GoldColor))
	case GlyphHit:
		return boardStyle.Foreground(rgb(config.StrongBeamColor)).Bold(true)
	}
	return boardStyle
}

// Draw puts the frame on screen and shows it.
func Draw(screen tcell.Screen, f Frame) {
	screen.Clear()
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			glyph := f.Cells[y][x]
			style := glyphStyle(glyph)
			if f.Cursor == (grid.Cell{X: x, Y: y}) {
				style = style.Background(rgb(config.SelectedTileColor))
			}
			for i, r := range glyphText[glyph] {
				screen.SetContent(x*CellWidth+i, y, r, nil, style)
			}
		}
	}
	for i, line := range f.Text {
		drawText(screen, 0, Rows+i, line, textStyle)
	}
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
