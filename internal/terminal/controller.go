// internal/terminal/controller.go
package terminal

import (
	"log"

	"tower-of-derp/internal/app"
	"tower-of-derp/internal/defs"
	"tower-of-derp/pkg/grid"

	"github.com/gdamore/tcell/v2"
)

type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRestart
)

// Controller owns the cursor and feeds keyboard input into one game session.
type Controller struct {
	Game     *app.Game
	Driver   *app.Driver
	cursor   grid.Cell
	selected defs.TowerKind
	message  string
	logger   *log.Logger
}

func NewController(game *app.Game, driver *app.Driver, logger *log.Logger) *Controller {
	return &Controller{
		Game:     game,
		Driver:   driver,
		cursor:   grid.Cell{X: Cols / 2, Y: Rows / 2},
		selected: defs.TowerBasic,
		logger:   logger,
	}
}

func (c *Controller) Cursor() grid.Cell        { return c.cursor }
func (c *Controller) Selected() defs.TowerKind { return c.selected }

// Tick advances the simulation one frame. Gold under the cursor is picked up
// every frame, like hovering with the mouse.
func (c *Controller) Tick() {
	c.Driver.Update()
	if !c.Game.Over() {
		c.Game.CollectGoldInCell(c.cursor)
	}
}

func (c *Controller) View() ViewState {
	return ViewState{
		Cursor:   c.cursor,
		Selected: c.selected,
		Speed:    c.Driver.Speed(),
		Paused:   c.Driver.Paused(),
		Message:  c.message,
	}
}

func (c *Controller) Frame() Frame {
	return BuildFrame(c.Game, c.View())
}

func (c *Controller) move(dx, dy int) {
	next := grid.Cell{X: c.cursor.X + dx, Y: c.cursor.Y + dy}
	if inBoard(next) {
		c.cursor = next
	}
}

func (c *Controller) build() {
	if err := c.Game.PlaceTower(c.selected, c.cursor); err != nil {
		c.message = err.Error()
		return
	}
	c.message = ""
}

// HandleKey applies one key press.
func (c *Controller) HandleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		c.move(0, -1)
	case tcell.KeyDown:
		c.move(0, 1)
	case tcell.KeyLeft:
		c.move(-1, 0)
	case tcell.KeyRight:
		c.move(1, 0)
	case tcell.KeyEnter:
		c.build()
	case tcell.KeyTab:
		c.Driver.CycleSpeed()
	case tcell.KeyRune:
		return c.handleRune(ev.Rune())
	}
	return ActionNone
}

func (c *Controller) handleRune(r rune) Action {
	switch r {
	case 'q':
		return ActionQuit
	case 'r':
		if c.Game.Over() {
			return ActionRestart
		}
	case 'h':
		c.move(-1, 0)
	case 'j':
		c.move(0, 1)
	case 'k':
		c.move(0, -1)
	case 'l':
		c.move(1, 0)
	case ' ':
		c.build()
	case 'g':
		if got := c.Game.CollectGoldInCell(c.cursor); got > 0 && c.logger != nil {
			c.logger.Printf("collected %d gold at %s", got, c.cursor)
		}
	case 'p':
		c.Driver.TogglePause()
	case '+':
		c.Driver.CycleSpeed()
	default:
		if r >= '1' && r <= '9' {
			if i := int(r - '1'); i < len(defs.AllTowerKinds) {
				c.selected = defs.AllTowerKinds[i]
			}
		}
	}
	return ActionNone
}
