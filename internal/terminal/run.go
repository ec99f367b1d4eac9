// internal/terminal/run.go
package terminal

import (
	"context"
	"log"
	"time"

	"tower-of-derp/internal/app"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

// Run drives sessions on screen until the player quits or ctx is done.
// newGame is called again on every restart. The screen must be initialized;
// Run does not finalize it.
func Run(ctx context.Context, screen tcell.Screen, newGame func() *app.Game, logger *log.Logger) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	start := func() *Controller {
		g := newGame()
		logger.Printf("session %s started", g.ID())
		return NewController(g, app.NewDriver(g, app.RealClock{}), logger)
	}
	ctrl := start()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ctrl.HandleKey(ev) {
				case ActionQuit:
					logger.Printf("session %s quit", ctrl.Game.ID())
					return nil
				case ActionRestart:
					ctrl = start()
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			ctrl.Tick()
			Draw(screen, ctrl.Frame())
		}
	}
}
