// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"tower-of-derp/internal/audio"
	"tower-of-derp/internal/config"
	"tower-of-derp/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine *state.StateMachine
	canvas       *ebiten.Image // игра рисуется в фиксированном 800x600
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.canvas.Clear()
	a.stateMachine.Draw(a.canvas)

	scale := a.stateMachine.Scale()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale.X, scale.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(a.canvas, op)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML game config")
	seed := flag.Int64("seed", 0, "random seed for the strong attack, 0 picks one")
	skipMenu := flag.Bool("skip-menu", false, "start straight in the game")
	mute := flag.Bool("mute", false, "disable sound")
	volume := flag.Float64("volume", 1.0, "master volume, 0 mutes")
	debug := flag.Bool("debug", false, "log every tick")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address")
	flag.Parse()

	logger := log.New(os.Stderr, "derp: ", log.LstdFlags)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if *pprofAddr != "" {
		go func() {
			logger.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	sound := audio.NewSoundManager(logger)
	sound.SetVolume(*volume)
	if !*mute {
		// Без звука игра работает так же, ошибка уже залогирована.
		_ = sound.Initialize()
	}
	defer sound.Cleanup()

	sm := state.NewStateMachine(&state.Context{
		Config: cfg,
		Logger: logger,
		Sound:  sound,
		Face:   basicfont.Face7x13,
		Debug:  *debug,
	})
	if *skipMenu {
		sm.SetState(state.NewGameState(sm))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}

	app := &AppGame{
		stateMachine: sm,
		canvas:       ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Tower of Derp")
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal(err)
	}
}
