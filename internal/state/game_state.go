// internal/state/game_state.go
package state

import (
	"errors"

	"tower-of-derp/internal/app"
	"tower-of-derp/internal/config"
	"tower-of-derp/internal/event"
	"tower-of-derp/internal/ui"
	"tower-of-derp/internal/utils"
	"tower-of-derp/pkg/grid"
	"tower-of-derp/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	driver      *app.Driver
	renderer    *render.BoardRenderer
	buildBar    *ui.BuildBar
	hud         *ui.HUD
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	hover       *grid.Cell
}

func NewGameState(sm *StateMachine) *GameState {
	ctx := sm.ctx
	dispatcher := event.NewDispatcher()
	if ctx.Sound != nil {
		ctx.Sound.Subscribe(dispatcher)
	}
	g := app.NewGame(ctx.Config,
		app.WithLogger(ctx.Logger),
		app.WithDispatcher(dispatcher),
		app.WithDebug(ctx.Debug),
	)

	colors := &render.BoardColors{
		Background:   config.BackgroundColor,
		Path:         config.PathColor,
		Base:         config.BaseColor,
		Monster:      config.MonsterColor,
		Gold:         config.GoldColor,
		Beam:         config.BeamColor,
		SelectedTile: config.SelectedTileColor,
		Towers:       config.TowerColors,
		StrokeWidth:  float32(config.StrokeWidth),
	}

	return &GameState{
		sm:          sm,
		game:        g,
		driver:      app.NewDriver(g, app.RealClock{}),
		renderer:    render.NewBoardRenderer(g.Path(), g.Base(), colors),
		buildBar:    ui.NewBuildBar(ctx.Config.Towers, ctx.Face),
		hud:         ui.NewHUD(ctx.Face, ctx.Config.StartingHealth, g.ID()),
		speedButton: ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton: ui.NewPauseButton(config.SpeedButtonX, config.SpeedButtonY+50, config.SpeedButtonSize, config.SpeedButtonColors[0], config.BaseColor),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
	g.driver.Reset()
}

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleSpeed()
	}
	g.buildBar.HandleKeys(inpututil.IsKeyJustPressed)

	p := g.sm.Pointer()
	g.buildBar.Hover(p)
	g.hover = nil
	if utils.InPlayArea(p) {
		cell := utils.CellAt(p)
		g.hover = &cell
		// Золото собирается простым наведением курсора.
		g.game.CollectGoldAt(p)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.handleClick(p) {
			return
		}
	}

	g.driver.Update()

	if g.game.Over() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

// handleClick reports whether the click switched state.
func (g *GameState) handleClick(p utils.Vec) bool {
	switch {
	case g.pauseButton.IsClicked(p):
		g.sm.SetState(NewPauseState(g.sm, g))
		return true
	case g.speedButton.IsClicked(p):
		g.cycleSpeed()
	case g.buildBar.Click(p):
	case g.hover != nil:
		err := g.game.PlaceTower(g.buildBar.Selected, *g.hover)
		if err != nil && !errors.Is(err, app.ErrGameOver) {
			g.sm.ctx.Logger.Printf("placement rejected: %v", err)
		}
	}
	return false
}

func (g *GameState) cycleSpeed() {
	g.driver.CycleSpeed()
	g.speedButton.SetState(g.driver.SpeedIndex())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, render.Frame{
		Towers:    g.game.Towers(),
		Monsters:  g.game.Monsters(),
		GoldPiles: g.game.GoldPiles(),
		Beams:     g.game.Beams(),
		Lasers:    g.game.Lasers(),
		Hover:     g.hover,
	})
	player := g.game.PlayerState()
	g.hud.Draw(screen, player, g.game.Statistics(), g.driver.Speed())
	g.buildBar.Draw(screen, player.Gold)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
}

func (g *GameState) Exit() {}
