// internal/state/game_over_state.go
package state

import (
	"fmt"

	"tower-of-derp/internal/config"
	"tower-of-derp/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameOverState показывает итог партии и предлагает начать заново.
type GameOverState struct {
	sm      *StateMachine
	game    *GameState
	restart *ui.Button
}

func NewGameOverState(sm *StateMachine, game *GameState) *GameOverState {
	return &GameOverState{
		sm:      sm,
		game:    game,
		restart: ui.NewButton(config.ScreenWidth/2-80, config.ScreenHeight/2+40, 160, 40, "RESTART", sm.ctx.Face),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update() {
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.restart.Contains(s.sm.Pointer())
	switch {
	case clicked || inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.sm.SetState(NewGameState(s.sm))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	stats := s.game.game.Statistics()
	face := s.sm.ctx.Face
	text.Draw(screen, "BASE DESTROYED", face, config.ScreenWidth/2-49, config.ScreenHeight/2-40, config.MonsterColor)
	summary := fmt.Sprintf("survived %.0fs, %d kills, %d towers", stats.ElapsedSeconds, stats.Kills, stats.TowersBuilt)
	text.Draw(screen, summary, face, config.ScreenWidth/2-len(summary)*7/2, config.ScreenHeight/2-10, config.TextLightColor)
	s.restart.Draw(screen, s.sm.Pointer())
}

func (s *GameOverState) Exit() {}
