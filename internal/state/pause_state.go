// internal/state/pause_state.go
package state

import (
	"tower-of-derp/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру поверх последнего кадра.
type PauseState struct {
	sm   *StateMachine
	game *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{sm: sm, game: game}
}

func (s *PauseState) Enter() {
	s.game.pauseButton.SetPaused(true)
}

func (s *PauseState) Update() {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.game.pauseButton.IsClicked(s.sm.Pointer()) {
		unpause = true
	}
	if unpause {
		s.sm.SetState(s.game)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	text.Draw(screen, "PAUSED", s.sm.ctx.Face, config.ScreenWidth/2-21, config.ScreenHeight/2, config.TextLightColor)
	s.game.pauseButton.Draw(screen)
}

func (s *PauseState) Exit() {}
