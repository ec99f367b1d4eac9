// internal/state/menu_state.go
package state

import (
	"tower-of-derp/internal/config"
	"tower-of-derp/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — стартовый экран
type MenuState struct {
	sm    *StateMachine
	start *ui.Button
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{
		sm:    sm,
		start: ui.NewButton(config.ScreenWidth/2-80, config.ScreenHeight/2, 160, 40, "START", sm.ctx.Face),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && m.start.Contains(m.sm.Pointer())
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.sm.ctx.Face
	text.Draw(screen, "TOWER OF DERP", face, config.ScreenWidth/2-45, config.ScreenHeight/2-60, config.TextLightColor)
	text.Draw(screen, "1/2 pick a tower, click to build, hover gold to collect", face,
		config.ScreenWidth/2-190, config.ScreenHeight/2-30, config.TextLightColor)
	m.start.Draw(screen, m.sm.Pointer())
}

func (m *MenuState) Exit() {}
