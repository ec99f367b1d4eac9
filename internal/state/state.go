// internal/state/state.go
package state

import (
	"log"

	"tower-of-derp/internal/audio"
	"tower-of-derp/internal/config"
	"tower-of-derp/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update()
	Draw(screen *ebiten.Image)
	Exit()
}

// Context holds what every state shares: configuration, logging, sound and
// the text face.
type Context struct {
	Config *config.Config
	Logger *log.Logger
	Sound  *audio.SoundManager
	Face   font.Face
	Debug  bool
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	ctx     *Context
	scale   utils.Scale
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(ctx *Context) *StateMachine {
	return &StateMachine{ctx: ctx, scale: utils.NewScale(config.ScreenWidth, config.ScreenHeight)}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.Update()
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// SetViewport records the window size the canvas is stretched onto.
func (sm *StateMachine) SetViewport(width, height int) {
	sm.scale = utils.NewScale(width, height)
}

// Scale returns the canvas-to-window scale.
func (sm *StateMachine) Scale() utils.Scale {
	return sm.scale
}

// Pointer returns the cursor position in simulation space.
func (sm *StateMachine) Pointer() utils.Vec {
	x, y := ebiten.CursorPosition()
	return sm.scale.ToGamePoint(float64(x), float64(y))
}
