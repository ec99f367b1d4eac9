// internal/system/movement.go
package system

import (
	"tower-of-derp/internal/component"
	"tower-of-derp/internal/entity"
	"tower-of-derp/internal/event"
	"tower-of-derp/internal/utils"
	"tower-of-derp/pkg/grid"
)

// MovementSystem ведёт монстров по пути и отнимает здоровье базы у тех,
// кто до неё дошёл.
type MovementSystem struct {
	board           *entity.Board
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(board *entity.Board, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{board: board, eventDispatcher: eventDispatcher}
}

// AlignedTarget returns the top-left position that puts a monster of the
// given size centered on cell.
func AlignedTarget(cell grid.Cell, size float64) utils.Vec {
	c := utils.CellCenter(cell)
	return utils.Vec{X: c.X - size/2, Y: c.Y - size/2}
}

// Update advances every monster by deltaTime and returns the base health
// actually lost this tick.
func (s *MovementSystem) Update(deltaTime float64, player *component.Player) float64 {
	var baseDamage float64
	for _, m := range s.board.Monsters {
		baseDamage += s.updateMonster(m, deltaTime, player)
	}
	return baseDamage
}

func (s *MovementSystem) updateMonster(m *component.Monster, deltaTime float64, player *component.Player) float64 {
	// Убитый монстр не должен сделать ещё один шаг.
	if !m.Alive() {
		m.State = component.MonsterDead
		return 0
	}

	switch m.State {
	case component.MonsterAttacking:
		return player.TakeDamage(m.BaseDamagePerSecond * deltaTime)
	case component.MonsterDead:
		return 0
	}

	path := s.board.Path
	if m.MoveGoal >= len(path) {
		m.State = component.MonsterAttacking
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.MonsterReachedBase,
			Data: event.MonsterData{MonsterID: m.ID, Position: m.Position},
		})
		return 0
	}

	target := AlignedTarget(path[m.MoveGoal], m.Size)
	delta := target.Sub(m.Position)
	dist := delta.Len()
	if dist == 0 {
		m.MoveGoal++
		return 0
	}

	step := m.Speed * deltaTime
	if dist < step {
		// Встаём ровно в точку, без перелёта.
		m.Position = target
		m.MoveGoal++
		return 0
	}
	m.Position = m.Position.Add(delta.Mul(step / dist))
	return 0
}
