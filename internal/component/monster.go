// internal/component/monster.go
package component

import (
	"tower-of-derp/internal/types"
	"tower-of-derp/internal/utils"
)

// MonsterState — состояние монстра
type MonsterState int

const (
	MonsterWalking   MonsterState = iota // идёт по пути
	MonsterAttacking                     // дошёл до базы
	MonsterDead
)

func (s MonsterState) String() string {
	switch s {
	case MonsterWalking:
		return "Walking"
	case MonsterAttacking:
		return "Attacking"
	case MonsterDead:
		return "Dead"
	}
	return "Unknown"
}

// Monster is an enemy walking to the base. Position is the top-left corner
// of its square.
type Monster struct {
	ID       types.EntityID
	Position utils.Vec
	Speed    float64 // units per second
	Health   float64
	Size     float64
	MoveGoal int // index of the next waypoint
	State    MonsterState

	GoldDrop            uint32
	BaseDamagePerSecond float64
}

// Center returns the middle of the monster's square.
func (m *Monster) Center() utils.Vec {
	return m.Position.Add(utils.Vec{X: m.Size / 2, Y: m.Size / 2})
}

// Alive reports whether the monster still has health left.
func (m *Monster) Alive() bool {
	return m.Health > 0
}

// ReceiveDamage subtracts amount from health and reports whether this call
// was the killing blow. It returns true at most once per monster.
func (m *Monster) ReceiveDamage(amount float64) bool {
	wasAlive := m.Alive()
	m.Health -= amount
	return wasAlive && !m.Alive()
}
