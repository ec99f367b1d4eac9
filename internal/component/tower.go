// internal/component/tower.go
package component

import (
	"tower-of-derp/internal/defs"
	"tower-of-derp/internal/types"
	"tower-of-derp/internal/utils"
	"tower-of-derp/pkg/grid"
)

// Tower is a tower standing on a cell. Def is copied at placement so later
// config changes do not affect towers already on the board.
type Tower struct {
	ID   types.EntityID
	Kind defs.TowerKind
	Def  defs.TowerDefinition
	Cell grid.Cell

	Cooldown       float64 // seconds until the area attack is ready
	StrongCooldown float64 // seconds until the strong attack is ready, Ninja only
}

// NewTower creates a tower with its definition's initial cooldowns.
func NewTower(id types.EntityID, kind defs.TowerKind, def defs.TowerDefinition, cell grid.Cell) *Tower {
	t := &Tower{
		ID:       id,
		Kind:     kind,
		Def:      def,
		Cell:     cell,
		Cooldown: def.InitialCooldown,
	}
	if def.Strong != nil {
		t.StrongCooldown = def.Strong.InitialCooldown
	}
	return t
}

// Center returns the middle of the tower's cell in simulation space.
func (t *Tower) Center() utils.Vec {
	return utils.CellCenter(t.Cell)
}

// InRange compares squared distances; a point exactly at range is outside.
func (t *Tower) InRange(p utils.Vec) bool {
	return utils.DistSq(t.Center(), p) < t.Def.Range*t.Def.Range
}
