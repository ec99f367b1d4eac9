// internal/entity/board.go
package entity

import (
	"tower-of-derp/internal/component"
	"tower-of-derp/internal/types"
	"tower-of-derp/internal/utils"
	"tower-of-derp/pkg/grid"
)

// Board owns every live entity. Slices keep registration order, which the
// combat pass relies on for deterministic results.
type Board struct {
	NextID    types.EntityID
	Path      []grid.Cell
	Base      component.Base
	Towers    []*component.Tower
	Monsters  []*component.Monster
	GoldPiles []*component.GoldPile
}

func NewBoard(path []grid.Cell, base grid.Cell) *Board {
	p := make([]grid.Cell, len(path))
	copy(p, path)
	return &Board{
		NextID: 1,
		Path:   p,
		Base:   component.Base{Cell: base},
	}
}

func (b *Board) NewEntity() types.EntityID {
	id := b.NextID
	b.NextID++
	return id
}

// AddTower appends a tower, assigning it an ID if it has none.
func (b *Board) AddTower(t *component.Tower) {
	if t.ID == 0 {
		t.ID = b.NewEntity()
	}
	b.Towers = append(b.Towers, t)
}

// PositionIsOccupied reports whether a tower already stands on exactly cell.
func (b *Board) PositionIsOccupied(cell grid.Cell) bool {
	for _, t := range b.Towers {
		if t.Cell == cell {
			return true
		}
	}
	return false
}

func (b *Board) AddMonster(m *component.Monster) {
	if m.ID == 0 {
		m.ID = b.NewEntity()
	}
	b.Monsters = append(b.Monsters, m)
}

func (b *Board) AddGoldPile(g *component.GoldPile) {
	if g.ID == 0 {
		g.ID = b.NewEntity()
	}
	b.GoldPiles = append(b.GoldPiles, g)
}

// RemoveDeadMonsters drops every Dead monster, keeping the order of the rest,
// and returns how many were removed.
func (b *Board) RemoveDeadMonsters() int {
	kept := b.Monsters[:0]
	for _, m := range b.Monsters {
		if m.State != component.MonsterDead {
			kept = append(kept, m)
		}
	}
	removed := len(b.Monsters) - len(kept)
	for i := len(kept); i < len(b.Monsters); i++ {
		b.Monsters[i] = nil
	}
	b.Monsters = kept
	return removed
}

// TakeGoldPile removes the pile with the given ID and returns it.
func (b *Board) TakeGoldPile(id types.EntityID) (*component.GoldPile, bool) {
	for i, g := range b.GoldPiles {
		if g.ID == id {
			b.GoldPiles = append(b.GoldPiles[:i], b.GoldPiles[i+1:]...)
			return g, true
		}
	}
	return nil, false
}

// GoldPilesAt returns the IDs of every pile whose footprint contains p.
func (b *Board) GoldPilesAt(p utils.Vec) []types.EntityID {
	var ids []types.EntityID
	for _, g := range b.GoldPiles {
		if g.Contains(p) {
			ids = append(ids, g.ID)
		}
	}
	return ids
}

// TowerAt returns the tower on cell, if any.
func (b *Board) TowerAt(cell grid.Cell) (*component.Tower, bool) {
	for _, t := range b.Towers {
		if t.Cell == cell {
			return t, true
		}
	}
	return nil, false
}

// OnPath reports whether cell is one of the waypoints.
func (b *Board) OnPath(cell grid.Cell) bool {
	for _, c := range b.Path {
		if c == cell {
			return true
		}
	}
	return false
}
