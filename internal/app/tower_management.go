// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"tower-of-derp/internal/component"
	"tower-of-derp/internal/defs"
	"tower-of-derp/internal/event"
	"tower-of-derp/internal/types"
	"tower-of-derp/internal/utils"
	"tower-of-derp/pkg/grid"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrTileOccupied      = errors.New("tile occupied")
	ErrUnknownTowerKind  = errors.New("unknown tower kind")
	ErrGameOver          = errors.New("game over")
)

// PlaceTower builds a tower of the given kind on cell. The cost is spent in
// the same step the tower is added, so a rejected placement changes nothing.
func (g *Game) PlaceTower(kind defs.TowerKind, cell grid.Cell) error {
	if g.Over() {
		return ErrGameOver
	}
	def, ok := g.cfg.Towers[kind]
	if !ok || !kind.Valid() {
		return fmt.Errorf("place %q: %w", kind, ErrUnknownTowerKind)
	}
	if g.Board.PositionIsOccupied(cell) {
		return fmt.Errorf("place %s at %s: %w", kind, cell, ErrTileOccupied)
	}
	if !g.Player.Spend(def.Cost) {
		return fmt.Errorf("place %s at %s: cost %d, have %d: %w", kind, cell, def.Cost, g.Player.Gold, ErrInsufficientFunds)
	}

	t := component.NewTower(g.Board.NewEntity(), kind, def, cell)
	g.Board.AddTower(t)
	g.logger.Printf("tower %s placed at %s, gold left %d", kind, cell, g.Player.Gold)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerPlacedData{TowerID: t.ID, Kind: kind, Cell: cell, Cost: def.Cost},
	})
	return nil
}

// CollectGoldPile removes a pile and credits its value to the player.
func (g *Game) CollectGoldPile(id types.EntityID) (uint32, bool) {
	pile, ok := g.Board.TakeGoldPile(id)
	if !ok {
		return 0, false
	}
	g.Player.Earn(pile.Value)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GoldCollected,
		Data: event.GoldCollectedData{PileID: id, Value: pile.Value, Total: g.Player.Gold},
	})
	return pile.Value, true
}

// CollectGoldAt collects every pile under a simulation-space point, as the
// pointer does when it hovers over gold. It returns the total collected.
func (g *Game) CollectGoldAt(p utils.Vec) uint32 {
	var total uint32
	for _, id := range g.Board.GoldPilesAt(p) {
		v, _ := g.CollectGoldPile(id)
		total += v
	}
	return total
}

// CollectGoldInCell collects every pile whose center lies in cell. Front-ends
// with a cell cursor instead of a pointer use it.
func (g *Game) CollectGoldInCell(cell grid.Cell) uint32 {
	var ids []types.EntityID
	for _, p := range g.Board.GoldPiles {
		center := p.Position.Add(utils.Vec{X: p.Size / 2, Y: p.Size / 2})
		if utils.CellAt(center) == cell {
			ids = append(ids, p.ID)
		}
	}
	var total uint32
	for _, id := range ids {
		v, _ := g.CollectGoldPile(id)
		total += v
	}
	return total
}
