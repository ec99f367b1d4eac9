package app

import (
	"io"
	"log"
	"testing"

	"tower-of-derp/internal/component"
	"tower-of-derp/internal/config"
	"tower-of-derp/internal/defs"
	"tower-of-derp/internal/event"
	"tower-of-derp/internal/system"
	"tower-of-derp/internal/utils"
	"tower-of-derp/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand struct{ index int }

func (f fixedRand) Intn(int) int { return f.index }

type counter map[event.EventType]int

func (c counter) OnEvent(e event.Event) { c[e.Type]++ }

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestGame(t *testing.T, mutate func(*config.Config), opts ...Option) *Game {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())
	opts = append([]Option{WithLogger(quietLogger()), WithRand(fixedRand{})}, opts...)
	return NewGame(cfg, opts...)
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, nil)

	assert.NotEmpty(t, g.ID())
	assert.Equal(t, component.Player{Health: 100, Gold: 300}, g.PlayerState())
	assert.Len(t, g.Path(), 49)
	assert.Equal(t, grid.Cell{X: 0, Y: 8}, g.Base().Cell)
	assert.Empty(t, g.Monsters())
	assert.False(t, g.Over())
	assert.NotEqual(t, g.ID(), newTestGame(t, nil).ID())
}

func TestTickOrderSpawnsMovesAndFights(t *testing.T) {
	zero := 0.0
	g := newTestGame(t, func(c *config.Config) {
		c.Spawner.FirstDelay = &zero
	})
	require.NoError(t, g.PlaceTower(defs.TowerBasic, g.Path()[0]))

	g.Tick(0.016)

	require.Len(t, g.Monsters(), 1)
	m := g.Monsters()[0]
	assert.Equal(t, 1, m.MoveGoal, "spawned on the first waypoint and advanced in the same tick")
	assert.Equal(t, 90.0, m.Health, "tower fired on the spawn tick")
}

func TestDeadMonstersAreRemovedBeforeTowersFire(t *testing.T) {
	g := newTestGame(t, nil)
	m := &component.Monster{Health: 0, Size: 20, Position: system.AlignedTarget(grid.Cell{X: 5, Y: 5}, 20)}
	g.Board.AddMonster(m)
	require.NoError(t, g.PlaceTower(defs.TowerBasic, grid.Cell{X: 5, Y: 5}))

	rec := counter{}
	g.EventDispatcher.Subscribe(event.TowerFired, rec)
	g.Tick(0.016)

	assert.Empty(t, g.Monsters())
	assert.Zero(t, rec[event.TowerFired])
}

func TestPlacementRejections(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) { c.StartingGold = 5 })
	cell := grid.Cell{X: 10, Y: 2}

	err := g.PlaceTower(defs.TowerBasic, cell)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Empty(t, g.Towers())
	assert.Equal(t, uint32(5), g.Player.Gold)

	g.Player.Gold = 1000
	require.NoError(t, g.PlaceTower(defs.TowerBasic, cell))
	assert.ErrorIs(t, g.PlaceTower(defs.TowerNinja, cell), ErrTileOccupied)

	g.Player.Gold = 0
	assert.ErrorIs(t, g.PlaceTower(defs.TowerBasic, cell), ErrTileOccupied, "occupancy wins regardless of funds")

	assert.ErrorIs(t, g.PlaceTower("LASER", grid.Cell{}), ErrUnknownTowerKind)
	assert.Len(t, g.Towers(), 1)
}

func TestPlacementDeductsCost(t *testing.T) {
	g := newTestGame(t, nil)
	rec := counter{}
	g.EventDispatcher.Subscribe(event.TowerPlaced, rec)

	require.NoError(t, g.PlaceTower(defs.TowerBasic, grid.Cell{X: 10, Y: 1}))
	require.NoError(t, g.PlaceTower(defs.TowerNinja, grid.Cell{X: 11, Y: 1}))

	assert.Equal(t, uint32(270), g.Player.Gold)
	assert.Equal(t, 2, rec[event.TowerPlaced])
	assert.Equal(t, 2, g.Statistics().TowersBuilt)
	assert.Equal(t, uint32(30), g.Statistics().GoldSpent)

	ninja := g.Towers()[1]
	assert.Equal(t, defs.TowerNinja, ninja.Kind)
	assert.Equal(t, 2.0, ninja.Cooldown)
	assert.Equal(t, 5.0, ninja.StrongCooldown)
}

func TestGoldConservation(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) { c.StartingGold = 40 })
	start := g.Player.Gold

	var spent, collected uint32
	place := func(kind defs.TowerKind, cell grid.Cell) {
		cost := g.Config().Towers[kind].Cost
		if err := g.PlaceTower(kind, cell); err == nil {
			spent += cost
		}
	}
	drop := func(value uint32) {
		g.Board.AddGoldPile(&component.GoldPile{Value: value, Size: 20})
	}

	place(defs.TowerNinja, grid.Cell{X: 10, Y: 1})
	place(defs.TowerNinja, grid.Cell{X: 11, Y: 1})
	place(defs.TowerBasic, grid.Cell{X: 12, Y: 1}) // rejected: 0 gold left
	drop(5)
	drop(7)
	for _, p := range g.GoldPiles() {
		v, ok := g.CollectGoldPile(p.ID)
		require.True(t, ok)
		collected += v
		break
	}
	place(defs.TowerBasic, grid.Cell{X: 12, Y: 1}) // rejected: 5 gold
	collected += g.CollectGoldAt(utils.Vec{X: 1, Y: 1})
	place(defs.TowerBasic, grid.Cell{X: 12, Y: 1})

	assert.Equal(t, start-spent+collected, g.Player.Gold)
	assert.Equal(t, uint32(50), spent)
	assert.Equal(t, uint32(12), collected)
	assert.Equal(t, uint32(2), g.Player.Gold)
	assert.Empty(t, g.GoldPiles())
}

func TestCollectGoldPileTwice(t *testing.T) {
	g := newTestGame(t, nil)
	pile := &component.GoldPile{Value: 5, Size: 20}
	g.Board.AddGoldPile(pile)

	v, ok := g.CollectGoldPile(pile.ID)
	assert.True(t, ok)
	assert.Equal(t, uint32(5), v)

	v, ok = g.CollectGoldPile(pile.ID)
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, uint32(305), g.Player.Gold)
}

func TestKilledMonsterPaysOutWhenCollected(t *testing.T) {
	g := newTestGame(t, nil)
	cell := grid.Cell{X: 5, Y: 5}
	require.NoError(t, g.PlaceTower(defs.TowerBasic, cell))
	m := &component.Monster{Health: 10, Size: 20, GoldDrop: 5, Position: system.AlignedTarget(cell, 20)}
	g.Board.AddMonster(m)

	g.Tick(0.016)
	require.Len(t, g.GoldPiles(), 1)
	g.Tick(0.016)
	assert.Empty(t, g.Monsters())

	got := g.CollectGoldAt(m.Center())
	assert.Equal(t, uint32(5), got)
	assert.Equal(t, uint32(295), g.Player.Gold)
	assert.Equal(t, 1, g.Statistics().Kills)
}

func TestBaseDestroyedEndsGame(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) { c.StartingHealth = 1 })
	rec := counter{}
	g.EventDispatcher.Subscribe(event.BaseDestroyed, rec)

	m := &component.Monster{Health: 100, Size: 20, State: component.MonsterAttacking, BaseDamagePerSecond: 10}
	g.Board.AddMonster(m)

	g.Tick(0.05)
	assert.False(t, g.Over())
	g.Tick(0.06)
	assert.True(t, g.Over())
	assert.Equal(t, 0.0, g.Player.Health)

	g.Tick(1)
	assert.Equal(t, 1, rec[event.BaseDestroyed])
	assert.InDelta(t, 1.0, g.Statistics().BaseDamage, 1e-9, "base damage never exceeds starting health")
	assert.ErrorIs(t, g.PlaceTower(defs.TowerBasic, grid.Cell{X: 10, Y: 1}), ErrGameOver)
}

func TestNinjaStrongAttackThroughGame(t *testing.T) {
	g := newTestGame(t, nil, WithRand(fixedRand{index: 1}))
	require.NoError(t, g.PlaceTower(defs.TowerNinja, grid.Cell{X: 20, Y: 10}))

	a := &component.Monster{Health: 2000, Size: 20, Position: system.AlignedTarget(grid.Cell{X: 0, Y: 0}, 20)}
	b := &component.Monster{Health: 2000, Size: 20, Position: system.AlignedTarget(grid.Cell{X: 1, Y: 0}, 20)}
	g.Board.AddMonster(a)
	g.Board.AddMonster(b)
	g.Board.Path = nil // keep both monsters parked

	g.Towers()[0].StrongCooldown = 0
	g.Tick(0.016)

	assert.Equal(t, 2000.0, a.Health)
	assert.Equal(t, 1000.0, b.Health)
	assert.Len(t, g.Lasers(), 1)
}

func TestCollectGoldInCell(t *testing.T) {
	g := newTestGame(t, nil)
	cell := grid.Cell{X: 3, Y: 3}
	origin := utils.CellOrigin(cell)
	g.Board.AddGoldPile(&component.GoldPile{Position: origin, Value: 5, Size: 20})
	g.Board.AddGoldPile(&component.GoldPile{Position: origin.Add(utils.Vec{X: 2}), Value: 5, Size: 20})
	g.Board.AddGoldPile(&component.GoldPile{Position: utils.CellOrigin(grid.Cell{X: 9, Y: 9}), Value: 5, Size: 20})

	assert.Equal(t, uint32(10), g.CollectGoldInCell(cell))
	assert.Len(t, g.GoldPiles(), 1)
	assert.Zero(t, g.CollectGoldInCell(cell))
}
