package system

import (
	"testing"

	"tower-of-derp/internal/component"
	"tower-of-derp/internal/defs"
	"tower-of-derp/internal/entity"
	"tower-of-derp/internal/event"
	"tower-of-derp/pkg/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnerEmitsOnInterval(t *testing.T) {
	board := entity.NewBoard(defs.DefaultPath(), defs.DefaultBase)
	d := event.NewDispatcher()
	rec := listen(d)
	sys := NewSpawnerSystem(board, d, defs.DefaultMonster(), 2, 2)

	sys.Update(1.5)
	assert.Empty(t, board.Monsters)

	sys.Update(0.5)
	require.Len(t, board.Monsters, 1)
	assert.Equal(t, 2.0, sys.Countdown())

	m := board.Monsters[0]
	assert.Equal(t, AlignedTarget(board.Path[0], m.Size), m.Position)
	assert.Equal(t, 0, m.MoveGoal)
	assert.Equal(t, component.MonsterWalking, m.State)
	assert.Equal(t, 100.0, m.Health)
	assert.Equal(t, 100.0, m.Speed)

	sys.Update(2)
	assert.Len(t, board.Monsters, 2)
	assert.Equal(t, 2, rec.count(event.MonsterSpawned))
	assert.Equal(t, 2, sys.ActiveMonsters())
}

func TestSpawnerZeroDelaySpawnsImmediately(t *testing.T) {
	board := entity.NewBoard([]grid.Cell{{X: 1, Y: 1}}, grid.Cell{})
	d := event.NewDispatcher()
	sys := NewSpawnerSystem(board, d, defs.DefaultMonster(), 2, 0)

	sys.Update(0.01)
	assert.Len(t, board.Monsters, 1)

	ApplyDamage(board, board.Monsters[0], 1000, d)
	assert.Equal(t, 0, sys.ActiveMonsters())
}

func TestPlayerSystemCounts(t *testing.T) {
	d := event.NewDispatcher()
	stats := &component.GameStats{}
	NewPlayerSystem(stats, d)

	d.Dispatch(event.Event{Type: event.MonsterSpawned})
	d.Dispatch(event.Event{Type: event.MonsterKilled, Data: event.MonsterKilledData{Gold: 5}})
	d.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerPlacedData{Cost: 20}})
	d.Dispatch(event.Event{Type: event.GoldCollected, Data: event.GoldCollectedData{Value: 5}})

	assert.Equal(t, component.GameStats{
		Kills: 1, Spawned: 1, TowersBuilt: 1, GoldSpent: 20, GoldCollected: 5,
	}, *stats)
}

func TestVisualEffectFlashExpires(t *testing.T) {
	d := event.NewDispatcher()
	sys := NewVisualEffectSystem(d)

	d.Dispatch(event.Event{Type: event.StrongAttackFired, Data: event.StrongAttackData{TowerID: 3}})
	require.Len(t, sys.Lasers(), 1)

	sys.Update(0.1)
	assert.Len(t, sys.Lasers(), 1)
	sys.Update(1)
	assert.Empty(t, sys.Lasers())
}
