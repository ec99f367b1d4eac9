// internal/system/wave.go
package system

import (
	"tower-of-derp/internal/component"
	"tower-of-derp/internal/defs"
	"tower-of-derp/internal/entity"
	"tower-of-derp/internal/event"
)

// SpawnerSystem выпускает одного монстра каждые interval секунд.
type SpawnerSystem struct {
	board           *entity.Board
	eventDispatcher *event.Dispatcher
	monster         defs.MonsterDefinition
	interval        float64
	countdown       float64
	activeMonsters  int
}

// NewSpawnerSystem creates a spawner whose first monster appears after
// firstDelay seconds.
func NewSpawnerSystem(board *entity.Board, eventDispatcher *event.Dispatcher, monster defs.MonsterDefinition, interval, firstDelay float64) *SpawnerSystem {
	s := &SpawnerSystem{
		board:           board,
		eventDispatcher: eventDispatcher,
		monster:         monster,
		interval:        interval,
		countdown:       firstDelay,
	}
	eventDispatcher.Subscribe(event.MonsterKilled, s)
	return s
}

func (s *SpawnerSystem) Update(deltaTime float64) {
	s.countdown -= deltaTime
	if s.countdown > 0 {
		return
	}
	s.spawnMonster()
	s.countdown = s.interval
}

// Countdown returns the seconds left until the next spawn.
func (s *SpawnerSystem) Countdown() float64 {
	return s.countdown
}

// ActiveMonsters counts spawned monsters that have not been killed yet.
func (s *SpawnerSystem) ActiveMonsters() int {
	return s.activeMonsters
}

func (s *SpawnerSystem) spawnMonster() {
	def := s.monster
	m := &component.Monster{
		Speed:               def.Speed,
		Health:              def.Health,
		Size:                def.Size,
		State:               component.MonsterWalking,
		GoldDrop:            def.GoldDrop,
		BaseDamagePerSecond: def.BaseDamagePerSecond,
	}
	start := s.board.Base.Cell
	if len(s.board.Path) > 0 {
		start = s.board.Path[0]
	}
	m.Position = AlignedTarget(start, def.Size)
	s.board.AddMonster(m)
	s.activeMonsters++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MonsterSpawned,
		Data: event.MonsterData{MonsterID: m.ID, Position: m.Position},
	})
}

func (s *SpawnerSystem) OnEvent(e event.Event) {
	if e.Type == event.MonsterKilled {
		s.activeMonsters--
	}
}
