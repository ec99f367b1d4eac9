// internal/system/player_system.go
package system

import (
	"tower-of-derp/internal/component"
	"tower-of-derp/internal/event"
)

// PlayerSystem ведёт статистику сессии по событиям.
type PlayerSystem struct {
	stats *component.GameStats
}

// NewPlayerSystem subscribes to every event that changes the statistics.
func NewPlayerSystem(stats *component.GameStats, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{stats: stats}
	eventDispatcher.SubscribeAll(s,
		event.MonsterSpawned,
		event.MonsterKilled,
		event.TowerPlaced,
		event.GoldCollected,
	)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.MonsterSpawned:
		s.stats.Spawned++
	case event.MonsterKilled:
		s.stats.Kills++
	case event.TowerPlaced:
		if d, ok := e.Data.(event.TowerPlacedData); ok {
			s.stats.TowersBuilt++
			s.stats.GoldSpent += d.Cost
		}
	case event.GoldCollected:
		if d, ok := e.Data.(event.GoldCollectedData); ok {
			s.stats.GoldCollected += d.Value
		}
	}
}
