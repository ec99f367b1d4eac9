// internal/event/types.go
package event

import (
	"tower-of-derp/internal/defs"
	"tower-of-derp/internal/types"
	"tower-of-derp/internal/utils"
	"tower-of-derp/pkg/grid"
)

const (
	MonsterSpawned     EventType = "MonsterSpawned"     // Монстр появился
	MonsterKilled      EventType = "MonsterKilled"      // Монстр убит, выпало золото
	MonsterReachedBase EventType = "MonsterReachedBase" // Монстр дошёл до базы
	TowerPlaced        EventType = "TowerPlaced"        // Башня построена
	TowerFired         EventType = "TowerFired"
	StrongAttackFired  EventType = "StrongAttackFired"
	GoldCollected      EventType = "GoldCollected"
	BaseDestroyed      EventType = "BaseDestroyed" // Здоровье базы кончилось
)

// MonsterData is the payload of MonsterSpawned and MonsterReachedBase.
type MonsterData struct {
	MonsterID types.EntityID
	Position  utils.Vec
}

// MonsterKilledData is the payload of MonsterKilled.
type MonsterKilledData struct {
	MonsterID types.EntityID
	PileID    types.EntityID
	Position  utils.Vec
	Gold      uint32
}

// TowerPlacedData is the payload of TowerPlaced.
type TowerPlacedData struct {
	TowerID types.EntityID
	Kind    defs.TowerKind
	Cell    grid.Cell
	Cost    uint32
}

// TowerFiredData is the payload of TowerFired. Targets holds the centers of
// every monster hit by the area attack.
type TowerFiredData struct {
	TowerID types.EntityID
	Kind    defs.TowerKind
	From    utils.Vec
	Targets []utils.Vec
}

// StrongAttackData is the payload of StrongAttackFired.
type StrongAttackData struct {
	TowerID  types.EntityID
	From     utils.Vec
	Target   utils.Vec
	TargetID types.EntityID
	Damage   float64
}

// GoldCollectedData is the payload of GoldCollected.
type GoldCollectedData struct {
	PileID types.EntityID
	Value  uint32
	Total  uint32 // player gold after collection
}
