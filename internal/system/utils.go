// internal/system/utils.go
package system

import (
	"tower-of-derp/internal/component"
	"tower-of-derp/internal/config"
	"tower-of-derp/internal/entity"
	"tower-of-derp/internal/event"
)

// ApplyDamage deals damage to a monster. The killing blow drops a gold pile at the
// monster's position and dispatches MonsterKilled; later hits on the corpse
// drop nothing.
func ApplyDamage(board *entity.Board, m *component.Monster, damage float64, eventDispatcher *event.Dispatcher) bool {
	if !m.ReceiveDamage(damage) {
		return false
	}

	pile := &component.GoldPile{
		Position: m.Position,
		Value:    m.GoldDrop,
		Size:     config.GoldPileSize,
	}
	board.AddGoldPile(pile)

	eventDispatcher.Dispatch(event.Event{
		Type: event.MonsterKilled,
		Data: event.MonsterKilledData{
			MonsterID: m.ID,
			PileID:    pile.ID,
			Position:  m.Position,
			Gold:      pile.Value,
		},
	})
	return true
}

// tickCooldown decrements a timer and clamps it at zero.
func tickCooldown(cooldown, deltaTime float64) float64 {
	cooldown -= deltaTime
	if cooldown < 0 {
		return 0
	}
	return cooldown
}
