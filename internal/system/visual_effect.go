// internal/system/visual_effect.go
package system

import (
	"tower-of-derp/internal/component"
	"tower-of-derp/internal/config"
	"tower-of-derp/internal/event"
)

// VisualEffectSystem держит короткие вспышки сильной атаки ниндзя.
type VisualEffectSystem struct {
	lasers []*component.Laser
}

// NewVisualEffectSystem создает систему и подписывает её на StrongAttackFired.
func NewVisualEffectSystem(eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{}
	eventDispatcher.Subscribe(event.StrongAttackFired, s)
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	d, ok := e.Data.(event.StrongAttackData)
	if !ok {
		return
	}
	s.lasers = append(s.lasers, &component.Laser{
		TowerID:  d.TowerID,
		From:     d.From,
		To:       d.Target,
		Color:    config.StrongBeamColor,
		Duration: config.AttackFlashDuration,
	})
}

// Update обновляет таймеры и удаляет догоревшие вспышки.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	kept := s.lasers[:0]
	for _, l := range s.lasers {
		l.Timer += deltaTime
		if !l.Done() {
			kept = append(kept, l)
		}
	}
	s.lasers = kept
}

// Lasers returns the flashes still on screen.
func (s *VisualEffectSystem) Lasers() []*component.Laser {
	return s.lasers
}
