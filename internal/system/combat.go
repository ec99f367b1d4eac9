// internal/system/combat.go
package system

import (
	"log"

	"tower-of-derp/internal/component"
	"tower-of-derp/internal/defs"
	"tower-of-derp/internal/entity"
	"tower-of-derp/internal/event"
	"tower-of-derp/internal/utils"
)

// Rand is the random source for the strong attack. utils.PRNGService
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// CombatSystem управляет атакой башен
type CombatSystem struct {
	board           *entity.Board
	rng             Rand
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(board *entity.Board, rng Rand, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		board:           board,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update runs every tower in placement order. Each tower sees the monsters in
// board order.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, t := range s.board.Towers {
		switch t.Kind {
		case defs.TowerBasic:
			t.Cooldown = tickCooldown(t.Cooldown, deltaTime)
			s.areaAttack(t)
		case defs.TowerNinja:
			t.Cooldown = tickCooldown(t.Cooldown, deltaTime)
			t.StrongCooldown = tickCooldown(t.StrongCooldown, deltaTime)
			s.areaAttack(t)
			s.strongAttack(t)
		default:
			log.Printf("CombatSystem: tower %d has unknown kind %q", t.ID, t.Kind)
		}
	}
}

// areaAttack hits every monster in range. With nothing in range the tower
// stays ready and tries again next tick.
func (s *CombatSystem) areaAttack(t *component.Tower) {
	if t.Cooldown > 0 {
		return
	}

	var targets []utils.Vec
	for _, m := range s.board.Monsters {
		center := m.Center()
		if !t.InRange(center) {
			continue
		}
		ApplyDamage(s.board, m, t.Def.Damage, s.eventDispatcher)
		targets = append(targets, center)
	}
	if len(targets) == 0 {
		return
	}

	t.Cooldown = t.Def.AttackInterval
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerFired,
		Data: event.TowerFiredData{
			TowerID: t.ID,
			Kind:    t.Kind,
			From:    t.Center(),
			Targets: targets,
		},
	})
}

// strongAttack picks one monster uniformly at random, ignoring range.
func (s *CombatSystem) strongAttack(t *component.Tower) {
	strong := t.Def.Strong
	if strong == nil || t.StrongCooldown > 0 {
		return
	}
	if len(s.board.Monsters) == 0 {
		return
	}

	m := s.board.Monsters[s.rng.Intn(len(s.board.Monsters))]
	ApplyDamage(s.board, m, strong.Damage, s.eventDispatcher)
	t.StrongCooldown = strong.Interval

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.StrongAttackFired,
		Data: event.StrongAttackData{
			TowerID:  t.ID,
			From:     t.Center(),
			Target:   m.Center(),
			TargetID: m.ID,
			Damage:   strong.Damage,
		},
	})
}

// Beam is a line from a tower to a monster it can currently reach.
type Beam struct {
	Kind     defs.TowerKind
	From, To utils.Vec
}

// Beams lists a line from every tower to every monster inside its range,
// regardless of cooldowns.
func Beams(board *entity.Board) []Beam {
	var beams []Beam
	for _, t := range board.Towers {
		from := t.Center()
		for _, m := range board.Monsters {
			if to := m.Center(); t.InRange(to) {
				beams = append(beams, Beam{Kind: t.Kind, From: from, To: to})
			}
		}
	}
	return beams
}
