package system

import (
	"tower-of-derp/internal/component"
	"tower-of-derp/internal/defs"
	"tower-of-derp/internal/entity"
	"tower-of-derp/internal/event"
	"tower-of-derp/pkg/grid"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// listen subscribes one recorder to every event type.
func listen(d *event.Dispatcher) *recorder {
	r := &recorder{}
	d.Observe(r.OnEvent)
	return r
}

type fixedRand struct {
	index int
	asked []int
}

func (f *fixedRand) Intn(n int) int {
	f.asked = append(f.asked, n)
	return f.index
}

func newMonster(cell grid.Cell, health float64) *component.Monster {
	def := defs.DefaultMonster()
	return &component.Monster{
		Position:            AlignedTarget(cell, def.Size),
		Speed:               def.Speed,
		Health:              health,
		Size:                def.Size,
		GoldDrop:            def.GoldDrop,
		BaseDamagePerSecond: def.BaseDamagePerSecond,
	}
}

func newTower(board *entity.Board, kind defs.TowerKind, cell grid.Cell) *component.Tower {
	t := component.NewTower(board.NewEntity(), kind, defs.DefaultTowers()[kind], cell)
	board.AddTower(t)
	return t
}
