package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

type listenerFunc func(Event)

func (f listenerFunc) OnEvent(e Event) { f(e) }

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(TowerFired, a)
	d.Subscribe(TowerFired, b)
	d.Subscribe(GoldCollected, b)

	d.Dispatch(Event{Type: TowerFired, Data: TowerFiredData{TowerID: 7}})
	d.Dispatch(Event{Type: MonsterSpawned})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
	assert.Equal(t, TowerFiredData{TowerID: 7}, a.got[0].Data)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	d.Subscribe(BaseDestroyed, a)
	assert.True(t, d.Unsubscribe(BaseDestroyed, a))
	assert.False(t, d.Unsubscribe(BaseDestroyed, a))
	d.Dispatch(Event{Type: BaseDestroyed})
	assert.Empty(t, a.got)
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	d.SubscribeAll(a, MonsterKilled, GoldCollected)

	d.Dispatch(Event{Type: MonsterKilled})
	d.Dispatch(Event{Type: TowerPlaced})
	d.Dispatch(Event{Type: GoldCollected})

	if assert.Len(t, a.got, 2) {
		assert.Equal(t, MonsterKilled, a.got[0].Type)
		assert.Equal(t, GoldCollected, a.got[1].Type)
	}
}

func TestObserversSeeEveryEventFirst(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(TowerPlaced, listenerFunc(func(Event) { order = append(order, "listener") }))
	d.Observe(func(e Event) { order = append(order, "observer:"+string(e.Type)) })

	d.Dispatch(Event{Type: TowerPlaced})
	d.Dispatch(Event{Type: MonsterSpawned})

	assert.Equal(t, []string{"observer:TowerPlaced", "listener", "observer:MonsterSpawned"}, order)
}

func TestSubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	late := &recorder{}
	d.Subscribe(TowerFired, listenerFunc(func(Event) { d.Subscribe(TowerFired, late) }))

	d.Dispatch(Event{Type: TowerFired})
	assert.Empty(t, late.got)

	d.Dispatch(Event{Type: TowerFired})
	assert.Len(t, late.got, 1)
}

func TestNilDispatcherIsSilent(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: TowerPlaced}) })
}
