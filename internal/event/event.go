// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event is one simulation event. Data holds one of the *Data payloads from types.go.
type Event struct {
	Type EventType
	Data any
}

// Listener receives the events it subscribed to.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher is a synchronous event dispatcher. Listeners run on the caller's
// goroutine in subscription order, so a tick's events are handled before the
// tick returns.
type Dispatcher struct {
	listeners map[EventType][]Listener
	observers []func(Event)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на один тип события.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll subscribes listener to each of types.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Observe registers fn for every event regardless of type. Used for tracing.
func (d *Dispatcher) Observe(fn func(Event)) {
	d.observers = append(d.observers, fn)
}

// Unsubscribe removes listener from eventType and reports whether it was there.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) bool {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Dispatch delivers event to observers, then to the type's listeners. A
// listener subscribed during delivery first sees the next event. A nil
// dispatcher drops every event.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, fn := range d.observers {
		fn(event)
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
