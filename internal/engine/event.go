package engine

// ListenerID identifies a subscription so it can be removed later.
type ListenerID uint64

// Event is a multi-cast event with no payload.
type Event struct {
	EventWithArg[struct{}]
}

// AddListener adds a callback to be invoked when the event fires
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	return e.EventWithArg.AddListener(func(struct{}) { callback() })
}

// Invoke calls all registered listeners
func (e *Event) Invoke() {
	e.EventWithArg.Invoke(struct{}{})
}

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// EventWithArg is a multi-cast event with one argument.
type EventWithArg[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

// RemoveListener drops the subscription with the given id. Unknown ids are ignored.
func (e *EventWithArg[T]) RemoveListener(id ListenerID) {
	for i, l := range e.listeners {
		if l.id == id {
			kept := make([]listener[T], 0, len(e.listeners)-1)
			kept = append(kept, e.listeners[:i]...)
			e.listeners = append(kept, e.listeners[i+1:]...)
			return
		}
	}
}

// Invoke calls every listener in subscription order. Listeners added while
// invoking are not called until the next Invoke.
func (e *EventWithArg[T]) Invoke(arg T) {
	snapshot := e.listeners
	for _, l := range snapshot {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) GetListenerCount() int {
	return len(e.listeners)
}
