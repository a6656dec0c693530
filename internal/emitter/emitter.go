// Package emitter provides a typed change-notification primitive.
//
// Listeners are registered with Subscribe and released through the returned
// Subscription handle. There are no string event names: each Emitter carries
// exactly one event type, so a listener cannot subscribe to an event its
// source never raises.
package emitter

import "sync"

// Emitter fans events of type E out to its listeners in registration order.
// The zero value is ready to use.
type Emitter[E any] struct {
	mu        sync.Mutex
	nextID    uint64
	listeners []*listener[E]
}

type listener[E any] struct {
	id      uint64
	fn      func(E)
	removed bool // guarded by Emitter.mu
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Unsubscribe detaches the listener. It reports true only for the call that
// actually removed it; later calls are no-ops.
func (s *Subscription) Unsubscribe() bool {
	if s == nil {
		return false
	}
	removed := false
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		removed = true
	})
	return removed
}

// Subscribe registers fn. A nil fn yields an inert subscription.
func (e *Emitter[E]) Subscribe(fn func(E)) *Subscription {
	if fn == nil {
		return &Subscription{}
	}
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, &listener[E]{id: id, fn: fn})
	e.mu.Unlock()

	return &Subscription{cancel: func() { e.remove(id) }}
}

func (e *Emitter[E]) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, l := range e.listeners {
		if l.id == id {
			l.removed = true
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Emit calls every listener registered at the time of the call. A listener
// added from within a callback first hears the next Emit; a listener removed
// from within a callback is not called again, even later in this Emit.
func (e *Emitter[E]) Emit(event E) {
	e.mu.Lock()
	snapshot := make([]*listener[E], len(e.listeners))
	copy(snapshot, e.listeners)
	e.mu.Unlock()

	for _, l := range snapshot {
		if e.isRemoved(l) {
			continue
		}
		l.fn(event)
	}
}

func (e *Emitter[E]) isRemoved(l *listener[E]) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return l.removed
}

// Len returns the number of registered listeners.
func (e *Emitter[E]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}
