// Package binding connects a view to a store for the lifetime of the view.
//
// A Binding subscribes when the view mounts and unsubscribes when it
// unmounts, so a view never receives a change notification after it is gone.
// Queue adapts store notifications to Bubble Tea: changes raised while an
// Update is dispatching are collected and handed back as a tea.Cmd, because a
// program cannot Send to itself from inside Update.
package binding

import (
	"errors"
	"sync"

	"github.com/five82/fluxview/internal/emitter"
)

// ErrAlreadyMounted is returned by Mount when the binding is already mounted.
var ErrAlreadyMounted = errors.New("binding already mounted")

// Source is a store a view can bind to.
type Source[S any] interface {
	Subscribe(fn func(S)) *emitter.Subscription
	Snapshot() S
}

// Binding ties one view to one store.
type Binding[S any] struct {
	src      Source[S]
	onChange func(S)

	mu  sync.Mutex
	sub *emitter.Subscription
}

// New returns an unmounted binding that calls onChange with each new state.
func New[S any](src Source[S], onChange func(S)) *Binding[S] {
	return &Binding[S]{src: src, onChange: onChange}
}

// Mount subscribes to the store and returns its current state, which the
// view uses as its initial state.
func (b *Binding[S]) Mount() (S, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sub != nil {
		var zero S
		return zero, ErrAlreadyMounted
	}
	b.sub = b.src.Subscribe(b.onChange)
	return b.src.Snapshot(), nil
}

// Unmount releases the subscription. It reports whether the binding was
// mounted.
func (b *Binding[S]) Unmount() bool {
	b.mu.Lock()
	sub := b.sub
	b.sub = nil
	b.mu.Unlock()
	return sub.Unsubscribe()
}

// Mounted reports whether the binding currently holds a subscription.
func (b *Binding[S]) Mounted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sub != nil
}
