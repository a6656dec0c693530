package store

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
	"github.com/five82/fluxview/internal/dispatcher"
	"github.com/five82/fluxview/internal/emitter"
)

// Registrar accepts a store's dispatch callback. *dispatcher.Dispatcher
// satisfies it.
type Registrar interface {
	Register(dispatcher.Callback) (dispatcher.Token, error)
}

// slice owns one piece of state of type S. Writes happen only inside the
// owning store's dispatch callback; reads may come from any goroutine.
type slice[S any] struct {
	name    string
	mu      sync.RWMutex
	state   S
	clone   func(S) S
	changes emitter.Emitter[S]
	token   dispatcher.Token
	log     zerolog.Logger
}

func newSlice[S any](name string, initial S, clone func(S) S, log zerolog.Logger) *slice[S] {
	if clone == nil {
		clone = func(s S) S { return s }
	}
	return &slice[S]{
		name:  name,
		state: initial,
		clone: clone,
		log:   log.With().Str("store", name).Logger(),
	}
}

// register hooks handle into r. It must be called exactly once.
func (s *slice[S]) register(r Registrar, handle dispatcher.Callback) error {
	tok, err := r.Register(handle)
	if err != nil {
		return fmt.Errorf("register %s store: %w", s.name, err)
	}
	s.token = tok
	return nil
}

// Snapshot returns a copy of the current state.
func (s *slice[S]) Snapshot() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clone(s.state)
}

// Subscribe registers fn to receive the new state after every change.
func (s *slice[S]) Subscribe(fn func(S)) *emitter.Subscription {
	return s.changes.Subscribe(fn)
}

// Token returns the dispatcher token of the store's callback.
func (s *slice[S]) Token() dispatcher.Token {
	return s.token
}

// commit swaps in next and notifies subscribers.
func (s *slice[S]) commit(next S) {
	s.mu.Lock()
	s.state = s.clone(next)
	s.mu.Unlock()

	s.changes.Emit(s.clone(next))
}

// rejectMalformed reports whether a fails validation, logging it if so.
func (s *slice[S]) rejectMalformed(a action.Action) bool {
	err := a.Validate()
	if err == nil {
		return false
	}
	s.log.Warn().Err(err).Str("action", string(a.Type())).Msg("ignoring malformed payload")
	return true
}
