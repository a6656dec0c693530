package dispatcher

import (
	"errors"
	"runtime/debug"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
)

// Callback receives every dispatched action. Returning an error reports a
// handler fault; it does not stop delivery to the other callbacks.
type Callback func(action.Action) error

// Token identifies a registered callback.
type Token string

// Stats counts dispatcher activity since construction.
type Stats struct {
	Dispatched uint64 // completed dispatch cycles
	Delivered  uint64 // callback invocations that returned nil
	Faults     uint64 // callback errors and panics
	Rejected   uint64 // calls refused by the in-progress guard
}

type entry struct {
	token   Token
	cb      Callback
	removed bool
}

// Dispatcher delivers actions to registered callbacks, synchronously and in
// registration order.
type Dispatcher struct {
	mu          sync.Mutex
	entries     []*entry
	nextID      uint64
	dispatching bool
	stats       Stats
	log         zerolog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used to report handler faults.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// New creates an empty dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register appends cb to the registry and returns its token.
func (d *Dispatcher) Register(cb Callback) (Token, error) {
	if cb == nil {
		return "", ErrInvalidCallback
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	tok := Token("ID_" + strconv.FormatUint(d.nextID, 10))
	d.entries = append(d.entries, &entry{token: tok, cb: cb})
	return tok, nil
}

// Unregister removes the callback registered under tok. A callback removed
// while a dispatch is running is not invoked for the rest of that cycle.
func (d *Dispatcher) Unregister(tok Token) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, e := range d.entries {
		if e.token == tok {
			e.removed = true
			d.entries = append(d.entries[:i:i], d.entries[i+1:]...)
			return nil
		}
	}
	return ErrUnknownSubscription
}

// Dispatch delivers a to every registered callback before returning.
//
// Handler errors and panics are isolated: each is recorded, logged, and
// delivery continues with the next callback. The collected faults are
// returned joined once the cycle completes.
//
// A call made while another cycle is running, including from inside a
// callback, returns ErrDispatchInProgress without delivering anything.
func (d *Dispatcher) Dispatch(a action.Action) error {
	if a == nil {
		return ErrNilAction
	}

	d.mu.Lock()
	if d.dispatching {
		d.stats.Rejected++
		d.mu.Unlock()
		d.log.Error().Str("action", string(a.Type())).Msg("dispatch rejected: cycle in progress")
		return ErrDispatchInProgress
	}
	d.dispatching = true
	snapshot := make([]*entry, len(d.entries))
	copy(snapshot, d.entries)
	d.mu.Unlock()

	var faults []error
	var delivered uint64
	for _, e := range snapshot {
		if d.isRemoved(e) {
			continue
		}
		if err := d.invoke(e, a); err != nil {
			faults = append(faults, err)
			d.log.Error().
				Err(err).
				Str("action", string(a.Type())).
				Str("handler", string(e.token)).
				Msg("store handler fault")
			continue
		}
		delivered++
	}

	d.mu.Lock()
	d.dispatching = false
	d.stats.Dispatched++
	d.stats.Delivered += delivered
	d.stats.Faults += uint64(len(faults))
	d.mu.Unlock()

	return errors.Join(faults...)
}

func (d *Dispatcher) isRemoved(e *entry) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return e.removed
}

func (d *Dispatcher) invoke(e *entry, a action.Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Token: e.token, Action: a.Type(), Value: r, Stack: debug.Stack()}
		}
	}()
	if cbErr := e.cb(a); cbErr != nil {
		return &HandlerError{Token: e.token, Action: a.Type(), Err: cbErr}
	}
	return nil
}

// IsDispatching reports whether a dispatch cycle is running.
func (d *Dispatcher) IsDispatching() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dispatching
}

// Len returns the number of registered callbacks.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Stats returns a copy of the activity counters.
func (d *Dispatcher) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}
