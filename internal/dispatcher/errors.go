package dispatcher

import (
	"errors"
	"fmt"

	"github.com/five82/fluxview/internal/action"
)

var (
	// ErrInvalidCallback is returned when Register is given a nil callback.
	ErrInvalidCallback = errors.New("callback cannot be nil")

	// ErrUnknownSubscription is returned when unregistering a token that is not registered.
	ErrUnknownSubscription = errors.New("unknown subscription")

	// ErrNilAction is returned when Dispatch is called with a nil action.
	ErrNilAction = errors.New("action cannot be nil")

	// ErrDispatchInProgress is returned when Dispatch is called before the
	// current dispatch cycle has finished.
	ErrDispatchInProgress = errors.New("cannot dispatch in the middle of a dispatch")

	// ErrHandlerPanic is matched by PanicError.
	ErrHandlerPanic = errors.New("handler panicked")
)

// HandlerError wraps an error returned by a registered callback.
type HandlerError struct {
	Token  Token
	Action action.Type
	Err    error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %s failed on %s: %v", e.Token, e.Action, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError records a recovered panic from a registered callback.
type PanicError struct {
	Token  Token
	Action action.Type
	Value  any
	Stack  []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("handler %s panicked on %s: %v", e.Token, e.Action, e.Value)
}

// Is allows errors.Is to match PanicError with ErrHandlerPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrHandlerPanic
}
