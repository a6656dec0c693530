// Package dispatcher fans actions out to the stores.
//
// # Overview
//
// The Dispatcher is the single path by which view state changes. Action
// creators call Dispatch; every store registers exactly one Callback at
// construction time and receives every action, in registration order,
// before Dispatch returns:
//
//	UI event ──> Creators.SetPlayerVolume(0.75)
//	                 │
//	                 ▼
//	           Dispatch(action)
//	                 │
//	     ┌───────────┼───────────┐
//	     ▼           ▼           ▼
//	 PlaylistView VideoViewer  Media ...   (registration order)
//	     │           │           │
//	   ignore     mutate+emit  ignore
//
// One Dispatcher is created by the composition root and passed to each store
// constructor. There is no package-level instance, so tests build a fresh one
// per case.
//
// # Dispatch Cycles
//
// A dispatch cycle runs to completion on the calling goroutine. Calling
// Dispatch again before the cycle ends, whether from a store callback or from
// another goroutine, returns ErrDispatchInProgress and delivers nothing.
// Stores express cross-store effects by handling the same action type
// independently, never by dispatching from inside a handler.
//
// # Fault Isolation
//
// A callback that returns an error or panics does not starve the callbacks
// registered after it:
//
//   - errors are wrapped in *HandlerError
//   - panics are recovered into *PanicError (errors.Is matches ErrHandlerPanic)
//
// Every fault is logged and the faults of one cycle are returned together via
// errors.Join after all callbacks have run.
//
// # Registration
//
// Register returns an opaque Token ("ID_1", "ID_2", ...). Registering the same
// function twice registers it twice. Unregister with an unknown token returns
// ErrUnknownSubscription, which callers may ignore.
package dispatcher
