package dispatcher

import (
	"errors"
	"reflect"
	"testing"

	"github.com/five82/fluxview/internal/action"
)

func mustRegister(t *testing.T, d *Dispatcher, cb Callback) Token {
	t.Helper()
	tok, err := d.Register(cb)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return tok
}

func TestDispatch_RegistrationOrder(t *testing.T) {
	d := New()
	var log []string
	for _, id := range []string{"S1", "S2", "S3"} {
		mustRegister(t, d, func(action.Action) error {
			log = append(log, id)
			return nil
		})
	}

	if err := d.Dispatch(action.ToggleLoop{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if want := []string{"S1", "S2", "S3"}; !reflect.DeepEqual(log, want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
}

func TestDispatch_DeliversSameAction(t *testing.T) {
	d := New()
	var got []action.Action
	mustRegister(t, d, func(a action.Action) error { got = append(got, a); return nil })
	mustRegister(t, d, func(a action.Action) error { got = append(got, a); return nil })

	sent := action.SetPlayerVolume{Volume: 0.75}
	if err := d.Dispatch(sent); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(got) != 2 || got[0] != sent || got[1] != sent {
		t.Fatalf("got = %#v, want two copies of %#v", got, sent)
	}
}

func TestRegister_NilCallback(t *testing.T) {
	d := New()
	if _, err := d.Register(nil); !errors.Is(err, ErrInvalidCallback) {
		t.Fatalf("Register(nil) = %v, want ErrInvalidCallback", err)
	}
	if d.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", d.Len())
	}
}

func TestRegister_TokensAreDistinct(t *testing.T) {
	d := New()
	noop := func(action.Action) error { return nil }
	a := mustRegister(t, d, noop)
	b := mustRegister(t, d, noop)
	if a == b {
		t.Fatalf("tokens %q and %q should differ", a, b)
	}
	if a != "ID_1" || b != "ID_2" {
		t.Fatalf("tokens = %q, %q, want ID_1, ID_2", a, b)
	}
}

func TestUnregister(t *testing.T) {
	d := New()
	calls := 0
	tok := mustRegister(t, d, func(action.Action) error { calls++; return nil })

	if err := d.Unregister(tok); err != nil {
		t.Fatalf("Unregister: %v", err)
	}
	if err := d.Unregister(tok); !errors.Is(err, ErrUnknownSubscription) {
		t.Fatalf("second Unregister = %v, want ErrUnknownSubscription", err)
	}
	if err := d.Dispatch(action.ToggleLoop{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if calls != 0 {
		t.Fatalf("calls = %d, want 0", calls)
	}
}

func TestUnregister_DuringDispatchSkipsLaterCallback(t *testing.T) {
	d := New()
	var log []string
	var second Token
	mustRegister(t, d, func(action.Action) error {
		log = append(log, "first")
		return d.Unregister(second)
	})
	second = mustRegister(t, d, func(action.Action) error {
		log = append(log, "second")
		return nil
	})

	if err := d.Dispatch(action.ToggleLoop{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if want := []string{"first"}; !reflect.DeepEqual(log, want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
}

func TestDispatch_NilAction(t *testing.T) {
	if err := New().Dispatch(nil); !errors.Is(err, ErrNilAction) {
		t.Fatalf("Dispatch(nil) = %v, want ErrNilAction", err)
	}
}

func TestDispatch_ReentrantCallRejected(t *testing.T) {
	d := New()
	var inner error
	var log []string
	mustRegister(t, d, func(a action.Action) error {
		log = append(log, string(a.Type()))
		if a.Type() == action.TypeToggleLoop {
			inner = d.Dispatch(action.ToggleShuffle{})
		}
		return nil
	})

	if err := d.Dispatch(action.ToggleLoop{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !errors.Is(inner, ErrDispatchInProgress) {
		t.Fatalf("inner Dispatch = %v, want ErrDispatchInProgress", inner)
	}
	if want := []string{"TOGGLE_LOOP"}; !reflect.DeepEqual(log, want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	if d.IsDispatching() {
		t.Fatal("IsDispatching() = true after cycle completed")
	}
	if s := d.Stats(); s.Rejected != 1 || s.Dispatched != 1 {
		t.Fatalf("Stats = %+v, want Rejected=1 Dispatched=1", s)
	}

	// The guard resets once the cycle is over.
	if err := d.Dispatch(action.ToggleShuffle{}); err != nil {
		t.Fatalf("Dispatch after cycle: %v", err)
	}
}

func TestDispatch_HandlerErrorIsolated(t *testing.T) {
	d := New()
	boom := errors.New("boom")
	var log []string
	mustRegister(t, d, func(action.Action) error { log = append(log, "S1"); return nil })
	bad := mustRegister(t, d, func(action.Action) error { log = append(log, "S2"); return boom })
	mustRegister(t, d, func(action.Action) error { log = append(log, "S3"); return nil })

	err := d.Dispatch(action.ToggleLoop{})
	if !errors.Is(err, boom) {
		t.Fatalf("Dispatch = %v, want boom", err)
	}
	var herr *HandlerError
	if !errors.As(err, &herr) {
		t.Fatalf("Dispatch = %v, want *HandlerError", err)
	}
	if herr.Token != bad || herr.Action != action.TypeToggleLoop {
		t.Fatalf("HandlerError = %+v, want token %s action TOGGLE_LOOP", herr, bad)
	}
	if want := []string{"S1", "S2", "S3"}; !reflect.DeepEqual(log, want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
}

func TestDispatch_HandlerPanicIsolated(t *testing.T) {
	d := New()
	reached := false
	mustRegister(t, d, func(action.Action) error { panic("kaboom") })
	mustRegister(t, d, func(action.Action) error { reached = true; return nil })

	err := d.Dispatch(action.ToggleLoop{})
	if !errors.Is(err, ErrHandlerPanic) {
		t.Fatalf("Dispatch = %v, want ErrHandlerPanic", err)
	}
	var perr *PanicError
	if !errors.As(err, &perr) || perr.Value != "kaboom" || len(perr.Stack) == 0 {
		t.Fatalf("PanicError = %+v, want value kaboom with stack", perr)
	}
	if !reached {
		t.Fatal("callback after panicking handler was not invoked")
	}
	if d.IsDispatching() {
		t.Fatal("IsDispatching() = true after panic")
	}

	s := d.Stats()
	if s.Faults != 1 || s.Delivered != 1 {
		t.Fatalf("Stats = %+v, want Faults=1 Delivered=1", s)
	}
}

func TestDispatch_MultipleFaultsJoined(t *testing.T) {
	d := New()
	e1 := errors.New("first")
	e2 := errors.New("second")
	mustRegister(t, d, func(action.Action) error { return e1 })
	mustRegister(t, d, func(action.Action) error { return e2 })

	err := d.Dispatch(action.ToggleLoop{})
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Fatalf("Dispatch = %v, want both faults", err)
	}
}

func TestDispatch_NoCallbacks(t *testing.T) {
	d := New()
	if err := d.Dispatch(action.ToggleLoop{}); err != nil {
		t.Fatalf("Dispatch = %v, want nil", err)
	}
	if s := d.Stats(); s.Dispatched != 1 {
		t.Fatalf("Dispatched = %d, want 1", s.Dispatched)
	}
}
