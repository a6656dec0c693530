package binding

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
	"github.com/five82/fluxview/internal/dispatcher"
	"github.com/five82/fluxview/internal/store"
)

func newPlaylist(t *testing.T) (*dispatcher.Dispatcher, *store.PlaylistView) {
	t.Helper()
	d := dispatcher.New()
	p, err := store.NewPlaylistView(d, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewPlaylistView: %v", err)
	}
	return d, p
}

func TestMountReturnsCurrentState(t *testing.T) {
	d, p := newPlaylist(t)
	if err := d.Dispatch(action.ToggleShuffle{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	b := New[store.PlaylistViewState](p, func(store.PlaylistViewState) {})
	got, err := b.Mount()
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if !got.Shuffle {
		t.Fatalf("Mount() = %+v, want Shuffle", got)
	}
	if !b.Mounted() {
		t.Fatal("Mounted() = false after Mount")
	}
}

func TestMountTwice(t *testing.T) {
	_, p := newPlaylist(t)
	b := New[store.PlaylistViewState](p, func(store.PlaylistViewState) {})
	if _, err := b.Mount(); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if _, err := b.Mount(); !errors.Is(err, ErrAlreadyMounted) {
		t.Fatalf("second Mount = %v, want ErrAlreadyMounted", err)
	}
}

func TestUnmountStopsNotifications(t *testing.T) {
	d, p := newPlaylist(t)
	var got []store.PlaylistViewState
	b := New(p, func(s store.PlaylistViewState) { got = append(got, s) })

	if _, err := b.Mount(); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if err := d.Dispatch(action.ToggleLoop{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !b.Unmount() {
		t.Fatal("Unmount() = false, want true")
	}
	if b.Unmount() {
		t.Fatal("second Unmount() = true, want false")
	}
	if err := d.Dispatch(action.ToggleLoop{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if len(got) != 1 || !got[0].Loop {
		t.Fatalf("changes = %+v, want exactly one with Loop", got)
	}
}

func TestRemountAfterUnmount(t *testing.T) {
	d, p := newPlaylist(t)
	calls := 0
	b := New(p, func(store.PlaylistViewState) { calls++ })

	if _, err := b.Mount(); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	b.Unmount()
	if _, err := b.Mount(); err != nil {
		t.Fatalf("remount: %v", err)
	}
	if err := d.Dispatch(action.ToggleLoop{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestQueueFlush(t *testing.T) {
	d, p := newPlaylist(t)
	var q Queue
	b := New(p, Watch[store.PlaylistViewState](&q, "playlist"))
	if _, err := b.Mount(); err != nil {
		t.Fatalf("Mount: %v", err)
	}

	if cmd := q.Flush(); cmd != nil {
		t.Fatal("Flush() on empty queue returned a command")
	}

	for range 3 {
		if err := d.Dispatch(action.ToggleLoop{}); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
	}
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after coalescing", q.Len())
	}

	cmd := q.Flush()
	if cmd == nil {
		t.Fatal("Flush() = nil, want command")
	}
	msg, ok := cmd().(ChangedMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want ChangedMsg", cmd())
	}
	if !msg.Has("playlist") || msg.Has("theme") {
		t.Fatalf("msg = %+v, want only playlist", msg)
	}
	if q.Len() != 0 {
		t.Fatalf("Len() = %d after Flush, want 0", q.Len())
	}
}

func TestUnmountFromAnotherViewsCallback(t *testing.T) {
	d, p := newPlaylist(t)

	var other *Binding[store.PlaylistViewState]
	late := 0
	first := New[store.PlaylistViewState](p, func(store.PlaylistViewState) { other.Unmount() })
	other = New[store.PlaylistViewState](p, func(store.PlaylistViewState) { late++ })
	if _, err := first.Mount(); err != nil {
		t.Fatalf("Mount first: %v", err)
	}
	if _, err := other.Mount(); err != nil {
		t.Fatalf("Mount other: %v", err)
	}

	if err := d.Dispatch(action.ToggleLoop{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if late != 0 {
		t.Fatalf("notifications after unmount = %d, want 0", late)
	}
	if other.Mounted() {
		t.Fatal("Mounted() = true after Unmount")
	}
}
