package journal

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
	"github.com/five82/fluxview/internal/dispatcher"
	"github.com/five82/fluxview/internal/store"
)

func newSet(t *testing.T) (*dispatcher.Dispatcher, *store.Set) {
	t.Helper()
	d := dispatcher.New()
	set, err := store.NewSet(d, store.Options{Logger: zerolog.Nop(), SidebarVisible: true})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return d, set
}

func TestRecordReplayRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	d, set := newSet(t)
	rec := NewRecorder(&buf)
	if _, err := d.Register(rec.Callback()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	actions := []action.Action{
		action.ToggleLoop{},
		action.SetPlayerVolume{Volume: 0.75},
		action.SetVideoQuality{Quality: 1080},
		action.AddNotification{Notification: "Saved!", NotificationID: "n1"},
		action.InitPage{Page: store.MediaPage},
		action.RequestPredictions{Query: "sin"},
		action.LoadPredictions{Query: "sin", Predictions: []string{"Sintel"}},
		action.ToggleThemeMode{},
	}
	for _, a := range actions {
		if err := d.Dispatch(a); err != nil {
			t.Fatalf("Dispatch(%s): %v", a.Type(), err)
		}
	}

	d2, set2 := newSet(t)
	n, err := Replay(&buf, d2)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if n != len(actions) {
		t.Fatalf("Replay n = %d, want %d", n, len(actions))
	}

	if got, want := set2.PlaylistView.Snapshot(), set.PlaylistView.Snapshot(); got != want {
		t.Fatalf("PlaylistView = %+v, want %+v", got, want)
	}
	if got, want := set2.VideoViewer.Snapshot(), set.VideoViewer.Snapshot(); got != want {
		t.Fatalf("VideoViewer = %+v, want %+v", got, want)
	}
	if got, want := set2.Page.Snapshot(), set.Page.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Page = %+v, want %+v", got, want)
	}
	if got, want := set2.Search.Snapshot(), set.Search.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Search = %+v, want %+v", got, want)
	}
	if got, want := set2.Theme.Snapshot(), set.Theme.Snapshot(); got != want {
		t.Fatalf("Theme = %+v, want %+v", got, want)
	}
	if got, want := set2.Layout.Snapshot(), set.Layout.Snapshot(); got != want {
		t.Fatalf("Layout = %+v, want %+v", got, want)
	}
}

func TestReplaySkipsCommentsAndBlankLines(t *testing.T) {
	d, set := newSet(t)
	input := strings.Join([]string{
		"# turn loop on",
		"",
		`{"type":"TOGGLE_LOOP"}`,
		"   ",
		`  {"type":"SET_PLAYER_VOLUME","playerVolume":0.5}  `,
	}, "\n")

	n, err := Replay(strings.NewReader(input), d)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	if !set.PlaylistView.Snapshot().Loop || set.VideoViewer.Snapshot().Volume != 0.5 {
		t.Fatal("replayed actions not applied")
	}
}

func TestReplayStopsOnDecodeError(t *testing.T) {
	d, set := newSet(t)
	input := `{"type":"TOGGLE_LOOP"}
{"type":"NOT_AN_ACTION"}
{"type":"TOGGLE_SHUFFLE"}`

	n, err := Replay(strings.NewReader(input), d)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Replay = %v, want *DecodeError", err)
	}
	if de.Line != 2 {
		t.Fatalf("Line = %d, want 2", de.Line)
	}
	if !errors.Is(err, action.ErrUnknownType) {
		t.Fatalf("Replay = %v, want ErrUnknownType", err)
	}
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if set.PlaylistView.Snapshot().Shuffle {
		t.Fatal("Shuffle applied after decode error")
	}
}

func TestReplayCollectsHandlerFaults(t *testing.T) {
	d, set := newSet(t)
	boom := errors.New("boom")
	if _, err := d.Register(func(action.Action) error { return boom }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	n, err := Replay(strings.NewReader("{\"type\":\"TOGGLE_LOOP\"}\n{\"type\":\"TOGGLE_SHUFFLE\"}\n"), d)
	if !errors.Is(err, boom) {
		t.Fatalf("Replay = %v, want boom", err)
	}
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	if got := set.PlaylistView.Snapshot(); !got.Loop || !got.Shuffle {
		t.Fatalf("PlaylistView = %+v, want both applied", got)
	}
}

func TestCreateAppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "journal.jsonl")
	for range 2 {
		rec, err := Create(path)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := rec.Record(action.ToggleLoop{}); err != nil {
			t.Fatalf("Record: %v", err)
		}
		if err := rec.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	d, set := newSet(t)
	n, err := ReplayFile(path, d)
	if err != nil {
		t.Fatalf("ReplayFile: %v", err)
	}
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	if set.PlaylistView.Snapshot().Loop {
		t.Fatal("Loop = true after two toggles")
	}
}

func TestReplayFileMissing(t *testing.T) {
	d, _ := newSet(t)
	if _, err := ReplayFile(filepath.Join(t.TempDir(), "missing"), d); err == nil {
		t.Fatal("ReplayFile on missing file returned nil error")
	}
}
