package store

import (
	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
)

// PlaylistViewState holds the playback toggles of the playlist panel.
type PlaylistViewState struct {
	Loop    bool
	Shuffle bool
	Saved   bool
}

// PlaylistView owns the playlist panel toggles.
type PlaylistView struct {
	*slice[PlaylistViewState]
}

// NewPlaylistView creates the store and registers it with r.
func NewPlaylistView(r Registrar, log zerolog.Logger) (*PlaylistView, error) {
	s := &PlaylistView{newSlice("playlist_view", PlaylistViewState{}, nil, log)}
	if err := s.register(r, s.handle); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PlaylistView) handle(a action.Action) error {
	next := s.Snapshot()
	switch a.(type) {
	case action.ToggleLoop:
		next.Loop = !next.Loop
	case action.ToggleShuffle:
		next.Shuffle = !next.Shuffle
	case action.TogglePlaylistSave:
		next.Saved = !next.Saved
	default:
		return nil
	}
	s.commit(next)
	return nil
}
