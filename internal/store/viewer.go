package store

import (
	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
	"github.com/five82/fluxview/internal/prefs"
)

// VideoViewerState holds the player settings the user controls.
type VideoViewerState struct {
	TheaterMode   bool
	Volume        float64
	Muted         bool
	Quality       int
	PlaybackSpeed float64
}

// VideoViewer owns player settings. Every change is written through to the
// preferences file so the next session starts with the same settings.
type VideoViewer struct {
	*slice[VideoViewerState]
	prefs *prefs.File
}

// NewVideoViewer creates the store, seeded from p, and registers it with r.
func NewVideoViewer(r Registrar, p *prefs.File, log zerolog.Logger) (*VideoViewer, error) {
	saved := p.Get()
	initial := VideoViewerState{
		TheaterMode:   saved.TheaterMode,
		Volume:        saved.Volume,
		Muted:         saved.Muted,
		Quality:       saved.Quality,
		PlaybackSpeed: saved.PlaybackSpeed,
	}
	s := &VideoViewer{slice: newSlice("video_viewer", initial, nil, log), prefs: p}
	if err := s.register(r, s.handle); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *VideoViewer) handle(a action.Action) error {
	prev := s.Snapshot()
	next := prev
	switch v := a.(type) {
	case action.SetViewerMode:
		next.TheaterMode = v.TheaterMode
	case action.SetPlayerVolume:
		if s.rejectMalformed(v) {
			return nil
		}
		next.Volume = v.Volume
	case action.SetPlayerMuted:
		next.Muted = v.Muted
	case action.SetVideoQuality:
		if s.rejectMalformed(v) {
			return nil
		}
		next.Quality = v.Quality
	case action.SetPlaybackSpeed:
		if s.rejectMalformed(v) {
			return nil
		}
		next.PlaybackSpeed = v.Speed
	default:
		return nil
	}
	if next == prev {
		return nil
	}

	s.commit(next)
	s.persist(a.Type(), next)
	return nil
}

func (s *VideoViewer) persist(t action.Type, st VideoViewerState) {
	err := s.prefs.Update(func(p *prefs.Prefs) {
		p.TheaterMode = st.TheaterMode
		p.Volume = st.Volume
		p.Muted = st.Muted
		p.Quality = st.Quality
		p.PlaybackSpeed = st.PlaybackSpeed
	})
	if err != nil {
		s.log.Warn().Err(err).Str("action", string(t)).Msg("persist viewer prefs")
	}
}
