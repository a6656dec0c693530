package store

import (
	"maps"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
)

// MediaState tracks the loaded media item and known durations.
type MediaState struct {
	CurrentID     string
	Durations     map[string]time.Duration
	ActiveQuality int
}

// Media caches media durations and the rendition playing for the current item.
type Media struct {
	*slice[MediaState]
}

func cloneMedia(s MediaState) MediaState {
	s.Durations = maps.Clone(s.Durations)
	return s
}

// NewMedia creates the store and registers it with r.
func NewMedia(r Registrar, log zerolog.Logger) (*Media, error) {
	initial := MediaState{Durations: map[string]time.Duration{}}
	s := &Media{newSlice("media", initial, cloneMedia, log)}
	if err := s.register(r, s.handle); err != nil {
		return nil, err
	}
	return s, nil
}

// Duration returns the cached duration of id.
func (s *Media) Duration(id string) (DurationInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.state.Durations[id]
	if !ok {
		return DurationInfo{}, false
	}
	return NewDurationInfo(d), true
}

func (s *Media) handle(a action.Action) error {
	prev := s.Snapshot()
	next := cloneMedia(prev)
	switch v := a.(type) {
	case action.LoadMedia:
		if s.rejectMalformed(v) {
			return nil
		}
		old, known := prev.Durations[v.MediaID]
		// Zero means the sender doesn't know the duration.
		dur := v.Duration
		if dur == 0 && known {
			dur = old
		}
		if prev.CurrentID == v.MediaID && known && old == dur {
			return nil
		}
		if next.Durations == nil {
			next.Durations = make(map[string]time.Duration)
		}
		next.CurrentID = v.MediaID
		next.Durations[v.MediaID] = dur
	case action.SetVideoQuality:
		if s.rejectMalformed(v) {
			return nil
		}
		if prev.ActiveQuality == v.Quality {
			return nil
		}
		next.ActiveQuality = v.Quality
	default:
		return nil
	}
	s.commit(next)
	return nil
}
