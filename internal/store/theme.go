package store

import (
	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
	"github.com/five82/fluxview/internal/prefs"
)

// ThemeState holds the active colour scheme.
type ThemeState struct {
	Mode action.ThemeMode
}

// Theme owns the light/dark mode switch.
type Theme struct {
	*slice[ThemeState]
	prefs *prefs.File
}

// NewTheme creates the store, seeded from p, and registers it with r.
func NewTheme(r Registrar, p *prefs.File, log zerolog.Logger) (*Theme, error) {
	mode := action.ThemeMode(p.Get().ThemeMode)
	if !mode.Valid() {
		mode = action.ThemeDark
	}
	s := &Theme{slice: newSlice("theme", ThemeState{Mode: mode}, nil, log), prefs: p}
	if err := s.register(r, s.handle); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Theme) handle(a action.Action) error {
	prev := s.Snapshot()
	var mode action.ThemeMode
	switch v := a.(type) {
	case action.ToggleThemeMode:
		mode = prev.Mode.Opposite()
	case action.SetThemeMode:
		if s.rejectMalformed(v) {
			return nil
		}
		mode = v.Mode
	default:
		return nil
	}
	if mode == prev.Mode {
		return nil
	}

	s.commit(ThemeState{Mode: mode})
	if err := s.prefs.Update(func(p *prefs.Prefs) { p.ThemeMode = string(mode) }); err != nil {
		s.log.Warn().Err(err).Msg("persist theme pref")
	}
	return nil
}
