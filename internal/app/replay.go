package app

import (
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/dispatcher"
	"github.com/five82/fluxview/internal/journal"
	"github.com/five82/fluxview/internal/store"
)

// replay runs the journal at path through d and writes the resulting store
// state to out. Handler faults are reported after the state is written.
func replay(path string, d *dispatcher.Dispatcher, stores *store.Set, out io.Writer, log zerolog.Logger) error {
	n, replayErr := journal.ReplayFile(path, d)
	log.Info().Int("actions", n).Str("path", path).Msg("journal replayed")

	if err := toml.NewEncoder(out).Encode(newReport(n, stores)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if replayErr != nil {
		return fmt.Errorf("replay %s: %w", path, replayErr)
	}
	return nil
}

type report struct {
	Actions  int            `toml:"actions"`
	Playlist playlistReport `toml:"playlist_view"`
	Viewer   viewerReport   `toml:"video_viewer"`
	Media    mediaReport    `toml:"media"`
	Page     pageReport     `toml:"page"`
	Theme    themeReport    `toml:"theme"`
	Layout   layoutReport   `toml:"layout"`
	Search   searchReport   `toml:"search_field"`
}

type playlistReport struct {
	Loop    bool `toml:"loop"`
	Shuffle bool `toml:"shuffle"`
	Saved   bool `toml:"saved"`
}

type viewerReport struct {
	TheaterMode   bool    `toml:"theater_mode"`
	Volume        float64 `toml:"volume"`
	Muted         bool    `toml:"muted"`
	Quality       int     `toml:"quality"`
	PlaybackSpeed float64 `toml:"playback_speed"`
}

type mediaReport struct {
	CurrentID     string            `toml:"current_id"`
	ActiveQuality int               `toml:"active_quality"`
	Durations     map[string]string `toml:"durations"`
	ISO8601       map[string]string `toml:"durations_iso8601"`
	Labels        map[string]string `toml:"duration_labels"`
}

type pageReport struct {
	Page          string   `toml:"page"`
	AutoPlay      bool     `toml:"autoplay"`
	Notifications []string `toml:"notifications"`
}

type themeReport struct {
	Mode string `toml:"mode"`
}

type layoutReport struct {
	SidebarVisible        bool `toml:"sidebar_visible"`
	MobileSearchVisible   bool `toml:"mobile_search_visible"`
	UserNavigationVisible bool `toml:"user_navigation_visible"`
}

type searchReport struct {
	Query       string   `toml:"query"`
	Pending     bool     `toml:"pending"`
	Predictions []string `toml:"predictions"`
}

func newReport(n int, s *store.Set) report {
	playlist := s.PlaylistView.Snapshot()
	viewer := s.VideoViewer.Snapshot()
	media := s.Media.Snapshot()
	page := s.Page.Snapshot()
	layout := s.Layout.Snapshot()
	search := s.Search.Snapshot()

	durations := make(map[string]string, len(media.Durations))
	iso := make(map[string]string, len(media.Durations))
	labels := make(map[string]string, len(media.Durations))
	for id, d := range media.Durations {
		info := store.NewDurationInfo(d)
		durations[id] = info.String()
		iso[id] = info.ISO8601()
		labels[id] = info.Label()
	}
	notes := make([]string, 0, len(page.Notifications))
	for _, note := range page.Notifications {
		notes = append(notes, note.ID+": "+note.Text)
	}
	predictions := search.Predictions
	if predictions == nil {
		predictions = []string{}
	}

	return report{
		Actions:  n,
		Playlist: playlistReport(playlist),
		Viewer:   viewerReport(viewer),
		Media: mediaReport{
			CurrentID:     media.CurrentID,
			ActiveQuality: media.ActiveQuality,
			Durations:     durations,
			ISO8601:       iso,
			Labels:        labels,
		},
		Page:   pageReport{Page: page.Page, AutoPlay: page.AutoPlay, Notifications: notes},
		Theme:  themeReport{Mode: string(s.Theme.Snapshot().Mode)},
		Layout: layoutReport(layout),
		Search: searchReport{Query: search.Query, Pending: search.Pending, Predictions: predictions},
	}
}
