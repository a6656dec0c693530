package store

import (
	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/prefs"
)

// Options configure NewSet.
type Options struct {
	Prefs          *prefs.File // nil uses in-memory defaults
	Logger         zerolog.Logger
	SidebarVisible bool
}

// Set is every store the application uses, registered with one dispatcher.
type Set struct {
	PlaylistView *PlaylistView
	VideoViewer  *VideoViewer
	Media        *Media
	Page         *Page
	Theme        *Theme
	Layout       *Layout
	Search       *SearchField
}

// NewSet builds the stores in a fixed order, which is also the order in which
// they receive each action.
func NewSet(r Registrar, opts Options) (*Set, error) {
	p := opts.Prefs
	if p == nil {
		p = prefs.NewMemory(prefs.Defaults())
	}
	log := opts.Logger

	var (
		set Set
		err error
	)
	if set.PlaylistView, err = NewPlaylistView(r, log); err != nil {
		return nil, err
	}
	if set.VideoViewer, err = NewVideoViewer(r, p, log); err != nil {
		return nil, err
	}
	if set.Media, err = NewMedia(r, log); err != nil {
		return nil, err
	}
	if set.Page, err = NewPage(r, p, log); err != nil {
		return nil, err
	}
	if set.Theme, err = NewTheme(r, p, log); err != nil {
		return nil, err
	}
	if set.Layout, err = NewLayout(r, opts.SidebarVisible, log); err != nil {
		return nil, err
	}
	if set.Search, err = NewSearchField(r, log); err != nil {
		return nil, err
	}
	return &set, nil
}
