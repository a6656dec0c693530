package store

import (
	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
)

// MediaPage is the page id on which the sidebar starts collapsed.
const MediaPage = "media"

// LayoutState holds the visibility of the page chrome.
type LayoutState struct {
	SidebarVisible        bool
	MobileSearchVisible   bool
	UserNavigationVisible bool
}

// Layout owns sidebar and menu visibility.
type Layout struct {
	*slice[LayoutState]
	sidebarDefault bool
}

// NewLayout creates the store and registers it with r. sidebarVisible is the
// sidebar state for every page except the media page.
func NewLayout(r Registrar, sidebarVisible bool, log zerolog.Logger) (*Layout, error) {
	initial := LayoutState{SidebarVisible: sidebarVisible}
	s := &Layout{slice: newSlice("layout", initial, nil, log), sidebarDefault: sidebarVisible}
	if err := s.register(r, s.handle); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Layout) handle(a action.Action) error {
	prev := s.Snapshot()
	next := prev
	switch v := a.(type) {
	case action.ToggleSidebar:
		next.SidebarVisible = !next.SidebarVisible
	case action.HideSidebar:
		next.SidebarVisible = false
	case action.ToggleMobileSearch:
		next.MobileSearchVisible = !next.MobileSearchVisible
	case action.ToggleUserNavigation:
		next.UserNavigationVisible = !next.UserNavigationVisible
	case action.InitPage:
		if s.rejectMalformed(v) {
			return nil
		}
		next.SidebarVisible = s.sidebarDefault && v.Page != MediaPage
		next.MobileSearchVisible = false
		next.UserNavigationVisible = false
	default:
		return nil
	}
	if next == prev {
		return nil
	}
	s.commit(next)
	return nil
}
