package store

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
	"github.com/five82/fluxview/internal/prefs"
)

// Notification is a message shown to the user until dismissed.
type Notification struct {
	ID   string
	Text string
}

// PageState holds page-wide state.
type PageState struct {
	Page          string
	AutoPlay      bool
	Notifications []Notification
}

// Page owns the current page id, media autoplay and the notification queue.
type Page struct {
	*slice[PageState]
	prefs *prefs.File
}

func clonePage(s PageState) PageState {
	s.Notifications = slices.Clone(s.Notifications)
	return s
}

// NewPage creates the store, seeded from p, and registers it with r.
func NewPage(r Registrar, p *prefs.File, log zerolog.Logger) (*Page, error) {
	initial := PageState{AutoPlay: p.Get().AutoPlay}
	s := &Page{slice: newSlice("page", initial, clonePage, log), prefs: p}
	if err := s.register(r, s.handle); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Page) handle(a action.Action) error {
	prev := s.Snapshot()
	next := clonePage(prev)
	switch v := a.(type) {
	case action.InitPage:
		if s.rejectMalformed(v) || prev.Page == v.Page {
			return nil
		}
		next.Page = v.Page
	case action.ToggleAutoPlay:
		next.AutoPlay = !next.AutoPlay
		s.commit(next)
		if err := s.prefs.Update(func(p *prefs.Prefs) { p.AutoPlay = next.AutoPlay }); err != nil {
			s.log.Warn().Err(err).Msg("persist autoplay pref")
		}
		return nil
	case action.AddNotification:
		if s.rejectMalformed(v) || indexOfNotification(prev.Notifications, v.NotificationID) >= 0 {
			return nil
		}
		next.Notifications = append(next.Notifications, Notification{ID: v.NotificationID, Text: v.Notification})
	case action.RemoveNotification:
		if s.rejectMalformed(v) {
			return nil
		}
		i := indexOfNotification(prev.Notifications, v.NotificationID)
		if i < 0 {
			return nil
		}
		next.Notifications = slices.Delete(next.Notifications, i, i+1)
	default:
		return nil
	}
	s.commit(next)
	return nil
}

func indexOfNotification(list []Notification, id string) int {
	return slices.IndexFunc(list, func(n Notification) bool { return n.ID == id })
}
