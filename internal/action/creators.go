package action

import (
	"time"

	"github.com/google/uuid"
)

// Dispatcher delivers an action to every registered store.
type Dispatcher interface {
	Dispatch(Action) error
}

// Creators turns user-facing events into dispatched actions.
type Creators struct {
	d     Dispatcher
	newID func() string
}

// NewCreators returns action creators bound to d.
func NewCreators(d Dispatcher) *Creators {
	return &Creators{d: d, newID: uuid.NewString}
}

func (c *Creators) send(a Action) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return c.d.Dispatch(a)
}

func (c *Creators) ToggleLoop() error         { return c.send(ToggleLoop{}) }
func (c *Creators) ToggleShuffle() error      { return c.send(ToggleShuffle{}) }
func (c *Creators) TogglePlaylistSave() error { return c.send(TogglePlaylistSave{}) }
func (c *Creators) ToggleAutoPlay() error     { return c.send(ToggleAutoPlay{}) }
func (c *Creators) ToggleThemeMode() error    { return c.send(ToggleThemeMode{}) }
func (c *Creators) ToggleSidebar() error      { return c.send(ToggleSidebar{}) }
func (c *Creators) HideSidebar() error        { return c.send(HideSidebar{}) }
func (c *Creators) ToggleMobileSearch() error { return c.send(ToggleMobileSearch{}) }

func (c *Creators) ToggleUserNavigation() error {
	return c.send(ToggleUserNavigation{})
}

func (c *Creators) SetViewerMode(theater bool) error {
	return c.send(SetViewerMode{TheaterMode: theater})
}

func (c *Creators) SetPlayerVolume(volume float64) error {
	return c.send(SetPlayerVolume{Volume: volume})
}

func (c *Creators) SetPlayerMuted(muted bool) error {
	return c.send(SetPlayerMuted{Muted: muted})
}

func (c *Creators) SetVideoQuality(quality int) error {
	return c.send(SetVideoQuality{Quality: quality})
}

func (c *Creators) SetPlaybackSpeed(speed float64) error {
	return c.send(SetPlaybackSpeed{Speed: speed})
}

func (c *Creators) LoadMedia(mediaID string, duration time.Duration) error {
	return c.send(LoadMedia{MediaID: mediaID, Duration: duration})
}

func (c *Creators) InitPage(page string) error {
	return c.send(InitPage{Page: page})
}

func (c *Creators) SetThemeMode(mode ThemeMode) error {
	return c.send(SetThemeMode{Mode: mode})
}

// AddNotification queues text under a freshly minted id and returns the id so
// the caller can dismiss it later. The id is returned even when dispatch
// reports handler faults, since the stores may still have applied it.
func (c *Creators) AddNotification(text string) (string, error) {
	id := c.newID()
	return id, c.send(AddNotification{Notification: text, NotificationID: id})
}

func (c *Creators) RemoveNotification(id string) error {
	return c.send(RemoveNotification{NotificationID: id})
}

func (c *Creators) RequestPredictions(query string) error {
	return c.send(RequestPredictions{Query: query})
}

func (c *Creators) LoadPredictions(query string, predictions []string) error {
	dup := make([]string, len(predictions))
	copy(dup, predictions)
	return c.send(LoadPredictions{Query: query, Predictions: dup})
}
