package action

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Type identifies the semantic event an action describes.
type Type string

// Action type tags. The string values are the wire names used by the journal.
const (
	TypeToggleLoop           Type = "TOGGLE_LOOP"
	TypeToggleShuffle        Type = "TOGGLE_SHUFFLE"
	TypeTogglePlaylistSave   Type = "TOGGLE_SAVE"
	TypeSetViewerMode        Type = "SET_VIEWER_MODE"
	TypeSetPlayerVolume      Type = "SET_PLAYER_VOLUME"
	TypeSetPlayerMuted       Type = "SET_PLAYER_SOUND_MUTED"
	TypeSetVideoQuality      Type = "SET_VIDEO_QUALITY"
	TypeSetPlaybackSpeed     Type = "SET_VIDEO_PLAYBACK_SPEED"
	TypeLoadMedia            Type = "LOAD_MEDIA"
	TypeInitPage             Type = "INIT_PAGE"
	TypeToggleAutoPlay       Type = "TOGGLE_AUTO_PLAY"
	TypeAddNotification      Type = "ADD_NOTIFICATION"
	TypeRemoveNotification   Type = "REMOVE_NOTIFICATION"
	TypeToggleThemeMode      Type = "TOGGLE_THEME_MODE"
	TypeSetThemeMode         Type = "SET_THEME_MODE"
	TypeToggleSidebar        Type = "TOGGLE_SIDEBAR"
	TypeHideSidebar          Type = "HIDE_SIDEBAR"
	TypeToggleMobileSearch   Type = "TOGGLE_MOBILE_SEARCH_FIELD"
	TypeToggleUserNavigation Type = "TOGGLE_USER_NAVIGATION_MENU"
	TypeRequestPredictions   Type = "REQUEST_PREDICTIONS"
	TypeLoadPredictions      Type = "LOAD_PREDICTIONS"
)

// Payload limits.
const (
	MaxPlaybackSpeed = 16.0
)

var (
	// ErrMalformedPayload is returned when an action's payload fails validation.
	ErrMalformedPayload = errors.New("malformed action payload")

	// ErrUnknownType is returned when decoding an action with an unrecognized type tag.
	ErrUnknownType = errors.New("unknown action type")
)

// Action is an immutable tagged message describing one UI event.
// The set of implementations is closed to this package.
type Action interface {
	Type() Type
	Validate() error
	isAction()
}

// ThemeMode is the colour scheme selected by the user.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Valid reports whether m names a known mode.
func (m ThemeMode) Valid() bool {
	return m == ThemeLight || m == ThemeDark
}

// Opposite returns the other mode. Unknown modes flip to dark.
func (m ThemeMode) Opposite() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func malformed(t Type, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", t, ErrMalformedPayload, fmt.Sprintf(format, args...))
}

type marker struct{}

func (marker) isAction() {}

// ToggleLoop flips the playlist loop flag.
type ToggleLoop struct{ marker }

func (ToggleLoop) Type() Type      { return TypeToggleLoop }
func (ToggleLoop) Validate() error { return nil }

// ToggleShuffle flips the playlist shuffle flag.
type ToggleShuffle struct{ marker }

func (ToggleShuffle) Type() Type      { return TypeToggleShuffle }
func (ToggleShuffle) Validate() error { return nil }

// TogglePlaylistSave flips whether the viewed playlist is saved to the library.
type TogglePlaylistSave struct{ marker }

func (TogglePlaylistSave) Type() Type      { return TypeTogglePlaylistSave }
func (TogglePlaylistSave) Validate() error { return nil }

// SetViewerMode switches the player between default and theater layout.
type SetViewerMode struct {
	marker
	TheaterMode bool
}

func (SetViewerMode) Type() Type      { return TypeSetViewerMode }
func (SetViewerMode) Validate() error { return nil }

// SetPlayerVolume sets the player volume. Volume must be within [0, 1].
type SetPlayerVolume struct {
	marker
	Volume float64
}

func (SetPlayerVolume) Type() Type { return TypeSetPlayerVolume }

func (a SetPlayerVolume) Validate() error {
	// NaN fails both comparisons.
	if !(a.Volume >= 0 && a.Volume <= 1) {
		return malformed(a.Type(), "volume %v outside [0, 1]", a.Volume)
	}
	return nil
}

// SetPlayerMuted mutes or unmutes the player.
type SetPlayerMuted struct {
	marker
	Muted bool
}

func (SetPlayerMuted) Type() Type      { return TypeSetPlayerMuted }
func (SetPlayerMuted) Validate() error { return nil }

// SetVideoQuality selects a rendition by its vertical resolution.
type SetVideoQuality struct {
	marker
	Quality int
}

func (SetVideoQuality) Type() Type { return TypeSetVideoQuality }

func (a SetVideoQuality) Validate() error {
	if a.Quality <= 0 {
		return malformed(a.Type(), "quality %d must be positive", a.Quality)
	}
	return nil
}

// SetPlaybackSpeed sets the playback rate multiplier.
type SetPlaybackSpeed struct {
	marker
	Speed float64
}

func (SetPlaybackSpeed) Type() Type { return TypeSetPlaybackSpeed }

func (a SetPlaybackSpeed) Validate() error {
	if !(a.Speed > 0 && a.Speed <= MaxPlaybackSpeed) {
		return malformed(a.Type(), "speed %v outside (0, %v]", a.Speed, MaxPlaybackSpeed)
	}
	return nil
}

// LoadMedia announces the media item now shown in the player.
type LoadMedia struct {
	marker
	MediaID  string
	Duration time.Duration
}

func (LoadMedia) Type() Type { return TypeLoadMedia }

func (a LoadMedia) Validate() error {
	if strings.TrimSpace(a.MediaID) == "" {
		return malformed(a.Type(), "media id is empty")
	}
	if a.Duration < 0 {
		return malformed(a.Type(), "duration %v is negative", a.Duration)
	}
	return nil
}

// InitPage marks the start of a page view.
type InitPage struct {
	marker
	Page string
}

func (InitPage) Type() Type { return TypeInitPage }

func (a InitPage) Validate() error {
	if strings.TrimSpace(a.Page) == "" {
		return malformed(a.Type(), "page is empty")
	}
	return nil
}

// ToggleAutoPlay flips media autoplay.
type ToggleAutoPlay struct{ marker }

func (ToggleAutoPlay) Type() Type      { return TypeToggleAutoPlay }
func (ToggleAutoPlay) Validate() error { return nil }

// AddNotification queues a user-facing notification.
type AddNotification struct {
	marker
	Notification   string
	NotificationID string
}

func (AddNotification) Type() Type { return TypeAddNotification }

func (a AddNotification) Validate() error {
	if strings.TrimSpace(a.NotificationID) == "" {
		return malformed(a.Type(), "notification id is empty")
	}
	if strings.TrimSpace(a.Notification) == "" {
		return malformed(a.Type(), "notification text is empty")
	}
	return nil
}

// RemoveNotification dismisses a notification by id.
type RemoveNotification struct {
	marker
	NotificationID string
}

func (RemoveNotification) Type() Type { return TypeRemoveNotification }

func (a RemoveNotification) Validate() error {
	if strings.TrimSpace(a.NotificationID) == "" {
		return malformed(a.Type(), "notification id is empty")
	}
	return nil
}

// ToggleThemeMode switches between light and dark mode.
type ToggleThemeMode struct{ marker }

func (ToggleThemeMode) Type() Type      { return TypeToggleThemeMode }
func (ToggleThemeMode) Validate() error { return nil }

// SetThemeMode selects a theme mode explicitly.
type SetThemeMode struct {
	marker
	Mode ThemeMode
}

func (SetThemeMode) Type() Type { return TypeSetThemeMode }

func (a SetThemeMode) Validate() error {
	if !a.Mode.Valid() {
		return malformed(a.Type(), "unknown theme mode %q", a.Mode)
	}
	return nil
}

// ToggleSidebar shows or hides the navigation sidebar.
type ToggleSidebar struct{ marker }

func (ToggleSidebar) Type() Type      { return TypeToggleSidebar }
func (ToggleSidebar) Validate() error { return nil }

// HideSidebar hides the navigation sidebar.
type HideSidebar struct{ marker }

func (HideSidebar) Type() Type      { return TypeHideSidebar }
func (HideSidebar) Validate() error { return nil }

// ToggleMobileSearch shows or hides the compact search field.
type ToggleMobileSearch struct{ marker }

func (ToggleMobileSearch) Type() Type      { return TypeToggleMobileSearch }
func (ToggleMobileSearch) Validate() error { return nil }

// ToggleUserNavigation shows or hides the user menu.
type ToggleUserNavigation struct{ marker }

func (ToggleUserNavigation) Type() Type      { return TypeToggleUserNavigation }
func (ToggleUserNavigation) Validate() error { return nil }

// RequestPredictions records a new search query awaiting predictions.
type RequestPredictions struct {
	marker
	Query string
}

func (RequestPredictions) Type() Type      { return TypeRequestPredictions }
func (RequestPredictions) Validate() error { return nil }

// LoadPredictions delivers predictions fetched for Query.
type LoadPredictions struct {
	marker
	Query       string
	Predictions []string
}

func (LoadPredictions) Type() Type { return TypeLoadPredictions }

func (a LoadPredictions) Validate() error {
	if strings.TrimSpace(a.Query) == "" {
		return malformed(a.Type(), "query is empty")
	}
	return nil
}
