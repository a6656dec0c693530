package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	Escape      key.Binding

	// Player
	VolumeUp    key.Binding
	VolumeDown  key.Binding
	Mute        key.Binding
	QualityUp   key.Binding
	QualityDown key.Binding
	SpeedUp     key.Binding
	SpeedDown   key.Binding
	Theater     key.Binding
	AutoPlay    key.Binding

	// Playlist
	Loop    key.Binding
	Shuffle key.Binding
	Save    key.Binding

	// Layout
	Sidebar        key.Binding
	UserNavigation key.Binding
	Home           key.Binding

	// Search
	Search  key.Binding
	Confirm key.Binding
	Next    key.Binding
	Prev    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Light/dark theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close search"),
		),

		// Player
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Volume down"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Mute"),
		),
		QualityUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Higher quality"),
		),
		QualityDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Lower quality"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "Faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "Slower"),
		),
		Theater: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Theater mode"),
		),
		AutoPlay: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Autoplay"),
		),

		// Playlist
		Loop: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Loop"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Shuffle"),
		),
		Save: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "Save playlist"),
		),

		// Layout
		Sidebar: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Sidebar"),
		),
		UserNavigation: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "User menu"),
		),
		Home: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Home page"),
		),

		// Search
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open media"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("down", "Next prediction"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("up", "Previous prediction"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Player
		{k.VolumeUp, k.VolumeDown, k.Mute, k.QualityUp, k.QualityDown, k.SpeedUp, k.SpeedDown, k.Theater, k.AutoPlay},
		// Playlist
		{k.Loop, k.Shuffle, k.Save},
		// Layout
		{k.Sidebar, k.UserNavigation, k.Home, k.ToggleTheme},
		// Search
		{k.Search, k.Next, k.Prev, k.Confirm, k.Escape},
		// General
		{k.Help, k.Quit},
	}
}
