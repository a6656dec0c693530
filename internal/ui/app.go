package ui

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/fluxview/internal/action"
	"github.com/five82/fluxview/internal/binding"
	"github.com/five82/fluxview/internal/catalog"
	"github.com/five82/fluxview/internal/store"
)

// HomePage is the page shown at startup.
const HomePage = "home"

// Names under which store changes arrive in binding.ChangedMsg.
const (
	storePlaylist = "playlist_view"
	storeViewer   = "video_viewer"
	storeMedia    = "media"
	storePage     = "page"
	storeTheme    = "theme"
	storeLayout   = "layout"
	storeSearch   = "search_field"
)

// Options configures the UI.
type Options struct {
	Context          context.Context
	Stores           *store.Set
	Actions          *action.Creators
	Predictor        catalog.Predictor // nil disables predictions
	NotificationTTL  time.Duration
	PredictionsLimit int
	Logger           zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	stores    *store.Set
	actions   *action.Creators
	predictor catalog.Predictor
	ttl       time.Duration
	limit     int
	log       zerolog.Logger
	keys      keyMap

	// Bindings
	queue    *binding.Queue
	bindings []unmounter

	// Store state, refreshed from binding.ChangedMsg
	playlist store.PlaylistViewState
	viewer   store.VideoViewerState
	media    store.MediaState
	page     store.PageState
	layout   store.LayoutState
	search   store.SearchState
	theme    Theme

	// UI state
	width    int
	height   int
	ready    bool
	showHelp bool
	input    textinput.Model
	selected int
}

type unmounter interface {
	Unmount() bool
}

// New creates a new Bubble Tea model and mounts its store bindings.
// Call Close when the model is no longer used.
func New(opts Options) (Model, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ttl := opts.NotificationTTL
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	limit := opts.PredictionsLimit
	if limit <= 0 {
		limit = catalog.DefaultLimit
	}

	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "Search media"
	input.CharLimit = 128
	input.Cursor.SetMode(cursor.CursorStatic)

	m := Model{
		ctx:       ctx,
		stores:    opts.Stores,
		actions:   opts.Actions,
		predictor: opts.Predictor,
		ttl:       ttl,
		limit:     limit,
		log:       opts.Logger,
		keys:      DefaultKeyMap(),
		queue:     &binding.Queue{},
		input:     input,
	}
	if err := m.mountAll(); err != nil {
		m.Close()
		return Model{}, err
	}
	return m, nil
}

func (m *Model) mountAll() error {
	s := m.stores
	var themeState store.ThemeState
	if err := mount(m, s.PlaylistView, storePlaylist, &m.playlist); err != nil {
		return err
	}
	if err := mount(m, s.VideoViewer, storeViewer, &m.viewer); err != nil {
		return err
	}
	if err := mount(m, s.Media, storeMedia, &m.media); err != nil {
		return err
	}
	if err := mount(m, s.Page, storePage, &m.page); err != nil {
		return err
	}
	if err := mount(m, s.Theme, storeTheme, &themeState); err != nil {
		return err
	}
	if err := mount(m, s.Layout, storeLayout, &m.layout); err != nil {
		return err
	}
	if err := mount(m, s.Search, storeSearch, &m.search); err != nil {
		return err
	}
	m.theme = ThemeFor(themeState.Mode)
	return nil
}

func mount[S any](m *Model, src binding.Source[S], name string, dst *S) error {
	b := binding.New(src, binding.Watch[S](m.queue, name))
	state, err := b.Mount()
	if err != nil {
		return fmt.Errorf("mount %s: %w", name, err)
	}
	*dst = state
	m.bindings = append(m.bindings, b)
	return nil
}

// Close unmounts every binding.
func (m Model) Close() {
	for _, b := range m.bindings {
		b.Unmount()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return initPageMsg{page: HomePage} }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-8, 10)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case initPageMsg:
		m.report(m.actions.InitPage(msg.page))
		return m, m.flush()

	case binding.ChangedMsg:
		m.refresh(msg)
		return m, nil

	case dismissMsg:
		m.report(m.actions.RemoveNotification(msg.id))
		return m, m.flush()

	case predictionsMsg:
		return m.handlePredictions(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.searchOpen() {
		return m.handleSearchKey(msg)
	}

	viewer := m.stores.VideoViewer.Snapshot()
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.report(m.actions.ToggleThemeMode())

	case key.Matches(msg, m.keys.VolumeUp):
		m.report(m.actions.SetPlayerVolume(stepVolume(viewer.Volume, VolumeStep)))
	case key.Matches(msg, m.keys.VolumeDown):
		m.report(m.actions.SetPlayerVolume(stepVolume(viewer.Volume, -VolumeStep)))
	case key.Matches(msg, m.keys.Mute):
		m.report(m.actions.SetPlayerMuted(!viewer.Muted))
	case key.Matches(msg, m.keys.QualityUp):
		m.report(m.actions.SetVideoQuality(stepQuality(viewer.Quality, 1)))
	case key.Matches(msg, m.keys.QualityDown):
		m.report(m.actions.SetVideoQuality(stepQuality(viewer.Quality, -1)))
	case key.Matches(msg, m.keys.SpeedUp):
		m.report(m.actions.SetPlaybackSpeed(stepSpeed(viewer.PlaybackSpeed, SpeedStep)))
	case key.Matches(msg, m.keys.SpeedDown):
		m.report(m.actions.SetPlaybackSpeed(stepSpeed(viewer.PlaybackSpeed, -SpeedStep)))
	case key.Matches(msg, m.keys.Theater):
		m.report(m.actions.SetViewerMode(!viewer.TheaterMode))
	case key.Matches(msg, m.keys.AutoPlay):
		m.report(m.actions.ToggleAutoPlay())

	case key.Matches(msg, m.keys.Loop):
		m.report(m.actions.ToggleLoop())
	case key.Matches(msg, m.keys.Shuffle):
		m.report(m.actions.ToggleShuffle())
	case key.Matches(msg, m.keys.Save):
		m.report(m.actions.TogglePlaylistSave())
		if m.stores.PlaylistView.Snapshot().Saved {
			cmds = append(cmds, m.notify("Playlist saved"))
		} else {
			cmds = append(cmds, m.notify("Playlist removed"))
		}

	case key.Matches(msg, m.keys.Sidebar):
		m.report(m.actions.ToggleSidebar())
	case key.Matches(msg, m.keys.UserNavigation):
		m.report(m.actions.ToggleUserNavigation())
	case key.Matches(msg, m.keys.Home):
		m.report(m.actions.InitPage(HomePage))

	case key.Matches(msg, m.keys.Search):
		m.report(m.actions.ToggleMobileSearch())
		m.selected = 0
		cmds = append(cmds, m.input.Focus())

	default:
		return m, nil
	}

	return m, m.flush(cmds...)
}

// flush batches cmds with the pending store changes.
func (m Model) flush(cmds ...tea.Cmd) tea.Cmd {
	return tea.Batch(append(cmds, m.queue.Flush())...)
}

// refresh re-reads the stores named in msg.
func (m *Model) refresh(msg binding.ChangedMsg) {
	s := m.stores
	for _, name := range msg.Stores {
		switch name {
		case storePlaylist:
			m.playlist = s.PlaylistView.Snapshot()
		case storeViewer:
			m.viewer = s.VideoViewer.Snapshot()
		case storeMedia:
			m.media = s.Media.Snapshot()
		case storePage:
			m.page = s.Page.Snapshot()
		case storeTheme:
			m.theme = ThemeFor(s.Theme.Snapshot().Mode)
		case storeLayout:
			m.layout = s.Layout.Snapshot()
		case storeSearch:
			m.search = s.Search.Snapshot()
			m.selected = min(m.selected, max(len(m.search.Predictions)-1, 0))
		}
	}
}

// report logs a failed action creator call.
func (m Model) report(err error) {
	if err != nil {
		m.log.Warn().Err(err).Msg("dispatch from ui")
	}
}

// notify shows text and schedules its removal.
func (m Model) notify(text string) tea.Cmd {
	id, err := m.actions.AddNotification(text)
	if err != nil {
		m.report(err)
		return nil
	}
	return tea.Tick(m.ttl, func(time.Time) tea.Msg {
		return dismissMsg{id: id}
	})
}

func stepVolume(v, delta float64) float64 {
	next := math.Round((v+delta)*100) / 100
	return min(max(next, 0), 1)
}

func stepSpeed(v, delta float64) float64 {
	return min(max(v+delta, MinSpeed), MaxSpeed)
}

// stepQuality moves dir steps through Qualities from the closest known
// rendition.
func stepQuality(q, dir int) int {
	i, found := slices.BinarySearch(Qualities, q)
	switch {
	case found:
		i += dir
	case dir < 0:
		i--
	}
	return Qualities[min(max(i, 0), len(Qualities)-1)]
}

// Messages

type initPageMsg struct{ page string }

type dismissMsg struct{ id string }

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.Close()

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
