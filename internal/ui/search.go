package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/fluxview/internal/catalog"
	"github.com/five82/fluxview/internal/store"
)

type predictionsMsg struct {
	query  string
	titles []string
	err    error
}

// searchOpen reads the layout store directly so keys typed before the
// change notification arrives still reach the search field.
func (m Model) searchOpen() bool {
	return m.stores.Layout.Snapshot().MobileSearchVisible
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.closeSearch()
		m.report(m.actions.ToggleMobileSearch())
		m.report(m.actions.RequestPredictions(""))
		return m, m.flush()

	case key.Matches(msg, m.keys.Confirm):
		preds := m.stores.Search.Snapshot().Predictions
		if len(preds) == 0 {
			return m, nil
		}
		title := preds[min(m.selected, len(preds)-1)]
		m.closeSearch()
		// INIT_PAGE also closes the search field.
		m.report(m.actions.InitPage(store.MediaPage))
		m.report(m.actions.LoadMedia(title, 0))
		m.report(m.actions.RequestPredictions(""))
		return m, m.flush(m.notify("Now playing: " + title))

	case key.Matches(msg, m.keys.Next):
		if n := len(m.stores.Search.Snapshot().Predictions); m.selected < n-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	query := m.input.Value()
	if query == m.stores.Search.Snapshot().Query {
		return m, cmd
	}
	m.selected = 0
	m.report(m.actions.RequestPredictions(query))
	return m, m.flush(cmd, predictCmd(m.ctx, m.predictor, query, m.limit))
}

func (m *Model) closeSearch() {
	m.input.Blur()
	m.input.Reset()
	m.selected = 0
}

func (m Model) handlePredictions(msg predictionsMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if msg.err != nil {
		m.log.Warn().Err(msg.err).Str("query", msg.query).Msg("predict")
		cmds = append(cmds, m.notify("Search unavailable"))
		msg.titles = nil
	}
	// The search store drops answers for queries the user has moved past.
	m.report(m.actions.LoadPredictions(msg.query, msg.titles))
	return m, m.flush(cmds...)
}

// predictCmd asks p for predictions off the update loop.
func predictCmd(ctx context.Context, p catalog.Predictor, query string, limit int) tea.Cmd {
	if p == nil || strings.TrimSpace(query) == "" {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, PredictTimeout)
		defer cancel()
		titles, err := p.Predict(ctx, query, limit)
		return predictionsMsg{query: query, titles: titles, err: err}
	}
}
