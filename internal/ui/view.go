package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/fluxview/internal/store"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	var sections []string
	sections = append(sections, m.renderHeader(styles))
	if notes := m.renderNotifications(styles); notes != "" {
		sections = append(sections, notes)
	}
	if m.layout.MobileSearchVisible {
		sections = append(sections, m.renderSearch(styles))
	}
	if m.layout.UserNavigationVisible {
		sections = append(sections, m.renderUserMenu(styles))
	}

	body := m.renderContent(styles)
	if m.layout.SidebarVisible && m.width >= LayoutCompactWidth && !m.viewer.TheaterMode {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(styles), body)
	}
	sections = append(sections, body, m.renderFooter(styles))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader(styles Styles) string {
	bg := NewBgStyle(m.theme.Surface)
	parts := []string{
		bg.Render("fluxview", styles.AccentText.Bold(true)),
		bg.Render(pageLabel(m.page.Page), styles.Text),
		bg.Render(m.theme.Name, styles.MutedText),
	}
	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) renderFooter(styles Styles) string {
	var items []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		items = append(items, h.Key+" "+h.Desc)
	}
	return styles.Footer.Width(m.width).Render(strings.Join(items, "  •  "))
}

func (m Model) renderNotifications(styles Styles) string {
	if len(m.page.Notifications) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.page.Notifications))
	for _, n := range m.page.Notifications {
		lines = append(lines, styles.Notice.Render(n.Text))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSidebar(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Pages"))
	b.WriteString("\n")
	for _, p := range []string{HomePage, store.MediaPage} {
		label := "  " + pageLabel(p)
		if p == m.page.Page {
			label = styles.Selected.Render("> " + pageLabel(p))
		}
		b.WriteString(label)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Playlist"))
	b.WriteString("\n")
	b.WriteString(styles.Toggle("loop", m.playlist.Loop) + "  ")
	b.WriteString(styles.Toggle("shuffle", m.playlist.Shuffle) + "  ")
	b.WriteString(styles.Toggle("saved", m.playlist.Saved))

	return styles.Panel.Width(SidebarWidth).Render(b.String())
}

func (m Model) renderContent(styles Styles) string {
	if m.page.Page == store.MediaPage {
		return m.renderPlayer(styles)
	}
	hint := styles.MutedText.Render("Press / to search for something to watch.")
	return styles.Panel.Render(hint)
}

func (m Model) renderPlayer(styles Styles) string {
	var b strings.Builder

	title := m.media.CurrentID
	if title == "" {
		title = "Nothing loaded"
	}
	b.WriteString(styles.Text.Bold(true).Render(title))
	if d, ok := m.media.Durations[m.media.CurrentID]; ok && d > 0 {
		info := store.NewDurationInfo(d)
		b.WriteString("  " + styles.MutedText.Render(info.String()))
	}
	b.WriteString("\n\n")

	volume := fmt.Sprintf("%3.0f%%", m.viewer.Volume*100)
	if m.viewer.Muted {
		volume = styles.WarningText.Render("muted")
	}
	rows := [][2]string{
		{"Volume", volume + " " + volumeBar(m.viewer.Volume, 10)},
		{"Quality", fmt.Sprintf("%dp", m.viewer.Quality)},
		{"Speed", fmt.Sprintf("%gx", m.viewer.PlaybackSpeed)},
	}
	if m.media.ActiveQuality > 0 && m.media.ActiveQuality != m.viewer.Quality {
		rows[1][1] += styles.MutedText.Render(fmt.Sprintf(" (playing %dp)", m.media.ActiveQuality))
	}
	for _, r := range rows {
		b.WriteString(styles.MutedText.Width(10).Render(r[0]))
		b.WriteString(r[1])
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Toggle("theater", m.viewer.TheaterMode) + "  ")
	b.WriteString(styles.Toggle("autoplay", m.page.AutoPlay))

	panel := styles.FocusPanel
	if m.viewer.TheaterMode && m.width > 4 {
		panel = panel.Width(m.width - 4)
	}
	return panel.Render(b.String())
}

func (m Model) renderSearch(styles Styles) string {
	var b strings.Builder
	b.WriteString(m.input.View())
	switch {
	case m.search.Pending:
		b.WriteString("\n" + styles.FaintText.Render("searching..."))
	case len(m.search.Predictions) > 0:
		for i, p := range m.search.Predictions {
			b.WriteString("\n")
			if i == m.selected {
				b.WriteString(styles.Selected.Render("> " + p))
			} else {
				b.WriteString("  " + p)
			}
		}
	case strings.TrimSpace(m.search.Query) != "":
		b.WriteString("\n" + styles.FaintText.Render("no matches"))
	}
	return styles.FocusPanel.Render(b.String())
}

func (m Model) renderUserMenu(styles Styles) string {
	lines := []string{
		styles.AccentText.Bold(true).Render("Preferences"),
		fmt.Sprintf("theme     %s", m.theme.Mode),
		fmt.Sprintf("autoplay  %t", m.page.AutoPlay),
		fmt.Sprintf("quality   %dp", m.viewer.Quality),
	}
	return styles.Panel.Render(strings.Join(lines, "\n"))
}

func volumeBar(v float64, width int) string {
	filled := int(v*float64(width) + 0.5)
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func pageLabel(page string) string {
	switch page {
	case "":
		return "-"
	case store.MediaPage:
		return "Now playing"
	case HomePage:
		return "Home"
	default:
		return page
	}
}
