// Package journey renders the Journey Log screen.
package journey

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	jlog "tableflip.dev/horizon/pkg/journey"
	"tableflip.dev/horizon/pkg/tui/components/card"
	"tableflip.dev/horizon/pkg/tui/events"
	"tableflip.dev/horizon/pkg/tui/theme"
)

// TimeLayout formats the saved timestamp on journal cards.
const TimeLayout = "Jan 2, 3:04 PM"

type section int

const (
	sectionSaved section = iota
	sectionVisited
)

// Model lists saved places, newest first.
type Model struct {
	id      events.ComponentID
	theme   theme.Theme
	vp      viewport.Model
	width   int
	rows    int
	section section

	entries []jlog.SavedPlace
	cursor  int
	offset  int
}

// New constructs an empty journal view.
func New(id events.ComponentID, th theme.Theme) *Model {
	vp := viewport.New(viewport.WithWidth(1), viewport.WithHeight(1))
	vp.MouseWheelEnabled = true
	return &Model{id: id, theme: th, vp: vp}
}

// SetTheme swaps the styles used for rendering.
func (m *Model) SetTheme(th theme.Theme) {
	m.theme = th
	m.refresh()
}

// SetSize sets the outer dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.rows = max(height-5, 1)
	m.vp.SetWidth(m.width)
	m.vp.SetHeight(m.rows)
	m.refresh()
}

// SetEntries replaces the listed records.
func (m *Model) SetEntries(entries []jlog.SavedPlace) {
	m.entries = append([]jlog.SavedPlace(nil), entries...)
	if m.cursor >= len(m.entries) {
		m.cursor = max(len(m.entries)-1, 0)
	}
	m.refresh()
}

// Selected returns the record under the cursor.
func (m *Model) Selected() (jlog.SavedPlace, bool) {
	if m.section != sectionSaved || m.cursor >= len(m.entries) {
		return jlog.SavedPlace{}, false
	}
	return m.entries[m.cursor], true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles cursor movement, removal and navigation.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	switch key.String() {
	case "v":
		if m.section == sectionSaved {
			m.section = sectionVisited
		} else {
			m.section = sectionSaved
		}
		m.refresh()
		return m, nil
	case "j", "down":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
			m.refresh()
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.refresh()
		}
		return m, nil
	}
	sp, ok := m.Selected()
	if !ok {
		return m, nil
	}
	ref := events.RefFromPlace(sp.Place)
	switch key.String() {
	case "x", "delete", "backspace":
		return m, events.Emit(events.JournalRemoveMsg{Component: m.id, Place: ref, EntryID: sp.EntryID})
	case "X":
		return m, events.Emit(events.JournalRemoveMsg{Component: m.id, Place: ref})
	case "n", "enter":
		return m, events.Emit(events.PlaceNavigateMsg{Component: m.id, Place: ref})
	}
	return m, nil
}

// View renders the log.
func (m *Model) View() string {
	if len(m.entries) == 0 {
		return m.placeholder("🔖", "Your Journey Awaits",
			"Save interesting places from your Horizon Feed to build your personal travel log.",
			"Start exploring to add your first discovery")
	}
	head := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Panel.Title.Render("Journey Log"),
		m.theme.Panel.Muted.Render("Your collection of discovered treasures and saved spots."),
		m.sections(),
		"",
	)
	if m.section == sectionVisited {
		return lipgloss.JoinVertical(lipgloss.Left, head, m.placeholder("👁", "No Visited Places Yet",
			"Places you visit will appear here, creating a beautiful rearview mirror of your journey.", ""))
	}
	return lipgloss.JoinVertical(lipgloss.Left, head, m.vp.View())
}

func (m *Model) sections() string {
	saved := fmt.Sprintf("Saved (%d)", len(m.entries))
	visited := "Visited (0)"
	if m.section == sectionSaved {
		return m.theme.Tabs.Active.Render(saved) + m.theme.Tabs.Inactive.Render(visited)
	}
	return m.theme.Tabs.Inactive.Render(saved) + m.theme.Tabs.Active.Render(visited)
}

func (m *Model) placeholder(icon, title, body, hint string) string {
	lines := []string{
		icon,
		m.theme.Panel.Title.Render(title),
		m.theme.Panel.Muted.Width(max(m.width-8, 10)).Align(lipgloss.Center).Render(body),
	}
	if hint != "" {
		lines = append(lines, m.theme.Chip.Badge.Render(hint))
	}
	return m.theme.Panel.Frame.Width(max(m.width, 20)).Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m *Model) refresh() {
	if m.width == 0 {
		return
	}
	cards := make([]string, 0, len(m.entries))
	top, bottom, line := 0, 0, 0
	for i, sp := range m.entries {
		c := card.Render(m.theme, sp.Place, card.Options{
			Width:    m.width,
			Selected: i == m.cursor,
			Footer:   "📅 " + sp.SavedAt.Format(TimeLayout) + " · x remove · X remove all · n directions",
		})
		h := lipgloss.Height(c)
		if i == m.cursor {
			top, bottom = line, line+h
		}
		line += h
		cards = append(cards, c)
	}
	m.vp.SetContent(strings.Join(cards, "\n"))
	switch {
	case top < m.offset:
		m.offset = top
	case bottom > m.offset+m.rows:
		m.offset = bottom - m.rows
	}
	m.vp.SetYOffset(max(m.offset, 0))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
