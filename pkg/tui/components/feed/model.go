// Package feed renders the Discover screen: the list of revealed places.
package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/horizon/pkg/discovery"
	"tableflip.dev/horizon/pkg/place"
	"tableflip.dev/horizon/pkg/tui/components/card"
	"tableflip.dev/horizon/pkg/tui/events"
	"tableflip.dev/horizon/pkg/tui/theme"
)

const actionHint = "s save · n navigate · d dismiss"

// Model lists visible places inside a scrollable viewport.
type Model struct {
	id     events.ComponentID
	theme  theme.Theme
	vp     viewport.Model
	width  int
	height int

	places  []place.Place
	saved   map[string]bool
	empty   discovery.EmptyState
	cursor  int
	offset  int
	rows    int
	focused bool
}

// New constructs an empty feed.
func New(id events.ComponentID, th theme.Theme) *Model {
	vp := viewport.New(viewport.WithWidth(1), viewport.WithHeight(1))
	vp.MouseWheelEnabled = true
	return &Model{
		id:      id,
		theme:   th,
		vp:      vp,
		saved:   map[string]bool{},
		focused: true,
	}
}

// SetTheme swaps the styles used for rendering.
func (m *Model) SetTheme(th theme.Theme) {
	m.theme = th
	m.refresh()
}

// SetSize sets the outer dimensions, header included.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 1)
	m.height = max(height, 3)
	m.vp.SetWidth(m.width)
	m.rows = max(m.height-2, 1)
	m.vp.SetHeight(m.rows)
	m.refresh()
}

// SetFocused toggles whether key presses are handled.
func (m *Model) SetFocused(f bool) { m.focused = f }

// SetPlaces replaces the visible places. The cursor stays on the same place
// when it is still visible.
func (m *Model) SetPlaces(places []place.Place, saved func(id string) bool, empty discovery.EmptyState) {
	var current string
	if p, ok := m.Selected(); ok {
		current = p.ID
	}
	m.places = append([]place.Place(nil), places...)
	m.saved = make(map[string]bool, len(places))
	for _, p := range places {
		if saved != nil && saved(p.ID) {
			m.saved[p.ID] = true
		}
	}
	m.empty = empty
	m.cursor = 0
	for i, p := range m.places {
		if p.ID == current {
			m.cursor = i
			break
		}
	}
	m.refresh()
}

// Selected returns the place under the cursor.
func (m *Model) Selected() (place.Place, bool) {
	if m.cursor < 0 || m.cursor >= len(m.places) {
		return place.Place{}, false
	}
	return m.places[m.cursor], true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles cursor movement and card actions.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.places)-1 {
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
	p, ok := m.Selected()
	if !ok {
		return m, nil
	}
	ref := events.RefFromPlace(p)
	switch key.String() {
	case "s":
		return m, events.Emit(events.PlaceSaveMsg{Component: m.id, Place: ref})
	case "d", "x":
		return m, events.Emit(events.PlaceDismissMsg{Component: m.id, Place: ref})
	case "n", "enter":
		return m, events.Emit(events.PlaceNavigateMsg{Component: m.id, Place: ref})
	}
	return m, nil
}

// View renders the header and either the cards or the empty state.
func (m *Model) View() string {
	header := m.header()
	if len(m.places) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", m.emptyView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.vp.View())
}

func (m *Model) header() string {
	title := m.theme.Panel.Title.Render("Discoveries Ahead")
	noun := "spots"
	if len(m.places) == 1 {
		noun = "spot"
	}
	count := m.theme.Panel.Muted.Render(fmt.Sprintf("%d %s found", len(m.places), noun))
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(count), 1)
	return title + strings.Repeat(" ", gap) + count
}

func (m *Model) emptyView() string {
	icon := "📍"
	if m.empty.Filtered {
		icon = "🔍"
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		icon,
		m.theme.Panel.Title.Render(m.empty.Title),
		m.theme.Panel.Muted.Width(max(m.width-8, 10)).Align(lipgloss.Center).Render(m.empty.Message),
	)
	return m.theme.Panel.Frame.Width(max(m.width, 20)).Align(lipgloss.Center).Render(body)
}

func (m *Model) refresh() {
	if m.width == 0 {
		return
	}
	cards := make([]string, 0, len(m.places))
	top, bottom := 0, 0
	line := 0
	for i, p := range m.places {
		c := card.Render(m.theme, p, card.Options{
			Width:    m.width,
			Selected: i == m.cursor,
			Saved:    m.saved[p.ID],
			Actions:  actionHint,
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
	if m.offset < 0 {
		m.offset = 0
	}
	m.vp.SetYOffset(m.offset)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
