// Package moods renders the horizontal mood selector.
package moods

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/horizon/pkg/place"
	"tableflip.dev/horizon/pkg/tui/events"
	"tableflip.dev/horizon/pkg/tui/theme"
)

// Model is the mood chip row. Index 0 is "All Moods".
type Model struct {
	id       events.ComponentID
	theme    theme.Theme
	options  []place.MoodInfo
	selected int
	width    int
}

// New constructs a selector with the given mood preselected.
func New(id events.ComponentID, th theme.Theme, current place.Mood) *Model {
	opts := append([]place.MoodInfo{{ID: place.NoMood, Label: place.NoMood.Label(), Emoji: "🧭", Description: "Everything along the way"}}, place.Moods()...)
	m := &Model{id: id, theme: th, options: opts}
	m.Select(current)
	return m
}

// SetTheme swaps the styles used for rendering.
func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// SetWidth bounds the chip row.
func (m *Model) SetWidth(w int) { m.width = w }

// Selected returns the highlighted mood.
func (m *Model) Selected() place.Mood { return m.options[m.selected].ID }

// Select highlights m without emitting an event. Unknown moods select "All".
func (m *Model) Select(mood place.Mood) {
	m.selected = 0
	for i, o := range m.options {
		if o.ID == mood {
			m.selected = i
			return
		}
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update moves the selection and emits MoodSelectMsg when it changes.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	prev := m.selected
	switch key.String() {
	case "[", "h", "left":
		m.selected = (m.selected - 1 + len(m.options)) % len(m.options)
	case "]", "l", "right":
		m.selected = (m.selected + 1) % len(m.options)
	case "0":
		m.selected = 0
	default:
		return m, nil
	}
	if m.selected == prev {
		return m, nil
	}
	return m, events.Emit(events.MoodSelectMsg{Component: m.id, Mood: m.Selected()})
}

// View renders the chips, wrapping onto extra lines when narrow, followed by
// the description of the highlighted mood.
func (m *Model) View() string {
	var rows []string
	var row []string
	rowWidth := 0
	for i, o := range m.options {
		style := m.theme.Chip.Inactive
		if i == m.selected {
			style = m.theme.Chip.Active
		}
		chip := style.Render(strings.TrimSpace(o.Emoji + " " + o.Label))
		w := lipgloss.Width(chip)
		if m.width > 0 && rowWidth > 0 && rowWidth+w > m.width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	current := m.options[m.selected]
	rows = append(rows, m.theme.Panel.Muted.Render(current.Label+": "+current.Description))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
