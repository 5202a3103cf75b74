// Package route implements the modal used to set the trip endpoints.
package route

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/horizon/pkg/app"
	"tableflip.dev/horizon/pkg/tui/events"
	"tableflip.dev/horizon/pkg/tui/theme"
)

const charLimit = 80

// Model edits the From and To fields.
type Model struct {
	id      events.ComponentID
	theme   theme.Theme
	from    textinput.Model
	to      textinput.Model
	focus   int
	current app.Route
	width   int
	err     string
}

// New constructs the editor prefilled with current.
func New(id events.ComponentID, th theme.Theme, current app.Route) *Model {
	from := textinput.New()
	from.Placeholder = "Starting location"
	from.Prompt = "📍 "
	from.CharLimit = charLimit
	from.SetValue(current.From)

	to := textinput.New()
	to.Placeholder = "Destination"
	to.Prompt = "📍 "
	to.CharLimit = charLimit
	to.SetValue(current.To)

	m := &Model{id: id, theme: th, from: from, to: to, current: current, width: 48}
	m.from.Focus()
	return m
}

// SetWidth bounds the modal.
func (m *Model) SetWidth(w int) {
	if w < 30 {
		w = 30
	}
	m.width = w
}

// Values returns the trimmed field contents.
func (m *Model) Values() (string, string) {
	return strings.TrimSpace(m.from.Value()), strings.TrimSpace(m.to.Value())
}

// SetValues replaces the field contents.
func (m *Model) SetValues(from, to string) {
	m.from.SetValue(from)
	m.to.SetValue(to)
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd { return textinput.Blink }

// Update handles focus cycling, submit and cancel, and forwards typing to the
// focused field.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			return m, events.Emit(events.RouteCancelMsg{Component: m.id})
		case "tab", "shift+tab", "up", "down":
			return m, m.toggleFocus()
		case "enter":
			from, to := m.Values()
			if from == "" || to == "" {
				m.err = "Both From and To are required"
				if from != "" && m.focus == 0 {
					return m, m.toggleFocus()
				}
				return m, nil
			}
			m.err = ""
			return m, events.Emit(events.RouteSubmitMsg{Component: m.id, From: from, To: to})
		}
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.from, cmd = m.from.Update(msg)
	} else {
		m.to, cmd = m.to.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == 0 {
		m.focus = 1
		m.from.Blur()
		return m.to.Focus()
	}
	m.focus = 0
	m.to.Blur()
	return m.from.Focus()
}

// View renders the modal.
func (m *Model) View() string {
	label := m.theme.Panel.Muted
	lines := []string{
		m.theme.Modal.Title.Render("🧭 Your Journey"),
		"",
		label.Render("From"),
		m.from.View(),
		label.Render("To"),
		m.to.View(),
		"",
	}
	if m.err != "" {
		lines = append(lines, m.theme.Footer.Toast.Render(m.err))
	}
	lines = append(lines, m.theme.Footer.Help.Render("enter set route · tab switch field · esc cancel"))
	if m.current.IsSet() {
		lines = append(lines, "",
			m.theme.Panel.Emphasis.Render("Current Route"),
			m.theme.Panel.Muted.Render(m.current.String()))
	}
	return m.theme.Modal.Frame.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
