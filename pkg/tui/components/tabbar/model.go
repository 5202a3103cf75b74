// Package tabbar renders the bottom navigation with its help and status line.
package tabbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/horizon/pkg/app"
	"tableflip.dev/horizon/pkg/tui/theme"
)

var icons = map[app.Tab]string{
	app.TabDiscover: "🧭",
	app.TabSaved:    "🔖",
	app.TabProfile:  "👤",
	app.TabSettings: "⚙",
}

// Model tracks footer state.
type Model struct {
	theme      theme.Theme
	active     app.Tab
	helpLine   string
	statusLine string
	toast      bool
	badge      int
}

// New returns a footer on the Discover tab.
func New(th theme.Theme) Model {
	return Model{theme: th, active: app.TabDiscover}
}

// SetTheme swaps the styles used for rendering.
func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

// SetActive highlights t.
func (m *Model) SetActive(t app.Tab) { m.active = t }

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) { m.helpLine = help }

// SetStatus sets the status message. Toasts render emphasised.
func (m *Model) SetStatus(status string, toast bool) {
	m.statusLine = status
	m.toast = toast
}

// Status returns the current status message.
func (m Model) Status() string { return m.statusLine }

// SetSavedCount shows a counter on the Journey tab.
func (m *Model) SetSavedCount(n int) { m.badge = n }

// Height reports the number of lines consumed by the footer.
func (m Model) Height() int { return 2 }

// View renders the tab row above the help/status line.
func (m Model) View(width int) string {
	tabs := make([]string, 0, len(app.Tabs()))
	for i, t := range app.Tabs() {
		label := fmt.Sprintf("%d %s %s", i+1, icons[t], t.Label())
		if t == app.TabSaved && m.badge > 0 {
			label += fmt.Sprintf(" (%d)", m.badge)
		}
		style := m.theme.Tabs.Inactive
		if t == m.active {
			style = m.theme.Tabs.Active
		}
		tabs = append(tabs, style.Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if width > 0 {
		row = lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
	}
	return row + "\n" + m.renderStatusLine()
}

func (m Model) renderStatusLine() string {
	var segments []string
	if m.statusLine != "" {
		style := m.theme.Footer.Status
		if m.toast {
			style = m.theme.Footer.Toast
		}
		segments = append(segments, style.Render(m.statusLine))
	}
	if m.helpLine != "" {
		segments = append(segments, m.theme.Footer.Help.Render(m.helpLine))
	}
	if len(segments) == 0 {
		return " "
	}
	return strings.Join(segments, " │ ")
}
