package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/horizon/pkg/app"
	"tableflip.dev/horizon/pkg/place"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// PlaceRef captures what cross-component events need to know about a place.
type PlaceRef struct {
	ID    string
	Title string
}

// RefFromPlace converts a place into an event reference.
func RefFromPlace(p place.Place) PlaceRef {
	return PlaceRef{ID: p.ID, Title: p.Title}
}

// Label returns a human-friendly identifier for the place.
func (r PlaceRef) Label() string {
	if r.Title != "" {
		return r.Title
	}
	return r.ID
}

// TabSelectMsg asks the shell to switch screens.
type TabSelectMsg struct {
	Component ComponentID
	Tab       app.Tab
}

// Describe renders the tab switch for logs.
func (m TabSelectMsg) Describe() string {
	return fmt.Sprintf(`tab:%q`, m.Tab)
}

// MoodSelectMsg is emitted when the mood selector changes selection.
type MoodSelectMsg struct {
	Component ComponentID
	Mood      place.Mood
}

// Describe renders the mood selection for logs.
func (m MoodSelectMsg) Describe() string {
	return fmt.Sprintf(`mood:%q`, m.Mood.String())
}

// PlaceSaveMsg requests that a visible place be saved to the journey log.
type PlaceSaveMsg struct {
	Component ComponentID
	Place     PlaceRef
}

// Describe renders the save request for logs.
func (m PlaceSaveMsg) Describe() string {
	return fmt.Sprintf(`place:%q`, m.Place.Label())
}

// PlaceDismissMsg requests that a visible place be hidden.
type PlaceDismissMsg struct {
	Component ComponentID
	Place     PlaceRef
}

// Describe renders the dismissal for logs.
func (m PlaceDismissMsg) Describe() string {
	return fmt.Sprintf(`place:%q`, m.Place.Label())
}

// PlaceNavigateMsg requests turn-by-turn directions to a place.
type PlaceNavigateMsg struct {
	Component ComponentID
	Place     PlaceRef
}

// Describe renders the navigation request for logs.
func (m PlaceNavigateMsg) Describe() string {
	return fmt.Sprintf(`place:%q`, m.Place.Label())
}

// JournalRemoveMsg requests that a place be removed from the journey log.
// With EntryID set only that record goes; otherwise every record of the
// place is removed.
type JournalRemoveMsg struct {
	Component ComponentID
	Place     PlaceRef
	EntryID   string
}

// Describe renders the removal for logs.
func (m JournalRemoveMsg) Describe() string {
	if m.EntryID != "" {
		return fmt.Sprintf(`place:%q entry:%q`, m.Place.Label(), m.EntryID)
	}
	return fmt.Sprintf(`place:%q all`, m.Place.Label())
}

// RouteSubmitMsg carries the endpoints typed into the route editor.
type RouteSubmitMsg struct {
	Component ComponentID
	From      string
	To        string
}

// Describe renders the route for logs.
func (m RouteSubmitMsg) Describe() string {
	return fmt.Sprintf(`from:%q to:%q`, m.From, m.To)
}

// RouteCancelMsg fires when the route editor closes without submitting.
type RouteCancelMsg struct {
	Component ComponentID
}

// ThemeToggleMsg asks the shell to flip night mode.
type ThemeToggleMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m ThemeToggleMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// Emit wraps msg into a tea.Cmd for callers that want to emit an event as
// part of an Update result.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Describer is implemented by events that can render themselves for logs.
type Describer interface {
	Describe() string
}

// Describe renders any message for logs.
func Describe(msg tea.Msg) string {
	if d, ok := msg.(Describer); ok {
		return d.Describe()
	}
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	default:
		return ""
	}
}
