package discovery

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// DefaultInterval is the spacing between reveals.
const DefaultInterval = 3 * time.Second

// Session identifies one filter session. Every restart of the feed issues a
// new session; reveals carrying an older session are discarded.
type Session uint64

// Reveal is a pending reveal of the place at Index in the session's sequence,
// due Delay after the session started.
type Reveal struct {
	Session Session
	Index   int
	Delay   time.Duration
}

// Schedule lists the reveals still owed by a session, in due order.
type Schedule struct {
	Session Session
	Pending []Reveal
}

// Empty reports whether nothing is left to reveal.
func (s Schedule) Empty() bool {
	return len(s.Pending) == 0
}

// RevealMsg is delivered to the Bubble Tea loop when a reveal comes due.
type RevealMsg struct {
	Reveal
}

// Describe renders the reveal for logs.
func (m RevealMsg) Describe() string {
	return fmt.Sprintf(`session:%d index:%d delay:%q`, m.Session, m.Index, m.Delay)
}

// Cmd converts the schedule into one tick per reveal. Ticks from a replaced
// session still fire, but Feed.Apply ignores them.
func (s Schedule) Cmd() tea.Cmd {
	if s.Empty() {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.Pending))
	for _, r := range s.Pending {
		r := r
		cmds = append(cmds, tea.Tick(r.Delay, func(time.Time) tea.Msg {
			return RevealMsg{Reveal: r}
		}))
	}
	return tea.Batch(cmds...)
}
