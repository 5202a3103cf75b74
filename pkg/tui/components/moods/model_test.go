package moods

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/horizon/pkg/place"
	"tableflip.dev/horizon/pkg/tui/events"
	"tableflip.dev/horizon/pkg/tui/theme"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestNextEmitsMoodSelect(t *testing.T) {
	m := New("moods", theme.Default(), place.NoMood)
	_, cmd := m.Update(tea.KeyPressMsg{Code: ']', Text: "]"})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(events.MoodSelectMsg)
	if !ok {
		t.Fatalf("expected MoodSelectMsg, got %T", cmd())
	}
	if msg.Mood != "rainy" || msg.Component != "moods" {
		t.Fatalf("unexpected event %+v", msg)
	}
}

func TestPreviousWrapsAround(t *testing.T) {
	m := New("moods", theme.Default(), place.NoMood)
	m.Update(tea.KeyPressMsg{Code: '[', Text: "["})
	if got := m.Selected(); got != "peaceful" {
		t.Fatalf("expected wrap to peaceful, got %q", got)
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: '0', Text: "0"})
	if cmd == nil || m.Selected() != place.NoMood {
		t.Fatalf("expected reset to all moods, got %q", m.Selected())
	}
}

func TestSelectDoesNotEmit(t *testing.T) {
	m := New("moods", theme.Default(), "nature")
	if m.Selected() != "nature" {
		t.Fatalf("expected nature preselected, got %q", m.Selected())
	}
	m.Select("unknown")
	if m.Selected() != place.NoMood {
		t.Fatalf("unknown mood should select all, got %q", m.Selected())
	}
	if _, cmd := m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Fatalf("unrelated key should not emit")
	}
}

func TestViewShowsDescription(t *testing.T) {
	m := New("moods", theme.Default(), "cafe")
	m.SetWidth(40)
	view := stripANSI(m.View())
	for _, want := range []string{"All Moods", "Café Vibes: Coffee & conversation", "Peaceful"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
