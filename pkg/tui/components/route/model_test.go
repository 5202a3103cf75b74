package route

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/horizon/pkg/app"
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

func TestSubmitEmitsTrimmedRoute(t *testing.T) {
	m := New("route", theme.Default(), app.Route{})
	m.SetValues("  Portland ", "Seattle ")
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected submit command")
	}
	msg, ok := cmd().(events.RouteSubmitMsg)
	if !ok {
		t.Fatalf("expected RouteSubmitMsg, got %T", cmd())
	}
	if msg.From != "Portland" || msg.To != "Seattle" {
		t.Fatalf("unexpected route %+v", msg)
	}
}

func TestSubmitRequiresBothEnds(t *testing.T) {
	m := New("route", theme.Default(), app.Route{})
	m.SetValues("Portland", " ")
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		if _, ok := cmd().(events.RouteSubmitMsg); ok {
			t.Fatalf("blank destination should not submit")
		}
	}
	if view := stripANSI(m.View()); !strings.Contains(view, "Both From and To are required") {
		t.Fatalf("expected validation message:\n%s", view)
	}
}

func TestEscapeCancels(t *testing.T) {
	m := New("route", theme.Default(), app.Route{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatalf("expected cancel command")
	}
	if _, ok := cmd().(events.RouteCancelMsg); !ok {
		t.Fatalf("expected RouteCancelMsg")
	}
}

func TestViewShowsCurrentRoute(t *testing.T) {
	current, err := app.NewRoute("Portland", "Seattle")
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	m := New("route", theme.Default(), current)
	view := stripANSI(m.View())
	if !strings.Contains(view, "Current Route") || !strings.Contains(view, "Portland → Seattle") {
		t.Fatalf("expected current route:\n%s", view)
	}
	if from, to := m.Values(); from != "Portland" || to != "Seattle" {
		t.Fatalf("expected prefilled values, got %q %q", from, to)
	}
}
