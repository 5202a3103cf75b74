package tabbar

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/horizon/pkg/app"
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

func TestViewListsTabsAndStatus(t *testing.T) {
	m := New(theme.Default())
	m.SetActive(app.TabSaved)
	m.SetSavedCount(2)
	m.SetHelp("? help")
	m.SetStatus("Dismissed Rusty", true)

	view := stripANSI(m.View(100))
	for _, want := range []string{"Discover", "Journey (2)", "Profile", "Settings", "Dismissed Rusty", "? help"} {
		if !strings.Contains(view, want) {
			t.Fatalf("footer missing %q:\n%s", want, view)
		}
	}
	if got := strings.Count(view, "\n") + 1; got != m.Height() {
		t.Fatalf("expected %d lines, got %d", m.Height(), got)
	}
}

func TestEmptyStatusLineKeepsHeight(t *testing.T) {
	m := New(theme.For(false))
	view := stripANSI(m.View(0))
	if lines := strings.Split(view, "\n"); len(lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(lines))
	}
	if m.Status() != "" {
		t.Fatalf("expected empty status")
	}
}
