package help

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
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

func TestViewRendersMarkdown(t *testing.T) {
	m := New(80, 40, true)
	view := stripANSI(m.View())
	if !strings.Contains(view, "Travel Assist") {
		t.Fatalf("expected help heading:\n%s", view)
	}
	if m.err != nil {
		t.Fatalf("unexpected render error: %v", m.err)
	}
}

func TestSetSizeClampsToMinimum(t *testing.T) {
	m := New(4, 2, false)
	if m.width != 32 || m.height != 8 {
		t.Fatalf("expected minimum size, got %dx%d", m.width, m.height)
	}
	m.SetDark(true)
	if !m.dark {
		t.Fatalf("expected dark style")
	}
}
