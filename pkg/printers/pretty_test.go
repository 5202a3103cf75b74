package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/horizon/pkg/place"
)

func newPrinter(t *testing.T) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	var buf bytes.Buffer
	return &PrettyPrint{Out: &buf}, &buf
}

func TestPlacesTable(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.ShowID = true
	pp.Places(place.Catalog()[:2]...)

	out := buf.String()
	for _, want := range []string{"ID", "Place", "Category", "Grandma's Secret Pie Shop", "Local Eats", "hungry, cafe, rainy, evening"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPlacesEmpty(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Places()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestMoodsTable(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Moods(place.Moods()...)
	out := buf.String()
	if !strings.Contains(out, "Café Vibes") || !strings.Contains(out, "Quiet & serene") {
		t.Fatalf("unexpected moods output:\n%s", out)
	}
}

func TestRevealLine(t *testing.T) {
	pp, buf := newPrinter(t)
	p := place.Catalog()[1]
	pp.Reveal(3*time.Second, p)
	out := buf.String()
	if !strings.Contains(out, "3s") || !strings.Contains(out, p.Title) || !strings.Contains(out, "8km ahead · 2 min detour") {
		t.Fatalf("unexpected reveal line %q", out)
	}
}

func TestTitleWithCount(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.TitleWithCount("Places", 1, "place")
	pp.TitleWithCount("Places", 3, "place")
	out := buf.String()
	if !strings.Contains(out, "1 place\n") || !strings.Contains(out, "3 places\n") {
		t.Fatalf("unexpected titles %q", out)
	}
}
