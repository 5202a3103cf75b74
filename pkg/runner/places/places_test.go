package places

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/horizon/pkg/place"
)

func init() {
	color.NoColor = true
}

func TestListFiltersByMood(t *testing.T) {
	var buf bytes.Buffer
	l := &List{Provider: place.NewStatic(nil), Mood: "nature", Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Nature - 3 places", "The Whispering Falls", "Civil War Ghost Bridge", "Sunrise Peak Lookout"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Moonlight Diner") {
		t.Fatalf("unexpected place in output:\n%s", out)
	}
}

func TestListJSON(t *testing.T) {
	var buf bytes.Buffer
	l := &List{Provider: place.NewStatic(nil), Mood: "cafe", JSON: true, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []place.Place
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "5" {
		t.Fatalf("unexpected places %+v", got)
	}
}

func TestListEmptyJSONIsArray(t *testing.T) {
	var buf bytes.Buffer
	l := &List{Provider: place.NewStatic([]place.Place{}), JSON: true, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("expected empty array, got %q", buf.String())
	}
}

func TestListRequiresProvider(t *testing.T) {
	if err := (&List{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without a provider")
	}
}

func TestMoods(t *testing.T) {
	var buf bytes.Buffer
	if err := (&Moods{Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Thrilling experiences") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}
