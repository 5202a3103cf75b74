package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/horizon/pkg/place"
)

func TestMoodFlag(t *testing.T) {
	o := &MoodOptions{}
	cmd := &cobra.Command{Use: "test"}
	AddMoodArg(cmd, o)

	if err := cmd.Flags().Set("mood", "Café Vibes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Mood != "cafe" {
		t.Fatalf("expected cafe, got %q", o.Mood)
	}
	if err := cmd.Flags().Set("mood", "all"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Mood != place.NoMood {
		t.Fatalf("expected all moods, got %q", o.Mood)
	}
	if err := cmd.Flags().Set("mood", "grumpy"); err == nil {
		t.Fatalf("expected unknown mood to fail")
	}
}

func TestMoodNames(t *testing.T) {
	names := MoodNames()
	if len(names) != len(place.Moods())+1 || names[0] != "all" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Fatalf("unexpected wrap %q", got)
	}
}

func TestWrapKeepsParagraphs(t *testing.T) {
	got := Wrap("alpha beta\n\ngamma   delta", 80)
	if got != "alpha beta\n\ngamma delta" {
		t.Fatalf("unexpected wrap %q", got)
	}
}

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	o := &OutputOptions{JSON: true, Out: &buf}
	if err := o.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("expected error to be swallowed, got %v", err)
	}
	if strings.TrimSpace(buf.String()) != `{"error":"boom"}` {
		t.Fatalf("unexpected output %q", buf.String())
	}

	plain := &OutputOptions{}
	if err := plain.HandleError(errors.New("boom")); err == nil {
		t.Fatalf("expected error to pass through")
	}
}
