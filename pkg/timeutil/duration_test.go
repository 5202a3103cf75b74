package timeutil

import (
	"testing"
	"time"
)

func TestParseIntervalGoSyntax(t *testing.T) {
	got, err := ParseInterval("500ms")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 500*time.Millisecond {
		t.Fatalf("expected 500ms, got %v", got)
	}
}

func TestParseIntervalSpelledOut(t *testing.T) {
	for in, want := range map[string]time.Duration{
		"3 seconds":      3 * time.Second,
		"1 min 30 sec":   90 * time.Second,
		"2 mins, 5 secs": 2*time.Minute + 5*time.Second,
		" 10 S ":         10 * time.Second,
	} {
		got, err := ParseInterval(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestParseIntervalInvalid(t *testing.T) {
	for _, in := range []string{"", "soon", "3 fortnights", "-1s", "0s"} {
		if _, err := ParseInterval(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestHumanize(t *testing.T) {
	for d, want := range map[time.Duration]string{
		0:                            "never",
		time.Second:                  "every second",
		3 * time.Second:              "every 3 seconds",
		1500 * time.Millisecond:      "every 1.5s",
		time.Minute:                  "every minute",
		5 * time.Minute:              "every 5 minutes",
		time.Minute + 30*time.Second: "every 1m30s",
		2*time.Hour + 3*time.Second:  "every 2h3s",
	} {
		if got := Humanize(d); got != want {
			t.Fatalf("Humanize(%v) = %q, want %q", d, got, want)
		}
	}
}
