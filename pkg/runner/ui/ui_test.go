package ui

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/horizon/pkg/app"
	"tableflip.dev/horizon/pkg/place"
)

func TestSessionCarriesOptions(t *testing.T) {
	u := &UI{Interval: 5 * time.Second, Mood: "rainy", DarkMode: false}
	s := u.Session()
	if s.Interval() != 5*time.Second {
		t.Fatalf("unexpected interval %s", s.Interval())
	}
	if s.Mood() != "rainy" {
		t.Fatalf("unexpected mood %q", s.Mood())
	}
	if s.DarkMode() {
		t.Fatalf("expected day mode")
	}
	if s.Tab() != app.TabDiscover {
		t.Fatalf("expected discover tab, got %q", s.Tab())
	}
}

func TestDoRequiresProvider(t *testing.T) {
	if err := (&UI{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without a provider")
	}
}

func TestDoHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	u := &UI{Provider: place.NewStatic(nil)}
	if err := u.Do(ctx); err == nil {
		t.Fatalf("expected cancelled context error")
	}
}
