package scan

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/horizon/pkg/place"
)

func init() {
	color.NoColor = true
}

func TestScanRevealsInOrder(t *testing.T) {
	var buf bytes.Buffer
	s := &Scan{Provider: place.NewStatic(nil), Mood: "nature", Interval: time.Millisecond, JSON: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var ids []string
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var ev Event
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			t.Fatalf("invalid event %q: %v", sc.Text(), err)
		}
		if ev.Order != len(ids)+1 {
			t.Fatalf("unexpected order %d", ev.Order)
		}
		ids = append(ids, ev.Place.ID)
	}
	if strings.Join(ids, ",") != "1,4,6" {
		t.Fatalf("unexpected reveal order %v", ids)
	}
}

func TestScanPretty(t *testing.T) {
	var buf bytes.Buffer
	s := &Scan{Provider: place.NewStatic(nil), Mood: "cafe", Interval: time.Millisecond, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Discoveries Ahead", "Grandma's Secret Pie Shop", "Moonlight Diner"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestScanEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	s := &Scan{Provider: place.NewStatic([]place.Place{}), Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Keep driving to discover") {
		t.Fatalf("expected empty state, got:\n%s", buf.String())
	}
}

func TestScanEmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	s := &Scan{Provider: place.NewStatic(nil), Mood: "snowy", JSON: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Empty
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if !got.Empty || !got.Filtered || got.Mood != "snowy" || got.Title != "Snowy Mode" {
		t.Fatalf("unexpected empty state %+v", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestScanReturnsWriteErrors(t *testing.T) {
	s := &Scan{Provider: place.NewStatic(nil), Interval: time.Hour, JSON: true, Out: failingWriter{}}
	done := make(chan error, 1)
	go func() { done <- s.Do(context.Background()) }()
	select {
	case err := <-done:
		if err == nil || !strings.Contains(err.Error(), "disk full") {
			t.Fatalf("expected write error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("scan kept running after a write error")
	}
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	s := &Scan{Provider: place.NewStatic(nil), Interval: time.Hour, JSON: true, Out: &buf}
	if err := s.Do(ctx); err == nil {
		t.Fatalf("expected cancelled context to fail the catalog load")
	}
}
