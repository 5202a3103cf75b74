package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/horizon/pkg/place"
)

func TestServiceListPlacesFiltersByMood(t *testing.T) {
	ctx := context.Background()
	svc := NewService(place.NewStatic(nil), 0)

	all, err := svc.ListPlaces(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("expected 6 places, got %d", len(all))
	}

	nature, err := svc.ListPlaces(ctx, "nature")
	if err != nil {
		t.Fatalf("list nature: %v", err)
	}
	want := []string{"1", "4", "6"}
	if len(nature) != len(want) {
		t.Fatalf("expected %d nature places, got %d", len(want), len(nature))
	}
	for i, id := range want {
		if nature[i].ID != id {
			t.Fatalf("nature[%d] = %s, want %s", i, nature[i].ID, id)
		}
	}
	if nature[0].CategoryLabel != "Nature" {
		t.Fatalf("unexpected category label %q", nature[0].CategoryLabel)
	}
}

func TestServiceListPlacesRejectsUnknownMood(t *testing.T) {
	svc := NewService(place.NewStatic(nil), 0)
	_, err := svc.ListPlaces(context.Background(), "grumpy")
	if !errors.Is(err, place.ErrUnknownMood) {
		t.Fatalf("expected ErrUnknownMood, got %v", err)
	}
}

func TestServiceGetPlace(t *testing.T) {
	ctx := context.Background()
	svc := NewService(place.NewStatic(nil), 0)

	dto, err := svc.GetPlace(ctx, "2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if dto.Title != "Grandma's Secret Pie Shop" || dto.Category != "food" {
		t.Fatalf("unexpected place %+v", dto)
	}
	if _, err := svc.GetPlace(ctx, "99"); !errors.Is(err, place.ErrPlaceNotFound) {
		t.Fatalf("expected ErrPlaceNotFound, got %v", err)
	}
	if _, err := svc.GetPlace(ctx, " "); err == nil {
		t.Fatalf("expected error for blank id")
	}
}

func TestServiceRevealPlan(t *testing.T) {
	svc := NewService(place.NewStatic(nil), 2*time.Second)
	plan, err := svc.RevealPlan(context.Background(), "nature")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan) != 3 {
		t.Fatalf("expected 3 reveals, got %d", len(plan))
	}
	for i, r := range plan {
		if r.Order != i+1 {
			t.Fatalf("reveal %d has order %d", i, r.Order)
		}
		if want := float64(2 * i); r.AfterSeconds != want {
			t.Fatalf("reveal %d after %v, want %v", i, r.AfterSeconds, want)
		}
	}
	if plan[2].Place.ID != "6" {
		t.Fatalf("expected place 6 last, got %s", plan[2].Place.ID)
	}
}

func TestServiceRevealPlanEmpty(t *testing.T) {
	svc := NewService(place.NewStatic([]place.Place{}), 0)
	plan, err := svc.RevealPlan(context.Background(), "")
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan) != 0 {
		t.Fatalf("expected empty plan, got %d", len(plan))
	}
}

func TestServiceListMoods(t *testing.T) {
	svc := NewService(place.NewStatic(nil), 0)
	if got := len(svc.ListMoods()); got != 9 {
		t.Fatalf("expected 9 moods, got %d", got)
	}
}

func TestRunnerRequiresProvider(t *testing.T) {
	if err := (Runner{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without provider")
	}
}
