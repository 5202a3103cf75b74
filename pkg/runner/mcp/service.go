// Package mcp exposes the places catalog over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/horizon/pkg/discovery"
	"tableflip.dev/horizon/pkg/place"
)

// Service answers catalog queries shared by the MCP tools and resources.
type Service struct {
	Provider place.Provider
	Interval time.Duration
}

// PlaceDTO is a transport-friendly projection of a place.
type PlaceDTO struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	CategoryLabel string   `json:"categoryLabel"`
	Distance      string   `json:"distance"`
	Detour        string   `json:"detour"`
	Summary       string   `json:"summary"`
	ImageRef      string   `json:"imageRef,omitempty"`
	Moods         []string `json:"moods"`
}

// RevealDTO describes when a place would appear in the feed.
type RevealDTO struct {
	Order        int      `json:"order"`
	AfterSeconds float64  `json:"afterSeconds"`
	Place        PlaceDTO `json:"place"`
}

// NewService builds a service over the provided catalog. A non-positive
// interval selects the default reveal cadence.
func NewService(p place.Provider, interval time.Duration) *Service {
	if interval <= 0 {
		interval = discovery.DefaultInterval
	}
	return &Service{Provider: p, Interval: interval}
}

func (s *Service) catalog(ctx context.Context) ([]place.Place, error) {
	if s.Provider == nil {
		return nil, errors.New("catalog provider is not configured")
	}
	return s.Provider.ListPlaces(ctx)
}

// ListPlaces returns the catalog filtered by mood. An empty mood lists every
// place.
func (s *Service) ListPlaces(ctx context.Context, mood string) ([]PlaceDTO, error) {
	m, err := place.ParseMood(mood)
	if err != nil {
		return nil, err
	}
	all, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(discovery.Filter(all, m)), nil
}

// ListMoods returns the mood vocabulary.
func (s *Service) ListMoods() []place.MoodInfo {
	return place.Moods()
}

// GetPlace looks a place up by id.
func (s *Service) GetPlace(ctx context.Context, id string) (PlaceDTO, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PlaceDTO{}, errors.New("place id is required")
	}
	all, err := s.catalog(ctx)
	if err != nil {
		return PlaceDTO{}, err
	}
	p, ok := place.Find(all, id)
	if !ok {
		return PlaceDTO{}, fmt.Errorf("%w: %s", place.ErrPlaceNotFound, id)
	}
	return toDTO(p), nil
}

// RevealPlan previews the order and timing of reveals for a mood, exactly as
// the feed would schedule them.
func (s *Service) RevealPlan(ctx context.Context, mood string) ([]RevealDTO, error) {
	m, err := place.ParseMood(mood)
	if err != nil {
		return nil, err
	}
	all, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	seq := discovery.Filter(all, m)
	feed := discovery.NewFeed(s.Interval)
	sched := feed.Restart(seq, m)

	plan := make([]RevealDTO, 0, len(seq))
	if len(seq) > 0 {
		plan = append(plan, RevealDTO{Order: 1, Place: toDTO(seq[0])})
	}
	for _, r := range sched.Pending {
		plan = append(plan, RevealDTO{
			Order:        r.Index + 1,
			AfterSeconds: r.Delay.Seconds(),
			Place:        toDTO(seq[r.Index]),
		})
	}
	return plan, nil
}

func toDTOs(places []place.Place) []PlaceDTO {
	out := make([]PlaceDTO, 0, len(places))
	for _, p := range places {
		out = append(out, toDTO(p))
	}
	return out
}

func toDTO(p place.Place) PlaceDTO {
	moods := make([]string, 0, len(p.Moods))
	for _, m := range p.Moods {
		moods = append(moods, string(m))
	}
	return PlaceDTO{
		ID:            p.ID,
		Title:         p.Title,
		Category:      string(p.Category),
		CategoryLabel: p.Category.Label(),
		Distance:      p.Distance,
		Detour:        p.Detour,
		Summary:       p.Summary,
		ImageRef:      p.ImageRef,
		Moods:         moods,
	}
}
