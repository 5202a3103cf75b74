// Package place defines the points of interest surfaced along a route and the
// catalog providers that supply them.
package place

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCategory is returned when a category string is not one of the
	// supported categories.
	ErrUnknownCategory = errors.New("place: unknown category")
	// ErrPlaceNotFound is returned by lookups for an id missing from a catalog.
	ErrPlaceNotFound = errors.New("place: not found")
)

// Category classifies a place.
type Category string

const (
	Nature  Category = "nature"
	History Category = "history"
	Food    Category = "food"
	Art     Category = "art"
	Quirky  Category = "quirky"
)

var categoryLabels = map[Category]string{
	Nature:  "Nature",
	History: "History",
	Food:    "Local Eats",
	Art:     "Art & Culture",
	Quirky:  "Quirky",
}

var categoryIcons = map[Category]string{
	Nature:  "🌲",
	History: "🏛️",
	Food:    "🍽️",
	Art:     "🎨",
	Quirky:  "✨",
}

// Categories returns every supported category in display order.
func Categories() []Category {
	return []Category{Nature, History, Food, Art, Quirky}
}

// Label returns the display label for the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Icon returns the emoji shown on the category badge.
func (c Category) Icon() string {
	return categoryIcons[c]
}

// Valid reports whether c is a supported category.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory resolves a category from its id or label, ignoring case.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, label := range categoryLabels {
		if s == string(c) || s == strings.ToLower(label) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Place is a catalog-defined point of interest. Places are values and are
// never mutated once loaded.
type Place struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Distance string   `json:"distance"`
	Detour   string   `json:"detour"`
	Summary  string   `json:"summary"`
	ImageRef string   `json:"imageRef,omitempty"`
	Moods    []Mood   `json:"moods,omitempty"`
}

// HasMood reports whether the place is tagged with m.
func (p Place) HasMood(m Mood) bool {
	for _, t := range p.Moods {
		if t == m {
			return true
		}
	}
	return false
}

// Clone returns a copy of p that does not share its mood slice.
func (p Place) Clone() Place {
	if p.Moods != nil {
		p.Moods = append([]Mood(nil), p.Moods...)
	}
	return p
}

// Find returns the place with the given id.
func Find(places []Place, id string) (Place, bool) {
	for _, p := range places {
		if p.ID == id {
			return p, true
		}
	}
	return Place{}, false
}
