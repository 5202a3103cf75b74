package place

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnknownMood is returned when a mood is not part of the vocabulary.
var ErrUnknownMood = errors.New("place: unknown mood")

// Mood is a tag used to filter places. The zero value means no mood is
// selected.
type Mood string

// NoMood selects every place.
const NoMood Mood = ""

// MoodInfo describes a mood offered by the selector.
type MoodInfo struct {
	ID          Mood   `json:"id"`
	Label       string `json:"label"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

var moods = []MoodInfo{
	{ID: "rainy", Label: "Rainy", Emoji: "🌧️", Description: "Cozy indoor spots"},
	{ID: "cafe", Label: "Café Vibes", Emoji: "☕", Description: "Coffee & conversation"},
	{ID: "evening", Label: "Evening", Emoji: "🌆", Description: "Night-time magic"},
	{ID: "sunset", Label: "Sunset", Emoji: "🌅", Description: "Golden hour views"},
	{ID: "sunshine", Label: "Sunshine", Emoji: "☀️", Description: "Bright outdoor fun"},
	{ID: "hungry", Label: "Hungry", Emoji: "🍽️", Description: "Local food spots"},
	{ID: "nature", Label: "Nature", Emoji: "🌲", Description: "Fresh air & trails"},
	{ID: "adventure", Label: "Adventure", Emoji: "⛰️", Description: "Thrilling experiences"},
	{ID: "peaceful", Label: "Peaceful", Emoji: "🧘", Description: "Quiet & serene"},
}

// Moods returns the mood vocabulary in selector order.
func Moods() []MoodInfo {
	return append([]MoodInfo(nil), moods...)
}

// LookupMood returns the descriptor for m.
func LookupMood(m Mood) (MoodInfo, bool) {
	for _, info := range moods {
		if info.ID == m {
			return info, true
		}
	}
	return MoodInfo{}, false
}

// ParseMood resolves user input to a mood. Empty input, "all" and "none"
// resolve to NoMood.
func ParseMood(s string) (Mood, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "all", "none":
		return NoMood, nil
	}
	for _, info := range moods {
		if s == string(info.ID) || s == strings.ToLower(info.Label) {
			return info.ID, nil
		}
	}
	return NoMood, fmt.Errorf("%w: %q", ErrUnknownMood, s)
}

// Label returns the display label of m, or a title-cased id for moods
// outside the vocabulary. NoMood renders as "All Moods".
func (m Mood) Label() string {
	if m == NoMood {
		return "All Moods"
	}
	if info, ok := LookupMood(m); ok {
		return info.Label
	}
	return m.Title()
}

// Title returns the id with its first letter upper-cased, e.g. "Cafe" for
// cafe. NoMood renders as "All".
func (m Mood) Title() string {
	if m == NoMood {
		return "All"
	}
	s := string(m)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// String implements fmt.Stringer.
func (m Mood) String() string {
	if m == NoMood {
		return "all"
	}
	return string(m)
}
