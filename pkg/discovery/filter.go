// Package discovery reveals places along the route one by one, the way a
// co-pilot would call out spots as they come into range.
package discovery

import "tableflip.dev/horizon/pkg/place"

// Filter returns the places tagged with mood, in catalog order. NoMood returns
// places unchanged. Unknown moods match nothing.
func Filter(places []place.Place, mood place.Mood) []place.Place {
	if mood == place.NoMood {
		return places
	}
	out := make([]place.Place, 0, len(places))
	for _, p := range places {
		if p.HasMood(mood) {
			out = append(out, p)
		}
	}
	return out
}
