package place

import (
	"context"
)

// Provider supplies the catalog of candidate places. A search or ranking
// backend would implement this in a connected deployment.
type Provider interface {
	ListPlaces(ctx context.Context) ([]Place, error)
}

// Static serves a fixed list of places.
type Static struct {
	Places []Place
}

// NewStatic returns a provider over places, or over the built-in catalog when
// places is nil.
func NewStatic(places []Place) *Static {
	if places == nil {
		places = Catalog()
	}
	return &Static{Places: places}
}

// ListPlaces implements Provider.
func (s *Static) ListPlaces(ctx context.Context) ([]Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Place, 0, len(s.Places))
	for _, p := range s.Places {
		out = append(out, p.Clone())
	}
	return out, nil
}
