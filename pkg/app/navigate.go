package app

import (
	"context"
	"log/slog"

	"tableflip.dev/horizon/pkg/place"
)

// Navigator hands a place off to a mapping or turn-by-turn provider. It is a
// notification; implementations must not block the caller.
type Navigator interface {
	NavigateRequested(ctx context.Context, p place.Place)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, p place.Place)

// NavigateRequested implements Navigator.
func (f NavigatorFunc) NavigateRequested(ctx context.Context, p place.Place) {
	f(ctx, p)
}

// LogNavigator records navigation requests. It stands in until a real
// provider is wired.
type LogNavigator struct {
	Logger *slog.Logger
}

// NavigateRequested implements Navigator.
func (n LogNavigator) NavigateRequested(ctx context.Context, p place.Place) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "navigation requested",
		slog.String("place", p.ID),
		slog.String("title", p.Title),
		slog.String("distance", p.Distance),
	)
}
