// Package ui launches the full-screen terminal app.
package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tableflip.dev/horizon/pkg/app"
	"tableflip.dev/horizon/pkg/place"
	teaui "tableflip.dev/horizon/pkg/tui/app"
)

// UI holds everything needed to start an interactive session.
type UI struct {
	Provider place.Provider
	Interval time.Duration
	Mood     place.Mood
	DarkMode bool
	Dedupe   bool
	Watch    bool
	Version  string
	Logger   *slog.Logger
}

// Session builds the session the app starts with.
func (u *UI) Session() *app.Session {
	return app.NewSession(app.Options{
		Interval: u.Interval,
		DarkMode: u.DarkMode,
		Dedupe:   u.Dedupe,
		Mood:     u.Mood,
		Logger:   u.Logger,
	})
}

func (u *UI) Do(ctx context.Context) error {
	if u.Provider == nil {
		return errors.New("can not start ui, no catalog")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.Logger != nil {
		u.Logger.InfoContext(ctx, "starting ui",
			slog.String("mood", u.Mood.String()),
			slog.Bool("dark", u.DarkMode),
			slog.Bool("watch", u.Watch),
		)
	}
	return teaui.Run(teaui.Options{
		Context:  ctx,
		Session:  u.Session(),
		Provider: u.Provider,
		Watch:    u.Watch,
		Version:  u.Version,
		Logger:   u.Logger,
	})
}
