// Package scan runs discovery without the terminal UI, printing places as
// they come into range.
package scan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/horizon/pkg/discovery"
	"tableflip.dev/horizon/pkg/place"
	"tableflip.dev/horizon/pkg/printers"
)

// Scan drives one discovery session in real time.
type Scan struct {
	Provider place.Provider
	Mood     place.Mood
	Interval time.Duration
	JSON     bool
	Out      io.Writer
	Logger   *slog.Logger
}

// Event is one reveal in JSON output.
type Event struct {
	Order        int         `json:"order"`
	AfterSeconds float64     `json:"afterSeconds"`
	Place        place.Place `json:"place"`
}

// Empty is the single JSON line written when nothing matches the mood.
type Empty struct {
	Empty    bool   `json:"empty"`
	Mood     string `json:"mood"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Filtered bool   `json:"filtered"`
}

func (s *Scan) Do(ctx context.Context) error {
	if s.Provider == nil {
		return errors.New("can not scan, no catalog")
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}

	all, err := s.Provider.ListPlaces(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	feed := discovery.NewFeed(s.Interval)
	start := time.Now()
	sched := feed.Restart(discovery.Filter(all, s.Mood), s.Mood)
	logger.InfoContext(ctx, "scan started",
		slog.String("mood", s.Mood.String()),
		slog.Int("places", len(sched.Pending)+feed.Len()),
		slog.Duration("interval", feed.Interval()),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pp := printers.PrettyPrint{Out: out, Width: 80}
	enc := json.NewEncoder(out)
	order := 0
	var writeErr error
	emit := func(p place.Place) {
		if writeErr != nil {
			return
		}
		order++
		elapsed := time.Since(start)
		if s.JSON {
			ev := Event{Order: order, AfterSeconds: elapsed.Round(time.Millisecond).Seconds(), Place: p}
			if err := enc.Encode(ev); err != nil {
				writeErr = fmt.Errorf("write reveal: %w", err)
				cancel()
			}
			return
		}
		pp.Reveal(elapsed, p)
	}

	if feed.Len() == 0 {
		empty := feed.EmptyState()
		if s.JSON {
			err := enc.Encode(Empty{
				Empty:    true,
				Mood:     s.Mood.String(),
				Title:    empty.Title,
				Message:  empty.Message,
				Filtered: empty.Filtered,
			})
			if err != nil {
				return fmt.Errorf("write empty state: %w", err)
			}
			return nil
		}
		pp.Title(empty.Title)
		_, _ = fmt.Fprintln(out, empty.Message)
		return nil
	}
	if !s.JSON {
		pp.Title("Discoveries Ahead")
	}
	for _, p := range feed.Visible() {
		emit(p)
	}

	if writeErr == nil {
		err = discovery.Drive(ctx, feed, sched, emit)
	}
	logger.InfoContext(ctx, "scan finished", slog.Int("revealed", order))
	if writeErr != nil {
		return writeErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
