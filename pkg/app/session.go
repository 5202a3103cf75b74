// Package app holds the session state shared by the terminal UI and the
// headless commands. Every mutation goes through a Session method so the
// state can be reasoned about as a sequence of transitions.
package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"tableflip.dev/horizon/pkg/discovery"
	"tableflip.dev/horizon/pkg/journey"
	"tableflip.dev/horizon/pkg/place"
)

// Options configure a Session.
type Options struct {
	// Interval between reveals; defaults to discovery.DefaultInterval.
	Interval time.Duration
	DarkMode bool
	// Dedupe makes saving an already saved place a no-op.
	Dedupe    bool
	Mood      place.Mood
	Navigator Navigator
	Logger    *slog.Logger
	// Now stamps saved places; defaults to time.Now.
	Now func() time.Time
}

// Session is the in-memory state of one run of the app. It is not safe for
// concurrent use; the Bubble Tea loop serialises every call.
type Session struct {
	tab   Tab
	dark  bool
	route Route

	catalog []place.Place
	loaded  bool

	feed    *discovery.Feed
	journal *journey.Log

	nav    Navigator
	logger *slog.Logger
	now    func() time.Time
}

// Snapshot is a read-only copy of the session for rendering.
type Snapshot struct {
	Tab       Tab
	Discovery discovery.Session
	DarkMode  bool
	Route     Route
	Mood      place.Mood
	Loaded    bool
	Visible   []place.Place
	Remaining int
	Journal   []journey.SavedPlace
	Empty     discovery.EmptyState
	Interval  time.Duration
}

// NewSession returns a session on the Discover tab with an empty catalog.
func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	nav := opts.Navigator
	if nav == nil {
		nav = LogNavigator{Logger: logger}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &Session{
		tab:     TabDiscover,
		dark:    opts.DarkMode,
		feed:    discovery.NewFeed(opts.Interval),
		journal: journey.New(journey.WithDedupe(opts.Dedupe)),
		nav:     nav,
		logger:  logger,
		now:     now,
	}
	s.feed.Restart(nil, opts.Mood)
	return s
}

// SetCatalog installs a freshly loaded catalog and restarts discovery under
// the current mood.
func (s *Session) SetCatalog(places []place.Place) discovery.Schedule {
	s.catalog = append([]place.Place(nil), places...)
	s.loaded = true
	s.logger.Info("catalog loaded", slog.Int("places", len(places)))
	return s.restart(s.feed.Mood())
}

// CatalogLoaded reports whether a catalog has been installed.
func (s *Session) CatalogLoaded() bool { return s.loaded }

// Catalog returns the installed catalog.
func (s *Session) Catalog() []place.Place {
	return append([]place.Place(nil), s.catalog...)
}

// SelectMood filters discovery by m. Selecting the active mood again keeps
// the current session running and returns an empty schedule.
func (s *Session) SelectMood(m place.Mood) discovery.Schedule {
	if m == s.feed.Mood() {
		return discovery.Schedule{Session: s.feed.Session()}
	}
	s.logger.Debug("mood selected", slog.String("mood", m.String()))
	return s.restart(m)
}

func (s *Session) restart(m place.Mood) discovery.Schedule {
	seq := discovery.Filter(s.catalog, m)
	sched := s.feed.Restart(seq, m)
	s.logger.Debug("discovery restarted",
		slog.Uint64("session", uint64(sched.Session)),
		slog.String("mood", m.String()),
		slog.Int("matches", len(seq)),
	)
	return sched
}

// Reveal applies a due reveal. Reveals from a replaced session are ignored.
func (s *Session) Reveal(r discovery.Reveal) (place.Place, bool) {
	p, ok := s.feed.Apply(r)
	if ok {
		s.logger.Debug("place revealed", slog.String("place", p.ID), slog.Int("index", r.Index))
	}
	return p, ok
}

// Save copies the visible place id into the journey log. Ids that are not
// visible are ignored.
func (s *Session) Save(id string) (journey.SavedPlace, bool) {
	p, ok := s.feed.Lookup(id)
	if !ok {
		return journey.SavedPlace{}, false
	}
	sp, added := s.journal.Save(p, s.now())
	if added {
		s.logger.Info("place saved", slog.String("place", id), slog.String("entry", sp.EntryID))
	}
	return sp, added
}

// Dismiss hides the visible place id for the rest of the session.
func (s *Session) Dismiss(id string) bool {
	ok := s.feed.Dismiss(id)
	if ok {
		s.logger.Debug("place dismissed", slog.String("place", id))
	}
	return ok
}

// Remove deletes the place id from the journey log.
func (s *Session) Remove(id string) int {
	n := s.journal.Remove(id)
	if n > 0 {
		s.logger.Info("place removed from journal", slog.String("place", id), slog.Int("records", n))
	}
	return n
}

// RemoveEntry deletes the single journey-log record entryID, leaving other
// saves of the same place in place.
func (s *Session) RemoveEntry(entryID string) (journey.SavedPlace, bool) {
	sp, ok := s.journal.RemoveEntry(entryID)
	if ok {
		s.logger.Info("journal entry removed", slog.String("place", sp.ID), slog.String("entry", entryID))
	}
	return sp, ok
}

// Navigate asks the navigator to route to a visible or saved place.
func (s *Session) Navigate(ctx context.Context, id string) (place.Place, bool) {
	p, ok := s.feed.Lookup(id)
	if !ok {
		var sp journey.SavedPlace
		sp, ok = s.journal.Lookup(id)
		p = sp.Place
	}
	if !ok {
		return place.Place{}, false
	}
	s.nav.NavigateRequested(ctx, p)
	return p, true
}

// SetTab switches screens. Unknown tabs fall back to Discover. Discovery
// keeps running in the background.
func (s *Session) SetTab(t Tab) Tab {
	if !t.Valid() {
		t = TabDiscover
	}
	s.tab = t
	return t
}

// Tab returns the active tab.
func (s *Session) Tab() Tab { return s.tab }

// SetDarkMode sets the display mode.
func (s *Session) SetDarkMode(dark bool) { s.dark = dark }

// ToggleDarkMode flips the display mode and returns the new value.
func (s *Session) ToggleDarkMode() bool {
	s.dark = !s.dark
	return s.dark
}

// DarkMode reports whether night mode is on.
func (s *Session) DarkMode() bool { return s.dark }

// SetRoute records the trip endpoints.
func (s *Session) SetRoute(from, to string) error {
	r, err := NewRoute(from, to)
	if err != nil {
		return err
	}
	s.route = r
	s.logger.Info("route set", slog.String("from", r.From), slog.String("to", r.To))
	return nil
}

// Route returns the trip endpoints.
func (s *Session) Route() Route { return s.route }

// Mood returns the active mood.
func (s *Session) Mood() place.Mood { return s.feed.Mood() }

// Visible returns the visible places in reveal order.
func (s *Session) Visible() []place.Place { return s.feed.Visible() }

// Journal returns the journey log, most recent first.
func (s *Session) Journal() []journey.SavedPlace { return s.journal.Entries() }

// IsSaved reports whether the place id is in the journey log.
func (s *Session) IsSaved(id string) bool { return s.journal.Saved(id) }

// Interval returns the reveal cadence.
func (s *Session) Interval() time.Duration { return s.feed.Interval() }

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tab:       s.tab,
		Discovery: s.feed.Session(),
		DarkMode:  s.dark,
		Route:     s.route,
		Mood:      s.feed.Mood(),
		Loaded:    s.loaded,
		Visible:   s.feed.Visible(),
		Remaining: s.feed.Remaining(),
		Journal:   s.journal.Entries(),
		Empty:     s.feed.EmptyState(),
		Interval:  s.feed.Interval(),
	}
}
