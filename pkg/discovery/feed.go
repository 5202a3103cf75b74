package discovery

import (
	"fmt"
	"time"

	"tableflip.dev/horizon/pkg/place"
)

// EmptyState is the informational message shown while nothing is visible.
type EmptyState struct {
	Title    string
	Message  string
	Filtered bool
}

// Feed is the visible list of one filter session. It is not safe for
// concurrent use; callers serialise access through their event loop.
type Feed struct {
	interval time.Duration

	session   Session
	mood      place.Mood
	sequence  []place.Place
	next      int
	visible   []place.Place
	dismissed map[string]struct{}
}

// NewFeed returns an idle feed revealing one place every interval. A
// non-positive interval selects DefaultInterval.
func NewFeed(interval time.Duration) *Feed {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Feed{
		interval:  interval,
		dismissed: make(map[string]struct{}),
	}
}

// Interval returns the spacing between reveals.
func (f *Feed) Interval() time.Duration { return f.interval }

// Session returns the active session.
func (f *Feed) Session() Session { return f.session }

// Mood returns the mood the active session was filtered by.
func (f *Feed) Mood() place.Mood { return f.mood }

// Restart begins a new session over seq. The visible list and dismissals are
// cleared, every outstanding reveal of the previous session is invalidated,
// and the first place is revealed immediately. The returned schedule holds
// the remaining reveals, place i due at i*interval.
func (f *Feed) Restart(seq []place.Place, mood place.Mood) Schedule {
	f.session++
	f.mood = mood
	f.sequence = append([]place.Place(nil), seq...)
	f.visible = nil
	f.next = 0
	f.dismissed = make(map[string]struct{})

	sched := Schedule{Session: f.session}
	if len(f.sequence) == 0 {
		return sched
	}
	f.revealNext()
	for i := 1; i < len(f.sequence); i++ {
		sched.Pending = append(sched.Pending, Reveal{
			Session: f.session,
			Index:   i,
			Delay:   time.Duration(i) * f.interval,
		})
	}
	return sched
}

// Apply reveals the places owed up to r.Index and returns the last place
// revealed. Reveals from another session, or for an index already revealed,
// are ignored. A reveal that arrives ahead of an earlier one catches the
// earlier one up so reveal order always matches sequence order.
func (f *Feed) Apply(r Reveal) (place.Place, bool) {
	if r.Session != f.session || r.Index < f.next || r.Index >= len(f.sequence) {
		return place.Place{}, false
	}
	var (
		last     place.Place
		revealed bool
	)
	for f.next <= r.Index {
		if p, ok := f.revealNext(); ok {
			last, revealed = p, true
		}
	}
	return last, revealed
}

func (f *Feed) revealNext() (place.Place, bool) {
	p := f.sequence[f.next]
	f.next++
	if _, gone := f.dismissed[p.ID]; gone {
		return place.Place{}, false
	}
	f.visible = append(f.visible, p)
	return p, true
}

// Dismiss removes id from the visible list. It reports whether anything was
// removed; dismissing an absent id is a no-op.
func (f *Feed) Dismiss(id string) bool {
	for i, p := range f.visible {
		if p.ID == id {
			f.visible = append(f.visible[:i:i], f.visible[i+1:]...)
			f.dismissed[id] = struct{}{}
			return true
		}
	}
	return false
}

// Visible returns a copy of the visible list in reveal order.
func (f *Feed) Visible() []place.Place {
	return append([]place.Place(nil), f.visible...)
}

// Len returns the number of visible places.
func (f *Feed) Len() int { return len(f.visible) }

// Lookup returns the visible place with id.
func (f *Feed) Lookup(id string) (place.Place, bool) {
	return place.Find(f.visible, id)
}

// Remaining returns how many places of the session are still unrevealed.
func (f *Feed) Remaining() int {
	return len(f.sequence) - f.next
}

// EmptyState describes what to show while the visible list is empty.
func (f *Feed) EmptyState() EmptyState {
	if f.mood == place.NoMood {
		return EmptyState{
			Title:   "Keep driving to discover",
			Message: "We're scanning the road ahead for hidden gems and local treasures just for you.",
		}
	}
	return EmptyState{
		Title:    fmt.Sprintf("%s Mode", f.mood.Title()),
		Message:  fmt.Sprintf("No %s spots found along your route right now. Try a different mood or keep driving to discover more!", f.mood),
		Filtered: true,
	}
}
