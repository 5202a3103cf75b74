// Package journey keeps the places a traveller saved during a session.
package journey

import (
	"time"

	"github.com/google/uuid"

	"tableflip.dev/horizon/pkg/place"
)

// SavedPlace is a copy of a place taken when the user saved it.
type SavedPlace struct {
	place.Place
	EntryID string    `json:"entryId"`
	SavedAt time.Time `json:"savedAt"`
}

// Option configures a Log.
type Option func(*Log)

// WithDedupe makes saving a place that is already in the log a no-op.
func WithDedupe(dedupe bool) Option {
	return func(l *Log) { l.dedupe = dedupe }
}

// Log is the session journey log, most recent first. It is not safe for
// concurrent use.
type Log struct {
	entries []SavedPlace
	dedupe  bool
}

// New returns an empty log.
func New(opts ...Option) *Log {
	l := &Log{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Save prepends p stamped with at. With dedupe enabled, saving a place that
// is already logged returns the existing record and false.
func (l *Log) Save(p place.Place, at time.Time) (SavedPlace, bool) {
	if l.dedupe {
		for _, e := range l.entries {
			if e.ID == p.ID {
				return e, false
			}
		}
	}
	sp := SavedPlace{
		Place:   p.Clone(),
		EntryID: uuid.NewString(),
		SavedAt: at,
	}
	l.entries = append([]SavedPlace{sp}, l.entries...)
	return sp, true
}

// Remove deletes every record of the place id and returns how many were
// removed.
func (l *Log) Remove(id string) int {
	kept := l.entries[:0]
	removed := 0
	for _, e := range l.entries {
		if e.ID == id {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(l.entries); i++ {
		l.entries[i] = SavedPlace{}
	}
	l.entries = kept
	return removed
}

// RemoveEntry deletes the single record with entryID and returns it. Other
// records of the same place are kept.
func (l *Log) RemoveEntry(entryID string) (SavedPlace, bool) {
	for i, e := range l.entries {
		if e.EntryID == entryID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return e, true
		}
	}
	return SavedPlace{}, false
}

// Saved reports whether the place id has at least one record.
func (l *Log) Saved(id string) bool {
	for _, e := range l.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Lookup returns the most recent record of the place id.
func (l *Log) Lookup(id string) (SavedPlace, bool) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return SavedPlace{}, false
}

// Entries returns a copy of the log, most recent first.
func (l *Log) Entries() []SavedPlace {
	return append([]SavedPlace(nil), l.entries...)
}

// Len returns the number of records.
func (l *Log) Len() int { return len(l.entries) }
