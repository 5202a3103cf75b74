package journey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/horizon/pkg/place"
)

var (
	alpha = place.Place{ID: "A", Title: "Alpha", Category: place.Nature}
	bravo = place.Place{ID: "B", Title: "Bravo", Category: place.Food}
	t0    = time.Date(2025, time.June, 1, 9, 30, 0, 0, time.UTC)
)

func TestSavePrependsMostRecentFirst(t *testing.T) {
	l := New()
	_, ok := l.Save(alpha, t0)
	require.True(t, ok)
	sp, ok := l.Save(bravo, t0.Add(time.Minute))
	require.True(t, ok)

	assert.Equal(t, "B", sp.ID)
	assert.Equal(t, t0.Add(time.Minute), sp.SavedAt)
	assert.NotEmpty(t, sp.EntryID)

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].ID)
	assert.Equal(t, "A", entries[1].ID)
}

func TestDuplicatesAllowedByDefault(t *testing.T) {
	l := New()
	first, _ := l.Save(bravo, t0)
	second, ok := l.Save(bravo, t0.Add(time.Second))
	require.True(t, ok)

	assert.Equal(t, 2, l.Len())
	assert.NotEqual(t, first.EntryID, second.EntryID)
	for _, e := range l.Entries() {
		assert.Equal(t, "B", e.ID)
	}
}

func TestDedupe(t *testing.T) {
	l := New(WithDedupe(true))
	first, ok := l.Save(bravo, t0)
	require.True(t, ok)
	again, ok := l.Save(bravo, t0.Add(time.Second))
	assert.False(t, ok)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, l.Len())
}

func TestRemoveDeletesEveryRecordOfPlace(t *testing.T) {
	l := New()
	l.Save(alpha, t0)
	l.Save(bravo, t0)
	l.Save(bravo, t0)

	assert.Equal(t, 2, l.Remove("B"))
	assert.Equal(t, 1, l.Len())
	assert.False(t, l.Saved("B"))
	assert.True(t, l.Saved("A"))

	assert.Equal(t, 0, l.Remove("B"))
	assert.Equal(t, 0, l.Remove("missing"))
}

func TestRemoveEntry(t *testing.T) {
	l := New()
	first, _ := l.Save(bravo, t0)
	second, _ := l.Save(bravo, t0.Add(time.Second))

	removed, ok := l.RemoveEntry(first.EntryID)
	require.True(t, ok)
	assert.Equal(t, first, removed)
	_, ok = l.RemoveEntry(first.EntryID)
	assert.False(t, ok)

	require.Equal(t, 1, l.Len())
	assert.True(t, l.Saved("B"))
	assert.Equal(t, second.EntryID, l.Entries()[0].EntryID)
}

func TestSavedCopyIsDetached(t *testing.T) {
	p := place.Place{ID: "C", Moods: []place.Mood{"rainy"}}
	l := New()
	l.Save(p, t0)
	p.Moods[0] = "sunny"

	got, ok := l.Lookup("C")
	require.True(t, ok)
	assert.Equal(t, place.Mood("rainy"), got.Moods[0])
}
