package place

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsDeterministic(t *testing.T) {
	a := Catalog()
	b := Catalog()
	require.Len(t, a, 6)
	assert.Equal(t, a, b)

	ids := make([]string, 0, len(a))
	for _, p := range a {
		ids = append(ids, p.ID)
		assert.True(t, p.Category.Valid(), "place %s has category %q", p.ID, p.Category)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids)
}

func TestCatalogReturnsCopies(t *testing.T) {
	a := Catalog()
	a[0].Moods[0] = "mutated"
	a[0].Title = "mutated"

	b := Catalog()
	assert.Equal(t, Mood("nature"), b[0].Moods[0])
	assert.Equal(t, "The Whispering Falls", b[0].Title)
}

func TestParseMood(t *testing.T) {
	for in, want := range map[string]Mood{
		"":           NoMood,
		"all":        NoMood,
		" None ":     NoMood,
		"rainy":      "rainy",
		"Café Vibes": "cafe",
		"SUNSET":     "sunset",
	} {
		got, err := ParseMood(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseMood("snowy")
	assert.ErrorIs(t, err, ErrUnknownMood)
}

func TestMoodLabel(t *testing.T) {
	assert.Equal(t, "All Moods", NoMood.Label())
	assert.Equal(t, "Café Vibes", Mood("cafe").Label())
	assert.Equal(t, "Snowy", Mood("snowy").Label())
	assert.Equal(t, "Été", Mood("été").Label())
	assert.True(t, utf8.ValidString(Mood("été").Label()))
}

func TestMoodTitle(t *testing.T) {
	assert.Equal(t, "Cafe", Mood("cafe").Title())
	assert.Equal(t, "Évasion", Mood("évasion").Title())
	assert.Equal(t, "All", NoMood.Title())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Local Eats")
	require.NoError(t, err)
	assert.Equal(t, Food, c)

	c, err = ParseCategory("ART")
	require.NoError(t, err)
	assert.Equal(t, Art, c)

	_, err = ParseCategory("museum")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestParseCatalog(t *testing.T) {
	doc := []byte(`
places:
  - id: a
    title: Alpha Falls
    category: nature
    distance: 3km
    detour: 1 min
    moods: [nature]
  - id: b
    title: Bistro
    category: Local Eats
    moods: []
`)
	places, err := ParseCatalog(doc)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, Food, places[1].Category)
	assert.True(t, places[0].HasMood("nature"))
	assert.False(t, places[1].HasMood("nature"))
}

func TestParseCatalogRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"missing id":    "places:\n  - title: x\n    category: art\n",
		"duplicate id":  "places:\n  - id: a\n    category: art\n  - id: a\n    category: art\n",
		"bad category":  "places:\n  - id: a\n    category: museum\n",
		"not a catalog": "places: 12\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(doc))
			assert.True(t, errors.Is(err, ErrInvalidCatalog), "got %v", err)
		})
	}
}

func TestParseCatalogEmpty(t *testing.T) {
	places, err := ParseCatalog([]byte("{}"))
	require.NoError(t, err)
	assert.NotNil(t, places)
	assert.Empty(t, places)
}

func TestMarshalCatalogRoundTrips(t *testing.T) {
	raw, err := MarshalCatalog(Catalog())
	require.NoError(t, err)
	places, err := ParseCatalog(raw)
	require.NoError(t, err)
	assert.Equal(t, Catalog(), places)
}

func TestStaticProviderDefaultsToCatalog(t *testing.T) {
	places, err := NewStatic(nil).ListPlaces(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Catalog(), places)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewStatic(nil).ListPlaces(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileProviderListPlaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"places":[{"id":"x","title":"X","category":"quirky"}]}`), 0o644))

	places, err := NewFileProvider(path).ListPlaces(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, Quirky, places[0].Category)

	_, err = NewFileProvider(filepath.Join(t.TempDir(), "missing.yaml")).ListPlaces(context.Background())
	assert.Error(t, err)
}

func TestFileProviderWatchEmitsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("places: []\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fp := &FileProvider{Path: path, Debounce: 10 * time.Millisecond}
	ch, err := fp.Watch(ctx)
	require.NoError(t, err)

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("places:\n  - id: a\n    category: art\n"), 0o644))

	select {
	case evt := <-ch:
		require.NoError(t, evt.Err)
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, evt.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for catalog change event")
	}

	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("watch channel not closed after cancel")
		}
	}
}
