package place

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"sigs.k8s.io/yaml"
)

// ErrInvalidCatalog is returned when a catalog file cannot be used.
var ErrInvalidCatalog = errors.New("place: invalid catalog")

// catalogFile is the on-disk layout. YAML and JSON are both accepted.
type catalogFile struct {
	Places []Place `json:"places"`
}

// FileProvider loads places from a YAML or JSON catalog file.
type FileProvider struct {
	Path string

	// Debounce coalesces bursts of writes while watching. Defaults to 100ms.
	Debounce time.Duration
}

// NewFileProvider returns a provider reading path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// ListPlaces implements Provider. The file is read on every call.
func (f *FileProvider) ListPlaces(ctx context.Context) ([]Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("place: read catalog: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(raw []byte) ([]Place, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	seen := make(map[string]struct{}, len(doc.Places))
	for i, p := range doc.Places {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("%w: place %d has no id", ErrInvalidCatalog, i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = struct{}{}
		c, err := ParseCategory(string(p.Category))
		if err != nil {
			return nil, fmt.Errorf("%w: place %q: %v", ErrInvalidCatalog, p.ID, err)
		}
		doc.Places[i].Category = c
	}
	if doc.Places == nil {
		doc.Places = []Place{}
	}
	return doc.Places, nil
}

// MarshalCatalog encodes places in the YAML layout ParseCatalog reads.
func MarshalCatalog(places []Place) ([]byte, error) {
	if places == nil {
		places = []Place{}
	}
	return yaml.Marshal(catalogFile{Places: places})
}

// Event reports that the catalog file changed on disk.
type Event struct {
	Path string
	Err  error
}

// Watch streams change notifications for the catalog file until ctx is
// cancelled. The parent directory is watched so editors that replace the file
// are still observed. The channel is closed when the watcher stops.
func (f *FileProvider) Watch(ctx context.Context) (<-chan Event, error) {
	abs, err := filepath.Abs(f.Path)
	if err != nil {
		return nil, fmt.Errorf("place: resolve catalog path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("place: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("place: watch %s: %w", filepath.Dir(abs), err)
	}

	delay := f.Debounce
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}

	events := make(chan Event, 8)
	var (
		mu     sync.Mutex
		closed bool
	)
	send := func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case events <- ev:
		default:
			// A pending notification already asks the consumer to reload.
		}
	}

	go func() {
		defer func() {
			mu.Lock()
			closed = true
			close(events)
			mu.Unlock()
		}()
		defer watcher.Close()

		d := newDebouncer(delay)
		defer d.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				send(Event{Path: abs, Err: err})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				d.Trigger(func() { send(Event{Path: abs}) })
			}
		}
	}()

	return events, nil
}

// debouncer runs the most recent callback once no trigger arrived for delay.
type debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
