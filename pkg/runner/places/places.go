// Package places lists the catalog on the command line.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/horizon/pkg/discovery"
	"tableflip.dev/horizon/pkg/place"
	"tableflip.dev/horizon/pkg/printers"
)

// List prints the places matching Mood.
type List struct {
	Provider place.Provider
	Mood     place.Mood
	ShowID   bool
	Wide     bool
	JSON     bool
	Out      io.Writer
}

func (l *List) Do(ctx context.Context) error {
	if l.Provider == nil {
		return errors.New("can not list places, no catalog")
	}
	all, err := l.Provider.ListPlaces(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	matched := discovery.Filter(all, l.Mood)

	out := l.Out
	if out == nil {
		out = color.Output
	}
	if l.JSON {
		if matched == nil {
			matched = []place.Place{}
		}
		return writeJSON(out, matched)
	}

	pp := printers.PrettyPrint{Out: out, ShowID: l.ShowID}
	if l.Wide {
		pp.Width = 60
	}
	pp.NewLine()
	pp.TitleWithCount(l.Mood.Label(), len(matched), "place")
	pp.Places(matched...)
	return nil
}

// Moods prints the mood vocabulary.
type Moods struct {
	JSON bool
	Out  io.Writer
}

func (m *Moods) Do(ctx context.Context) error {
	out := m.Out
	if out == nil {
		out = color.Output
	}
	if m.JSON {
		return writeJSON(out, place.Moods())
	}
	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.Title("Moods")
	pp.Moods(place.Moods()...)
	return nil
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
