// Package printers renders places and moods for the command line.
package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/horizon/pkg/place"
)

// PrettyPrint writes colourised tables. The zero value writes to color.Output.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Width caps the summary column; zero hides summaries.
	Width uint
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

// NewLine prints an empty line.
func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Title prints an underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// TitleWithCount prints a heading followed by a faint counter.
func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	if count == 1 {
		_, _ = c.Fprintf(pp.out(), " - %d %s\n", count, noun)
		return
	}
	_, _ = c.Fprintf(pp.out(), " - %d %ss\n", count, noun)
}

// Places prints a table of places.
func (pp *PrettyPrint) Places(places ...place.Place) {
	if len(places) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.Width > 0 {
		tbl.MaxColWidth = pp.Width
		tbl.Wrap = true
	}
	header := []interface{}{bold.Sprint("Place"), bold.Sprint("Category"), bold.Sprint("Ahead"), bold.Sprint("Detour"), bold.Sprint("Moods")}
	if pp.ShowID {
		header = append([]interface{}{bold.Sprint("ID")}, header...)
	}
	if pp.Width > 0 {
		header = append(header, bold.Sprint("Summary"))
	}
	tbl.AddRow(header...)

	for _, p := range places {
		row := []interface{}{
			p.Title,
			strings.TrimSpace(p.Category.Icon() + " " + p.Category.Label()),
			p.Distance,
			p.Detour,
			faint.Sprint(moodList(p.Moods)),
		}
		if pp.ShowID {
			row = append([]interface{}{faint.Sprint(p.ID)}, row...)
		}
		if pp.Width > 0 {
			row = append(row, p.Summary)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Moods prints the mood vocabulary.
func (pp *PrettyPrint) Moods(moods ...place.MoodInfo) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mood"), bold.Sprint("Label"), bold.Sprint("Description"))
	for _, m := range moods {
		tbl.AddRow(string(m.ID), strings.TrimSpace(m.Emoji+" "+m.Label), m.Description)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Reveal prints a single discovery as it arrives, stamped with the time since
// the scan started.
func (pp *PrettyPrint) Reveal(elapsed time.Duration, p place.Place) {
	y := color.New(color.FgHiYellow, color.Faint)
	t := color.New(color.Bold)
	c := color.New(color.Faint)

	_, _ = y.Fprintf(pp.out(), "[%5s] ", elapsed.Truncate(100*time.Millisecond))
	_, _ = t.Fprintf(pp.out(), "%s %s", p.Category.Icon(), p.Title)
	_, _ = c.Fprintf(pp.out(), "  %s ahead · %s detour\n", p.Distance, p.Detour)
	if pp.Width > 0 && p.Summary != "" {
		_, _ = c.Fprintf(pp.out(), "        %s\n", p.Summary)
	}
}

func moodList(moods []place.Mood) string {
	names := make([]string, 0, len(moods))
	for _, m := range moods {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}
