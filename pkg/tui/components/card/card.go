// Package card renders a single place as a framed card.
package card

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/horizon/pkg/place"
	"tableflip.dev/horizon/pkg/tui/theme"
)

// Options tweak how a card is drawn.
type Options struct {
	Width    int
	Selected bool
	Saved    bool
	// Footer replaces the action hint line when set (journal cards show the
	// saved timestamp here).
	Footer  string
	Actions string
}

const minWidth = 24

// Render draws p using th.
func Render(th theme.Theme, p place.Place, opts Options) string {
	width := opts.Width
	if width < minWidth {
		width = minWidth
	}
	frame := th.Card.Frame
	if opts.Selected {
		frame = th.Card.Selected
	}
	inner := width - frame.GetHorizontalFrameSize()
	if inner < 8 {
		inner = 8
	}

	badge := th.Category(p.Category).Render(strings.TrimSpace(p.Category.Icon() + " " + p.Category.Label()))
	title := th.Card.Title.Render(truncate.StringWithTail(p.Title, uint(inner), "…"))
	if opts.Saved {
		title += " " + th.Card.Saved.Render("★ Saved")
	}

	lines := []string{
		badge,
		title,
		th.Card.Meta.Render(Meta(p)),
	}
	if p.Summary != "" {
		lines = append(lines, th.Card.Summary.Render(wordwrap.String(p.Summary, inner)))
	}
	switch {
	case opts.Footer != "":
		lines = append(lines, th.Card.Meta.Render(opts.Footer))
	case opts.Actions != "":
		lines = append(lines, th.Card.Actions.Render(opts.Actions))
	}
	return frame.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Meta formats the distance line shown under a title.
func Meta(p place.Place) string {
	switch {
	case p.Distance != "" && p.Detour != "":
		return fmt.Sprintf("%s ahead · %s detour", p.Distance, p.Detour)
	case p.Distance != "":
		return p.Distance + " ahead"
	case p.Detour != "":
		return p.Detour + " detour"
	default:
		return ""
	}
}
