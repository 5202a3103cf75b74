package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/horizon/pkg/place"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Dark bool

	Header HeaderTheme
	Tabs   TabsTheme
	Card   CardTheme
	Chip   ChipTheme
	Panel  PanelTheme
	Footer FooterTheme
	Modal  ModalTheme

	categories map[place.Category]lipgloss.Style
}

// HeaderTheme styles the top bar.
type HeaderTheme struct {
	Logo   lipgloss.Style
	Title  lipgloss.Style
	Route  lipgloss.Style
	Badge  lipgloss.Style
	Toggle lipgloss.Style
	Frame  lipgloss.Style
}

// TabsTheme styles the bottom navigation.
type TabsTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// CardTheme styles discovery and journal cards.
type CardTheme struct {
	Frame    lipgloss.Style
	Selected lipgloss.Style
	Title    lipgloss.Style
	Meta     lipgloss.Style
	Summary  lipgloss.Style
	Saved    lipgloss.Style
	Actions  lipgloss.Style
}

// ChipTheme styles mood chips and generic badges.
type ChipTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Badge    lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Emphasis lipgloss.Style
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Toast  lipgloss.Style
}

// ModalTheme styles centered modal overlays (help, route editor).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

type palette struct {
	background color.Color
	foreground color.Color
	muted      color.Color
	border     color.Color
	accent     color.Color
	accentText color.Color
}

var (
	darkPalette = palette{
		background: lipgloss.Color("#12161c"),
		foreground: lipgloss.Color("#e6e9ef"),
		muted:      lipgloss.Color("#8a93a3"),
		border:     lipgloss.Color("#3a4250"),
		accent:     lipgloss.Color("#f59e0b"),
		accentText: lipgloss.Color("#1a1203"),
	}
	lightPalette = palette{
		background: lipgloss.Color("#fbfaf7"),
		foreground: lipgloss.Color("#1f2430"),
		muted:      lipgloss.Color("#667085"),
		border:     lipgloss.Color("#d0d5dd"),
		accent:     lipgloss.Color("#d97706"),
		accentText: lipgloss.Color("#ffffff"),
	}

	categoryAccents = map[place.Category]string{
		place.Nature:  "#22c55e",
		place.History: "#3b82f6",
		place.Food:    "#f97316",
		place.Art:     "#a855f7",
		place.Quirky:  "#ec4899",
	}
)

// For returns the night or day theme.
func For(dark bool) Theme {
	if dark {
		return build(true, darkPalette)
	}
	return build(false, lightPalette)
}

// Default returns the night theme used for driving after dark.
func Default() Theme {
	return For(true)
}

// Category returns the badge style for c.
func (t Theme) Category(c place.Category) lipgloss.Style {
	if s, ok := t.categories[c]; ok {
		return s
	}
	return t.Chip.Badge
}

func build(dark bool, p palette) Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1)

	t := Theme{
		Dark: dark,
		Header: HeaderTheme{
			Logo: lipgloss.NewStyle().
				Background(p.accent).
				Foreground(p.accentText).
				Bold(true).
				Padding(0, 1),
			Title:  lipgloss.NewStyle().Foreground(p.foreground).Bold(true),
			Route:  lipgloss.NewStyle().Foreground(p.muted),
			Badge:  lipgloss.NewStyle().Foreground(p.accent).Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(0, 1),
			Toggle: lipgloss.NewStyle().Foreground(p.muted),
			Frame: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(p.border),
		},
		Tabs: TabsTheme{
			Active:   lipgloss.NewStyle().Foreground(p.accent).Bold(true).Padding(0, 2),
			Inactive: lipgloss.NewStyle().Foreground(p.muted).Padding(0, 2),
		},
		Card: CardTheme{
			Frame:    frame,
			Selected: frame.BorderForeground(p.accent),
			Title:    lipgloss.NewStyle().Foreground(p.foreground).Bold(true),
			Meta:     lipgloss.NewStyle().Foreground(p.muted),
			Summary:  lipgloss.NewStyle().Foreground(p.foreground),
			Saved:    lipgloss.NewStyle().Foreground(p.accent).Bold(true),
			Actions:  lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		},
		Chip: ChipTheme{
			Active:   lipgloss.NewStyle().Background(p.accent).Foreground(p.accentText).Padding(0, 1),
			Inactive: lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
			Badge:    lipgloss.NewStyle().Foreground(p.foreground).Padding(0, 1),
		},
		Panel: PanelTheme{
			Frame:    frame.Padding(1, 2),
			Title:    lipgloss.NewStyle().Foreground(p.foreground).Bold(true),
			Body:     lipgloss.NewStyle().Foreground(p.foreground),
			Muted:    lipgloss.NewStyle().Foreground(p.muted),
			Emphasis: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(p.muted),
			Status: lipgloss.NewStyle().Foreground(p.muted),
			Toast:  lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(p.accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Foreground(p.foreground).Bold(true),
			Body:  lipgloss.NewStyle().Foreground(p.foreground),
		},
		categories: make(map[place.Category]lipgloss.Style, len(categoryAccents)),
	}

	bg, _ := colorful.MakeColor(p.background)
	for c, hex := range categoryAccents {
		accent, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		// Badges sit on a tint of the accent so they read on either palette.
		tint := accent.BlendLab(bg, 0.7).Clamped()
		fg := accent
		if !dark {
			fg = accent.BlendLab(colorful.Color{}, 0.35).Clamped()
		}
		t.categories[c] = lipgloss.NewStyle().
			Background(lipgloss.Color(tint.Hex())).
			Foreground(lipgloss.Color(fg.Hex())).
			Padding(0, 1)
	}
	return t
}
