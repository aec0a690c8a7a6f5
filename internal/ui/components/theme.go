package components

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet pairs a semantic colour with the text colour drawn on top of it.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
}

// Palette holds the semantic colours used by widgets.
type Palette struct {
	Text    ColourSet
	Muted   ColourSet
	Accent  ColourSet
	Surface ColourSet
	Success ColourSet
	Danger  ColourSet
}

// PaletteSlot selects one colour set from a palette.
type PaletteSlot func(Palette) ColourSet

var (
	PaletteText    PaletteSlot = func(p Palette) ColourSet { return p.Text }
	PaletteMuted   PaletteSlot = func(p Palette) ColourSet { return p.Muted }
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

// Theme is an immutable set of rendering choices.
type Theme struct {
	Name    string
	Palette Palette
	// PanelBorder frames floating panels.
	PanelBorder lipgloss.Border
	// TriggerBorder brackets trigger labels, left and right.
	TriggerOpen, TriggerClose string
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme is the dark-friendly theme used when none is configured.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Palette: Palette{
			Text:    ColourSet{Base: adaptive("#1f2328", "#e6edf3"), OnBase: adaptive("#ffffff", "#0d1117")},
			Muted:   ColourSet{Base: adaptive("#656d76", "#7d8590"), OnBase: adaptive("#ffffff", "#0d1117")},
			Accent:  ColourSet{Base: adaptive("#0969da", "#58a6ff"), OnBase: adaptive("#ffffff", "#0d1117")},
			Surface: ColourSet{Base: adaptive("#f6f8fa", "#161b22"), OnBase: adaptive("#1f2328", "#e6edf3")},
			Success: ColourSet{Base: adaptive("#1a7f37", "#3fb950"), OnBase: adaptive("#ffffff", "#0d1117")},
			Danger:  ColourSet{Base: adaptive("#cf222e", "#f85149"), OnBase: adaptive("#ffffff", "#0d1117")},
		},
		PanelBorder:  lipgloss.RoundedBorder(),
		TriggerOpen:  "[",
		TriggerClose: "]",
	}
}

// PlainTheme draws with ASCII borders, for terminals without box glyphs.
func PlainTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "plain"
	theme.PanelBorder = lipgloss.ASCIIBorder()
	return theme
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"plain":   PlainTheme,
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	build, ok := themes[name]
	if !ok {
		return Theme{}, false
	}
	return build(), true
}

// ThemeNames lists the built-in themes in order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Foreground colours text with slot.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Foreground(slot(t.Palette).Base)
	}
}

// Background fills with slot and switches text to its contrasting colour.
func Background(slot PaletteSlot) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		set := slot(t.Palette)
		return s.Background(set.Base).Foreground(set.OnBase)
	}
}

// PanelFrame draws the theme panel border in slot with one cell of
// horizontal padding.
func PanelFrame(slot PaletteSlot) StyleFunc {
	return func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.Border(t.PanelBorder).BorderForeground(slot(t.Palette).Base).Padding(0, 1)
	}
}

func Bold() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Bold(true) }
}

func Underline() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Underline(true) }
}

func Faint() StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Faint(true) }
}
