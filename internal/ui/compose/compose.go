// Package compose layers rendered floating boxes over a rendered background.
package compose

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const reset = "\x1b[0m"

// Layer is one floating box at screen cell (X, Y).
type Layer struct {
	Lines []string
	X     int
	Y     int
}

// Splice replaces the region of view covered by lines, anchored at (x, y).
// Escape sequences on both sides of the region survive; background lines
// shorter than x are padded with spaces. Lines falling outside the view are
// dropped.
func Splice(view string, lines []string, x, y int) string {
	if len(lines) == 0 {
		return view
	}
	if x < 0 {
		x = 0
	}

	rows := strings.Split(view, "\n")
	for i, line := range lines {
		row := y + i
		if row < 0 || row >= len(rows) {
			continue
		}
		rows[row] = spliceLine(rows[row], line, x)
	}
	return strings.Join(rows, "\n")
}

func spliceLine(background, overlay string, x int) string {
	width := ansi.StringWidth(background)
	overlayWidth := ansi.StringWidth(overlay)

	var b strings.Builder
	if x > 0 {
		b.WriteString(ansi.Truncate(background, x, ""))
		if width < x {
			b.WriteString(strings.Repeat(" ", x-width))
		}
	}
	b.WriteString(reset)
	b.WriteString(overlay)
	b.WriteString(reset)

	if end := x + overlayWidth; end < width {
		b.WriteString(ansi.TruncateLeft(background, end, ""))
	}
	return b.String()
}

// Stack splices layers in order, so later layers cover earlier ones.
func Stack(view string, layers ...Layer) string {
	for _, l := range layers {
		view = Splice(view, l.Lines, l.X, l.Y)
	}
	return view
}

var dimStyle = lipgloss.NewStyle().Faint(true)

// Dim strips styling from view and renders it faint, as a backdrop behind a
// modal.
func Dim(view string) string {
	rows := strings.Split(view, "\n")
	for i, row := range rows {
		plain := ansi.Strip(row)
		if plain == "" {
			rows[i] = plain
			continue
		}
		rows[i] = dimStyle.Render(plain)
	}
	return strings.Join(rows, "\n")
}
