package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/overlay/internal/ui/compose"
)

// View paints the page, dims it while a modal holds the scroll lock, then
// stacks every present overlay on top in layer order.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render(m.title)
	if m.engine.ScrollLocked() {
		header += lockStyle.Render(" scroll locked")
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		ansi.Truncate(header, m.width, ""),
		m.page.View(),
		m.eventPane(),
		ansi.Truncate(m.help.View(m.keys), m.width, ""),
	)
	if m.engine.ScrollLocked() {
		base = compose.Dim(base)
	}
	return compose.Stack(base, m.overlays()...)
}

func (m Model) eventPane() string {
	lines := m.events.Lines(eventLines)
	for len(lines) < eventLines {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = eventStyle.Render(ansi.Truncate(line, m.width, "…"))
	}
	rule := ruleStyle.Render(strings.Repeat("─", max(0, m.width)))
	return strings.Join(append([]string{rule}, lines...), "\n")
}

func (m Model) overlays() []compose.Layer {
	type entry struct {
		layer int
		block compose.Layer
	}
	var entries []entry
	for _, w := range m.widgets.All {
		ov, ok := w.Overlay()
		if !ok {
			continue
		}
		entries = append(entries, entry{layer: ov.Layer, block: compose.Layer{Lines: ov.Lines, X: ov.X, Y: ov.Y}})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].layer < entries[j].layer })

	layers := make([]compose.Layer, len(entries))
	for i, e := range entries {
		layers[i] = e.block
	}
	return layers
}
