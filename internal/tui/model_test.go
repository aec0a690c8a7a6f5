package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
	"github.com/alexisbeaulieu97/overlay/internal/ui/components"
)

const galleryYAML = `title: Test gallery
widgets:
  - id: settings
    kind: popover
    label: Settings
    content: Popover body
  - id: confirm
    kind: dialog
    label: Confirm
    content: Sure?
  - id: faq
    kind: accordion
    label: FAQ
    content: Answers
  - id: help
    kind: tooltip
    content: Tip text
  - id: more
    kind: popover
    label: More
`

func newModel(t *testing.T) Model {
	t.Helper()
	f, err := config.Parse("gallery.yaml", []byte(galleryYAML), config.FormatYAML)
	require.NoError(t, err)
	m, err := NewModel(context.Background(), f, Options{})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

// run feeds msg to the model and keeps feeding the messages its commands
// produce until none are left.
func run(t *testing.T, m Model, msg tea.Msg) (Model, []tea.Msg) {
	t.Helper()
	var seen []tea.Msg
	queue := []tea.Msg{msg}
	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 200, "update loop did not settle")
		next := queue[0]
		queue = queue[1:]
		seen = append(seen, next)

		updated, cmd := m.Update(next)
		m = updated.(Model)
		queue = append(queue, collect(cmd)...)
	}
	return m, seen
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func widget(t *testing.T, m Model, id string) components.Widget {
	t.Helper()
	w, ok := m.Widgets().Widget(id)
	require.True(t, ok)
	return w
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestNewModelLaysOutTriggers(t *testing.T) {
	m := newModel(t)
	require.Equal(t, surface.NewRect(0, 0, 80, 24), m.Engine().Surface().Viewport())

	settings := widget(t, m, "settings")
	rect, ok := settings.TriggerNode().Rect()
	require.True(t, ok)
	require.Equal(t, surface.NewRect(pageIndent, 1, components.HeaderWidth(settings), 1), rect)

	help, _ := widget(t, m, "help").TriggerNode().Rect()
	require.Equal(t, 7, help.Y)
	require.Contains(t, ansi.Strip(m.View()), "Test gallery")
}

func TestNewModelRejectsBadInput(t *testing.T) {
	_, err := NewModel(context.Background(), nil, Options{})
	require.Error(t, err)

	f, err := config.Parse("gallery.yaml", []byte(galleryYAML), config.FormatYAML)
	require.NoError(t, err)
	_, err = NewModel(context.Background(), f, Options{Level: "loud"})
	require.Error(t, err)
}

func TestClickOpensPopoverAndEscapeCloses(t *testing.T) {
	m := newModel(t)
	settings := widget(t, m, "settings")

	m, _ = run(t, m, click(3, 1))
	require.Equal(t, disclosure.Open, settings.Disclosure().State())
	view := ansi.Strip(m.View())
	require.Contains(t, view, "Popover body")
	require.Contains(t, view, "disclosure state")

	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, disclosure.Closed, settings.Disclosure().State())
	require.NotContains(t, ansi.Strip(m.View()), "Popover body")
}

func TestOutsideClickDismisses(t *testing.T) {
	m := newModel(t)
	settings := widget(t, m, "settings")

	m, _ = run(t, m, click(3, 1))
	require.Equal(t, disclosure.Open, settings.Disclosure().State())

	m, _ = run(t, m, click(70, 15))
	require.Equal(t, disclosure.Closed, settings.Disclosure().State())
}

func TestDialogLocksScroll(t *testing.T) {
	m := newModel(t)
	m, _ = run(t, m, tea.WindowSizeMsg{Width: 60, Height: 12})
	dialog := widget(t, m, "confirm")

	// tab twice reaches the dialog trigger
	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Same(t, dialog.TriggerNode(), m.Engine().Focused())

	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, disclosure.Open, dialog.Disclosure().State())
	require.True(t, m.Engine().ScrollLocked())
	require.Contains(t, ansi.Strip(m.View()), "scroll locked")
	require.Empty(t, m.focusable(), "triggers behind the dialog cannot take focus")

	m, _ = run(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	require.Zero(t, m.page.YOffset)

	// enter confirms the dialog
	m, _ = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, disclosure.Closed, dialog.Disclosure().State())
	require.False(t, m.Engine().ScrollLocked())

	m, _ = run(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	require.Equal(t, 1, m.page.YOffset)
	settings, _ := widget(t, m, "settings").TriggerNode().Rect()
	require.True(t, settings.Empty(), "scrolled-off triggers cannot be hit")
}

func TestAccordionGrowsPage(t *testing.T) {
	m := newModel(t)
	before, _ := widget(t, m, "help").TriggerNode().Rect()

	m, _ = run(t, m, click(3, 5))
	require.Equal(t, disclosure.Open, widget(t, m, "faq").Disclosure().State())
	after, _ := widget(t, m, "help").TriggerNode().Rect()
	require.Equal(t, before.Y+1, after.Y)
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	m, seen := run(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	var quit bool
	for _, msg := range seen {
		if _, ok := msg.(tea.QuitMsg); ok {
			quit = true
		}
	}
	require.True(t, quit)
	require.Empty(t, m.View())
}
