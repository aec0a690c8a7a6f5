package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/overlay/internal/schedule"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
)

// Update routes terminal input into the engine, then re-lays the page and
// forwards any work the engine scheduled.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case schedule.FiredMsg:
		m.program.Handle(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	m.layout()
	return m, tea.Batch(cmd, m.program.Commands())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Dismiss):
		if !m.engine.Key(msg.String()) {
			m.logger.Debug(m.ctx, "escape ignored")
		}
		return nil
	}

	// open widgets see keys before the gallery does
	if m.widgets.HandleKey(msg.String()) {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.cycleFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.cycleFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		m.activateFocused()
	case key.Matches(msg, m.keys.ScrollUp):
		m.scroll(-m.page.Height / 2)
	case key.Matches(msg, m.keys.ScrollDown):
		m.scroll(m.page.Height / 2)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll(1)
	case msg.Action == tea.MouseActionMotion:
		m.engine.PointerMove(msg.X, msg.Y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.press(msg.X, msg.Y)
	}
}

func (m *Model) press(x, y int) {
	if !m.widgets.Press(m.engine, x, y) {
		m.logger.Debug(m.ctx, "click unhandled", "x", x, "y", y)
	}
}

// focusable lists triggers that can take keyboard focus: mounted, visible and
// not hidden behind a modal.
func (m *Model) focusable() []*surface.Node {
	var nodes []*surface.Node
	for _, w := range m.widgets.All {
		node := w.TriggerNode()
		rect, mounted := node.Rect()
		if !mounted || rect.Empty() || m.engine.Blocked(node) {
			continue
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func (m *Model) cycleFocus(step int) {
	nodes := m.focusable()
	if len(nodes) == 0 {
		return
	}
	next := 0
	if step < 0 {
		next = len(nodes) - 1
	}
	for i, node := range nodes {
		if node == m.engine.Focused() {
			next = (i + step + len(nodes)) % len(nodes)
			break
		}
	}
	m.engine.Focus(nodes[next])
}

func (m *Model) activateFocused() {
	focused := m.engine.Focused()
	if focused == nil || m.engine.Blocked(focused) {
		return
	}
	for _, w := range m.widgets.All {
		if w.TriggerNode() == focused {
			w.Activate()
			return
		}
	}
}

// scroll moves the page unless a modal holds the scroll lock.
func (m *Model) scroll(lines int) {
	if lines == 0 {
		return
	}
	if m.engine.ScrollLocked() {
		m.logger.Debug(m.ctx, "scroll blocked", "locks", m.engine.ScrollLock().Count())
		return
	}
	m.page.SetYOffset(m.page.YOffset + lines)
}
