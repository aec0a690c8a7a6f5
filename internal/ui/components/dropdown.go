package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/surface"
	"github.com/alexisbeaulieu97/overlay/internal/ui"
)

// Dropdown is a menu of items; choosing one records the selection and closes
// the menu.
type Dropdown struct {
	*floating
	items    []string
	nodes    []*surface.Node
	cursor   int
	selected int
}

func NewDropdown(deps Deps, cfg config.Widget, trigger disclosure.Trigger, side placement.Side) *Dropdown {
	m := &Dropdown{floating: newFloating(deps, cfg, trigger, side), items: cfg.Items, selected: -1}
	s := deps.Engine.Surface()
	for i := range m.items {
		i := i
		node := s.NewNode(fmt.Sprintf("%s-item-%d", cfg.ID, i))
		m.nodes = append(m.nodes, node)
		m.addRow(node, ui.RenderFunc(func() string { return m.itemView(i) }))
	}
	m.build = func() *Panel {
		return NewPanel().WithRows(m.rowViews()...)
	}
	m.d.Subscribe(func(c disclosure.Change) {
		if c.To == disclosure.Opening && m.selected >= 0 {
			m.cursor = m.selected
		}
	})
	return m
}

// View renders the trigger with the current selection.
func (m *Dropdown) View() string {
	label := m.cfg.Label
	if item, ok := m.Selected(); ok {
		label += ": " + item
	}
	return triggerView(m.deps.Theme, label+" ▾", m.d.State().Visible(), m.focused())
}

func (m *Dropdown) itemView(i int) string {
	marker := "  "
	if i == m.cursor {
		marker = "› "
	}
	suffix := ""
	if i == m.selected {
		suffix = " ✓"
	}
	text := NewText(marker + m.items[i] + suffix)
	if i == m.cursor {
		text.WithAppliers(Foreground(PaletteAccent), Bold())
	}
	return text.ViewWithContext(m.renderContext())
}

// Selected returns the chosen item.
func (m *Dropdown) Selected() (string, bool) {
	if m.selected < 0 {
		return "", false
	}
	return m.items[m.selected], true
}

// Cursor returns the highlighted item index.
func (m *Dropdown) Cursor() int {
	return m.cursor
}

// Select chooses item i and closes the menu.
func (m *Dropdown) Select(i int) {
	if i < 0 || i >= len(m.items) {
		return
	}
	m.selected, m.cursor = i, i
	m.logger.Info(m.deps.Context, "dropdown selection", "item", m.items[i])
	m.d.RequestClose()
}

// Click selects the item under target.
func (m *Dropdown) Click(target *surface.Node) bool {
	if m.d.State() != disclosure.Open {
		return false
	}
	for i, node := range m.nodes {
		if node == target {
			m.Select(i)
			return true
		}
	}
	return false
}

// HandleKey moves the cursor and selects while the menu is open.
func (m *Dropdown) HandleKey(key string) bool {
	if m.d.State() != disclosure.Open {
		return false
	}
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.Select(m.cursor)
	default:
		return false
	}
	return true
}
