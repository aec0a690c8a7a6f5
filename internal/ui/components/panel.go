package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/overlay/internal/ui"
)

// Panel is the bordered box floating widgets render into: an optional title,
// wrapped body text, then one line per row.
type Panel struct {
	BaseComponent
	title    string
	body     string
	rows     []ui.Renderable
	width    int
	height   int
	maxWidth int
}

// NewPanel creates an accent-framed panel.
func NewPanel() *Panel {
	p := &Panel{BaseComponent: NewBaseComponent()}
	p.SetAppliers(PanelFrame(PaletteAccent))
	return p
}

func (p *Panel) WithTitle(title string) *Panel {
	p.title = title
	return p
}

func (p *Panel) WithBody(body string) *Panel {
	p.body = body
	return p
}

// WithRows appends single-line rows below the body.
func (p *Panel) WithRows(rows ...ui.Renderable) *Panel {
	p.rows = append(p.rows, rows...)
	return p
}

// WithWidth fixes the content width. Zero sizes the panel to its content.
func (p *Panel) WithWidth(width int) *Panel {
	p.width = width
	return p
}

// WithHeight sets a minimum content height.
func (p *Panel) WithHeight(height int) *Panel {
	p.height = height
	return p
}

// WithMaxWidth wraps the title and body beyond width cells.
func (p *Panel) WithMaxWidth(width int) *Panel {
	p.maxWidth = width
	return p
}

// WithAppliers adds style functions after the frame.
func (p *Panel) WithAppliers(funcs ...StyleFunc) *Panel {
	p.AddAppliers(funcs...)
	return p
}

func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the framed panel.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	parts := p.head(ctx)
	for _, row := range p.rows {
		parts = append(parts, row.View())
	}
	if len(parts) == 0 {
		parts = append(parts, "")
	}

	style := p.ComputeStyle(ctx.Theme)
	if p.width > 0 {
		style = style.Width(p.width + style.GetHorizontalPadding())
	}
	if p.height > 0 {
		style = style.Height(p.height)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Lines renders the panel split into screen rows.
func (p *Panel) Lines(ctx RenderContext) []string {
	return strings.Split(p.ViewWithContext(ctx), "\n")
}

// RowOffset returns where row i starts relative to the panel's top-left
// corner.
func (p *Panel) RowOffset(ctx RenderContext, i int) (dx, dy int) {
	style := p.ComputeStyle(ctx.Theme)
	dx = style.GetBorderLeftSize() + style.GetPaddingLeft()
	dy = style.GetBorderTopSize() + style.GetPaddingTop() + i
	if head := p.head(ctx); len(head) > 0 {
		dy += lipgloss.Height(lipgloss.JoinVertical(lipgloss.Left, head...))
	}
	return dx, dy
}

func (p *Panel) head(ctx RenderContext) []string {
	wrap := ctx.WithMaxWidth(p.wrapWidth())
	var parts []string
	if p.title != "" {
		parts = append(parts, TitleText(p.title).ViewWithContext(wrap))
	}
	if p.body != "" {
		parts = append(parts, NewText(p.body).ViewWithContext(wrap))
	}
	return parts
}

func (p *Panel) wrapWidth() int {
	if p.width > 0 {
		return p.width
	}
	return p.maxWidth
}
