package components

import "github.com/charmbracelet/lipgloss"

// Text is a styled run of text.
type Text struct {
	BaseComponent
	content string
}

// NewText creates unstyled text.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text, wrapping to ctx.MaxWidth when set.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if ctx.MaxWidth > 0 && lipgloss.Width(t.content) > ctx.MaxWidth {
		style = style.Width(ctx.MaxWidth)
	}
	return style.Render(t.content)
}

func (t *Text) Content() string {
	return t.content
}

// SetContent replaces the text.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithAppliers sets theme-aware style functions.
func (t *Text) WithAppliers(funcs ...StyleFunc) *Text {
	t.SetAppliers(funcs...)
	return t
}

// TitleText renders bold accent text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Bold(), Foreground(PaletteAccent))
}

// MutedText renders secondary text.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(PaletteMuted))
}
