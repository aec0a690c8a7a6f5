package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleFunc applies a theme-aware transformation to a lipgloss style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy decides how a component's style is derived from a theme.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// CompositeStrategy applies style functions in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply runs every function over base.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy builds a strategy from funcs.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// BaseComponent carries the raw style and strategy shared by components.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// NewBaseComponent returns an unstyled base.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle(), strategy: CompositeStrategy{}}
}

// ComputeStyle resolves the component style against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the strategy with funcs.
func (b *BaseComponent) SetAppliers(funcs ...StyleFunc) {
	b.strategy = NewCompositeStrategy(funcs...)
}

// AddAppliers appends funcs after the current strategy.
func (b *BaseComponent) AddAppliers(funcs ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		merged := make([]StyleFunc, 0, len(existing.funcs)+len(funcs))
		merged = append(merged, existing.funcs...)
		b.strategy = CompositeStrategy{funcs: append(merged, funcs...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(style lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			style = current.Apply(style, theme)
		}
		for _, fn := range funcs {
			style = fn(style, theme)
		}
		return style
	})
}

// RenderContext carries the theme and width budget into a render.
type RenderContext struct {
	Theme Theme
	// MaxWidth caps the content width of wrapping components; zero means
	// unbounded.
	MaxWidth int
}

// DefaultContext renders with the default theme and no width cap.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of ctx using theme.
func (ctx RenderContext) WithTheme(theme Theme) RenderContext {
	ctx.Theme = theme
	return ctx
}

// WithMaxWidth returns a copy of ctx capped at width.
func (ctx RenderContext) WithMaxWidth(width int) RenderContext {
	ctx.MaxWidth = width
	return ctx
}
