// Package ui holds the contracts shared by rendered components.
package ui

// Renderable is anything that renders itself to a terminal string.
type Renderable interface {
	View() string
}

// RenderFunc adapts a function to Renderable.
type RenderFunc func() string

// View calls f.
func (f RenderFunc) View() string {
	return f()
}
