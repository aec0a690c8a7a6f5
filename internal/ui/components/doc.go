// Package components renders the overlay widgets: theme-aware primitives
// (Text, Panel) built on lipgloss, and the adapters that bind each widget
// kind to an engine.Disclosure.
//
// Primitives take their styling from StyleFunc values resolved against a
// Theme at render time:
//
//	p := components.NewPanel().WithTitle("Settings").WithBody("…")
//	view := p.ViewWithContext(components.DefaultContext())
//
// Adapters are built from configuration with Build or BuildAll. Floating
// adapters mount their panel as a surface layer while the disclosure is
// present and unmount it when the exit transition finishes. Nested widgets
// are rows of their parent's panel, so the dismissal controller treats them
// as part of the parent.
package components
