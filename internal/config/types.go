package config

import (
	"time"
)

// Kind names a widget adapter.
type Kind string

const (
	KindTooltip   Kind = "tooltip"
	KindPopover   Kind = "popover"
	KindDropdown  Kind = "dropdown"
	KindDialog    Kind = "dialog"
	KindDrawer    Kind = "drawer"
	KindToast     Kind = "toast"
	KindAccordion Kind = "accordion"
)

// Floating reports whether widgets of this kind render in an overlay layer
// and can therefore enclose nested widgets.
func (k Kind) Floating() bool {
	switch k {
	case KindPopover, KindDropdown, KindDialog, KindDrawer:
		return true
	default:
		return false
	}
}

// File is a widget gallery document.
type File struct {
	Title    string   `yaml:"title,omitempty" toml:"title" validate:"max=60"`
	Settings Settings `yaml:"settings,omitempty" toml:"settings"`
	Widgets  []Widget `yaml:"widgets" toml:"widgets" validate:"required,min=1,dive"`
}

// Settings holds gallery-wide options.
type Settings struct {
	// EdgeMargin overrides the placement edge margin in cells.
	EdgeMargin *int `yaml:"edge_margin,omitempty" toml:"edge_margin" validate:"omitempty,min=0,max=10"`
	// Offset is the gap between a trigger and its floating panel.
	Offset   int    `yaml:"offset,omitempty" toml:"offset" validate:"min=0,max=10"`
	LogLevel string `yaml:"log_level,omitempty" toml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Widget configures one adapter instance.
type Widget struct {
	ID       string `yaml:"id" toml:"id" validate:"required,widget_id"`
	Kind     Kind   `yaml:"kind" toml:"kind" validate:"required,oneof=tooltip popover dropdown dialog drawer toast accordion"`
	Label    string `yaml:"label,omitempty" toml:"label" validate:"max=40"`
	Content  string `yaml:"content,omitempty" toml:"content" validate:"max=2000"`
	Trigger  string `yaml:"trigger,omitempty" toml:"trigger" validate:"omitempty,oneof=click hover focus manual"`
	Position string `yaml:"position,omitempty" toml:"position" validate:"omitempty,oneof=top bottom left right"`

	AnimationDurationMs int `yaml:"animation_duration_ms,omitempty" toml:"animation_duration_ms" validate:"min=0,max=5000"`
	OpenDelayMs         int `yaml:"open_delay_ms,omitempty" toml:"open_delay_ms" validate:"min=0,max=10000"`
	CloseDelayMs        int `yaml:"close_delay_ms,omitempty" toml:"close_delay_ms" validate:"min=0,max=10000"`
	AutoCloseMs         int `yaml:"auto_close_ms,omitempty" toml:"auto_close_ms" validate:"min=0,max=60000"`

	DismissOnOutsideClick *bool `yaml:"dismiss_on_outside_click,omitempty" toml:"dismiss_on_outside_click"`
	DismissOnEscape       *bool `yaml:"dismiss_on_escape,omitempty" toml:"dismiss_on_escape"`

	Items  []string `yaml:"items,omitempty" toml:"items" validate:"omitempty,max=20,dive,min=1,max=40"`
	Parent string   `yaml:"parent,omitempty" toml:"parent" validate:"omitempty,widget_id"`
}

type kindDefaults struct {
	trigger  string
	position string
	outside  bool
	escape   bool
}

var defaultsByKind = map[Kind]kindDefaults{
	KindTooltip:   {trigger: "hover", position: "top", escape: true},
	KindPopover:   {trigger: "click", position: "bottom", outside: true, escape: true},
	KindDropdown:  {trigger: "click", position: "bottom", outside: true, escape: true},
	KindDialog:    {trigger: "manual", position: "bottom", escape: true},
	KindDrawer:    {trigger: "manual", position: "right", outside: true, escape: true},
	KindToast:     {trigger: "manual", position: "bottom"},
	KindAccordion: {trigger: "click", position: "bottom"},
}

// DefaultToastDuration is used when a toast sets no auto_close_ms.
const DefaultToastDuration = 3 * time.Second

// ApplyDefaults fills unset fields from the widget kind.
func (f *File) ApplyDefaults() {
	for i := range f.Widgets {
		f.Widgets[i].applyDefaults()
	}
}

func (w *Widget) applyDefaults() {
	d, ok := defaultsByKind[w.Kind]
	if !ok {
		return
	}
	if w.Trigger == "" {
		w.Trigger = d.trigger
	}
	if w.Position == "" {
		w.Position = d.position
	}
	if w.DismissOnOutsideClick == nil {
		w.DismissOnOutsideClick = boolPtr(d.outside)
	}
	if w.DismissOnEscape == nil {
		w.DismissOnEscape = boolPtr(d.escape)
	}
	if w.Kind == KindToast && w.AutoCloseMs == 0 {
		w.AutoCloseMs = int(DefaultToastDuration / time.Millisecond)
	}
	if w.Label == "" {
		w.Label = w.ID
	}
}

func (w Widget) OpenDelay() time.Duration  { return millis(w.OpenDelayMs) }
func (w Widget) CloseDelay() time.Duration { return millis(w.CloseDelayMs) }
func (w Widget) AutoClose() time.Duration  { return millis(w.AutoCloseMs) }

func (w Widget) AnimationDuration() time.Duration {
	return millis(w.AnimationDurationMs)
}

// OutsideClick reports the resolved dismiss_on_outside_click value.
func (w Widget) OutsideClick() bool {
	return w.DismissOnOutsideClick != nil && *w.DismissOnOutsideClick
}

// Escape reports the resolved dismiss_on_escape value.
func (w Widget) Escape() bool {
	return w.DismissOnEscape != nil && *w.DismissOnEscape
}

// Modal reports whether the widget locks background scrolling while open.
func (w Widget) Modal() bool {
	return w.Kind == KindDialog || w.Kind == KindDrawer
}

// Widget returns the widget with id.
func (f *File) Widget(id string) (Widget, bool) {
	for _, w := range f.Widgets {
		if w.ID == id {
			return w, true
		}
	}
	return Widget{}, false
}

func millis(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func boolPtr(v bool) *bool {
	return &v
}
