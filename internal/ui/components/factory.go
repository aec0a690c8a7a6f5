package components

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/disclosure"
	"github.com/alexisbeaulieu97/overlay/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
)

// Build creates the adapter for one widget definition.
func Build(deps Deps, cfg config.Widget) (Widget, error) {
	deps = deps.normalize()

	trigger, err := disclosure.ParseTrigger(cfg.Trigger)
	if err != nil {
		return nil, fmt.Errorf("widget %q: %w", cfg.ID, err)
	}
	side, err := placement.ParseSide(cfg.Position)
	if err != nil {
		return nil, fmt.Errorf("widget %q: %w", cfg.ID, err)
	}

	switch cfg.Kind {
	case config.KindTooltip:
		return NewTooltip(deps, cfg, trigger, side), nil
	case config.KindPopover:
		return NewPopover(deps, cfg, trigger, side), nil
	case config.KindDropdown:
		return NewDropdown(deps, cfg, trigger, side), nil
	case config.KindDialog:
		return NewDialog(deps, cfg, trigger), nil
	case config.KindDrawer:
		return NewDrawer(deps, cfg, trigger, side), nil
	case config.KindToast:
		return NewToast(deps, cfg, trigger), nil
	case config.KindAccordion:
		return NewAccordion(deps, cfg, trigger), nil
	default:
		return nil, fmt.Errorf("widget %q: unknown kind %q", cfg.ID, cfg.Kind)
	}
}

func (d Deps) normalize() Deps {
	if d.Logger == nil {
		d.Logger = logging.NewNoOpLogger()
	}
	if d.Context == nil {
		d.Context = context.Background()
	}
	if d.Theme.Name == "" {
		d.Theme = DefaultTheme()
	}
	return d
}

// Set is every widget built from one configuration file.
type Set struct {
	// Roots are the widgets laid out in the page, in file order.
	Roots []Widget
	// All includes nested widgets, in file order.
	All  []Widget
	byID map[string]Widget
}

// BuildAll builds every widget in f and nests children in their parents.
// On error the widgets built so far are destroyed.
func BuildAll(deps Deps, f *config.File) (*Set, error) {
	set := &Set{byID: make(map[string]Widget, len(f.Widgets))}
	for _, cfg := range f.Widgets {
		w, err := Build(deps, cfg)
		if err != nil {
			set.Destroy()
			return nil, err
		}
		set.All = append(set.All, w)
		set.byID[cfg.ID] = w

		if cfg.Parent == "" {
			set.Roots = append(set.Roots, w)
			continue
		}
		owner, found := set.byID[cfg.Parent]
		parent, ok := owner.(Container)
		if !found || !ok || !owner.Kind().Floating() {
			set.Destroy()
			return nil, fmt.Errorf("widget %q: parent %q cannot contain widgets", cfg.ID, cfg.Parent)
		}
		parent.Adopt(w)
	}
	return set, nil
}

// Widget returns the widget with id.
func (s *Set) Widget(id string) (Widget, bool) {
	w, ok := s.byID[id]
	return w, ok
}

// Destroy tears every widget down.
func (s *Set) Destroy() {
	for _, w := range s.Roots {
		w.Destroy()
	}
	for _, w := range s.All {
		if !w.Disclosure().Destroyed() {
			w.Destroy()
		}
	}
}
