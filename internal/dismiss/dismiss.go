// Package dismiss closes open overlays on outside pointer-down and Escape.
//
// One Controller serves every open instance. The host feeds it the two global
// events; registrations are added when an instance becomes Open and removed
// when it leaves Open, so the controller only ever looks at what is on
// screen.
package dismiss

import (
	"github.com/alexisbeaulieu97/overlay/internal/surface"
)

// Target is the instance a registration closes. disclosure.Instance
// satisfies it.
type Target interface {
	ID() string
	RequestClose()
}

// Options selects which dismissals an instance opted into.
type Options struct {
	OutsideClick bool
	Escape       bool
}

// Any reports whether at least one dismissal is enabled.
func (o Options) Any() bool {
	return o.OutsideClick || o.Escape
}

type registration struct {
	target   Target
	boundary *surface.Node
	trigger  *surface.Node
	opts     Options
	// nested holds boundaries of instances opened from inside this one.
	nested []*surface.Node
	// parents are the registrations this boundary was added to.
	parents []*registration
}

func (r *registration) contains(n *surface.Node) bool {
	if n == nil {
		return false
	}
	if r.boundary.Contains(n) || r.trigger.Contains(n) {
		return true
	}
	for _, b := range r.nested {
		if b.Contains(n) {
			return true
		}
	}
	return false
}

func (r *registration) dropNested(b *surface.Node) {
	for i, n := range r.nested {
		if n == b {
			r.nested = append(r.nested[:i], r.nested[i+1:]...)
			return
		}
	}
}

// Controller is the shared registry of dismissable open instances.
type Controller struct {
	regs []*registration
}

// New creates an empty controller.
func New() *Controller {
	return &Controller{}
}

// Register adds target with its boundary and trigger nodes. It returns false,
// registering nothing, when boundary is nil or no dismissal is enabled; the
// instance is then simply not dismissable for this open.
//
// When trigger lies inside an already registered instance, boundary is added
// to that instance's element set so clicks inside the nested overlay do not
// dismiss its parent.
func (c *Controller) Register(target Target, boundary, trigger *surface.Node, opts Options) bool {
	if target == nil || boundary == nil || !opts.Any() {
		return false
	}
	c.Unregister(target.ID())

	reg := &registration{target: target, boundary: boundary, trigger: trigger, opts: opts}
	if trigger != nil {
		for _, existing := range c.regs {
			if existing.contains(trigger) {
				existing.nested = append(existing.nested, boundary)
				reg.parents = append(reg.parents, existing)
			}
		}
	}
	c.regs = append(c.regs, reg)
	return true
}

// Unregister removes the registration for id. Unknown ids are ignored.
func (c *Controller) Unregister(id string) {
	for i, reg := range c.regs {
		if reg.target.ID() != id {
			continue
		}
		for _, parent := range reg.parents {
			parent.dropNested(reg.boundary)
		}
		c.regs = append(c.regs[:i], c.regs[i+1:]...)
		return
	}
}

// Registered reports whether id currently has a registration.
func (c *Controller) Registered(id string) bool {
	for _, reg := range c.regs {
		if reg.target.ID() == id {
			return true
		}
	}
	return false
}

// Len counts registrations.
func (c *Controller) Len() int {
	return len(c.regs)
}

// Top returns the id of the most recently registered instance.
func (c *Controller) Top() (string, bool) {
	if len(c.regs) == 0 {
		return "", false
	}
	return c.regs[len(c.regs)-1].target.ID(), true
}

// PointerDown closes every outside-click instance whose element set does not
// contain target. It returns the ids it asked to close.
func (c *Controller) PointerDown(target *surface.Node) []string {
	snapshot := append([]*registration(nil), c.regs...)
	var closed []string
	for _, reg := range snapshot {
		if !reg.opts.OutsideClick || reg.contains(target) {
			continue
		}
		closed = append(closed, reg.target.ID())
		reg.target.RequestClose()
	}
	return closed
}

// Escape closes the top-most registered instance if it accepts Escape. Only
// that one instance is considered, so stacked dialogs close one at a time.
// It returns the id closed and whether the key was consumed.
func (c *Controller) Escape() (string, bool) {
	if len(c.regs) == 0 {
		return "", false
	}
	top := c.regs[len(c.regs)-1]
	if !top.opts.Escape {
		return "", false
	}
	id := top.target.ID()
	top.target.RequestClose()
	return id, true
}
