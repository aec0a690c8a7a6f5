// Package surface models the screen as a tree of rectangular nodes.
//
// Nodes stand in for the elements a widget renders: a trigger button, a
// floating panel, a dialog body. The tree answers the two questions the
// overlay engine asks of a host UI: which node is under a pointer (HitTest)
// and whether one node lies inside another (Node.Contains).
//
// Overlays are mounted on their own layers. A later layer is painted above
// an earlier one, so hit testing walks layers from the top down.
package surface

import "sort"

// Surface owns the viewport and the root of the node tree.
type Surface struct {
	viewport  Rect
	root      *Node
	layers    []*Node
	nextLayer int
	listeners map[int]func(Rect)
	nextID    int
}

// New creates a surface whose viewport spans width x height cells.
func New(width, height int) *Surface {
	s := &Surface{
		viewport:  NewRect(0, 0, width, height),
		listeners: make(map[int]func(Rect)),
	}
	s.root = &Node{id: "root", surface: s, mounted: true}
	s.root.rect = s.viewport
	return s
}

// Root returns the base layer node.
func (s *Surface) Root() *Node {
	return s.root
}

// Viewport returns the visible screen rectangle.
func (s *Surface) Viewport() Rect {
	return s.viewport
}

// SetViewport resizes the screen and notifies resize listeners.
func (s *Surface) SetViewport(width, height int) {
	s.viewport = NewRect(0, 0, width, height)
	s.root.rect = s.viewport
	for _, fn := range s.snapshotListeners() {
		fn(s.viewport)
	}
}

// OnResize registers fn to run after every SetViewport. The returned function
// removes the listener.
func (s *Surface) OnResize(fn func(Rect)) func() {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

func (s *Surface) snapshotListeners() []func(Rect) {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Rect), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	return fns
}

// NewNode creates a detached node. Attach it with AppendChild or MountLayer.
func (s *Surface) NewNode(id string) *Node {
	return &Node{id: id, surface: s}
}

// MountLayer mounts n as a new top-most layer. Its descendants become
// hit-testable above everything mounted earlier.
func (s *Surface) MountLayer(n *Node) {
	if n == nil {
		return
	}
	if n.parent != nil {
		n.parent.removeChild(n)
		n.parent = nil
	}
	s.removeLayer(n)
	s.nextLayer++
	n.layer = s.nextLayer
	s.layers = append(s.layers, n)
	n.setMounted(true)
}

// UnmountLayer removes a layer mounted with MountLayer. Its subtree becomes
// detached.
func (s *Surface) UnmountLayer(n *Node) {
	if n == nil {
		return
	}
	if s.removeLayer(n) {
		n.setMounted(false)
	}
}

func (s *Surface) removeLayer(n *Node) bool {
	for i, layer := range s.layers {
		if layer == n {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return true
		}
	}
	return false
}

// HitTest returns the top-most mounted node containing (x, y). Layers are
// searched newest first; within a layer the deepest, last-appended child
// wins. The root is returned when nothing else matches.
func (s *Surface) HitTest(x, y int) *Node {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if hit := s.layers[i].hit(x, y); hit != nil {
			return hit
		}
	}
	if hit := s.root.hit(x, y); hit != nil {
		return hit
	}
	return s.root
}
