package surface

// Node is one rectangular element in the surface tree.
type Node struct {
	id       string
	surface  *Surface
	parent   *Node
	children []*Node
	rect     Rect
	mounted  bool
	layer    int
}

// ID returns the node identifier given at creation.
func (n *Node) ID() string {
	if n == nil {
		return ""
	}
	return n.id
}

// Parent returns the parent node, or nil for roots and layers.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in paint order.
func (n *Node) Children() []*Node {
	return n.children
}

// Mounted reports whether the node is attached to a mounted tree.
func (n *Node) Mounted() bool {
	return n != nil && n.mounted
}

// Rect returns the node's rectangle and whether it is meaningful. A detached
// node reports false; its last rectangle is still returned.
func (n *Node) Rect() (Rect, bool) {
	if n == nil {
		return Rect{}, false
	}
	return n.rect, n.mounted
}

// SetRect moves or resizes the node.
func (n *Node) SetRect(r Rect) *Node {
	n.rect = r
	return n
}

// AppendChild attaches child as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child *Node) *Node {
	if child == nil || child == n {
		return n
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	child.setMounted(n.mounted)
	return n
}

// Remove detaches n from its parent. Layers are detached with
// Surface.UnmountLayer instead.
func (n *Node) Remove() {
	if n == nil || n.parent == nil {
		return
	}
	n.parent.removeChild(n)
	n.parent = nil
	n.setMounted(false)
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	if n == nil || other == nil {
		return false
	}
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *Node) setMounted(mounted bool) {
	n.mounted = mounted
	for _, child := range n.children {
		child.setMounted(mounted)
	}
}

func (n *Node) hit(x, y int) *Node {
	if !n.mounted {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].hit(x, y); hit != nil {
			return hit
		}
	}
	if n.rect.Contains(x, y) {
		return n
	}
	return nil
}

// Layer returns the z-order index of the layer n was mounted as, or zero for
// nodes that are not layers.
func (n *Node) Layer() int {
	return n.layer
}
