package surface

import (
	"github.com/vovakirdan/clickfield/internal/core"
)

// Node is a visual node. Its style is positioned relative to its parent.
type Node struct {
	id       string
	tree     *Tree
	parent   *Node
	children []*Node
	classes  []string
	style    core.Style
	z        int
	seq      int
	handlers []core.Handler
	attached bool
}

// ID returns a unique identifier for the node.
func (n *Node) ID() string {
	return n.id
}

// AddClass tags the node with class.
func (n *Node) AddClass(class string) {
	if class == "" || n.HasClass(class) {
		return
	}
	n.classes = append(n.classes, class)
}

// HasClass reports whether the node is tagged with class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns the node's class tags in the order they were added.
func (n *Node) Classes() []string {
	out := make([]string, len(n.classes))
	copy(out, n.classes)
	return out
}

// SetStyle replaces the node's visual attributes.
func (n *Node) SetStyle(style core.Style) {
	n.style = style
}

// Style returns the node's visual attributes.
func (n *Node) Style() core.Style {
	return n.style
}

// SetZIndex sets the stacking value among siblings.
func (n *Node) SetZIndex(z int) {
	n.z = z
}

// ZIndex returns the stacking value.
func (n *Node) ZIndex() int {
	return n.z
}

// OnClick subscribes h to clicks on the node and its descendants.
func (n *Node) OnClick(h core.Handler) {
	n.handlers = append(n.handlers, h)
}

// Remove detaches the node and its subtree. It is safe to call twice.
func (n *Node) Remove() {
	if !n.attached {
		return
	}
	n.attached = false

	if n.parent == nil {
		n.tree.removeRoot(n)
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Attached reports whether the node is reachable from a root of the tree.
func (n *Node) Attached() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !cur.attached {
			return false
		}
	}
	return true
}

// Parent returns the parent node, or nil for roots and detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the attached children in paint order.
func (n *Node) Children() []*Node {
	return ordered(n.children)
}

// InnerWidth returns the styled width in pixels.
func (n *Node) InnerWidth() int {
	return n.style.Width
}

// InnerHeight returns the styled height in pixels.
func (n *Node) InnerHeight() int {
	return n.style.Height
}

// Offset returns the node's top-left corner in page coordinates.
func (n *Node) Offset() core.Point {
	p := core.Pt(n.style.Left, n.style.Top)
	if n.parent != nil {
		p = p.Add(n.parent.Offset())
	}
	return p
}

// PageBox returns the area covered by the node in page coordinates.
func (n *Node) PageBox() core.Rect {
	off := n.Offset()
	return core.NewRect(off.X, off.Y, n.style.Width, n.style.Height)
}

// Contains reports whether the page point lies on the node, honoring its
// border radius.
func (n *Node) Contains(p core.Point) bool {
	return n.PageBox().ContainsRounded(p.X, p.Y, n.style.BorderRadius)
}

// CreateNode makes a detached node in the same tree.
func (n *Node) CreateNode() core.Node {
	return n.tree.newNode()
}

// Append attaches child, which must come from CreateNode on this tree.
func (n *Node) Append(child core.Node) error {
	c, ok := child.(*Node)
	if !ok || c == nil || c.tree != n.tree {
		return ErrForeignNode
	}
	if c.attached {
		return ErrNodeAttached
	}

	c.parent = n
	c.attached = true
	n.children = append(n.children, c)
	return nil
}

// hit returns the topmost node of the subtree under p. Children are tested
// even when they overflow their parent.
func (n *Node) hit(p core.Point) *Node {
	children := ordered(n.children)
	for i := len(children) - 1; i >= 0; i-- {
		if h := children[i].hit(p); h != nil {
			return h
		}
	}
	if n.Contains(p) {
		return n
	}
	return nil
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range ordered(n.children) {
		c.walk(fn)
	}
}
