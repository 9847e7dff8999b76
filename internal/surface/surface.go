// Package surface is a retained tree of visual nodes with DOM-like
// semantics: nodes carry classes and an absolute style, are appended under
// parents, can be removed, and receive clicks by hit testing followed by
// bubbling towards the root.
package surface

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/vovakirdan/clickfield/internal/core"
)

var (
	// ErrForeignNode is returned when appending a node from another tree
	// or another implementation.
	ErrForeignNode = errors.New("surface: node does not belong to this tree")

	// ErrNodeAttached is returned when appending a node that has a parent.
	ErrNodeAttached = errors.New("surface: node is already attached")
)

// Tree owns every node of one surface.
type Tree struct {
	roots []*Node
	seq   int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// NewElement creates a root element covering box in page coordinates.
func (t *Tree) NewElement(class string, box core.Rect, z int) *Node {
	n := t.newNode()
	n.AddClass(class)
	n.SetStyle(core.Style{
		Position: core.PositionAbsolute,
		Left:     box.X,
		Top:      box.Y,
		Width:    box.W,
		Height:   box.H,
	})
	n.z = z
	n.attached = true
	t.roots = append(t.roots, n)
	return n
}

func (t *Tree) newNode() *Node {
	t.seq++
	return &Node{id: uuid.NewString(), tree: t, seq: t.seq}
}

// Query returns every attached node tagged with class, in paint order.
func (t *Tree) Query(class string) []core.Element {
	var found []core.Element
	t.Walk(func(n *Node) {
		if n.HasClass(class) {
			found = append(found, n)
		}
	})
	return found
}

// Walk visits attached nodes in paint order: parents before children and
// siblings by ascending z-index, then insertion order.
func (t *Tree) Walk(fn func(n *Node)) {
	for _, n := range ordered(t.roots) {
		n.walk(fn)
	}
}

// Len returns the number of attached nodes.
func (t *Tree) Len() int {
	count := 0
	t.Walk(func(*Node) { count++ })
	return count
}

// Dispatch delivers a click at page coordinates to the topmost node under
// it and then to its ancestors, until a handler stops propagation or
// returns an error. Clicks on empty space are ignored.
func (t *Tree) Dispatch(pageX, pageY float64) error {
	p := core.NewPoint(pageX, pageY)

	var target *Node
	roots := ordered(t.roots)
	for i := len(roots) - 1; i >= 0 && target == nil; i-- {
		target = roots[i].hit(p)
	}
	if target == nil {
		return nil
	}

	// The path is fixed before handlers run, so removals do not cut it short
	var path []*Node
	for n := target; n != nil; n = n.parent {
		path = append(path, n)
	}

	e := core.NewPointerEvent(pageX, pageY)
	for _, n := range path {
		for _, h := range n.handlers {
			if err := h(e); err != nil {
				return err
			}
		}
		if e.Stopped() {
			break
		}
	}
	return nil
}

func (t *Tree) removeRoot(n *Node) {
	for i, r := range t.roots {
		if r == n {
			t.roots = append(t.roots[:i], t.roots[i+1:]...)
			return
		}
	}
}

// ordered returns a copy of nodes sorted into paint order.
func ordered(nodes []*Node) []*Node {
	out := make([]*Node, len(nodes))
	copy(out, nodes)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].z != out[j].z {
			return out[i].z < out[j].z
		}
		return out[i].seq < out[j].seq
	})
	return out
}
