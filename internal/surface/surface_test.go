package surface

import (
	"errors"
	"testing"

	"github.com/vovakirdan/clickfield/internal/core"
)

func newChild(t *testing.T, parent *Node, style core.Style, z int) *Node {
	t.Helper()
	n := parent.CreateNode()
	n.SetStyle(style)
	n.SetZIndex(z)
	if err := parent.Append(n); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	return n.(*Node)
}

func TestQueryByClass(t *testing.T) {
	tree := New()
	tree.NewElement("js-field", core.NewRect(10, 10, 500, 500), 0)
	tree.NewElement("other", core.NewRect(0, 0, 5, 5), 0)

	if got := len(tree.Query("js-field")); got != 1 {
		t.Errorf("Query(js-field) returned %d elements, expected 1", got)
	}
	if got := len(tree.Query("missing")); got != 0 {
		t.Errorf("Query(missing) returned %d elements, expected 0", got)
	}

	tree.NewElement("js-field", core.NewRect(600, 0, 10, 10), 0)
	if got := len(tree.Query("js-field")); got != 2 {
		t.Errorf("Query(js-field) returned %d elements, expected 2", got)
	}
}

func TestElementGeometry(t *testing.T) {
	tree := New()
	el := tree.NewElement("field", core.NewRect(10, 20, 300, 200), 3)

	if el.InnerWidth() != 300 || el.InnerHeight() != 200 {
		t.Errorf("size = %dx%d, expected 300x200", el.InnerWidth(), el.InnerHeight())
	}
	if el.Offset() != core.Pt(10, 20) {
		t.Errorf("Offset() = %v, expected (10, 20)", el.Offset())
	}
	if el.ZIndex() != 3 {
		t.Errorf("ZIndex() = %d, expected 3", el.ZIndex())
	}

	child := newChild(t, el, core.Style{Left: 5, Top: 7, Width: 10, Height: 10}, 1)
	if child.Offset() != core.Pt(15, 27) {
		t.Errorf("child Offset() = %v, expected (15, 27)", child.Offset())
	}
	if child.PageBox() != core.NewRect(15, 27, 10, 10) {
		t.Errorf("child PageBox() = %+v", child.PageBox())
	}
}

func TestAppendRejectsForeignAndAttached(t *testing.T) {
	t1, t2 := New(), New()
	el1 := t1.NewElement("a", core.NewRect(0, 0, 10, 10), 0)
	el2 := t2.NewElement("b", core.NewRect(0, 0, 10, 10), 0)

	if err := el1.Append(el2.CreateNode()); !errors.Is(err, ErrForeignNode) {
		t.Errorf("Append(foreign) error = %v, expected ErrForeignNode", err)
	}

	n := el1.CreateNode()
	if err := el1.Append(n); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if err := el1.Append(n); !errors.Is(err, ErrNodeAttached) {
		t.Errorf("Append(attached) error = %v, expected ErrNodeAttached", err)
	}
}

func TestRemove(t *testing.T) {
	tree := New()
	el := tree.NewElement("field", core.NewRect(0, 0, 100, 100), 0)
	n := newChild(t, el, core.Style{Width: 10, Height: 10}, 1)

	if tree.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", tree.Len())
	}

	n.Remove()
	n.Remove()

	if n.Attached() {
		t.Error("Removed node should not be attached")
	}
	if len(el.Children()) != 0 {
		t.Errorf("Parent still has %d children", len(el.Children()))
	}
	if tree.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", tree.Len())
	}

	// Detaching a root detaches its whole subtree
	m := newChild(t, el, core.Style{Width: 10, Height: 10}, 1)
	el.Remove()
	if m.Attached() || tree.Len() != 0 {
		t.Error("Removing a root should detach its children")
	}
}

func TestDispatchHitsTopmostAndBubbles(t *testing.T) {
	tree := New()
	el := tree.NewElement("field", core.NewRect(0, 0, 100, 100), 0)
	low := newChild(t, el, core.Style{Left: 10, Top: 10, Width: 50, Height: 50}, 1)
	high := newChild(t, el, core.Style{Left: 30, Top: 30, Width: 50, Height: 50}, 2)

	var order []string
	el.OnClick(func(*core.PointerEvent) error { order = append(order, "field"); return nil })
	low.OnClick(func(*core.PointerEvent) error { order = append(order, "low"); return nil })
	high.OnClick(func(*core.PointerEvent) error { order = append(order, "high"); return nil })

	if err := tree.Dispatch(40, 40); err != nil {
		t.Fatalf("Dispatch() failed: %v", err)
	}
	if len(order) != 2 || order[0] != "high" || order[1] != "field" {
		t.Errorf("overlap dispatch order = %v, expected [high field]", order)
	}

	order = nil
	if err := tree.Dispatch(15, 15); err != nil {
		t.Fatalf("Dispatch() failed: %v", err)
	}
	if len(order) != 2 || order[0] != "low" {
		t.Errorf("dispatch order = %v, expected [low field]", order)
	}

	order = nil
	if err := tree.Dispatch(500, 500); err != nil {
		t.Fatalf("Dispatch() failed: %v", err)
	}
	if len(order) != 0 {
		t.Errorf("click on empty space reached %v", order)
	}
}

func TestDispatchStopPropagation(t *testing.T) {
	tree := New()
	el := tree.NewElement("field", core.NewRect(0, 0, 100, 100), 0)
	n := newChild(t, el, core.Style{Left: 10, Top: 10, Width: 20, Height: 20}, 1)

	fieldClicks := 0
	el.OnClick(func(*core.PointerEvent) error { fieldClicks++; return nil })
	n.OnClick(func(e *core.PointerEvent) error {
		e.StopPropagation()
		n.Remove()
		return nil
	})

	if err := tree.Dispatch(15, 15); err != nil {
		t.Fatalf("Dispatch() failed: %v", err)
	}
	if fieldClicks != 0 {
		t.Error("Stopped event should not reach the field")
	}
	if n.Attached() {
		t.Error("Handler should have removed the node")
	}

	// The same spot now belongs to the field
	if err := tree.Dispatch(15, 15); err != nil {
		t.Fatalf("Dispatch() failed: %v", err)
	}
	if fieldClicks != 1 {
		t.Errorf("fieldClicks = %d, expected 1", fieldClicks)
	}
}

func TestDispatchHonorsBorderRadius(t *testing.T) {
	tree := New()
	el := tree.NewElement("field", core.NewRect(0, 0, 200, 200), 0)
	round := newChild(t, el, core.Style{Left: 0, Top: 0, Width: 100, Height: 100, BorderRadius: 50}, 1)

	hits := 0
	round.OnClick(func(e *core.PointerEvent) error { hits++; e.StopPropagation(); return nil })

	_ = tree.Dispatch(2, 2) // corner, outside the circle
	if hits != 0 {
		t.Error("Click in the bounding box corner should miss the circle")
	}
	_ = tree.Dispatch(50, 50)
	if hits != 1 {
		t.Error("Click in the middle should hit the circle")
	}
}

func TestDispatchHitsOverflowingChild(t *testing.T) {
	tree := New()
	el := tree.NewElement("field", core.NewRect(10, 10, 50, 50), 0)
	n := newChild(t, el, core.Style{Left: 40, Top: 40, Width: 40, Height: 40}, 1)

	hit := false
	n.OnClick(func(*core.PointerEvent) error { hit = true; return nil })

	_ = tree.Dispatch(85, 85)
	if !hit {
		t.Error("Child overflowing its parent should still receive clicks")
	}
}

func TestDispatchReturnsHandlerError(t *testing.T) {
	tree := New()
	el := tree.NewElement("field", core.NewRect(0, 0, 10, 10), 0)
	boom := errors.New("boom")
	el.OnClick(func(*core.PointerEvent) error { return boom })

	if err := tree.Dispatch(5, 5); !errors.Is(err, boom) {
		t.Errorf("Dispatch() error = %v, expected boom", err)
	}
}

func TestWalkPaintOrder(t *testing.T) {
	tree := New()
	el := tree.NewElement("field", core.NewRect(0, 0, 100, 100), 0)
	a := newChild(t, el, core.Style{Width: 1, Height: 1}, 5)
	b := newChild(t, el, core.Style{Width: 1, Height: 1}, 2)
	c := newChild(t, el, core.Style{Width: 1, Height: 1}, 5)

	var got []*Node
	tree.Walk(func(n *Node) { got = append(got, n) })

	expected := []*Node{el, b, a, c}
	if len(got) != len(expected) {
		t.Fatalf("Walk visited %d nodes, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Walk position %d = %s, expected %s", i, got[i].ID(), expected[i].ID())
		}
	}
}

func TestClasses(t *testing.T) {
	tree := New()
	el := tree.NewElement("field", core.NewRect(0, 0, 1, 1), 0)
	el.AddClass("field")
	el.AddClass("")
	el.AddClass("active")

	classes := el.Classes()
	if len(classes) != 2 || classes[0] != "field" || classes[1] != "active" {
		t.Errorf("Classes() = %v, expected [field active]", classes)
	}
	if el.ID() == "" {
		t.Error("ID() should not be empty")
	}
}
