package core

// PointerEvent is a click delivered by the surface with page coordinates.
type PointerEvent struct {
	PageX, PageY float64

	stopped bool
}

// NewPointerEvent creates a click event at the given page coordinates.
func NewPointerEvent(pageX, pageY float64) *PointerEvent {
	return &PointerEvent{PageX: pageX, PageY: pageY}
}

// StopPropagation prevents the event from reaching ancestor handlers.
func (e *PointerEvent) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether a handler stopped propagation.
func (e *PointerEvent) Stopped() bool {
	return e.stopped
}

// Handler reacts to a pointer event. A returned error aborts dispatch and
// is reported to whoever delivered the event.
type Handler func(e *PointerEvent) error

// Node is a visual node a shape can be bound to.
type Node interface {
	// AddClass tags the node with a class name. Adding a tag twice is a no-op.
	AddClass(class string)

	// SetStyle replaces the visual attributes of the node.
	SetStyle(style Style)

	// SetZIndex sets the stacking value among siblings.
	SetZIndex(z int)

	// OnClick subscribes to clicks landing on the node.
	OnClick(h Handler)

	// Remove detaches the node from its parent. Removing twice is a no-op.
	Remove()

	// Attached reports whether the node is still part of the tree.
	Attached() bool
}

// Element is a surface region that can host child nodes.
type Element interface {
	// InnerWidth and InnerHeight return the rendered size in pixels.
	InnerWidth() int
	InnerHeight() int

	// ZIndex returns the element's own stacking value.
	ZIndex() int

	// Offset returns the element's top-left corner in page coordinates.
	Offset() Point

	// OnClick subscribes to clicks landing on the element or bubbling to it.
	OnClick(h Handler)

	// CreateNode makes a new detached child node.
	CreateNode() Node

	// Append attaches a node created by CreateNode under the element.
	Append(n Node) error
}
