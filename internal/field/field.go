// Package field binds an interactive surface region to the shapes placed
// on it and translates clicks into field-relative points.
package field

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/clickfield/internal/core"
	"github.com/vovakirdan/clickfield/internal/shape"
)

var (
	// ErrTargetCount is returned by New unless exactly one element is given.
	ErrTargetCount = errors.New("field: exactly one target element required")

	// ErrNotShape is returned by BindFigure for a nil shape.
	ErrNotShape = errors.New("field: param must be a shape")
)

// ClickFunc receives the field-relative point of a click on the field.
type ClickFunc func(p core.Point) error

// Field owns one surface element and the shapes bound into it.
//
// Size, stacking value and offset are captured once at construction and
// are not re-measured when the element changes later.
type Field struct {
	target  core.Element
	height  int
	width   int
	zIndex  int
	offset  core.Point
	shapes  []shape.Shape
	removed int
	onClick ClickFunc
}

// New binds a field to the single element in candidates.
func New(candidates ...core.Element) (*Field, error) {
	if len(candidates) != 1 || candidates[0] == nil {
		return nil, fmt.Errorf("%w: got %d", ErrTargetCount, len(candidates))
	}

	el := candidates[0]
	f := &Field{
		target: el,
		height: el.InnerHeight(),
		width:  el.InnerWidth(),
		zIndex: el.ZIndex(),
		offset: el.Offset(),
	}
	el.OnClick(f.HandleClick)
	return f, nil
}

// SetClickCallback installs the function called on every click that lands
// on the field itself. Passing nil disables it.
func (f *Field) SetClickCallback(fn ClickFunc) {
	f.onClick = fn
}

// HandleClick converts the event to a field point and runs the callback.
func (f *Field) HandleClick(e *core.PointerEvent) error {
	p := f.PointFromEvent(e)
	if f.onClick == nil {
		return nil
	}
	return f.onClick(p)
}

// PointFromEvent returns the event position relative to the field.
func (f *Field) PointFromEvent(e *core.PointerEvent) core.Point {
	return core.NewPoint(e.PageX-float64(f.offset.X), e.PageY-float64(f.offset.Y))
}

// BindFigure places s on a new node stacked above every earlier shape.
// The caller renders s afterwards. Invalid shapes leave the field as it was.
func (f *Field) BindFigure(s shape.Shape) error {
	if shape.IsNil(s) {
		return ErrNotShape
	}
	if s.Bound() {
		return shape.ErrAlreadyBound
	}

	node := f.target.CreateNode()
	node.SetZIndex(f.zIndex + 1)
	if err := s.BindNode(node); err != nil {
		return err
	}
	if err := f.target.Append(node); err != nil {
		return fmt.Errorf("field: cannot append node: %w", err)
	}

	f.zIndex++
	f.prune()
	f.shapes = append(f.shapes, s)
	return nil
}

// prune forgets shapes whose nodes were removed.
func (f *Field) prune() {
	live := f.shapes[:0]
	for _, s := range f.shapes {
		if s.Attached() {
			live = append(live, s)
		} else {
			f.removed++
		}
	}
	for i := len(live); i < len(f.shapes); i++ {
		f.shapes[i] = nil
	}
	f.shapes = live
}

// Shapes returns the shapes still on the field, oldest first.
func (f *Field) Shapes() []shape.Shape {
	out := make([]shape.Shape, 0, len(f.shapes))
	for _, s := range f.shapes {
		if s.Attached() {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of shapes still on the field.
func (f *Field) Len() int {
	return len(f.Shapes())
}

// Removed returns how many bound shapes have been removed so far.
func (f *Field) Removed() int {
	return f.removed + len(f.shapes) - f.Len()
}

// Clear removes every shape from the field.
func (f *Field) Clear() {
	for _, s := range f.shapes {
		s.Remove()
	}
	f.prune()
}

// Width returns the field width captured at construction.
func (f *Field) Width() int {
	return f.width
}

// Height returns the field height captured at construction.
func (f *Field) Height() int {
	return f.height
}

// ZIndex returns the current stacking counter.
func (f *Field) ZIndex() int {
	return f.zIndex
}

// Offset returns the field's page offset captured at construction.
func (f *Field) Offset() core.Point {
	return f.offset
}
