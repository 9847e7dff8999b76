// Package shape implements the figures spawned on a field.
//
// Shape is a closed set: only Square and Round satisfy it. Both share the
// state and behaviour of an embedded figure and differ in their size range,
// class tag and style. A shape is created empty or from Data, randomized
// once, bound to exactly one surface node and then rendered into it.
package shape

import (
	"errors"

	"github.com/vovakirdan/clickfield/internal/core"
)

// Bounds of the random center used when no override is supplied.
const (
	CanvasMin = 0
	CanvasMax = 1000
)

var (
	// ErrNotBound is returned by Render before BindNode succeeded.
	ErrNotBound = errors.New("shape: must be bound to a field before rendering")

	// ErrInvalidNode is returned by BindNode for a nil node.
	ErrInvalidNode = errors.New("shape: node must be a surface node")

	// ErrAlreadyBound is returned by BindNode when the shape has a node.
	ErrAlreadyBound = errors.New("shape: already bound to a node")
)

// Kind identifies a concrete shape variant.
type Kind int

const (
	KindSquare Kind = iota
	KindRound
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "square"
	case KindRound:
		return "round"
	default:
		return "unknown"
	}
}

// Randomizer is the source of random parameters.
type Randomizer interface {
	RandInt(min, max int) int
	RandomColor() string
}

// Shape is a renderable figure.
type Shape interface {
	// Kind returns the concrete variant.
	Kind() Kind

	// StyleClass returns the class tag applied to the bound node.
	StyleClass() string

	// ComputeStyle returns the visual attributes for the current state.
	ComputeStyle() core.Style

	// SetRandomParams draws center, color and size, then applies params.
	SetRandomParams(r Randomizer, params ...Param)

	// BindNode attaches the shape to a surface node and makes a click on
	// that node remove it.
	BindNode(n core.Node) error

	// Render writes the class tag and style to the bound node.
	Render() error

	Center() core.Point
	Size() int
	Color() string
	MinSize() int
	MaxSize() int

	// Node returns the bound node, or nil.
	Node() core.Node

	// Bound reports whether BindNode succeeded.
	Bound() bool

	// Attached reports whether the shape is bound and its node has not
	// been removed.
	Attached() bool

	// Remove detaches the bound node, if any.
	Remove()

	base() *figure
}

// Data holds the parameters of a shape. For a Round, Size is the diameter.
type Data struct {
	Center core.Point
	Size   int
	Color  string
}

// Param overrides one randomly generated parameter.
type Param func(*Data)

// WithCenter fixes the center.
func WithCenter(p core.Point) Param {
	return func(d *Data) { d.Center = p }
}

// WithSize fixes the size. The value is clamped to the variant's range.
func WithSize(size int) Param {
	return func(d *Data) { d.Size = size }
}

// WithColor fixes the color.
func WithColor(color string) Param {
	return func(d *Data) { d.Color = color }
}

// IsNil reports whether s is nil or a nil pointer of a known variant.
func IsNil(s Shape) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Square:
		return v == nil
	case *Round:
		return v == nil
	default:
		return false
	}
}

// figure is the state shared by every variant.
type figure struct {
	center  core.Point
	size    int
	color   string
	minSize int
	maxSize int
	node    core.Node
}

func newFigure(d Data, minSize, maxSize int) figure {
	return figure{
		center:  d.Center,
		size:    d.Size,
		color:   d.Color,
		minSize: minSize,
		maxSize: maxSize,
	}
}

func (f *figure) base() *figure { return f }

func (f *figure) Center() core.Point { return f.center }
func (f *figure) Size() int          { return f.size }
func (f *figure) Color() string      { return f.color }
func (f *figure) MinSize() int       { return f.minSize }
func (f *figure) MaxSize() int       { return f.maxSize }

// Node returns the bound node, or nil before BindNode.
func (f *figure) Node() core.Node {
	return f.node
}

// Bound reports whether a node has been bound.
func (f *figure) Bound() bool {
	return f.node != nil
}

// Attached reports whether the bound node is still on the surface.
func (f *figure) Attached() bool {
	return f.node != nil && f.node.Attached()
}

// Remove removes the bound node from the surface.
func (f *figure) Remove() {
	if f.node != nil {
		f.node.Remove()
	}
}

// SetRandomParams generates a center on the default canvas, a color and a
// size within range, then lets params override any of them.
func (f *figure) SetRandomParams(r Randomizer, params ...Param) {
	d := Data{
		Center: core.Pt(r.RandInt(CanvasMin, CanvasMax), r.RandInt(CanvasMin, CanvasMax)),
		Color:  r.RandomColor(),
		Size:   r.RandInt(f.minSize, f.maxSize),
	}
	for _, p := range params {
		p(&d)
	}

	f.center = d.Center
	f.color = d.Color
	f.size = core.Clamp(d.Size, f.minSize, f.maxSize)
}

// BindNode stores the node and makes a click on it remove the node without
// reaching handlers further up the tree.
func (f *figure) BindNode(n core.Node) error {
	if n == nil {
		return ErrInvalidNode
	}
	if f.node != nil {
		return ErrAlreadyBound
	}

	f.node = n
	n.OnClick(func(e *core.PointerEvent) error {
		e.StopPropagation()
		n.Remove()
		return nil
	})
	return nil
}

// style is the square-cornered box centered on the figure's center.
func (f *figure) style() core.Style {
	half := core.Half(f.size)
	return core.Style{
		BackgroundColor: f.color,
		Width:           f.size,
		Height:          f.size,
		Top:             f.center.Y - half,
		Left:            f.center.X - half,
	}
}

// render applies the variant's class and style to the bound node.
// Variants call it with themselves so their overrides are used.
func render(s Shape) error {
	f := s.base()
	if f.node == nil {
		return ErrNotBound
	}

	style := s.ComputeStyle()
	style.Position = core.PositionAbsolute

	f.node.AddClass(s.StyleClass())
	f.node.SetStyle(style)
	return nil
}

// New creates an empty shape of the given kind.
func New(k Kind) Shape {
	if k == KindRound {
		return NewRound()
	}
	return NewSquare()
}
