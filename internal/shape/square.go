package shape

import "github.com/vovakirdan/clickfield/internal/core"

// Size range of a square's edge.
const (
	SquareMinSize = 20
	SquareMaxSize = 150
)

// SquareClass is the class tag of square nodes.
const SquareClass = "figure-square"

// Square is a filled square centered on its center point.
type Square struct {
	figure
}

// NewSquare creates a square awaiting SetRandomParams.
func NewSquare() *Square {
	return NewSquareFrom(Data{})
}

// NewSquareFrom creates a square with the given parameters.
func NewSquareFrom(d Data) *Square {
	return &Square{figure: newFigure(d, SquareMinSize, SquareMaxSize)}
}

// Kind returns KindSquare.
func (s *Square) Kind() Kind {
	return KindSquare
}

// StyleClass returns SquareClass.
func (s *Square) StyleClass() string {
	return SquareClass
}

// ComputeStyle returns the square's box and background.
func (s *Square) ComputeStyle() core.Style {
	return s.style()
}

// Render applies the square's class and style to its node.
func (s *Square) Render() error {
	return render(s)
}
