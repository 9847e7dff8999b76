package core

// PositionAbsolute is the only positioning mode shapes use.
const PositionAbsolute = "absolute"

// Style holds the visual attributes a surface node is drawn with.
// Lengths are in page pixels. BorderRadius is zero for square corners.
type Style struct {
	Position        string
	BackgroundColor string
	Width           int
	Height          int
	Top             int
	Left            int
	BorderRadius    int
}

// Box returns the rectangle covered by the style, relative to the parent.
func (s Style) Box() Rect {
	return NewRect(s.Left, s.Top, s.Width, s.Height)
}
