package shape

import "github.com/vovakirdan/clickfield/internal/core"

// Size range of a round's diameter.
const (
	RoundMinSize = 30
	RoundMaxSize = 200
)

// RoundClass is the class tag of round nodes.
const RoundClass = "figure-round"

// Round is a filled circle. Its size is the diameter.
type Round struct {
	figure
}

// NewRound creates a round awaiting SetRandomParams.
func NewRound() *Round {
	return NewRoundFrom(Data{})
}

// NewRoundFrom creates a round with the given parameters.
func NewRoundFrom(d Data) *Round {
	return &Round{figure: newFigure(d, RoundMinSize, RoundMaxSize)}
}

// Kind returns KindRound.
func (r *Round) Kind() Kind {
	return KindRound
}

// StyleClass returns RoundClass.
func (r *Round) StyleClass() string {
	return RoundClass
}

// ComputeStyle returns the bounding box with corners rounded into a circle.
func (r *Round) ComputeStyle() core.Style {
	style := r.style()
	style.BorderRadius = core.Half(r.size)
	return style
}

// Render applies the round's class and style to its node.
func (r *Round) Render() error {
	return render(r)
}
