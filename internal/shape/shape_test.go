package shape

import (
	"errors"
	"testing"

	"github.com/vovakirdan/clickfield/internal/core"
	"github.com/vovakirdan/clickfield/internal/random"
)

// fakeNode records what a shape does to its node.
type fakeNode struct {
	classes  []string
	style    core.Style
	styled   int
	z        int
	handlers []core.Handler
	removed  bool
}

func (n *fakeNode) AddClass(class string) {
	for _, c := range n.classes {
		if c == class {
			return
		}
	}
	n.classes = append(n.classes, class)
}

func (n *fakeNode) SetStyle(style core.Style) {
	n.style = style
	n.styled++
}

func (n *fakeNode) SetZIndex(z int)        { n.z = z }
func (n *fakeNode) OnClick(h core.Handler) { n.handlers = append(n.handlers, h) }
func (n *fakeNode) Remove()                { n.removed = true }
func (n *fakeNode) Attached() bool         { return !n.removed }

func (n *fakeNode) click(e *core.PointerEvent) {
	for _, h := range n.handlers {
		_ = h(e)
	}
}

// fixedRand returns scripted integers and a constant color.
type fixedRand struct {
	ints  []int
	color string
}

func (r *fixedRand) RandInt(min, max int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v
}

func (r *fixedRand) RandomColor() string {
	return r.color
}

func TestSizeBoundsAfterRandomization(t *testing.T) {
	g := random.New(2024)

	for i := 0; i < 5000; i++ {
		sq := NewSquare()
		sq.SetRandomParams(g)
		if sq.Size() < SquareMinSize || sq.Size() > SquareMaxSize {
			t.Fatalf("Square size %d out of [%d, %d]", sq.Size(), SquareMinSize, SquareMaxSize)
		}

		rd := NewRound()
		rd.SetRandomParams(g)
		if rd.Size() < RoundMinSize || rd.Size() > RoundMaxSize {
			t.Fatalf("Round size %d out of [%d, %d]", rd.Size(), RoundMinSize, RoundMaxSize)
		}
	}
}

func TestSetRandomParamsDefaults(t *testing.T) {
	r := &fixedRand{ints: []int{300, 400, 42}, color: "#123456"}

	sq := NewSquare()
	sq.SetRandomParams(r)

	if sq.Center() != core.Pt(300, 400) {
		t.Errorf("Center() = %v, expected (300, 400)", sq.Center())
	}
	if sq.Size() != 42 {
		t.Errorf("Size() = %d, expected 42", sq.Size())
	}
	if sq.Color() != "#123456" {
		t.Errorf("Color() = %q, expected #123456", sq.Color())
	}
}

func TestSetRandomParamsDefaultCenterDomain(t *testing.T) {
	g := random.New(5)

	for i := 0; i < 1000; i++ {
		rd := NewRound()
		rd.SetRandomParams(g)
		c := rd.Center()
		if c.X < CanvasMin || c.X > CanvasMax || c.Y < CanvasMin || c.Y > CanvasMax {
			t.Fatalf("Center() = %v outside default canvas", c)
		}
	}
}

func TestSetRandomParamsOverridesWin(t *testing.T) {
	g := random.New(3)

	rd := NewRound()
	rd.SetRandomParams(g, WithCenter(core.Pt(100, 200)))
	if rd.Center() != core.Pt(100, 200) {
		t.Errorf("Center() = %v, expected override (100, 200)", rd.Center())
	}
	if rd.Size() < RoundMinSize || rd.Size() > RoundMaxSize {
		t.Errorf("Size() = %d should stay random within bounds", rd.Size())
	}

	sq := NewSquare()
	sq.SetRandomParams(g, WithSize(77), WithColor("#abcdef"))
	if sq.Size() != 77 || sq.Color() != "#abcdef" {
		t.Errorf("Overrides not applied: size=%d color=%q", sq.Size(), sq.Color())
	}
}

func TestSetRandomParamsClampsSizeOverride(t *testing.T) {
	g := random.New(3)

	sq := NewSquare()
	sq.SetRandomParams(g, WithSize(1000))
	if sq.Size() != SquareMaxSize {
		t.Errorf("Size() = %d, expected clamp to %d", sq.Size(), SquareMaxSize)
	}

	rd := NewRound()
	rd.SetRandomParams(g, WithSize(1))
	if rd.Size() != RoundMinSize {
		t.Errorf("Size() = %d, expected clamp to %d", rd.Size(), RoundMinSize)
	}
}

func TestComputeStyle(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		expected core.Style
	}{
		{
			name:  "even square",
			shape: NewSquareFrom(Data{Center: core.Pt(100, 200), Size: 40, Color: "#ff0000"}),
			expected: core.Style{
				BackgroundColor: "#ff0000",
				Width:           40,
				Height:          40,
				Top:             180,
				Left:            80,
			},
		},
		{
			name:  "odd square rounds half up",
			shape: NewSquareFrom(Data{Center: core.Pt(100, 200), Size: 21, Color: "#00ff00"}),
			expected: core.Style{
				BackgroundColor: "#00ff00",
				Width:           21,
				Height:          21,
				Top:             189,
				Left:            89,
			},
		},
		{
			name:  "round adds radius",
			shape: NewRoundFrom(Data{Center: core.Pt(50, 60), Size: 31, Color: "#0000ff"}),
			expected: core.Style{
				BackgroundColor: "#0000ff",
				Width:           31,
				Height:          31,
				Top:             44,
				Left:            34,
				BorderRadius:    16,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.shape.ComputeStyle()
			if got != tc.expected {
				t.Errorf("ComputeStyle() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestComputeStyleCentering(t *testing.T) {
	g := random.New(11)

	for i := 0; i < 1000; i++ {
		for _, s := range []Shape{NewSquare(), NewRound()} {
			s.SetRandomParams(g)
			st := s.ComputeStyle()
			half := core.Half(s.Size())
			if st.Top != s.Center().Y-half || st.Left != s.Center().X-half {
				t.Fatalf("%s style %+v not centered on %v", s.Kind(), st, s.Center())
			}
			if s.Kind() == KindRound && st.BorderRadius != half {
				t.Fatalf("Round BorderRadius = %d, expected %d", st.BorderRadius, half)
			}
			if s.Kind() == KindSquare && st.BorderRadius != 0 {
				t.Fatalf("Square BorderRadius = %d, expected 0", st.BorderRadius)
			}
		}
	}
}

func TestStyleClass(t *testing.T) {
	if NewSquare().StyleClass() != SquareClass {
		t.Errorf("Square StyleClass() = %q", NewSquare().StyleClass())
	}
	if NewRound().StyleClass() != RoundClass {
		t.Errorf("Round StyleClass() = %q", NewRound().StyleClass())
	}
	if New(KindRound).Kind() != KindRound || New(KindSquare).Kind() != KindSquare {
		t.Error("New() should build the requested kind")
	}
}

func TestRenderBeforeBindFails(t *testing.T) {
	sq := NewSquare()
	sq.SetRandomParams(random.New(1))

	err := sq.Render()
	if !errors.Is(err, ErrNotBound) {
		t.Errorf("Render() error = %v, expected ErrNotBound", err)
	}
	if sq.Bound() || sq.Attached() {
		t.Error("Unbound shape should report neither bound nor attached")
	}
}

func TestBindNodeRejectsNil(t *testing.T) {
	rd := NewRound()
	if err := rd.BindNode(nil); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("BindNode(nil) error = %v, expected ErrInvalidNode", err)
	}
	if rd.Bound() {
		t.Error("Failed bind should leave shape unbound")
	}
}

func TestBindNodeTwiceFails(t *testing.T) {
	rd := NewRound()
	if err := rd.BindNode(&fakeNode{}); err != nil {
		t.Fatalf("BindNode() failed: %v", err)
	}
	if err := rd.BindNode(&fakeNode{}); !errors.Is(err, ErrAlreadyBound) {
		t.Errorf("Second BindNode() error = %v, expected ErrAlreadyBound", err)
	}
}

func TestRenderAppliesClassAndStyle(t *testing.T) {
	rd := NewRoundFrom(Data{Center: core.Pt(100, 100), Size: 40, Color: "#abcdef"})
	n := &fakeNode{}
	if err := rd.BindNode(n); err != nil {
		t.Fatalf("BindNode() failed: %v", err)
	}

	if err := rd.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if len(n.classes) != 1 || n.classes[0] != RoundClass {
		t.Errorf("classes = %v, expected [%s]", n.classes, RoundClass)
	}
	expected := rd.ComputeStyle()
	expected.Position = core.PositionAbsolute
	if n.style != expected {
		t.Errorf("style = %+v, expected %+v", n.style, expected)
	}

	// Rendering again with unchanged state leaves the node as it was
	if err := rd.Render(); err != nil {
		t.Fatalf("Second Render() failed: %v", err)
	}
	if len(n.classes) != 1 || n.style != expected {
		t.Errorf("Render() is not idempotent: classes=%v style=%+v", n.classes, n.style)
	}
}

func TestClickOnNodeRemovesAndStops(t *testing.T) {
	sq := NewSquareFrom(Data{Center: core.Pt(10, 10), Size: 20, Color: "#000000"})
	n := &fakeNode{}
	if err := sq.BindNode(n); err != nil {
		t.Fatalf("BindNode() failed: %v", err)
	}
	if !sq.Attached() {
		t.Fatal("Bound shape should be attached")
	}

	e := core.NewPointerEvent(10, 10)
	n.click(e)

	if !e.Stopped() {
		t.Error("Click on shape should stop propagation")
	}
	if !n.removed || sq.Attached() {
		t.Error("Click on shape should remove its node")
	}
	if !sq.Bound() {
		t.Error("Removed shape should still report it was bound")
	}
}

func TestIsNil(t *testing.T) {
	var sq *Square
	var rd *Round

	tests := []struct {
		name     string
		shape    Shape
		expected bool
	}{
		{"nil interface", nil, true},
		{"typed nil square", sq, true},
		{"typed nil round", rd, true},
		{"square", NewSquare(), false},
		{"round", NewRound(), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNil(tc.shape); got != tc.expected {
				t.Errorf("IsNil() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindSquare.String() != "square" || KindRound.String() != "round" || Kind(9).String() != "unknown" {
		t.Error("Kind.String() returned unexpected names")
	}
}
