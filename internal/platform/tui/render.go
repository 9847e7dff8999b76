package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/clickfield/internal/config"
	"github.com/vovakirdan/clickfield/internal/core"
	"github.com/vovakirdan/clickfield/internal/surface"
)

// Viewport maps page pixels onto terminal cells. The page origin is the
// top-left cell of the terminal.
type Viewport struct {
	CellW int
	CellH int
}

// NewViewport creates a viewport from the display settings.
func NewViewport(d config.DisplayConfig) Viewport {
	return Viewport{CellW: d.CellWidth, CellH: d.CellHeight}
}

// CellCenter returns the page coordinates of the center of cell (x, y).
func (v Viewport) CellCenter(x, y int) (float64, float64) {
	return float64(x*v.CellW) + float64(v.CellW)/2, float64(y*v.CellH) + float64(v.CellH)/2
}

// CellRect returns the page box covered by a block of cells.
func (v Viewport) CellRect(x, y, w, h int) core.Rect {
	return core.NewRect(x*v.CellW, y*v.CellH, w*v.CellW, h*v.CellH)
}

// Paint rasterizes every node below the roots of tree into dst, clipped to
// the given rows. A cell takes the color of the topmost node covering its
// center.
func Paint(dst *core.Screen, tree *surface.Tree, vp Viewport, glyph rune, firstRow, lastRow int) {
	tree.Walk(func(n *surface.Node) {
		if n.Parent() == nil {
			return
		}
		style := n.Style()
		if style.BackgroundColor == "" {
			return
		}

		box := n.PageBox()
		x0 := core.Max(box.X/vp.CellW, 0)
		y0 := core.Max(box.Y/vp.CellH, firstRow)
		x1 := core.Min(box.Right()/vp.CellW, dst.Width()-1)
		y1 := core.Min(box.Bottom()/vp.CellH, lastRow)

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				px, py := vp.CellCenter(x, y)
				if n.Contains(core.NewPoint(px, py)) {
					dst.SetCell(x, y, core.Cell{Rune: glyph, Color: style.BackgroundColor})
				}
			}
		}
	})
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == "" {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(startColor)).Render(run.String()))
		}
	}
	return sb.String()
}

// Swatch renders hex as a label on its own color with readable text.
// Colors that do not parse are returned unstyled.
func Swatch(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}

	fg := "#ffffff"
	if l, _, _ := c.Lab(); l > 0.6 {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Render(" " + hex + " ")
}
