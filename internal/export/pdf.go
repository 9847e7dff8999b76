// Package export writes the shapes of a field to vector documents.
package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/clickfield/internal/shape"
)

// PDF writes a single page of width x height points with every shape drawn
// in order, so later shapes cover earlier ones. Coordinates are field
// pixels, one pixel per point.
func PDF(path string, width, height int, shapes []shape.Shape) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("export: page size must be positive, got %dx%d", width, height)
	}

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	p.AddPage()

	for _, s := range shapes {
		c, err := colorful.Hex(s.Color())
		if err != nil {
			return fmt.Errorf("export: shape color %q: %w", s.Color(), err)
		}
		r, g, b := c.RGB255()
		p.SetFillColor(int(r), int(g), int(b))

		style := s.ComputeStyle()
		if s.Kind() == shape.KindRound {
			center := s.Center()
			p.Circle(float64(center.X), float64(center.Y), float64(s.Size())/2, "F")
			continue
		}
		p.Rect(float64(style.Left), float64(style.Top), float64(style.Width), float64(style.Height), "F")
	}

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export: cannot write %s: %w", path, err)
	}
	return nil
}
