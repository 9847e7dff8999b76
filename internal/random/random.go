// Package random produces the bounded integers and colors used to
// parameterize shapes.
package random

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/clickfield/internal/core"
)

// MaxColor is the exclusive upper bound of generated RGB values.
const MaxColor = 0xFFFFFF

// Generator wraps a seeded source so runs can be reproduced.
// It is not safe for concurrent use; each session owns its own.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator. A zero seed uses the current time.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// RandInt returns round(u*(max-min) + min) for u uniform in [0, 1).
// Both ends are reachable but drawn half as often as interior values.
func (g *Generator) RandInt(min, max int) int {
	return core.Round(g.rng.Float64()*float64(max-min) + float64(min))
}

// RandomColor returns a "#rrggbb" string for a value in [0, 0xFFFFFF).
func (g *Generator) RandomColor() string {
	return FormatColor(int(g.rng.Float64() * MaxColor))
}

// FormatColor renders an RGB value as a zero-padded hex color.
func FormatColor(rgb int) string {
	return fmt.Sprintf("#%06x", rgb)
}
