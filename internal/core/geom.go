// Package core provides fundamental types shared by the field, the shapes
// and the surface that displays them. It contains no external dependencies
// (especially no Bubble Tea) to keep the model pure and testable.
package core

import (
	"fmt"
	"math"
)

// Point is an immutable 2D integer coordinate in page pixels.
type Point struct {
	X, Y int
}

// NewPoint creates a point from raw coordinates, rounding both to the
// nearest integer.
func NewPoint(x, y float64) Point {
	return Point{X: Round(x), Y: Round(y)}
}

// Pt is shorthand for a point from integer coordinates.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Round rounds half up: 2.5 becomes 3 and -2.5 becomes -2.
// This differs from math.Round for negative halves.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Half returns round(n/2), used for centering and corner radii.
func Half(n int) int {
	return Round(float64(n) / 2)
}

// Rect represents an axis-aligned box used for hit testing and rasterizing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRounded reports whether (x, y) lies inside the rectangle with its
// corners rounded by radius. A radius of half the side yields a circle.
func (r Rect) ContainsRounded(x, y, radius int) bool {
	if !r.Contains(x, y) {
		return false
	}
	radius = Clamp(radius, 0, Min(r.W, r.H)/2)
	if radius == 0 {
		return true
	}

	// Only the four corner squares need the distance check
	fx, fy := float64(x)+0.5, float64(y)+0.5
	cx := ClampF(fx, float64(r.X+radius), float64(r.Right()-radius))
	cy := ClampF(fy, float64(r.Y+radius), float64(r.Bottom()-radius))
	dx, dy := fx-cx, fy-cy
	return dx*dx+dy*dy <= float64(radius*radius)
}

// Offset returns the rectangle translated by p.
func (r Rect) Offset(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
