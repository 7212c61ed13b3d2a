package sweepline

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

func ftos(f float64) string {
	return fmt.Sprintf("%g", f)
}

////////////////////////////////////////////////////////////////

// toI26_6 rounds to the nearest 26.6 value, saturating outside the int32 range. NaN yields zero.
func toI26_6(f float64) fixed.Int26_6 {
	f = math.Round(f * 64.0)
	if math.IsNaN(f) {
		return 0
	} else if f <= math.MinInt32 {
		return math.MinInt32
	} else if math.MaxInt32 <= f {
		return math.MaxInt32
	}
	return fixed.Int26_6(f)
}

func fromI26_6(f fixed.Int26_6) float64 {
	return float64(f) / 64.0
}

// FromFixed converts a 26.6 fixed-point coordinate to a Point.
func FromFixed(f fixed.Point26_6) Point {
	return Point{fromI26_6(f.X), fromI26_6(f.Y)}
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Finite returns true if neither coordinate is NaN or infinite.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Fixed rounds P to the nearest 26.6 fixed-point coordinate. Coordinates outside [-33554432,33554432) saturate to the smallest or largest Int26_6 and NaN becomes zero.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toI26_6(p.X), Y: toI26_6(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", ftos(p.X), ftos(p.Y))
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned bounding box.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Contains returns true if p lies inside or on the boundary of r.
func (r Rect) Contains(p Point) bool {
	return r.X0 <= p.X && p.X <= r.X1 && r.Y0 <= p.Y && p.Y <= r.Y1
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X0, r.Y0, r.X1, r.Y1)
}
