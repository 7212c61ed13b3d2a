package sweepline

import (
	"fmt"
	"math"
)

// Segment is a line segment between (X1,Y1) and (X2,Y2). The first endpoint need not be the leftmost one. Segments are identified by their index in the input slice, so that two segments with equal coordinates remain distinct.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Seg returns the segment between p and q.
func Seg(p, q Point) Segment {
	return Segment{p.X, p.Y, q.X, q.Y}
}

// Start returns the first endpoint.
func (s Segment) Start() Point {
	return Point{s.X1, s.Y1}
}

// End returns the second endpoint.
func (s Segment) End() Point {
	return Point{s.X2, s.Y2}
}

// Left returns the endpoint with the smallest X, or Start if both have the same X.
func (s Segment) Left() Point {
	if s.X2 < s.X1 {
		return s.End()
	}
	return s.Start()
}

// Right returns the endpoint with the largest X, or End if both have the same X.
func (s Segment) Right() Point {
	if s.X2 < s.X1 {
		return s.Start()
	}
	return s.End()
}

// MidY returns the Y coordinate of the midpoint, used as the ordering key of the sweep status.
func (s Segment) MidY() float64 {
	return (s.Y1 + s.Y2) / 2.0
}

// Bounds returns the bounding box.
func (s Segment) Bounds() Rect {
	return Rect{
		math.Min(s.X1, s.X2), math.Min(s.Y1, s.Y2),
		math.Max(s.X1, s.X2), math.Max(s.Y1, s.Y2),
	}
}

// IsPoint returns true if both endpoints are exactly equal.
func (s Segment) IsPoint() bool {
	return s.X1 == s.X2 && s.Y1 == s.Y2
}

// Finite returns true if all coordinates are finite numbers.
func (s Segment) Finite() bool {
	return s.Start().Finite() && s.End().Finite()
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.Start(), s.End())
}
