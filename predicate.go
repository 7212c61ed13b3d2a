package sweepline

import (
	"math/bits"

	"golang.org/x/image/math/fixed"
)

// Orientation is the turn direction of three points.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	}
	return "Orientation(?)"
}

func orientationSign(val float64) Orientation {
	if 0.0 < val {
		return Clockwise
	} else if val < 0.0 {
		return CounterClockwise
	}
	return Collinear
}

// Orient returns the turn direction of P -> Q -> R, from the sign of the cross product (Q-P) x (R-Q). NaN coordinates yield Collinear.
func Orient(p, q, r Point) Orientation {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	return orientationSign(val)
}

// OrientFixed is Orient for 26.6 fixed-point coordinates. It is exact over the whole Int26_6 range, both cross product terms are computed in 128 bits and compared.
func OrientFixed(p, q, r fixed.Point26_6) Orientation {
	a := mulCmp(int64(q.Y)-int64(p.Y), int64(r.X)-int64(q.X), int64(q.X)-int64(p.X), int64(r.Y)-int64(q.Y))
	if 0 < a {
		return Clockwise
	} else if a < 0 {
		return CounterClockwise
	}
	return Collinear
}

// mulCmp returns the sign of a*b - c*d, each product taken exactly.
func mulCmp(a, b, c, d int64) int {
	s0, s1 := sign(a)*sign(b), sign(c)*sign(d)
	if s0 != s1 {
		// signs differ or one product is zero
		if s0 < s1 {
			return -1
		}
		return 1
	} else if s0 == 0 {
		return 0
	}

	hi0, lo0 := bits.Mul64(abs64(a), abs64(b))
	hi1, lo1 := bits.Mul64(abs64(c), abs64(d))
	cmp := 0
	if hi0 < hi1 || hi0 == hi1 && lo0 < lo1 {
		cmp = -1
	} else if hi1 < hi0 || hi0 == hi1 && lo1 < lo0 {
		cmp = 1
	}
	return s0 * cmp // magnitudes compare the other way round for negative products
}

func sign(a int64) int {
	if 0 < a {
		return 1
	} else if a < 0 {
		return -1
	}
	return 0
}

func abs64(a int64) uint64 {
	if a < 0 {
		return uint64(-a)
	}
	return uint64(a)
}

// OnSegment returns true if Q lies within the bounding box of PR. Q is expected to be collinear with P and R.
func OnSegment(p, q, r Point) bool {
	return Seg(p, r).Bounds().Contains(q)
}

// Intersects returns true if segments A and B cross, touch or overlap. The result does not depend on the argument order.
func Intersects(a, b Segment) bool {
	p1, q1 := a.Start(), a.End()
	p2, q2 := b.Start(), b.End()

	o1 := Orient(p1, q1, p2)
	o2 := Orient(p1, q1, q2)
	o3 := Orient(p2, q2, p1)
	o4 := Orient(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true // proper crossing, or an endpoint touching the other segment
	}

	// collinear cases
	if o1 == Collinear && OnSegment(p1, p2, q1) {
		return true
	} else if o2 == Collinear && OnSegment(p1, q2, q1) {
		return true
	} else if o3 == Collinear && OnSegment(p2, p1, q2) {
		return true
	} else if o4 == Collinear && OnSegment(p2, q1, q2) {
		return true
	}
	return false
}
