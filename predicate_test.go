package sweepline

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/math/fixed"
)

func TestOrient(t *testing.T) {
	var tts = []struct {
		p, q, r Point
		o       Orientation
	}{
		{Point{0, 0}, Point{1, 1}, Point{2, 0}, Clockwise},
		{Point{0, 0}, Point{1, 1}, Point{0, 2}, CounterClockwise},
		{Point{0, 0}, Point{1, 1}, Point{2, 2}, Collinear},
		{Point{0, 0}, Point{1, 1}, Point{-3, -3}, Collinear},
		{Point{1, 1}, Point{1, 1}, Point{1, 1}, Collinear},
		{Point{1, 1}, Point{1, 1}, Point{5, 7}, Collinear},
		{Point{0, 0}, Point{1, 0}, Point{math.NaN(), 1}, Collinear},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.p, tt.q, tt.r), func(t *testing.T) {
			test.T(t, Orient(tt.p, tt.q, tt.r), tt.o)
		})
	}
}

func TestOrientFixed(t *testing.T) {
	big := fixed.Int26_6(1 << 30)
	test.T(t, OrientFixed(fixed.Point26_6{}, fixed.Point26_6{X: big, Y: big}, fixed.Point26_6{X: -big, Y: big}), CounterClockwise)
	test.T(t, OrientFixed(fixed.Point26_6{}, fixed.Point26_6{X: big, Y: big}, fixed.Point26_6{X: 2*big - 1, Y: 0}), Clockwise)
	test.T(t, OrientFixed(fixed.Point26_6{X: -big, Y: -big}, fixed.Point26_6{}, fixed.Point26_6{X: big, Y: big}), Collinear)

	// full range, differences need 33 bits and products 65 bits
	lo, hi := fixed.Int26_6(math.MinInt32), fixed.Int26_6(math.MaxInt32)
	var tts = []struct {
		p, q, r fixed.Point26_6
		o       Orientation
	}{
		{fixed.Point26_6{X: lo, Y: lo}, fixed.Point26_6{X: hi, Y: hi}, fixed.Point26_6{X: lo, Y: hi}, CounterClockwise},
		{fixed.Point26_6{X: lo, Y: lo}, fixed.Point26_6{X: hi, Y: hi}, fixed.Point26_6{X: hi, Y: lo}, Clockwise},
		{fixed.Point26_6{X: lo, Y: lo}, fixed.Point26_6{X: 0, Y: 0}, fixed.Point26_6{X: hi, Y: hi}, Collinear},
		{fixed.Point26_6{X: lo, Y: lo}, fixed.Point26_6{X: hi, Y: hi}, fixed.Point26_6{X: lo, Y: lo}, Collinear},
		{fixed.Point26_6{X: lo, Y: hi}, fixed.Point26_6{X: hi, Y: lo}, fixed.Point26_6{X: hi, Y: hi}, CounterClockwise},
		{fixed.Point26_6{X: lo, Y: hi}, fixed.Point26_6{X: hi, Y: lo}, fixed.Point26_6{X: lo, Y: lo}, Clockwise},
		{fixed.Point26_6{X: lo, Y: lo}, fixed.Point26_6{X: hi, Y: hi}, fixed.Point26_6{X: hi - 1, Y: hi}, CounterClockwise},
		{fixed.Point26_6{X: lo, Y: lo}, fixed.Point26_6{X: hi, Y: hi}, fixed.Point26_6{X: hi, Y: hi - 1}, Clockwise},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.p, tt.q, tt.r), func(t *testing.T) {
			test.T(t, OrientFixed(tt.p, tt.q, tt.r), tt.o)
			test.T(t, Orient(FromFixed(tt.p), FromFixed(tt.q), FromFixed(tt.r)), tt.o)
		})
	}

	for i := 0; i < 100; i++ {
		p := Point{math.Round(rand.NormFloat64() * 100.0), math.Round(rand.NormFloat64() * 100.0)}
		q := Point{math.Round(rand.NormFloat64() * 100.0), math.Round(rand.NormFloat64() * 100.0)}
		r := Point{math.Round(rand.NormFloat64() * 100.0), math.Round(rand.NormFloat64() * 100.0)}
		test.T(t, OrientFixed(p.Fixed(), q.Fixed(), r.Fixed()), Orient(p, q, r))
		test.T(t, FromFixed(p.Fixed()), p)
	}
}

func TestOrientationString(t *testing.T) {
	test.String(t, Collinear.String(), "Collinear")
	test.String(t, Clockwise.String(), "Clockwise")
	test.String(t, CounterClockwise.String(), "CounterClockwise")
	test.String(t, Orientation(5).String(), "Orientation(?)")
}

func TestOnSegment(t *testing.T) {
	test.T(t, OnSegment(Point{0, 0}, Point{1, 1}, Point{2, 2}), true)
	test.T(t, OnSegment(Point{2, 2}, Point{1, 1}, Point{0, 0}), true)
	test.T(t, OnSegment(Point{0, 0}, Point{2, 2}, Point{2, 2}), true)
	test.T(t, OnSegment(Point{0, 0}, Point{3, 3}, Point{2, 2}), false)
	test.T(t, OnSegment(Point{0, 0}, Point{-1, -1}, Point{2, 2}), false)
}

func TestIntersects(t *testing.T) {
	var tts = []struct {
		a, b       Segment
		intersects bool
	}{
		// crossing
		{Segment{1, 1, 4, 4}, Segment{1, 4, 4, 1}, true},
		{Segment{0, 0, 2, 0}, Segment{1, -1, 1, 1}, true},
		{Segment{4, 4, 1, 1}, Segment{4, 1, 1, 4}, true},

		// touching
		{Segment{0, 0, 2, 0}, Segment{1, 0, 1, 1}, true},
		{Segment{0, 0, 2, 0}, Segment{2, 0, 3, 5}, true},
		{Segment{0, 0, 2, 2}, Segment{2, 2, 4, 0}, true},

		// collinear
		{Segment{0, 0, 2, 2}, Segment{0, 0, 2, 2}, true},
		{Segment{0, 0, 2, 2}, Segment{1, 1, 3, 3}, true},
		{Segment{0, 0, 4, 4}, Segment{1, 1, 2, 2}, true},
		{Segment{0, 0, 2, 2}, Segment{2, 2, 3, 3}, true},
		{Segment{0, 0, 2, 2}, Segment{3, 3, 4, 4}, false},
		{Segment{0, 0, 2, 0}, Segment{3, 0, 5, 0}, false},

		// points
		{Segment{0, 0, 2, 2}, Segment{1, 1, 1, 1}, true},
		{Segment{0, 0, 2, 2}, Segment{0, 0, 0, 0}, true},
		{Segment{0, 0, 2, 2}, Segment{3, 3, 3, 3}, false},
		{Segment{0, 0, 2, 2}, Segment{1, 0, 1, 0}, false},
		{Segment{1, 1, 1, 1}, Segment{1, 1, 1, 1}, true},
		{Segment{1, 1, 1, 1}, Segment{1, 2, 1, 2}, false},

		// disjoint
		{Segment{0, 0, 1, 0}, Segment{0, 1, 1, 1}, false},
		{Segment{1, 1, 4, 4}, Segment{5, 2, 7, 2}, false},
		{Segment{0, 0, 1, 1}, Segment{3, 0, 2, 1}, false},
		{Segment{0, 0, 4, 0}, Segment{2, 1, 3, 5}, false},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.a, "x", tt.b), func(t *testing.T) {
			test.T(t, Intersects(tt.a, tt.b), tt.intersects)
			test.T(t, Intersects(tt.b, tt.a), tt.intersects)
		})
	}
}

func TestIntersectsSymmetric(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, b := RandomSegment(), RandomSegment()
		test.T(t, Intersects(a, b), Intersects(b, a), fmt.Sprint(a, "x", b))
	}
}

func TestIntersectsProperCrossing(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a, b := RandomSegment(), RandomSegment()
		o1 := Orient(a.Start(), a.End(), b.Start())
		o2 := Orient(a.Start(), a.End(), b.End())
		o3 := Orient(b.Start(), b.End(), a.Start())
		o4 := Orient(b.Start(), b.End(), a.End())
		if o1 != o2 && o3 != o4 {
			test.That(t, Intersects(a, b), fmt.Sprint(a, "x", b))
		}
	}
}
