package sweepline

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPair(t *testing.T) {
	a, b := Segment{1, 1, 4, 4}, Segment{1, 4, 4, 1}
	p := Pair{3, 1, a, b}
	test.T(t, p.Canonical(), Pair{1, 3, b, a})
	test.T(t, p.Canonical().Canonical(), Pair{1, 3, b, a})
	test.That(t, p.Equals(Pair{I: 1, J: 3}))
	test.That(t, p.Equals(Pair{I: 3, J: 1}))
	test.That(t, !p.Equals(Pair{I: 3, J: 2}))
	test.String(t, p.String(), "Segment (1,1)-(4,4) intersects with (1,4)-(4,1)")
}

func TestPairs(t *testing.T) {
	s := []Segment{{0, 0, 1, 1}, {0, 1, 1, 0}, {0, 0.5, 1, 0.5}}
	zs := Pairs{
		{2, 1, s[2], s[1]},
		{1, 0, s[1], s[0]},
		{0, 1, s[0], s[1]},
		{0, 2, s[0], s[2]},
	}
	test.That(t, zs.Has(0, 1))
	test.That(t, zs.Has(1, 2))
	test.That(t, zs.Has(2, 0))
	test.That(t, !zs.Has(0, 3))
	test.That(t, !Pairs{}.Has(0, 1))

	test.T(t, zs.Unique(), Pairs{
		{0, 1, s[0], s[1]},
		{0, 2, s[0], s[2]},
		{1, 2, s[1], s[2]},
	})
	test.T(t, len(zs), 4) // unchanged

	zs.Sort()
	test.T(t, zs, Pairs{
		{0, 1, s[0], s[1]},
		{0, 2, s[0], s[2]},
		{1, 0, s[1], s[0]},
		{2, 1, s[2], s[1]},
	})

	test.String(t, zs[:2].String(), "Segment (0,0)-(1,1) intersects with (0,1)-(1,0)\nSegment (0,0)-(1,1) intersects with (0,0.5)-(1,0.5)")
	test.String(t, Pairs{}.String(), "")
	test.T(t, Pairs{}.Unique(), Pairs{})
}
