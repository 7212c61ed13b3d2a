package sweepline

import "math/rand"

func RandomSegment() Segment {
	return Segment{rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64()}
}

func RandomSegments(n int) []Segment {
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = RandomSegment()
	}
	return segs
}

// RandomGridSegments returns segments with small integer coordinates, which produces many touching and collinear segments.
func RandomGridSegments(n int) []Segment {
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Segment{float64(rand.Intn(5)), float64(rand.Intn(5)), float64(rand.Intn(5)), float64(rand.Intn(5))}
	}
	return segs
}
