package sweepline

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidInput is returned when a segment has a NaN or infinite coordinate.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports the first segment with a non-finite coordinate.
type InvalidInputError struct {
	Index   int
	Segment Segment
}

func (err *InvalidInputError) Error() string {
	return fmt.Sprintf("%v: segment %d has non-finite coordinates %v", ErrInvalidInput, err.Index, err.Segment)
}

func (err *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// Validate returns an *InvalidInputError for the first segment with a NaN or infinite coordinate.
func Validate(segs []Segment) error {
	for i, s := range segs {
		if !s.Finite() {
			return &InvalidInputError{i, s}
		}
	}
	return nil
}

// Sweeper finds intersecting segments by sweeping a vertical line from left to right. The zero value is ready to use.
type Sweeper struct {
	// Trace receives a line for every processed event followed by the sweep status, if not nil.
	Trace io.Writer
}

// Intersections returns the pairs of intersecting segments found by a sweep over segs, see Sweeper.Intersections.
func Intersections(segs []Segment) (Pairs, error) {
	return Sweeper{}.Intersections(segs)
}

// Intersections returns the pairs of intersecting segments found by a sweep over segs. When a segment enters the sweep status it is tested against the segments directly above and below it, and when it exits the segments that were above and below it are tested against each other. The status is ordered by the midpoint Y of each segment instead of the Y at the sweep line, so that not all intersections are guaranteed to be found (use BruteForce for that). The same pair may be reported more than once.
func (sw Sweeper) Intersections(segs []Segment) (Pairs, error) {
	if err := Validate(segs); err != nil {
		return nil, err
	}

	zs := Pairs{}
	if len(segs) < 2 {
		return zs, nil
	}

	status := NewStatus()
	for _, e := range BuildEvents(segs) {
		seg := segs[e.Index]
		if e.Kind == Enter {
			n := status.Insert(e.Index, seg)
			above, below := status.Neighbors(n)
			if above != nil && Intersects(seg, above.Segment) {
				zs = append(zs, Pair{e.Index, above.Index, seg, above.Segment})
			}
			if below != nil && Intersects(seg, below.Segment) {
				zs = append(zs, Pair{e.Index, below.Index, seg, below.Segment})
			}
		} else {
			above, below := status.Remove(e.Index, seg)
			if above != nil && below != nil && Intersects(above.Segment, below.Segment) {
				zs = append(zs, Pair{above.Index, below.Index, above.Segment, below.Segment})
			}
		}

		if sw.Trace != nil {
			fmt.Fprintf(sw.Trace, "%v: %d pairs, %d active\n", e, len(zs), status.Len())
			fmt.Fprintln(sw.Trace, status)
		}
	}
	if status.Len() != 0 {
		panic("sweep status not empty")
	}
	return zs, nil
}

// BruteForce tests every pair of segments once and returns all intersecting pairs sorted by I and then J, with I < J.
func BruteForce(segs []Segment) Pairs {
	zs := Pairs{}
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if Intersects(segs[i], segs[j]) {
				zs = append(zs, Pair{i, j, segs[i], segs[j]})
			}
		}
	}
	return zs
}
