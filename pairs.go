package sweepline

import (
	"fmt"
	"sort"
	"strings"
)

// Pair is a reported intersection between the segments with indices I and J, which are A and B respectively. The pair is unordered.
type Pair struct {
	I, J int
	A, B Segment
}

// Canonical returns the pair with I < J.
func (p Pair) Canonical() Pair {
	if p.J < p.I {
		return Pair{p.J, p.I, p.B, p.A}
	}
	return p
}

// Equals returns true if both pairs refer to the same two segments, in either order.
func (p Pair) Equals(q Pair) bool {
	return p.I == q.I && p.J == q.J || p.I == q.J && p.J == q.I
}

func (p Pair) String() string {
	return fmt.Sprintf("Segment %v intersects with %v", p.A, p.B)
}

// Pairs is a list of reported intersections. It may contain the same pair more than once.
type Pairs []Pair

// Has returns true if the pair of segments i and j was reported, in either order.
func (ps Pairs) Has(i, j int) bool {
	q := Pair{I: i, J: j}
	for _, p := range ps {
		if p.Equals(q) {
			return true
		}
	}
	return false
}

// Sort sorts the pairs by I and then J, without changing their orientation.
func (ps Pairs) Sort() {
	sort.Stable(pairSort(ps))
}

// Unique returns the canonical pairs (I < J) without duplicates, sorted by I and then J.
func (ps Pairs) Unique() Pairs {
	seen := make(map[[2]int]bool, len(ps))
	unique := make(Pairs, 0, len(ps))
	for _, p := range ps {
		p = p.Canonical()
		if !seen[[2]int{p.I, p.J}] {
			seen[[2]int{p.I, p.J}] = true
			unique = append(unique, p)
		}
	}
	unique.Sort()
	return unique
}

func (ps Pairs) String() string {
	sb := strings.Builder{}
	for i, p := range ps {
		if 0 < i {
			sb.WriteString("\n")
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}

type pairSort Pairs

func (a pairSort) Len() int {
	return len(a)
}

func (a pairSort) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}

func (a pairSort) Less(i, j int) bool {
	if a[i].I != a[j].I {
		return a[i].I < a[j].I
	}
	return a[i].J < a[j].J
}
