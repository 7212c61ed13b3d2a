package sweepline

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// EventKind is either Enter or Exit.
type EventKind int

const (
	Enter EventKind = iota
	Exit
)

func (k EventKind) String() string {
	if k == Enter {
		return "Enter"
	}
	return "Exit"
}

// Event is the moment the sweep line reaches the left (Enter) or right (Exit) end of the segment with index Index.
type Event struct {
	X     float64
	Kind  EventKind
	Index int
}

func (e Event) String() string {
	return fmt.Sprintf("%v(%d) x=%v", e.Kind, e.Index, ftos(e.X))
}

// Events is a list of sweep events ordered by X.
type Events []Event

// BuildEvents returns the Enter and Exit events of all segments sorted by X. The sort is stable, so events at the same X keep the order in which they were generated: the Enter of segment 0, the Exit of segment 0, the Enter of segment 1, and so on. A segment of zero width thus enters and exits at the same X.
func BuildEvents(segs []Segment) Events {
	q := make(Events, 0, 2*len(segs))
	for i, s := range segs {
		q = append(q, Event{math.Min(s.X1, s.X2), Enter, i})
		q = append(q, Event{math.Max(s.X1, s.X2), Exit, i})
	}
	sort.Stable(q)
	return q
}

func (q Events) Len() int {
	return len(q)
}

func (q Events) Less(i, j int) bool {
	return q[i].X < q[j].X
}

func (q Events) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q Events) Print(w io.Writer) {
	for k, e := range q {
		fmt.Fprintln(w, k, e)
	}
}

func (q Events) String() string {
	sb := strings.Builder{}
	q.Print(&sb)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
