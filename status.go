package sweepline

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Entry is a segment in the sweep status together with its index in the input.
type Entry struct {
	Index int
	Segment
}

// Key returns the ordering key, which is the midpoint Y of the segment. It does not change as the sweep line advances.
func (e Entry) Key() float64 {
	return e.MidY()
}

func (e Entry) String() string {
	return fmt.Sprintf("%d:%v", e.Index, e.Segment)
}

// compare orders entries by key and then by index.
func (a Entry) compare(b Entry) int {
	if ka, kb := a.Key(), b.Key(); ka < kb {
		return -1
	} else if kb < ka {
		return 1
	} else if a.Index < b.Index {
		return -1
	} else if b.Index < a.Index {
		return 1
	}
	return 0
}

type Node struct {
	parent, left, right *Node
	height              int

	Entry
}

// Prev returns the entry above, ie. the one with the next lower key. May return nil.
func (n *Node) Prev() *Node {
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right
		}
		return n
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// Next returns the entry below, ie. the one with the next higher key. May return nil.
func (n *Node) Next() *Node {
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left
		}
		return n
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

func (n *Node) balance() int {
	r := 0
	if n.left != nil {
		r -= n.left.height
	}
	if n.right != nil {
		r += n.right.height
	}
	return r
}

func (n *Node) updateHeight() {
	n.height = 0
	if n.left != nil {
		n.height = n.left.height
	}
	if n.right != nil && n.height < n.right.height {
		n.height = n.right.height
	}
	n.height++
}

func (n *Node) swapChild(a, b *Node) {
	if n.right == a {
		n.right = b
	} else {
		n.left = b
	}
	if b != nil {
		b.parent = n
	}
}

func (a *Node) rotateLeft() *Node {
	b := a.right
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.right = b.left; a.right != nil {
		a.right.parent = a
	}
	b.left = a
	return b
}

func (a *Node) rotateRight() *Node {
	b := a.left
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.left = b.right; a.left != nil {
		a.left.parent = a
	}
	b.right = a
	return b
}

func (n *Node) Print(w io.Writer, indent int) {
	if n.right != nil {
		n.right.Print(w, indent+1)
	} else if n.left != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
	fmt.Fprintf(w, "%v%v\n", strings.Repeat("  ", indent), n.Entry)
	if n.left != nil {
		n.left.Print(w, indent+1)
	} else if n.right != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
}

// Status is the sweep status: the segments currently crossing the sweep line, ordered by midpoint Y and index. It is an AVL tree and is not safe for concurrent use.
type Status struct {
	root *Node
	size int
	pool *sync.Pool
}

func NewStatus() *Status {
	return &Status{
		pool: &sync.Pool{New: func() any { return &Node{} }},
	}
}

func (s *Status) newNode(e Entry) *Node {
	n := s.pool.Get().(*Node)
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 1
	n.Entry = e
	return n
}

func (s *Status) returnNode(n *Node) {
	n.parent, n.left, n.right = nil, nil, nil
	s.pool.Put(n)
}

func (s *Status) find(e Entry) (*Node, int) {
	n := s.root
	for n != nil {
		cmp := e.compare(n.Entry)
		if cmp < 0 {
			if n.left == nil {
				return n, -1
			}
			n = n.left
		} else if 0 < cmp {
			if n.right == nil {
				return n, 1
			}
			n = n.right
		} else {
			break
		}
	}
	return n, 0
}

func (s *Status) rebalance(n *Node) {
	for {
		oheight := n.height
		if balance := n.balance(); balance == 2 {
			// right-heavy
			if n.right != nil && n.right.balance() < 0 {
				// right-left case
				n.right = n.right.rotateRight()
				n.right.right.updateHeight()
			}
			n = n.rotateLeft()
			n.left.updateHeight()
		} else if balance == -2 {
			// left-heavy
			if n.left != nil && n.left.balance() > 0 {
				// left-right case
				n.left = n.left.rotateLeft()
				n.left.left.updateHeight()
			}
			n = n.rotateRight()
			n.right.updateHeight()
		} else if balance < -2 || 2 < balance {
			panic("unbalanced status")
		}

		n.updateHeight()
		if n.parent == nil {
			s.root = n
			return
		}
		if oheight == n.height {
			return
		}
		n = n.parent
	}
}

// Len returns the number of entries.
func (s *Status) Len() int {
	return s.size
}

func (s *Status) String() string {
	if s.root == nil {
		return "nil"
	}

	sb := strings.Builder{}
	s.root.Print(&sb, 0)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}

// First returns the top-most entry (lowest key). May return nil.
func (s *Status) First() *Node {
	if s.root == nil {
		return nil
	}
	n := s.root
	for n.left != nil {
		n = n.left
	}
	return n
}

// Last returns the bottom-most entry (highest key). May return nil.
func (s *Status) Last() *Node {
	if s.root == nil {
		return nil
	}
	n := s.root
	for n.right != nil {
		n = n.right
	}
	return n
}

// Entries returns all entries from top to bottom.
func (s *Status) Entries() []Entry {
	es := make([]Entry, 0, s.size)
	for n := s.First(); n != nil; n = n.Next() {
		es = append(es, n.Entry)
	}
	return es
}

// Find returns the node of the segment with the given index. May return nil.
func (s *Status) Find(index int, seg Segment) *Node {
	n, cmp := s.find(Entry{index, seg})
	if n != nil && cmp == 0 {
		return n
	}
	return nil
}

// Neighbors returns the entries directly above and below n, either may be nil.
func (s *Status) Neighbors(n *Node) (*Node, *Node) {
	return n.Prev(), n.Next()
}

// Insert adds the segment with the given index and returns its node, which is the position in the status. Inserting a segment with the same key and index as an existing entry replaces it.
func (s *Status) Insert(index int, seg Segment) *Node {
	e := Entry{index, seg}
	if s.root == nil {
		s.root = s.newNode(e)
		s.size++
		return s.root
	}

	rebalance := false
	n, cmp := s.find(e)
	if cmp < 0 {
		n.left = s.newNode(e)
		n.left.parent = n
		rebalance = n.right == nil
		n = n.left
	} else if 0 < cmp {
		n.right = s.newNode(e)
		n.right.parent = n
		rebalance = n.left == nil
		n = n.right
	} else {
		// equal, replace
		n.Entry = e
		return n
	}
	s.size++

	if rebalance {
		// parent was a leaf and grew in height
		s.rebalance(n.parent)
	}
	return n
}

// Remove removes the segment with the given index and returns the entries that were directly above and below it. Both are nil if the segment was not present.
func (s *Status) Remove(index int, seg Segment) (*Entry, *Entry) {
	n := s.Find(index, seg)
	if n == nil {
		return nil, nil
	}

	var above, below *Entry
	if prev := n.Prev(); prev != nil {
		e := prev.Entry
		above = &e
	}
	if next := n.Next(); next != nil {
		e := next.Entry
		below = &e
	}
	s.remove(n)
	return above, below
}

// remove unlinks n. Entries are swapped down the tree, so that other node pointers may refer to a different entry afterwards.
func (s *Status) remove(n *Node) {
	var o *Node
	for {
		if n.height == 1 {
			// leaf, unlink
			o = n.parent
			if o != nil {
				o.swapChild(n, nil)
				s.rebalance(o)
			} else {
				s.root = nil
			}
			s.returnNode(n)
			s.size--
			return
		} else if n.right != nil {
			o = n.right
			for o.left != nil {
				o = o.left
			}
		} else if n.left != nil {
			o = n.left
			for o.right != nil {
				o = o.right
			}
		} else {
			panic("status node without children has height above one")
		}
		// move n's entry down to its in-order neighbour
		n.Entry, o.Entry = o.Entry, n.Entry
		n = o
	}
}
