package solve

import (
	"container/heap"

	"github.com/runfalk/burrow/grid"
)

// frontier is an indexed min-cost priority queue of arrangements.
//
// Arrangements have equality and hashing but no total order, so they
// cannot live in the heap directly. The heap holds (cost, seq) keys and
// the arrangements sit in a side table indexed by seq; ties on cost
// break strictly by ascending sequence number, never by arrangement
// content, which makes pop order fully deterministic
// (first-discovered-first-returned).
type frontier struct {
	heap    entryHeap
	grids   map[uint64]*grid.Grid
	nextSeq uint64
}

// entry is one heap element: the accumulated cost of an arrangement and
// the sequence number under which it was pushed.
type entry struct {
	cost int64
	seq  uint64
}

func newFrontier() *frontier {
	return &frontier{grids: make(map[uint64]*grid.Grid)}
}

// push enqueues g at the given accumulated cost.
func (f *frontier) push(g *grid.Grid, cost int64) {
	f.grids[f.nextSeq] = g
	heap.Push(&f.heap, entry{cost: cost, seq: f.nextSeq})
	f.nextSeq++
}

// pop dequeues the cheapest arrangement, removing it from the side
// table. The third result is false when the frontier is empty.
func (f *frontier) pop() (*grid.Grid, int64, bool) {
	if f.heap.Len() == 0 {
		return nil, 0, false
	}
	e := heap.Pop(&f.heap).(entry)
	g := f.grids[e.seq]
	delete(f.grids, e.seq)

	return g, e.cost, true
}

// entryHeap implements heap.Interface over entries, ordered by cost
// ascending with sequence number as the deterministic tiebreak.
type entryHeap []entry

// Len returns the number of items in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less orders by cost, then by discovery sequence.
func (h entryHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
