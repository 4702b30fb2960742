package astar

import (
	"cmp"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/dungeonpath/tilemap"
)

// entry is a frontier record. cost is the cumulative cost at push time and
// lets the runner recognize stale entries after a later improvement.
type entry[C Cost] struct {
	priority C
	cost     C
	pos      tilemap.Position
}

// frontier is a min-heap of entries ordered by priority, then position.
// Duplicates for one position may coexist; consumers skip stale ones.
type frontier[C Cost] struct {
	h *heap.Heap[entry[C]]
}

func newFrontier[C Cost]() *frontier[C] {
	return &frontier[C]{h: heap.New(entryLess[C])}
}

// entryLess orders by ascending priority using a total order, then by
// ascending position so equal-priority ties resolve the same way every run.
func entryLess[C Cost](a, b entry[C]) bool {
	if c := cmp.Compare(a.priority, b.priority); c != 0 {
		return c < 0
	}

	return a.pos < b.pos
}

func (f *frontier[C]) push(e entry[C]) { f.h.Push(e) }

func (f *frontier[C]) pop() (entry[C], bool) { return f.h.Pop() }

func (f *frontier[C]) len() int { return f.h.Size() }
