package search

import (
	"container/heap"
	"sort"

	"github.com/lixenwraith/maze-solver/grid"
)

// FrontierKind selects the frontier implementation
type FrontierKind int

const (
	// FrontierSort appends and fully re-sorts (stable) after every expansion
	FrontierSort FrontierKind = iota
	// FrontierHeap is a binary heap keyed by (distance, insertion sequence), pop-order equivalent to FrontierSort
	FrontierHeap
)

func (k FrontierKind) String() string {
	switch k {
	case FrontierSort:
		return "sort"
	case FrontierHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// ParseFrontierKind maps "sort" or "heap" to a FrontierKind
func ParseFrontierKind(s string) (FrontierKind, bool) {
	switch s {
	case "sort", "":
		return FrontierSort, true
	case "heap":
		return FrontierHeap, true
	default:
		return FrontierSort, false
	}
}

// frontierItem is a discovered, not yet expanded cell
type frontierItem struct {
	point    grid.Point
	distance float64
	seq      int
}

// frontier is the ordered working set owned by one run
type frontier interface {
	push(item frontierItem)
	// settle restores ordering after a round of pushes
	settle()
	pop() (frontierItem, bool)
	len() int
	// points lists queued cells in pop order, for snapshots and tests
	points() []grid.Point
}

func newFrontier(kind FrontierKind, capacity int) frontier {
	if kind == FrontierHeap {
		h := make(itemHeap, 0, capacity)
		return &heapFrontier{items: h}
	}
	return &sortFrontier{items: make([]frontierItem, 0, capacity)}
}

// --- Sorted slice ---

type sortFrontier struct {
	items []frontierItem
}

func (f *sortFrontier) push(item frontierItem) {
	f.items = append(f.items, item)
}

// settle performs the stable full re-sort; equal distances keep insertion order
func (f *sortFrontier) settle() {
	sort.SliceStable(f.items, func(i, j int) bool {
		return f.items[i].distance < f.items[j].distance
	})
}

func (f *sortFrontier) pop() (frontierItem, bool) {
	if len(f.items) == 0 {
		return frontierItem{}, false
	}
	item := f.items[0]
	f.items = f.items[1:]
	return item, true
}

func (f *sortFrontier) len() int { return len(f.items) }

func (f *sortFrontier) points() []grid.Point {
	out := make([]grid.Point, len(f.items))
	for i, it := range f.items {
		out[i] = it.point
	}
	return out
}

// --- Heap ---

type itemHeap []frontierItem

func (h itemHeap) Len() int { return len(h) }
func (h itemHeap) Less(i, j int) bool {
	if h[i].distance != h[j].distance {
		return h[i].distance < h[j].distance
	}
	return h[i].seq < h[j].seq
}
func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) {
	*h = append(*h, x.(frontierItem))
}

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

type heapFrontier struct {
	items itemHeap
}

func (f *heapFrontier) push(item frontierItem) {
	heap.Push(&f.items, item)
}

// settle is a no-op: the heap is ordered on every push
func (f *heapFrontier) settle() {}

func (f *heapFrontier) pop() (frontierItem, bool) {
	if f.items.Len() == 0 {
		return frontierItem{}, false
	}
	return heap.Pop(&f.items).(frontierItem), true
}

func (f *heapFrontier) len() int { return f.items.Len() }

func (f *heapFrontier) points() []grid.Point {
	sorted := make(itemHeap, len(f.items))
	copy(sorted, f.items)
	sort.Sort(sorted)
	out := make([]grid.Point, len(sorted))
	for i, it := range sorted {
		out[i] = it.point
	}
	return out
}
