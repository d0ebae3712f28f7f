package pathfind

import "container/heap"

// openHeap is a min-heap of open nodes keyed by an integer priority.
// The search uses lazy decrease-key: a position may be present under
// several entries at once, and the cost map decides which ones still
// matter when they surface.
type openHeap []heapEntry

type heapEntry struct {
	node     openNode
	priority int
}

func (h openHeap) Len() int           { return len(h) }
func (h openHeap) Less(i, j int) bool { return h[i].priority < h[j].priority }
func (h openHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x any) {
	*h = append(*h, x.(heapEntry))
}

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// push inserts a node with the given priority.
func (h *openHeap) push(node openNode, priority int) {
	heap.Push(h, heapEntry{node: node, priority: priority})
}

// pop removes and returns the minimum-priority node. The second return
// is false when the heap is empty.
func (h *openHeap) pop() (openNode, bool) {
	if h.Len() == 0 {
		return openNode{}, false
	}
	return heap.Pop(h).(heapEntry).node, true
}
