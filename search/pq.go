package search

// cellItem is a queued cell with its priority at push time.
// Ties are broken by the secondary key and then by row-major index, so
// selection never depends on heap internals.
type cellItem struct {
	idx  int // row-major index
	cost int // distance from start when pushed
	prio int // primary key: distance (Dijkstra) or distance+heuristic (A*)
	tie  int // secondary key: 0 (Dijkstra) or heuristic (A*)
}

// cellPQ is a min-heap of cellItem ordered by (prio, tie, idx).
// It follows the lazy decrease-key pattern: an improved cell is pushed again
// and the outdated entry is skipped when popped (its cost no longer matches).
type cellPQ []cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by priority, then tie key, then row-major index.
func (pq cellPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	if a.tie != b.tie {
		return a.tie < b.tie
	}
	return a.idx < b.idx
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a cellItem. Called by heap.Push.
func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(cellItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
