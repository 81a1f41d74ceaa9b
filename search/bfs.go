package search

import "github.com/katalvlaran/gridpath/grid"

// bfsWalker is breadth-first search with early marking: a cell is marked
// visited when it enters the queue, so it is never enqueued twice.
type bfsWalker struct {
	*walker
	queue []int
	head  int
}

func newBFS(w *walker) *bfsWalker {
	b := &bfsWalker{walker: w, queue: make([]int, 0, w.g.Size())}
	b.enqueue(w.start, grid.NoIndex)
	return b
}

// enqueue marks idx visited, records its parent and depth, and appends it.
func (b *bfsWalker) enqueue(idx, parent int) {
	b.ov.Visited[idx] = true
	b.ov.Previous[idx] = parent
	if parent == grid.NoIndex {
		b.ov.Distance[idx] = 0
	} else {
		b.ov.Distance[idx] = b.ov.Distance[parent] + 1
	}
	b.queue = append(b.queue, idx)
}

// expand dequeues one cell, traces it, stops on the end cell and otherwise
// enqueues every unvisited, non-wall neighbor.
func (b *bfsWalker) expand() (int, error) {
	if b.head == len(b.queue) {
		b.finish(nil)
		return grid.NoIndex, nil
	}
	u := b.queue[b.head]
	b.head++
	if err := b.trace(u); err != nil {
		return grid.NoIndex, err
	}
	if u == b.end {
		b.succeed()
		return u, nil
	}
	for _, v := range b.neighbors(u) {
		if !b.ov.Visited[v] && b.passable(v) {
			b.enqueue(v, u)
		}
	}
	if b.head == len(b.queue) {
		b.finish(nil)
	}
	return u, nil
}

func (b *bfsWalker) frontier() []int {
	return append([]int(nil), b.queue[b.head:]...)
}

// BFS runs breadth-first search on g from start to end. The path, when one
// exists, is a shortest path by edge count. An unreachable end is not an
// error: Result.Found is false and Result.Visited holds every reachable cell.
// Complexity: O(rows×cols) time and memory.
func BFS(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	return run(g, AlgorithmBFS, start, end, opts)
}
