package search

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/gridpath/grid"
)

// dijkstraWalker selects the unvisited cell of least distance, ties broken by
// row-major index. Every edge weighs 1. The heap yields exactly the cell a
// full scan of the unvisited set would pick under that tie-break; cells at
// infinite distance are never queued, so an empty heap means the rest of the
// grid is unreachable.
type dijkstraWalker struct {
	*walker
	pq cellPQ
}

func newDijkstra(w *walker) *dijkstraWalker {
	d := &dijkstraWalker{walker: w, pq: make(cellPQ, 0, w.g.Size())}
	w.ov.Distance[w.start] = 0
	heap.Push(&d.pq, cellItem{idx: w.start, cost: 0, prio: 0})
	return d
}

// pop returns the next live entry, skipping stale and finalized ones.
func (d *dijkstraWalker) pop() (int, bool) {
	for d.pq.Len() > 0 {
		it := heap.Pop(&d.pq).(cellItem)
		if d.ov.Visited[it.idx] || it.cost != d.ov.Distance[it.idx] {
			continue
		}
		return it.idx, true
	}
	return grid.NoIndex, false
}

// expand finalizes the closest cell, traces it, stops on the end cell and
// otherwise relaxes its unvisited, non-wall neighbors.
func (d *dijkstraWalker) expand() (int, error) {
	u, ok := d.pop()
	if !ok {
		d.finish(nil)
		return grid.NoIndex, nil
	}
	d.ov.Visited[u] = true
	if err := d.trace(u); err != nil {
		return grid.NoIndex, err
	}
	if u == d.end {
		d.succeed()
		return u, nil
	}

	alt := d.ov.Distance[u] + 1
	for _, v := range d.neighbors(u) {
		if d.ov.Visited[v] || !d.passable(v) {
			continue
		}
		if alt < d.ov.Distance[v] {
			d.ov.Distance[v] = alt
			d.ov.Previous[v] = u
			heap.Push(&d.pq, cellItem{idx: v, cost: alt, prio: alt})
		}
	}
	return u, nil
}

// frontier returns live queued cells in selection order.
func (d *dijkstraWalker) frontier() []int {
	return liveItems(d.pq, d.ov)
}

// liveItems filters stale and finalized entries out of pq and sorts the rest
// in selection order.
func liveItems(pq cellPQ, ov *grid.Overlay) []int {
	live := make(cellPQ, 0, len(pq))
	for _, it := range pq {
		if !ov.Visited[it.idx] && it.cost == ov.Distance[it.idx] {
			live = append(live, it)
		}
	}
	sort.Sort(live)
	out := make([]int, len(live))
	for i, it := range live {
		out[i] = it.idx
	}
	return out
}

// Dijkstra runs Dijkstra's algorithm on g from start to end with unit edge
// weights. The path, when one exists, has minimum cost. Walls are never
// selected or traced; the end cell is traced when it is finalized.
// Complexity: O(V log V) time with V = rows×cols; O(V) memory.
func Dijkstra(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	return run(g, AlgorithmDijkstra, start, end, opts)
}
