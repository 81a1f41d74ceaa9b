package search

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/zyedidia/generic/mapset"
)

// astarWalker keeps an explicit open set (discovered, not yet expanded) and
// closed set (expanded). Selection is by least distance+heuristic, then least
// heuristic, then row-major index. The Manhattan heuristic is consistent on a
// 4-connected unit grid, so a closed cell is never improved later.
type astarWalker struct {
	*walker
	pq     cellPQ
	open   mapset.Set[int]
	closed mapset.Set[int]
	goal   grid.Coord
}

func newAStar(w *walker) *astarWalker {
	a := &astarWalker{
		walker: w,
		pq:     make(cellPQ, 0, w.g.Size()),
		open:   mapset.New[int](),
		closed: mapset.New[int](),
		goal:   w.g.Coordinate(w.end),
	}
	w.ov.Distance[w.start] = 0
	a.discover(w.start, grid.NoIndex, 0)
	return a
}

// heuristic is the Manhattan distance from idx to the end cell.
func (a *astarWalker) heuristic(idx int) int {
	return grid.Manhattan(a.g.Coordinate(idx), a.goal)
}

// discover records a new best distance for idx and (re)queues it.
func (a *astarWalker) discover(idx, parent, dist int) {
	h := a.heuristic(idx)
	a.ov.Distance[idx] = dist
	a.ov.Heuristic[idx] = h
	a.ov.Previous[idx] = parent
	a.open.Put(idx)
	heap.Push(&a.pq, cellItem{idx: idx, cost: dist, prio: dist + h, tie: h})
}

// pop returns the best open cell, skipping stale heap entries.
func (a *astarWalker) pop() (int, bool) {
	for a.pq.Len() > 0 {
		it := heap.Pop(&a.pq).(cellItem)
		if a.closed.Has(it.idx) || it.cost != a.ov.Distance[it.idx] {
			continue
		}
		return it.idx, true
	}
	return grid.NoIndex, false
}

// expand moves the best open cell to the closed set, traces it, stops on the
// end cell and otherwise relaxes its non-closed, non-wall neighbors.
func (a *astarWalker) expand() (int, error) {
	u, ok := a.pop()
	if !ok {
		a.finish(nil)
		return grid.NoIndex, nil
	}
	a.open.Remove(u)
	a.closed.Put(u)
	a.ov.Visited[u] = true
	if err := a.trace(u); err != nil {
		return grid.NoIndex, err
	}
	if u == a.end {
		a.succeed()
		return u, nil
	}

	tentative := a.ov.Distance[u] + 1
	for _, v := range a.neighbors(u) {
		if a.closed.Has(v) || !a.passable(v) {
			continue
		}
		if tentative < a.ov.Distance[v] {
			a.discover(v, u, tentative)
		}
	}
	return u, nil
}

// frontier returns the open set in selection order.
func (a *astarWalker) frontier() []int {
	items := make(cellPQ, 0, a.open.Size())
	a.open.Each(func(idx int) {
		d, h := a.ov.Distance[idx], a.ov.Heuristic[idx]
		items = append(items, cellItem{idx: idx, cost: d, prio: d + h, tie: h})
	})
	sort.Sort(items)
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.idx
	}
	return out
}

// AStar runs A* on g from start to end with the Manhattan heuristic. The path,
// when one exists, has minimum cost. The end cell is traced when expanded.
// Complexity: O(V log V) time with V = rows×cols; O(V) memory.
func AStar(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	return run(g, AlgorithmAStar, start, end, opts)
}
