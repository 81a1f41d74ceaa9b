package search

import "github.com/katalvlaran/gridpath/grid"

// dfsFrame is one level of the descent: a cell and its next neighbor to try.
type dfsFrame struct {
	idx  int
	nbrs [4]int
	n    int // number of neighbors in nbrs
	next int // position of the next neighbor to try
}

// dfsWalker is depth-first search on an explicit stack. It behaves exactly
// like the recursive form: the end cell is detected before marking, every
// other cell is marked and traced before its neighbors are tried, neighbors
// are tried in fixed order and the first successful descent wins.
type dfsWalker struct {
	*walker
	stack   []dfsFrame
	started bool
}

func newDFS(w *walker) *dfsWalker {
	return &dfsWalker{walker: w}
}

// enter descends into idx. Reaching the end yields the stack plus the end
// as the path; any other cell is marked, traced and pushed.
func (d *dfsWalker) enter(idx int) (int, error) {
	if idx == d.end {
		path := make([]int, 0, len(d.stack)+1)
		for _, f := range d.stack {
			path = append(path, f.idx)
		}
		d.finish(append(path, idx))
		return grid.NoIndex, nil
	}

	d.ov.Visited[idx] = true
	d.ov.Distance[idx] = len(d.stack)
	if err := d.trace(idx); err != nil {
		return grid.NoIndex, err
	}
	f := dfsFrame{idx: idx}
	f.n = len(d.g.NeighborIndices(idx, f.nbrs[:0]))
	d.stack = append(d.stack, f)
	return idx, nil
}

// expand enters the next unvisited, non-wall neighbor of the deepest cell,
// backtracking through exhausted frames first.
func (d *dfsWalker) expand() (int, error) {
	if !d.started {
		d.started = true
		return d.enter(d.start)
	}
	for len(d.stack) > 0 {
		top := &d.stack[len(d.stack)-1]
		for top.next < top.n {
			v := top.nbrs[top.next]
			top.next++
			if d.ov.Visited[v] || !d.passable(v) {
				continue
			}
			d.ov.Previous[v] = top.idx
			return d.enter(v)
		}
		d.stack = d.stack[:len(d.stack)-1]
	}
	d.finish(nil)
	return grid.NoIndex, nil
}

func (d *dfsWalker) frontier() []int {
	out := make([]int, len(d.stack))
	for i, f := range d.stack {
		out[i] = f.idx
	}
	return out
}

// DFS runs depth-first search on g from start to end and returns the first
// path found. The path is valid but not necessarily shortest; it depends on
// the up, down, left, right neighbor order. The end cell never appears in
// Result.Visited because it is recognised before being marked.
// Complexity: O(rows×cols) time and memory; no recursion.
func DFS(g *grid.Grid, start, end grid.Coord, opts ...Option) (*Result, error) {
	return run(g, AlgorithmDFS, start, end, opts)
}
