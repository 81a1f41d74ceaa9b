package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// walker encapsulates the state shared by every strategy: the grid, its
// fresh overlay, the trace and the final path.
type walker struct {
	g     *grid.Grid
	ov    *grid.Overlay
	start int
	end   int
	opts  Options
	order []int // visitation trace
	path  []int
	found bool
	done  bool
	nbuf  [4]int
}

func newWalker(g *grid.Grid, start, end grid.Coord, o Options) *walker {
	g.Reset()
	return &walker{
		g:     g,
		ov:    g.Overlay(),
		start: g.Index(start),
		end:   g.Index(end),
		opts:  o,
		order: make([]int, 0, g.Size()),
	}
}

// neighbors returns idx's in-bounds neighbors in up, down, left, right
// order. The slice is reused by the next call.
func (w *walker) neighbors(idx int) []int {
	return w.g.NeighborIndices(idx, w.nbuf[:0])
}

// passable reports whether idx may be entered.
func (w *walker) passable(idx int) bool {
	return !w.g.IsWall(idx)
}

// trace appends idx to the visitation order and calls OnVisit. An OnVisit
// error ends the run, since idx has already left the frontier.
func (w *walker) trace(idx int) error {
	w.order = append(w.order, idx)
	c := w.g.Coordinate(idx)
	if err := w.opts.OnVisit(c, len(w.order)-1); err != nil {
		w.finish(nil)
		return fmt.Errorf("search: OnVisit error at %s: %w", c, err)
	}
	return nil
}

// succeed ends the run with the path recovered from Previous links.
func (w *walker) succeed() {
	w.finish(w.ov.PathTo(w.end))
}

// finish ends the run; a nil path means the end was not reached.
func (w *walker) finish(path []int) {
	w.done = true
	w.found = path != nil
	w.path = path
}

// result converts the run state into a Result.
func (w *walker) result(alg Algorithm, steps int) *Result {
	res := &Result{
		Algorithm: alg,
		Start:     w.g.Coordinate(w.start),
		End:       w.g.Coordinate(w.end),
		Visited:   make([]grid.Coord, len(w.order)),
		Path:      make([]grid.Coord, len(w.path)),
		Found:     w.found,
		Steps:     steps,
	}
	for i, idx := range w.order {
		res.Visited[i] = w.g.Coordinate(idx)
	}
	for i, idx := range w.path {
		res.Path[i] = w.g.Coordinate(idx)
	}
	return res
}
