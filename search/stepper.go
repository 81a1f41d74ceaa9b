package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// expander is one search strategy driven a single expansion at a time.
type expander interface {
	// expand performs one unit of work and returns the traced cell index,
	// or grid.NoIndex when the step traced nothing.
	expand() (int, error)
	// frontier returns the cells currently waiting to be expanded.
	frontier() []int
}

// Stepper is a resumable search: every Step performs one expansion, so an
// external scheduler can pace or abandon the run between steps.
// A Stepper owns the grid's overlay until it is done; the grid must not be
// mutated or searched by anyone else meanwhile.
type Stepper struct {
	alg   Algorithm
	w     *walker
	x     expander
	steps int
}

// NewStepper validates the input, resets g and prepares alg from start to end.
// Returns ErrNilGrid, ErrOptionViolation, grid.ErrOutOfBounds, ErrWallEndpoint
// or ErrUnknownAlgorithm.
func NewStepper(g *grid.Grid, alg Algorithm, start, end grid.Coord, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, c := range []grid.Coord{start, end} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: endpoint %s", grid.ErrOutOfBounds, c)
		}
		if g.IsWall(g.Index(c)) {
			return nil, fmt.Errorf("%w: %s", ErrWallEndpoint, c)
		}
	}

	w := newWalker(g, start, end, o)
	s := &Stepper{alg: alg, w: w}
	switch alg {
	case AlgorithmBFS:
		s.x = newBFS(w)
	case AlgorithmDFS:
		s.x = newDFS(w)
	case AlgorithmDijkstra:
		s.x = newDijkstra(w)
	case AlgorithmAStar:
		s.x = newAStar(w)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	return s, nil
}

// Algorithm returns the strategy being run.
func (s *Stepper) Algorithm() Algorithm { return s.alg }

// Done reports whether the search has finished, found or exhausted.
func (s *Stepper) Done() bool { return s.w.done }

// Steps returns the number of expansions performed so far.
func (s *Stepper) Steps() int { return s.steps }

// Step performs one expansion. It returns the cell appended to the visitation
// trace and true, or false when the step traced nothing (goal detected ahead
// of marking, backtracking, or exhaustion). Calling Step on a finished
// Stepper is a no-op. Cancellation and the step limit are checked before
// any work and leave the Stepper resumable; an OnVisit error ends the run.
func (s *Stepper) Step() (grid.Coord, bool, error) {
	if s.w.done {
		return grid.Coord{}, false, nil
	}
	select {
	case <-s.w.opts.Ctx.Done():
		return grid.Coord{}, false, s.w.opts.Ctx.Err()
	default:
	}
	if s.w.opts.MaxSteps > 0 && s.steps >= s.w.opts.MaxSteps {
		return grid.Coord{}, false, fmt.Errorf("%w: %d", ErrStepLimit, s.w.opts.MaxSteps)
	}

	s.steps++
	idx, err := s.x.expand()
	if err != nil {
		return grid.Coord{}, false, err
	}
	if idx == grid.NoIndex {
		return grid.Coord{}, false, nil
	}
	return s.w.g.Coordinate(idx), true, nil
}

// Run steps until the search is done and returns the result. On error the
// partial result gathered so far is returned with it.
func (s *Stepper) Run() (*Result, error) {
	for !s.w.done {
		if _, _, err := s.Step(); err != nil {
			return s.Result(), err
		}
	}
	return s.Result(), nil
}

// Result snapshots the current trace and, once found, the path.
func (s *Stepper) Result() *Result {
	return s.w.result(s.alg, s.steps)
}

// Frontier returns the cells waiting to be expanded, for display between
// steps. Order is strategy specific: queue order for BFS, descent stack for
// DFS and priority order for Dijkstra and A*.
func (s *Stepper) Frontier() []grid.Coord {
	idx := s.x.frontier()
	out := make([]grid.Coord, len(idx))
	for i, v := range idx {
		out[i] = s.w.g.Coordinate(v)
	}
	return out
}
