package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Run executes alg between the start and end cells marked on g.
// Returns ErrMissingEndpoints when either is unset; otherwise behaves like
// the matching entry point (BFS, DFS, Dijkstra or AStar).
func Run(g *grid.Grid, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, okStart := g.Start()
	end, okEnd := g.End()
	if !okStart || !okEnd {
		return nil, fmt.Errorf("%w: start set=%t, end set=%t", ErrMissingEndpoints, okStart, okEnd)
	}
	return run(g, alg, start, end, opts)
}

func run(g *grid.Grid, alg Algorithm, start, end grid.Coord, opts []Option) (*Result, error) {
	s, err := NewStepper(g, alg, start, end, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run()
}
