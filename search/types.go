// Package search defines options, results and sentinel errors shared by the
// four grid searches.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrMissingEndpoints is returned by Run when the grid lacks a start or an end.
	ErrMissingEndpoints = errors.New("search: start and end cells are required")

	// ErrWallEndpoint is returned when start or end is a wall.
	ErrWallEndpoint = errors.New("search: endpoint is a wall")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStepLimit is returned when a run exceeds WithMaxSteps.
	ErrStepLimit = errors.New("search: step limit reached")

	// ErrUnknownAlgorithm is returned for an unrecognised algorithm name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects one of the search strategies.
type Algorithm int

const (
	// AlgorithmBFS is breadth-first search; shortest by edge count.
	AlgorithmBFS Algorithm = iota
	// AlgorithmDFS is depth-first search; first path found, not shortest.
	AlgorithmDFS
	// AlgorithmDijkstra is Dijkstra's algorithm with unit edge weights.
	AlgorithmDijkstra
	// AlgorithmAStar is A* with the Manhattan heuristic.
	AlgorithmAStar
)

var algorithmNames = [...]string{"bfs", "dfs", "dijkstra", "astar"}

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBFS, AlgorithmDFS, AlgorithmDijkstra, AlgorithmAStar}
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// MarshalText encodes the canonical name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(algorithmNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes a name accepted by ParseAlgorithm.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: bfs, dfs, dijkstra, astar, a*, a-star.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return AlgorithmBFS, nil
	case "dfs", "depth-first":
		return AlgorithmDFS, nil
	case "dijkstra":
		return AlgorithmDijkstra, nil
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search is created.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// OnVisit is called for every cell appended to the visitation trace,
	// with its zero-based position in the trace. An error aborts the search.
	OnVisit func(c grid.Coord, step int) error

	// MaxSteps, if > 0, caps the number of expansions. 0 means no limit.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with a background context, a no-op OnVisit
// hook and no step limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(grid.Coord, int) error { return nil },
		MaxSteps: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run for every traced cell.
func WithOnVisit(fn func(c grid.Coord, step int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxSteps stops the search with ErrStepLimit after n expansions.
//
//	n > 0: limit to n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Result is the outcome of one search:
//   - Visited: cells in the order the search expanded them.
//   - Path: cells from start to end inclusive; empty when Found is false.
//   - Steps: number of expansions performed.
type Result struct {
	Algorithm Algorithm    `json:"algorithm"`
	Start     grid.Coord   `json:"start"`
	End       grid.Coord   `json:"end"`
	Visited   []grid.Coord `json:"visited"`
	Path      []grid.Coord `json:"path"`
	Found     bool         `json:"found"`
	Steps     int          `json:"steps"`
}

// Cost returns the number of moves along Path, or -1 when no path was found.
func (r *Result) Cost() int {
	if !r.Found || len(r.Path) == 0 {
		return -1
	}
	return len(r.Path) - 1
}
