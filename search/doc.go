// Package search finds paths between two cells of a grid.Grid.
//
// Four strategies share one contract, (grid, start, end) → Result:
//
//   - BFS:      queue, cells marked visited on enqueue; shortest by edge count.
//   - DFS:      explicit-stack descent; first path found, not shortest.
//   - Dijkstra: least-distance selection, unit weights; shortest.
//   - AStar:    least distance+Manhattan selection; shortest.
//
// Result.Visited is the order in which cells were expanded, for staged
// display. Result.Path runs from start to end inclusive and is empty when the
// end is unreachable; that outcome is reported through Result.Found, not as
// an error.
//
// Determinism:
//
// Neighbors are always tried up, down, left, right. Dijkstra breaks distance
// ties by row-major index; A* breaks score ties by lower heuristic, then by
// row-major index. Rerunning a search on an unchanged grid gives identical
// Visited and Path.
//
// State:
//
// Every search resets the grid first and records visited flags, distances,
// heuristics and predecessors in the grid's fresh Overlay, where callers may
// inspect them afterwards.
//
// Stepping:
//
// NewStepper returns a resumable search that performs one expansion per Step,
// for callers that pace or cancel a run from outside. The entry points and
// Run drive a Stepper to completion.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked once per expansion.
//   - WithOnVisit(fn)    hook per traced cell; an error aborts the run.
//   - WithMaxSteps(n)    cap on expansions (ErrStepLimit).
//
// Errors:
//
//   - ErrNilGrid, ErrMissingEndpoints, ErrWallEndpoint, grid.ErrOutOfBounds
//     for invalid input.
//   - ErrOptionViolation for bad options, ErrUnknownAlgorithm for bad names.
//   - ErrStepLimit, context errors and wrapped OnVisit errors abort a run;
//     the partial Result is returned alongside.
package search
