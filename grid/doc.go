// Package grid models the fixed-size board that the search algorithms run on.
//
// What:
//
//   - Grid owns a rows×cols array of cells stored row-major.
//   - Each cell carries one persistent Role: empty, start, end or wall.
//   - A separate Overlay holds the per-run search state (visited flag,
//     distance, heuristic, predecessor index). Reset installs a fresh one.
//   - Neighbors are 4-connected and always returned as up, down, left, right.
//
// Invariants:
//
//   - At most one start cell and at most one end cell.
//   - A wall is never the start or the end.
//   - Dimensions never change after New.
//
// Role mutations that would break an invariant are rejected with a sentinel
// error and leave the grid untouched.
//
// Layouts:
//
// Parse and String share a small ASCII alphabet, handy in tests:
//
//	S.#
//	..#
//	..E
//
// where '.' is empty, '#' a wall, 'S' the start and 'E' the end.
//
// Concurrency:
//
// A Grid is not safe for concurrent use. Callers must not mutate it while a
// search is running against it.
package grid
