package grid

import (
	"fmt"
	"strings"
)

// neighborOffsets lists (dRow, dCol) in the fixed order up, down, left, right.
// Search tie-breaks depend on this order.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New constructs an empty rows×cols grid with no start, end or walls.
// Returns ErrEmptyGrid if rows or cols is below one and ErrTooLarge if
// rows×cols exceeds MaxCells.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, cols)
	}
	// division keeps the check free of rows*cols overflow
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d, limit %d cells", ErrTooLarge, rows, cols, MaxCells)
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		roles: make([]Role, rows*cols),
		start: NoIndex,
		end:   NoIndex,
	}
	g.overlay = newOverlay(rows * cols)

	return g, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(rows, cols int) *Grid {
	g, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return g
}

// Parse builds a grid from an ASCII layout, one line per row.
// Blank lines and surrounding whitespace are ignored.
//
//	'.' empty   '#' wall   'S' start   'E' end
func Parse(layout string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])
	for _, line := range lines {
		if len(line) != cols {
			return nil, ErrNonRectangular
		}
	}

	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		for c, ch := range line {
			at := Coord{Row: r, Col: c}
			switch ch {
			case '.':
			case '#':
				_, err = g.ToggleWall(at)
			case 'S':
				err = g.SetStart(at)
			case 'E':
				err = g.SetEnd(at)
			default:
				err = fmt.Errorf("%w: %q at %s", ErrBadLayout, ch, at)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.roles) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index. c must be in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Role returns the role at index idx.
func (g *Grid) Role(idx int) Role {
	return g.roles[idx]
}

// IsWall reports whether the cell at index idx is a wall.
func (g *Grid) IsWall(idx int) bool {
	return g.roles[idx] == RoleWall
}

// Neighbors returns the in-bounds cells directly up, down, left and right of
// c, in that order. Walls are included; filtering is the caller's concern.
// Returns nil when c is out of bounds.
func (g *Grid) Neighbors(c Coord) []Coord {
	if !g.InBounds(c) {
		return nil
	}
	var buf [4]int
	idx := g.NeighborIndices(g.Index(c), buf[:0])
	out := make([]Coord, len(idx))
	for i, n := range idx {
		out[i] = g.Coordinate(n)
	}
	return out
}

// NeighborIndices appends the row-major indices of idx's neighbors to buf,
// in the same order as Neighbors, and returns the extended slice.
func (g *Grid) NeighborIndices(idx int, buf []int) []int {
	r, c := idx/g.cols, idx%g.cols
	for _, d := range neighborOffsets {
		nr, nc := r+d[0], c+d[1]
		if nr < 0 || nr >= g.rows || nc < 0 || nc >= g.cols {
			continue
		}
		buf = append(buf, nr*g.cols+nc)
	}
	return buf
}

// Cell returns a read-only view of the cell at c, including the search state
// of the last run. Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) Cell(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	idx := g.Index(c)
	role := g.roles[idx]
	cell := Cell{
		Coord:     c,
		IsStart:   role == RoleStart,
		IsEnd:     role == RoleEnd,
		IsWall:    role == RoleWall,
		IsVisited: g.overlay.Visited[idx],
		Distance:  g.overlay.Distance[idx],
		Heuristic: g.overlay.Heuristic[idx],
	}
	if p := g.overlay.Previous[idx]; p != NoIndex {
		cell.Previous = g.Coordinate(p)
		cell.HasPrevious = true
	}
	return cell, nil
}

// Start returns the start cell, if one is set.
func (g *Grid) Start() (Coord, bool) {
	if g.start == NoIndex {
		return Coord{}, false
	}
	return g.Coordinate(g.start), true
}

// End returns the end cell, if one is set.
func (g *Grid) End() (Coord, bool) {
	if g.end == NoIndex {
		return Coord{}, false
	}
	return g.Coordinate(g.end), true
}

// Walls returns every wall cell in row-major order.
func (g *Grid) Walls() []Coord {
	var out []Coord
	for i, r := range g.roles {
		if r == RoleWall {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// String renders the grid with the Parse alphabet, rows separated by '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.roles) + g.rows)
	for i, r := range g.roles {
		if i > 0 && i%g.cols == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}
