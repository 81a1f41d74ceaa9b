// Package grid defines core types and sentinel errors for the grid model.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid would have no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadLayout indicates an unknown character in a layout.
	ErrBadLayout = errors.New("grid: unknown layout character")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrStartAlreadySet indicates a second start cell was requested.
	ErrStartAlreadySet = errors.New("grid: start cell already set")
	// ErrEndAlreadySet indicates a second end cell was requested.
	ErrEndAlreadySet = errors.New("grid: end cell already set")
	// ErrRoleTaken indicates the target cell already holds a conflicting role.
	ErrRoleTaken = errors.New("grid: cell already has a role")
	// ErrTooLarge indicates a grid with more than MaxCells cells.
	ErrTooLarge = errors.New("grid: grid has too many cells")
	// ErrBadProbability indicates an obstacle probability outside [0,1].
	ErrBadProbability = errors.New("grid: probability must be within [0,1]")
)

const (
	// Infinity is the distance and heuristic value of a cell the current
	// search has not reached.
	Infinity = math.MaxInt
	// MaxCells bounds rows×cols so that a grid and its overlay stay
	// allocatable.
	MaxCells = 1 << 26
	// NoIndex marks an absent cell index (no predecessor, no start, no end).
	NoIndex = -1
)

// Role is the persistent role of a cell. Roles are mutually exclusive.
type Role uint8

const (
	// RoleEmpty is a plain traversable cell.
	RoleEmpty Role = iota
	// RoleStart is the search origin.
	RoleStart
	// RoleEnd is the search target.
	RoleEnd
	// RoleWall is an impassable cell.
	RoleWall
)

// String returns the layout character of the role.
func (r Role) String() string {
	switch r {
	case RoleStart:
		return "S"
	case RoleEnd:
		return "E"
	case RoleWall:
		return "#"
	default:
		return "."
	}
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Cell is a read-only view of one grid position: its role flags together with
// the search state recorded by the most recent run.
type Cell struct {
	Coord
	IsStart   bool
	IsEnd     bool
	IsWall    bool
	IsVisited bool
	Distance  int // Infinity when unreached
	Heuristic int // Infinity unless set by A*
	// Previous is the predecessor on the best known path; valid only when
	// HasPrevious is true.
	Previous    Coord
	HasPrevious bool
}

// Grid is a rows×cols board of cells. Use New or Parse to build one.
// Roles live in roles[row*cols+col]; overlay carries the current run state.
type Grid struct {
	rows, cols int
	roles      []Role
	start, end int // NoIndex when unset
	overlay    *Overlay
}
