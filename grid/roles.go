package grid

import "fmt"

// SetStart marks c as the start cell.
// Returns ErrOutOfBounds, ErrStartAlreadySet when a start exists, or
// ErrRoleTaken when c is the end or a wall. The grid is unchanged on error.
func (g *Grid) SetStart(c Coord) error {
	idx, err := g.claim(c)
	if err != nil {
		return err
	}
	if g.start != NoIndex {
		return fmt.Errorf("%w: at %s", ErrStartAlreadySet, g.Coordinate(g.start))
	}
	g.roles[idx] = RoleStart
	g.start = idx
	return nil
}

// SetEnd marks c as the end cell.
// Returns ErrOutOfBounds, ErrEndAlreadySet when an end exists, or
// ErrRoleTaken when c is the start or a wall. The grid is unchanged on error.
func (g *Grid) SetEnd(c Coord) error {
	idx, err := g.claim(c)
	if err != nil {
		return err
	}
	if g.end != NoIndex {
		return fmt.Errorf("%w: at %s", ErrEndAlreadySet, g.Coordinate(g.end))
	}
	g.roles[idx] = RoleEnd
	g.end = idx
	return nil
}

// claim validates that c is in bounds and currently empty.
func (g *Grid) claim(c Coord) (int, error) {
	if !g.InBounds(c) {
		return NoIndex, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	idx := g.Index(c)
	if r := g.roles[idx]; r != RoleEmpty {
		return NoIndex, fmt.Errorf("%w: %s is %s", ErrRoleTaken, c, r)
	}
	return idx, nil
}

// ClearStart removes the start role, if any.
func (g *Grid) ClearStart() {
	if g.start != NoIndex {
		g.roles[g.start] = RoleEmpty
		g.start = NoIndex
	}
}

// ClearEnd removes the end role, if any.
func (g *Grid) ClearEnd() {
	if g.end != NoIndex {
		g.roles[g.end] = RoleEmpty
		g.end = NoIndex
	}
}

// ToggleWall flips the wall flag of c and reports whether c is now a wall.
// Start and end cells cannot become walls: ErrRoleTaken.
func (g *Grid) ToggleWall(c Coord) (bool, error) {
	if !g.InBounds(c) {
		return false, fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	idx := g.Index(c)
	switch g.roles[idx] {
	case RoleStart, RoleEnd:
		return false, fmt.Errorf("%w: %s is %s", ErrRoleTaken, c, g.roles[idx])
	case RoleWall:
		g.roles[idx] = RoleEmpty
		return false, nil
	default:
		g.roles[idx] = RoleWall
		return true, nil
	}
}

// Mark applies the click sequence of an interactive board: the first mark
// sets the start, the second the end, and later marks toggle walls.
// It returns the role c holds afterwards.
func (g *Grid) Mark(c Coord) (Role, error) {
	switch {
	case g.start == NoIndex:
		if err := g.SetStart(c); err != nil {
			return RoleEmpty, err
		}
		return RoleStart, nil
	case g.end == NoIndex:
		if err := g.SetEnd(c); err != nil {
			return RoleEmpty, err
		}
		return RoleEnd, nil
	default:
		wall, err := g.ToggleWall(c)
		if err != nil {
			return RoleEmpty, err
		}
		if wall {
			return RoleWall, nil
		}
		return RoleEmpty, nil
	}
}

// Clear returns a brand-new grid of the same dimensions: no roles and no
// search state. g itself is left untouched.
func (g *Grid) Clear() *Grid {
	return MustNew(g.rows, g.cols)
}

// Clear is the package-level form of g.Clear.
func Clear(g *Grid) *Grid {
	return g.Clear()
}
