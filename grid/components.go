package grid

import "fmt"

// Components finds every 4-connected region of non-wall cells.
// Regions are ordered by their first cell in row-major order, and cells
// within a region are listed in flood order from that first cell.
//
// Time:   O(rows×cols).
// Memory: O(rows×cols) for labels and output.
func (g *Grid) Components() [][]Coord {
	labels, order, n := g.label()
	comps := make([][]Coord, n)
	for _, idx := range order {
		l := labels[idx]
		comps[l] = append(comps[l], g.Coordinate(idx))
	}
	return comps
}

// Connected reports whether a and b lie in the same open region, which is
// exactly when any of the searches can find a path between them.
// Walls are connected to nothing, not even themselves.
// Returns ErrOutOfBounds when either coordinate is outside the grid.
func (g *Grid) Connected(a, b Coord) (bool, error) {
	if !g.InBounds(a) {
		return false, fmt.Errorf("%w: %s", ErrOutOfBounds, a)
	}
	if !g.InBounds(b) {
		return false, fmt.Errorf("%w: %s", ErrOutOfBounds, b)
	}
	labels, _, _ := g.label()
	la, lb := labels[g.Index(a)], labels[g.Index(b)]
	return la != NoIndex && la == lb, nil
}

// label floods the open cells region by region. It returns each cell's
// region number (NoIndex for walls), the open cells in flood order and the
// region count.
func (g *Grid) label() ([]int, []int, int) {
	labels := make([]int, len(g.roles))
	for i := range labels {
		labels[i] = NoIndex
	}
	order := make([]int, 0, len(g.roles))
	var (
		n   int
		buf [4]int
	)
	for i0 := range g.roles {
		if g.roles[i0] == RoleWall || labels[i0] != NoIndex {
			continue
		}
		labels[i0] = n
		// order doubles as the BFS queue for this region
		head := len(order)
		order = append(order, i0)
		for ; head < len(order); head++ {
			for _, v := range g.NeighborIndices(order[head], buf[:0]) {
				if g.roles[v] != RoleWall && labels[v] == NoIndex {
					labels[v] = n
					order = append(order, v)
				}
			}
		}
		n++
	}
	return labels, order, n
}
