package grid

// Overlay is the ephemeral state of one search run, indexed row-major.
// Previous holds predecessor indices (NoIndex when none); it is a relation
// between cells, never ownership.
type Overlay struct {
	Visited   []bool
	Distance  []int
	Heuristic []int
	Previous  []int
}

func newOverlay(n int) *Overlay {
	o := &Overlay{
		Visited:   make([]bool, n),
		Distance:  make([]int, n),
		Heuristic: make([]int, n),
		Previous:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		o.Distance[i] = Infinity
		o.Heuristic[i] = Infinity
		o.Previous[i] = NoIndex
	}
	return o
}

// Reset discards all search state by installing a fresh overlay.
// Roles (start, end, walls) are untouched.
// Complexity: O(rows×cols).
func (g *Grid) Reset() {
	g.overlay = newOverlay(len(g.roles))
}

// ResetSearchState is the package-level form of g.Reset.
func ResetSearchState(g *Grid) {
	g.Reset()
}

// Overlay returns the search state of the most recent run.
func (g *Grid) Overlay() *Overlay {
	return g.overlay
}

// PathTo walks Previous links from idx back to the first cell without a
// predecessor and returns the indices in forward order.
func (o *Overlay) PathTo(idx int) []int {
	var path []int
	for cur := idx; cur != NoIndex; cur = o.Previous[cur] {
		path = append(path, cur)
	}
	// reverse to get origin → idx
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
