// Package gridapi exposes grid sessions and searches over HTTP.
package gridapi

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// CreateGridRequest creates a grid either from dimensions or from an ASCII
// layout, one string per row. Omitted dimensions fall back to defaults.
type CreateGridRequest struct {
	Rows   int      `json:"rows" binding:"omitempty,min=1"`
	Cols   int      `json:"cols" binding:"omitempty,min=1"`
	Layout []string `json:"layout"`
}

// CellRequest addresses a single cell.
type CellRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// Coord converts the request into a grid coordinate.
func (r CellRequest) Coord() grid.Coord {
	return grid.Coord{Row: *r.Row, Col: *r.Col}
}

// ObstaclesRequest asks for random walls. A nil probability uses the
// default, a zero seed draws a random one.
type ObstaclesRequest struct {
	Probability *float64 `json:"probability"`
	Seed        int64    `json:"seed"`
}

// GridResponse is a snapshot of a grid session.
type GridResponse struct {
	ID     uuid.UUID    `json:"id"`
	Rows   int          `json:"rows"`
	Cols   int          `json:"cols"`
	Start  *grid.Coord  `json:"start,omitempty"`
	End    *grid.Coord  `json:"end,omitempty"`
	Walls  []grid.Coord `json:"walls"`
	Layout []string     `json:"layout"`
}

// WallResponse reports the state of a toggled cell.
type WallResponse struct {
	grid.Coord
	Wall bool `json:"wall"`
}

// MarkResponse reports the role a click assigned.
type MarkResponse struct {
	grid.Coord
	Role string `json:"role"`
}

// ObstaclesResponse reports how many walls were added.
type ObstaclesResponse struct {
	Added int          `json:"added"`
	Grid  GridResponse `json:"grid"`
}

// RegionsResponse summarizes the open regions of a grid. Connected is set
// only when both start and end are marked.
type RegionsResponse struct {
	Count     int   `json:"count"`
	Sizes     []int `json:"sizes"`
	Connected *bool `json:"connected,omitempty"`
}

// SearchResponse carries a search trace and path.
type SearchResponse struct {
	Algorithm search.Algorithm `json:"algorithm"`
	Found     bool             `json:"found"`
	Visited   []grid.Coord     `json:"visited"`
	Path      []grid.Coord     `json:"path"`
	Cost      int              `json:"cost"`
	Steps     int              `json:"steps"`
	Message   string           `json:"message,omitempty"`
}
