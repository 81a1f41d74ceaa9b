package gridapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Controller serves grid sessions.
type Controller struct {
	store       *Store
	defaultRows int
	defaultCols int
}

// NewController initializes a Controller. Grids created without explicit
// dimensions are rows×cols.
func NewController(store *Store, rows, cols int) *Controller {
	return &Controller{
		store:       store,
		defaultRows: rows,
		defaultCols: cols,
	}
}

// RegisterPublic registers the grid routes.
func (gc *Controller) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/grids", gc.create)
	grids := route.Group("/grids/:id")
	{
		grids.GET("", gc.snapshot)
		grids.DELETE("", gc.remove)
		grids.POST("/start", gc.setStart)
		grids.DELETE("/start", gc.clearStart)
		grids.POST("/end", gc.setEnd)
		grids.DELETE("/end", gc.clearEnd)
		grids.POST("/walls", gc.toggleWall)
		grids.POST("/mark", gc.mark)
		grids.POST("/clear", gc.clear)
		grids.POST("/obstacles", gc.obstacles)
		grids.GET("/regions", gc.regions)
		grids.POST("/search/:algorithm", gc.search)
	}
}

// create handles grid creation from dimensions or a layout.
func (gc *Controller) create(ctx *gin.Context) {
	var request CreateGridRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		g   *grid.Grid
		err error
	)
	if len(request.Layout) > 0 {
		layout := strings.Join(request.Layout, "\n")
		if err := gc.store.Fits(layoutSize(layout)); err != nil {
			respondError(ctx, err)
			return
		}
		g, err = grid.Parse(layout)
	} else {
		rows, cols := request.Rows, request.Cols
		if rows == 0 {
			rows = gc.defaultRows
		}
		if cols == 0 {
			cols = gc.defaultCols
		}
		if err := gc.store.Fits(rows, cols); err != nil {
			respondError(ctx, err)
			return
		}
		g, err = grid.New(rows, cols)
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	id, err := gc.store.Add(g)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toGridResponse(id, g))
}

// snapshot returns the current state of a grid.
func (gc *Controller) snapshot(ctx *gin.Context) {
	gc.withGrid(ctx, func(id uuid.UUID, g *grid.Grid) (any, error) {
		return toGridResponse(id, g), nil
	})
}

// remove drops a session.
func (gc *Controller) remove(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	if err := gc.store.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (gc *Controller) setStart(ctx *gin.Context) {
	gc.mutateCell(ctx, func(g *grid.Grid, c grid.Coord) (any, error) {
		return nil, g.SetStart(c)
	})
}

func (gc *Controller) setEnd(ctx *gin.Context) {
	gc.mutateCell(ctx, func(g *grid.Grid, c grid.Coord) (any, error) {
		return nil, g.SetEnd(c)
	})
}

func (gc *Controller) clearStart(ctx *gin.Context) {
	gc.withGrid(ctx, func(id uuid.UUID, g *grid.Grid) (any, error) {
		g.ClearStart()
		return toGridResponse(id, g), nil
	})
}

func (gc *Controller) clearEnd(ctx *gin.Context) {
	gc.withGrid(ctx, func(id uuid.UUID, g *grid.Grid) (any, error) {
		g.ClearEnd()
		return toGridResponse(id, g), nil
	})
}

func (gc *Controller) toggleWall(ctx *gin.Context) {
	gc.mutateCell(ctx, func(g *grid.Grid, c grid.Coord) (any, error) {
		wall, err := g.ToggleWall(c)
		if err != nil {
			return nil, err
		}
		return WallResponse{Coord: c, Wall: wall}, nil
	})
}

// mark applies the click sequence: start, then end, then wall toggles.
func (gc *Controller) mark(ctx *gin.Context) {
	gc.mutateCell(ctx, func(g *grid.Grid, c grid.Coord) (any, error) {
		role, err := g.Mark(c)
		if err != nil {
			return nil, err
		}
		return MarkResponse{Coord: c, Role: role.String()}, nil
	})
}

// clear replaces the session grid with a blank one of the same size.
func (gc *Controller) clear(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var out GridResponse
	err := gc.store.Do(id, func(g *grid.Grid) (*grid.Grid, error) {
		fresh := g.Clear()
		out = toGridResponse(id, fresh)
		return fresh, nil
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, out)
}

func (gc *Controller) obstacles(ctx *gin.Context) {
	var request ObstaclesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := grid.DefaultObstacleProbability
	if request.Probability != nil {
		p = *request.Probability
	}
	var opts []grid.ObstacleOption
	if request.Seed != 0 {
		opts = append(opts, grid.WithSeed(request.Seed))
	}

	gc.withGrid(ctx, func(id uuid.UUID, g *grid.Grid) (any, error) {
		added, err := g.GenerateObstacles(p, opts...)
		if err != nil {
			return nil, err
		}
		return ObstaclesResponse{Added: added, Grid: toGridResponse(id, g)}, nil
	})
}

// regions reports the open regions and whether start and end share one.
func (gc *Controller) regions(ctx *gin.Context) {
	gc.withGrid(ctx, func(_ uuid.UUID, g *grid.Grid) (any, error) {
		comps := g.Components()
		out := RegionsResponse{Count: len(comps), Sizes: make([]int, len(comps))}
		for i, c := range comps {
			out.Sizes[i] = len(c)
		}
		s, okStart := g.Start()
		e, okEnd := g.End()
		if okStart && okEnd {
			connected, err := g.Connected(s, e)
			if err != nil {
				return nil, err
			}
			out.Connected = &connected
		}
		return out, nil
	})
}

// search runs the named algorithm between the grid's start and end. An
// optional max_steps query parameter bounds the run; hitting it yields the
// partial trace.
func (gc *Controller) search(ctx *gin.Context) {
	alg, err := search.ParseAlgorithm(ctx.Param("algorithm"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	opts := []search.Option{search.WithContext(ctx.Request.Context())}
	if raw := ctx.Query("max_steps"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "max_steps must be an integer"})
			return
		}
		opts = append(opts, search.WithMaxSteps(n))
	}

	gc.withGrid(ctx, func(_ uuid.UUID, g *grid.Grid) (any, error) {
		res, err := search.Run(g, alg, opts...)
		switch {
		case errors.Is(err, search.ErrStepLimit):
			out := toSearchResponse(res)
			out.Message = "step limit reached"
			return out, nil
		case err != nil:
			return nil, err
		}
		out := toSearchResponse(res)
		if !res.Found {
			out.Message = "no path between start and end"
		}
		return out, nil
	})
}

// withGrid runs fn under the session lock and writes its value as 200 OK.
// fn may mutate the grid in place.
func (gc *Controller) withGrid(ctx *gin.Context, fn func(id uuid.UUID, g *grid.Grid) (any, error)) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var out any
	err := gc.store.Do(id, func(g *grid.Grid) (*grid.Grid, error) {
		var err error
		out, err = fn(id, g)
		return nil, err
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, out)
}

// mutateCell binds a CellRequest and applies fn to it. A nil value from fn
// responds with the grid snapshot.
func (gc *Controller) mutateCell(ctx *gin.Context, fn func(g *grid.Grid, c grid.Coord) (any, error)) {
	var request CellRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	gc.withGrid(ctx, func(id uuid.UUID, g *grid.Grid) (any, error) {
		out, err := fn(g, request.Coord())
		if err != nil {
			return nil, err
		}
		if out == nil {
			return toGridResponse(id, g), nil
		}
		return out, nil
	})
}

// layoutSize counts the rows and widest row grid.Parse would see.
func layoutSize(layout string) (rows, cols int) {
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows++
		cols = max(cols, len(line))
	}
	return rows, cols
}

// sessionID parses the :id parameter, responding 400 when malformed.
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid grid id"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain errors onto HTTP status codes.
func respondError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNoSession):
		return http.StatusNotFound
	case errors.Is(err, ErrTooManySessions):
		return http.StatusServiceUnavailable
	case errors.Is(err, grid.ErrStartAlreadySet),
		errors.Is(err, grid.ErrEndAlreadySet),
		errors.Is(err, grid.ErrRoleTaken):
		return http.StatusConflict
	case errors.Is(err, search.ErrMissingEndpoints),
		errors.Is(err, search.ErrWallEndpoint):
		return http.StatusUnprocessableEntity
	case errors.Is(err, grid.ErrOutOfBounds),
		errors.Is(err, grid.ErrEmptyGrid),
		errors.Is(err, grid.ErrNonRectangular),
		errors.Is(err, grid.ErrBadLayout),
		errors.Is(err, grid.ErrBadProbability),
		errors.Is(err, grid.ErrTooLarge),
		errors.Is(err, ErrGridTooLarge),
		errors.Is(err, search.ErrUnknownAlgorithm),
		errors.Is(err, search.ErrOptionViolation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toGridResponse(id uuid.UUID, g *grid.Grid) GridResponse {
	out := GridResponse{
		ID:     id,
		Rows:   g.Rows(),
		Cols:   g.Cols(),
		Walls:  g.Walls(),
		Layout: strings.Split(g.String(), "\n"),
	}
	if out.Walls == nil {
		out.Walls = []grid.Coord{}
	}
	if s, ok := g.Start(); ok {
		out.Start = &s
	}
	if e, ok := g.End(); ok {
		out.End = &e
	}
	return out
}

func toSearchResponse(res *search.Result) SearchResponse {
	out := SearchResponse{
		Algorithm: res.Algorithm,
		Found:     res.Found,
		Visited:   res.Visited,
		Path:      res.Path,
		Cost:      res.Cost(),
		Steps:     res.Steps,
	}
	if out.Visited == nil {
		out.Visited = []grid.Coord{}
	}
	if out.Path == nil {
		out.Path = []grid.Coord{}
	}
	return out
}
