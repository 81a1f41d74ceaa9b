package gridapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katalvlaran/gridpath/api"
	"github.com/katalvlaran/gridpath/api/gridapi"
	"github.com/katalvlaran/gridpath/api/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, cfg gridapi.StoreConfig) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := gridapi.NewStore(cfg)
	router := api.NewRouter(api.Config{
		BaseURL:     "/api",
		Controllers: []i.Controller{gridapi.NewController(store, 4, 5)},
	})
	return router.Handler()
}

func defaultServer(t *testing.T) http.Handler {
	return newServer(t, gridapi.StoreConfig{MaxGrids: 8, MaxRows: 50, MaxCols: 50})
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func createLayout(t *testing.T, h http.Handler, layout ...string) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/grids", gin.H{"layout": layout})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return "/api/v1/grids/" + decode[gridapi.GridResponse](t, rec).ID.String()
}

func TestCreate_DefaultDimensions(t *testing.T) {
	h := defaultServer(t)
	rec := do(t, h, http.MethodPost, "/api/v1/grids", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	g := decode[gridapi.GridResponse](t, rec)
	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.Equal(t, 4, g.Rows)
	assert.Equal(t, 5, g.Cols)
	assert.Nil(t, g.Start)
	assert.Empty(t, g.Walls)
	assert.Equal(t, []string{".....", ".....", ".....", "....."}, g.Layout)
}

func TestCreate_Errors(t *testing.T) {
	h := newServer(t, gridapi.StoreConfig{MaxGrids: 1, MaxRows: 10, MaxCols: 10})

	cases := []struct {
		name    string
		body    any
		code    int
		message string
	}{
		{"NegativeRows", gin.H{"rows": -1, "cols": 3}, http.StatusBadRequest, ""},
		{"TooLarge", gin.H{"rows": 11, "cols": 3}, http.StatusBadRequest, "size limit"},
		{"HugeDimensions", gin.H{"rows": 3037000500, "cols": 3037000500}, http.StatusBadRequest, "size limit"},
		{"WrappingDimensions", gin.H{"rows": 1 << 32, "cols": 1 << 32}, http.StatusBadRequest, "size limit"},
		{"LayoutTooWide", gin.H{"layout": []string{"S..........", "E.........."}}, http.StatusBadRequest, "size limit"},
		{"BadLayout", gin.H{"layout": []string{"S.x"}}, http.StatusBadRequest, ""},
		{"Ragged", gin.H{"layout": []string{"S..", "E."}}, http.StatusBadRequest, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/v1/grids", tc.body)
			assert.Equal(t, tc.code, rec.Code, rec.Body.String())
			if tc.message != "" {
				assert.Contains(t, rec.Body.String(), tc.message)
			}
		})
	}

	t.Run("Capacity", func(t *testing.T) {
		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/v1/grids", gin.H{"rows": 2, "cols": 2}).Code)
		rec := do(t, h, http.MethodPost, "/api/v1/grids", gin.H{"rows": 2, "cols": 2})
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRoles(t *testing.T) {
	h := defaultServer(t)
	base := createLayout(t, h, "...", "...", "...")

	rec := do(t, h, http.MethodPost, base+"/start", gin.H{"row": 0, "col": 0})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	g := decode[gridapi.GridResponse](t, rec)
	require.NotNil(t, g.Start)
	assert.Equal(t, 0, g.Start.Row)

	// second start conflicts
	rec = do(t, h, http.MethodPost, base+"/start", gin.H{"row": 1, "col": 1})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// end on the start cell conflicts
	rec = do(t, h, http.MethodPost, base+"/end", gin.H{"row": 0, "col": 0})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/end", gin.H{"row": 2, "col": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/walls", gin.H{"row": 1, "col": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[gridapi.WallResponse](t, rec).Wall)

	rec = do(t, h, http.MethodPost, base+"/walls", gin.H{"row": 2, "col": 2})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/walls", gin.H{"row": 3, "col": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/walls", gin.H{"row": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"S..", ".#.", "..E"}, decode[gridapi.GridResponse](t, rec).Layout)

	rec = do(t, h, http.MethodDelete, base+"/start", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[gridapi.GridResponse](t, rec).Start)
}

func TestMark_ClickSequence(t *testing.T) {
	h := defaultServer(t)
	base := createLayout(t, h, "...", "...")

	want := []struct {
		row, col int
		role     string
	}{
		{0, 0, "S"},
		{1, 2, "E"},
		{0, 1, "#"},
		{0, 1, "."},
	}
	for _, w := range want {
		rec := do(t, h, http.MethodPost, base+"/mark", gin.H{"row": w.row, "col": w.col})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, w.role, decode[gridapi.MarkResponse](t, rec).Role)
	}
}

func TestSearch(t *testing.T) {
	h := defaultServer(t)
	base := createLayout(t, h, "S..", "...", "..E")

	for _, alg := range []string{"bfs", "dfs", "dijkstra", "astar", "A*"} {
		t.Run(alg, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, base+"/search/"+alg, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			res := decode[gridapi.SearchResponse](t, rec)
			assert.True(t, res.Found)
			assert.Equal(t, len(res.Path)-1, res.Cost)
			if alg != "dfs" {
				assert.Equal(t, 4, res.Cost)
			}
			assert.NotEmpty(t, res.Visited)
			assert.Empty(t, res.Message)
		})
	}

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, base+"/search/greedy", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSearch_Unreachable(t *testing.T) {
	h := defaultServer(t)
	base := createLayout(t, h, "S..", "###", "..E")

	rec := do(t, h, http.MethodPost, base+"/search/bfs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[gridapi.SearchResponse](t, rec)
	assert.False(t, res.Found)
	assert.Equal(t, -1, res.Cost)
	assert.Len(t, res.Visited, 3)
	assert.Empty(t, res.Path)
	assert.NotEmpty(t, res.Message)
}

func TestSearch_MissingEndpoints(t *testing.T) {
	h := defaultServer(t)
	base := createLayout(t, h, "S..", "...")

	rec := do(t, h, http.MethodPost, base+"/search/astar", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSearch_StepLimit(t *testing.T) {
	h := defaultServer(t)
	base := createLayout(t, h, "S....", ".....", "....E")

	rec := do(t, h, http.MethodPost, base+"/search/bfs?max_steps=2", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[gridapi.SearchResponse](t, rec)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.Steps)
	assert.Len(t, res.Visited, 2)
	assert.Equal(t, "step limit reached", res.Message)

	rec = do(t, h, http.MethodPost, base+"/search/bfs?max_steps=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodPost, base+"/search/bfs?max_steps=x", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestObstaclesAndClear(t *testing.T) {
	h := defaultServer(t)
	base := createLayout(t, h, "S....", ".....", "....E")

	rec := do(t, h, http.MethodPost, base+"/obstacles", gin.H{"probability": 1.0, "seed": 7})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode[gridapi.ObstaclesResponse](t, rec)
	assert.Equal(t, 13, out.Added)
	assert.Len(t, out.Grid.Walls, 13)
	require.NotNil(t, out.Grid.Start)
	require.NotNil(t, out.Grid.End)

	rec = do(t, h, http.MethodPost, base+"/obstacles", gin.H{"probability": 1.5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/clear", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	g := decode[gridapi.GridResponse](t, rec)
	assert.Empty(t, g.Walls)
	assert.Nil(t, g.Start)
	assert.Nil(t, g.End)
	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 5, g.Cols)
}

func TestSessions(t *testing.T) {
	h := defaultServer(t)
	base := createLayout(t, h, "S.E")

	rec := do(t, h, http.MethodGet, "/api/v1/grids/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/grids/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegions(t *testing.T) {
	h := defaultServer(t)
	base := createLayout(t, h, "S.#.", "..#.", "##.E")

	rec := do(t, h, http.MethodGet, base+"/regions", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode[gridapi.RegionsResponse](t, rec)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, []int{4, 4}, out.Sizes)
	require.NotNil(t, out.Connected)
	assert.False(t, *out.Connected)

	// opening the wall joins the regions
	rec = do(t, h, http.MethodPost, base+"/walls", gin.H{"row": 1, "col": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	out = decode[gridapi.RegionsResponse](t, do(t, h, http.MethodGet, base+"/regions", nil))
	assert.Equal(t, 1, out.Count)
	require.NotNil(t, out.Connected)
	assert.True(t, *out.Connected)
}
