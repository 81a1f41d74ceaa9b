package search_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStepper_MatchesRun: stepping to completion gives the same result as the
// one-shot entry points.
func TestStepper_MatchesRun(t *testing.T) {
	g, s, e := mustParse(t, `
		S...#...
		.##.#.#.
		.#.....E
	`)
	for _, alg := range search.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			st, err := search.NewStepper(g, alg, s, e)
			require.NoError(t, err)
			assert.Equal(t, alg, st.Algorithm())

			var traced []grid.Coord
			for !st.Done() {
				c, ok, err := st.Step()
				require.NoError(t, err)
				if ok {
					traced = append(traced, c)
				}
			}
			stepped := st.Result()
			assert.Equal(t, traced, stepped.Visited)

			// a finished stepper stays put
			_, ok, err := st.Step()
			require.NoError(t, err)
			assert.False(t, ok)

			oneShot, err := search.Run(g, alg)
			require.NoError(t, err)
			assert.Equal(t, oneShot.Visited, stepped.Visited)
			assert.Equal(t, oneShot.Path, stepped.Path)
			assert.Equal(t, oneShot.Steps, stepped.Steps)
			assert.True(t, stepped.Found)
		})
	}
}

// TestStepper_Frontier checks the waiting cells after the first expansion of
// an open 3×3 grid from (0,0).
func TestStepper_Frontier(t *testing.T) {
	g, s, e := mustParse(t, "S..\n...\n..E")
	cases := []struct {
		alg  search.Algorithm
		want []grid.Coord
	}{
		{search.AlgorithmBFS, cells([2]int{1, 0}, [2]int{0, 1})},
		{search.AlgorithmDFS, cells([2]int{0, 0})},
		{search.AlgorithmDijkstra, cells([2]int{0, 1}, [2]int{1, 0})},
		{search.AlgorithmAStar, cells([2]int{0, 1}, [2]int{1, 0})},
	}
	for _, tc := range cases {
		t.Run(tc.alg.String(), func(t *testing.T) {
			st, err := search.NewStepper(g, tc.alg, s, e)
			require.NoError(t, err)
			c, ok, err := st.Step()
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, s, c)
			assert.Equal(t, tc.want, st.Frontier())
			assert.Equal(t, 1, st.Steps())
			assert.False(t, st.Done())
		})
	}
}

// TestStepper_PartialResult: a result taken mid-run has a trace but no path.
func TestStepper_PartialResult(t *testing.T) {
	g, s, e := mustParse(t, "S...E")
	st, err := search.NewStepper(g, search.AlgorithmBFS, s, e)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, _, err = st.Step()
		require.NoError(t, err)
	}
	res := st.Result()
	assert.Equal(t, cells([2]int{0, 0}, [2]int{0, 1}), res.Visited)
	assert.Empty(t, res.Path)
	assert.False(t, res.Found)

	res, err = st.Run()
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 4, res.Cost())
}

// TestStepper_ResumesAfterStepLimit: the step limit pauses a run rather than
// corrupting it.
func TestStepper_ResumesAfterStepLimit(t *testing.T) {
	g, s, e := mustParse(t, "S...E")
	st, err := search.NewStepper(g, search.AlgorithmDijkstra, s, e, search.WithMaxSteps(3))
	require.NoError(t, err)
	res, err := st.Run()
	assert.ErrorIs(t, err, search.ErrStepLimit)
	assert.Len(t, res.Visited, 3)
	assert.False(t, st.Done())
}

// TestStepper_OnVisitErrorEndsRun: a failing hook finishes the run, so later
// Steps are no-ops instead of continuing without the aborted expansion.
func TestStepper_OnVisitErrorEndsRun(t *testing.T) {
	g, s, e := mustParse(t, "S..\n...\n..E")
	stop := errors.New("stop")
	for _, alg := range search.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			st, err := search.NewStepper(g, alg, s, e, search.WithOnVisit(func(_ grid.Coord, step int) error {
				if step == 1 {
					return stop
				}
				return nil
			}))
			require.NoError(t, err)

			var stepErr error
			for i := 0; i < 10 && stepErr == nil; i++ {
				_, _, stepErr = st.Step()
			}
			require.ErrorIs(t, stepErr, stop)
			assert.True(t, st.Done())

			steps := st.Steps()
			c, ok, err := st.Step()
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, grid.Coord{}, c)
			assert.Equal(t, steps, st.Steps())

			res := st.Result()
			assert.False(t, res.Found)
			assert.Empty(t, res.Path)
			assert.Len(t, res.Visited, 2)
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"bfs":      search.AlgorithmBFS,
		"BFS":      search.AlgorithmBFS,
		"dfs":      search.AlgorithmDFS,
		"Dijkstra": search.AlgorithmDijkstra,
		"astar":    search.AlgorithmAStar,
		"A*":       search.AlgorithmAStar,
		" a-star ": search.AlgorithmAStar,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseAlgorithm("greedy")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	for _, alg := range search.Algorithms() {
		text, err := alg.MarshalText()
		require.NoError(t, err)
		var back search.Algorithm
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, alg, back)
	}
	_, err = search.Algorithm(-1).MarshalText()
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Equal(t, "Algorithm(9)", search.Algorithm(9).String())
}
