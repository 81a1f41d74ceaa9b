package grid

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// DefaultObstacleProbability is the wall density used by interactive boards.
const DefaultObstacleProbability = 0.3

// ObstacleOption configures GenerateObstacles.
type ObstacleOption func(*obstacleOptions)

type obstacleOptions struct {
	rng *rand.Rand
}

// WithSeed draws walls from a deterministic stream seeded with seed.
// The same seed on the same grid always produces the same walls.
func WithSeed(seed int64) ObstacleOption {
	return func(o *obstacleOptions) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws walls from r. math/rand.Rand is not goroutine-safe; do not
// share r across goroutines. A nil r is ignored.
func WithRand(r *rand.Rand) ObstacleOption {
	return func(o *obstacleOptions) {
		if r != nil {
			o.rng = r
		}
	}
}

// GenerateObstacles independently turns every empty cell into a wall with
// probability p and returns how many walls were added. Start and end cells
// are never touched, existing walls stay walls, and search state is kept.
// Without WithSeed or WithRand a time-seeded source is used.
// Returns ErrBadProbability when p is outside [0,1].
// Complexity: O(rows×cols).
func (g *Grid) GenerateObstacles(p float64, opts ...ObstacleOption) (int, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: got %v", ErrBadProbability, p)
	}
	o := obstacleOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	added := 0
	for i, r := range g.roles {
		// one draw per cell keeps a seeded layout stable regardless of roles
		hit := o.rng.Float64() < p
		if r != RoleEmpty || !hit {
			continue
		}
		g.roles[i] = RoleWall
		added++
	}
	return added, nil
}

// GenerateObstacles is the package-level form of g.GenerateObstacles.
func GenerateObstacles(g *Grid, p float64, opts ...ObstacleOption) (int, error) {
	return g.GenerateObstacles(p, opts...)
}
