package lbm

import (
	"errors"
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestIsInsideUnitSquare(t *testing.T) {
	square := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	assert.True(t, isInside(square, 0.5, 0.5))
	assert.False(t, isInside(square, 2, 2))
	assert.False(t, isInside(square, -0.1, 0.5))
	// A point on the left edge resolves outside under the even-odd
	// half-open interval rule.
	assert.False(t, isInside(square, 0, 0.5))
}

func TestIsInsideConcavePolygon(t *testing.T) {
	// A "U" shape: the notch between the arms is outside.
	u := [][2]float64{
		{0, 0}, {3, 0}, {3, 3}, {2, 3}, {2, 1}, {1, 1}, {1, 3}, {0, 3},
	}
	assert.True(t, isInside(u, 0.5, 2.0))
	assert.True(t, isInside(u, 2.5, 2.0))
	assert.False(t, isInside(u, 1.5, 2.0))
	assert.True(t, isInside(u, 1.5, 0.5))
}

func TestAddObstacleSquare(t *testing.T) {
	cfg := testConfig(11, 11)
	cfg.Dx = 0.1
	l, err := New(cfg)
	assert.NoError(t, err)

	square := [][2]float64{{0.25, 0.25}, {0.75, 0.25}, {0.75, 0.75}, {0.25, 0.75}}
	obs, err := l.AddObstacle(square, 1)
	assert.NoError(t, err)

	// Nodes at 0.3..0.7 in both axes: a 5x5 block.
	tagged := 0
	for i := 0; i < 11; i++ {
		for j := 0; j < 11; j++ {
			if l.Tag(i, j) == 1 {
				tagged++
				x, y := l.Coords(i, j)
				assert.True(t, x > 0.25 && x < 0.75)
				assert.True(t, y > 0.25 && y < 0.75)
			}
		}
	}
	assert.Equal(t, 25, tagged)
	assert.True(t, math.Abs(obs.Area-25*0.1*0.1) < 1e-12)

	// The boundary is the ring of fluid cells around the block, with no
	// duplicate (i,j,q) triples and every direction pointing back into
	// the obstacle.
	seen := map[BoundaryNode]bool{}
	cells := map[[2]int]bool{}
	for _, b := range obs.Boundary {
		assert.False(t, seen[b])
		seen[b] = true
		cells[[2]int{b.I, b.J}] = true
		assert.Equal(t, 0, l.Tag(b.I, b.J))
		assert.Equal(t, 1, l.Tag(b.I+l.c[b.Q][0], b.J+l.c[b.Q][1]))
	}
	assert.Equal(t, 24, len(cells))
}

func TestAddObstacleIBBDistances(t *testing.T) {
	cfg := testConfig(21, 21)
	cfg.Dx = 0.05
	cfg.IBB = true
	l, err := New(cfg)
	assert.NoError(t, err)

	obs, err := l.AddObstacle(CirclePolygon(0.5, 0.5, 0.2, 64), 1)
	assert.NoError(t, err)
	assert.True(t, len(obs.Boundary) > 0)
	assert.Equal(t, len(obs.Boundary), len(obs.IBB))
	for _, d := range obs.IBB {
		assert.True(t, d >= 0)
		assert.False(t, math.IsNaN(d))
	}
}

func TestAddObstacleDegenerate(t *testing.T) {
	l, err := New(testConfig(11, 11))
	assert.NoError(t, err)

	// Too few vertices: registered empty, reported.
	obs, err := l.AddObstacle([][2]float64{{0.1, 0.1}, {0.2, 0.2}}, 1)
	assert.Error(t, err)
	var oge *ObstacleGeometryError
	assert.True(t, errors.As(err, &oge))
	assert.True(t, obs.Empty())

	// Entirely outside the grid: zero tagged cells, reported, still
	// registered.
	obs, err = l.AddObstacle([][2]float64{{10, 10}, {11, 10}, {10.5, 11}}, 2)
	assert.Error(t, err)
	assert.True(t, errors.As(err, &oge))
	assert.True(t, obs.Empty())

	assert.Equal(t, 2, len(l.Obstacles()))
}

func TestCirclePolygon(t *testing.T) {
	poly := CirclePolygon(0.5, 0.5, 0.25, 32)
	assert.Equal(t, 32, len(poly))
	for _, p := range poly {
		r := math.Hypot(p[0]-0.5, p[1]-0.5)
		assert.True(t, math.Abs(r-0.25) < 1e-12)
	}
	assert.True(t, isInside(poly, 0.5, 0.5))
	assert.False(t, isInside(poly, 0.8, 0.8))
}
