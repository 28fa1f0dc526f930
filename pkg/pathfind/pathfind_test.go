package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/world"
)

func walkableCost(w *world.World) CostFunc {
	return func(p geom.Point) (int, bool) {
		if !w.Walkable(p) {
			return 0, false
		}
		return 1, true
	}
}

func openRoom(t *testing.T) *world.World {
	t.Helper()
	w := world.New()
	w.CarveRoom(world.NewRoom(geom.Pt(0, 0), 20, 15))
	return w
}

func TestFindPathStraightLine(t *testing.T) {
	w := openRoom(t)
	start := geom.Pt(2, 7)
	goal := geom.Pt(10, 7)

	path := FindPath(start, goal, walkableCost(w), DefaultBudget)

	require.NotNil(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	assert.Len(t, path, 9)
}

func TestFindPathStepsAreCardinal(t *testing.T) {
	w := openRoom(t)
	path := FindPath(geom.Pt(2, 2), geom.Pt(12, 11), walkableCost(w), DefaultBudget)

	require.NotNil(t, path)
	for i := 1; i < len(path); i++ {
		_, ok := geom.DirectionBetween(path[i-1], path[i])
		assert.True(t, ok, "step %d from %v to %v is not cardinal", i, path[i-1], path[i])
	}
}

func TestFindPathRoutesAroundWalls(t *testing.T) {
	w := openRoom(t)
	// Wall segment between start and goal with a gap at the bottom.
	for y := 1; y <= 10; y++ {
		w.SetKind(geom.Pt(9, y), world.Wall)
	}
	start := geom.Pt(5, 3)
	goal := geom.Pt(13, 3)

	path := FindPath(start, goal, walkableCost(w), 10_000)

	require.NotNil(t, path)
	for _, p := range path {
		assert.True(t, w.Walkable(p), "path crosses unwalkable tile %v", p)
	}
	// The detour is strictly longer than the straight line.
	assert.Greater(t, len(path), 9)
}

func TestFindPathUnreachable(t *testing.T) {
	w := openRoom(t)
	// Seal the goal in completely.
	goal := geom.Pt(15, 7)
	for _, d := range geom.Directions {
		w.SetKind(goal.Adjacent(d), world.Wall)
	}

	path := FindPath(geom.Pt(2, 7), goal, walkableCost(w), 10_000)
	assert.Nil(t, path)
}

func TestFindPathBudgetExhausted(t *testing.T) {
	w := openRoom(t)
	start := geom.Pt(1, 1)
	goal := geom.Pt(18, 13)

	assert.Nil(t, FindPath(start, goal, walkableCost(w), 5))
	assert.NotNil(t, FindPath(start, goal, walkableCost(w), DefaultBudget))
}

func TestFindPathAvoidsBlockedCells(t *testing.T) {
	w := openRoom(t)
	occupied := geom.Pt(6, 7)
	cost := func(p geom.Point) (int, bool) {
		if p == occupied {
			return 0, false
		}
		return walkableCost(w)(p)
	}

	path := FindPath(geom.Pt(5, 7), geom.Pt(7, 7), cost, DefaultBudget)

	require.NotNil(t, path)
	assert.NotContains(t, path, occupied)
	assert.Len(t, path, 5)
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	w := openRoom(t)
	p := geom.Pt(4, 4)

	path := FindPath(p, p, walkableCost(w), DefaultBudget)

	require.NotNil(t, path)
	assert.Equal(t, []geom.Point{p}, path)
}

func TestFindPathAtGridEdge(t *testing.T) {
	w := world.New()
	for x := 0; x < 10; x++ {
		w.SetKind(geom.Pt(x, 0), world.Floor)
	}

	path := FindPath(geom.Pt(0, 0), geom.Pt(9, 0), walkableCost(w), DefaultBudget)

	require.NotNil(t, path)
	assert.Len(t, path, 10)
}
