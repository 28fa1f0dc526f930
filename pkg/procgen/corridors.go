package procgen

import (
	"github.com/anthill-game/anthill/pkg/dice"
	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/pathfind"
	"github.com/anthill-game/anthill/pkg/world"
)

// loopChance is the probability per non-tree edge of adding it back as a
// redundant loop, so the dungeon is not a pure tree of dead ends.
const loopChance = 0.05

// corridorBudget bounds the A* search per corridor. Routing explores the
// whole grid in the worst case, so this is far above the gameplay budget.
const corridorBudget = 10000

// allEdges builds the complete graph over room centers.
func allEdges(centers []geom.Point) []edge {
	var edges []edge
	for i := range centers {
		for j := i + 1; j < len(centers); j++ {
			edges = append(edges, edge{
				from:   i,
				to:     j,
				weight: centers[i].DistanceSquared(centers[j]),
			})
		}
	}
	return edges
}

// planConnections picks which room pairs get corridors: the minimum
// spanning tree over room centers, plus a sprinkle of redundant loops.
// When the tree cannot reach every room, a naive chain of consecutive
// rooms stands in; degraded but connected beats unreachable.
func planConnections(centers []geom.Point, rng *dice.Stream) []edge {
	edges := allEdges(centers)

	tree, complete := kruskal(edges, len(centers))
	if !complete {
		tree = tree[:0]
		for i := 0; i+1 < len(centers); i++ {
			tree = append(tree, edge{from: i, to: i + 1, weight: 1})
		}
	}

	inTree := make(map[[2]int]bool, len(tree))
	for _, e := range tree {
		inTree[[2]int{e.from, e.to}] = true
	}
	for _, e := range edges {
		if inTree[[2]int{e.from, e.to}] {
			continue
		}
		if rng.Float64() < loopChance {
			tree = append(tree, e)
		}
	}
	return tree
}

// corridorCost biases corridor routing toward open space: crossing a wall
// is expensive, cutting through a room costs more than going around, and
// everything else is cheap.
func corridorCost(w *world.World) pathfind.CostFunc {
	return func(p geom.Point) (int, bool) {
		if !w.Contains(p) {
			return 0, false
		}
		switch w.At(p).Kind {
		case world.Wall:
			return 6, true
		case world.Floor:
			return 3, true
		default:
			return 1, true
		}
	}
}

// carveConnections routes every planned connection between room centers
// over the carved terrain and collects the corridor cells in order.
func carveConnections(w *world.World, rooms []rect, connections []edge) []geom.Point {
	var corridors []geom.Point
	cost := corridorCost(w)
	for _, c := range connections {
		from := rooms[c.from].center()
		to := rooms[c.to].center()
		path := pathfind.FindPath(from, to, cost, corridorBudget)
		if path == nil {
			// the budget should never bite on an open grid; fall back
			// to an L-shaped run rather than losing the connection
			path = lPath(from, to)
		}
		corridors = append(corridors, path...)
	}
	return corridors
}

// lPath walks the horizontal leg first, then the vertical leg.
func lPath(from, to geom.Point) []geom.Point {
	var points []geom.Point
	step := func(v, target int) int {
		if v < target {
			return v + 1
		}
		return v - 1
	}
	p := from
	points = append(points, p)
	for p.X != to.X {
		p.X = step(p.X, to.X)
		points = append(points, p)
	}
	for p.Y != to.Y {
		p.Y = step(p.Y, to.Y)
		points = append(points, p)
	}
	return points
}
