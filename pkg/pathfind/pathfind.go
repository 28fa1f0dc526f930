// Package pathfind implements A* over the level grid. Both the corridor
// planner and NPC chase behavior route through FindPath; chase callers take
// only the first step of the returned path and recompute next round.
package pathfind

import (
	"container/heap"

	"github.com/anthill-game/anthill/pkg/geom"
)

// DefaultBudget is the iteration cap for gameplay pathfinding. Exhausting
// it reads as "no path found", which keeps a cornered NPC from stalling
// the turn on a hopeless search.
const DefaultBudget = 200

// CostFunc reports the cost of stepping onto p. ok false marks p
// impassable. The function is called for points just past the grid edge,
// so implementations must bounds-check.
type CostFunc func(p geom.Point) (cost int, ok bool)

type node struct {
	point geom.Point
	g, h  int
}

func (n node) f() int {
	return n.g + n.h
}

type openList []node

func (o openList) Len() int           { return len(o) }
func (o openList) Less(i, j int) bool { return o[i].f() < o[j].f() }
func (o openList) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o *openList) Push(x any)        { *o = append(*o, x.(node)) }

func (o *openList) Pop() any {
	old := *o
	n := old[len(old)-1]
	*o = old[:len(old)-1]
	return n
}

// heuristic is the squared Euclidean distance with a floor of 1. It
// overestimates long distances, which trades optimality for fast, direct
// corridors; keep as is, the generated layouts depend on it.
func heuristic(a, b geom.Point) int {
	if d := a.DistanceSquared(b); d > 1 {
		return d
	}
	return 1
}

// FindPath runs A* from start to goal and returns the path including both
// endpoints, or nil when the goal is unreachable or the iteration budget
// runs out before it is reached.
func FindPath(start, goal geom.Point, costFn CostFunc, budget int) []geom.Point {
	open := &openList{{point: start, g: 0, h: heuristic(start, goal)}}
	heap.Init(open)

	gScore := map[geom.Point]int{start: 0}
	cameFrom := map[geom.Point]geom.Point{}

	iterations := 0
	for open.Len() > 0 {
		current := heap.Pop(open).(node)

		iterations++
		if iterations > budget {
			return nil
		}

		if current.point == goal {
			return rebuild(cameFrom, current.point)
		}

		for _, d := range geom.Directions {
			neighbor := current.point.Adjacent(d)

			stepCost, ok := costFn(neighbor)
			if !ok {
				continue
			}

			tentative := current.g + stepCost
			if best, seen := gScore[neighbor]; seen && tentative >= best {
				continue
			}

			heap.Push(open, node{point: neighbor, g: tentative, h: heuristic(neighbor, goal)})
			gScore[neighbor] = tentative
			cameFrom[neighbor] = current.point
		}
	}
	return nil
}

func rebuild(cameFrom map[geom.Point]geom.Point, end geom.Point) []geom.Point {
	path := []geom.Point{end}
	for {
		prev, ok := cameFrom[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, prev)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
