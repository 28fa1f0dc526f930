// Package procgen generates dungeon levels: binary space partitioning for
// room placement, Kruskal's MST over room centers for the corridor graph,
// A* for corridor routing, and encounter tables for population. The whole
// pipeline is a pure function of one seed.
package procgen

import (
	"github.com/anthill-game/anthill/pkg/dice"
	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/world"
)

const (
	// minNodeDim is the smallest partition still allowed to split.
	// Dimensions include walls, so a 5-wide partition has 3 walkable
	// columns.
	minNodeDim = 13

	// minRoomDim is the smallest room dimension shrinking aims for.
	minRoomDim = 5

	// padding keeps rooms away from the grid edge.
	padding = 2

	// roomTarget is how many rooms division tries to produce.
	roomTarget = 10

	// divideCap bounds division attempts. Exhausting it yields fewer
	// rooms than the target, never an error.
	divideCap = 10000
)

// node is one rectangle in the partition tree. Corner a is the top left,
// b the exclusive bottom right. Leaves have no children.
type node struct {
	a, b        geom.Point
	left, right int // arena indices; -1 when absent
}

func (n node) leaf() bool {
	return n.left < 0 && n.right < 0
}

// tree is the partition arena. Child links are indices into nodes.
type tree struct {
	nodes []node
	root  int
}

// newTree starts with a single root partition covering the grid minus
// the edge padding.
func newTree() *tree {
	root := node{
		a:     geom.Pt(padding, padding),
		b:     geom.Pt(world.Width-padding, world.Height-padding),
		left:  -1,
		right: -1,
	}
	return &tree{nodes: []node{root}, root: 0}
}

// divide splits partitions until the room target or the attempt cap is
// reached. An attempt that lands on a saturated subtree makes no split
// and is not counted toward the target.
func (t *tree) divide(target int, rng *dice.Stream) {
	rooms := 1
	for attempts := 0; rooms < target && attempts < divideCap; attempts++ {
		if t.divideNode(t.root, rng) {
			rooms++
		}
	}
}

// divideNode descends to a leaf through uniformly random children and
// splits it along its longer axis at a random fraction of the length.
// Returns whether a split happened.
func (t *tree) divideNode(id int, rng *dice.Stream) bool {
	n := t.nodes[id]
	width := n.b.X - n.a.X
	height := n.b.Y - n.a.Y

	// too small on either axis, stays a leaf
	if width < minNodeDim || height < minNodeDim {
		return false
	}

	if n.leaf() {
		frac := 0.4 + 0.2*rng.Float64()
		if width > height {
			mid := n.a.X + int(frac*float64(width))
			t.addChildren(id,
				node{a: n.a, b: geom.Pt(mid, n.b.Y), left: -1, right: -1},
				node{a: geom.Pt(mid, n.a.Y), b: n.b, left: -1, right: -1},
			)
		} else {
			mid := n.a.Y + int(frac*float64(height))
			t.addChildren(id,
				node{a: n.a, b: geom.Pt(n.b.X, mid), left: -1, right: -1},
				node{a: geom.Pt(n.a.X, mid), b: n.b, left: -1, right: -1},
			)
		}
		return true
	}

	if rng.IntN(2) == 0 {
		return t.divideNode(n.left, rng)
	}
	return t.divideNode(n.right, rng)
}

func (t *tree) addChildren(id int, left, right node) {
	leftID := len(t.nodes)
	t.nodes = append(t.nodes, left)
	rightID := len(t.nodes)
	t.nodes = append(t.nodes, right)
	t.nodes[id].left = leftID
	t.nodes[id].right = rightID
}

// leaves collects the final partitions in pre-order.
func (t *tree) leaves() []rect {
	var out []rect
	t.collectLeaves(t.root, &out)
	return out
}

func (t *tree) collectLeaves(id int, out *[]rect) {
	n := t.nodes[id]
	if n.leaf() {
		*out = append(*out, rect{a: n.a, b: n.b})
		return
	}
	t.collectLeaves(n.left, out)
	t.collectLeaves(n.right, out)
}
