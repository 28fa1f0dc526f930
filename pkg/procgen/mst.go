package procgen

import "slices"

// edge is a candidate corridor between two rooms, weighted by the squared
// distance between their centers.
type edge struct {
	from, to int // room indices
	weight   int
}

// unionFind is a disjoint set with path compression and union by size,
// used by Kruskal's algorithm to detect when an edge would close a cycle.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range u.parent {
		u.parent[i] = i
		u.size[i] = 1
	}
	return u
}

func (u *unionFind) find(x int) int {
	if u.parent[x] != x {
		u.parent[x] = u.find(u.parent[x])
	}
	return u.parent[x]
}

// union merges the sets containing a and b. It returns false when they
// already share a set.
func (u *unionFind) union(a, b int) bool {
	rootA, rootB := u.find(a), u.find(b)
	if rootA == rootB {
		return false
	}
	if u.size[rootA] < u.size[rootB] {
		rootA, rootB = rootB, rootA
	}
	u.parent[rootB] = rootA
	u.size[rootA] += u.size[rootB]
	return true
}

// kruskal builds a minimum spanning tree over numRooms rooms. The second
// return value reports whether every room was reached.
func kruskal(edges []edge, numRooms int) ([]edge, bool) {
	if numRooms <= 1 {
		return nil, true
	}

	sorted := slices.Clone(edges)
	slices.SortFunc(sorted, func(a, b edge) int { return a.weight - b.weight })

	uf := newUnionFind(numRooms)
	tree := make([]edge, 0, numRooms-1)
	for _, e := range sorted {
		if len(tree) == numRooms-1 {
			break
		}
		if uf.union(e.from, e.to) {
			tree = append(tree, e)
		}
	}
	return tree, len(tree) == numRooms-1
}
