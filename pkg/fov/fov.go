// Package fov computes the player's field of view with recursive symmetric
// shadowcasting (after the albertford.com/shadowcasting construction). The
// map is scanned in four 90° quadrants, one per cardinal direction; each
// quadrant walks rows of increasing depth bounded by exact rational slopes,
// so visibility is symmetric and never leaks through diagonal gaps the way
// float-slope implementations do.
package fov

import (
	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/world"
)

// VisionRangeSquared caps how far the scan reveals tiles. Tiles at squared
// distance 900 or more from the origin stay hidden no matter what the slope
// sector admits.
const VisionRangeSquared = 900

// Compute recomputes visibility from origin. All tiles are concealed first,
// then the origin and the four quadrant scans reveal a fresh subset; newly
// revealed tiles are also marked explored for the fog-of-war memory.
func Compute(w *world.World, origin geom.Point) {
	for i := range w.Tiles {
		w.Tiles[i].Visible = false
	}

	if !w.Contains(origin) {
		return
	}
	reveal(w, origin)

	for _, dir := range geom.Directions {
		q := quadrant{dir: dir, origin: origin}
		scan(w, q, row{depth: 1, start: ratio{-1, 1}, end: ratio{1, 1}})
	}
}

func reveal(w *world.World, p geom.Point) {
	t := w.At(p)
	t.Visible = true
	t.Explored = true
}

const (
	prevNone = iota
	prevFloor
	prevWall
)

// scan walks one row of a quadrant and recurses into the child rows its
// shadows spawn. Thinking of the quadrant as a tree of rows, this is a
// depth-first traversal.
func scan(w *world.World, q quadrant, r row) {
	prev := prevNone

	minCol, maxCol := r.cols()
	for col := minCol; col <= maxCol; col++ {
		x, y := q.transform(r.depth, col)
		if !w.InBounds(x, y) {
			continue
		}
		p := geom.Pt(x, y)
		if q.origin.DistanceSquared(p) >= VisionRangeSquared {
			continue
		}

		opaque := w.At(p).Kind.Opaque()

		// Walls always show their face; floors must sit symmetrically
		// inside the sector.
		if opaque || r.symmetric(col) {
			reveal(w, p)
		}

		// Floor after wall: the shadow ends, record where vision resumes.
		if prev == prevWall && !opaque {
			r.start = colSlope(r.depth, col)
		}

		// Wall after floor: the shadow begins, scan what is still lit
		// beyond it in a child row with a tightened end slope.
		if prev == prevFloor && opaque {
			child := r.next()
			child.end = colSlope(r.depth, col)
			scan(w, q, child)
		}

		if opaque {
			prev = prevWall
		} else {
			prev = prevFloor
		}
	}

	// A row ending on floor keeps sweeping into the next depth.
	if prev == prevFloor {
		scan(w, q, r.next())
	}
}

// quadrant maps the scan's local (depth, col) coordinates into world
// coordinates for one cardinal facing.
type quadrant struct {
	dir    geom.Direction
	origin geom.Point
}

func (q quadrant) transform(depth, col int) (x, y int) {
	switch q.dir {
	case geom.Up:
		return q.origin.X + col, q.origin.Y - depth
	case geom.Right:
		return q.origin.X + depth, q.origin.Y + col
	case geom.Down:
		return q.origin.X + col, q.origin.Y + depth
	default: // geom.Left
		return q.origin.X - depth, q.origin.Y + col
	}
}

// ratio is an exact rational slope. The denominator is always positive, so
// ordering reduces to cross-multiplication without overflow concerns at
// grid scale.
type ratio struct {
	num, den int
}

// colSlope returns the slope tangent to the left edge of the tile at
// (depth, col). It serves as both the start slope past a wall run and the
// end slope of a child row.
func colSlope(depth, col int) ratio {
	return ratio{num: 2*col - 1, den: 2 * depth}
}

// row is a depth-slice of a quadrant bounded by a start and end slope.
type row struct {
	depth      int
	start, end ratio
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

// cols returns the inclusive column range the sector sweeps at this depth.
// Ties round into the sector, so tiles merely tangent to it stay out.
func (r row) cols() (minCol, maxCol int) {
	minCol = roundTiesUp(r.depth*r.start.num, r.start.den)
	maxCol = roundTiesDown(r.depth*r.end.num, r.end.den)
	return minCol, maxCol
}

// symmetric reports whether the tile center at col lies within the sector:
// depth·start ≤ col ≤ depth·end, compared exactly.
func (r row) symmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

// roundTiesUp rounds num/den to the nearest integer, ties upward.
func roundTiesUp(num, den int) int {
	return floorDiv(2*num+den, 2*den)
}

// roundTiesDown rounds num/den to the nearest integer, ties downward.
func roundTiesDown(num, den int) int {
	return -floorDiv(-(2*num - den), 2*den)
}

// floorDiv divides rounding toward negative infinity. Go's integer
// division truncates toward zero, which differs for negative operands.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
