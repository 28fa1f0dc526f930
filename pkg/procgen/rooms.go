package procgen

import (
	"github.com/anthill-game/anthill/pkg/dice"
	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/world"
)

// rect is a room rectangle during generation. Corner a is the top left,
// b the exclusive bottom right; walls count as part of the rectangle.
type rect struct {
	a, b geom.Point
}

func (r rect) width() int  { return r.b.X - r.a.X }
func (r rect) height() int { return r.b.Y - r.a.Y }

// center is the midpoint, rounded toward the origin.
func (r rect) center() geom.Point {
	return geom.Pt(r.a.X+r.width()/2, r.a.Y+r.height()/2)
}

// room converts the rectangle to the terrain carving form.
func (r rect) room() world.Room {
	return world.NewRoom(r.a, r.width(), r.height())
}

// floorPoints lists every walkable interior cell, column by column.
func (r rect) floorPoints() []geom.Point {
	var points []geom.Point
	for x := r.a.X + 1; x < r.b.X-1; x++ {
		for y := r.a.Y + 1; y < r.b.Y-1; y++ {
			points = append(points, geom.Pt(x, y))
		}
	}
	return points
}

// shrink reduces the rectangle to a random fraction of its size and
// re-places it at a random offset strictly inside its original bounds,
// leaving at least one cell of spacing on every side. Heights are capped
// at 1.5 times the width so terminal cells, which are taller than wide,
// do not produce corridor-like rooms.
func (r *rect) shrink(rng *dice.Stream) {
	newW := shrinkDim(r.width(), shrinkFactor(rng))
	newH := min(shrinkDim(r.height(), shrinkFactor(rng)), newW*3/2)

	nx := intRange(rng, r.a.X+1, r.b.X-newW-1)
	ny := intRange(rng, r.a.Y+1, r.b.Y-newH-1)

	r.a = geom.Pt(nx, ny)
	r.b = geom.Pt(nx+newW, ny+newH)
}

func shrinkFactor(rng *dice.Stream) float64 {
	return 0.5 + 0.4*rng.Float64()
}

// shrinkDim scales one dimension, keeping it at least minRoomDim when the
// partition has the space, and never larger than the partition minus the
// one-cell spacing on both sides.
func shrinkDim(dim int, factor float64) int {
	padded := dim - 2
	shrunk := int(float64(padded) * factor)
	if shrunk < minRoomDim {
		shrunk = minRoomDim
	}
	if shrunk > padded {
		shrunk = padded
	}
	return shrunk
}

// intRange draws uniformly from [lo, hi].
func intRange(rng *dice.Stream, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
