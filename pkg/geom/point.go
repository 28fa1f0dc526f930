package geom

import "fmt"

// Point is an absolute cell position on the dungeon grid.
// Coordinates are never negative: arithmetic that would cross zero
// clamps instead, because negative space is not representable on the map.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Translate returns the point moved by a signed offset, clamping each
// coordinate at zero.
func (p Point) Translate(dx, dy int) Point {
	nx := p.X + dx
	ny := p.Y + dy
	if nx < 0 {
		nx = 0
	}
	if ny < 0 {
		ny = 0
	}
	return Point{X: nx, Y: ny}
}

// Adjacent returns the neighbouring point one step in the given direction.
func (p Point) Adjacent(d Direction) Point {
	dx, dy := d.Delta()
	return p.Translate(dx, dy)
}

// DistanceSquared returns the squared Euclidean distance to another point.
// The square root is never taken anywhere in the engine; distances are
// compared in squared form throughout.
func (p Point) DistanceSquared(o Point) int {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

func (p Point) String() string {
	return fmt.Sprintf("x:%d y:%d", p.X, p.Y)
}
