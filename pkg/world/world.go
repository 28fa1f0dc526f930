// Package world holds the static terrain grid of a dungeon level: tiles,
// rooms, and the spatial queries the rest of the engine runs against them.
// Everything that moves on top of the grid lives in pkg/level.
package world

import "github.com/anthill-game/anthill/pkg/geom"

const (
	// Width is the horizontal tile count of every level grid.
	Width = 100

	// Height is the vertical tile count of every level grid.
	Height = 25
)

// World is the terrain of a single dungeon level, a Width×Height grid of
// tiles stored row-major.
type World struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tiles  []Tile `json:"tiles"`
}

// New returns a world filled entirely with Void tiles.
func New() *World {
	return &World{
		Width:  Width,
		Height: Height,
		Tiles:  make([]Tile, Width*Height),
	}
}

// Index converts grid coordinates to the flat tile slice index.
func (w *World) Index(x, y int) int {
	return y*w.Width + x
}

// At returns the tile at p. Callers must bounds-check first; an out of
// bounds position panics.
func (w *World) At(p geom.Point) *Tile {
	return &w.Tiles[w.Index(p.X, p.Y)]
}

// SetKind replaces the terrain kind at p, preserving visibility flags.
func (w *World) SetKind(p geom.Point, k TileKind) {
	w.Tiles[w.Index(p.X, p.Y)].Kind = k
}

// InBounds reports whether (x, y) lies on the grid. Arguments are signed so
// callers can probe positions produced by raw offset arithmetic.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.Width && y < w.Height
}

// Contains reports whether p lies on the grid.
func (w *World) Contains(p geom.Point) bool {
	return w.InBounds(p.X, p.Y)
}

// Walkable reports whether p is on the grid and its tile can be stepped on.
func (w *World) Walkable(p geom.Point) bool {
	return w.Contains(p) && w.At(p).Kind.Walkable()
}

// Reset returns every tile to the default Void state.
func (w *World) Reset() {
	for i := range w.Tiles {
		w.Tiles[i] = Tile{}
	}
}

// PointsInRadius returns every in-bounds point whose squared distance from
// center is at most 2r². The region is intentionally a loose disk, slightly
// wider than a true circle of radius r; detection and splash queries depend
// on this exact shape.
func (w *World) PointsInRadius(center geom.Point, radius int) []geom.Point {
	limit := 2 * radius * radius

	// smallest square window covering the disk
	span := 0
	for span*span < limit {
		span++
	}

	points := make([]geom.Point, 0, (2*span+1)*(2*span+1))
	for dy := -span; dy <= span; dy++ {
		for dx := -span; dx <= span; dx++ {
			x := center.X + dx
			y := center.Y + dy
			if !w.InBounds(x, y) {
				continue
			}
			if dx*dx+dy*dy <= limit {
				points = append(points, geom.Pt(x, y))
			}
		}
	}
	return points
}

// CarveRoom stamps r onto the grid: interior cells become Floor and the
// one-tile border becomes Wall. Existing tiles are overwritten
// unconditionally, so a later carve may cut into an earlier room's wall.
func (w *World) CarveRoom(r Room) {
	ox, oy := r.Origin.X, r.Origin.Y

	for y := oy + 1; y < oy+r.Height-1; y++ {
		for x := ox + 1; x < ox+r.Width-1; x++ {
			w.Tiles[w.Index(x, y)].Kind = Floor
		}
	}

	for y := oy; y < oy+r.Height; y++ {
		w.Tiles[w.Index(ox, y)].Kind = Wall
		w.Tiles[w.Index(ox+r.Width-1, y)].Kind = Wall
	}
	for x := ox; x < ox+r.Width; x++ {
		w.Tiles[w.Index(x, oy)].Kind = Wall
		w.Tiles[w.Index(x, oy+r.Height-1)].Kind = Wall
	}
}
