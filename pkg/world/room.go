package world

import "github.com/anthill-game/anthill/pkg/geom"

// Room is an axis-aligned rectangle on the grid, wall border included.
type Room struct {
	Origin geom.Point `json:"origin"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
}

// NewRoom returns a room anchored at origin (its top-left corner).
func NewRoom(origin geom.Point, width, height int) Room {
	return Room{Origin: origin, Width: width, Height: height}
}

// Center returns the midpoint of the room, rounding toward the origin.
func (r Room) Center() geom.Point {
	return geom.Pt(r.Origin.X+r.Width/2, r.Origin.Y+r.Height/2)
}

// Left returns the x coordinate of the west wall.
func (r Room) Left() int { return r.Origin.X }

// Right returns the x coordinate of the east wall.
func (r Room) Right() int { return r.Origin.X + r.Width - 1 }

// Top returns the y coordinate of the north wall.
func (r Room) Top() int { return r.Origin.Y }

// Bottom returns the y coordinate of the south wall.
func (r Room) Bottom() int { return r.Origin.Y + r.Height - 1 }

// Contains reports whether p lies inside the room, border included.
func (r Room) Contains(p geom.Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}
