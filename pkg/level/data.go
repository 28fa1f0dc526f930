package level

import (
	"fmt"

	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/world"
)

// SpawnKind says whether a spawn entry places an NPC or an item sprite.
type SpawnKind string

const (
	SpawnNPC  SpawnKind = "npc"
	SpawnItem SpawnKind = "item"
)

// Spawn is one def-referenced entity placement in a level file.
type Spawn struct {
	Kind  SpawnKind  `json:"kind"`
	DefID string     `json:"def_id"`
	Pos   geom.Point `json:"pos"`
}

// TilePatch overrides a single tile after rooms and corridors are laid
// down, used for stairs and special doors.
type TilePatch struct {
	Pos  geom.Point     `json:"pos"`
	Kind world.TileKind `json:"kind"`
}

// Data is the persistence form of a level: the instructions to rebuild
// its terrain plus the entities to place on it. Both generated levels and
// the static town level use this shape.
type Data struct {
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Rooms     []world.Room `json:"rooms"`
	Corridors []geom.Point `json:"corridors,omitempty"`
	Tiles     []TilePatch  `json:"tiles,omitempty"`
	Entry     geom.Point   `json:"entry"`
	Exit      geom.Point   `json:"exit"`
	Spawns    []Spawn      `json:"spawns,omitempty"`
}

// Validate checks the data can be applied to an engine-sized grid.
// Spawn def ids are not resolved here; that needs the loaded catalogs.
func (d Data) Validate() error {
	if d.Width != world.Width || d.Height != world.Height {
		return fmt.Errorf("level is %dx%d, the engine requires %dx%d", d.Width, d.Height, world.Width, world.Height)
	}
	for _, r := range d.Rooms {
		if r.Left() < 0 || r.Top() < 0 || r.Right() >= d.Width || r.Bottom() >= d.Height {
			return fmt.Errorf("room at %s (%dx%d) leaves the grid", r.Origin, r.Width, r.Height)
		}
		if r.Width < 3 || r.Height < 3 {
			return fmt.Errorf("room at %s is too small to have an interior", r.Origin)
		}
	}
	for _, p := range d.Corridors {
		if !inBounds(p, d.Width, d.Height) {
			return fmt.Errorf("corridor point %s is out of bounds", p)
		}
	}
	for _, t := range d.Tiles {
		if !inBounds(t.Pos, d.Width, d.Height) {
			return fmt.Errorf("tile patch at %s is out of bounds", t.Pos)
		}
	}
	if !inBounds(d.Entry, d.Width, d.Height) {
		return fmt.Errorf("entry %s is out of bounds", d.Entry)
	}
	if !inBounds(d.Exit, d.Width, d.Height) {
		return fmt.Errorf("exit %s is out of bounds", d.Exit)
	}
	for _, s := range d.Spawns {
		if s.Kind != SpawnNPC && s.Kind != SpawnItem {
			return fmt.Errorf("spawn at %s has unknown kind %q", s.Pos, s.Kind)
		}
		if !inBounds(s.Pos, d.Width, d.Height) {
			return fmt.Errorf("spawn %s at %s is out of bounds", s.DefID, s.Pos)
		}
	}
	return nil
}

func inBounds(p geom.Point, width, height int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
}

// Load rebuilds a level's terrain from its persisted form. Spawns are not
// placed here: creating entities needs the def catalogs and the session's
// id counter, so the session applies d.Spawns itself after loading.
func Load(d Data, depth int) (*Level, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	l := New(depth)
	for _, r := range d.Rooms {
		l.World.CarveRoom(r)
	}
	for _, p := range d.Corridors {
		applyCorridor(l.World, p)
	}
	for _, t := range d.Tiles {
		l.World.SetKind(t.Pos, t.Kind)
	}
	l.Entry = d.Entry
	l.Exit = d.Exit
	return l, nil
}

// applyCorridor turns one corridor cell into hallway, or an archway where
// the corridor pierces a room wall. Anything else, room floor included,
// is left untouched so corridors can pass through rooms.
func applyCorridor(w *world.World, p geom.Point) {
	switch w.At(p).Kind {
	case world.Void:
		w.SetKind(p, world.Hallway)
	case world.Wall:
		w.SetKind(p, world.DoorArchway)
	}
}
