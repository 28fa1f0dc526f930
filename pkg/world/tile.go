package world

import (
	"encoding/json"
	"fmt"
)

// TileKind identifies the static terrain of one map cell. Door states and
// stair directions are their own kinds rather than sub-states, so that
// walkability, opacity, and interaction checks stay plain table lookups.
type TileKind int

const (
	// Void is the unreachable space between rooms. In fiction it is solid rock.
	Void TileKind = iota

	// Floor is basic walkable room ground.
	Floor

	// Wall encases every room.
	Wall

	// Hallway connects rooms and carries no wall border of its own.
	Hallway

	// DoorOpen is a door that has been opened. Doors cannot be closed again.
	DoorOpen

	// DoorClosed blocks movement and sight until interacted with.
	DoorClosed

	// DoorArchway is a doorless opening in a wall.
	DoorArchway

	// StairsDown leads further down into the dungeon.
	StairsDown

	// StairsUp leads back toward the surface.
	StairsUp
)

var kindNames = map[TileKind]string{
	Void:        "void",
	Floor:       "floor",
	Wall:        "wall",
	Hallway:     "hallway",
	DoorOpen:    "door_open",
	DoorClosed:  "door_closed",
	DoorArchway: "door_archway",
	StairsDown:  "stairs_down",
	StairsUp:    "stairs_up",
}

var kindsByName = func() map[string]TileKind {
	m := make(map[string]TileKind, len(kindNames))
	for k, n := range kindNames {
		m[n] = k
	}
	return m
}()

// String returns the stable identifier used in level files and logs.
func (k TileKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("tile_kind(%d)", int(k))
}

// ParseTileKind maps a level-file identifier back to its TileKind.
func ParseTileKind(s string) (TileKind, error) {
	if k, ok := kindsByName[s]; ok {
		return k, nil
	}
	return Void, fmt.Errorf("unknown tile kind %q", s)
}

// MarshalJSON encodes the kind as its string identifier.
func (k TileKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a string identifier into the kind.
func (k *TileKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTileKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Walkable reports whether the player and NPCs can stand on this kind.
func (k TileKind) Walkable() bool {
	switch k {
	case Floor, Hallway, DoorOpen, DoorArchway, StairsDown, StairsUp:
		return true
	default:
		return false
	}
}

// Opaque reports whether this kind blocks line of sight.
func (k TileKind) Opaque() bool {
	switch k {
	case Void, Wall, DoorClosed:
		return true
	default:
		return false
	}
}

// Interactable reports whether stepping into or confirming on this kind
// triggers a game interaction (opening a door, taking stairs).
func (k TileKind) Interactable() bool {
	switch k {
	case DoorClosed, StairsDown, StairsUp:
		return true
	default:
		return false
	}
}

// Glyph returns the character used to draw this kind.
func (k TileKind) Glyph() rune {
	switch k {
	case Void:
		return ' '
	case Floor:
		return '·'
	case Wall:
		return '#'
	case Hallway:
		return '░'
	case DoorOpen:
		return '_'
	case DoorClosed:
		return '+'
	case DoorArchway:
		return '·'
	case StairsDown:
		return '>'
	case StairsUp:
		return '<'
	default:
		return '?'
	}
}

// Description returns the player-facing name shown by the look command.
func (k TileKind) Description() string {
	switch k {
	case Void:
		return "Nothing"
	case Floor:
		return "Floor"
	case Wall:
		return "Wall"
	case Hallway:
		return "Hallway"
	case DoorOpen:
		return "Open Door"
	case DoorClosed:
		return "Closed Door"
	case DoorArchway:
		return "Archway"
	case StairsDown:
		return "Stairs leading further down..."
	case StairsUp:
		return "Stairs leading back up."
	default:
		return "Unknown"
	}
}

// Tile is one cell of the world grid. Visible is the transient result of
// the most recent field-of-view pass. Explored sticks once a tile has been
// seen and drives the fog-of-war memory.
type Tile struct {
	Kind     TileKind `json:"kind"`
	Visible  bool     `json:"visible,omitempty"`
	Explored bool     `json:"explored,omitempty"`
}

// NewTile returns an unseen tile of the given kind.
func NewTile(kind TileKind) Tile {
	return Tile{Kind: kind}
}
