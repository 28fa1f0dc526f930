// Package actor holds everything that stands on a dungeon floor: the player
// character, NPCs, and item sprites. Static NPC stat blocks live here too;
// the matching item catalog is in pkg/item.
package actor

import (
	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/item"
)

// EntityID identifies a single spawned entity within a game session.
// Ids are issued by the session's counter and never reused.
type EntityID uint32

// Base carries the identity, position and appearance every on-map
// entity shares.
type Base struct {
	ID    EntityID   `json:"id"`
	Name  string     `json:"name"`
	Pos   geom.Point `json:"pos"`
	Glyph string     `json:"glyph"`
	Color string     `json:"color,omitempty"`
}

// MoveTo places the entity on a new cell. Walkability and occupancy are
// the caller's responsibility.
func (b *Base) MoveTo(p geom.Point) {
	b.Pos = p
}

// ItemSprite is an item instance lying on the map, waiting to be picked up.
type ItemSprite struct {
	Base
	Item item.ID `json:"item"` // the registered instance this sprite holds
}
