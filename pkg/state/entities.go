package state

import (
	"fmt"

	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/item"
	"github.com/anthill-game/anthill/pkg/level"
)

// RegisterItem mints a live instance of an item definition and records
// it in the session registry. The instance is not yet held or placed
// anywhere; callers put it in the inventory or on the map.
func (gs *GameState) RegisterItem(defID string) (item.ID, error) {
	if _, err := gs.itemDefs.Get(defID); err != nil {
		return 0, err
	}
	id := gs.Items.Register(defID)
	gs.debugf("Registered item %s (ID: %d)", defID, id)
	return id, nil
}

// heldItemDef resolves a live instance back to its definition.
func (gs *GameState) heldItemDef(id item.ID) (item.Def, error) {
	defID, err := gs.Items.DefID(id)
	if err != nil {
		return item.Def{}, err
	}
	return gs.itemDefs.Get(defID)
}

// deregisterItem retires an instance that left play. An error here is a
// bookkeeping bug, not a gameplay outcome.
func (gs *GameState) deregisterItem(id item.ID) error {
	if err := gs.Items.Deregister(id); err != nil {
		return err
	}
	gs.debugf("Deregistered item %d", id)
	return nil
}

// spawnNPC creates an NPC from a definition and places it on lv.
func (gs *GameState) spawnNPC(lv *level.Level, defID string, pos geom.Point) (*actor.NPC, error) {
	def, err := gs.npcDefs.Get(defID)
	if err != nil {
		return nil, err
	}
	n := actor.NewNPC(gs.nextEntityID(), pos, def)
	if err := lv.SpawnNPC(n); err != nil {
		return nil, err
	}
	return n, nil
}

// spawnSprite mints a fresh item instance and drops it on lv at pos.
func (gs *GameState) spawnSprite(lv *level.Level, defID string, pos geom.Point) (*actor.ItemSprite, error) {
	def, err := gs.itemDefs.Get(defID)
	if err != nil {
		return nil, err
	}
	itemID := gs.Items.Register(defID)
	gs.debugf("Registered item %s (ID: %d)", defID, itemID)
	s := &actor.ItemSprite{
		Base: actor.Base{
			ID:    gs.nextEntityID(),
			Name:  gs.itemDefs.DisplayName(defID),
			Pos:   pos,
			Glyph: def.Glyph,
			Color: def.Color,
		},
		Item: itemID,
	}
	if err := lv.SpawnSprite(s); err != nil {
		// the instance never entered play
		if derr := gs.Items.Deregister(itemID); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	return s, nil
}

// placeSprite puts an already registered instance on the map, as when
// the player drops it.
func (gs *GameState) placeSprite(lv *level.Level, itemID item.ID, pos geom.Point) (*actor.ItemSprite, error) {
	defID, err := gs.Items.DefID(itemID)
	if err != nil {
		return nil, err
	}
	def, err := gs.itemDefs.Get(defID)
	if err != nil {
		return nil, err
	}
	s := &actor.ItemSprite{
		Base: actor.Base{
			ID:    gs.nextEntityID(),
			Name:  gs.itemDefs.DisplayName(defID),
			Pos:   pos,
			Glyph: def.Glyph,
			Color: def.Color,
		},
		Item: itemID,
	}
	if err := lv.SpawnSprite(s); err != nil {
		return nil, err
	}
	return s, nil
}

// applySpawns places a level's authored spawn list. Entries that land on
// a bad cell are skipped with a debug note; unknown def ids abort the
// load, since they mean the data and the catalogs disagree.
func (gs *GameState) applySpawns(lv *level.Level, spawns []level.Spawn) error {
	for _, sp := range spawns {
		var err error
		switch sp.Kind {
		case level.SpawnNPC:
			if _, err = gs.npcDefs.Get(sp.DefID); err != nil {
				return err
			}
			_, err = gs.spawnNPC(lv, sp.DefID, sp.Pos)
		case level.SpawnItem:
			if _, err = gs.itemDefs.Get(sp.DefID); err != nil {
				return err
			}
			_, err = gs.spawnSprite(lv, sp.DefID, sp.Pos)
		default:
			return fmt.Errorf("unknown spawn kind: %s", sp.Kind)
		}
		if err != nil {
			gs.debugf("Skipped spawn %s at (%d, %d): %v", sp.DefID, sp.Pos.X, sp.Pos.Y, err)
		}
	}
	return nil
}
