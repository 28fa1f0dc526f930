// Package level pairs one floor's terrain grid with the entities standing
// on it. Entities live in dense arenas indexed by id; despawning swaps the
// tail entry into the vacated slot and re-points its index.
package level

import (
	"encoding/json"
	"fmt"

	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/world"
)

// Level is one dungeon floor.
type Level struct {
	World   *world.World        `json:"world"`
	Depth   int                 `json:"depth"`
	Entry   geom.Point          `json:"entry"`
	Exit    geom.Point          `json:"exit"`
	NPCs    []*actor.NPC        `json:"npcs"`
	Sprites []*actor.ItemSprite `json:"sprites"`

	npcIndex    map[actor.EntityID]int
	spriteIndex map[actor.EntityID]int
}

// New returns an empty level at the given depth with an all-void grid.
func New(depth int) *Level {
	return &Level{
		World:       world.New(),
		Depth:       depth,
		NPCs:        []*actor.NPC{},
		Sprites:     []*actor.ItemSprite{},
		npcIndex:    make(map[actor.EntityID]int),
		spriteIndex: make(map[actor.EntityID]int),
	}
}

// UnmarshalJSON restores a level and rebuilds the entity indices, which
// are derived state and never serialized.
func (l *Level) UnmarshalJSON(data []byte) error {
	type alias Level
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*l = Level(a)
	l.reindex()
	return nil
}

func (l *Level) reindex() {
	l.npcIndex = make(map[actor.EntityID]int, len(l.NPCs))
	for i, n := range l.NPCs {
		l.npcIndex[n.ID] = i
	}
	l.spriteIndex = make(map[actor.EntityID]int, len(l.Sprites))
	for i, s := range l.Sprites {
		l.spriteIndex[s.ID] = i
	}
}

func (l *Level) checkSpawn(id actor.EntityID, p geom.Point) error {
	if _, ok := l.npcIndex[id]; ok {
		return fmt.Errorf("entity %d is already spawned", id)
	}
	if _, ok := l.spriteIndex[id]; ok {
		return fmt.Errorf("entity %d is already spawned", id)
	}
	if !l.World.Contains(p) {
		return fmt.Errorf("%s is out of bounds", p)
	}
	if !l.World.Walkable(p) {
		return fmt.Errorf("tile at %s is not walkable", p)
	}
	if l.Occupied(p) {
		return fmt.Errorf("cell %s is occupied", p)
	}
	return nil
}

// SpawnNPC places an NPC on the level. The target cell must be in bounds,
// walkable, and free of other entities.
func (l *Level) SpawnNPC(n *actor.NPC) error {
	if err := l.checkSpawn(n.ID, n.Pos); err != nil {
		return fmt.Errorf("cannot spawn %s: %w", n.Name, err)
	}
	l.npcIndex[n.ID] = len(l.NPCs)
	l.NPCs = append(l.NPCs, n)
	return nil
}

// SpawnSprite places an item sprite on the level under the same rules
// as SpawnNPC.
func (l *Level) SpawnSprite(s *actor.ItemSprite) error {
	if err := l.checkSpawn(s.ID, s.Pos); err != nil {
		return fmt.Errorf("cannot spawn %s: %w", s.Name, err)
	}
	l.spriteIndex[s.ID] = len(l.Sprites)
	l.Sprites = append(l.Sprites, s)
	return nil
}

// DespawnNPC removes an NPC, swapping the arena tail into its slot.
func (l *Level) DespawnNPC(id actor.EntityID) error {
	i, ok := l.npcIndex[id]
	if !ok {
		return fmt.Errorf("npc %d not found", id)
	}
	last := len(l.NPCs) - 1
	moved := l.NPCs[last]
	l.NPCs[i] = moved
	l.NPCs = l.NPCs[:last]
	l.npcIndex[moved.ID] = i
	delete(l.npcIndex, id)
	return nil
}

// DespawnSprite removes an item sprite, swapping the arena tail into
// its slot.
func (l *Level) DespawnSprite(id actor.EntityID) error {
	i, ok := l.spriteIndex[id]
	if !ok {
		return fmt.Errorf("sprite %d not found", id)
	}
	last := len(l.Sprites) - 1
	moved := l.Sprites[last]
	l.Sprites[i] = moved
	l.Sprites = l.Sprites[:last]
	l.spriteIndex[moved.ID] = i
	delete(l.spriteIndex, id)
	return nil
}

// NPC resolves an NPC by id.
func (l *Level) NPC(id actor.EntityID) (*actor.NPC, bool) {
	i, ok := l.npcIndex[id]
	if !ok {
		return nil, false
	}
	return l.NPCs[i], true
}

// Sprite resolves an item sprite by id.
func (l *Level) Sprite(id actor.EntityID) (*actor.ItemSprite, bool) {
	i, ok := l.spriteIndex[id]
	if !ok {
		return nil, false
	}
	return l.Sprites[i], true
}

// NPCAt returns the NPC standing on p, if any.
func (l *Level) NPCAt(p geom.Point) (*actor.NPC, bool) {
	for _, n := range l.NPCs {
		if n.Pos == p {
			return n, true
		}
	}
	return nil, false
}

// SpriteAt returns the item sprite lying on p, if any.
func (l *Level) SpriteAt(p geom.Point) (*actor.ItemSprite, bool) {
	for _, s := range l.Sprites {
		if s.Pos == p {
			return s, true
		}
	}
	return nil, false
}

// Occupied reports whether any NPC or sprite is on p. The player's own
// position is tracked by the session, not the level.
func (l *Level) Occupied(p geom.Point) bool {
	if _, ok := l.NPCAt(p); ok {
		return true
	}
	_, ok := l.SpriteAt(p)
	return ok
}

// NPCIDs snapshots the ids of every spawned NPC in arena order, so the
// AI loop can run despawn-safe over them.
func (l *Level) NPCIDs() []actor.EntityID {
	ids := make([]actor.EntityID, len(l.NPCs))
	for i, n := range l.NPCs {
		ids[i] = n.ID
	}
	return ids
}
