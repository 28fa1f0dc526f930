package actor

import (
	"fmt"

	"github.com/anthill-game/anthill/pkg/dice"
	"github.com/anthill-game/anthill/pkg/geom"
)

// AIState is the behavioural mode an NPC is in. States are re-evaluated
// every round before the NPC acts.
type AIState string

const (
	// AIInactive is the dead default; nothing in normal play sets it.
	AIInactive AIState = "inactive"

	// AIWandering NPCs drift one random step per round.
	AIWandering AIState = "wandering"

	// AIAggressive NPCs chase and attack the player.
	AIAggressive AIState = "aggressive"
)

// NPCStats is the combat block of a spawned NPC.
type NPCStats struct {
	Stats
	Damage     dice.Roll `json:"damage"`
	Dodge      int       `json:"dodge,omitempty"`
	Mitigation int       `json:"mitigation,omitempty"`
}

// DodgeChance is the dodge stat capped at 50 percent.
func (s NPCStats) DodgeChance() int {
	return min(s.Dodge, 50)
}

// NPC is one spawned non-player creature.
type NPC struct {
	Base
	Stats NPCStats `json:"stats"`
	AI    AIState  `json:"ai"`
}

// NewNPC spawns an instance of a stat block at the given position.
// New NPCs start out wandering.
func NewNPC(id EntityID, pos geom.Point, def NPCDef) *NPC {
	return &NPC{
		Base: Base{
			ID:    id,
			Name:  def.Name,
			Pos:   pos,
			Glyph: def.Glyph,
			Color: def.Color,
		},
		Stats: NPCStats{
			Stats:      Stats{HP: def.HP, HPMax: def.HP},
			Damage:     def.Damage,
			Dodge:      def.Dodge,
			Mitigation: def.Mitigation,
		},
		AI: AIWandering,
	}
}

// NPCDef is one immutable NPC stat block, keyed by def id in the catalog.
type NPCDef struct {
	Name       string    `json:"name"`
	Glyph      string    `json:"glyph"`
	Color      string    `json:"color,omitempty"`
	HP         int       `json:"hp"`
	Damage     dice.Roll `json:"damage"`
	Dodge      int       `json:"dodge,omitempty"`
	Mitigation int       `json:"mitigation,omitempty"`
}

// Validate checks the stat block is renderable and well-formed.
func (d NPCDef) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("npc def must have a name")
	}
	if len([]rune(d.Glyph)) != 1 {
		return fmt.Errorf("glyph must be a single character, got %q", d.Glyph)
	}
	if d.HP <= 0 {
		return fmt.Errorf("hp must be positive, got %d", d.HP)
	}
	return nil
}

// NPCDefSet is the loaded NPC catalog, keyed by def id.
type NPCDefSet map[string]NPCDef

// Get looks up a stat block by def id.
func (s NPCDefSet) Get(id string) (NPCDef, error) {
	d, ok := s[id]
	if !ok {
		return NPCDef{}, fmt.Errorf("npc def not found: %s", id)
	}
	return d, nil
}

// Validate checks every stat block in the set.
func (s NPCDefSet) Validate() error {
	for id, d := range s {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("npc def %s: %w", id, err)
		}
	}
	return nil
}
