package actor

import (
	"slices"

	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/item"
)

// InventoryLimit is the most items a character can carry, one per
// letter a through z.
const InventoryLimit = 26

// PCStats is the player's full stat sheet. Ability scores start at 10
// and grow by one each on level up.
type PCStats struct {
	Stats
	Strength   int `json:"strength"`
	Dexterity  int `json:"dexterity"`
	Vitality   int `json:"vitality"`
	Perception int `json:"perception"`
	Level      int `json:"level"`
	XP         int `json:"xp"`
}

// NewPCStats returns the starting stat sheet: every ability at 10,
// hit points at ten per point of vitality.
func NewPCStats() PCStats {
	vitality := 10
	hpMax := vitality * 10
	return PCStats{
		Stats:      Stats{HP: hpMax, HPMax: hpMax},
		Strength:   10,
		Dexterity:  10,
		Vitality:   vitality,
		Perception: 10,
		Level:      1,
	}
}

// PlayerCharacter is the player's on-map presence: position, stat sheet,
// carried and equipped items, and active potion effects.
type PlayerCharacter struct {
	Base
	Stats     PCStats               `json:"stats"`
	Inventory []item.ID             `json:"inventory"`
	Weapon    *item.ID              `json:"weapon,omitempty"`
	Armor     *item.ID              `json:"armor,omitempty"`
	Buffs     []Buff                `json:"buffs,omitempty"`
	PotionUse map[item.Effect]Usage `json:"potion_use,omitempty"`
}

// NewPlayerCharacter creates the starting character at the grid origin.
func NewPlayerCharacter(id EntityID) *PlayerCharacter {
	return &PlayerCharacter{
		Base: Base{
			ID:    id,
			Name:  "Hero",
			Pos:   geom.Pt(0, 0),
			Glyph: "@",
			Color: "yellow",
		},
		Stats:     NewPCStats(),
		Inventory: []item.ID{},
	}
}

// DodgeChance is half the buff-adjusted dexterity, capped at 50 percent.
func (c *PlayerCharacter) DodgeChance() int {
	return min(c.EffectiveDexterity()/2, 50)
}

// GainExperience awards experience and reports whether the character
// levelled up. Crossing level*100 spends that much experience, raises
// every ability score by one, adds ten max hit points and fully heals.
func (c *PlayerCharacter) GainExperience(amount int) bool {
	c.Stats.XP += amount

	required := c.Stats.Level * 100
	if c.Stats.XP < required {
		return false
	}
	c.Stats.XP -= required
	c.levelUp()
	return true
}

func (c *PlayerCharacter) levelUp() {
	c.Stats.Level++
	c.Stats.Strength++
	c.Stats.Dexterity++
	c.Stats.Vitality++
	c.Stats.Perception++

	c.Stats.HPMax += 10
	c.Stats.HP = c.Stats.HPMax
}

// HasItem reports whether the instance is in the inventory.
func (c *PlayerCharacter) HasItem(id item.ID) bool {
	return slices.Contains(c.Inventory, id)
}

// InventoryFull reports whether another item would exceed the carry limit.
func (c *PlayerCharacter) InventoryFull() bool {
	return len(c.Inventory) >= InventoryLimit
}

// AddItem puts an instance into the inventory. It returns false when the
// inventory is full.
func (c *PlayerCharacter) AddItem(id item.ID) bool {
	if c.InventoryFull() {
		return false
	}
	c.Inventory = append(c.Inventory, id)
	return true
}

// RemoveItem takes an instance out of the inventory, swapping the last
// entry into its slot. It returns false when the item is not carried.
func (c *PlayerCharacter) RemoveItem(id item.ID) bool {
	i := slices.Index(c.Inventory, id)
	if i < 0 {
		return false
	}
	last := len(c.Inventory) - 1
	c.Inventory[i] = c.Inventory[last]
	c.Inventory = c.Inventory[:last]
	return true
}
