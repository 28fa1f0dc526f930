package actor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthill-game/anthill/pkg/item"
)

func TestNewPlayerCharacter(t *testing.T) {
	pc := NewPlayerCharacter(1)

	assert.Equal(t, EntityID(1), pc.ID)
	assert.Equal(t, "Hero", pc.Name)
	assert.Equal(t, "@", pc.Glyph)
	assert.Equal(t, 100, pc.Stats.HP)
	assert.Equal(t, 100, pc.Stats.HPMax)
	assert.Equal(t, 10, pc.Stats.Strength)
	assert.Equal(t, 10, pc.Stats.Dexterity)
	assert.Equal(t, 10, pc.Stats.Vitality)
	assert.Equal(t, 10, pc.Stats.Perception)
	assert.Equal(t, 1, pc.Stats.Level)
	assert.Equal(t, 0, pc.Stats.XP)
	assert.Empty(t, pc.Inventory)
	assert.Nil(t, pc.Weapon)
	assert.Nil(t, pc.Armor)
}

func TestGainExperienceLevelsUp(t *testing.T) {
	pc := NewPlayerCharacter(1)
	pc.Stats.TakeDamage(40)

	assert.False(t, pc.GainExperience(25))
	assert.False(t, pc.GainExperience(25))
	assert.False(t, pc.GainExperience(25))
	assert.Equal(t, 75, pc.Stats.XP)
	assert.Equal(t, 1, pc.Stats.Level)

	require.True(t, pc.GainExperience(25))
	assert.Equal(t, 2, pc.Stats.Level)
	assert.Equal(t, 0, pc.Stats.XP)
	assert.Equal(t, 11, pc.Stats.Strength)
	assert.Equal(t, 11, pc.Stats.Dexterity)
	assert.Equal(t, 11, pc.Stats.Vitality)
	assert.Equal(t, 11, pc.Stats.Perception)
	assert.Equal(t, 110, pc.Stats.HPMax)
	assert.Equal(t, 110, pc.Stats.HP, "level up fully heals")
}

func TestGainExperienceCarriesRemainder(t *testing.T) {
	pc := NewPlayerCharacter(1)

	require.True(t, pc.GainExperience(120))
	assert.Equal(t, 2, pc.Stats.Level)
	assert.Equal(t, 20, pc.Stats.XP)
}

func TestDodgeChance(t *testing.T) {
	pc := NewPlayerCharacter(1)
	assert.Equal(t, 5, pc.DodgeChance())

	pc.Buffs = append(pc.Buffs, Buff{Kind: BuffDexterity, Amount: 10, Remaining: 5})
	assert.Equal(t, 10, pc.DodgeChance())

	pc.Buffs = []Buff{{Kind: BuffCramp, Amount: 8, Remaining: 2}}
	assert.Equal(t, 1, pc.DodgeChance())

	pc.Buffs = nil
	pc.Stats.Dexterity = 120
	assert.Equal(t, 50, pc.DodgeChance(), "dodge chance caps at 50")
}

func TestInventoryLimit(t *testing.T) {
	pc := NewPlayerCharacter(1)

	for i := 1; i <= InventoryLimit; i++ {
		require.True(t, pc.AddItem(item.ID(i)))
	}
	assert.True(t, pc.InventoryFull())
	assert.False(t, pc.AddItem(item.ID(27)))
	assert.Len(t, pc.Inventory, InventoryLimit)
}

func TestRemoveItemSwapsLastIntoSlot(t *testing.T) {
	pc := NewPlayerCharacter(1)
	pc.Inventory = []item.ID{1, 2, 3}

	require.True(t, pc.RemoveItem(1))
	assert.Equal(t, []item.ID{3, 2}, pc.Inventory)

	assert.False(t, pc.RemoveItem(99))
	assert.True(t, pc.HasItem(2))
	assert.False(t, pc.HasItem(1))
}
