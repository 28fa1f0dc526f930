package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthill-game/anthill/pkg/actor"
)

func drink(t *testing.T, gs *GameState, defID string) {
	t.Helper()
	id := give(t, gs, defID)
	_, err := gs.Resolve(useAction(id))
	require.NoError(t, err)
}

func countEvents(gs *GameState, text string) int {
	n := 0
	for _, got := range eventTexts(gs) {
		if got == text {
			n++
		}
	}
	return n
}

func findBuff(gs *GameState, kind actor.BuffKind) (actor.Buff, bool) {
	for _, b := range gs.Player.Buffs {
		if b.Kind == kind {
			return b, true
		}
	}
	return actor.Buff{}, false
}

func TestHealPotionRestoresHP(t *testing.T) {
	gs := newTestGame(t, 1)
	gs.Player.Stats.TakeDamage(50)

	drink(t, gs, "potion_heal")

	assert.Equal(t, 70, gs.Player.Stats.HP)
	assert.Contains(t, eventTexts(gs), "You regain 20 hit points.")
	assert.Equal(t, 0, gs.Items.Len())
}

func TestQuickHealsPoison(t *testing.T) {
	gs := newTestGame(t, 1)
	gs.Player.Stats.TakeDamage(90)

	drink(t, gs, "potion_heal")
	drink(t, gs, "potion_heal")
	drink(t, gs, "potion_heal")

	poison, ok := findBuff(gs, actor.BuffPoison)
	require.True(t, ok, "the third draught inside the window poisons")
	assert.Equal(t, 2, poison.Amount)
	assert.Contains(t, eventTexts(gs), "Poisoned! You will take 20 HP damage over time.")
	assert.Contains(t, eventTexts(gs), "You are experiencing the effects of overdosing.")
	assert.Equal(t, 68, gs.Player.Stats.HP, "three heals land, then the first poison tick bites")

	_, err := gs.Resolve(Action{Kind: ActionWait})
	require.NoError(t, err)
	assert.Equal(t, 66, gs.Player.Stats.HP)
}

func TestSpacedHealsStayClean(t *testing.T) {
	gs := newTestGame(t, 1)
	gs.Player.Stats.TakeDamage(90)

	drink(t, gs, "potion_heal")
	gs.Round = 40
	drink(t, gs, "potion_heal")
	gs.Round = 80
	drink(t, gs, "potion_heal")

	_, ok := findBuff(gs, actor.BuffPoison)
	assert.False(t, ok, "heals spread out over time never sour")
	assert.Equal(t, 70, gs.Player.Stats.HP)
}

func TestStrengthPotionBuffs(t *testing.T) {
	gs := newTestGame(t, 1)

	drink(t, gs, "potion_strength")

	buff, ok := findBuff(gs, actor.BuffStrength)
	require.True(t, ok)
	assert.Equal(t, 4, buff.Amount)
	assert.Equal(t, 4, gs.Player.AttackBonus())
	assert.Contains(t, eventTexts(gs), "Strength increased by 4 for 10 turns.")
}

func TestStrengthOverdoseFatigues(t *testing.T) {
	gs := newTestGame(t, 1)

	drink(t, gs, "potion_strength")
	drink(t, gs, "potion_strength")
	drink(t, gs, "potion_strength")

	_, ok := findBuff(gs, actor.BuffFatigue)
	require.True(t, ok, "the third draught fatigues instead of strengthening")
	assert.Contains(t, eventTexts(gs), "Fatigued! Strength reduced by 2 for 10 turns.")
	assert.Equal(t, 2, countEvents(gs, "Strength increased by 4 for 10 turns."))

	drink(t, gs, "potion_strength")

	_, ok = findBuff(gs, actor.BuffPoison)
	assert.True(t, ok, "the fourth draught poisons on top of the fatigue")
	assert.Contains(t, eventTexts(gs), "Overworked! You will take 10 HP damage over 5 turns.")
	assert.Equal(t, 4, gs.Player.AttackBonus(), "two buffs at 4 minus two fatigues at 2")
}

func TestDexterityOverdoseCramps(t *testing.T) {
	gs := newTestGame(t, 1)

	drink(t, gs, "potion_dexterity")
	drink(t, gs, "potion_dexterity")
	drink(t, gs, "potion_dexterity")

	cramp, ok := findBuff(gs, actor.BuffCramp)
	require.True(t, ok)
	assert.Equal(t, 5, cramp.Amount)
	assert.Contains(t, eventTexts(gs), "Overdose! Movement reduced for 2 turns.")
	assert.Equal(t, 2, countEvents(gs, "Dexterity increased by 5 for 10 turns."))
	assert.Equal(t, 15, gs.Player.EffectiveDexterity(), "two boosts minus the cramp")
}

func TestDexterityFifthDosePoisons(t *testing.T) {
	gs := newTestGame(t, 1)

	for i := 0; i < 5; i++ {
		drink(t, gs, "potion_dexterity")
	}

	poison, ok := findBuff(gs, actor.BuffPoison)
	require.True(t, ok)
	assert.Equal(t, 3, poison.Amount)
	assert.Contains(t, eventTexts(gs), "Overdose! Movement reduced for 3 turns.")
	assert.Equal(t, 97, gs.Player.Stats.HP, "the poison ticks as soon as it sets in")
}

func TestPotionEffectCapsAtFiveUses(t *testing.T) {
	gs := newTestGame(t, 1)
	gs.Player.Stats.TakeDamage(90)

	for i := 0; i < 6; i++ {
		drink(t, gs, "potion_heal")
	}

	assert.Equal(t, 5, countEvents(gs, "You regain 20 hit points."), "the sixth draught goes down without effect")
	assert.Empty(t, gs.Player.Inventory, "the dead draught is still consumed")
	assert.Equal(t, 0, gs.Items.Len())
}
