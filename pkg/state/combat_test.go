package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/geom"
)

// crampPlayer zeroes the player's effective dexterity so every enemy
// swing lands. Damage then varies only by the 5 percent crit roll.
func crampPlayer(gs *GameState) {
	gs.Player.Buffs = append(gs.Player.Buffs, actor.Buff{Kind: actor.BuffCramp, Amount: 99, Remaining: 999})
}

func cursorMoveAction(d geom.Direction) Action {
	return Action{Kind: ActionCursorMove, Direction: &d}
}

// fireAt opens the targeting cursor, walks it east the given number of
// steps and confirms the shot.
func fireAt(t *testing.T, gs *GameState, steps int) (Outcome, error) {
	t.Helper()
	_, err := gs.Resolve(Action{Kind: ActionRangedAttack})
	require.NoError(t, err)
	for i := 0; i < steps; i++ {
		_, err := gs.Resolve(cursorMoveAction(geom.Right))
		require.NoError(t, err)
	}
	return gs.Resolve(Action{Kind: ActionCursorConfirm})
}

func anyEventHasPrefix(gs *GameState, prefix string) bool {
	for _, text := range eventTexts(gs) {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}

func TestNPCAttacksAdjacentPlayer(t *testing.T) {
	gs := newTestGame(t, 5)
	crampPlayer(gs)
	require.Equal(t, 0, gs.Player.DodgeChance())

	_, err := gs.spawnNPC(gs.CurrentLevel(), "goblin", geom.Pt(6, 5))
	require.NoError(t, err)

	hpBefore := gs.Player.Stats.HP
	_, err = gs.Resolve(Action{Kind: ActionWait})
	require.NoError(t, err)

	dealt := hpBefore - gs.Player.Stats.HP
	assert.Contains(t, []int{2, 4}, dealt, "a goblin hits for 2, or 4 on a crit")
	assert.True(t, anyEventHasPrefix(gs, "Goblin attacks you and deals "))
}

func TestArmorSoaksNPCDamage(t *testing.T) {
	gs := newTestGame(t, 5)
	crampPlayer(gs)
	armorID := give(t, gs, "armor_leather")
	_, err := gs.Resolve(useAction(armorID))
	require.NoError(t, err)

	_, err = gs.spawnNPC(gs.CurrentLevel(), "goblin", geom.Pt(6, 5))
	require.NoError(t, err)

	hpBefore := gs.Player.Stats.HP
	_, err = gs.Resolve(Action{Kind: ActionWait})
	require.NoError(t, err)

	dealt := hpBefore - gs.Player.Stats.HP
	assert.Contains(t, []int{0, 2}, dealt, "leather soaks the goblin's 2 damage unless it crits")
	assert.True(t, anyEventHasPrefix(gs, "Goblin attacks you and deals "), "a fully soaked hit still lands")
}

func TestMeleeAttackWithFists(t *testing.T) {
	gs := newTestGame(t, 7)
	npc, err := gs.spawnNPC(gs.CurrentLevel(), "goblin", geom.Pt(6, 5))
	require.NoError(t, err)

	out, err := gs.Resolve(moveAction(geom.Right))
	require.NoError(t, err)
	assert.True(t, out.OK())
	assert.Contains(t, []int{8, 9}, npc.Stats.HP, "bare fists deal 1, or 2 on a crit")
	assert.True(t, anyEventHasPrefix(gs, "You attack Goblin and deal "))
}

func TestNPCKillsPlayer(t *testing.T) {
	gs := newTestGame(t, 11)
	crampPlayer(gs)
	_, err := gs.spawnNPC(gs.CurrentLevel(), "goblin", geom.Pt(6, 5))
	require.NoError(t, err)

	for i := 0; i < 80 && !gs.GameOver; i++ {
		_, err := gs.Resolve(Action{Kind: ActionWait})
		require.NoError(t, err)
	}

	assert.True(t, gs.GameOver)
	assert.Equal(t, 0, gs.Player.Stats.HP)
	assert.Contains(t, eventTexts(gs), "You have died in the Anthill")

	roundBefore := gs.Round
	out, err := gs.Resolve(moveAction(geom.Right))
	require.NoError(t, err)
	assert.Equal(t, FailGameOver, out.Reason)
	assert.Equal(t, roundBefore, gs.Round, "a dead player's turn never resolves")
}

func TestRangedAttackRequiresWeapon(t *testing.T) {
	gs := newTestGame(t, 3)
	_, err := gs.spawnNPC(gs.CurrentLevel(), "goblin", geom.Pt(8, 5))
	require.NoError(t, err)

	out, err := fireAt(t, gs, 3)
	require.NoError(t, err)
	assert.Equal(t, FailEmptySlot, out.Reason)
	assert.Equal(t, 0, gs.Round)
	assert.NotNil(t, gs.Cursor, "a refused shot keeps the cursor open")
}

func TestRangedAttackWithMeleeWeapon(t *testing.T) {
	gs := newTestGame(t, 3)
	clubID := give(t, gs, "weapon_club")
	_, err := gs.Resolve(useAction(clubID))
	require.NoError(t, err)
	_, err = gs.spawnNPC(gs.CurrentLevel(), "goblin", geom.Pt(8, 5))
	require.NoError(t, err)

	_, err = fireAt(t, gs, 3)
	assert.Error(t, err, "a club cannot attack at range")
}

func TestRangedAttackOutOfRange(t *testing.T) {
	gs := newTestGame(t, 3)
	slingID := give(t, gs, "weapon_sling")
	_, err := gs.Resolve(useAction(slingID))
	require.NoError(t, err)
	npc, err := gs.spawnNPC(gs.CurrentLevel(), "goblin", geom.Pt(10, 5))
	require.NoError(t, err)

	out, err := fireAt(t, gs, 5)
	require.NoError(t, err)
	assert.Equal(t, FailOutOfRange, out.Reason)
	assert.Contains(t, eventTexts(gs), "The target is out of range.")
	assert.Equal(t, 10, npc.Stats.HP)
	assert.Equal(t, 1, gs.Round, "only the equip consumed a round")
	assert.NotNil(t, gs.Cursor)
}

func TestRangedAttackHitsTarget(t *testing.T) {
	gs := newTestGame(t, 3)
	slingID := give(t, gs, "weapon_sling")
	_, err := gs.Resolve(useAction(slingID))
	require.NoError(t, err)
	npc, err := gs.spawnNPC(gs.CurrentLevel(), "goblin", geom.Pt(8, 5))
	require.NoError(t, err)

	out, err := fireAt(t, gs, 3)
	require.NoError(t, err)
	assert.True(t, out.OK())
	assert.Equal(t, 7, npc.Stats.HP, "the sling always deals exactly 3")
	assert.Equal(t, 2, gs.Round)
	assert.Nil(t, gs.Cursor, "a landed shot closes the cursor")
	assert.Contains(t, eventTexts(gs), "You attack Goblin and deal 3 damage.")
	assert.Equal(t, geom.Pt(7, 5), npc.Pos, "the survivor closes in on its turn")
}

func TestRangedAttackNeedsCreatureTarget(t *testing.T) {
	gs := newTestGame(t, 3)
	slingID := give(t, gs, "weapon_sling")
	_, err := gs.Resolve(useAction(slingID))
	require.NoError(t, err)

	logBefore := len(gs.Log.Events)
	out, err := fireAt(t, gs, 2)
	require.NoError(t, err)
	assert.Equal(t, FailInvalidTarget, out.Reason)
	assert.Equal(t, logBefore, len(gs.Log.Events), "shooting at bare floor says nothing")
	assert.Equal(t, 1, gs.Round)
	assert.NotNil(t, gs.Cursor)
}
