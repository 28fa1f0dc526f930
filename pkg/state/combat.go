package state

import (
	"fmt"

	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/dice"
)

// npcCritChance is the flat critical strike chance every NPC attacks
// with.
const npcCritChance = 5

// fistCritChance applies when the player fights without a weapon.
const fistCritChance = 5

// resolveAttack runs the shared attack pipeline: the defender may dodge
// outright, the attacker may critically strike for double damage, and
// mitigation soaks the rest. Returns the damage dealt and whether the
// attack connected.
func (gs *GameState) resolveAttack(damage, critChance, dodgeChance, mitigation int) (int, bool) {
	d100 := dice.NewRoll(1, dice.D100)
	if d100.Do(gs.Rng.Rand) <= dodgeChance {
		return 0, false
	}
	if d100.Do(gs.Rng.Rand) <= critChance {
		damage *= 2
	}
	damage -= mitigation
	if damage < 0 {
		damage = 0
	}
	return damage, true
}

// playerAttackNPC swings at an NPC with the equipped weapon, or bare
// fists when none is. A kill despawns the NPC and awards experience.
func (gs *GameState) playerAttackNPC(npc *actor.NPC) (Outcome, error) {
	roll, critChance, err := gs.playerWeaponDamage()
	if err != nil {
		return Outcome{}, err
	}
	damage := roll.Do(gs.Rng.Rand) + gs.Player.AttackBonus()
	if damage < 0 {
		damage = 0
	}

	dealt, hit := gs.resolveAttack(damage, critChance, npc.Stats.DodgeChance(), npc.Stats.Mitigation)
	if !hit {
		gs.event(EventCombat, "You attack %s, but miss.", npc.Name)
		return Success(), nil
	}

	npc.Stats.TakeDamage(dealt)
	gs.event(EventCombat, "You attack %s and deal %d damage.", npc.Name, dealt)

	if !npc.Stats.Alive() {
		gs.event(EventDeath, "%s died.", npc.Name)
		if err := gs.CurrentLevel().DespawnNPC(npc.ID); err != nil {
			return Outcome{}, err
		}
		if gs.Player.GainExperience(25) {
			gs.event(EventLevelUp, "Welcome to level %d.", gs.Player.Stats.Level)
		}
	}
	return Success(), nil
}

// rangedAttackNPC fires the equipped ranged weapon at an NPC. The shot
// falls through to the regular attack pipeline once the weapon and
// range check out.
func (gs *GameState) rangedAttackNPC(npc *actor.NPC) (Outcome, error) {
	if gs.Player.Weapon == nil {
		return Failure(FailEmptySlot), nil
	}
	def, err := gs.heldItemDef(*gs.Player.Weapon)
	if err != nil {
		return Outcome{}, err
	}
	if def.Weapon == nil || !def.Weapon.Ranged() {
		return Outcome{}, fmt.Errorf("equipped weapon %d cannot attack at range", *gs.Player.Weapon)
	}
	if gs.Player.Pos.DistanceSquared(npc.Pos) > def.Weapon.Range*def.Weapon.Range {
		return Failure(FailOutOfRange), nil
	}
	return gs.playerAttackNPC(npc)
}

// npcAttackPlayer is one NPC swing at the player. In god mode the swing
// still resolves and logs, but no damage lands.
func (gs *GameState) npcAttackPlayer(npc *actor.NPC) error {
	mitigation, err := gs.playerArmorMitigation()
	if err != nil {
		gs.debugf("Armor mitigation unavailable: %v", err)
		mitigation = 0
	}

	damage := npc.Stats.Damage.Do(gs.Rng.Rand)
	dealt, hit := gs.resolveAttack(damage, npcCritChance, gs.Player.DodgeChance(), mitigation)
	if !hit {
		gs.event(EventCombat, "%s attacks you, but misses.", npc.Name)
		return nil
	}
	if !gs.God {
		gs.Player.Stats.TakeDamage(dealt)
	}
	gs.event(EventCombat, "%s attacks you and deals %d damage.", npc.Name, dealt)
	return nil
}

// playerWeaponDamage resolves the equipped weapon into its damage roll
// and crit chance. Bare fists deal a flat single point.
func (gs *GameState) playerWeaponDamage() (dice.Roll, int, error) {
	if gs.Player.Weapon == nil {
		return dice.Flat(1), fistCritChance, nil
	}
	def, err := gs.heldItemDef(*gs.Player.Weapon)
	if err != nil {
		return dice.Roll{}, 0, err
	}
	if def.Weapon == nil {
		return dice.Roll{}, 0, fmt.Errorf("equipped item %d is not a weapon", *gs.Player.Weapon)
	}
	return def.Weapon.Damage, def.Weapon.Crit, nil
}

// playerArmorMitigation resolves the equipped armor into its mitigation
// value, zero when nothing is worn.
func (gs *GameState) playerArmorMitigation() (int, error) {
	if gs.Player.Armor == nil {
		return 0, nil
	}
	def, err := gs.heldItemDef(*gs.Player.Armor)
	if err != nil {
		return 0, err
	}
	if def.Armor == nil {
		return 0, fmt.Errorf("equipped item %d is not armor", *gs.Player.Armor)
	}
	return def.Armor.EffectiveMitigation(), nil
}
