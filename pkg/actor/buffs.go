package actor

import "github.com/anthill-game/anthill/pkg/item"

// BuffKind names a timed effect on the player. Strength and dexterity are
// the beneficial potion effects; fatigue, cramp and poison are the
// penalties overuse escalates into.
type BuffKind string

const (
	BuffStrength  BuffKind = "strength"
	BuffDexterity BuffKind = "dexterity"
	BuffPoison    BuffKind = "poison"
	BuffFatigue   BuffKind = "fatigue"
	BuffCramp     BuffKind = "cramp"
)

// Buff is one active timed effect. Amount is the stat delta for stat
// buffs and the damage per round for poison.
type Buff struct {
	Kind      BuffKind `json:"kind"`
	Amount    int      `json:"amount"`
	Remaining int      `json:"remaining"` // rounds left, including the current one
}

// Usage tracks how often one potion effect has been drunk, for the
// overuse escalation rules.
type Usage struct {
	Count     int `json:"count"`
	LastRound int `json:"last_round"`
}

// TickBuffs advances every active buff by one round and returns the total
// poison damage accrued this round. Expired buffs are dropped.
func (c *PlayerCharacter) TickBuffs() int {
	poison := 0
	kept := c.Buffs[:0]
	for _, b := range c.Buffs {
		if b.Kind == BuffPoison {
			poison += b.Amount
		}
		b.Remaining--
		if b.Remaining > 0 {
			kept = append(kept, b)
		}
	}
	c.Buffs = kept
	return poison
}

// AttackBonus is the melee damage delta from active buffs: strength adds,
// fatigue subtracts. The result can be negative.
func (c *PlayerCharacter) AttackBonus() int {
	bonus := 0
	for _, b := range c.Buffs {
		switch b.Kind {
		case BuffStrength:
			bonus += b.Amount
		case BuffFatigue:
			bonus -= b.Amount
		}
	}
	return bonus
}

// EffectiveDexterity is the dexterity score adjusted by active buffs,
// floored at zero.
func (c *PlayerCharacter) EffectiveDexterity() int {
	dex := c.Stats.Dexterity
	for _, b := range c.Buffs {
		switch b.Kind {
		case BuffDexterity:
			dex += b.Amount
		case BuffCramp:
			dex -= b.Amount
		}
	}
	return max(dex, 0)
}

// RecordPotionUse bumps the usage counter for a potion effect. It returns
// the new count and the rounds elapsed since the previous use of the same
// effect. Counts cap at five; once the cap is reached the potion has no
// further effect and ok is false.
func (c *PlayerCharacter) RecordPotionUse(effect item.Effect, round int) (count, elapsed int, ok bool) {
	if c.PotionUse == nil {
		c.PotionUse = make(map[item.Effect]Usage)
	}
	usage := c.PotionUse[effect]
	if usage.Count >= 5 {
		return usage.Count, 0, false
	}
	elapsed = round - usage.LastRound
	if usage.Count == 0 {
		elapsed = 0
	}
	usage.Count++
	usage.LastRound = round
	c.PotionUse[effect] = usage
	return usage.Count, elapsed, true
}
