package state

import (
	"fmt"

	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/item"
)

// overdoseWindow is how recent, in rounds, the previous healing draught
// must be for repeated use to poison.
const overdoseWindow = 30

// drinkPotion consumes a potion and applies its effect. Each effect
// tracks its own usage count: the third use and beyond sours into
// penalties, and past the fifth the effect stops responding entirely,
// though the potion still goes down.
func (gs *GameState) drinkPotion(id item.ID, def item.Def) (Outcome, error) {
	potion := def.Potion
	switch potion.Effect {
	case item.EffectHeal, item.EffectStrength, item.EffectDexterity:
	default:
		return Outcome{}, fmt.Errorf("unknown potion effect: %s", potion.Effect)
	}

	gs.Player.RemoveItem(id)
	if err := gs.deregisterItem(id); err != nil {
		return Outcome{}, err
	}

	count, elapsed, ok := gs.Player.RecordPotionUse(potion.Effect, gs.Round)
	if !ok {
		gs.debugf("Potion effect %s suppressed after %d uses", potion.Effect, count)
		return Success(), nil
	}

	switch potion.Effect {
	case item.EffectHeal:
		gs.applyHealPotion(potion, count, elapsed)
	case item.EffectStrength:
		gs.applyStrengthPotion(potion, count)
	case item.EffectDexterity:
		gs.applyDexterityPotion(potion, count)
	}
	return Success(), nil
}

func (gs *GameState) applyHealPotion(p *item.PotionDef, count, elapsed int) {
	gs.Player.Stats.Heal(p.Amount)
	gs.event(EventHeal, "You regain %d hit points.", p.Amount)

	if count >= 3 && elapsed < overdoseWindow {
		var total int
		switch count {
		case 3:
			total = 20
		case 4:
			total = 35
		case 5:
			total = 45
		}
		gs.Player.Buffs = append(gs.Player.Buffs, actor.Buff{
			Kind:      actor.BuffPoison,
			Amount:    total / 10,
			Remaining: 10,
		})
		gs.event(EventOverdose, "Poisoned! You will take %d HP damage over time.", total)
	}
}

func (gs *GameState) applyStrengthPotion(p *item.PotionDef, count int) {
	if count < 3 {
		gs.Player.Buffs = append(gs.Player.Buffs, actor.Buff{
			Kind:      actor.BuffStrength,
			Amount:    p.Amount,
			Remaining: p.Duration,
		})
		gs.event(EventBuff, "Strength increased by %d for %d turns.", p.Amount, p.Duration)
		return
	}

	penalty := p.Amount / 2
	gs.Player.Buffs = append(gs.Player.Buffs, actor.Buff{
		Kind:      actor.BuffFatigue,
		Amount:    penalty,
		Remaining: p.Duration,
	})
	gs.event(EventOverdose, "Fatigued! Strength reduced by %d for %d turns.", penalty, p.Duration)

	if count >= 4 {
		gs.Player.Buffs = append(gs.Player.Buffs, actor.Buff{
			Kind:      actor.BuffPoison,
			Amount:    2,
			Remaining: 5,
		})
		gs.event(EventOverdose, "Overworked! You will take 10 HP damage over 5 turns.")
	}
}

func (gs *GameState) applyDexterityPotion(p *item.PotionDef, count int) {
	if count < 3 {
		gs.Player.Buffs = append(gs.Player.Buffs, actor.Buff{
			Kind:      actor.BuffDexterity,
			Amount:    p.Amount,
			Remaining: p.Duration,
		})
		gs.event(EventBuff, "Dexterity increased by %d for %d turns.", p.Amount, p.Duration)
		return
	}

	var turns, hpLoss int
	switch count {
	case 3:
		turns = 2
	case 4:
		turns = 1
	case 5:
		turns, hpLoss = 3, 10
	}
	gs.Player.Buffs = append(gs.Player.Buffs, actor.Buff{
		Kind:      actor.BuffCramp,
		Amount:    p.Amount,
		Remaining: turns,
	})
	if hpLoss > 0 {
		gs.Player.Buffs = append(gs.Player.Buffs, actor.Buff{
			Kind:      actor.BuffPoison,
			Amount:    hpLoss / turns,
			Remaining: turns,
		})
	}
	gs.event(EventOverdose, "Overdose! Movement reduced for %d turns.", turns)
}
