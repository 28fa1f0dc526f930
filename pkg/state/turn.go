package state

import (
	"github.com/anthill-game/anthill/pkg/fov"
)

// nextRound closes out a successful player action: buffs tick, every
// NPC on the current level takes its turn, the field of view refreshes
// and the round counter advances. Player death is checked last so NPC
// attacks this round can end the game.
func (gs *GameState) nextRound() {
	if poison := gs.Player.TickBuffs(); poison > 0 && !gs.God {
		gs.Player.Stats.TakeDamage(poison)
		gs.event(EventOverdose, "You are experiencing the effects of overdosing.")
	}

	lv := gs.CurrentLevel()
	for _, id := range lv.NPCIDs() {
		if err := gs.npcTakeTurn(lv, id); err != nil {
			gs.debugf("NPC %d turn failed: %v", id, err)
		}
	}

	gs.computeFOV()
	gs.Round++

	if !gs.Player.Stats.Alive() && !gs.God {
		gs.GameOver = true
		gs.event(EventDeath, "You have died in the Anthill")
	}
}

// computeFOV refreshes visibility around the player on the current
// level.
func (gs *GameState) computeFOV() {
	fov.Compute(gs.CurrentWorld(), gs.Player.Pos)
}
