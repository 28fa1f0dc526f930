package state

import (
	"fmt"

	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/level"
	"github.com/anthill-game/anthill/pkg/pathfind"
)

// aggroRadius is how close, in cells, the player must come before an
// NPC turns aggressive.
const aggroRadius = 6

// npcTakeTurn runs one NPC's turn: its AI state refreshes against the
// player's position, then it waits, wanders or hunts.
func (gs *GameState) npcTakeTurn(lv *level.Level, id actor.EntityID) error {
	npc, ok := lv.NPC(id)
	if !ok {
		return fmt.Errorf("npc %d does not exist", id)
	}

	gs.refreshAIState(lv, npc)

	switch npc.AI {
	case actor.AIInactive:
		return nil
	case actor.AIWandering:
		gs.moveNPC(lv, npc, geom.RandomDirection(gs.Rng.Rand))
		return nil
	case actor.AIAggressive:
		return gs.npcHunt(lv, npc)
	default:
		return fmt.Errorf("npc %d has unknown ai state %q", id, npc.AI)
	}
}

// refreshAIState flips an NPC between wandering and aggressive based on
// whether the player stands within its aggro radius.
func (gs *GameState) refreshAIState(lv *level.Level, npc *actor.NPC) {
	w := lv.World
	if !w.Walkable(gs.Player.Pos) {
		// a player phasing through walls cannot be seen
		npc.AI = actor.AIWandering
		return
	}
	for _, p := range w.PointsInRadius(npc.Pos, aggroRadius) {
		if p == gs.Player.Pos {
			npc.AI = actor.AIAggressive
			return
		}
	}
	npc.AI = actor.AIWandering
}

// npcHunt closes on the player: attack when adjacent, otherwise follow
// the pathfinder, otherwise stumble a random step.
func (gs *GameState) npcHunt(lv *level.Level, npc *actor.NPC) error {
	for d := geom.Up; d <= geom.Left; d++ {
		if npc.Pos.Adjacent(d) == gs.Player.Pos {
			return gs.npcAttackPlayer(npc)
		}
	}

	costFn := func(p geom.Point) (int, bool) {
		if !lv.World.Walkable(p) {
			return 0, false
		}
		if _, ok := lv.NPCAt(p); ok {
			return 0, false
		}
		return 1, true
	}
	path := pathfind.FindPath(npc.Pos, gs.Player.Pos, costFn, pathfind.DefaultBudget)
	if len(path) > 1 {
		if dir, ok := geom.DirectionBetween(npc.Pos, path[1]); ok {
			gs.moveNPC(lv, npc, dir)
			return nil
		}
	}

	gs.moveNPC(lv, npc, geom.RandomDirection(gs.Rng.Rand))
	return nil
}

// moveNPC steps an NPC one cell, staying put when the target is out of
// bounds, unwalkable or occupied.
func (gs *GameState) moveNPC(lv *level.Level, npc *actor.NPC, dir geom.Direction) {
	dx, dy := dir.Delta()
	x, y := npc.Pos.X+dx, npc.Pos.Y+dy
	if !lv.World.InBounds(x, y) {
		return
	}
	target := geom.Pt(x, y)
	if !lv.World.Walkable(target) {
		return
	}
	// NPCs block each other and never step onto the player; item
	// sprites do not block.
	if _, ok := lv.NPCAt(target); ok {
		return
	}
	if target == gs.Player.Pos {
		return
	}
	npc.MoveTo(target)
}
