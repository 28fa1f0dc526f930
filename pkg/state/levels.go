package state

import (
	"fmt"

	"github.com/anthill-game/anthill/pkg/level"
	"github.com/anthill-game/anthill/pkg/procgen"
)

// genParams builds the population pools from the def catalogs. Generate
// sorts the pools itself, so map iteration order here is fine.
func (gs *GameState) genParams() procgen.Params {
	npcIDs := make([]string, 0, len(gs.npcDefs))
	for id := range gs.npcDefs {
		npcIDs = append(npcIDs, id)
	}
	itemIDs := make([]string, 0, len(gs.itemDefs))
	for id := range gs.itemDefs {
		itemIDs = append(itemIDs, id)
	}
	return procgen.Params{NPCDefIDs: npcIDs, ItemDefIDs: itemIDs}
}

// descend moves the player one level deeper, generating the level on
// first visit. Revisited levels come back exactly as they were left.
func (gs *GameState) descend() error {
	next := gs.Depth + 1
	if next == len(gs.Levels) {
		data := procgen.Generate(gs.LevelRng.DeriveSeed(), gs.genParams())
		lv, err := level.Load(data, next)
		if err != nil {
			return fmt.Errorf("failed to load level %d: %w", next, err)
		}
		if err := gs.applySpawns(lv, data.Spawns); err != nil {
			return fmt.Errorf("failed to populate level %d: %w", next, err)
		}
		gs.Levels = append(gs.Levels, lv)
	}
	gs.Depth = next
	gs.Player.MoveTo(gs.CurrentLevel().Entry)
	gs.computeFOV()
	gs.event(EventStairs, "You go down the stairs...")
	return nil
}

// ascend returns the player to the level above, arriving on its down
// stairs.
func (gs *GameState) ascend() error {
	if gs.Depth == 0 {
		return fmt.Errorf("no level above the surface")
	}
	gs.Depth--
	gs.Player.MoveTo(gs.CurrentLevel().Exit)
	gs.computeFOV()
	gs.event(EventStairs, "You go back up the stairs...")
	return nil
}
