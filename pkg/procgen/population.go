package procgen

import (
	"slices"

	"github.com/anthill-game/anthill/pkg/dice"
	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/level"
)

// encounter is what a room holds when the player finds it.
type encounter int

const (
	encounterEmpty encounter = iota
	encounterEnemy
	encounterEnemyTreasure
	encounterTreasure
)

// rollEncounter draws a room's encounter: 30% enemies, 20% enemies with
// treasure, 25% treasure, 25% nothing.
func rollEncounter(rng *dice.Stream) encounter {
	switch n := rng.IntN(100); {
	case n <= 29:
		return encounterEnemy
	case n <= 49:
		return encounterEnemyTreasure
	case n <= 74:
		return encounterTreasure
	default:
		return encounterEmpty
	}
}

// populate rolls an encounter per room and places its spawns on free
// floor cells. The entry and exit cells always stay free.
func populate(rooms []rect, entry, exit geom.Point, p Params, rng *dice.Stream) []level.Spawn {
	npcIDs := sortedIDs(p.NPCDefIDs)
	itemIDs := sortedIDs(p.ItemDefIDs)
	blocked := []geom.Point{entry, exit}

	var spawns []level.Spawn
	for _, room := range rooms {
		available := room.floorPoints()
		available = slices.DeleteFunc(available, func(pt geom.Point) bool {
			return slices.Contains(blocked, pt)
		})
		rng.Shuffle(len(available), func(i, j int) {
			available[i], available[j] = available[j], available[i]
		})

		switch rollEncounter(rng) {
		case encounterEnemy:
			spawns = append(spawns, randomNPCs(&available, npcIDs, rng)...)
		case encounterEnemyTreasure:
			spawns = append(spawns, randomNPCs(&available, npcIDs, rng)...)
			spawns = append(spawns, randomItems(&available, itemIDs, rng)...)
		case encounterTreasure:
			spawns = append(spawns, randomItems(&available, itemIDs, rng)...)
		}
	}
	return spawns
}

// sortedIDs copies and sorts def ids so map iteration order never leaks
// into generation.
func sortedIDs(ids []string) []string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return sorted
}

// randomNPCs picks one or two NPC stat blocks and assigns each a cell.
func randomNPCs(available *[]geom.Point, npcIDs []string, rng *dice.Stream) []level.Spawn {
	if len(npcIDs) == 0 {
		return nil
	}
	count := 1 + rng.IntN(2)

	var spawns []level.Spawn
	for i := 0; i < count; i++ {
		pos, ok := popPoint(available)
		if !ok {
			break
		}
		spawns = append(spawns, level.Spawn{
			Kind:  level.SpawnNPC,
			DefID: npcIDs[rng.IntN(len(npcIDs))],
			Pos:   pos,
		})
	}
	return spawns
}

// randomItems picks one item def and assigns it a cell.
func randomItems(available *[]geom.Point, itemIDs []string, rng *dice.Stream) []level.Spawn {
	if len(itemIDs) == 0 {
		return nil
	}

	pos, ok := popPoint(available)
	if !ok {
		return nil
	}
	return []level.Spawn{{
		Kind:  level.SpawnItem,
		DefID: itemIDs[rng.IntN(len(itemIDs))],
		Pos:   pos,
	}}
}

func popPoint(points *[]geom.Point) (geom.Point, bool) {
	if len(*points) == 0 {
		return geom.Point{}, false
	}
	last := len(*points) - 1
	p := (*points)[last]
	*points = (*points)[:last]
	return p, true
}
