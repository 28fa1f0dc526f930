package procgen

import (
	"github.com/anthill-game/anthill/pkg/dice"
	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/level"
	"github.com/anthill-game/anthill/pkg/world"
)

// Params carries the def universe generation can draw spawns from.
type Params struct {
	NPCDefIDs  []string
	ItemDefIDs []string
}

// Generate builds the persistence form of one dungeon level. The same
// seed and params always produce the same level. The master stream only
// derives per-stage seeds, so one stage's draw count can never shift the
// randomness of another.
func Generate(seed uint64, p Params) level.Data {
	master := dice.NewStream(seed)
	bspSeed := master.DeriveSeed()
	shrinkSeed := master.DeriveSeed()
	corridorSeed := master.DeriveSeed()
	populationSeed := master.DeriveSeed()

	t := newTree()
	t.divide(roomTarget, dice.NewStream(bspSeed))
	rooms := t.leaves()

	shrinkRNG := dice.NewStream(shrinkSeed)
	for i := range rooms {
		rooms[i].shrink(shrinkRNG)
	}

	// corridor routing runs over carved scratch terrain so the cost
	// function can see walls and room interiors
	scratch := world.New()
	roomList := make([]world.Room, len(rooms))
	centers := make([]geom.Point, len(rooms))
	for i, r := range rooms {
		roomList[i] = r.room()
		centers[i] = r.center()
		scratch.CarveRoom(roomList[i])
	}

	corridorRNG := dice.NewStream(corridorSeed)
	connections := planConnections(centers, corridorRNG)
	corridors := carveConnections(scratch, rooms, connections)

	populationRNG := dice.NewStream(populationSeed)
	entry, exit := entryExit(rooms, populationRNG)
	spawns := populate(rooms, entry, exit, p, populationRNG)

	return level.Data{
		Width:     world.Width,
		Height:    world.Height,
		Rooms:     roomList,
		Corridors: corridors,
		Tiles: []level.TilePatch{
			{Pos: entry, Kind: world.StairsUp},
			{Pos: exit, Kind: world.StairsDown},
		},
		Entry:  entry,
		Exit:   exit,
		Spawns: spawns,
	}
}

// entryExit picks two distinct rooms and a random floor cell in each for
// the stairs the player arrives on and leaves by.
func entryExit(rooms []rect, rng *dice.Stream) (entry, exit geom.Point) {
	entryRoom := rng.IntN(len(rooms))
	exitRoom := entryRoom
	if len(rooms) > 1 {
		exitRoom = rng.IntN(len(rooms) - 1)
		if exitRoom >= entryRoom {
			exitRoom++
		}
	}
	return randomFloorPoint(rooms[entryRoom], rng), randomFloorPoint(rooms[exitRoom], rng)
}

func randomFloorPoint(r rect, rng *dice.Stream) geom.Point {
	points := r.floorPoints()
	return points[rng.IntN(len(points))]
}
