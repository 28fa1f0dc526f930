package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/world"
)

func validData() Data {
	return Data{
		Width:  world.Width,
		Height: world.Height,
		Rooms: []world.Room{
			world.NewRoom(geom.Pt(10, 5), 10, 8),
			world.NewRoom(geom.Pt(40, 5), 10, 8),
		},
		// straight corridor between the two rooms along y=9
		Corridors: corridorRun(geom.Pt(19, 9), geom.Pt(40, 9)),
		Tiles: []TilePatch{
			{Pos: geom.Pt(12, 7), Kind: world.StairsUp},
			{Pos: geom.Pt(45, 9), Kind: world.StairsDown},
		},
		Entry: geom.Pt(12, 7),
		Exit:  geom.Pt(45, 9),
		Spawns: []Spawn{
			{Kind: SpawnNPC, DefID: "goblin", Pos: geom.Pt(14, 8)},
			{Kind: SpawnItem, DefID: "food_cake", Pos: geom.Pt(44, 8)},
		},
	}
}

func corridorRun(from, to geom.Point) []geom.Point {
	points := []geom.Point{}
	for x := from.X; x <= to.X; x++ {
		points = append(points, geom.Pt(x, from.Y))
	}
	return points
}

func TestLoadBuildsTerrain(t *testing.T) {
	l, err := Load(validData(), 3)
	require.NoError(t, err)

	assert.Equal(t, 3, l.Depth)
	assert.Equal(t, geom.Pt(12, 7), l.Entry)
	assert.Equal(t, geom.Pt(45, 9), l.Exit)

	// room interior and border
	assert.Equal(t, world.Floor, l.World.At(geom.Pt(11, 6)).Kind)
	assert.Equal(t, world.Wall, l.World.At(geom.Pt(10, 5)).Kind)

	// the corridor pierces the room walls as archways and runs as hallway
	assert.Equal(t, world.DoorArchway, l.World.At(geom.Pt(19, 9)).Kind)
	assert.Equal(t, world.DoorArchway, l.World.At(geom.Pt(40, 9)).Kind)
	assert.Equal(t, world.Hallway, l.World.At(geom.Pt(30, 9)).Kind)

	// tile patches land last
	assert.Equal(t, world.StairsUp, l.World.At(geom.Pt(12, 7)).Kind)
	assert.Equal(t, world.StairsDown, l.World.At(geom.Pt(45, 9)).Kind)

	// loading never places entities
	assert.Empty(t, l.NPCs)
	assert.Empty(t, l.Sprites)
}

func TestLoadLeavesRoomFloorUnderCorridors(t *testing.T) {
	d := Data{
		Width:     world.Width,
		Height:    world.Height,
		Rooms:     []world.Room{world.NewRoom(geom.Pt(10, 5), 10, 8)},
		Corridors: corridorRun(geom.Pt(11, 9), geom.Pt(18, 9)),
		Entry:     geom.Pt(12, 7),
		Exit:      geom.Pt(13, 7),
	}

	l, err := Load(d, 1)
	require.NoError(t, err)
	assert.Equal(t, world.Floor, l.World.At(geom.Pt(14, 9)).Kind, "corridor through a room leaves floor alone")
}

func TestDataValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Data)
	}{
		{name: "wrong width", mutate: func(d *Data) { d.Width = 80 }},
		{name: "wrong height", mutate: func(d *Data) { d.Height = 30 }},
		{name: "room leaves grid", mutate: func(d *Data) {
			d.Rooms = append(d.Rooms, world.NewRoom(geom.Pt(95, 20), 10, 10))
		}},
		{name: "degenerate room", mutate: func(d *Data) {
			d.Rooms = append(d.Rooms, world.NewRoom(geom.Pt(5, 5), 2, 5))
		}},
		{name: "corridor out of bounds", mutate: func(d *Data) {
			d.Corridors = append(d.Corridors, geom.Pt(100, 9))
		}},
		{name: "tile patch out of bounds", mutate: func(d *Data) {
			d.Tiles = append(d.Tiles, TilePatch{Pos: geom.Pt(0, 25), Kind: world.Floor})
		}},
		{name: "entry out of bounds", mutate: func(d *Data) { d.Entry = geom.Pt(200, 2) }},
		{name: "spawn kind unknown", mutate: func(d *Data) {
			d.Spawns = append(d.Spawns, Spawn{Kind: "monster", DefID: "goblin", Pos: geom.Pt(14, 8)})
		}},
		{name: "spawn out of bounds", mutate: func(d *Data) {
			d.Spawns = append(d.Spawns, Spawn{Kind: SpawnNPC, DefID: "goblin", Pos: geom.Pt(14, 80)})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validData()
			tt.mutate(&d)
			assert.Error(t, d.Validate())

			_, err := Load(d, 1)
			assert.Error(t, err)
		})
	}

	assert.NoError(t, validData().Validate())
}
