// Package state is the turn engine: one GameState owns everything a
// session mutates, and advances only when a confirmed player action
// resolves. There is no background simulation and no locking; a
// GameState belongs exclusively to its caller.
package state

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/dice"
	"github.com/anthill-game/anthill/pkg/item"
	"github.com/anthill-game/anthill/pkg/level"
	"github.com/anthill-game/anthill/pkg/world"
)

// GameState is the full state of one game session. The Seed fully
// determines every generated level; Levels holds each visited depth,
// town first, and is never trimmed. GameState serializes to JSON in its
// entirety. The def catalogs are static data and are re-attached with
// WithDefs after decoding.
type GameState struct {
	ID    uuid.UUID `json:"id"`
	Seed  uint64    `json:"seed"`
	Round int       `json:"round"`
	Depth int       `json:"depth"`

	Levels []*level.Level         `json:"levels"`
	Player *actor.PlayerCharacter `json:"player"`
	Cursor *Cursor                `json:"cursor,omitempty"`
	Items  *item.Registry         `json:"items"`

	// NextEntityID issues ids for the player, NPCs and item sprites.
	// Ids are never reused within a session.
	NextEntityID actor.EntityID `json:"next_entity_id"`

	// Rng feeds gameplay rolls. LevelRng only derives one seed per
	// generated depth, so combat can never shift level layouts.
	Rng      *dice.Stream `json:"rng"`
	LevelRng *dice.Stream `json:"level_rng"`

	NoClip   bool `json:"noclip,omitempty"`
	God      bool `json:"god,omitempty"`
	GameOver bool `json:"game_over,omitempty"`

	Log *Log `json:"log"`

	itemDefs item.DefSet
	npcDefs  actor.NPCDefSet
}

// Config carries everything a new session needs.
type Config struct {
	Seed      uint64 // dungeon seed; 0 draws one from entropy
	ItemDefs  item.DefSet
	NPCDefs   actor.NPCDefSet
	Town      level.Data // the static surface level
	ShowDebug bool       // surface debug events in the log
}

// NewGameState starts a session: it loads the town, places the player at
// its entry and computes the first field of view.
func NewGameState(cfg Config) (*GameState, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	// The master stream only hands out the two sub-seeds.
	master := dice.NewStream(seed)
	levelRng := dice.NewStream(master.DeriveSeed())
	gameplayRng := dice.NewStream(master.DeriveSeed())

	gs := &GameState{
		ID:           uuid.New(),
		Seed:         seed,
		Levels:       make([]*level.Level, 0, 1),
		Items:        item.NewRegistry(),
		NextEntityID: 1,
		Rng:          gameplayRng,
		LevelRng:     levelRng,
		Log:          NewLog(cfg.ShowDebug),
		itemDefs:     cfg.ItemDefs,
		npcDefs:      cfg.NPCDefs,
	}
	gs.Player = actor.NewPlayerCharacter(gs.nextEntityID())

	town, err := level.Load(cfg.Town, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load town: %w", err)
	}
	if err := gs.applySpawns(town, cfg.Town.Spawns); err != nil {
		return nil, fmt.Errorf("failed to populate town: %w", err)
	}
	gs.Levels = append(gs.Levels, town)

	gs.Player.MoveTo(town.Entry)
	gs.computeFOV()
	gs.printLore()

	return gs, nil
}

// WithDefs re-attaches the static def catalogs after a GameState has
// been decoded from storage. Returns the GameState for chaining.
func (gs *GameState) WithDefs(items item.DefSet, npcs actor.NPCDefSet) *GameState {
	gs.itemDefs = items
	gs.npcDefs = npcs
	return gs
}

// CurrentLevel is the level the player is on.
func (gs *GameState) CurrentLevel() *level.Level {
	return gs.Levels[gs.Depth]
}

// CurrentWorld is the terrain of the current level.
func (gs *GameState) CurrentWorld() *world.World {
	return gs.CurrentLevel().World
}

func (gs *GameState) nextEntityID() actor.EntityID {
	id := gs.NextEntityID
	gs.NextEntityID++
	return id
}
