package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/item"
	"github.com/anthill-game/anthill/pkg/level"
	"github.com/anthill-game/anthill/pkg/state"
)

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the service connection
	Close() error
}

// Storage persists play sessions and serves the static game data.
type Storage interface {
	HealthChecker
	Closer

	// SaveSession writes a session snapshot under its id.
	SaveSession(ctx context.Context, id uuid.UUID, gs *state.GameState) error

	// LoadSession retrieves a session by id. Returns nil if the session
	// doesn't exist. Definitions are not rebound; callers use
	// GameState.WithDefs before resolving actions.
	LoadSession(ctx context.Context, id uuid.UUID) (*state.GameState, error)

	// DeleteSession removes a session by id.
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// ItemDefs loads the item definition catalog.
	ItemDefs(ctx context.Context) (item.DefSet, error)

	// NPCDefs loads the NPC definition catalog.
	NPCDefs(ctx context.Context) (actor.NPCDefSet, error)

	// Level loads a static level by name.
	Level(ctx context.Context, name string) (level.Data, error)

	// ListLevels names every static level available.
	ListLevels(ctx context.Context) ([]string, error)
}
