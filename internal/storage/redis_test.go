package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"

	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/state"
)

func setupTestStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	// Start miniredis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	redisURL := "redis://" + mr.Addr()

	storage, err := NewRedisStorage(redisURL, t.TempDir(), time.Hour, logger)
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis storage: %v", err)
	}

	return storage, mr
}

func TestRedisStorage_Ping(t *testing.T) {
	storage, mr := setupTestStorage(t)
	defer mr.Close()
	defer storage.Close()

	if err := storage.Ping(context.Background()); err != nil {
		t.Errorf("Expected ping to succeed, got %v", err)
	}

	mr.Close()
	if err := storage.Ping(context.Background()); err == nil {
		t.Error("Expected ping to fail after redis shutdown")
	}
}

func TestRedisStorage_SessionRoundTrip(t *testing.T) {
	storage, mr := setupTestStorage(t)
	defer mr.Close()
	defer storage.Close()

	ctx := context.Background()
	id := uuid.New()

	gs := &state.GameState{
		ID:     id,
		Seed:   42,
		Round:  7,
		Depth:  2,
		Player: actor.NewPlayerCharacter(1),
	}
	gs.Player.Stats.TakeDamage(30)

	if err := storage.SaveSession(ctx, id, gs); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	if !mr.Exists(sessionKey(id)) {
		t.Error("Expected session key to exist in redis")
	}

	loaded, err := storage.LoadSession(ctx, id)
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected a session, got nil")
	}

	if loaded.ID != id {
		t.Errorf("Expected ID %s, got %s", id, loaded.ID)
	}
	if loaded.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", loaded.Seed)
	}
	if loaded.Round != 7 {
		t.Errorf("Expected round 7, got %d", loaded.Round)
	}
	if loaded.Depth != 2 {
		t.Errorf("Expected depth 2, got %d", loaded.Depth)
	}
	if loaded.Player == nil {
		t.Fatal("Expected player to survive the round trip")
	}
	if loaded.Player.Stats.HP != 70 {
		t.Errorf("Expected player HP 70, got %d", loaded.Player.Stats.HP)
	}
}

func TestRedisStorage_LoadMissingSession(t *testing.T) {
	storage, mr := setupTestStorage(t)
	defer mr.Close()
	defer storage.Close()

	loaded, err := storage.LoadSession(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Expected no error for a missing session, got %v", err)
	}
	if loaded != nil {
		t.Errorf("Expected nil for a missing session, got %+v", loaded)
	}
}

func TestRedisStorage_DeleteSession(t *testing.T) {
	storage, mr := setupTestStorage(t)
	defer mr.Close()
	defer storage.Close()

	ctx := context.Background()
	id := uuid.New()

	gs := &state.GameState{ID: id, Seed: 9}
	if err := storage.SaveSession(ctx, id, gs); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	if err := storage.DeleteSession(ctx, id); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}

	loaded, err := storage.LoadSession(ctx, id)
	if err != nil {
		t.Fatalf("Failed to load after delete: %v", err)
	}
	if loaded != nil {
		t.Error("Expected session to be gone after delete")
	}

	// Deleting a session that does not exist is not an error
	if err := storage.DeleteSession(ctx, uuid.New()); err != nil {
		t.Errorf("Expected delete of missing session to succeed, got %v", err)
	}
}

func TestRedisStorage_SessionExpiry(t *testing.T) {
	storage, mr := setupTestStorage(t)
	defer mr.Close()
	defer storage.Close()

	ctx := context.Background()
	id := uuid.New()

	gs := &state.GameState{ID: id, Seed: 3}
	if err := storage.SaveSession(ctx, id, gs); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	if ttl := mr.TTL(sessionKey(id)); ttl != time.Hour {
		t.Errorf("Expected session TTL of 1h, got %v", ttl)
	}

	mr.FastForward(time.Hour + time.Minute)

	loaded, err := storage.LoadSession(ctx, id)
	if err != nil {
		t.Fatalf("Failed to load expired session: %v", err)
	}
	if loaded != nil {
		t.Error("Expected expired session to be gone")
	}
}
