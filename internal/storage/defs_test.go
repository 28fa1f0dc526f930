package storage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/world"
)

func setupDefsStorage(t *testing.T) (*RedisStorage, string) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	dataDir := t.TempDir()

	storage, err := NewRedisStorage("redis://"+mr.Addr(), dataDir, time.Hour, logger)
	if err != nil {
		t.Fatalf("Failed to create redis storage: %v", err)
	}
	t.Cleanup(func() { _ = storage.Close() })

	return storage, dataDir
}

func writeDataFile(t *testing.T, dataDir, name, content string) {
	t.Helper()

	path := filepath.Join(dataDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

func TestItemDefs_Load(t *testing.T) {
	storage, dataDir := setupDefsStorage(t)

	writeDataFile(t, dataDir, filepath.Join("defs", "items.json"), `{
		"weapon_sword_rusty": {
			"name": "Rusty Sword",
			"glyph": "/",
			"color": "gray",
			"weapon": {"damage": "1d5", "crit": 5}
		},
		"potion_heal": {
			"glyph": "!",
			"color": "red",
			"potion": {"effect": "heal", "amount": 20}
		}
	}`)

	defs, err := storage.ItemDefs(context.Background())
	if err != nil {
		t.Fatalf("Failed to load item defs: %v", err)
	}

	if len(defs) != 2 {
		t.Errorf("Expected 2 item defs, got %d", len(defs))
	}

	sword, err := defs.Get("weapon_sword_rusty")
	if err != nil {
		t.Fatalf("Failed to get sword def: %v", err)
	}
	if sword.Name != "Rusty Sword" {
		t.Errorf("Expected name 'Rusty Sword', got %q", sword.Name)
	}
	if sword.Weapon == nil {
		t.Fatal("Expected sword to have a weapon block")
	}
	if sword.Weapon.Damage.String() != "1d5" {
		t.Errorf("Expected damage 1d5, got %s", sword.Weapon.Damage)
	}
	if sword.Weapon.Crit != 5 {
		t.Errorf("Expected crit 5, got %d", sword.Weapon.Crit)
	}

	// Unnamed defs derive a display name from their id
	if got := defs.DisplayName("potion_heal"); got != "Potion Heal" {
		t.Errorf("Expected display name 'Potion Heal', got %q", got)
	}
}

func TestItemDefs_MissingFile(t *testing.T) {
	storage, _ := setupDefsStorage(t)

	if _, err := storage.ItemDefs(context.Background()); err == nil {
		t.Error("Expected error when items.json is missing")
	}
}

func TestNPCDefs_Load(t *testing.T) {
	storage, dataDir := setupDefsStorage(t)

	writeDataFile(t, dataDir, filepath.Join("defs", "npcs.json"), `{
		"goblin": {
			"name": "Goblin",
			"glyph": "g",
			"color": "green",
			"hp": 10,
			"damage": "1d2",
			"dodge": 10
		}
	}`)

	defs, err := storage.NPCDefs(context.Background())
	if err != nil {
		t.Fatalf("Failed to load NPC defs: %v", err)
	}

	goblin, err := defs.Get("goblin")
	if err != nil {
		t.Fatalf("Failed to get goblin def: %v", err)
	}
	if goblin.Name != "Goblin" {
		t.Errorf("Expected name 'Goblin', got %q", goblin.Name)
	}
	if goblin.HP != 10 {
		t.Errorf("Expected 10 hp, got %d", goblin.HP)
	}
	if goblin.Damage.String() != "1d2" {
		t.Errorf("Expected damage 1d2, got %s", goblin.Damage)
	}
	if goblin.Dodge != 10 {
		t.Errorf("Expected dodge 10, got %d", goblin.Dodge)
	}
}

func TestLevel_Load(t *testing.T) {
	storage, dataDir := setupDefsStorage(t)

	writeDataFile(t, dataDir, filepath.Join("levels", "town.json"), `{
		"width": 100,
		"height": 25,
		"rooms": [{"origin": {"x": 2, "y": 2}, "width": 20, "height": 10}],
		"tiles": [{"pos": {"x": 19, "y": 10}, "kind": "stairs_down"}],
		"entry": {"x": 5, "y": 5},
		"exit": {"x": 19, "y": 10},
		"spawns": [{"kind": "npc", "def_id": "goblin", "pos": {"x": 10, "y": 6}}]
	}`)

	d, err := storage.Level(context.Background(), "town")
	if err != nil {
		t.Fatalf("Failed to load level: %v", err)
	}

	if err := d.Validate(); err != nil {
		t.Errorf("Expected loaded level to validate, got %v", err)
	}
	if len(d.Rooms) != 1 {
		t.Fatalf("Expected 1 room, got %d", len(d.Rooms))
	}
	if d.Entry != geom.Pt(5, 5) {
		t.Errorf("Expected entry (5, 5), got %s", d.Entry)
	}
	if len(d.Tiles) != 1 || d.Tiles[0].Kind != world.StairsDown {
		t.Errorf("Expected a stairs_down tile patch, got %+v", d.Tiles)
	}
	if len(d.Spawns) != 1 || d.Spawns[0].DefID != "goblin" {
		t.Errorf("Expected a goblin spawn, got %+v", d.Spawns)
	}
}

func TestLevel_NotFound(t *testing.T) {
	storage, _ := setupDefsStorage(t)

	_, err := storage.Level(context.Background(), "catacombs")
	if err == nil {
		t.Fatal("Expected error for missing level")
	}
	if !strings.Contains(err.Error(), "level not found") {
		t.Errorf("Expected 'level not found' error, got: %v", err)
	}
}

func TestListLevels(t *testing.T) {
	storage, dataDir := setupDefsStorage(t)

	// No levels directory yet
	names, err := storage.ListLevels(context.Background())
	if err != nil {
		t.Fatalf("Failed to list levels: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected no levels, got %v", names)
	}

	writeDataFile(t, dataDir, filepath.Join("levels", "dungeon.json"), `{}`)
	writeDataFile(t, dataDir, filepath.Join("levels", "town.json"), `{}`)
	writeDataFile(t, dataDir, filepath.Join("levels", "readme.txt"), "not a level")

	names, err = storage.ListLevels(context.Background())
	if err != nil {
		t.Fatalf("Failed to list levels: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("Expected 2 levels, got %v", names)
	}
	if names[0] != "dungeon" || names[1] != "town" {
		t.Errorf("Expected [dungeon town], got %v", names)
	}
}
