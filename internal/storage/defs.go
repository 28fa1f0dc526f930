package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/item"
	"github.com/anthill-game/anthill/pkg/level"
)

// The static resources live on the filesystem under the data directory:
// defs/items.json, defs/npcs.json and levels/<name>.json. The console
// loads them directly; RedisStorage serves them through the same
// functions.

// LoadItemDefs reads the item definition catalog from the data directory.
func LoadItemDefs(dataDir string) (item.DefSet, error) {
	path := filepath.Join(dataDir, "defs", "items.json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read item definitions: %w", err)
	}

	var defs item.DefSet
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item definitions: %w", err)
	}

	return defs, nil
}

// LoadNPCDefs reads the NPC definition catalog from the data directory.
func LoadNPCDefs(dataDir string) (actor.NPCDefSet, error) {
	path := filepath.Join(dataDir, "defs", "npcs.json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read NPC definitions: %w", err)
	}

	var defs actor.NPCDefSet
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal NPC definitions: %w", err)
	}

	return defs, nil
}

// LoadLevelData reads one static level file from the data directory.
func LoadLevelData(dataDir, name string) (level.Data, error) {
	path := filepath.Join(dataDir, "levels", name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return level.Data{}, fmt.Errorf("level not found: %s", name)
		}
		return level.Data{}, fmt.Errorf("failed to read level file: %w", err)
	}

	var d level.Data
	if err := json.Unmarshal(data, &d); err != nil {
		return level.Data{}, fmt.Errorf("failed to unmarshal level %s: %w", name, err)
	}

	return d, nil
}

// ListLevelNames names every static level file in the data directory.
func ListLevelNames(dataDir string) ([]string, error) {
	levelsPath := filepath.Join(dataDir, "levels")

	entries, err := os.ReadDir(levelsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
		}
	}

	return names, nil
}

func (r *RedisStorage) ItemDefs(ctx context.Context) (item.DefSet, error) {
	return LoadItemDefs(r.dataDir)
}

func (r *RedisStorage) NPCDefs(ctx context.Context) (actor.NPCDefSet, error) {
	return LoadNPCDefs(r.dataDir)
}

func (r *RedisStorage) Level(ctx context.Context, name string) (level.Data, error) {
	return LoadLevelData(r.dataDir, name)
}

func (r *RedisStorage) ListLevels(ctx context.Context) ([]string, error) {
	return ListLevelNames(r.dataDir)
}
