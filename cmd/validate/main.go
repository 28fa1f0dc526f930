package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/anthill-game/anthill/pkg/actor"
	"github.com/anthill-game/anthill/pkg/item"
	"github.com/anthill-game/anthill/pkg/level"
)

func main() {
	dataDir := "./data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	validator := &DataValidator{}

	if err := validator.validateDataDir(dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Game data is valid!")
}

type DataValidator struct {
	errors []string
}

func (v *DataValidator) validateDataDir(dataDir string) error {
	fmt.Printf("Validating %s...\n", dataDir)

	v.errors = nil

	itemDefs := v.validateItemDefs(filepath.Join(dataDir, "defs", "items.json"))
	npcDefs := v.validateNPCDefs(filepath.Join(dataDir, "defs", "npcs.json"))
	v.validateRecipes(itemDefs)
	v.validateLevels(filepath.Join(dataDir, "levels"), itemDefs, npcDefs)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", dataDir, strings.Join(v.errors, "\n"))
	}

	return nil
}

// decodeStrict reads a JSON file and decodes it with unknown fields
// rejected, so typos in data files fail loudly instead of silently
// falling back to zero values.
func (v *DataValidator) decodeStrict(path string, out interface{}) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		v.addError(fmt.Sprintf("failed to read %s: %v", path, err))
		return false
	}

	if !json.Valid(data) {
		v.addError(fmt.Sprintf("%s contains invalid JSON", path))
		return false
	}

	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		v.addError(fmt.Sprintf("%s failed strict JSON unmarshaling: %v", path, err))
		return false
	}
	return true
}

func (v *DataValidator) validateItemDefs(path string) item.DefSet {
	var defs item.DefSet
	if !v.decodeStrict(path, &defs) {
		return nil
	}

	for id := range defs {
		v.validateIDFormat("item def ID", id)
	}
	if err := defs.Validate(); err != nil {
		v.addError(fmt.Sprintf("item defs: %v", err))
	}
	return defs
}

func (v *DataValidator) validateNPCDefs(path string) actor.NPCDefSet {
	var defs actor.NPCDefSet
	if !v.decodeStrict(path, &defs) {
		return nil
	}

	for id := range defs {
		v.validateIDFormat("NPC def ID", id)
	}
	if err := defs.Validate(); err != nil {
		v.addError(fmt.Sprintf("NPC defs: %v", err))
	}
	return defs
}

// validateRecipes checks the built-in recipe book against the item
// catalog, so a renamed def cannot orphan a recipe.
func (v *DataValidator) validateRecipes(defs item.DefSet) {
	if defs == nil {
		return
	}
	for _, r := range item.Recipes {
		for _, in := range r.Inputs {
			if _, err := defs.Get(in); err != nil {
				v.addError(fmt.Sprintf("recipe '%s' input '%s' has no item def", r.Name, in))
			}
		}
		if _, err := defs.Get(r.Output); err != nil {
			v.addError(fmt.Sprintf("recipe '%s' output '%s' has no item def", r.Name, r.Output))
		}
	}
}

func (v *DataValidator) validateLevels(levelsDir string, itemDefs item.DefSet, npcDefs actor.NPCDefSet) {
	entries, err := os.ReadDir(levelsDir)
	if err != nil {
		v.addError(fmt.Sprintf("failed to read %s: %v", levelsDir, err))
		return
	}

	foundTown := false
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		if !isValidID(name) {
			v.addError(fmt.Sprintf("level filename '%s' must be lowercase snake_case", entry.Name()))
		}
		if name == "town" {
			foundTown = true
		}
		v.validateLevel(filepath.Join(levelsDir, entry.Name()), itemDefs, npcDefs)
	}

	if !foundTown {
		v.addError("levels directory has no town.json; the surface level is required")
	}
}

func (v *DataValidator) validateLevel(path string, itemDefs item.DefSet, npcDefs actor.NPCDefSet) {
	var d level.Data
	if !v.decodeStrict(path, &d) {
		return
	}

	if err := d.Validate(); err != nil {
		v.addError(fmt.Sprintf("%s: %v", path, err))
	}

	// Validate resolves shapes and bounds; def references need the
	// loaded catalogs, so they are checked here.
	for i, s := range d.Spawns {
		switch s.Kind {
		case level.SpawnNPC:
			if npcDefs == nil {
				continue
			}
			if _, err := npcDefs.Get(s.DefID); err != nil {
				v.addError(fmt.Sprintf("%s: spawn %d references unknown NPC def '%s'", path, i, s.DefID))
			}
		case level.SpawnItem:
			if itemDefs == nil {
				continue
			}
			if _, err := itemDefs.Get(s.DefID); err != nil {
				v.addError(fmt.Sprintf("%s: spawn %d references unknown item def '%s'", path, i, s.DefID))
			}
		}
	}
}

func (v *DataValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}

	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *DataValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}
