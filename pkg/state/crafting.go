package state

import (
	"fmt"

	"github.com/anthill-game/anthill/pkg/item"
)

// craft executes a recipe from the built-in book. Every input def id
// must match a distinct inventory instance; a recipe calling for three
// cakes really consumes three. Inputs are destroyed and the output is
// registered as a fresh instance.
func (gs *GameState) craft(name string) (Outcome, error) {
	recipe, ok := item.FindRecipe(name)
	if !ok {
		return Outcome{}, fmt.Errorf("unknown recipe: %s", name)
	}
	if _, err := gs.itemDefs.Get(recipe.Output); err != nil {
		return Outcome{}, err
	}

	used := make(map[item.ID]bool, len(recipe.Inputs))
	picked := make([]item.ID, 0, len(recipe.Inputs))
	for _, defID := range recipe.Inputs {
		found := false
		for _, id := range gs.Player.Inventory {
			if used[id] {
				continue
			}
			heldDef, err := gs.Items.DefID(id)
			if err != nil {
				return Outcome{}, err
			}
			if heldDef == defID {
				used[id] = true
				picked = append(picked, id)
				found = true
				break
			}
		}
		if !found {
			return Failure(FailMissingIngredients), nil
		}
	}

	for _, id := range picked {
		gs.Player.RemoveItem(id)
		if err := gs.deregisterItem(id); err != nil {
			return Outcome{}, err
		}
	}

	outID, err := gs.RegisterItem(recipe.Output)
	if err != nil {
		return Outcome{}, err
	}
	gs.Player.AddItem(outID)
	gs.event(EventItem, "You craft %s.", gs.itemDefs.DisplayName(recipe.Output))
	return Success(), nil
}
