package item

// Recipe turns carried items into a new one. Inputs are def ids consumed
// from the inventory; the output is registered as a fresh instance.
type Recipe struct {
	Name   string   `json:"name"`
	Inputs []string `json:"inputs"`
	Output string   `json:"output"`
}

// Recipes is the built-in recipe book.
var Recipes = []Recipe{
	{
		Name:   "Restorative Draught",
		Inputs: []string{"food_cake", "food_cake", "food_cake"},
		Output: "potion_heal",
	},
	{
		Name:   "Fortifying Brew",
		Inputs: []string{"potion_heal", "potion_heal"},
		Output: "potion_strength",
	},
}

// FindRecipe looks up a recipe by name.
func FindRecipe(name string) (Recipe, bool) {
	for _, r := range Recipes {
		if r.Name == name {
			return r, true
		}
	}
	return Recipe{}, false
}
