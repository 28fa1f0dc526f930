package item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthill-game/anthill/pkg/dice"
)

func TestQualityMultiplier(t *testing.T) {
	tests := []struct {
		quality    Quality
		multiplier int
	}{
		{QualityPoor, 1},
		{QualityCommon, 2},
		{QualityGood, 3},
		{QualitySuperior, 5},
		{QualityLegendary, 8},
		{Quality(""), 1},
		{Quality("mythic"), 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.quality), func(t *testing.T) {
			assert.Equal(t, tt.multiplier, tt.quality.Multiplier())
		})
	}
}

func TestArmorEffectiveMitigation(t *testing.T) {
	armor := ArmorDef{Mitigation: 2, Quality: QualityGood}
	assert.Equal(t, 6, armor.EffectiveMitigation())

	unspecified := ArmorDef{Mitigation: 2}
	assert.Equal(t, 2, unspecified.EffectiveMitigation())
}

func TestDefKind(t *testing.T) {
	weapon := Def{Glyph: "/", Weapon: &WeaponDef{Damage: dice.NewRoll(1, dice.DieSize(5)), Crit: 5}}
	kind, err := weapon.Kind()
	require.NoError(t, err)
	assert.Equal(t, KindWeapon, kind)

	none := Def{Glyph: "?"}
	_, err = none.Kind()
	assert.Error(t, err)

	both := Def{Glyph: "?", Weapon: &WeaponDef{}, Food: &FoodDef{}}
	_, err = both.Kind()
	assert.Error(t, err)
}

func TestDefValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     Def
		wantErr bool
	}{
		{
			name: "valid food",
			def:  Def{Name: "Cake", Glyph: "%", Food: &FoodDef{Nutrition: 1}},
		},
		{
			name:    "empty glyph",
			def:     Def{Food: &FoodDef{Nutrition: 1}},
			wantErr: true,
		},
		{
			name:    "multi rune glyph",
			def:     Def{Glyph: "%%", Food: &FoodDef{Nutrition: 1}},
			wantErr: true,
		},
		{
			name:    "no kind block",
			def:     Def{Glyph: "%"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWeaponRanged(t *testing.T) {
	assert.False(t, WeaponDef{Damage: dice.Flat(1)}.Ranged())
	assert.True(t, WeaponDef{Damage: dice.Flat(1), Range: 6}.Ranged())
}

func TestDefSetGet(t *testing.T) {
	set := DefSet{
		"food_cake": {Name: "Cake", Glyph: "%", Food: &FoodDef{Nutrition: 1}},
	}

	def, err := set.Get("food_cake")
	require.NoError(t, err)
	assert.Equal(t, "Cake", def.Name)

	_, err = set.Get("food_pie")
	assert.ErrorContains(t, err, "food_pie")
}

func TestDefSetDisplayName(t *testing.T) {
	set := DefSet{
		"food_cake":   {Name: "Cake", Glyph: "%", Food: &FoodDef{Nutrition: 1}},
		"potion_heal": {Glyph: "!", Potion: &PotionDef{Effect: EffectHeal, Amount: 20}},
	}

	assert.Equal(t, "Cake", set.DisplayName("food_cake"))
	assert.Equal(t, "Potion Heal", set.DisplayName("potion_heal"))
	assert.Equal(t, "Weapon Sword Rusty", set.DisplayName("weapon_sword_rusty"))
}

func TestDefJSONRoundTrip(t *testing.T) {
	damage, err := dice.ParseRoll("1d5")
	require.NoError(t, err)

	def := Def{
		Name:  "Rusty Sword",
		Glyph: "/",
		Color: "gray",
		Weapon: &WeaponDef{
			Damage: damage,
			Crit:   5,
		},
	}

	data, err := json.Marshal(def)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"damage":"1d5"`)

	var decoded Def
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, def, decoded)
}

func TestRecipesReferenceRealDefs(t *testing.T) {
	for _, r := range Recipes {
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Inputs)
		assert.NotEmpty(t, r.Output)
	}

	recipe, ok := FindRecipe("Restorative Draught")
	require.True(t, ok)
	assert.Equal(t, "potion_heal", recipe.Output)

	_, ok = FindRecipe("Philosopher Stone")
	assert.False(t, ok)
}
