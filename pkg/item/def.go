// Package item defines the static item catalog, the per-session instance
// registry, and the crafting recipe book. Definitions are immutable data
// loaded once at startup; instances are created and destroyed during play.
package item

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/anthill-game/anthill/pkg/dice"
)

// Kind names the category an item definition belongs to.
type Kind string

const (
	KindWeapon Kind = "weapon"
	KindArmor  Kind = "armor"
	KindFood   Kind = "food"
	KindPotion Kind = "potion"
	KindKey    Kind = "key"
)

// Quality grades armor. Mitigation is multiplied by the grade.
type Quality string

const (
	QualityPoor      Quality = "poor"
	QualityCommon    Quality = "common"
	QualityGood      Quality = "good"
	QualitySuperior  Quality = "superior"
	QualityLegendary Quality = "legendary"
)

// Multiplier returns the mitigation multiplier for the quality grade.
// Unknown or empty grades count as poor.
func (q Quality) Multiplier() int {
	switch q {
	case QualityCommon:
		return 2
	case QualityGood:
		return 3
	case QualitySuperior:
		return 5
	case QualityLegendary:
		return 8
	default:
		return 1
	}
}

// Effect names what a potion does when drunk. Repeated use of the same
// effect within a short window escalates into penalties.
type Effect string

const (
	EffectHeal      Effect = "heal"
	EffectStrength  Effect = "strength"
	EffectDexterity Effect = "dexterity"
)

// WeaponDef is the combat block of a weapon definition.
type WeaponDef struct {
	Damage dice.Roll `json:"damage"`          // damage per hit, dice notation
	Crit   int       `json:"crit,omitempty"`  // percent chance of a double-damage hit
	Range  int       `json:"range,omitempty"` // max attack distance in tiles; 0 means melee only
}

// Ranged reports whether the weapon can be fired at a distance.
func (w WeaponDef) Ranged() bool {
	return w.Range > 0
}

// ArmorDef is the defense block of an armor definition.
type ArmorDef struct {
	Mitigation int     `json:"mitigation"`
	Quality    Quality `json:"quality,omitempty"` // defaults to poor
}

// EffectiveMitigation is the base mitigation scaled by quality.
func (a ArmorDef) EffectiveMitigation() int {
	return a.Mitigation * a.Quality.Multiplier()
}

// FoodDef is the block for edible items.
type FoodDef struct {
	Nutrition int `json:"nutrition"` // hit points restored when eaten
}

// PotionDef is the block for drinkable items.
type PotionDef struct {
	Effect   Effect `json:"effect"`
	Amount   int    `json:"amount"`
	Duration int    `json:"duration,omitempty"` // rounds a granted buff lasts
}

// KeyDef is the block for key items. Keys have no combat use; they exist
// to be carried and consumed by recipes.
type KeyDef struct{}

// Def is one immutable item definition, keyed by a string def id in the
// catalog. Exactly one of the kind blocks must be set.
type Def struct {
	Name  string `json:"name,omitempty"` // display name; derived from the def id when empty
	Glyph string `json:"glyph"`          // single map character
	Color string `json:"color,omitempty"`

	Weapon *WeaponDef `json:"weapon,omitempty"`
	Armor  *ArmorDef  `json:"armor,omitempty"`
	Food   *FoodDef   `json:"food,omitempty"`
	Potion *PotionDef `json:"potion,omitempty"`
	Key    *KeyDef    `json:"key,omitempty"`
}

// Kind returns the definition's category, or an error when zero or more
// than one kind block is set.
func (d Def) Kind() (Kind, error) {
	var kinds []Kind
	if d.Weapon != nil {
		kinds = append(kinds, KindWeapon)
	}
	if d.Armor != nil {
		kinds = append(kinds, KindArmor)
	}
	if d.Food != nil {
		kinds = append(kinds, KindFood)
	}
	if d.Potion != nil {
		kinds = append(kinds, KindPotion)
	}
	if d.Key != nil {
		kinds = append(kinds, KindKey)
	}
	if len(kinds) != 1 {
		return "", fmt.Errorf("item def must set exactly one kind block, has %d", len(kinds))
	}
	return kinds[0], nil
}

// Validate checks the definition is renderable and well-formed.
func (d Def) Validate() error {
	if _, err := d.Kind(); err != nil {
		return err
	}
	if len([]rune(d.Glyph)) != 1 {
		return fmt.Errorf("glyph must be a single character, got %q", d.Glyph)
	}
	return nil
}

// DefSet is the loaded item catalog, keyed by def id.
type DefSet map[string]Def

// Get looks up a definition by def id.
func (s DefSet) Get(id string) (Def, error) {
	d, ok := s[id]
	if !ok {
		return Def{}, fmt.Errorf("item def not found: %s", id)
	}
	return d, nil
}

// DisplayName returns the name the player sees for a def id. Definitions
// without a name fall back to a title-cased form of the id, so
// "potion_heal" reads as "Potion Heal".
func (s DefSet) DisplayName(id string) string {
	if d, ok := s[id]; ok && d.Name != "" {
		return d.Name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}

// Validate checks every definition in the set.
func (s DefSet) Validate() error {
	for id, d := range s {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("item def %s: %w", id, err)
		}
	}
	return nil
}
