package state

import (
	"fmt"

	"github.com/anthill-game/anthill/pkg/item"
)

// useItem applies an inventory item by its kind: weapons and armor
// equip, food is eaten, potions are drunk. Keys have no use action.
func (gs *GameState) useItem(id item.ID) (Outcome, error) {
	if !gs.Player.HasItem(id) {
		return Outcome{}, fmt.Errorf("item %d is not in the inventory", id)
	}
	def, err := gs.heldItemDef(id)
	if err != nil {
		return Outcome{}, err
	}
	kind, err := def.Kind()
	if err != nil {
		return Outcome{}, err
	}

	switch kind {
	case item.KindWeapon:
		return gs.equipWeapon(id)
	case item.KindArmor:
		return gs.equipArmor(id)
	case item.KindFood:
		return gs.eatFood(id, def)
	case item.KindPotion:
		return gs.drinkPotion(id, def)
	default:
		return Outcome{}, fmt.Errorf("item %d cannot be used", id)
	}
}

// equipWeapon moves an item from the inventory into the weapon slot.
// Whatever was wielded before returns to the inventory; removing the
// new weapon first guarantees it has room.
func (gs *GameState) equipWeapon(id item.ID) (Outcome, error) {
	gs.Player.RemoveItem(id)
	if old := gs.Player.Weapon; old != nil {
		gs.Player.AddItem(*old)
	}
	gs.Player.Weapon = &id
	return Success(), nil
}

// equipArmor moves an item from the inventory into the armor slot,
// swapping out whatever was worn before.
func (gs *GameState) equipArmor(id item.ID) (Outcome, error) {
	gs.Player.RemoveItem(id)
	if old := gs.Player.Armor; old != nil {
		gs.Player.AddItem(*old)
	}
	gs.Player.Armor = &id
	return Success(), nil
}

// unequipWeapon returns the wielded weapon to the inventory. The
// inventory is checked for room before the slot is touched, so a full
// pack can never destroy the item.
func (gs *GameState) unequipWeapon() (Outcome, error) {
	if gs.Player.Weapon == nil {
		return Failure(FailEmptySlot), nil
	}
	if gs.Player.InventoryFull() {
		return Failure(FailInventoryFull), nil
	}
	id := *gs.Player.Weapon
	gs.Player.Weapon = nil
	gs.Player.AddItem(id)
	return Success(), nil
}

// unequipArmor returns the worn armor to the inventory.
func (gs *GameState) unequipArmor() (Outcome, error) {
	if gs.Player.Armor == nil {
		return Failure(FailEmptySlot), nil
	}
	if gs.Player.InventoryFull() {
		return Failure(FailInventoryFull), nil
	}
	id := *gs.Player.Armor
	gs.Player.Armor = nil
	gs.Player.AddItem(id)
	return Success(), nil
}

// eatFood heals by the food's nutrition, capped at max hp, and consumes
// the item.
func (gs *GameState) eatFood(id item.ID, def item.Def) (Outcome, error) {
	gs.Player.Stats.Heal(def.Food.Nutrition)
	gs.Player.RemoveItem(id)

	defID, err := gs.Items.DefID(id)
	if err != nil {
		return Outcome{}, err
	}
	gs.event(EventItem, "You eat %s", gs.itemDefs.DisplayName(defID))

	if err := gs.deregisterItem(id); err != nil {
		return Outcome{}, err
	}
	return Success(), nil
}

// dropItem places an inventory item on the player's cell as a sprite.
// One cell holds one sprite, so a covered cell blocks the drop.
func (gs *GameState) dropItem(id item.ID) (Outcome, error) {
	if !gs.Player.HasItem(id) {
		return Outcome{}, fmt.Errorf("item %d is not in the inventory", id)
	}

	pos := gs.Player.Pos
	if _, ok := gs.CurrentLevel().SpriteAt(pos); ok {
		return Failure(FailDropBlocked), nil
	}
	if !gs.CurrentWorld().Walkable(pos) {
		return Failure(FailDropBlocked), nil
	}

	sprite, err := gs.placeSprite(gs.CurrentLevel(), id, pos)
	if err != nil {
		return Outcome{}, err
	}
	gs.Player.RemoveItem(id)
	gs.event(EventItem, "You drop %s.", sprite.Name)
	return Success(), nil
}
