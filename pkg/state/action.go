package state

import (
	"fmt"

	"github.com/anthill-game/anthill/pkg/geom"
	"github.com/anthill-game/anthill/pkg/item"
	"github.com/anthill-game/anthill/pkg/world"
)

// ActionKind names a player action.
type ActionKind string

const (
	ActionMove          ActionKind = "move"
	ActionWait          ActionKind = "wait"
	ActionUseItem       ActionKind = "use_item"
	ActionDropItem      ActionKind = "drop_item"
	ActionUnequipWeapon ActionKind = "unequip_weapon"
	ActionUnequipArmor  ActionKind = "unequip_armor"
	ActionCraft         ActionKind = "craft"
	ActionLook          ActionKind = "look"
	ActionRangedAttack  ActionKind = "ranged_attack"
	ActionCursorMove    ActionKind = "cursor_move"
	ActionCursorConfirm ActionKind = "cursor_confirm"
	ActionCursorCancel  ActionKind = "cursor_cancel"
)

// Action is one player input. Direction accompanies move and
// cursor_move, ItemID the item actions, Recipe the craft action.
type Action struct {
	Kind      ActionKind      `json:"kind"`
	Direction *geom.Direction `json:"direction,omitempty"`
	ItemID    *item.ID        `json:"item_id,omitempty"`
	Recipe    string          `json:"recipe,omitempty"`
}

// Resolve applies one player action. Soft failures come back as a
// non-OK Outcome with a nil error and leave the round unchanged; hard
// errors mean the session was handed an impossible request. A
// successful round-consuming action also runs stair transitions, buff
// ticks and every NPC turn before returning.
func (gs *GameState) Resolve(a Action) (Outcome, error) {
	if gs.GameOver {
		return Failure(FailGameOver), nil
	}

	out, advance, err := gs.execute(a)
	if err != nil {
		gs.debugf("Action %s failed: %v", a.Kind, err)
		return Outcome{}, err
	}
	if !out.OK() {
		gs.warnReason(out.Reason)
		return out, nil
	}

	if advance {
		if a.Kind == ActionMove {
			if err := gs.maybeTakeStairs(); err != nil {
				return Outcome{}, err
			}
		}
		gs.nextRound()
	}
	return out, nil
}

// warnReason logs the player-facing text for a failure reason, if it
// has any.
func (gs *GameState) warnReason(r FailReason) {
	if msg, ok := r.UserMessage(); ok {
		gs.event(EventWarning, "%s", msg)
	}
}

func (gs *GameState) execute(a Action) (Outcome, bool, error) {
	switch a.Kind {
	case ActionMove:
		if a.Direction == nil {
			return Outcome{}, false, fmt.Errorf("move action requires a direction")
		}
		out, err := gs.movePlayer(*a.Direction)
		return out, true, err
	case ActionWait:
		return Success(), true, nil
	case ActionUseItem:
		if a.ItemID == nil {
			return Outcome{}, false, fmt.Errorf("use_item action requires an item id")
		}
		out, err := gs.useItem(*a.ItemID)
		return out, true, err
	case ActionDropItem:
		if a.ItemID == nil {
			return Outcome{}, false, fmt.Errorf("drop_item action requires an item id")
		}
		out, err := gs.dropItem(*a.ItemID)
		return out, true, err
	case ActionUnequipWeapon:
		out, err := gs.unequipWeapon()
		return out, true, err
	case ActionUnequipArmor:
		out, err := gs.unequipArmor()
		return out, true, err
	case ActionCraft:
		if a.Recipe == "" {
			return Outcome{}, false, fmt.Errorf("craft action requires a recipe name")
		}
		out, err := gs.craft(a.Recipe)
		return out, true, err
	case ActionLook:
		return gs.openCursor(CursorLook), false, nil
	case ActionRangedAttack:
		return gs.openCursor(CursorRanged), false, nil
	case ActionCursorMove:
		if a.Direction == nil {
			return Outcome{}, false, fmt.Errorf("cursor_move action requires a direction")
		}
		out, err := gs.moveCursor(*a.Direction)
		return out, false, err
	case ActionCursorConfirm:
		return gs.confirmCursor()
	case ActionCursorCancel:
		out, err := gs.cancelCursor()
		return out, false, err
	default:
		return Outcome{}, false, fmt.Errorf("unknown action kind: %s", a.Kind)
	}
}

// movePlayer steps the player one cell. Walking into an NPC attacks it,
// a closed door opens in place of the step, and walking onto an item
// sprite picks it up when the inventory has room.
func (gs *GameState) movePlayer(dir geom.Direction) (Outcome, error) {
	w := gs.CurrentWorld()
	dx, dy := dir.Delta()
	x, y := gs.Player.Pos.X+dx, gs.Player.Pos.Y+dy
	if !w.InBounds(x, y) {
		return Failure(FailOutOfBounds), nil
	}
	target := geom.Pt(x, y)

	lv := gs.CurrentLevel()
	if npc, ok := lv.NPCAt(target); ok {
		return gs.playerAttackNPC(npc)
	}

	if w.At(target).Kind == world.DoorClosed {
		w.SetKind(target, world.DoorOpen)
		gs.event(EventPlain, "You open the door.")
		return Success(), nil
	}
	if !w.Walkable(target) && !gs.NoClip {
		return Failure(FailNotWalkable), nil
	}

	gs.Player.MoveTo(target)

	if sprite, ok := lv.SpriteAt(target); ok {
		if gs.Player.InventoryFull() {
			gs.warnReason(FailInventoryFull)
			return Success(), nil
		}
		gs.Player.AddItem(sprite.Item)
		if err := lv.DespawnSprite(sprite.ID); err != nil {
			return Outcome{}, err
		}
		gs.event(EventItem, "You pick up %s.", sprite.Name)
	}
	return Success(), nil
}

// maybeTakeStairs runs the level transition when a move left the player
// standing on stairs. Arriving on the matching stairs of the
// destination level does not trigger again.
func (gs *GameState) maybeTakeStairs() error {
	switch gs.CurrentWorld().At(gs.Player.Pos).Kind {
	case world.StairsDown:
		return gs.descend()
	case world.StairsUp:
		return gs.ascend()
	}
	return nil
}
