package state

import (
	"fmt"

	"github.com/anthill-game/anthill/pkg/geom"
)

// CursorMode says what confirming the cursor does.
type CursorMode string

const (
	// CursorLook describes whatever the cursor rests on.
	CursorLook CursorMode = "look"

	// CursorRanged fires the equipped ranged weapon at the cursor.
	CursorRanged CursorMode = "ranged_attack"
)

// Cursor is the free-roaming targeting marker. While it is set, cursor
// actions steer it instead of the player character.
type Cursor struct {
	Mode CursorMode `json:"mode"`
	Pos  geom.Point `json:"pos"`
}

// openCursor starts targeting at the player's own cell. Opening over an
// existing cursor resets its position and mode.
func (gs *GameState) openCursor(mode CursorMode) Outcome {
	gs.Cursor = &Cursor{Mode: mode, Pos: gs.Player.Pos}
	return Success()
}

// moveCursor steps the cursor one cell. The cursor roams anywhere in
// bounds, seen or not; only confirming cares about visibility.
func (gs *GameState) moveCursor(dir geom.Direction) (Outcome, error) {
	if gs.Cursor == nil {
		return Outcome{}, fmt.Errorf("no cursor is active")
	}
	dx, dy := dir.Delta()
	x, y := gs.Cursor.Pos.X+dx, gs.Cursor.Pos.Y+dy
	if !gs.CurrentWorld().InBounds(x, y) {
		return Failure(FailOutOfBounds), nil
	}
	gs.Cursor.Pos = geom.Pt(x, y)
	return Success(), nil
}

// confirmCursor resolves the cursor's action at its current cell. A
// look costs nothing and leaves the cursor up; a landed ranged attack
// closes the cursor and consumes the round.
func (gs *GameState) confirmCursor() (Outcome, bool, error) {
	if gs.Cursor == nil {
		return Outcome{}, false, fmt.Errorf("no cursor is active")
	}
	pos := gs.Cursor.Pos
	if !gs.CurrentWorld().At(pos).Visible {
		return Failure(FailTileNotVisible), false, nil
	}

	switch gs.Cursor.Mode {
	case CursorLook:
		gs.lookAt(pos)
		return Success(), false, nil
	case CursorRanged:
		npc, ok := gs.CurrentLevel().NPCAt(pos)
		if !ok {
			return Failure(FailInvalidTarget), false, nil
		}
		out, err := gs.rangedAttackNPC(npc)
		if err != nil {
			return Outcome{}, false, err
		}
		if !out.OK() {
			return out, false, nil
		}
		gs.Cursor = nil
		return out, true, nil
	default:
		return Outcome{}, false, fmt.Errorf("unknown cursor mode: %s", gs.Cursor.Mode)
	}
}

// cancelCursor dismisses the cursor without acting.
func (gs *GameState) cancelCursor() (Outcome, error) {
	if gs.Cursor == nil {
		return Outcome{}, fmt.Errorf("no cursor is active")
	}
	gs.Cursor = nil
	return Success(), nil
}

// lookAt reports what occupies a cell: any NPC, any item sprite, or
// failing both, the terrain itself.
func (gs *GameState) lookAt(p geom.Point) {
	lv := gs.CurrentLevel()
	npc, hasNPC := lv.NPCAt(p)
	sprite, hasSprite := lv.SpriteAt(p)

	if !hasNPC && !hasSprite {
		gs.event(EventLook, "You see: %s", gs.CurrentWorld().At(p).Kind.Description())
		return
	}
	if hasNPC {
		gs.event(EventLook, "You see: %s", npc.Name)
	}
	if hasSprite {
		gs.event(EventLook, "You see: %s", sprite.Name)
	}
}
